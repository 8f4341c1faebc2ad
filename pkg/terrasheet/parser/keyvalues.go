package parser

import (
	"strings"

	"github.com/wabcloud/terrasheet/pkg/terrasheet/models"
)

// ExtractKeyValues treats column 0 as key and column 1 as value for every
// row of a two-or-more-column sheet. Keys are trimmed of whitespace and a
// trailing colon; pairs are kept only when both sides are non-empty and
// not the literal placeholders "nan"/"none". Rows that match nothing are
// skipped; extraction never fails.
func ExtractKeyValues(sheet models.RawSheet) []models.KeyValuePair {
	if sheet.Cols() < 2 {
		return nil
	}

	var pairs []models.KeyValuePair
	for _, row := range sheet.Grid {
		if len(row) < 2 {
			continue
		}
		key := strings.TrimSpace(strings.TrimSuffix(strings.TrimSpace(row[0]), ":"))
		value := strings.TrimSpace(row[1])
		if !meaningful(key) || !meaningful(value) {
			continue
		}
		pairs = append(pairs, models.KeyValuePair{Key: key, Value: value})
	}

	return pairs
}

// meaningful reports whether a cell carries an actual setting value.
func meaningful(s string) bool {
	switch strings.ToLower(s) {
	case "", "nan", "none":
		return false
	}
	return true
}

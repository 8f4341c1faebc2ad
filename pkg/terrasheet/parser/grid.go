// Package parser provides build-sheet parsing: raw grid extraction plus
// the table and key/value detection heuristics.
package parser

import (
	"strings"

	"github.com/xuri/excelize/v2"

	"github.com/wabcloud/terrasheet/pkg/terrasheet/models"
)

// ExtractGrid extracts a sheet's cell contents as a raw string grid.
// Cell values are whitespace-trimmed; fully empty trailing rows are kept
// as excelize reports them so row indices stay stable for table detection.
func ExtractGrid(f *excelize.File, sheetName string) (models.RawSheet, error) {
	rows, err := f.GetRows(sheetName)
	if err != nil {
		return models.RawSheet{}, err
	}

	grid := make([][]string, len(rows))
	for i, row := range rows {
		cells := make([]string, len(row))
		for j, cell := range row {
			cells[j] = strings.TrimSpace(cell)
		}
		grid[i] = cells
	}

	return models.RawSheet{Name: sheetName, Grid: grid}, nil
}

// nonEmptyCells counts the non-empty cells of a row.
func nonEmptyCells(row []string) int {
	n := 0
	for _, cell := range row {
		if cell != "" {
			n++
		}
	}
	return n
}

// isEmptyRow reports whether every cell of a row is empty.
func isEmptyRow(row []string) bool {
	return nonEmptyCells(row) == 0
}

package models

// DetectedTable represents a contiguous block interpreted as tabular data.
type DetectedTable struct {
	// HeaderRow is the 0-based grid row index of the header.
	HeaderRow int `json:"header_row"`
	// Headers lists one name per header column, in sheet column order.
	// Empty header cells carry a Column_<idx> placeholder so data stays
	// aligned to its column.
	Headers []string `json:"headers"`
	// Data maps column name to value, one entry per data row.
	Data []map[string]string `json:"data"`
}

// RowCount returns the number of data rows in the table.
func (t DetectedTable) RowCount() int {
	return len(t.Data)
}

// HasHeaderKeyword reports whether any header contains one of the given
// keywords, case-insensitively. Used to pick the table backing a list
// field (e.g. hostname/vm/server for the VM table).
func (t DetectedTable) HasHeaderKeyword(keywords []string) bool {
	for _, h := range t.Headers {
		if containsAnyFold(h, keywords) {
			return true
		}
	}
	return false
}

// KeyValuePair represents a two-column row interpreted as a setting.
type KeyValuePair struct {
	// Key is the column-0 text, whitespace and trailing colon trimmed.
	Key string `json:"key"`
	// Value is the column-1 text, whitespace trimmed.
	Value string `json:"value"`
}

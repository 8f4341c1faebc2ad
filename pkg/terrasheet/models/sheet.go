// Package models defines data structures for build-sheet extraction and
// Terraform package generation.
package models

// RawSheet represents one worksheet's cell contents as a grid.
type RawSheet struct {
	// Name is the sheet name.
	Name string `json:"name"`
	// Grid holds cell values row-major; trailing empty cells are trimmed
	// by excelize so rows may have ragged lengths.
	Grid [][]string `json:"grid"`
}

// Rows returns the number of rows in the grid.
func (s RawSheet) Rows() int {
	return len(s.Grid)
}

// Cols returns the widest row length in the grid.
func (s RawSheet) Cols() int {
	max := 0
	for _, row := range s.Grid {
		if len(row) > max {
			max = len(row)
		}
	}
	return max
}

// WorkbookData represents workbook-level container with per-sheet contents.
type WorkbookData struct {
	// BookName is the workbook file name (no path).
	BookName string `json:"book_name"`
	// Sheets maps sheet name to its extracted contents.
	Sheets map[string]SheetData `json:"sheets"`
}

// SheetData represents the detected structures of a single sheet.
type SheetData struct {
	// Raw is the untyped cell grid the structures were detected from.
	Raw RawSheet `json:"raw"`
	// Tables contains contiguous header+data blocks found on the sheet.
	Tables []DetectedTable `json:"tables,omitempty"`
	// KeyValues contains two-column setting rows found on the sheet.
	KeyValues []KeyValuePair `json:"key_values,omitempty"`
}

package parser

import (
	"path/filepath"
	"testing"

	"github.com/xuri/excelize/v2"
)

func TestExtractGrid(t *testing.T) {
	f := excelize.NewFile()
	defer f.Close()

	sheetName := "Sheet1"
	f.SetCellValue(sheetName, "A1", "Project Name")
	f.SetCellValue(sheetName, "B1", "  Payments Platform  ")
	f.SetCellValue(sheetName, "A2", "Location")
	f.SetCellValue(sheetName, "B2", "WEST US 3")
	f.SetCellValue(sheetName, "A4", 100)

	tmpFile := filepath.Join(t.TempDir(), "test.xlsx")
	if err := f.SaveAs(tmpFile); err != nil {
		t.Fatalf("Failed to save test file: %v", err)
	}

	f2, err := excelize.OpenFile(tmpFile)
	if err != nil {
		t.Fatalf("Failed to open test file: %v", err)
	}
	defer f2.Close()

	sheet, err := ExtractGrid(f2, sheetName)
	if err != nil {
		t.Fatalf("ExtractGrid failed: %v", err)
	}

	if sheet.Name != sheetName {
		t.Errorf("Expected sheet name %q, got %q", sheetName, sheet.Name)
	}
	if sheet.Rows() != 4 {
		t.Errorf("Expected 4 rows, got %d", sheet.Rows())
	}
	if sheet.Grid[0][0] != "Project Name" {
		t.Errorf("Expected 'Project Name', got %q", sheet.Grid[0][0])
	}

	// Whitespace is trimmed from cell values.
	if sheet.Grid[0][1] != "Payments Platform" {
		t.Errorf("Expected trimmed value, got %q", sheet.Grid[0][1])
	}

	// Numbers come back as their string representation.
	if sheet.Grid[3][0] != "100" {
		t.Errorf("Expected '100', got %q", sheet.Grid[3][0])
	}
}

func TestNonEmptyCells(t *testing.T) {
	tests := []struct {
		row      []string
		expected int
	}{
		{[]string{"a", "b", "c"}, 3},
		{[]string{"", "b", ""}, 1},
		{[]string{"", "", ""}, 0},
		{nil, 0},
	}

	for _, tt := range tests {
		if got := nonEmptyCells(tt.row); got != tt.expected {
			t.Errorf("nonEmptyCells(%v) = %d, expected %d", tt.row, got, tt.expected)
		}
	}
}

package parser

import (
	"fmt"
	"testing"

	"github.com/wabcloud/terrasheet/pkg/terrasheet/models"
)

func sheet(grid [][]string) models.RawSheet {
	return models.RawSheet{Name: "Test", Grid: grid}
}

func TestDetectTablesBasic(t *testing.T) {
	raw := sheet([][]string{
		{"Some title"},
		{},
		{"Hostname", "Recommended SKU", "OS Image"},
		{"web-01", "Standard_B2s_v2", "Ubuntu 22.04"},
		{"web-02", "Standard_B2s_v2", "Ubuntu 22.04"},
		{},
		{"trailing", "ignored"},
	})

	tables := DetectTables(raw, DefaultTableParams())
	if len(tables) != 1 {
		t.Fatalf("Expected 1 table, got %d", len(tables))
	}

	table := tables[0]
	if table.HeaderRow != 2 {
		t.Errorf("Expected header row 2, got %d", table.HeaderRow)
	}
	if len(table.Headers) != 3 {
		t.Errorf("Expected 3 headers, got %d", len(table.Headers))
	}
	if table.RowCount() != 2 {
		t.Errorf("Expected 2 data rows, got %d", table.RowCount())
	}
	if table.Data[0]["Hostname"] != "web-01" {
		t.Errorf("Expected 'web-01', got %q", table.Data[0]["Hostname"])
	}
}

func TestDetectTablesTooFewHeaderColumns(t *testing.T) {
	raw := sheet([][]string{
		{"Key", "Value"},
		{"Location", "WEST US 3"},
	})

	tables := DetectTables(raw, DefaultTableParams())
	if len(tables) != 0 {
		t.Errorf("Expected no tables for a 2-column sheet, got %d", len(tables))
	}
}

func TestDetectTablesStopsAtEmptyRow(t *testing.T) {
	raw := sheet([][]string{
		{"A", "B", "C"},
		{"1", "2", "3"},
		{},
		{"4", "5", "6"},
		{"7", "8", "9"},
	})

	tables := DetectTables(raw, DefaultTableParams())
	if len(tables) != 2 {
		t.Fatalf("Expected 2 tables, got %d", len(tables))
	}
	if tables[0].RowCount() != 1 {
		t.Errorf("Expected first table to stop at empty row with 1 data row, got %d", tables[0].RowCount())
	}
	// The row after the gap is itself a header candidate for a new table.
	if tables[1].HeaderRow != 3 {
		t.Errorf("Expected second table header at row 3, got %d", tables[1].HeaderRow)
	}
}

func TestDetectTablesRowBudget(t *testing.T) {
	grid := [][]string{{"A", "B", "C"}}
	for i := 0; i < 80; i++ {
		grid = append(grid, []string{fmt.Sprintf("a%d", i), "x", "y"})
	}

	tables := DetectTables(sheet(grid), DefaultTableParams())
	if len(tables) == 0 {
		t.Fatal("Expected at least one table")
	}
	if tables[0].RowCount() != 50 {
		t.Errorf("Expected row budget of 50, got %d", tables[0].RowCount())
	}
}

func TestDetectTablesHeaderGapKeepsColumnAlignment(t *testing.T) {
	raw := sheet([][]string{
		{"Hostname", "", "Recommended SKU", "OS Image"},
		{"web01", "note", "Standard_D2s_v5", "Ubuntu 22.04"},
	})

	tables := DetectTables(raw, DefaultTableParams())
	if len(tables) != 1 {
		t.Fatalf("Expected 1 table, got %d", len(tables))
	}

	headers := tables[0].Headers
	want := []string{"Hostname", "Column_1", "Recommended SKU", "OS Image"}
	if len(headers) != len(want) {
		t.Fatalf("Expected %d headers, got %d", len(want), len(headers))
	}
	for i, h := range want {
		if headers[i] != h {
			t.Errorf("Expected header %d to be %q, got %q", i, h, headers[i])
		}
	}

	row := tables[0].Data[0]
	if row["Recommended SKU"] != "Standard_D2s_v5" {
		t.Errorf("Expected SKU column to keep its value, got %q", row["Recommended SKU"])
	}
	if row["OS Image"] != "Ubuntu 22.04" {
		t.Errorf("Expected OS column to keep its value, got %q", row["OS Image"])
	}
	if row["Column_1"] != "note" {
		t.Errorf("Expected gap column placeholder to hold the cell, got %q", row["Column_1"])
	}
}

func TestDetectTablesHeaderWithoutData(t *testing.T) {
	raw := sheet([][]string{
		{"A", "B", "C"},
		{},
	})

	tables := DetectTables(raw, DefaultTableParams())
	if len(tables) != 0 {
		t.Errorf("Expected header without data rows to be dropped, got %d tables", len(tables))
	}
}

package parser

import (
	"fmt"

	"github.com/wabcloud/terrasheet/pkg/terrasheet/models"
)

// TableDetectionParams holds parameters for table detection.
type TableDetectionParams struct {
	// MinHeaderCells is the minimum number of non-empty cells a row needs
	// to qualify as a header candidate.
	MinHeaderCells int
	// MaxDataRows caps how many rows are consumed below a header.
	MaxDataRows int
}

// DefaultTableParams returns default table detection parameters.
func DefaultTableParams() TableDetectionParams {
	return TableDetectionParams{
		MinHeaderCells: 3,
		MaxDataRows:    50,
	}
}

// DetectTables scans a sheet grid top to bottom for contiguous header+data
// blocks. A row with at least MinHeaderCells non-empty cells starts a
// table; following rows are consumed as data until an empty row or the row
// budget. Tables without data rows are dropped. Rows that match nothing
// are skipped silently; detection never fails.
func DetectTables(sheet models.RawSheet, params TableDetectionParams) []models.DetectedTable {
	var tables []models.DetectedTable

	for rowIdx := 0; rowIdx < len(sheet.Grid); rowIdx++ {
		row := sheet.Grid[rowIdx]
		if nonEmptyCells(row) < params.MinHeaderCells {
			continue
		}

		headers := headerNames(row)
		data, consumed := consumeDataRows(sheet.Grid, rowIdx+1, headers, params.MaxDataRows)
		if len(data) == 0 {
			continue
		}

		tables = append(tables, models.DetectedTable{
			HeaderRow: rowIdx,
			Headers:   headers,
			Data:      data,
		})
		rowIdx += consumed
	}

	return tables
}

// headerNames returns one name per header-row column, aligned to sheet
// column positions. Empty header cells (merged-cell gaps) get a
// positional placeholder so the data cells after a gap keep their column;
// placeholder names match no resolution keyword.
func headerNames(row []string) []string {
	headers := make([]string, len(row))
	for i, cell := range row {
		if cell == "" {
			headers[i] = fmt.Sprintf("Column_%d", i)
		} else {
			headers[i] = cell
		}
	}
	return headers
}

// consumeDataRows reads rows below a header as table data, stopping at the
// first empty row or the row budget. Each data row maps header name to the
// cell in the header's column.
func consumeDataRows(grid [][]string, start int, headers []string, maxRows int) ([]map[string]string, int) {
	var data []map[string]string
	consumed := 0

	for rowIdx := start; rowIdx < len(grid) && consumed < maxRows; rowIdx++ {
		row := grid[rowIdx]
		if isEmptyRow(row) {
			break
		}
		rowData := make(map[string]string)
		for colIdx, header := range headers {
			if colIdx < len(row) && row[colIdx] != "" {
				rowData[header] = row[colIdx]
			}
		}
		data = append(data, rowData)
		consumed++
	}

	return data, consumed
}

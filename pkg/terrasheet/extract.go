// Package terrasheet converts Excel build specifications into Terraform
// deployment packages.
package terrasheet

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/xuri/excelize/v2"

	"github.com/wabcloud/terrasheet/pkg/terrasheet/models"
	"github.com/wabcloud/terrasheet/pkg/terrasheet/parser"
)

// Options configures workbook extraction.
type Options struct {
	// RequiredSheets lists sheet names that must exist in the workbook.
	// Empty means no requirement.
	RequiredSheets []string
	// TableParams tunes the table detection heuristic. Zero value means
	// parser.DefaultTableParams.
	TableParams parser.TableDetectionParams
}

// DefaultOptions returns default extraction options.
func DefaultOptions() Options {
	return Options{
		TableParams: parser.DefaultTableParams(),
	}
}

// Extract opens an Excel workbook and extracts the raw grid, detected
// tables, and key/value pairs of every sheet. Detection is lossy: rows
// that match no structure are dropped without error.
func Extract(path string, opts Options) (*models.WorkbookData, error) {
	if _, err := os.Stat(path); os.IsNotExist(err) {
		return nil, NewExtractionError(filepath.Base(path), "", ErrFileNotFound)
	}

	f, err := excelize.OpenFile(path)
	if err != nil {
		return nil, NewExtractionError(filepath.Base(path), "", fmt.Errorf("%w: %v", ErrInvalidFormat, err))
	}
	defer f.Close()

	bookName := filepath.Base(path)
	sheetList := f.GetSheetList()

	for _, required := range opts.RequiredSheets {
		if !containsSheet(sheetList, required) {
			return nil, NewExtractionError(bookName, required, ErrMissingSheet)
		}
	}

	params := opts.TableParams
	if params.MinHeaderCells == 0 {
		params = parser.DefaultTableParams()
	}

	sheets := make(map[string]models.SheetData)
	for _, sheetName := range sheetList {
		raw, err := parser.ExtractGrid(f, sheetName)
		if err != nil {
			// An unreadable sheet yields an empty grid; detection below
			// then finds nothing, matching the tolerant contract.
			raw = models.RawSheet{Name: sheetName}
		}

		sheets[sheetName] = models.SheetData{
			Raw:       raw,
			Tables:    parser.DetectTables(raw, params),
			KeyValues: parser.ExtractKeyValues(raw),
		}
	}

	return &models.WorkbookData{
		BookName: bookName,
		Sheets:   sheets,
	}, nil
}

func containsSheet(sheets []string, name string) bool {
	for _, s := range sheets {
		if s == name {
			return true
		}
	}
	return false
}

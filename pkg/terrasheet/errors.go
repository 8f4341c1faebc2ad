package terrasheet

import (
	"errors"
	"fmt"
	"strings"
)

// ErrFileNotFound indicates the input workbook does not exist.
var ErrFileNotFound = errors.New("file not found")

// ErrInvalidFormat indicates the input file is not a valid xlsx container.
var ErrInvalidFormat = errors.New("invalid xlsx format")

// ExtractionError represents a failure to read a workbook or one of its
// required sheets. In batch mode it skips the offending file only.
type ExtractionError struct {
	Book      string
	SheetName string
	Err       error
}

func (e *ExtractionError) Error() string {
	if e.SheetName != "" {
		return fmt.Sprintf("extraction error in %q: sheet %q: %v", e.Book, e.SheetName, e.Err)
	}
	return fmt.Sprintf("extraction error in %q: %v", e.Book, e.Err)
}

func (e *ExtractionError) Unwrap() error {
	return e.Err
}

// NewExtractionError creates a new ExtractionError.
func NewExtractionError(book, sheetName string, err error) *ExtractionError {
	return &ExtractionError{Book: book, SheetName: sheetName, Err: err}
}

// ErrMissingSheet indicates a required sheet is absent from the workbook.
var ErrMissingSheet = errors.New("required sheet missing")

// ValidationError reports a rendered value rejected by an opt-in
// validation pass (e.g. a location outside the allowed region set).
type ValidationError struct {
	Field   string
	Value   string
	Allowed []string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("invalid %s value %q, allowed: %s", e.Field, e.Value, strings.Join(e.Allowed, ", "))
}

// WriteError represents a failure to create or write the output package.
type WriteError struct {
	Path string
	Err  error
}

func (e *WriteError) Error() string {
	return fmt.Sprintf("write error at %s: %v", e.Path, e.Err)
}

func (e *WriteError) Unwrap() error {
	return e.Err
}

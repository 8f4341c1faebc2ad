package pipeline

import "time"

// Results is the machine-readable outcome of one run.
type Results struct {
	// Success is true when every discovered file produced a package.
	Success bool `json:"success"`
	// StartTime and EndTime bound the run.
	StartTime time.Time `json:"start_time"`
	EndTime   time.Time `json:"end_time"`
	// DurationSeconds is the wall-clock run duration.
	DurationSeconds float64 `json:"duration_seconds"`
	// FilesProcessed counts workbooks that produced a package.
	FilesProcessed int `json:"files_processed"`
	// FilesFailed counts workbooks that did not.
	FilesFailed int `json:"files_failed"`
	// ValidationFailures counts failures raised by strict-field or
	// location validation, as opposed to extraction or write failures.
	ValidationFailures int `json:"validation_failures"`
	// FilesGenerated lists every written output path.
	FilesGenerated []string `json:"files_generated"`
	// Errors collects per-file error messages.
	Errors []string `json:"errors,omitempty"`
	// Warnings collects non-fatal notes, e.g. defaulted required fields
	// in lenient mode.
	Warnings []string `json:"warnings,omitempty"`
}

// Package config loads the run configuration: built-in defaults overlaid
// with a user-supplied JSON document. The merged value is immutable after
// load and passed explicitly to every component.
package config

import (
	"encoding/json"
	"fmt"
	"os"
)

// Config is the full run configuration.
type Config struct {
	Input      InputConfig      `json:"input"`
	Processing ProcessingConfig `json:"processing"`
	Output     OutputConfig     `json:"output"`
	Logging    LoggingConfig    `json:"logging"`
}

// InputConfig selects the workbooks to process.
type InputConfig struct {
	// ExcelFile is an explicit workbook path. When set, directory
	// scanning is skipped.
	ExcelFile string `json:"excel_file"`
	// InputDirectory is scanned with FilePattern when ExcelFile is empty.
	InputDirectory string `json:"input_directory"`
	// FilePattern is the glob used for directory scanning.
	FilePattern string `json:"file_pattern"`
	// RequiredSheets must exist in each workbook; a missing sheet skips
	// that file with an extraction error.
	RequiredSheets []string `json:"required_sheets"`
}

// ProcessingConfig selects optional extraction and validation passes.
type ProcessingConfig struct {
	// StrictFields makes silently-defaulted required fields fatal for
	// the file instead of a quiet substitution.
	StrictFields bool `json:"strict_fields"`
	// ValidateLocation rejects out-of-enum locations at generation time.
	ValidateLocation bool `json:"validate_location"`
	// SkipEmptyVMs drops VM rows with no hostname instead of
	// synthesizing names.
	SkipEmptyVMs bool `json:"skip_empty_vms"`
}

// OutputConfig controls where and how the packages are written.
type OutputConfig struct {
	// Directory is the output root; per-file package directories are
	// created inside it.
	Directory string `json:"directory"`
	// BackupPrevious copies the existing output root to a timestamped
	// backup directory before writing.
	BackupPrevious bool `json:"backup_previous"`
	// FolderNamingPattern names per-file directories; placeholders
	// {subscription} and {timestamp} are substituted.
	FolderNamingPattern string `json:"folder_naming_pattern"`
	// FallbackFolderNaming is used when no subscription was discovered;
	// placeholders {excel_filename} and {timestamp}.
	FallbackFolderNaming string `json:"fallback_folder_naming"`
	// WriteResults writes the machine-readable run results JSON next to
	// the packages.
	WriteResults bool `json:"write_results"`
}

// LoggingConfig controls log output.
type LoggingConfig struct {
	// Level is the minimum level: debug, info, warn, error.
	Level string `json:"level"`
	// File receives log output when set; empty logs to stderr.
	File string `json:"file"`
}

// Default returns the built-in configuration.
func Default() Config {
	return Config{
		Input: InputConfig{
			InputDirectory: "sourcefiles",
			FilePattern:    "*.xls*",
			RequiredSheets: []string{"Resources", "NSG", "Build_ENV"},
		},
		Processing: ProcessingConfig{},
		Output: OutputConfig{
			Directory:            "output_package",
			BackupPrevious:       true,
			FolderNamingPattern:  "{subscription}_{timestamp}",
			FallbackFolderNaming: "{excel_filename}_{timestamp}",
			WriteResults:         true,
		},
		Logging: LoggingConfig{
			Level: "info",
		},
	}
}

// Load reads a JSON configuration file and merges it over the defaults.
// Unknown keys are ignored; absent keys keep their default. An empty path
// returns pure defaults.
func Load(path string) (Config, error) {
	cfg := Default()
	if path == "" {
		return cfg, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return cfg, fmt.Errorf("read config %s: %w", path, err)
	}
	if err := json.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("parse config %s: %w", path, err)
	}
	return cfg, nil
}

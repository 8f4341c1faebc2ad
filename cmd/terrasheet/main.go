// Package main provides the CLI entry point for terrasheet.
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/wabcloud/terrasheet/pkg/terrasheet/config"
	"github.com/wabcloud/terrasheet/pkg/terrasheet/pipeline"
)

// Exit codes.
const (
	exitOK         = 0
	exitConfig     = 1
	exitProcessing = 2
	exitValidation = 3
)

var (
	configPath string
	inputFile  string
	inputDir   string
	outputDir  string
	dryRun     bool
	strict     bool
	verbose    bool
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "terrasheet",
		Short: "Convert Excel build sheets into Terraform deployment packages",
		Long: `terrasheet reads infrastructure build specifications from Excel
workbooks (VM lists, NSG rules, key vault settings, tags) and renders
them into complete Terraform deployment packages.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE:          run,
	}

	rootCmd.Flags().StringVarP(&configPath, "config", "c", "", "Configuration file path (JSON)")
	rootCmd.Flags().StringVarP(&inputFile, "input", "i", "", "Explicit input workbook path")
	rootCmd.Flags().StringVar(&inputDir, "input-dir", "", "Directory to scan for workbooks")
	rootCmd.Flags().StringVarP(&outputDir, "output", "o", "", "Output directory for generated packages")
	rootCmd.Flags().BoolVar(&dryRun, "dry-run", false, "Validate inputs without writing anything")
	rootCmd.Flags().BoolVar(&strict, "strict", false, "Fail when required fields fall back to defaults")
	rootCmd.Flags().BoolVarP(&verbose, "verbose", "v", false, "Enable debug logging")

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		if code, ok := err.(*exitError); ok {
			os.Exit(code.code)
		}
		os.Exit(exitConfig)
	}
}

// exitError carries a process exit code with the underlying message.
type exitError struct {
	code int
	err  error
}

func (e *exitError) Error() string { return e.err.Error() }
func (e *exitError) Unwrap() error { return e.err }

func run(cmd *cobra.Command, args []string) error {
	cfg, err := config.Load(configPath)
	if err != nil {
		return &exitError{code: exitConfig, err: err}
	}

	// CLI flags override the configuration file.
	if inputFile != "" {
		cfg.Input.ExcelFile = inputFile
	}
	if inputDir != "" {
		cfg.Input.InputDirectory = inputDir
		cfg.Input.ExcelFile = ""
	}
	if outputDir != "" {
		cfg.Output.Directory = outputDir
	}
	if strict {
		cfg.Processing.StrictFields = true
	}
	if verbose {
		cfg.Logging.Level = "debug"
	}

	logger, err := buildLogger(cfg.Logging)
	if err != nil {
		return &exitError{code: exitConfig, err: fmt.Errorf("logger setup: %w", err)}
	}
	defer logger.Sync()

	runner := pipeline.NewRunner(cfg, logger)
	runner.DryRun = dryRun

	results, err := runner.Run()
	if err != nil {
		return &exitError{code: exitConfig, err: err}
	}

	printSummary(results)

	switch {
	case results.Success:
		return nil
	case results.FilesProcessed == 0 && results.ValidationFailures == results.FilesFailed:
		return &exitError{code: exitValidation, err: fmt.Errorf("all %d file(s) failed validation", results.FilesFailed)}
	default:
		return &exitError{code: exitProcessing, err: fmt.Errorf("%d of %d file(s) failed", results.FilesFailed, results.FilesFailed+results.FilesProcessed)}
	}
}

// buildLogger constructs the zap logger from the logging configuration.
func buildLogger(cfg config.LoggingConfig) (*zap.Logger, error) {
	zc := zap.NewProductionConfig()
	level, err := zap.ParseAtomicLevel(cfg.Level)
	if err != nil {
		return nil, fmt.Errorf("invalid log level %q: %w", cfg.Level, err)
	}
	zc.Level = level
	if cfg.File != "" {
		zc.OutputPaths = []string{cfg.File}
	} else {
		zc.OutputPaths = []string{"stderr"}
	}
	return zc.Build()
}

// printSummary reports the run outcome on stdout.
func printSummary(results *pipeline.Results) {
	fmt.Printf("Files processed: %d\n", results.FilesProcessed)
	fmt.Printf("Files failed:    %d\n", results.FilesFailed)
	fmt.Printf("Files generated: %d\n", len(results.FilesGenerated))
	for _, msg := range results.Errors {
		fmt.Printf("  error: %s\n", msg)
	}
	for _, msg := range results.Warnings {
		fmt.Printf("  warning: %s\n", msg)
	}
}

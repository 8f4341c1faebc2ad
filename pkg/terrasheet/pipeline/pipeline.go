// Package pipeline sequences reader, detector, mapper, renderer, and
// writer for one or more input workbooks. Each run is an independent,
// stateless, one-shot batch transformation.
package pipeline

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"time"

	"go.uber.org/zap"

	terrasheet "github.com/wabcloud/terrasheet/pkg/terrasheet"
	"github.com/wabcloud/terrasheet/pkg/terrasheet/config"
	"github.com/wabcloud/terrasheet/pkg/terrasheet/mapper"
	"github.com/wabcloud/terrasheet/pkg/terrasheet/models"
	"github.com/wabcloud/terrasheet/pkg/terrasheet/render"
)

// resultsFileName is written into the output root when enabled.
const resultsFileName = "automation_results.json"

// Runner executes the conversion pipeline.
type Runner struct {
	cfg    config.Config
	log    *zap.Logger
	schema mapper.Schema
	// DryRun validates and converts in memory without writing anything.
	DryRun bool
	// now is replaceable for deterministic directory names in tests.
	now func() time.Time
}

// NewRunner builds a Runner over the given configuration and logger.
func NewRunner(cfg config.Config, log *zap.Logger) *Runner {
	return &Runner{
		cfg:    cfg,
		log:    log,
		schema: mapper.DefaultSchema(),
		now:    time.Now,
	}
}

// Run processes every discovered workbook. Per-file errors are collected
// into the results and do not abort the batch; the returned error is
// non-nil only for fatal configuration or environment problems.
func (r *Runner) Run() (*Results, error) {
	results := &Results{StartTime: r.now()}
	defer func() {
		results.EndTime = r.now()
		results.DurationSeconds = results.EndTime.Sub(results.StartTime).Seconds()
	}()

	files, err := r.discoverInputs()
	if err != nil {
		return results, err
	}
	r.log.Info("discovered input workbooks", zap.Int("count", len(files)))

	if !r.DryRun {
		if err := r.prepareOutputRoot(); err != nil {
			return results, err
		}
	}

	for i, file := range files {
		r.log.Info("processing workbook",
			zap.Int("index", i+1),
			zap.Int("total", len(files)),
			zap.String("file", filepath.Base(file)))

		written, err := r.processFile(file, results)
		if err != nil {
			results.FilesFailed++
			results.Errors = append(results.Errors, fmt.Sprintf("%s: %v", filepath.Base(file), err))
			var vErr *terrasheet.ValidationError
			var mErr *mapper.MappingError
			if errors.As(err, &vErr) || errors.As(err, &mErr) {
				results.ValidationFailures++
			}
			r.log.Error("workbook failed", zap.String("file", filepath.Base(file)), zap.Error(err))
			continue
		}
		results.FilesProcessed++
		results.FilesGenerated = append(results.FilesGenerated, written...)
	}

	results.Success = results.FilesFailed == 0 && results.FilesProcessed > 0

	if !r.DryRun && r.cfg.Output.WriteResults {
		if err := r.writeResults(results); err != nil {
			r.log.Warn("could not write results document", zap.Error(err))
		}
	}

	r.log.Info("run complete",
		zap.Bool("success", results.Success),
		zap.Int("processed", results.FilesProcessed),
		zap.Int("failed", results.FilesFailed),
		zap.Int("generated", len(results.FilesGenerated)))

	return results, nil
}

// discoverInputs resolves the explicit input file or scans the input
// directory with the configured glob pattern.
func (r *Runner) discoverInputs() ([]string, error) {
	in := r.cfg.Input

	if in.ExcelFile != "" {
		if _, err := os.Stat(in.ExcelFile); err != nil {
			return nil, fmt.Errorf("input file %s: %w", in.ExcelFile, terrasheet.ErrFileNotFound)
		}
		return []string{in.ExcelFile}, nil
	}

	if _, err := os.Stat(in.InputDirectory); err != nil {
		return nil, fmt.Errorf("input directory %s: %w", in.InputDirectory, terrasheet.ErrFileNotFound)
	}

	matches, err := filepath.Glob(filepath.Join(in.InputDirectory, in.FilePattern))
	if err != nil {
		return nil, fmt.Errorf("input pattern %q: %w", in.FilePattern, err)
	}

	var files []string
	for _, m := range matches {
		// Skip Excel lock files.
		if strings.HasPrefix(filepath.Base(m), "~$") {
			continue
		}
		if info, err := os.Stat(m); err == nil && !info.IsDir() {
			files = append(files, m)
		}
	}
	sort.Strings(files)

	if len(files) == 0 {
		return nil, fmt.Errorf("no workbooks matching %q in %s", in.FilePattern, in.InputDirectory)
	}
	return files, nil
}

// processFile converts one workbook: extract, map, render, write.
// Returns the written file paths.
func (r *Runner) processFile(path string, results *Results) ([]string, error) {
	opts := terrasheet.DefaultOptions()
	opts.RequiredSheets = r.cfg.Input.RequiredSheets

	wb, err := terrasheet.Extract(path, opts)
	if err != nil {
		return nil, err
	}

	resolver := mapper.NewResolver(r.schema)
	resolver.Strict = r.cfg.Processing.StrictFields
	resolver.SkipEmptyVMs = r.cfg.Processing.SkipEmptyVMs

	buildCfg, err := resolver.Map(wb)
	if err != nil {
		return nil, err
	}
	if len(buildCfg.Defaulted) > 0 {
		results.Warnings = append(results.Warnings,
			fmt.Sprintf("%s: defaulted fields: %s", wb.BookName, strings.Join(buildCfg.Defaulted, ", ")))
		r.log.Debug("fields defaulted",
			zap.String("file", wb.BookName),
			zap.Strings("fields", buildCfg.Defaulted))
	}

	docs, err := render.Package(buildCfg, render.Options{
		ValidateLocation: r.cfg.Processing.ValidateLocation,
	})
	if err != nil {
		return nil, err
	}

	if r.DryRun {
		r.log.Info("dry run: package validated",
			zap.String("file", wb.BookName),
			zap.Int("documents", len(docs)))
		return nil, nil
	}

	dir := filepath.Join(r.cfg.Output.Directory, r.packageDirName(buildCfg, path))
	written, err := writeDocuments(dir, docs)
	if err != nil {
		return written, err
	}
	r.log.Info("package written",
		zap.String("file", wb.BookName),
		zap.String("dir", dir),
		zap.Int("documents", len(written)))
	return written, nil
}

// packageDirName builds the per-file output directory name from the
// discovered subscription, falling back to the workbook base name.
func (r *Runner) packageDirName(buildCfg *models.BuildConfig, path string) string {
	timestamp := r.now().Format("20060102_150405")

	if buildCfg.Subscription != "" {
		name := strings.ReplaceAll(r.cfg.Output.FolderNamingPattern, "{subscription}", sanitizeDirName(buildCfg.Subscription))
		return strings.ReplaceAll(name, "{timestamp}", timestamp)
	}

	base := strings.TrimSuffix(filepath.Base(path), filepath.Ext(path))
	name := strings.ReplaceAll(r.cfg.Output.FallbackFolderNaming, "{excel_filename}", sanitizeDirName(base))
	return strings.ReplaceAll(name, "{timestamp}", timestamp)
}

// prepareOutputRoot backs up a pre-existing output root when configured
// and ensures the root exists.
func (r *Runner) prepareOutputRoot() error {
	out := r.cfg.Output

	if out.BackupPrevious {
		if info, err := os.Stat(out.Directory); err == nil && info.IsDir() {
			backupDir := fmt.Sprintf("backup_%s", r.now().Format("20060102_150405"))
			backupPath := filepath.Join(filepath.Dir(out.Directory), backupDir)
			if err := copyTree(out.Directory, backupPath); err != nil {
				return &terrasheet.WriteError{Path: backupPath, Err: err}
			}
			r.log.Info("previous outputs backed up", zap.String("dir", backupPath))
		}
	}

	if err := os.MkdirAll(out.Directory, 0o755); err != nil {
		return &terrasheet.WriteError{Path: out.Directory, Err: err}
	}
	return nil
}

// writeResults writes the machine-readable results document.
func (r *Runner) writeResults(results *Results) error {
	data, err := json.MarshalIndent(results, "", "  ")
	if err != nil {
		return err
	}
	path := filepath.Join(r.cfg.Output.Directory, resultsFileName)
	return os.WriteFile(path, data, 0o644)
}

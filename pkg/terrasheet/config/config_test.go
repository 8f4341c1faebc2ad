package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefault(t *testing.T) {
	cfg := Default()

	assert.Equal(t, "sourcefiles", cfg.Input.InputDirectory)
	assert.Equal(t, "*.xls*", cfg.Input.FilePattern)
	assert.Equal(t, []string{"Resources", "NSG", "Build_ENV"}, cfg.Input.RequiredSheets)
	assert.False(t, cfg.Processing.StrictFields)
	assert.False(t, cfg.Processing.ValidateLocation)
	assert.Equal(t, "output_package", cfg.Output.Directory)
	assert.True(t, cfg.Output.BackupPrevious)
	assert.Equal(t, "{subscription}_{timestamp}", cfg.Output.FolderNamingPattern)
	assert.True(t, cfg.Output.WriteResults)
	assert.Equal(t, "info", cfg.Logging.Level)
}

func TestLoadEmptyPathReturnsDefaults(t *testing.T) {
	cfg, err := Load("")
	require.NoError(t, err)
	assert.Equal(t, Default(), cfg)
}

func TestLoadMergesOverDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.json")
	body := `{
		"input": {"excel_file": "build.xlsx"},
		"processing": {"strict_fields": true},
		"output": {"directory": "out", "backup_previous": false},
		"logging": {"level": "debug"}
	}`
	require.NoError(t, os.WriteFile(path, []byte(body), 0o644))

	cfg, err := Load(path)
	require.NoError(t, err)

	// Overridden values.
	assert.Equal(t, "build.xlsx", cfg.Input.ExcelFile)
	assert.True(t, cfg.Processing.StrictFields)
	assert.Equal(t, "out", cfg.Output.Directory)
	assert.False(t, cfg.Output.BackupPrevious)
	assert.Equal(t, "debug", cfg.Logging.Level)

	// Untouched keys keep defaults.
	assert.Equal(t, "sourcefiles", cfg.Input.InputDirectory)
	assert.Equal(t, []string{"Resources", "NSG", "Build_ENV"}, cfg.Input.RequiredSheets)
	assert.Equal(t, "{subscription}_{timestamp}", cfg.Output.FolderNamingPattern)
}

func TestLoadUnknownKeysIgnored(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.json")
	require.NoError(t, os.WriteFile(path, []byte(`{"frobnicate": true}`), 0o644))

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, Default(), cfg)
}

func TestLoadMissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "nope.json"))
	assert.Error(t, err)
}

func TestLoadMalformedJSON(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.json")
	require.NoError(t, os.WriteFile(path, []byte("{not json"), 0o644))

	_, err := Load(path)
	assert.Error(t, err)
}

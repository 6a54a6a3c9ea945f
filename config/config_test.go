package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/spf13/cobra"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"subnet-planner/models"
)

func writeFile(t *testing.T, dir, name, body string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	require.NoError(t, os.WriteFile(path, []byte(body), 0644))
	return path
}

func TestLoad_ExplicitFile(t *testing.T) {
	path := writeFile(t, t.TempDir(), "planner.toml", `
[output]
format = "yaml"
directory = "reports"
max_records = 128

[tui]
history_size = 10

[log]
level = "debug"
`)

	cfg, used, err := Load(nil, path)
	require.NoError(t, err)
	assert.Equal(t, path, used)
	assert.Equal(t, models.FormatYAML, cfg.Output.Format)
	assert.Equal(t, "reports", cfg.Output.Directory)
	assert.Equal(t, 128, cfg.Output.MaxRecords)
	assert.True(t, cfg.Output.Color)
	assert.Equal(t, 10, cfg.TUI.HistorySize)
	assert.Equal(t, models.DefaultConfig.TUI.ScrollStep, cfg.TUI.ScrollStep)
	assert.Equal(t, "debug", cfg.Log.Level)
}

func TestLoad_MissingExplicitFile(t *testing.T) {
	_, _, err := Load(nil, filepath.Join(t.TempDir(), "absent.toml"))
	assert.Error(t, err)
}

func TestLoad_InvalidValue(t *testing.T) {
	path := writeFile(t, t.TempDir(), "planner.toml", "[output]\nformat = \"xml\"\n")

	_, _, err := Load(nil, path)
	var ce *models.ConfigError
	require.ErrorAs(t, err, &ce)
	assert.Equal(t, "output.format", ce.Field)
}

func TestLoad_EnvOverridesFile(t *testing.T) {
	path := writeFile(t, t.TempDir(), "planner.toml", "[output]\nformat = \"yaml\"\n")
	t.Setenv("SUBNET_PLANNER_OUTPUT_FORMAT", "json")
	t.Setenv("SUBNET_PLANNER_LOG_LEVEL", "warn")

	cfg, _, err := Load(nil, path)
	require.NoError(t, err)
	assert.Equal(t, models.FormatJSON, cfg.Output.Format)
	assert.Equal(t, "warn", cfg.Log.Level)
}

func TestLoad_FlagsOverrideEnv(t *testing.T) {
	path := writeFile(t, t.TempDir(), "planner.toml", "[output]\nmax_records = 50\n")
	t.Setenv("SUBNET_PLANNER_OUTPUT_FORMAT", "json")

	cmd := &cobra.Command{Use: "test"}
	cmd.Flags().String("format", "", "")
	cmd.Flags().Int("max-records", 0, "")
	cmd.Flags().String("output-dir", "", "")
	require.NoError(t, cmd.Flags().Parse([]string{"--format", "yaml"}))

	cfg, _, err := Load(cmd, path)
	require.NoError(t, err)
	assert.Equal(t, models.FormatYAML, cfg.Output.Format)
	assert.Equal(t, 50, cfg.Output.MaxRecords, "unset flag must not shadow the file")
	assert.Equal(t, models.DefaultConfig.Output.Directory, cfg.Output.Directory)
}

func TestWriteDefault(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "subnet-planner.toml")

	require.NoError(t, WriteDefault(path, false))
	assert.FileExists(t, path)

	err := WriteDefault(path, false)
	assert.ErrorIs(t, err, ErrConfigExists)
	assert.NoError(t, WriteDefault(path, true))

	cfg, used, err := Load(nil, path)
	require.NoError(t, err)
	assert.Equal(t, path, used)
	assert.Equal(t, models.DefaultConfig, *cfg)
}

func TestDefaultPath(t *testing.T) {
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())
	t.Setenv("HOME", t.TempDir())

	path, err := DefaultPath()
	require.NoError(t, err)
	assert.Equal(t, "subnet-planner.toml", filepath.Base(path))
	assert.Equal(t, AppName, filepath.Base(filepath.Dir(path)))
}

func TestLoad_ZeroMaxRecordsLiftsLimit(t *testing.T) {
	path := writeFile(t, t.TempDir(), "planner.toml", "[output]\nmax_records = 50\n")

	cmd := &cobra.Command{Use: "test"}
	cmd.Flags().Int("max-records", 0, "")
	require.NoError(t, cmd.Flags().Parse([]string{"--max-records", "0"}))

	cfg, _, err := Load(cmd, path)
	require.NoError(t, err)
	assert.Zero(t, cfg.Output.MaxRecords)

	// nothing set anywhere keeps the built-in ceiling
	empty := writeFile(t, t.TempDir(), "planner.toml", "")
	cfg, _, err = Load(nil, empty)
	require.NoError(t, err)
	assert.Equal(t, models.DefaultConfig.Output.MaxRecords, cfg.Output.MaxRecords)
}

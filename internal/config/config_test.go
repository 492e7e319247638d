package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/spf13/cobra"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func clearEnv(t *testing.T) {
	t.Helper()
	for _, k := range []string{"LOG_LEVEL", "JSON_LOG", "FORMAT", "FILTER", "ENV_FILE"} {
		t.Setenv(EnvPrefix+k, "")
		os.Unsetenv(EnvPrefix + k)
	}
	wd, wdErr := os.Getwd()
	require.NoError(t, wdErr)
	require.NoError(t, os.Chdir(t.TempDir()))
	t.Cleanup(func() { _ = os.Chdir(wd) })
}

func newCmd() *cobra.Command {
	cmd := &cobra.Command{Use: "test"}
	RegisterFlags(cmd)
	return cmd
}

func TestLoadDefaults(t *testing.T) {
	clearEnv(t)

	cfg, err := Load(nil)
	require.NoError(t, err)
	assert.Equal(t, DefaultLogLevel, cfg.LogLevel)
	assert.Equal(t, DefaultFormat, cfg.Format)
	assert.Equal(t, DefaultFilter, cfg.Filter)
	assert.False(t, cfg.JSONLog)
}

func TestLoadEnvironment(t *testing.T) {
	clearEnv(t)
	t.Setenv("FILTERS_FORMAT", "CSV")
	t.Setenv("FILTERS_LOG_LEVEL", "warn")
	t.Setenv("FILTERS_JSON_LOG", "true")

	cfg, err := Load(nil)
	require.NoError(t, err)
	assert.Equal(t, "csv", cfg.Format)
	assert.Equal(t, "warn", cfg.LogLevel)
	assert.True(t, cfg.JSONLog)
}

func TestLoadFlagsOverrideEnvironment(t *testing.T) {
	clearEnv(t)
	t.Setenv("FILTERS_FORMAT", "csv")

	cmd := newCmd()
	require.NoError(t, cmd.PersistentFlags().Set("format", "markdown"))
	require.NoError(t, cmd.PersistentFlags().Set("verbose", "true"))

	cfg, err := Load(cmd)
	require.NoError(t, err)
	assert.Equal(t, "markdown", cfg.Format)
	assert.Equal(t, "debug", cfg.LogLevel)
}

func TestLoadQuiet(t *testing.T) {
	clearEnv(t)

	cmd := newCmd()
	require.NoError(t, cmd.PersistentFlags().Set("quiet", "true"))

	cfg, err := Load(cmd)
	require.NoError(t, err)
	assert.Equal(t, "error", cfg.LogLevel)
}

func TestLoadEnvFile(t *testing.T) {
	clearEnv(t)

	path := filepath.Join(t.TempDir(), "filters.env")
	require.NoError(t, os.WriteFile(path, []byte("FILTERS_FORMAT=text\nFILTERS_LOG_LEVEL=debug\n"), 0644))

	cmd := newCmd()
	require.NoError(t, cmd.PersistentFlags().Set("env-file", path))

	cfg, err := Load(cmd)
	require.NoError(t, err)
	assert.Equal(t, "text", cfg.Format)
	assert.Equal(t, "debug", cfg.LogLevel)
	assert.Equal(t, path, cfg.EnvFile)
}

func TestLoadDefaultEnvFile(t *testing.T) {
	clearEnv(t)
	require.NoError(t, os.WriteFile(DefaultEnvFile, []byte("FILTERS_FORMAT=html\n"), 0644))

	cfg, err := Load(nil)
	require.NoError(t, err)
	assert.Equal(t, "html", cfg.Format)
}

func TestLoadMissingEnvFile(t *testing.T) {
	clearEnv(t)

	cmd := newCmd()
	require.NoError(t, cmd.PersistentFlags().Set("env-file", filepath.Join(t.TempDir(), "missing.env")))

	_, err := Load(cmd)
	assert.Error(t, err)
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		cfg     Config
		wantErr bool
	}{
		{"valid", Config{LogLevel: "info", Format: "json", Filter: "html_headers"}, false},
		{"bad level", Config{LogLevel: "trace", Format: "json", Filter: "html_headers"}, true},
		{"bad format", Config{LogLevel: "info", Format: "yaml", Filter: "html_headers"}, true},
		{"no filter", Config{LogLevel: "info", Format: "json"}, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := validate(&tt.cfg)
			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

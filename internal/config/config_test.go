package config

import (
	"context"
	"log/slog"
	"testing"

	"github.com/spf13/afero"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_Defaults(t *testing.T) {
	cfg, err := Load(afero.NewMemMapFs(), "")
	require.NoError(t, err)

	assert.Equal(t, "info", cfg.LogLevel)
	assert.Equal(t, "text", cfg.LogFormat)
	assert.Equal(t, "table", cfg.OutputFormat)
	assert.False(t, cfg.SwitchTo)
}

func TestLoad_File(t *testing.T) {
	fs := afero.NewMemMapFs()
	content := "log_level: debug\nlog_format: json\noutput_format: yaml\nswitch_to: true\n"
	require.NoError(t, afero.WriteFile(fs, "/etc/initfield.yaml", []byte(content), 0o644))

	cfg, err := Load(fs, "/etc/initfield.yaml")
	require.NoError(t, err)

	assert.Equal(t, "debug", cfg.LogLevel)
	assert.Equal(t, "json", cfg.LogFormat)
	assert.Equal(t, "yaml", cfg.OutputFormat)
	assert.True(t, cfg.SwitchTo)
}

func TestLoad_Environment(t *testing.T) {
	t.Setenv("INITFIELD_OUTPUT_FORMAT", "json")

	cfg, err := Load(afero.NewMemMapFs(), "")
	require.NoError(t, err)
	assert.Equal(t, "json", cfg.OutputFormat)
}

func TestLoad_Errors(t *testing.T) {
	fs := afero.NewMemMapFs()
	require.NoError(t, afero.WriteFile(fs, "/bad.yaml", []byte("output_format: xml\n"), 0o644))

	tests := []struct {
		name string
		path string
	}{
		{name: "explicit file missing", path: "/missing.yaml"},
		{name: "invalid setting", path: "/bad.yaml"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Load(fs, tt.path)
			assert.Error(t, err)
		})
	}
}

func TestParseLevel(t *testing.T) {
	tests := []struct {
		input   string
		want    slog.Level
		wantErr bool
	}{
		{input: "debug", want: slog.LevelDebug},
		{input: "INFO", want: slog.LevelInfo},
		{input: "", want: slog.LevelInfo},
		{input: "warning", want: slog.LevelWarn},
		{input: "error", want: slog.LevelError},
		{input: "trace", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got, err := ParseLevel(tt.input)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestNewLogger(t *testing.T) {
	cfg := &Config{LogLevel: "warn", LogFormat: "json"}
	logger := cfg.NewLogger()
	require.NotNil(t, logger)
	assert.False(t, logger.Enabled(context.Background(), slog.LevelInfo))
	assert.True(t, logger.Enabled(context.Background(), slog.LevelWarn))
}

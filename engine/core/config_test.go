package core

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeFile(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestFormatFromPath(t *testing.T) {
	tests := []struct {
		path    string
		want    ConfigFormat
		wantErr bool
	}{
		{"engine.toml", ConfigFormatTOML, false},
		{"/etc/engine/ENGINE.TOML", ConfigFormatTOML, false},
		{"engine.yaml", ConfigFormatYAML, false},
		{"engine.yml", ConfigFormatYAML, false},
		{"engine.json", "", true},
		{"engine", "", true},
	}

	for _, tt := range tests {
		t.Run(tt.path, func(t *testing.T) {
			got, err := FormatFromPath(tt.path)
			if tt.wantErr {
				assert.ErrorIs(t, err, ErrUnknownConfigFormat)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestDecodeConfig(t *testing.T) {
	tests := []struct {
		name   string
		format ConfigFormat
		input  string
		want   LogConfig
	}{
		{
			name:   "toml",
			format: ConfigFormatTOML,
			input: `
[log]
level = "debug"
prefix = "test"
report_caller = false
report_timestamp = false
time_format = "15:04:05"
`,
			want: LogConfig{Level: "debug", Prefix: "test", TimeFormat: "15:04:05"},
		},
		{
			name:   "yaml",
			format: ConfigFormatYAML,
			input: `
log:
  level: warn
  prefix: test
  report_caller: false
  report_timestamp: false
  time_format: "15:04:05"
`,
			want: LogConfig{Level: "warn", Prefix: "test", TimeFormat: "15:04:05"},
		},
		{
			name:   "partial toml keeps defaults",
			format: ConfigFormatTOML,
			input:  "[log]\nlevel = \"error\"\n",
			want: LogConfig{
				Level:           "error",
				Prefix:          DefaultConfig().Log.Prefix,
				ReportCaller:    true,
				ReportTimestamp: true,
				TimeFormat:      time.RFC3339,
			},
		},
		{
			name:   "empty toml",
			format: ConfigFormatTOML,
			input:  "",
			want:   DefaultConfig().Log,
		},
		{
			name:   "empty yaml",
			format: ConfigFormatYAML,
			input:  "",
			want:   DefaultConfig().Log,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg, err := DecodeConfig(strings.NewReader(tt.input), tt.format)
			require.NoError(t, err)
			assert.Equal(t, tt.want, cfg.Log)
		})
	}
}

func TestDecodeConfigErrors(t *testing.T) {
	_, err := DecodeConfig(strings.NewReader("[log]\nlevel = \"loud\"\n"), ConfigFormatTOML)
	assert.ErrorIs(t, err, ErrInvalidLogLevel)

	_, err = DecodeConfig(strings.NewReader("log:\n  level: loud\n"), ConfigFormatYAML)
	assert.ErrorIs(t, err, ErrInvalidLogLevel)

	_, err = DecodeConfig(strings.NewReader("[log"), ConfigFormatTOML)
	assert.Error(t, err)

	_, err = DecodeConfig(strings.NewReader("log: [unterminated"), ConfigFormatYAML)
	assert.Error(t, err)

	_, err = DecodeConfig(strings.NewReader(""), ConfigFormat("ini"))
	assert.ErrorIs(t, err, ErrUnknownConfigFormat)
}

func TestLoadConfig(t *testing.T) {
	dir := t.TempDir()

	path := writeFile(t, dir, "engine.toml", "[log]\nlevel = \"warn\"\n")
	cfg, err := LoadConfig(path)
	require.NoError(t, err)
	assert.Equal(t, "warn", cfg.Log.Level)

	path = writeFile(t, dir, "engine.yml", "log:\n  level: debug\n")
	cfg, err = LoadConfig(path)
	require.NoError(t, err)
	assert.Equal(t, "debug", cfg.Log.Level)

	_, err = LoadConfig(filepath.Join(dir, "missing.toml"))
	assert.ErrorIs(t, err, os.ErrNotExist)

	path = writeFile(t, dir, "engine.ini", "level=debug")
	_, err = LoadConfig(path)
	assert.ErrorIs(t, err, ErrUnknownConfigFormat)

	path = writeFile(t, dir, "bad.toml", "[log]\nlevel = \"loud\"\n")
	_, err = LoadConfig(path)
	assert.ErrorIs(t, err, ErrInvalidLogLevel)
	assert.Contains(t, err.Error(), path)
}

func TestValidate(t *testing.T) {
	cfg := DefaultConfig()
	require.NoError(t, cfg.Validate())

	for _, level := range []string{"debug", "info", "warn", "error", "fatal"} {
		cfg.Log.Level = level
		assert.NoError(t, cfg.Validate(), level)
	}

	cfg.Log.Level = ""
	assert.ErrorIs(t, cfg.Validate(), ErrInvalidLogLevel)
}

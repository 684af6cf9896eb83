package core

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/charmbracelet/log"
	"github.com/pelletier/go-toml/v2"
	"gopkg.in/yaml.v3"
)

type ConfigFormat string

const (
	ConfigFormatTOML ConfigFormat = "toml"
	ConfigFormatYAML ConfigFormat = "yaml"
)

// Config is the engine configuration, read from a TOML or YAML file.
// Keys missing from the file keep the values of DefaultConfig.
type Config struct {
	Log LogConfig `toml:"log" yaml:"log"`
}

type LogConfig struct {
	// one of debug, info, warn, error, fatal
	Level           string `toml:"level" yaml:"level"`
	Prefix          string `toml:"prefix" yaml:"prefix"`
	ReportCaller    bool   `toml:"report_caller" yaml:"report_caller"`
	ReportTimestamp bool   `toml:"report_timestamp" yaml:"report_timestamp"`
	TimeFormat      string `toml:"time_format" yaml:"time_format"`
}

func DefaultConfig() *Config {
	return &Config{
		Log: LogConfig{
			Level:           "info",
			Prefix:          "Engine 🏎️ ",
			ReportCaller:    true,
			ReportTimestamp: true,
			TimeFormat:      time.RFC3339,
		},
	}
}

// FormatFromPath picks the decoder from the file extension.
func FormatFromPath(path string) (ConfigFormat, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".toml":
		return ConfigFormatTOML, nil
	case ".yaml", ".yml":
		return ConfigFormatYAML, nil
	default:
		return "", fmt.Errorf("%w: %s", ErrUnknownConfigFormat, path)
	}
}

func LoadConfig(path string) (*Config, error) {
	format, err := FormatFromPath(path)
	if err != nil {
		return nil, err
	}

	file, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer file.Close()

	cfg, err := DecodeConfig(file, format)
	if err != nil {
		return nil, fmt.Errorf("failed to load config %s: %w", path, err)
	}
	return cfg, nil
}

func DecodeConfig(r io.Reader, format ConfigFormat) (*Config, error) {
	cfg := DefaultConfig()

	switch format {
	case ConfigFormatTOML:
		if err := toml.NewDecoder(r).Decode(cfg); err != nil {
			return nil, err
		}
	case ConfigFormatYAML:
		// an empty document decodes to io.EOF; treat it as "all defaults"
		if err := yaml.NewDecoder(r).Decode(cfg); err != nil && !errors.Is(err, io.EOF) {
			return nil, err
		}
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownConfigFormat, format)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func (c *Config) Validate() error {
	if _, err := log.ParseLevel(c.Log.Level); err != nil {
		return fmt.Errorf("%w: %q", ErrInvalidLogLevel, c.Log.Level)
	}
	return nil
}

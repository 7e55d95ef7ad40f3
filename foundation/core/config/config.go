// File: config.go
// Title: Core Configuration Management Implementation
// Description: Implements the typed Config for timeconv and its loading from
//              TOML and YAML files, defaults and environment overrides.
// Author: msto63
// Version: v0.2.0
// Created: 2025-01-25
// Modified: 2026-10-19
//
// Change History:
// - 2025-01-25 v0.1.0: Initial implementation with TOML/YAML support
// - 2026-10-19 v0.2.0: Typed configuration with defaults and TIMECONV_ overrides

package config

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
	"gopkg.in/yaml.v3"

	mdwerror "github.com/msto63/timeconv/foundation/core/error"
)

// Format represents the configuration file format
type Format int

const (
	// FormatTOML represents TOML format (default)
	FormatTOML Format = iota

	// FormatYAML represents YAML format
	FormatYAML

	// FormatAuto auto-detects format from file extension
	FormatAuto
)

// String returns the string representation of the format
func (f Format) String() string {
	switch f {
	case FormatTOML:
		return "toml"
	case FormatYAML:
		return "yaml"
	case FormatAuto:
		return "auto"
	default:
		return "unknown"
	}
}

// EnvPrefix prefixes every environment override, e.g. TIMECONV_TIME_TIMEZONE.
const EnvPrefix = "TIMECONV"

// Output modes for command results
const (
	OutputText  = "text"
	OutputTable = "table"
)

// Config holds the complete timeconv configuration
type Config struct {
	Time TimeConfig `toml:"time" yaml:"time"`
	Log  LogConfig  `toml:"log" yaml:"log"`

	filePath string
	format   Format
}

// TimeConfig holds conversion settings
type TimeConfig struct {
	// Timezone is the IANA zone used as "local". Empty means the host zone.
	Timezone string `toml:"timezone" yaml:"timezone"`
	// Format is the default strftime pattern for custom formatting.
	Format string `toml:"format" yaml:"format"`
	// Output selects how commands print results: text or table.
	Output string `toml:"output" yaml:"output"`
}

// LogConfig holds logger settings
type LogConfig struct {
	Level  string `toml:"level" yaml:"level"`
	Format string `toml:"format" yaml:"format"`
}

// Default returns a configuration with all defaults applied
func Default() *Config {
	cfg := &Config{format: FormatTOML}
	cfg.applyDefaults()
	return cfg
}

// Load loads configuration from a file, detecting the format from the
// extension. Environment overrides are applied and the result is validated.
func Load(filePath string) (*Config, error) {
	filePath = os.ExpandEnv(filePath)

	if strings.TrimSpace(filePath) == "" {
		return nil, mdwerror.New("config file path cannot be empty").
			WithCode(mdwerror.CodeInvalidInput).
			WithOperation("config.Load")
	}

	if _, err := os.Stat(filePath); os.IsNotExist(err) {
		return nil, mdwerror.New(fmt.Sprintf("config file not found: %s", filePath)).
			WithCode(mdwerror.CodeNotFound).
			WithOperation("config.Load").
			WithDetail("filePath", filePath)
	}

	content, err := os.ReadFile(filePath)
	if err != nil {
		return nil, mdwerror.Wrap(err, "failed to read config file").
			WithCode(mdwerror.CodeConfigError).
			WithOperation("config.Load").
			WithDetail("filePath", filePath)
	}

	cfg, err := parse(content, detectFormat(filePath))
	if err != nil {
		return nil, mdwerror.Wrap(err, "failed to parse config file").
			WithCode(mdwerror.CodeInvalidInput).
			WithOperation("config.Load").
			WithDetail("filePath", filePath)
	}
	cfg.filePath = filePath

	return cfg.finish()
}

// LoadFromString loads configuration from a string in the given format
func LoadFromString(content string, format Format) (*Config, error) {
	if format == FormatAuto {
		format = FormatTOML
	}

	cfg, err := parse([]byte(content), format)
	if err != nil {
		return nil, mdwerror.Wrap(err, "failed to parse config content").
			WithCode(mdwerror.CodeInvalidInput).
			WithOperation("config.LoadFromString").
			WithDetail("format", format.String())
	}

	return cfg.finish()
}

func (c *Config) finish() (*Config, error) {
	c.applyDefaults()
	c.applyEnv()
	if err := c.Validate().Err(); err != nil {
		return nil, err
	}
	return c, nil
}

// detectFormat detects the configuration format from file extension
func detectFormat(filePath string) Format {
	switch strings.ToLower(filepath.Ext(filePath)) {
	case ".yaml", ".yml":
		return FormatYAML
	default:
		return FormatTOML
	}
}

func parse(content []byte, format Format) (*Config, error) {
	cfg := &Config{format: format}

	switch format {
	case FormatYAML:
		if len(bytes.TrimSpace(content)) == 0 {
			return cfg, nil
		}
		dec := yaml.NewDecoder(bytes.NewReader(content))
		dec.KnownFields(true)
		if err := dec.Decode(cfg); err != nil {
			return nil, err
		}
	default:
		md, err := toml.Decode(string(content), cfg)
		if err != nil {
			return nil, err
		}
		if undecoded := md.Undecoded(); len(undecoded) > 0 {
			return nil, fmt.Errorf("unknown configuration key %q", undecoded[0].String())
		}
	}

	return cfg, nil
}

func (c *Config) applyDefaults() {
	if c.Time.Format == "" {
		c.Time.Format = "%Y-%m-%d %H:%M:%S"
	}
	if c.Time.Output == "" {
		c.Time.Output = OutputText
	}

	if c.Log.Level == "" {
		c.Log.Level = "warn"
	}
	if c.Log.Format == "" {
		c.Log.Format = "console"
	}
}

// applyEnv overrides values from TIMECONV_<SECTION>_<KEY> variables
func (c *Config) applyEnv() {
	overrides := map[string]*string{
		"time.timezone": &c.Time.Timezone,
		"time.format":   &c.Time.Format,
		"time.output":   &c.Time.Output,
		"log.level":     &c.Log.Level,
		"log.format":    &c.Log.Format,
	}

	for key, target := range overrides {
		if value, ok := os.LookupEnv(EnvKey(key)); ok && value != "" {
			*target = value
		}
	}
}

// EnvKey converts a dotted key to its environment variable name
func EnvKey(key string) string {
	envKey := strings.ToUpper(strings.ReplaceAll(key, ".", "_"))
	return EnvPrefix + "_" + envKey
}

// FilePath returns the path of the loaded configuration file
func (c *Config) FilePath() string {
	return c.filePath
}

// Format returns the configuration file format
func (c *Config) Format() Format {
	return c.format
}

// String returns the configuration as TOML
func (c *Config) String() string {
	var buf bytes.Buffer
	if err := toml.NewEncoder(&buf).Encode(c); err != nil {
		return fmt.Sprintf("Config{error: %v}", err)
	}
	return buf.String()
}

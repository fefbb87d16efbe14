// ============================================================================
// limonaca - Limonaca language front end
// ============================================================================
//
// Package:     config
// Description: TOML configuration with .env support and environment overrides
// Author:      Mike Stoffels
// Created:     2026-10-16
// License:     MIT
// ============================================================================

package config

import (
	"fmt"
	"os"
	"strings"

	"github.com/BurntSushi/toml"
	"github.com/joho/godotenv"

	mdwerror "github.com/msto63/limonaca/foundation/core/error"
	mdwlog "github.com/msto63/limonaca/foundation/core/log"
	mdwfilex "github.com/msto63/limonaca/foundation/utils/filex"
	mdwstringx "github.com/msto63/limonaca/foundation/utils/stringx"
)

// Environment variables read by this package
const (
	EnvConfig       = "LIMONACA_CONFIG"
	EnvLogLevel     = "LIMONACA_LOG_LEVEL"
	EnvOutputFormat = "LIMONACA_OUTPUT_FORMAT"
	EnvDotEnvPath   = "ENV_PATH"
)

// DefaultDotEnvPath is read by LoadDotEnv when ENV_PATH is unset
const DefaultDotEnvPath = ".env"

// OutputFormats lists the accepted values of output.format
var OutputFormats = []string{"tree", "json", "yaml"}

// Config holds the complete application configuration
type Config struct {
	General GeneralConfig `toml:"general"`
	Parser  ParserConfig  `toml:"parser"`
	Output  OutputConfig  `toml:"output"`
	REPL    REPLConfig    `toml:"repl"`
}

// GeneralConfig holds general application settings
type GeneralConfig struct {
	Name      string `toml:"name"`
	LogLevel  string `toml:"log_level"`
	LogFormat string `toml:"log_format"`
}

// ParserConfig holds parser options
type ParserConfig struct {
	LenientParens bool `toml:"lenient_parens"`
	MaxTokens     int  `toml:"max_tokens"`
}

// OutputConfig holds rendering settings of the command-line tools
type OutputConfig struct {
	Format     string `toml:"format"`
	NoColor    bool   `toml:"no_color"`
	ShowTokens bool   `toml:"show_tokens"`
}

// REPLConfig holds settings of the interactive shell
type REPLConfig struct {
	Prompt       string `toml:"prompt"`
	HistoryLimit int    `toml:"history_limit"`
}

// Default returns the configuration used when no file is found
func Default() *Config {
	cfg := &Config{}
	cfg.applyDefaults()
	return cfg
}

// Load loads configuration from a TOML file
func Load(path string) (*Config, error) {
	path = mdwfilex.ExpandHome(os.ExpandEnv(path))

	if !mdwfilex.IsFile(path) {
		return nil, mdwerror.Newf("config file not found: %s", path).
			WithCode(mdwerror.CodeConfigError).
			WithDetail("path", path)
	}

	var cfg Config
	if _, err := toml.DecodeFile(path, &cfg); err != nil {
		return nil, mdwerror.Wrap(err, "failed to parse config").
			WithCode(mdwerror.CodeInvalidConfig).
			WithDetail("path", path)
	}

	cfg.applyDefaults()
	cfg.applyEnvOverrides()

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// SearchPaths returns the locations LoadFromEnv tries, in order
func SearchPaths() []string {
	return []string{
		"./configs/limonaca.toml",
		"./limonaca.toml",
		"~/.config/limonaca/limonaca.toml",
	}
}

// LoadFromEnv loads the file named by LIMONACA_CONFIG, or the first file in
// SearchPaths. Without any file the defaults are used. The second return
// value is the path that was loaded, empty for defaults.
func LoadFromEnv() (*Config, string, error) {
	if path := os.Getenv(EnvConfig); path != "" {
		cfg, err := Load(path)
		return cfg, path, err
	}

	path := mdwfilex.FirstExisting(SearchPaths()...)
	if path == "" {
		cfg := Default()
		cfg.applyEnvOverrides()
		if err := cfg.Validate(); err != nil {
			return nil, "", err
		}
		return cfg, "", nil
	}

	cfg, err := Load(path)
	return cfg, path, err
}

// LoadDotEnv loads environment variables from the file named by ENV_PATH,
// or from .env. A missing file is not an error; variables already set in
// the environment are not overwritten.
func LoadDotEnv() error {
	path := mdwstringx.FirstNonBlank(os.Getenv(EnvDotEnvPath), DefaultDotEnvPath)
	if !mdwfilex.IsFile(path) {
		return nil
	}

	if err := godotenv.Load(path); err != nil {
		return mdwerror.Wrap(err, "failed to load environment file").
			WithCode(mdwerror.CodeConfigError).
			WithDetail("path", path)
	}
	return nil
}

// applyDefaults sets default values for missing configuration
func (c *Config) applyDefaults() {
	// General
	if c.General.Name == "" {
		c.General.Name = "limonaca"
	}
	if c.General.LogLevel == "" {
		c.General.LogLevel = "warn"
	}
	if c.General.LogFormat == "" {
		c.General.LogFormat = "console"
	}

	// Output
	if c.Output.Format == "" {
		c.Output.Format = "tree"
	}

	// REPL
	if c.REPL.Prompt == "" {
		c.REPL.Prompt = "limonaca> "
	}
	if c.REPL.HistoryLimit == 0 {
		c.REPL.HistoryLimit = 200
	}
}

// applyEnvOverrides replaces settings that are also given as environment
// variables
func (c *Config) applyEnvOverrides() {
	if level := os.Getenv(EnvLogLevel); mdwstringx.IsNotBlank(level) {
		c.General.LogLevel = strings.TrimSpace(level)
	}
	if format := os.Getenv(EnvOutputFormat); mdwstringx.IsNotBlank(format) {
		c.Output.Format = strings.TrimSpace(format)
	}
}

// Validate checks the configuration for invalid values
func (c *Config) Validate() error {
	invalid := func(field string, value interface{}, reason string) error {
		return mdwerror.Newf("invalid configuration value for %s: %s", field, reason).
			WithCode(mdwerror.CodeInvalidConfig).
			WithDetail("field", field).
			WithDetail("value", value)
	}

	if _, err := mdwlog.ParseLevel(c.General.LogLevel); err != nil {
		return invalid("general.log_level", c.General.LogLevel, "expected trace, debug, info, warn or error")
	}
	if _, err := mdwlog.ParseFormat(c.General.LogFormat); err != nil {
		return invalid("general.log_format", c.General.LogFormat, "expected json, text or console")
	}
	if c.Parser.MaxTokens < 0 {
		return invalid("parser.max_tokens", c.Parser.MaxTokens, "must not be negative")
	}
	if !isOutputFormat(c.Output.Format) {
		return invalid("output.format", c.Output.Format, fmt.Sprintf("expected one of %s", strings.Join(OutputFormats, ", ")))
	}
	if c.REPL.HistoryLimit < 0 {
		return invalid("repl.history_limit", c.REPL.HistoryLimit, "must not be negative")
	}
	return nil
}

func isOutputFormat(format string) bool {
	for _, f := range OutputFormats {
		if strings.EqualFold(f, format) {
			return true
		}
	}
	return false
}

package config

import (
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"strconv"

	"github.com/joho/godotenv"
	"go.uber.org/zap/zapcore"
	"gopkg.in/yaml.v3"

	"github.com/tellerbook/teller/internal/passbook"
)

// Config represents the top-level teller.yaml configuration.
type Config struct {
	Bank     BankConfig     `yaml:"bank"`
	Passbook PassbookConfig `yaml:"passbook"`
	Logging  LoggingConfig  `yaml:"logging"`
	Shell    ShellConfig    `yaml:"shell"`
}

// BankConfig identifies the bank on printed statements.
type BankConfig struct {
	Name     string `yaml:"name"`
	Currency string `yaml:"currency"` // ISO 4217 code, display only
}

// PassbookConfig controls the savings transaction history.
type PassbookConfig struct {
	Capacity int `yaml:"capacity"`
}

// LoggingConfig controls the diagnostic logger.
type LoggingConfig struct {
	Level  string `yaml:"level"`  // debug, info, warn, error
	Format string `yaml:"format"` // console or json
}

// ShellConfig controls the interactive shell.
type ShellConfig struct {
	Prompt string `yaml:"prompt"`
}

// Environment variables that override file settings.
const (
	EnvCurrency         = "TELLER_CURRENCY"
	EnvPassbookCapacity = "TELLER_PASSBOOK_CAPACITY"
	EnvLogLevel         = "TELLER_LOG_LEVEL"
	EnvLogFormat        = "TELLER_LOG_FORMAT"
)

// Load reads a teller.yaml file from disk. Fields absent from the file keep
// their Default values.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading config: %w", err)
	}
	cfg := Default()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parsing config: %w", err)
	}
	return cfg, nil
}

// LoadOrDefault is Load, except that a missing file yields Default.
func LoadOrDefault(path string) (*Config, error) {
	cfg, err := Load(path)
	if errors.Is(err, fs.ErrNotExist) {
		return Default(), nil
	}
	return cfg, err
}

// Save writes a Config to a YAML file.
func Save(path string, cfg *Config) error {
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return fmt.Errorf("marshaling config: %w", err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("writing config: %w", err)
	}
	return nil
}

// Write encodes a Config as YAML to w.
func Write(w io.Writer, cfg *Config) error {
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(cfg); err != nil {
		return fmt.Errorf("encoding config: %w", err)
	}
	return enc.Close()
}

// Default returns a Config with sensible defaults.
func Default() *Config {
	return &Config{
		Bank: BankConfig{
			Name:     "Teller Savings Bank",
			Currency: "USD",
		},
		Passbook: PassbookConfig{
			Capacity: passbook.DefaultCapacity,
		},
		Logging: LoggingConfig{
			Level:  "warn",
			Format: "console",
		},
		Shell: ShellConfig{
			Prompt: "teller> ",
		},
	}
}

// LoadEnvFile loads variables from a .env file into the process environment
// without overriding ones already set. A missing file is not an error.
func LoadEnvFile(path string) error {
	if _, err := os.Stat(path); errors.Is(err, fs.ErrNotExist) {
		return nil
	}
	if err := godotenv.Load(path); err != nil {
		return fmt.Errorf("loading %s: %w", path, err)
	}
	return nil
}

// ApplyEnv overrides cfg with any TELLER_* variables found by lookup.
func ApplyEnv(cfg *Config, lookup func(string) (string, bool)) error {
	if v, ok := lookup(EnvCurrency); ok {
		cfg.Bank.Currency = v
	}
	if v, ok := lookup(EnvPassbookCapacity); ok {
		n, err := strconv.Atoi(v)
		if err != nil {
			return fmt.Errorf("parsing %s %q: %w", EnvPassbookCapacity, v, err)
		}
		cfg.Passbook.Capacity = n
	}
	if v, ok := lookup(EnvLogLevel); ok {
		cfg.Logging.Level = v
	}
	if v, ok := lookup(EnvLogFormat); ok {
		cfg.Logging.Format = v
	}
	return nil
}

// Validate checks that cfg is usable.
func (c *Config) Validate() error {
	var errs []error
	if c.Passbook.Capacity <= 0 {
		errs = append(errs, fmt.Errorf("passbook.capacity must be positive, got %d", c.Passbook.Capacity))
	}
	if _, err := zapcore.ParseLevel(c.Logging.Level); err != nil {
		errs = append(errs, fmt.Errorf("logging.level: %w", err))
	}
	if c.Logging.Format != "console" && c.Logging.Format != "json" {
		errs = append(errs, fmt.Errorf("logging.format must be console or json, got %q", c.Logging.Format))
	}
	return errors.Join(errs...)
}

// Copyright 2022 Gustavo C. Viegas. All rights reserved.

// Package config holds the settings that control tuple
// validation, formatting and logging.
//
// Settings are resolved in this order (highest first):
//  1. Command-line flags, then QUATC_* variables (cmd/quatc only)
//  2. Environment variables (MATHTUPLE_*)
//  3. Config file (YAML)
//  4. Default
//
// Environment variables:
//   - MATHTUPLE_DEBUG=true
//   - MATHTUPLE_EPSILON=1e-12
//   - MATHTUPLE_PRECISION=4
//   - MATHTUPLE_PRINT_TYPES=true
//   - MATHTUPLE_LOG_LEVEL=debug
//   - MATHTUPLE_LOG_FORMAT=json
//   - MATHTUPLE_LOG_FILE=/var/log/mathtuple.log
package config

import (
	"errors"
	"fmt"
	"math"
	"os"
	"strconv"
	"strings"
	"testing"

	"gopkg.in/yaml.v3"
)

// EnvPrefix is the prefix of every environment variable
// read by ApplyEnv.
const EnvPrefix = "MATHTUPLE_"

// DefaultEpsilon is the tolerance used by approximate
// equality when none is configured.
const DefaultEpsilon = 1e-12

// DefaultPrecision is the number of significant digits
// used when formatting tuple elements.
const DefaultPrecision = 4

// TupleConfig controls validation and formatting of tuples.
type TupleConfig struct {
	// Debug enables the finite-value check that runs at the
	// end of every mutating operation.
	Debug bool `mapstructure:"debug" yaml:"debug"`
	// Epsilon is the tolerance of approximate equality.
	Epsilon float64 `mapstructure:"epsilon" yaml:"epsilon"`
	// Precision is the number of significant digits
	// used by Format.
	Precision int `mapstructure:"precision" yaml:"precision"`
	// PrintTypes prefixes formatted tuples with their
	// type name.
	PrintTypes bool `mapstructure:"print_types" yaml:"print_types"`
}

// LoggerConfig controls the zap logger.
type LoggerConfig struct {
	Level       string `mapstructure:"level" yaml:"level"`
	Format      string `mapstructure:"format" yaml:"format"`
	ServiceName string `mapstructure:"service_name" yaml:"service_name"`
	AddSource   bool   `mapstructure:"add_source" yaml:"add_source"`
	// LogFile, if set, receives JSON logs rotated
	// according to the Max* fields.
	LogFile    string `mapstructure:"log_file" yaml:"log_file"`
	MaxSize    int    `mapstructure:"max_size" yaml:"max_size"`
	MaxBackups int    `mapstructure:"max_backups" yaml:"max_backups"`
	MaxAge     int    `mapstructure:"max_age" yaml:"max_age"`
	Compress   bool   `mapstructure:"compress" yaml:"compress"`
}

// Config is the complete configuration.
type Config struct {
	Tuple  TupleConfig  `mapstructure:"tuple" yaml:"tuple"`
	Logger LoggerConfig `mapstructure:"logger" yaml:"logger"`
}

// DefaultDebug reports whether checks are enabled when
// nothing else says otherwise.
// It is true in test binaries and when built with the
// lineardebug tag.
func DefaultDebug() bool {
	// testing.Testing needs the testing package linked in.
	// It only registers flags when a test binary calls
	// testing.Init, so other programs are unaffected.
	return debugTag || testing.Testing()
}

// DefaultTuple returns the default TupleConfig.
func DefaultTuple() TupleConfig {
	return TupleConfig{
		Debug:     DefaultDebug(),
		Epsilon:   DefaultEpsilon,
		Precision: DefaultPrecision,
	}
}

// Default returns the default Config.
func Default() *Config {
	return &Config{
		Tuple: DefaultTuple(),
		Logger: LoggerConfig{
			Level:       "info",
			Format:      "console",
			ServiceName: "mathtuple",
			MaxSize:     10,
			MaxBackups:  3,
			MaxAge:      28,
		},
	}
}

// LoadFromFile reads a YAML config file on top of the
// defaults and then applies environment overrides.
func LoadFromFile(path string) (*Config, error) {
	cfg := Default()
	if err := cfg.LoadFile(path); err != nil {
		return nil, err
	}
	if err := cfg.ApplyEnv(); err != nil {
		return nil, err
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// LoadFile overrides c with the keys set in the YAML
// file at path. It does not validate the result.
func (c *Config) LoadFile(path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("config: read %s: %w", path, err)
	}
	if err := yaml.Unmarshal(data, c); err != nil {
		return fmt.Errorf("config: parse %s: %w", path, err)
	}
	return nil
}

// LoadFromEnv returns the defaults with environment
// overrides applied.
func LoadFromEnv() (*Config, error) {
	cfg := Default()
	if err := cfg.ApplyEnv(); err != nil {
		return nil, err
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// ApplyEnv overrides c with any MATHTUPLE_* variables
// that are set.
func (c *Config) ApplyEnv() error {
	if v, ok := lookup("DEBUG"); ok {
		b, err := strconv.ParseBool(v)
		if err != nil {
			return envErr("DEBUG", err)
		}
		c.Tuple.Debug = b
	}
	if v, ok := lookup("EPSILON"); ok {
		f, err := strconv.ParseFloat(v, 64)
		if err != nil {
			return envErr("EPSILON", err)
		}
		c.Tuple.Epsilon = f
	}
	if v, ok := lookup("PRECISION"); ok {
		n, err := strconv.Atoi(v)
		if err != nil {
			return envErr("PRECISION", err)
		}
		c.Tuple.Precision = n
	}
	if v, ok := lookup("PRINT_TYPES"); ok {
		b, err := strconv.ParseBool(v)
		if err != nil {
			return envErr("PRINT_TYPES", err)
		}
		c.Tuple.PrintTypes = b
	}
	if v, ok := lookup("LOG_LEVEL"); ok {
		c.Logger.Level = strings.ToLower(v)
	}
	if v, ok := lookup("LOG_FORMAT"); ok {
		c.Logger.Format = strings.ToLower(v)
	}
	if v, ok := lookup("LOG_FILE"); ok {
		c.Logger.LogFile = v
	}
	return nil
}

func lookup(key string) (string, bool) {
	v, ok := os.LookupEnv(EnvPrefix + key)
	if !ok || v == "" {
		return "", false
	}
	return v, true
}

func envErr(key string, err error) error {
	return fmt.Errorf("config: %s%s: %w", EnvPrefix, key, err)
}

// ErrInvalid is wrapped by every error returned from
// Validate.
var ErrInvalid = errors.New("config: invalid configuration")

// Validate checks that c can be used.
func (c *Config) Validate() error {
	if err := c.Tuple.Validate(); err != nil {
		return err
	}
	switch c.Logger.Format {
	case "", "console", "json":
	default:
		return fmt.Errorf("%w: unknown log format %q", ErrInvalid, c.Logger.Format)
	}
	return nil
}

// Validate checks that c can be used.
func (c *TupleConfig) Validate() error {
	if math.IsNaN(c.Epsilon) || math.IsInf(c.Epsilon, 0) || c.Epsilon < 0 {
		return fmt.Errorf("%w: epsilon must be a non-negative finite number, got %v", ErrInvalid, c.Epsilon)
	}
	if c.Precision < 1 || c.Precision > 17 {
		return fmt.Errorf("%w: precision must be in [1, 17], got %d", ErrInvalid, c.Precision)
	}
	return nil
}

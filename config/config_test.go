// Copyright 2022 Gustavo C. Viegas. All rights reserved.

package config

import (
	"io/fs"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefault(t *testing.T) {
	cfg := Default()
	// Test binaries always default to checked mode.
	assert.True(t, cfg.Tuple.Debug)
	assert.Equal(t, DefaultEpsilon, cfg.Tuple.Epsilon)
	assert.Equal(t, DefaultPrecision, cfg.Tuple.Precision)
	assert.False(t, cfg.Tuple.PrintTypes)
	assert.Equal(t, "console", cfg.Logger.Format)
	require.NoError(t, cfg.Validate())
}

func TestLoadFromFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	data := []byte(`
tuple:
  debug: false
  epsilon: 0.001
  precision: 6
  print_types: true
logger:
  level: debug
  format: json
`)
	require.NoError(t, os.WriteFile(path, data, 0o600))

	cfg, err := LoadFromFile(path)
	require.NoError(t, err)
	assert.False(t, cfg.Tuple.Debug)
	assert.Equal(t, 0.001, cfg.Tuple.Epsilon)
	assert.Equal(t, 6, cfg.Tuple.Precision)
	assert.True(t, cfg.Tuple.PrintTypes)
	assert.Equal(t, "debug", cfg.Logger.Level)
	assert.Equal(t, "json", cfg.Logger.Format)
	// Unset keys keep their defaults.
	assert.Equal(t, "mathtuple", cfg.Logger.ServiceName)
}

func TestLoadFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte("tuple:\n  precision: 0\n"), 0o600))

	cfg := Default()
	cfg.Logger.ServiceName = "other"
	require.NoError(t, cfg.LoadFile(path))
	// Keys absent from the file are kept; nothing is validated.
	assert.Equal(t, "other", cfg.Logger.ServiceName)
	assert.Equal(t, 0, cfg.Tuple.Precision)
	require.ErrorIs(t, cfg.Validate(), ErrInvalid)

	err := cfg.LoadFile(filepath.Join(t.TempDir(), "missing.yaml"))
	require.ErrorIs(t, err, fs.ErrNotExist)
}

func TestLoadFromFileErrors(t *testing.T) {
	_, err := LoadFromFile(filepath.Join(t.TempDir(), "missing.yaml"))
	require.Error(t, err)

	path := filepath.Join(t.TempDir(), "bad.yaml")
	require.NoError(t, os.WriteFile(path, []byte("tuple: [1, 2"), 0o600))
	_, err = LoadFromFile(path)
	require.Error(t, err)

	path = filepath.Join(t.TempDir(), "neg.yaml")
	require.NoError(t, os.WriteFile(path, []byte("tuple:\n  epsilon: -1\n"), 0o600))
	_, err = LoadFromFile(path)
	require.ErrorIs(t, err, ErrInvalid)
}

func TestApplyEnv(t *testing.T) {
	t.Setenv("MATHTUPLE_DEBUG", "false")
	t.Setenv("MATHTUPLE_EPSILON", "1e-6")
	t.Setenv("MATHTUPLE_PRECISION", "8")
	t.Setenv("MATHTUPLE_PRINT_TYPES", "true")
	t.Setenv("MATHTUPLE_LOG_LEVEL", "WARN")

	cfg, err := LoadFromEnv()
	require.NoError(t, err)
	assert.False(t, cfg.Tuple.Debug)
	assert.Equal(t, 1e-6, cfg.Tuple.Epsilon)
	assert.Equal(t, 8, cfg.Tuple.Precision)
	assert.True(t, cfg.Tuple.PrintTypes)
	assert.Equal(t, "warn", cfg.Logger.Level)
}

func TestApplyEnvErrors(t *testing.T) {
	for _, key := range []string{"DEBUG", "EPSILON", "PRECISION", "PRINT_TYPES"} {
		t.Run(key, func(t *testing.T) {
			t.Setenv(EnvPrefix+key, "not-a-value")
			err := Default().ApplyEnv()
			require.Error(t, err)
			assert.Contains(t, err.Error(), EnvPrefix+key)
		})
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name string
		edit func(*Config)
		ok   bool
	}{
		{"default", func(*Config) {}, true},
		{"zero epsilon", func(c *Config) { c.Tuple.Epsilon = 0 }, true},
		{"negative epsilon", func(c *Config) { c.Tuple.Epsilon = -1e-9 }, false},
		{"zero precision", func(c *Config) { c.Tuple.Precision = 0 }, false},
		{"huge precision", func(c *Config) { c.Tuple.Precision = 30 }, false},
		{"bad format", func(c *Config) { c.Logger.Format = "xml" }, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := Default()
			tt.edit(cfg)
			err := cfg.Validate()
			if tt.ok {
				assert.NoError(t, err)
			} else {
				assert.ErrorIs(t, err, ErrInvalid)
			}
		})
	}
}

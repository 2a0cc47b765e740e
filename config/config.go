// SPDX-License-Identifier: MIT
// Package: partlath/config
//
// config.go — viper-backed configuration with typed getters.

package config

import (
	"errors"
	"fmt"
	"io/fs"
	"strings"

	"github.com/spf13/pflag"
	"github.com/spf13/viper"

	"github.com/katalvlaran/partlath/core"
)

// Keys.
const (
	KeyInputFile     = "input_file"
	KeyOutputFile    = "output_file"
	KeyFormat        = "format"
	KeyMethod        = "method"
	KeyParts         = "parts"
	KeyErrorMargin   = "error_margin"
	KeyForce         = "force"
	KeyGraphIndex    = "graph_index"
	KeySeed          = "seed"
	KeySolver        = "eigen.solver"
	KeyTolerance     = "eigen.tolerance"
	KeyMaxIterFactor = "eigen.max_iter_factor"
	KeyBanding       = "spectral.banding"
	KeyStrict        = "repair.strict"
	KeyLogLevel      = "logging.level"
	KeyLogConsole    = "logging.console"
	KeySummary       = "summary"
)

// EnvPrefix prefixes environment overrides: eigen.solver ⇒ PARTLATH_EIGEN_SOLVER.
const EnvPrefix = "PARTLATH"

// flagKeys maps CLI flag names onto configuration keys.
var flagKeys = map[string]string{
	"input-file":   KeyInputFile,
	"output-file":  KeyOutputFile,
	"format":       KeyFormat,
	"method":       KeyMethod,
	"parts":        KeyParts,
	"error_margin": KeyErrorMargin,
	"force":        KeyForce,
	"graph_index":  KeyGraphIndex,
	"seed":         KeySeed,
	"summary":      KeySummary,
	"log-level":    KeyLogLevel,
	"strict":       KeyStrict,
	"solver":       KeySolver,
	"banding":      KeyBanding,
}

// Config manages run configuration using viper.
type Config struct {
	v *viper.Viper
}

// New creates a configuration with defaults and environment lookup enabled.
func New() *Config {
	v := viper.New()

	v.SetDefault(KeyFormat, "")
	v.SetDefault(KeyMethod, "")
	v.SetDefault(KeyParts, 2)
	v.SetDefault(KeyErrorMargin, 10)
	v.SetDefault(KeyForce, false)
	v.SetDefault(KeyGraphIndex, 0)
	v.SetDefault(KeySeed, 0)

	v.SetDefault(KeySolver, "power")
	v.SetDefault(KeyTolerance, 1e-6)
	v.SetDefault(KeyMaxIterFactor, 10)
	v.SetDefault(KeyBanding, "rotate")
	v.SetDefault(KeyStrict, false)

	v.SetDefault(KeyLogLevel, "info")
	v.SetDefault(KeyLogConsole, true)
	v.SetDefault(KeySummary, false)

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	return &Config{v: v}
}

// LoadFromFile merges the file at path. A missing or unreadable file wraps
// core.ErrIO; a malformed one wraps core.ErrConfig.
func (c *Config) LoadFromFile(path string) error {
	c.v.SetConfigFile(path)
	if err := c.v.ReadInConfig(); err != nil {
		var pathErr *fs.PathError
		if errors.As(err, &pathErr) {
			return fmt.Errorf("config: %v: %w", err, core.ErrIO)
		}
		return fmt.Errorf("config: %s: %v: %w", path, err, core.ErrConfig)
	}

	return nil
}

// BindFlags binds every known flag present in fs to its key. Flags absent
// from fs are skipped.
func (c *Config) BindFlags(fs *pflag.FlagSet) error {
	for name, key := range flagKeys {
		f := fs.Lookup(name)
		if f == nil {
			continue
		}
		if err := c.v.BindPFlag(key, f); err != nil {
			return fmt.Errorf("config: bind --%s: %v: %w", name, err, core.ErrConfig)
		}
	}

	return nil
}

// Set overrides key for the lifetime of c.
func (c *Config) Set(key string, value interface{}) {
	c.v.Set(key, value)
}

// Getters for run parameters.
func (c *Config) InputFile() string { return c.v.GetString(KeyInputFile) }
func (c *Config) OutputFile() string { return c.v.GetString(KeyOutputFile) }
func (c *Config) Format() string { return strings.ToLower(c.v.GetString(KeyFormat)) }
func (c *Config) Method() string { return strings.ToLower(c.v.GetString(KeyMethod)) }
func (c *Config) Parts() int { return c.v.GetInt(KeyParts) }
func (c *Config) ErrorMargin() int { return c.v.GetInt(KeyErrorMargin) }
func (c *Config) Force() bool { return c.v.GetBool(KeyForce) }
func (c *Config) GraphIndex() int { return c.v.GetInt(KeyGraphIndex) }
func (c *Config) Seed() int64 { return c.v.GetInt64(KeySeed) }

// Getters for engine and output knobs.
func (c *Config) Solver() string { return strings.ToLower(c.v.GetString(KeySolver)) }
func (c *Config) Tolerance() float64 { return c.v.GetFloat64(KeyTolerance) }
func (c *Config) MaxIterFactor() int { return c.v.GetInt(KeyMaxIterFactor) }
func (c *Config) Banding() string { return strings.ToLower(c.v.GetString(KeyBanding)) }
func (c *Config) Strict() bool { return c.v.GetBool(KeyStrict) }
func (c *Config) LogLevel() string { return c.v.GetString(KeyLogLevel) }
func (c *Config) LogConsole() bool { return c.v.GetBool(KeyLogConsole) }
func (c *Config) Summary() bool { return c.v.GetBool(KeySummary) }

// SPDX-License-Identifier: MIT

// Package config resolves partlath run settings from layered sources:
// built-in defaults, an optional YAML/JSON/TOML file, PARTLATH_* environment
// variables and command-line flags (highest priority).
//
// Config wraps a private viper instance with typed getters; Settings is the
// resolved, validated snapshot handed to the partition layer. CreateLogger
// builds the zerolog logger described by the logging.* keys.
package config

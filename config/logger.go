// SPDX-License-Identifier: MIT
// Package: partlath/config

package config

import (
	"io"

	"github.com/rs/zerolog"
)

// CreateLogger builds a zerolog logger writing to w. An unknown level falls
// back to info; logging.console selects the human-readable writer.
func (c *Config) CreateLogger(w io.Writer) zerolog.Logger {
	level, err := zerolog.ParseLevel(c.LogLevel())
	if err != nil || c.LogLevel() == "" {
		level = zerolog.InfoLevel
	}
	if c.LogConsole() {
		w = zerolog.ConsoleWriter{Out: w, TimeFormat: "15:04:05"}
	}

	return zerolog.New(w).Level(level).With().Timestamp().Str("service", "partlath").Logger()
}

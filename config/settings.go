// SPDX-License-Identifier: MIT
// Package: partlath/config
//
// settings.go — resolved settings and struct-tag validation.

package config

import (
	"errors"
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/rs/zerolog"

	"github.com/katalvlaran/partlath/core"
	"github.com/katalvlaran/partlath/partition"
	"github.com/katalvlaran/partlath/spectral"
)

var validate = validator.New()

// Settings is a validated snapshot of a Config.
type Settings struct {
	InputFile     string  `validate:"required"`
	OutputFile    string  `validate:"required"`
	Format        string  `validate:"required,oneof=ascii binary"`
	Method        string  `validate:"required,oneof=kl m"`
	Parts         int     `validate:"min=2"`
	ErrorMargin   int     `validate:"gte=0,lte=100"`
	GraphIndex    int     `validate:"gte=0"`
	Solver        string  `validate:"oneof=power exact"`
	Tolerance     float64 `validate:"gt=0,lt=1"`
	MaxIterFactor int     `validate:"min=1"`
	Banding       string  `validate:"oneof=modulo rotate block"`

	Force      bool
	Seed       int64
	Strict     bool
	LogLevel   string
	LogConsole bool
	Summary    bool
}

// Settings resolves every key and validates the result. Violations are
// reported together and wrap core.ErrConfig.
func (c *Config) Settings() (Settings, error) {
	s := Settings{
		InputFile:     c.InputFile(),
		OutputFile:    c.OutputFile(),
		Format:        c.Format(),
		Method:        c.Method(),
		Parts:         c.Parts(),
		ErrorMargin:   c.ErrorMargin(),
		Force:         c.Force(),
		GraphIndex:    c.GraphIndex(),
		Seed:          c.Seed(),
		Solver:        c.Solver(),
		Tolerance:     c.Tolerance(),
		MaxIterFactor: c.MaxIterFactor(),
		Banding:       c.Banding(),
		Strict:        c.Strict(),
		LogLevel:      c.LogLevel(),
		LogConsole:    c.LogConsole(),
		Summary:       c.Summary(),
	}
	if err := validate.Struct(s); err != nil {
		return s, formatValidationError(err)
	}

	return s, nil
}

// Params maps s onto partition parameters.
func (s Settings) Params(logger zerolog.Logger) partition.Params {
	return partition.Params{
		Parts:         s.Parts,
		Method:        partition.Method(s.Method),
		Margin:        s.ErrorMargin,
		Force:         s.Force,
		Seed:          s.Seed,
		Strict:        s.Strict,
		Solver:        spectral.Solver(s.Solver),
		Banding:       spectral.Banding(s.Banding),
		Tolerance:     s.Tolerance,
		MaxIterFactor: s.MaxIterFactor,
		Logger:        logger,
	}
}

func formatValidationError(err error) error {
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return fmt.Errorf("config: %v: %w", err, core.ErrConfig)
	}
	msgs := make([]string, 0, len(verrs))
	for _, e := range verrs {
		msgs = append(msgs, formatFieldError(e))
	}

	return fmt.Errorf("config: %s: %w", strings.Join(msgs, "; "), core.ErrConfig)
}

func formatFieldError(e validator.FieldError) string {
	field := strings.ToLower(e.Field())

	switch e.Tag() {
	case "required":
		return fmt.Sprintf("%s is required", field)
	case "oneof":
		return fmt.Sprintf("%s must be one of: %s", field, e.Param())
	case "min", "gte":
		return fmt.Sprintf("%s must be at least %s", field, e.Param())
	case "lte":
		return fmt.Sprintf("%s must be at most %s", field, e.Param())
	case "gt", "lt":
		return fmt.Sprintf("%s must lie strictly inside (0,1)", field)
	default:
		return fmt.Sprintf("%s is invalid", field)
	}
}

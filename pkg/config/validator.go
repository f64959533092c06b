// Copyright 2026 Codestyle CI. All rights reserved.
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.

package config

import (
	"fmt"
	"strings"
)

// ValidationError describes one invalid configuration field.
type ValidationError struct {
	Field   string
	Value   string
	Message string
}

// Error returns the error message.
func (e *ValidationError) Error() string {
	return fmt.Sprintf("config: %s=%q %s", e.Field, e.Value, e.Message)
}

// Validator validates configuration.
type Validator struct{}

// NewValidator creates a new validator.
func NewValidator() *Validator {
	return &Validator{}
}

// Validate validates a configuration.
func (v *Validator) Validate(cfg *Config) error {
	if err := v.ValidateGlobal(&cfg.Global); err != nil {
		return err
	}
	for i := range cfg.Linters {
		if err := v.ValidateLinter(&cfg.Linters[i]); err != nil {
			return err
		}
	}
	return nil
}

// ValidateGlobal validates global configuration.
func (v *Validator) ValidateGlobal(cfg *GlobalConfig) error {
	validLevels := []string{"debug", "info", "warn", "error"}
	if cfg.LogLevel != "" {
		valid := false
		for _, l := range validLevels {
			if strings.EqualFold(cfg.LogLevel, l) {
				valid = true
				break
			}
		}
		if !valid {
			return &ValidationError{
				Field:   "global.log_level",
				Value:   cfg.LogLevel,
				Message: fmt.Sprintf("must be one of: %s", strings.Join(validLevels, ", ")),
			}
		}
	}

	if cfg.Concurrency < 1 {
		return &ValidationError{
			Field:   "global.concurrency",
			Value:   fmt.Sprintf("%d", cfg.Concurrency),
			Message: "must be at least 1",
		}
	}

	if cfg.Timeout <= 0 {
		return &ValidationError{
			Field:   "global.timeout",
			Value:   cfg.Timeout.String(),
			Message: "must be positive",
		}
	}

	return nil
}

// ValidateLinter validates a single linter configuration.
func (v *Validator) ValidateLinter(cfg *LinterConfig) error {
	if cfg.Name == "" {
		return &ValidationError{
			Field:   "linters.name",
			Message: "must not be empty",
		}
	}

	if cfg.Enabled && len(cfg.Extensions) == 0 {
		return &ValidationError{
			Field:   "linters." + cfg.Name + ".extensions",
			Message: "an enabled linter needs at least one extension",
		}
	}

	switch cfg.Severity {
	case "", "warning", "error":
	default:
		return &ValidationError{
			Field:   "linters." + cfg.Name + ".severity",
			Value:   cfg.Severity,
			Message: "must be warning or error",
		}
	}

	return nil
}

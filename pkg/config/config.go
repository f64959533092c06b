// Copyright 2026 Codestyle CI. All rights reserved.
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.

// Package config provides configuration management for style-runner.
//
// Configuration Loading Order (later overrides earlier):
// 1. Defaults (hardcoded)
// 2. Global Config: $HOME/.style-runner/config.yaml
// 3. Project Config: ./.style-runner.yaml
// 4. Environment Variables: STYLE_RUNNER_*
package config

import (
	"time"
)

// Config represents the complete application configuration.
type Config struct {
	Linters []LinterConfig `yaml:"linters"`
	Global  GlobalConfig   `yaml:"global"`
}

// LinterConfig represents a single linter adapter configuration.
type LinterConfig struct {
	Name       string   `yaml:"name"`
	Enabled    bool     `yaml:"enabled"`
	Extensions []string `yaml:"extensions"`
	Severity   string   `yaml:"severity,omitempty"` // warning or error
}

// GlobalConfig contains global application settings.
type GlobalConfig struct {
	LogLevel    string        `yaml:"log_level"`   // debug, info, warn, error
	Concurrency int           `yaml:"concurrency"` // parallel per-file check runs
	Timeout     time.Duration `yaml:"timeout"`     // per tool invocation
}

// Linter returns the configuration for a named linter, if present.
func (c *Config) Linter(name string) (LinterConfig, bool) {
	for _, lc := range c.Linters {
		if lc.Name == name {
			return lc, true
		}
	}
	return LinterConfig{}, false
}

// EnabledLinters returns the configured linters that are enabled, in
// configuration order.
func (c *Config) EnabledLinters() []LinterConfig {
	var out []LinterConfig
	for _, lc := range c.Linters {
		if lc.Enabled {
			out = append(out, lc)
		}
	}
	return out
}

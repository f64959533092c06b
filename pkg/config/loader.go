// Copyright 2026 Codestyle CI. All rights reserved.
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.

package config

import (
	"os"
	"strconv"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/codestyle-ci/style-runner/pkg/errors"
)

const (
	// EnvPrefix is the prefix for all environment variables.
	EnvPrefix = "STYLE_RUNNER"
	// ProjectConfigFile is the project-level config file name.
	ProjectConfigFile = ".style-runner.yaml"
)

// Loader loads configuration from files and environment.
type Loader struct {
	projectRoot string
	skipGlobal  bool
}

// NewLoader creates a new config loader.
func NewLoader() *Loader {
	return &Loader{}
}

// WithProjectRoot sets the project root directory.
func (l *Loader) WithProjectRoot(root string) *Loader {
	l.projectRoot = root
	return l
}

// SkipGlobal skips loading global config.
func (l *Loader) SkipGlobal() *Loader {
	l.skipGlobal = true
	return l
}

// Load loads configuration with full precedence order:
// 1. Defaults
// 2. Global Config ($HOME/.style-runner/config.yaml)
// 3. Project Config (./.style-runner.yaml)
// 4. Environment Variables (STYLE_RUNNER_*)
func (l *Loader) Load() (*Config, error) {
	cfg := DefaultConfig()

	if !l.skipGlobal {
		if err := mergeFile(cfg, GetDefaultConfigPath()); err != nil {
			return nil, err
		}
	}

	if err := mergeFile(cfg, GetProjectConfigPath(l.projectRoot)); err != nil {
		return nil, err
	}

	applyEnv(cfg)

	if err := NewValidator().Validate(cfg); err != nil {
		return nil, err
	}
	return cfg, nil
}

// mergeFile overlays a config file onto cfg. A missing file is not an
// error; a malformed one is.
func mergeFile(cfg *Config, path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil
		}
		return errors.ConfigError("reading "+path, err)
	}

	var overlay Config
	if err := yaml.Unmarshal(data, &overlay); err != nil {
		return errors.ConfigError("parsing "+path, err)
	}

	merge(cfg, &overlay)
	return nil
}

// merge overlays the non-zero parts of overlay onto cfg. Linters match
// by name: a known name overrides that entry, an unknown one is
// appended, so a project file can reconfigure a default linter or add a
// new one without restating the rest.
func merge(cfg, overlay *Config) {
	for _, lc := range overlay.Linters {
		replaced := false
		for i := range cfg.Linters {
			if cfg.Linters[i].Name == lc.Name {
				cfg.Linters[i] = lc
				replaced = true
				break
			}
		}
		if !replaced {
			cfg.Linters = append(cfg.Linters, lc)
		}
	}

	if overlay.Global.LogLevel != "" {
		cfg.Global.LogLevel = overlay.Global.LogLevel
	}
	if overlay.Global.Concurrency != 0 {
		cfg.Global.Concurrency = overlay.Global.Concurrency
	}
	if overlay.Global.Timeout != 0 {
		cfg.Global.Timeout = overlay.Global.Timeout
	}
}

// applyEnv applies STYLE_RUNNER_* environment overrides, the highest
// precedence source.
func applyEnv(cfg *Config) {
	if v := os.Getenv(EnvPrefix + "_LOG_LEVEL"); v != "" {
		cfg.Global.LogLevel = v
	}
	if v := os.Getenv(EnvPrefix + "_CONCURRENCY"); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n > 0 {
			cfg.Global.Concurrency = n
		}
	}
	if v := os.Getenv(EnvPrefix + "_TIMEOUT"); v != "" {
		if d, err := time.ParseDuration(v); err == nil && d > 0 {
			cfg.Global.Timeout = d
		}
	}
}

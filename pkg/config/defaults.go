// Copyright 2026 Codestyle CI. All rights reserved.
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.

package config

import (
	"os"
	"path/filepath"
	"time"
)

// DefaultConfig returns the default configuration.
// These values are used when no config file is present.
func DefaultConfig() *Config {
	return &Config{
		Linters: DefaultLinters(),
		Global:  DefaultGlobalConfig(),
	}
}

// DefaultLinters returns the default linter configuration.
func DefaultLinters() []LinterConfig {
	return []LinterConfig{
		{
			Name:       "clang-format",
			Enabled:    true,
			Extensions: []string{"c", "h", "cpp", "hpp", "cc", "cxx"},
			Severity:   "error",
		},
		{
			Name:       "gofmt",
			Enabled:    false,
			Extensions: []string{"go"},
			Severity:   "warning",
		},
	}
}

// DefaultGlobalConfig returns default global configuration.
func DefaultGlobalConfig() GlobalConfig {
	return GlobalConfig{
		LogLevel:    "info",
		Concurrency: 4,
		Timeout:     2 * time.Minute,
	}
}

// GetDefaultConfigPath returns the default global config file path.
func GetDefaultConfigPath() string {
	homeDir, _ := os.UserHomeDir()
	return filepath.Join(homeDir, ".style-runner", "config.yaml")
}

// GetProjectConfigPath returns the project config file path.
func GetProjectConfigPath(projectRoot string) string {
	if projectRoot == "" {
		projectRoot = "."
	}
	return filepath.Join(projectRoot, ProjectConfigFile)
}

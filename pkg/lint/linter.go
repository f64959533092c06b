// Copyright 2026 Codestyle CI. All rights reserved.
//
// Licensed under the Apache License, Version 2.0 (the "License");

// Package lint defines the linter adapter contract and implements the
// diff-based reference adapters.
package lint

import (
	"context"
)

// Severity classifies where a linter's findings land in the result.
type Severity string

const (
	// SeverityWarning reports findings without failing the check run.
	SeverityWarning Severity = "warning"
	// SeverityError reports findings that fail the check run.
	SeverityError Severity = "error"
)

// Valid reports whether the severity is a known value.
func (s Severity) Valid() bool {
	return s == SeverityWarning || s == SeverityError
}

// Linter is the capability contract every tool adapter implements.
type Linter interface {
	// Name returns the stable adapter identifier used in summaries
	// and reports.
	Name() string

	// VerifySetup fails fast with a dependency error when the
	// required external binary is not resolvable on the execution
	// path. It performs no file I/O.
	VerifySetup(dir string) error

	// Lint runs the external tool over the files matching extensions
	// under dir. In check mode it returns the envelope of per-file
	// diffs; in fix mode it applies changes in place and reports the
	// raw tool status. Violations are normal output, never an error;
	// the returned error aggregates per-file execution failures,
	// which do not invalidate the envelope.
	Lint(ctx context.Context, dir string, extensions []string, fix bool) (*Envelope, error)

	// ParseOutput converts an envelope into the final result. It is
	// pure: no process execution, deterministic, safe to call
	// repeatedly with the same inputs.
	ParseOutput(dir string, env *Envelope) (*Result, error)
}

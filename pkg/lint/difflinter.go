// Copyright 2026 Codestyle CI. All rights reserved.
//
// Licensed under the Apache License, Version 2.0 (the "License");

package lint

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/hashicorp/go-multierror"

	"github.com/codestyle-ci/style-runner/pkg/command"
	"github.com/codestyle-ci/style-runner/pkg/diff"
	"github.com/codestyle-ci/style-runner/pkg/errors"
	"github.com/codestyle-ci/style-runner/pkg/fileset"
	"github.com/codestyle-ci/style-runner/pkg/observability"
	"github.com/codestyle-ci/style-runner/pkg/perf"
)

// Tool describes the external formatter a DiffLinter wraps.
type Tool struct {
	// Binary is the executable VerifySetup resolves on PATH.
	Binary string
	// CheckArgs builds the command line that prints the reformatted
	// file to stdout without touching the file.
	CheckArgs func(file string) []string
	// FixArgs builds the single command line that rewrites all files
	// in place.
	FixArgs func(files []string) []string
}

// DiffLinter implements the Linter contract for formatters that emit the
// whole reformatted file on stdout. It diffs that output against the
// on-disk original and reports the differences as line-ranged
// violations.
type DiffLinter struct {
	name     string
	tool     Tool
	severity Severity

	runner      command.Runner
	log         observability.Logger
	concurrency int
	timeout     time.Duration
}

// Option configures a DiffLinter.
type Option func(*DiffLinter)

// WithRunner sets the command runner.
func WithRunner(r command.Runner) Option {
	return func(l *DiffLinter) {
		l.runner = r
	}
}

// WithSeverity sets which result list the linter's findings land in.
func WithSeverity(s Severity) Option {
	return func(l *DiffLinter) {
		l.severity = s
	}
}

// WithConcurrency bounds the number of parallel per-file check runs.
func WithConcurrency(n int) Option {
	return func(l *DiffLinter) {
		l.concurrency = n
	}
}

// WithTimeout bounds each individual tool invocation.
func WithTimeout(d time.Duration) Option {
	return func(l *DiffLinter) {
		l.timeout = d
	}
}

// WithLogger sets the logger.
func WithLogger(log observability.Logger) Option {
	return func(l *DiffLinter) {
		l.log = log
	}
}

// NewDiffLinter creates a diff-based linter for the given tool.
func NewDiffLinter(name string, tool Tool, opts ...Option) *DiffLinter {
	l := &DiffLinter{
		name:        name,
		tool:        tool,
		severity:    SeverityWarning,
		runner:      command.NewRunner(),
		log:         observability.NewNop(),
		concurrency: 4,
		timeout:     2 * time.Minute,
	}

	for _, opt := range opts {
		opt(l)
	}

	return l
}

// Name returns the adapter identifier.
func (l *DiffLinter) Name() string {
	return l.name
}

// VerifySetup checks that the tool binary is resolvable on PATH.
func (l *DiffLinter) VerifySetup(dir string) error {
	if _, err := l.runner.LookPath(l.tool.Binary); err != nil {
		return errors.DependencyError(l.tool.Binary+" not found on PATH", err)
	}
	return nil
}

// Lint discovers the files matching extensions under dir and either
// checks or fixes them. In check mode every file is processed even when
// some invocations fail; those failures are recorded in the envelope's
// error channel and aggregated into the returned error, which does not
// invalidate the envelope.
func (l *DiffLinter) Lint(ctx context.Context, dir string, extensions []string, fix bool) (*Envelope, error) {
	files, err := fileset.Match(dir, extensions)
	if err != nil {
		return nil, err
	}
	l.log.Debug("discovered files",
		observability.String("linter", l.name),
		observability.Int("count", len(files)))

	if fix {
		return l.fix(ctx, dir, files)
	}
	return l.check(ctx, dir, files)
}

// check runs the tool per file with bounded concurrency. The payload
// keeps discovery order regardless of completion order.
func (l *DiffLinter) check(ctx context.Context, dir string, files []string) (*Envelope, error) {
	diffs, errs := perf.MapCollect(ctx, files, l.concurrency, func(ctx context.Context, file string) (*FileDiff, error) {
		return l.checkFile(ctx, dir, file)
	})

	env := &Envelope{}
	var merr *multierror.Error
	for i := range files {
		if errs[i] != nil {
			env.Errors = append(env.Errors, errs[i].Error())
			merr = multierror.Append(merr, errs[i])
			continue
		}
		if diffs[i] != nil {
			env.Files = append(env.Files, *diffs[i])
		}
	}

	if len(env.Files) > 0 || len(env.Errors) > 0 {
		env.Status = 1
	}
	return env, merr.ErrorOrNil()
}

// checkFile obtains the tool's proposed formatting for one file and
// diffs it against the on-disk content. A nil FileDiff means the file is
// clean.
func (l *DiffLinter) checkFile(ctx context.Context, dir, file string) (*FileDiff, error) {
	res, err := l.runner.Run(ctx, command.Request{
		Argv:         l.tool.CheckArgs(file),
		Dir:          dir,
		IgnoreStatus: true,
		Timeout:      l.timeout,
	})
	if err != nil {
		return nil, errors.ExecError(fmt.Sprintf("%s: checking %s", l.name, file), err)
	}
	if res.Status != 0 {
		// Formatters print the reformatted file and exit zero; a
		// non-zero status means the tool itself failed and its stdout
		// is not a formatting proposal.
		msg := fmt.Sprintf("%s: checking %s: exit status %d", l.name, file, res.Status)
		if stderr := strings.TrimSpace(res.Stderr); stderr != "" {
			msg += ": " + stderr
		}
		return nil, errors.ExecError(msg, nil)
	}

	original, err := os.ReadFile(filepath.Join(dir, file))
	if err != nil {
		return nil, errors.ExecError(fmt.Sprintf("%s: reading %s", l.name, file), err)
	}

	hunks := diff.Lines(string(original), res.Stdout)
	if !diff.Changed(hunks) {
		return nil, nil
	}

	l.log.Debug("formatting differences found",
		observability.String("linter", l.name),
		observability.String("file", file))
	return &FileDiff{File: file, Changes: hunks}, nil
}

// fix rewrites all discovered files with a single tool invocation and
// propagates the raw exit status and stderr without diffing.
func (l *DiffLinter) fix(ctx context.Context, dir string, files []string) (*Envelope, error) {
	if len(files) == 0 {
		return &Envelope{}, nil
	}

	res, err := l.runner.Run(ctx, command.Request{
		Argv:         l.tool.FixArgs(files),
		Dir:          dir,
		IgnoreStatus: true,
		Timeout:      l.timeout,
	})
	if err != nil {
		return nil, errors.ExecError(l.name+": applying fixes", err)
	}

	return &Envelope{Status: res.Status, Stderr: res.Stderr}, nil
}

// ParseOutput builds the result from an envelope. Violations land in the
// warning or error list according to the linter's severity; per-file
// execution failures surface as result failures.
func (l *DiffLinter) ParseOutput(dir string, env *Envelope) (*Result, error) {
	if env == nil {
		return nil, errors.ParseError(l.name+": nil envelope", nil)
	}

	result := &Result{Success: env.Status == 0}
	for _, fd := range env.Files {
		result.add(l.severity, Annotate(fd.File, fd.Changes))
	}
	result.Failures = append(result.Failures, env.Errors...)

	return result, nil
}

// Copyright 2026 Codestyle CI. All rights reserved.
//
// Licensed under the Apache License, Version 2.0 (the "License");

// Package command executes external tools and captures their output.
package command

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"os/exec"
	"strings"
	"time"
)

// Request describes one external tool invocation.
type Request struct {
	// Argv is the command line, binary first. Must not be empty.
	Argv []string
	// Dir is the working directory. Empty means the current directory.
	Dir string
	// Stdin is written to the process before waiting, when non-empty.
	Stdin string
	// IgnoreStatus suppresses the error for a non-zero exit status;
	// the status is reported in the Result instead, and the caller
	// decides what a non-zero exit means for its tool.
	IgnoreStatus bool
	// Timeout bounds the invocation when positive. Some formatters hang
	// on pathological input.
	Timeout time.Duration
}

// Result is the captured outcome of an invocation.
type Result struct {
	Status int
	Stdout string
	Stderr string
}

// Runner runs external commands.
type Runner interface {
	// Run executes the request and captures stdout/stderr in full.
	Run(ctx context.Context, req Request) (*Result, error)

	// LookPath resolves a binary on the execution path.
	LookPath(binary string) (string, error)
}

// ExecRunner is the os/exec backed Runner.
type ExecRunner struct{}

// NewRunner creates a new ExecRunner.
func NewRunner() *ExecRunner {
	return &ExecRunner{}
}

// Run executes the request. With IgnoreStatus set, a non-zero exit is
// returned as a Result, never as an error; abnormal failures (binary not
// started, killed, context expired) are always errors.
func (r *ExecRunner) Run(ctx context.Context, req Request) (*Result, error) {
	if len(req.Argv) == 0 {
		return nil, fmt.Errorf("empty command line")
	}

	if req.Timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, req.Timeout)
		defer cancel()
	}

	cmd := exec.CommandContext(ctx, req.Argv[0], req.Argv[1:]...)
	cmd.Dir = req.Dir
	if req.Stdin != "" {
		cmd.Stdin = strings.NewReader(req.Stdin)
	}

	// Buffers instead of bufio.Scanner so arbitrarily long lines and
	// binary-ish output survive untruncated.
	var stdout, stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	err := cmd.Run()
	res := &Result{
		Stdout: stdout.String(),
		Stderr: stderr.String(),
	}

	if err != nil {
		if ctxErr := ctx.Err(); ctxErr != nil {
			return nil, fmt.Errorf("%s: %w", req.Argv[0], ctxErr)
		}
		var exitErr *exec.ExitError
		if errors.As(err, &exitErr) {
			res.Status = exitErr.ExitCode()
			if req.IgnoreStatus {
				return res, nil
			}
			return nil, fmt.Errorf("%s exited with status %d: %s",
				req.Argv[0], res.Status, strings.TrimSpace(res.Stderr))
		}
		return nil, fmt.Errorf("%s: %w", req.Argv[0], err)
	}

	return res, nil
}

// LookPath resolves a binary on PATH.
func (r *ExecRunner) LookPath(binary string) (string, error) {
	return exec.LookPath(binary)
}

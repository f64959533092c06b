// Copyright 2026 Codestyle CI. All rights reserved.
//
// Licensed under the Apache License, Version 2.0 (the "License");

// Package report renders lint results for humans and CI systems.
package report

import (
	"fmt"
	"io"
	"strings"

	"github.com/codestyle-ci/style-runner/pkg/lint"
)

// LinterResult pairs one adapter's result with its name. Err records an
// invocation-level failure (for example a missing binary), in which case
// Result may be nil.
type LinterResult struct {
	Name   string
	Result *lint.Result
	Err    error
}

// Failed reports whether the run as a whole should fail CI. Execution
// failures and error-severity violations always fail; warnings fail only
// in strict mode.
func Failed(results []LinterResult, strict bool) bool {
	for _, lr := range results {
		if lr.Err != nil {
			return true
		}
		if lr.Result == nil {
			continue
		}
		if len(lr.Result.Error) > 0 || len(lr.Result.Failures) > 0 {
			return true
		}
		if strict && len(lr.Result.Warning) > 0 {
			return true
		}
	}
	return false
}

// WriteSummary writes a human-readable summary of all linter results.
func WriteSummary(w io.Writer, results []LinterResult) {
	for _, lr := range results {
		if lr.Err != nil {
			fmt.Fprintf(w, "%s: FAILED (%v)\n", lr.Name, lr.Err)
			continue
		}
		r := lr.Result
		if r == nil || (r.Success && r.Count() == 0) {
			fmt.Fprintf(w, "%s: clean\n", lr.Name)
			continue
		}

		fmt.Fprintf(w, "%s: %d error(s), %d warning(s)\n", lr.Name, len(r.Error), len(r.Warning))
		writeViolations(w, r.Error, "error")
		writeViolations(w, r.Warning, "warning")
		for _, failure := range r.Failures {
			fmt.Fprintf(w, "  execution failure: %s\n", failure)
		}
	}
}

func writeViolations(w io.Writer, violations []lint.Violation, severity string) {
	for _, v := range violations {
		fmt.Fprintf(w, "  %s %s:%s\n", severity, v.Path, lineRange(v))
		for _, line := range strings.Split(v.Message, "\n") {
			fmt.Fprintf(w, "    %s\n", line)
		}
	}
}

func lineRange(v lint.Violation) string {
	if v.FirstLine == v.LastLine {
		return fmt.Sprintf("%d", v.FirstLine)
	}
	return fmt.Sprintf("%d-%d", v.FirstLine, v.LastLine)
}

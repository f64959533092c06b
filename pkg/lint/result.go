// Copyright 2026 Codestyle CI. All rights reserved.
//
// Licensed under the Apache License, Version 2.0 (the "License");

package lint

// Violation is one reportable code-style finding. Lines are 1-based and
// inclusive, and always refer to the original file's numbering, which is
// what a reviewer sees when looking at the unmodified source.
type Violation struct {
	Path      string
	FirstLine int
	LastLine  int
	Message   string
}

// Result is the final outcome of one adapter invocation. It is created
// fresh per invocation, populated once, and owned by the caller
// afterward. Failures carries per-file execution errors, which are
// reported alongside violations but are not line-scoped.
type Result struct {
	Success  bool
	Warning  []Violation
	Error    []Violation
	Failures []string
}

// Count returns the total number of violations in the result.
func (r *Result) Count() int {
	return len(r.Warning) + len(r.Error)
}

// add appends violations to the list matching the severity.
func (r *Result) add(severity Severity, violations []Violation) {
	if severity == SeverityError {
		r.Error = append(r.Error, violations...)
		return
	}
	r.Warning = append(r.Warning, violations...)
}

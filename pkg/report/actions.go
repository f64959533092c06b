// Copyright 2026 Codestyle CI. All rights reserved.
//
// Licensed under the Apache License, Version 2.0 (the "License");

package report

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/codestyle-ci/style-runner/pkg/lint"
)

// InGitHubActions reports whether the process runs inside a GitHub
// Actions job.
func InGitHubActions() bool {
	return os.Getenv("GITHUB_ACTIONS") == "true"
}

// WriteActionsAnnotations emits workflow commands that GitHub Actions
// turns into inline review annotations on the checked files.
func WriteActionsAnnotations(w io.Writer, results []LinterResult) {
	for _, lr := range results {
		if lr.Result == nil {
			continue
		}
		writeAnnotations(w, lr.Name, "error", lr.Result.Error)
		writeAnnotations(w, lr.Name, "warning", lr.Result.Warning)
	}
}

func writeAnnotations(w io.Writer, linter, level string, violations []lint.Violation) {
	for _, v := range violations {
		fmt.Fprintf(w, "::%s file=%s,line=%d,endLine=%d,title=%s::%s\n",
			level, escapeProperty(v.Path), v.FirstLine, v.LastLine,
			escapeProperty(linter), escapeData(v.Message))
	}
}

// escapeData escapes a workflow command message. Order matters: percent
// first, then the line breaks.
func escapeData(s string) string {
	s = strings.ReplaceAll(s, "%", "%25")
	s = strings.ReplaceAll(s, "\r", "%0D")
	s = strings.ReplaceAll(s, "\n", "%0A")
	return s
}

// escapeProperty escapes a workflow command property value.
func escapeProperty(s string) string {
	s = escapeData(s)
	s = strings.ReplaceAll(s, ":", "%3A")
	s = strings.ReplaceAll(s, ",", "%2C")
	return s
}

// Copyright 2026 Codestyle CI. All rights reserved.
//
// Licensed under the Apache License, Version 2.0 (the "License");

// Package fileset discovers source files for linting.
package fileset

import (
	"os"
	"sort"
	"strings"

	"github.com/bmatcuk/doublestar/v4"

	"github.com/codestyle-ci/style-runner/pkg/errors"
)

// Pattern builds the recursive glob for a set of file extensions.
// One extension yields "**/*.c", several yield a brace-list "**/*.{c,h}".
func Pattern(extensions []string) (string, error) {
	if len(extensions) == 0 {
		return "", errors.ValidationError("at least one file extension is required", nil)
	}

	cleaned := make([]string, 0, len(extensions))
	for _, ext := range extensions {
		ext = strings.TrimPrefix(strings.TrimSpace(ext), ".")
		if ext == "" {
			return "", errors.ValidationError("empty file extension", nil)
		}
		cleaned = append(cleaned, ext)
	}

	if len(cleaned) == 1 {
		return "**/*." + cleaned[0], nil
	}
	return "**/*.{" + strings.Join(cleaned, ",") + "}", nil
}

// Match expands the extension set against root and returns the matched
// file paths relative to root. Directories are excluded, matching is
// case-sensitive, and the result is sorted so downstream output is
// reproducible across runs.
func Match(root string, extensions []string) ([]string, error) {
	pattern, err := Pattern(extensions)
	if err != nil {
		return nil, err
	}

	matches, err := doublestar.Glob(os.DirFS(root), pattern, doublestar.WithFilesOnly())
	if err != nil {
		return nil, errors.ValidationError("bad glob pattern "+pattern, err)
	}

	sort.Strings(matches)
	return matches, nil
}

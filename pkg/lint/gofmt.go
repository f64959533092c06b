// Copyright 2026 Codestyle CI. All rights reserved.
//
// Licensed under the Apache License, Version 2.0 (the "License");

package lint

// GofmtName is the registry identifier of the gofmt adapter.
const GofmtName = "gofmt"

// NewGofmt creates the gofmt adapter. gofmt shares the clang-format
// shape: the reformatted file on stdout in check mode, -w for in-place
// fixes.
func NewGofmt(opts ...Option) *DiffLinter {
	tool := Tool{
		Binary: "gofmt",
		CheckArgs: func(file string) []string {
			return []string{"gofmt", file}
		},
		FixArgs: func(files []string) []string {
			return append([]string{"gofmt", "-w"}, files...)
		},
	}
	return NewDiffLinter(GofmtName, tool, opts...)
}

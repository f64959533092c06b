// Copyright 2026 Codestyle CI. All rights reserved.
//
// Licensed under the Apache License, Version 2.0 (the "License");

package lint

// ClangFormatName is the registry identifier of the clang-format adapter.
const ClangFormatName = "clang-format"

// NewClangFormat creates the clang-format adapter. In check mode
// clang-format prints the reformatted file on stdout; -i rewrites files
// in place for fix mode. Style comes from the project's .clang-format
// file, falling back to the tool default.
func NewClangFormat(opts ...Option) *DiffLinter {
	tool := Tool{
		Binary: "clang-format",
		CheckArgs: func(file string) []string {
			return []string{"clang-format", "--style=file", "--fallback-style=LLVM", file}
		},
		FixArgs: func(files []string) []string {
			return append([]string{"clang-format", "--style=file", "--fallback-style=LLVM", "-i"}, files...)
		},
	}
	return NewDiffLinter(ClangFormatName, tool, opts...)
}

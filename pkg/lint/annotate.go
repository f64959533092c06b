// Copyright 2026 Codestyle CI. All rights reserved.
//
// Licensed under the Apache License, Version 2.0 (the "License");

package lint

import (
	"strings"

	"github.com/codestyle-ci/style-runner/pkg/diff"
)

const (
	removedPrefix = "- "
	addedPrefix   = "+ "
	// separator divides the removed lines from their replacement
	// inside one combined message.
	separator = "***\n"
)

// spaceMark and tabMark make width-only differences visible in a textual
// report where they would otherwise be invisible.
const (
	spaceMark = "·"   // middle dot
	tabMark   = "→\t" // arrow, keeping the tab for alignment
)

// Annotate converts one file's hunk sequence, in original order, into an
// ordered list of violation records.
//
// The builder walks the sequence with a cursor into the original file's
// line numbering. A pending message accumulates across a contiguous
// Removed→Added pair so that a replacement becomes a single before/after
// record; any Unchanged or Removed hunk first closes out the pending
// record, which keeps non-adjacent insertions apart and prevents removal
// runs from merging across an intervening unchanged run.
//
// A pure insertion (an Added hunk with nothing removed before it) spans
// the added line count even though every other span is measured against
// the original file. The reported range then does not correspond to any
// original line; this inconsistency is kept for compatibility with
// existing annotations.
func Annotate(path string, hunks []diff.Hunk) []Violation {
	var out []Violation
	line := 1
	span := 1
	var message strings.Builder

	flush := func() {
		if message.Len() == 0 {
			return
		}
		last := line + span - 1
		if last < line {
			// A removal reported with a zero line count is an
			// anomaly; keep the record anchored at the cursor
			// instead of producing an inverted range.
			last = line
		}
		out = append(out, Violation{
			Path:      path,
			FirstLine: line,
			LastLine:  last,
			Message:   message.String(),
		})
		line += span
		message.Reset()
	}

	for _, h := range hunks {
		if h.Op != diff.Added {
			flush()
		}
		switch h.Op {
		case diff.Removed:
			message.WriteString(renderLines(h.Text, removedPrefix))
			message.WriteString("\n")
			span = h.Lines
		case diff.Added:
			if message.Len() > 0 {
				message.WriteString(separator)
			} else {
				span = h.Lines
			}
			message.WriteString(renderLines(h.Text, addedPrefix))
		default:
			line += h.Lines
		}
	}
	flush()

	return out
}

// renderLines renders hunk text for a violation message: each line gets
// the prefix and its leading and trailing whitespace runs made visible.
// A trailing line break produces a split artifact, not a real line, and
// is dropped.
func renderLines(text, prefix string) string {
	lines := strings.Split(text, "\n")
	if len(lines) > 0 && lines[len(lines)-1] == "" {
		lines = lines[:len(lines)-1]
	}
	for i, ln := range lines {
		rest := strings.TrimLeft(ln, " \t")
		leading := ln[:len(ln)-len(rest)]
		core := strings.TrimRight(rest, " \t")
		trailing := rest[len(core):]
		lines[i] = prefix + markWhitespace(leading) + core + markWhitespace(trailing)
	}
	return strings.Join(lines, "\n")
}

var whitespaceMarker = strings.NewReplacer(" ", spaceMark, "\t", tabMark)

// markWhitespace replaces each space and tab in a whitespace run with its
// visible marker.
func markWhitespace(run string) string {
	if run == "" {
		return ""
	}
	return whitespaceMarker.Replace(run)
}

// Copyright 2026 Codestyle CI. All rights reserved.
//
// Licensed under the Apache License, Version 2.0 (the "License");

// Package diff computes line-level diffs between a file's original
// content and a formatter's proposed output.
package diff

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/sergi/go-diff/diffmatchpatch"
)

// Op is the kind of a diff hunk.
type Op int8

const (
	// Unchanged marks lines common to both sides.
	Unchanged Op = iota
	// Removed marks lines present only in the original.
	Removed
	// Added marks lines present only in the reformatted output.
	Added
)

// String returns the serialized name of the op.
func (o Op) String() string {
	switch o {
	case Unchanged:
		return "unchanged"
	case Removed:
		return "removed"
	case Added:
		return "added"
	default:
		return "unknown"
	}
}

// MarshalJSON serializes the op as its string name.
func (o Op) MarshalJSON() ([]byte, error) {
	return json.Marshal(o.String())
}

// UnmarshalJSON parses an op from its string name.
func (o *Op) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return err
	}
	switch s {
	case "unchanged":
		*o = Unchanged
	case "removed":
		*o = Removed
	case "added":
		*o = Added
	default:
		return fmt.Errorf("unknown diff op: %q", s)
	}
	return nil
}

// Hunk is one contiguous run of a line diff.
//
// Text carries the literal lines including their line breaks, so that
// concatenating the Unchanged+Removed hunks of a sequence reproduces the
// original content and Unchanged+Added reproduces the reformatted output.
// Lines counts against the original content for Unchanged and Removed
// hunks and against the reformatted output for Added hunks.
type Hunk struct {
	Op    Op     `json:"op"`
	Lines int    `json:"lines"`
	Text  string `json:"text"`
}

// Lines computes the line-level diff between original and reformatted
// content. The result is ordered; replacements appear as a Removed hunk
// immediately followed by an Added hunk. Identical inputs produce a
// single Unchanged hunk (or none when both are empty).
func Lines(original, reformatted string) []Hunk {
	dmp := diffmatchpatch.New()
	a, b, lineText := dmp.DiffLinesToChars(original, reformatted)
	diffs := dmp.DiffCharsToLines(dmp.DiffMain(a, b, false), lineText)

	hunks := make([]Hunk, 0, len(diffs))
	for _, d := range diffs {
		if d.Text == "" {
			continue
		}
		h := Hunk{Lines: countLines(d.Text), Text: d.Text}
		switch d.Type {
		case diffmatchpatch.DiffDelete:
			h.Op = Removed
		case diffmatchpatch.DiffInsert:
			h.Op = Added
		default:
			h.Op = Unchanged
		}
		hunks = append(hunks, h)
	}
	return hunks
}

// Changed reports whether the sequence contains any Removed or Added hunk.
func Changed(hunks []Hunk) bool {
	for _, h := range hunks {
		if h.Op != Unchanged {
			return true
		}
	}
	return false
}

// countLines counts the lines of a hunk text. A trailing line break does
// not open a new line; text without one still counts its final line.
func countLines(s string) int {
	if s == "" {
		return 0
	}
	n := strings.Count(s, "\n")
	if !strings.HasSuffix(s, "\n") {
		n++
	}
	return n
}

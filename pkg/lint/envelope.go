// Copyright 2026 Codestyle CI. All rights reserved.
//
// Licensed under the Apache License, Version 2.0 (the "License");

package lint

import (
	"encoding/json"

	"github.com/codestyle-ci/style-runner/pkg/diff"
	"github.com/codestyle-ci/style-runner/pkg/errors"
)

// FileDiff is one file's hunk sequence inside an envelope.
type FileDiff struct {
	File    string      `json:"file"`
	Changes []diff.Hunk `json:"changes"`
}

// Envelope is the boundary artifact between lint execution and output
// parsing. Status is 0 only when no file produced hunks and no per-file
// execution error occurred. Errors is the aggregate channel for per-file
// execution failures; Stderr carries the raw tool stderr in fix mode.
type Envelope struct {
	Status int        `json:"status"`
	Files  []FileDiff `json:"files,omitempty"`
	Errors []string   `json:"errors,omitempty"`
	Stderr string     `json:"stderr,omitempty"`
}

// Encode serializes the envelope. JSON keeps hunk text byte-exact,
// embedded line breaks included, so the sequence round-trips without
// loss.
func (e *Envelope) Encode() ([]byte, error) {
	data, err := json.Marshal(e)
	if err != nil {
		return nil, errors.ParseError("encoding lint envelope", err)
	}
	return data, nil
}

// DecodeEnvelope deserializes an envelope produced by Encode.
func DecodeEnvelope(data []byte) (*Envelope, error) {
	var e Envelope
	if err := json.Unmarshal(data, &e); err != nil {
		return nil, errors.ParseError("decoding lint envelope", err)
	}
	return &e, nil
}

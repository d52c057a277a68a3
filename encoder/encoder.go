// SPDX-FileCopyrightText: © 2021 The recog authors <https://github.com/golangee/recog/blob/main/AUTHORS>
// SPDX-License-Identifier: Apache-2.0

// Package encoder writes recognition reports in several formats.
package encoder

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/golangee/recog"
	"gopkg.in/yaml.v3"
)

// Formats lists the names accepted by New.
var Formats = []string{"text", "explain", "json", "yaml", "xml"}

// Encoder writes a single report per call.
type Encoder interface {
	Encode(r recog.Report) error
}

// New creates the encoder for the named format writing to w.
func New(format string, w io.Writer) (Encoder, error) {
	switch format {
	case "text":
		return NewTextEncoder(w), nil
	case "explain":
		enc := NewTextEncoder(w)
		enc.Explain = true

		return enc, nil
	case "json":
		return NewJSONEncoder(w), nil
	case "yaml":
		return NewYAMLEncoder(w), nil
	case "xml":
		return NewXMLEncoder(w), nil
	default:
		return nil, fmt.Errorf("unknown format '%s'", format)
	}
}

// JSONEncoder writes every report as an indented JSON object.
type JSONEncoder struct {
	enc *json.Encoder
}

func NewJSONEncoder(w io.Writer) *JSONEncoder {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")

	return &JSONEncoder{enc: enc}
}

func (e *JSONEncoder) Encode(r recog.Report) error {
	if err := e.enc.Encode(r); err != nil {
		return fmt.Errorf("cannot encode json: %w", err)
	}

	return nil
}

// YAMLEncoder writes every report as a YAML document of a single stream.
type YAMLEncoder struct {
	enc *yaml.Encoder
}

func NewYAMLEncoder(w io.Writer) *YAMLEncoder {
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)

	return &YAMLEncoder{enc: enc}
}

func (e *YAMLEncoder) Encode(r recog.Report) error {
	if err := e.enc.Encode(r); err != nil {
		return fmt.Errorf("cannot encode yaml: %w", err)
	}

	return nil
}

// Close finishes the stream.
func (e *YAMLEncoder) Close() error {
	return e.enc.Close()
}

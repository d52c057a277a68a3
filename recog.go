// SPDX-FileCopyrightText: © 2021 The recog authors <https://github.com/golangee/recog/blob/main/AUTHORS>
// SPDX-License-Identifier: Apache-2.0

// Package recog recognizes single assignment statements. Use Recognize for a single line or
// the parser package for full control over the recognizer state.
package recog

import (
	"bufio"
	"errors"
	"fmt"
	"io"

	"github.com/golangee/recog/parser"
	"github.com/golangee/recog/token"
)

// MaxLineSize is the length in bytes of the longest line read by RecognizeLines.
const MaxLineSize = 1 << 20

// Report is the outcome of recognizing one independent input.
type Report struct {
	// Name identifies the input, e.g. "file.txt:3". It may be empty.
	Name string `json:"name,omitempty" yaml:"name,omitempty"`
	// Input is the recognized text.
	Input string `json:"input" yaml:"input"`
	// Consumed is the number of bytes consumed by the recognizer.
	Consumed    int                `json:"consumed" yaml:"consumed"`
	Tokens      []token.Token      `json:"tokens" yaml:"tokens"`
	Diagnostics []token.Diagnostic `json:"diagnostics" yaml:"diagnostics"`
}

// OK reports whether the whole input was consumed without diagnostics.
func (r Report) OK() bool {
	return r.Consumed == len(r.Input) && len(r.Diagnostics) == 0
}

// Err returns all diagnostics joined into one error, or nil if there are none.
func (r Report) Err() error {
	if len(r.Diagnostics) == 0 {
		return nil
	}

	errs := make([]error, 0, len(r.Diagnostics))
	for _, d := range r.Diagnostics {
		errs = append(errs, d)
	}

	return errors.Join(errs...)
}

// Recognize parses text with a fresh recognizer and reports the result.
func Recognize(text string, opts ...parser.Option) Report {
	return RecognizeWith(parser.New(opts...), "", text)
}

// RecognizeLines treats every line of r as an independent input. The recognizer is reset
// before each line. Names are built as "<name>:<line number>".
func RecognizeLines(name string, r io.Reader, opts ...parser.Option) ([]Report, error) {
	p := parser.New(opts...)
	scanner := NewLineScanner(r)

	var reports []Report

	for no := 1; scanner.Scan(); no++ {
		reports = append(reports, RecognizeWith(p, fmt.Sprintf("%s:%d", name, no), scanner.Text()))
	}

	if err := scanner.Err(); err != nil {
		return reports, fmt.Errorf("cannot read %s: %w", name, err)
	}

	return reports, nil
}

// NewLineScanner returns a scanner splitting r into lines of up to MaxLineSize bytes.
func NewLineScanner(r io.Reader) *bufio.Scanner {
	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, bufio.MaxScanTokenSize), MaxLineSize)

	return scanner
}

// RecognizeWith resets p, parses text and reports the result under name.
func RecognizeWith(p *parser.Parser, name, text string) Report {
	p.Reset()
	consumed := p.Parse(text)

	return Report{
		Name:        name,
		Input:       text,
		Consumed:    consumed,
		Tokens:      p.Tokens(),
		Diagnostics: p.Diagnostics(),
	}
}

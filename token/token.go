// SPDX-FileCopyrightText: © 2021 The recog authors <https://github.com/golangee/recog/blob/main/AUTHORS>
// SPDX-License-Identifier: Apache-2.0

package token

import "fmt"

// A Token is a committed terminal match.
type Token struct {
	Kind Kind   `json:"kind" yaml:"kind"`
	Text string `json:"text" yaml:"text"`
	// Pos is where the match started.
	Pos Pos `json:"pos" yaml:"pos"`
}

// New creates a token of the given kind and text starting at pos.
func New(kind Kind, text string, pos Pos) Token {
	return Token{Kind: kind, Text: text, Pos: pos}
}

// End returns the position directly behind the matched text.
func (t Token) End() Pos {
	return t.Pos.Advance(len(t.Text))
}

func (t Token) String() string {
	return fmt.Sprintf("%s %q", t.Kind, t.Text)
}

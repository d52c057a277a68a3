// SPDX-FileCopyrightText: © 2021 The recog authors <https://github.com/golangee/recog/blob/main/AUTHORS>
// SPDX-License-Identifier: Apache-2.0

package token

import "strconv"

// A Pos describes a resolved position within a source text.
type Pos struct {
	// Offset is the zero-based byte offset into the source text.
	Offset int `json:"offset" yaml:"offset"`
	// Line denotes the one-based line number.
	Line int `json:"line" yaml:"line"`
	// Col denotes the one-based column number in the denoted Line.
	Col int `json:"col" yaml:"col"`
}

// Start returns the position of the first character of a source text.
func Start() Pos {
	return Pos{Offset: 0, Line: 1, Col: 1}
}

// String returns the content in the "line:col" format.
func (p Pos) String() string {
	return strconv.Itoa(p.Line) + ":" + strconv.Itoa(p.Col)
}

// Advance returns the position after n characters on the same line.
func (p Pos) Advance(n int) Pos {
	p.Offset += n
	p.Col += n

	return p
}

// Newline returns the position after a line break character.
func (p Pos) Newline() Pos {
	p.Offset++
	p.Line++
	p.Col = 1

	return p
}

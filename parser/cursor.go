// SPDX-FileCopyrightText: © 2021 The recog authors <https://github.com/golangee/recog/blob/main/AUTHORS>
// SPDX-License-Identifier: Apache-2.0

package parser

import (
	"log/slog"
	"unicode"
	"unicode/utf8"

	"github.com/golangee/recog/token"
)

// skipWhitespace advances the cursor over whitespace characters.
// A '\n' starts a new line, every other whitespace character advances the column by one.
func (p *Parser) skipWhitespace() {
	for p.pos.Offset < len(p.src) {
		c := p.src[p.pos.Offset]
		if c >= utf8.RuneSelf || !unicode.IsSpace(rune(c)) {
			return
		}

		if c == '\n' {
			p.pos = p.pos.Newline()
		} else {
			p.pos = p.pos.Advance(1)
		}
	}
}

// atEnd reports whether the cursor reached the end of the source text.
func (p *Parser) atEnd() bool {
	return p.pos.Offset >= len(p.src)
}

// commit appends a token for text and moves the cursor behind it. Matched text never
// contains a line break, so only the column advances.
func (p *Parser) commit(kind token.Kind, text string) {
	tok := token.New(kind, text, p.pos)
	p.tokens = append(p.tokens, tok)
	p.pos = p.pos.Advance(len(text))

	p.debug("parsed token",
		slog.Int("line", tok.Pos.Line),
		slog.Int("col", tok.Pos.Col),
		slog.String("kind", kind.String()),
		slog.String("text", text),
	)
}

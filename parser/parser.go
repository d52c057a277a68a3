// SPDX-FileCopyrightText: © 2021 The recog authors <https://github.com/golangee/recog/blob/main/AUTHORS>
// SPDX-License-Identifier: Apache-2.0

// Package parser recognizes assignment statements like "int x : (a + 1)++ ;" directly on the
// source text. It does not build a tree, it only records the committed terminals and the
// diagnostics found along the way.
//
// A committed terminal is never undone. When a statement fails halfway, the tokens matched
// before the failure stay in the token sequence and the next alternative is tried from the
// already advanced cursor.
package parser

import (
	"context"
	"log/slog"

	"github.com/golangee/recog/token"
)

// Option configures a Parser.
type Option func(p *Parser)

// WithLogger sets the logger for debug output. A nil logger disables logging.
func WithLogger(logger *slog.Logger) Option {
	return func(p *Parser) {
		p.logger = logger
	}
}

// Parser holds the recognizer state. It is not safe for concurrent use, use one instance
// per goroutine.
type Parser struct {
	src    string
	pos    token.Pos
	tokens []token.Token
	diags  []token.Diagnostic
	logger *slog.Logger
}

// New creates a Parser without any tokens or diagnostics.
func New(opts ...Option) *Parser {
	p := &Parser{pos: token.Start()}
	for _, opt := range opts {
		opt(p)
	}

	return p
}

// Parse recognizes statements in text until one fails or the text ends and returns the
// number of consumed bytes. Only the cursor is reset, tokens and diagnostics of earlier calls
// are kept. Call Reset to start an independent parse.
func (p *Parser) Parse(text string) int {
	p.src = text
	p.pos = token.Start()

	return p.run()
}

// Continue resumes recognizing statements from the current cursor of the last parsed text.
// If the last statement failed, the cursor still points to the failure, so Continue fails
// there again and records further diagnostics at the same position.
func (p *Parser) Continue() int {
	return p.run()
}

func (p *Parser) run() int {
	tokens, diags := len(p.tokens), len(p.diags)

	p.debug("parsing", slog.Int("offset", p.pos.Offset), slog.Int("length", len(p.src)))

	for p.tryRule(token.Statement, false) {
	}

	p.debug("parsing complete",
		slog.Int("consumed", p.pos.Offset),
		slog.Int("tokens", len(p.tokens)-tokens),
		slog.Int("diagnostics", len(p.diags)-diags))

	return p.pos.Offset
}

// Reset clears the token sequence and the diagnostic list.
func (p *Parser) Reset() {
	p.tokens = nil
	p.diags = nil
}

// Tokens returns the committed tokens in textual order.
func (p *Parser) Tokens() []token.Token {
	return append([]token.Token(nil), p.tokens...)
}

// Diagnostics returns the recorded diagnostics in detection order.
func (p *Parser) Diagnostics() []token.Diagnostic {
	return append([]token.Diagnostic(nil), p.diags...)
}

// Messages returns the formatted diagnostics in detection order.
func (p *Parser) Messages() []string {
	res := make([]string, 0, len(p.diags))
	for _, d := range p.diags {
		res = append(res, d.String())
	}

	return res
}

// Pos returns the current cursor position.
func (p *Parser) Pos() token.Pos {
	return p.pos
}

func (p *Parser) debug(msg string, attrs ...slog.Attr) {
	if p.logger == nil {
		return
	}

	ctx := context.Background()
	if !p.logger.Enabled(ctx, slog.LevelDebug) {
		return
	}

	p.logger.LogAttrs(ctx, slog.LevelDebug, msg, attrs...)
}

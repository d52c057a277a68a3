// SPDX-FileCopyrightText: © 2021 The recog authors <https://github.com/golangee/recog/blob/main/AUTHORS>
// SPDX-License-Identifier: Apache-2.0

package parser

import (
	"regexp"

	"github.com/golangee/recog/token"
)

// tryRule evaluates kind at the cursor and reports whether it matched. Whitespace is always
// skipped first. In peek mode a terminal is matched but neither committed nor reported.
func (p *Parser) tryRule(kind token.Kind, peek bool) bool {
	p.skipWhitespace()

	switch kind {
	case token.Statement:
		return p.statement()
	case token.AssignmentValue:
		return p.tryRule(token.Expression, false)
	case token.Expression:
		return p.expression()
	case token.PrefixOperator:
		return p.oneOf(token.IncrementOperator, token.DecrementOperator, token.PlusSign, token.MinusSign)
	case token.PostfixOperator:
		return p.oneOf(token.IncrementOperator, token.DecrementOperator)
	case token.Operator:
		return p.oneOf(token.AdditionOperator, token.SubtractionOperator, token.MultiplicationOperator,
			token.DivisionOperator, token.ModuloOperator, token.LogicalOperator, token.BitwiseOperator,
			token.ComparisonOperator)
	case token.Value:
		return p.oneOf(token.Literal, token.Identifier)
	case token.Literal:
		return p.oneOf(token.Integer, token.BooleanLiteral)
	case token.ComparisonOperator:
		return p.oneOf(token.EqualToOperator, token.NotEqualToOperator, token.GreaterOrEqualToOperator,
			token.LessOrEqualToOperator, token.GreaterThanOperator, token.LessThanOperator)
	case token.LogicalOperator:
		return p.oneOf(token.AndOperator, token.OrOperator)
	case token.BitwiseOperator:
		return p.oneOf(token.BitwiseAndOperator, token.BitwiseOrOperator, token.BitwiseXorOperator,
			token.BitwiseLeftShiftOperator, token.BitwiseRightShiftOperator)
	case token.BooleanLiteral:
		return p.oneOf(token.BooleanTrue, token.BooleanFalse)
	case token.Invalid:
		p.fail(kind, msgInvalid)
		return false
	}

	if re, ok := anchored[kind]; ok {
		return p.terminal(kind, re, peek)
	}

	p.fail(kind, msgNotImplemented)

	return false
}

// statement evaluates
//  [DataType] Identifier AssignmentOperator AssignmentValue Semicolon
// The DataType is only committed if the text at the cursor is not an Identifier and a name
// follows the type. Otherwise the type name is tried as the Identifier and fails as a
// reserved word. The end of the text is not an error.
func (p *Parser) statement() bool {
	if p.atEnd() {
		return false
	}

	if !p.tryRule(token.Identifier, true) && p.typedTarget() {
		p.tryRule(token.DataType, false)
	}

	return p.sequence(token.Statement, token.Identifier, token.AssignmentOperator, token.AssignmentValue, token.Semicolon)
}

// typedTarget reports whether a DataType followed by an Identifier is at the cursor.
// Nothing is committed and the cursor is left unchanged.
func (p *Parser) typedTarget() bool {
	typeName := p.matchText(anchored[token.DataType])
	if typeName == "" {
		return false
	}

	pos := p.pos
	defer func() { p.pos = pos }()

	p.pos = p.pos.Advance(len(typeName))

	return p.tryRule(token.Identifier, true)
}

// expression evaluates
//  [DataType] {PrefixOperator} (Value {PostfixOperator} | "(" Expression ")" {PostfixOperator}) [Operator Expression]
// The DataType is only tried if the text at the cursor is not an Identifier. An expression
// which consists of nothing but a DataType still matches.
func (p *Parser) expression() bool {
	typed := false
	if !p.tryRule(token.Identifier, true) {
		typed = p.tryRule(token.DataType, false)
	}

	p.repeat(token.PrefixOperator)

	switch {
	case p.tryRule(token.Value, false):
		p.repeat(token.PostfixOperator)
	case p.tryRule(token.OpenParenthesis, false):
		if !p.sequence(token.Expression, token.Expression, token.CloseParenthesis) {
			return false
		}

		p.repeat(token.PostfixOperator)
	default:
		return typed
	}

	if p.tryRule(token.Operator, false) {
		return p.sequence(token.Expression, token.Expression)
	}

	return true
}

// terminal matches the pattern re of kind. A match is committed unless it is a reserved
// Identifier or peek is set.
func (p *Parser) terminal(kind token.Kind, re *regexp.Regexp, peek bool) bool {
	text := p.matchText(re)
	if text == "" {
		return false
	}

	if kind == token.Identifier && IsReserved(text) {
		if !peek {
			p.fail(kind, reservedWordMsg(text))
		}

		return false
	}

	if !peek {
		p.commit(kind, text)
	}

	return true
}

// sequence evaluates kinds one after another. At the first kind which does not match, a
// diagnostic is recorded for rule and false is returned.
func (p *Parser) sequence(rule token.Kind, kinds ...token.Kind) bool {
	for _, kind := range kinds {
		if !p.tryRule(kind, false) {
			p.expected(rule, kind)
			return false
		}
	}

	return true
}

// oneOf evaluates the alternatives in order and stops at the first one which matches.
func (p *Parser) oneOf(alternatives ...token.Kind) bool {
	for _, kind := range alternatives {
		if p.tryRule(kind, false) {
			return true
		}
	}

	return false
}

// repeat evaluates kind until it does not match anymore.
func (p *Parser) repeat(kind token.Kind) {
	for p.tryRule(kind, false) {
	}
}

// SPDX-FileCopyrightText: © 2021 The recog authors <https://github.com/golangee/recog/blob/main/AUTHORS>
// SPDX-License-Identifier: Apache-2.0

package parser

import (
	"github.com/golangee/recog/token"
)

const (
	// msgInvalid is reported whenever the token.Invalid sentinel is evaluated.
	msgInvalid = "Once you rationalise the first misstep, it's easy to fall into a pattern of behaviour."

	msgNotImplemented = "Not yet implemented."
)

// expected records that rule required the kind expected at the cursor.
func (p *Parser) expected(rule, expected token.Kind) {
	p.diags = append(p.diags, token.NewExpected(p.pos, rule, expected))
}

// fail records a free-form message for rule at the cursor.
func (p *Parser) fail(rule token.Kind, msg string) {
	p.diags = append(p.diags, token.NewMessage(p.pos, rule, msg))
}

func reservedWordMsg(word string) string {
	return "'" + word + "' is a reserved word."
}

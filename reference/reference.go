// SPDX-FileCopyrightText: © 2021 The recog authors <https://github.com/golangee/recog/blob/main/AUTHORS>
// SPDX-License-Identifier: Apache-2.0

// Package reference contains a declarative grammar of the statement language. It is slow
// compared to the recognizer but easy to read and serves as an oracle to cross-check which
// inputs the recognizer accepts.
//
// Unlike the recognizer, the lexer of this grammar respects word boundaries for boolean
// literals, so "truex" is a name here but a boolean followed by garbage for the recognizer.
package reference

import (
	"errors"
	"fmt"
	"strings"

	"github.com/alecthomas/participle/v2"
	"github.com/alecthomas/participle/v2/lexer/stateful"
)

// ErrEmptyExpression is returned for an expression which has neither a type nor a value.
var ErrEmptyExpression = errors.New("expression has neither a type nor a value")

// File is a sequence of statements.
type File struct {
	Statements []*Statement `@@*`
}

// Statement is a typed or untyped assignment.
type Statement struct {
	Type   string      `@DataType?`
	Target string      `@Ident ":"`
	Value  *Expression `@@ ";"`
}

// Expression is an optional type name followed by an optional term.
type Expression struct {
	Type string `@DataType?`
	Term *Term  `@@?`
}

// Term is a prefixed value or group, which may be continued by an operator and another
// expression.
type Term struct {
	Prefix  []string    `@("++" | "--" | "+" | "-")*`
	Value   *Value      `( @@`
	Group   *Expression `| "(" @@ ")" )`
	Postfix []string    `@("++" | "--")*`
	Op      string      `( @("+" | "-" | "*" | "/" | "%" | "&&" | "||" | "&" | "|" | "^" | "<<" | ">>" | "==" | "!=" | ">=" | "<=" | ">" | "<")`
	Next    *Expression `  @@ )?`
}

// Value is a literal or a name.
type Value struct {
	Bool  *string `  @Bool`
	Int   *string `| @Int`
	Ident *string `| @Ident`
}

var lexer = stateful.MustSimple([]stateful.Rule{
	{Name: "DataType", Pattern: `(int|uint|byte|ubyte|double|udouble|float|bool|string)\b`, Action: nil},
	{Name: "Bool", Pattern: `(true|false)\b`, Action: nil},
	{Name: "Keyword", Pattern: `(do|while|if|then|for|else|return)\b`, Action: nil},
	{Name: "Ident", Pattern: `[_a-zA-Z][_a-zA-Z0-9]*`, Action: nil},
	{Name: "Int", Pattern: `[0-9]+`, Action: nil},
	{Name: "Op", Pattern: `\+\+|--|&&|\|\||<<|>>|==|!=|>=|<=|[-+*/%&|^<>]`, Action: nil},
	{Name: "Term", Pattern: `[:;()]`, Action: nil},
	{Name: "whitespace", Pattern: `\s+`, Action: nil},
})

var fileParser = participle.MustBuild(&File{},
	participle.Lexer(lexer),
	participle.UseLookahead(2),
)

// Parse parses all statements in src.
func Parse(fname, src string) (*File, error) {
	f := &File{}
	if err := fileParser.Parse(fname, strings.NewReader(src), f); err != nil {
		return nil, fmt.Errorf("invalid statement: %w", err)
	}

	for _, stmt := range f.Statements {
		if err := stmt.Value.validate(); err != nil {
			return nil, fmt.Errorf("invalid statement '%s': %w", stmt.Target, err)
		}
	}

	return f, nil
}

// Check returns nil if src is a sequence of valid statements.
func Check(src string) error {
	_, err := Parse("", src)
	return err
}

// Grammar returns the EBNF of the grammar.
func Grammar() string {
	return fileParser.String()
}

func (e *Expression) validate() error {
	if e == nil || (e.Type == "" && e.Term == nil) {
		return ErrEmptyExpression
	}

	if e.Term == nil {
		return nil
	}

	if e.Term.Group != nil {
		if err := e.Term.Group.validate(); err != nil {
			return err
		}
	}

	if e.Term.Op != "" {
		return e.Term.Next.validate()
	}

	return nil
}

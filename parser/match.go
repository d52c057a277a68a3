// SPDX-FileCopyrightText: © 2021 The recog authors <https://github.com/golangee/recog/blob/main/AUTHORS>
// SPDX-License-Identifier: Apache-2.0

package parser

import (
	"regexp"
	"sort"

	"github.com/golangee/recog/token"
)

const (
	// sIdentifier is the lexical class of names. Reserved words match it too and are rejected
	// after matching.
	sIdentifier = `[_a-zA-Z][_a-zA-Z0-9]*`

	// sDataType lists the built-in type names which may prefix an expression.
	sDataType = `int|uint|byte|ubyte|double|udouble|float|bool|string`

	sInteger = `[0-9]+`
)

// patterns contains the source pattern of every terminal kind.
var patterns = map[token.Kind]string{
	token.Identifier:                sIdentifier,
	token.Integer:                   sInteger,
	token.DataType:                  sDataType,
	token.AssignmentOperator:        `:`,
	token.Semicolon:                 `;`,
	token.OpenParenthesis:           `\(`,
	token.CloseParenthesis:          `\)`,
	token.IncrementOperator:         `\+\+`,
	token.DecrementOperator:         `--`,
	token.PlusSign:                  `\+`,
	token.MinusSign:                 `-`,
	token.AdditionOperator:          `\+`,
	token.SubtractionOperator:       `-`,
	token.MultiplicationOperator:    `\*`,
	token.DivisionOperator:          `/`,
	token.ModuloOperator:            `%`,
	token.AndOperator:               `&&`,
	token.OrOperator:                `\|\|`,
	token.BitwiseAndOperator:        `&`,
	token.BitwiseOrOperator:         `\|`,
	token.BitwiseXorOperator:        `\^`,
	token.BitwiseLeftShiftOperator:  `<<`,
	token.BitwiseRightShiftOperator: `>>`,
	token.EqualToOperator:           `==`,
	token.NotEqualToOperator:        `!=`,
	token.GreaterThanOperator:       `>`,
	token.LessThanOperator:          `<`,
	token.GreaterOrEqualToOperator:  `>=`,
	token.LessOrEqualToOperator:     `<=`,
	token.BooleanTrue:               `true`,
	token.BooleanFalse:              `false`,
}

// anchored holds the compiled form of patterns, each anchored at the start of the input.
var anchored = compile(patterns)

// reservedWords may never be committed as an Identifier.
var reservedWords = map[string]struct{}{
	"bool": {}, "int": {}, "uint": {}, "byte": {}, "ubyte": {}, "double": {}, "udouble": {},
	"float": {}, "string": {}, "true": {}, "false": {}, "do": {}, "while": {}, "if": {},
	"then": {}, "for": {}, "else": {}, "return": {},
}

func compile(src map[token.Kind]string) map[token.Kind]*regexp.Regexp {
	res := make(map[token.Kind]*regexp.Regexp, len(src))
	for kind, pattern := range src {
		res[kind] = regexp.MustCompile(`^(?:` + pattern + `)`)
	}

	return res
}

// Pattern returns the regular expression which defines the terminal kind.
// The second result is false for kinds which are not terminals.
func Pattern(kind token.Kind) (string, bool) {
	p, ok := patterns[kind]
	return p, ok
}

// IsReserved reports whether word is a reserved word and therefore not a valid Identifier.
func IsReserved(word string) bool {
	_, ok := reservedWords[word]
	return ok
}

// ReservedWords returns the sorted reserved words.
func ReservedWords() []string {
	words := make([]string, 0, len(reservedWords))
	for w := range reservedWords {
		words = append(words, w)
	}

	sort.Strings(words)

	return words
}

// matchText returns the text at the cursor matched by the anchored pattern re, or the empty
// string. The cursor is not moved.
func (p *Parser) matchText(re *regexp.Regexp) string {
	return re.FindString(p.src[p.pos.Offset:])
}

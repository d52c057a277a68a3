// SPDX-FileCopyrightText: © 2021 The recog authors <https://github.com/golangee/recog/blob/main/AUTHORS>
// SPDX-License-Identifier: Apache-2.0

package token

import (
	"strconv"
	"strings"
)

// Kind identifies a grammar symbol. Structural kinds name a rule composed of other kinds,
// terminal kinds match a fixed pattern of source text.
type Kind int

const (
	// Unknown is the zero value and the default expected kind of a diagnostic.
	Unknown Kind = iota

	// structural kinds
	Statement
	AssignmentValue
	Expression
	Value
	Literal
	Operator
	PrefixOperator
	PostfixOperator
	LogicalOperator
	BitwiseOperator
	ComparisonOperator
	BooleanLiteral

	// terminal kinds
	Identifier
	Integer
	DataType
	AssignmentOperator
	Semicolon
	OpenParenthesis
	CloseParenthesis
	IncrementOperator
	DecrementOperator
	PlusSign
	MinusSign
	AdditionOperator
	SubtractionOperator
	MultiplicationOperator
	DivisionOperator
	ModuloOperator
	AndOperator
	OrOperator
	BitwiseAndOperator
	BitwiseOrOperator
	BitwiseXorOperator
	BitwiseLeftShiftOperator
	BitwiseRightShiftOperator
	EqualToOperator
	NotEqualToOperator
	GreaterThanOperator
	LessThanOperator
	GreaterOrEqualToOperator
	LessOrEqualToOperator
	BooleanTrue
	BooleanFalse

	// Invalid always fails. It guards branches that must never be reached.
	Invalid

	// Declared without a rule. Evaluating them reports that they are not implemented.
	Assignment
	StatementEnd
	ObjectDefinition

	kindCount
)

var kindNames = [...]string{
	Unknown:                   "Unknown",
	Statement:                 "Statement",
	AssignmentValue:           "AssignmentValue",
	Expression:                "Expression",
	Value:                     "Value",
	Literal:                   "Literal",
	Operator:                  "Operator",
	PrefixOperator:            "PrefixOperator",
	PostfixOperator:           "PostfixOperator",
	LogicalOperator:           "LogicalOperator",
	BitwiseOperator:           "BitwiseOperator",
	ComparisonOperator:        "ComparisonOperator",
	BooleanLiteral:            "BooleanLiteral",
	Identifier:                "Identifier",
	Integer:                   "Integer",
	DataType:                  "DataType",
	AssignmentOperator:        "AssignmentOperator",
	Semicolon:                 "Semicolon",
	OpenParenthesis:           "OpenParenthesis",
	CloseParenthesis:          "CloseParenthesis",
	IncrementOperator:         "IncrementOperator",
	DecrementOperator:         "DecrementOperator",
	PlusSign:                  "PlusSign",
	MinusSign:                 "MinusSign",
	AdditionOperator:          "AdditionOperator",
	SubtractionOperator:       "SubtractionOperator",
	MultiplicationOperator:    "MultiplicationOperator",
	DivisionOperator:          "DivisionOperator",
	ModuloOperator:            "ModuloOperator",
	AndOperator:               "AndOperator",
	OrOperator:                "OrOperator",
	BitwiseAndOperator:        "BitwiseAndOperator",
	BitwiseOrOperator:         "BitwiseOrOperator",
	BitwiseXorOperator:        "BitwiseXorOperator",
	BitwiseLeftShiftOperator:  "BitwiseLeftShiftOperator",
	BitwiseRightShiftOperator: "BitwiseRightShiftOperator",
	EqualToOperator:           "EqualToOperator",
	NotEqualToOperator:        "NotEqualToOperator",
	GreaterThanOperator:       "GreaterThanOperator",
	LessThanOperator:          "LessThanOperator",
	GreaterOrEqualToOperator:  "GreaterOrEqualToOperator",
	LessOrEqualToOperator:     "LessOrEqualToOperator",
	BooleanTrue:               "BooleanTrue",
	BooleanFalse:              "BooleanFalse",
	Invalid:                   "Invalid",
	Assignment:                "Assignment",
	StatementEnd:              "StatementEnd",
	ObjectDefinition:          "ObjectDefinition",
}

// Kinds returns every declared kind in declaration order.
func Kinds() []Kind {
	kinds := make([]Kind, 0, kindCount)
	for k := Unknown; k < kindCount; k++ {
		kinds = append(kinds, k)
	}

	return kinds
}

// String returns the identifier of the kind, e.g. "AssignmentOperator".
func (k Kind) String() string {
	if k < 0 || k >= kindCount {
		return "Kind(" + strconv.Itoa(int(k)) + ")"
	}

	return kindNames[k]
}

// DisplayName returns the human readable name used in diagnostics, e.g. "Assignment Operator".
func (k Kind) DisplayName() string {
	return SplitCamelCase(k.String())
}

// Structural reports whether the kind names a rule composed of other kinds.
func (k Kind) Structural() bool {
	return k >= Statement && k <= BooleanLiteral
}

// Terminal reports whether the kind is matched by a fixed text pattern.
func (k Kind) Terminal() bool {
	return k >= Identifier && k <= BooleanFalse
}

// MarshalText encodes the kind by its identifier.
func (k Kind) MarshalText() ([]byte, error) {
	return []byte(k.String()), nil
}

// SplitCamelCase inserts a space before every uppercase ASCII letter that is not the first
// character of text.
func SplitCamelCase(text string) string {
	var sb strings.Builder
	for i := 0; i < len(text); i++ {
		c := text[i]
		if c >= 'A' && c <= 'Z' && sb.Len() > 0 {
			sb.WriteByte(' ')
		}

		sb.WriteByte(c)
	}

	return sb.String()
}

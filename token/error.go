// SPDX-FileCopyrightText: © 2021 The recog authors <https://github.com/golangee/recog/blob/main/AUTHORS>
// SPDX-License-Identifier: Apache-2.0

package token

import (
	"fmt"
	"strconv"
	"strings"
)

// A Diagnostic describes a recognition failure at a position. Diagnostics are collected, never
// thrown.
type Diagnostic struct {
	Pos Pos `json:"pos" yaml:"pos"`
	// Rule is the kind which was being evaluated when the failure was detected.
	Rule Kind `json:"rule" yaml:"rule"`
	// Expected is the kind that Rule required but did not find. Only set if Message is empty.
	Expected Kind `json:"expected,omitempty" yaml:"expected,omitempty"`
	// Message is a free-form detail, which replaces the "expected" detail.
	Message string `json:"message,omitempty" yaml:"message,omitempty"`
}

// NewExpected creates a diagnostic telling that rule expected the kind expected at pos.
func NewExpected(pos Pos, rule, expected Kind) Diagnostic {
	return Diagnostic{
		Pos:      pos,
		Rule:     rule,
		Expected: expected,
	}
}

// NewMessage creates a diagnostic with a free-form message for rule at pos.
func NewMessage(pos Pos, rule Kind, msg string) Diagnostic {
	return Diagnostic{
		Pos:     pos,
		Rule:    rule,
		Message: msg,
	}
}

// Detail returns the part of the formatted diagnostic after the rule name.
func (d Diagnostic) Detail() string {
	if d.Message != "" {
		return d.Message
	}

	return "expected '" + d.Expected.DisplayName() + "'."
}

// String returns the diagnostic in the format
//  (Line <L>, Col <C>) Error while parsing '<rule name>': <detail>
func (d Diagnostic) String() string {
	return fmt.Sprintf("(Line %d, Col %d) Error while parsing '%s': %s",
		d.Pos.Line, d.Pos.Col, d.Rule.DisplayName(), d.Detail())
}

func (d Diagnostic) Error() string {
	return d.String()
}

// posLine returns the line from lines which fits to the given pos.
func posLine(lines []string, pos Pos) string {
	no := pos.Line - 1

	if no >= len(lines) {
		no = len(lines) - 1
	}

	ltext := ""
	if no < len(lines) && no >= 0 {
		ltext = lines[no]
	}

	return ltext
}

// Explain returns a multi-line text suited to be printed into the console. Every diagnostic
// is shown with its source line from src and a marker below its column.
func Explain(src string, diags ...Diagnostic) string {
	// grab the required indent for the line numbers
	indent := 0

	for _, d := range diags {
		l := len(strconv.Itoa(d.Pos.Line))
		if l > indent {
			indent = l
		}
	}

	lines := strings.Split(src, "\n")
	sb := &strings.Builder{}

	for i, d := range diags {
		line := posLine(lines, d.Pos)

		sb.WriteString(d.Pos.String())
		sb.WriteString("\n")

		sb.WriteString(fmt.Sprintf("%"+strconv.Itoa(indent)+"s |\n", ""))
		sb.WriteString(fmt.Sprintf("%"+strconv.Itoa(indent)+"d |", d.Pos.Line))
		sb.WriteString(line)
		sb.WriteString("\n")

		sb.WriteString(fmt.Sprintf("%"+strconv.Itoa(indent)+"s |", ""))
		sb.WriteString(strings.Repeat(" ", d.Pos.Col-1))
		sb.WriteString("^~~~ ")
		sb.WriteString(d.Rule.DisplayName())
		sb.WriteString(": ")
		sb.WriteString(d.Detail())
		sb.WriteString("\n")

		if i < len(diags)-1 {
			for i := 0; i < indent; i++ {
				sb.WriteByte(' ')
			}
			sb.WriteString("...")
			sb.WriteByte('\n')
		}
	}

	return sb.String()
}

// SPDX-FileCopyrightText: © 2021 The recog authors <https://github.com/golangee/recog/blob/main/AUTHORS>
// SPDX-License-Identifier: Apache-2.0

package encoder

import (
	"bufio"
	"fmt"
	"io"
	"strings"

	"github.com/golangee/recog"
)

// XMLEncoder writes every report as a <report> element of a single <reports> document.
// Close must be called to finish the document.
type XMLEncoder struct {
	writer *bufio.Writer
	// indent is the current level of indentation for emitting XML.
	indent uint
	// started is set once the root element has been opened.
	started bool
}

func NewXMLEncoder(w io.Writer) *XMLEncoder {
	return &XMLEncoder{
		writer: bufio.NewWriter(w),
	}
}

// Encode writes the report and flushes the output. The first call opens the root element.
func (e *XMLEncoder) Encode(r recog.Report) error {
	if !e.started {
		e.started = true
		e.line("<reports>")
		e.indent++
	}

	name := ""
	if r.Name != "" {
		name = fmt.Sprintf(` name="%s"`, escapeXMLSafe(r.Name))
	}

	e.line(fmt.Sprintf(`<report%s consumed="%d">`, name, r.Consumed))
	e.indent++
	e.line("<input>" + escapeXMLSafe(r.Input) + "</input>")

	e.open("tokens", len(r.Tokens))
	for _, tok := range r.Tokens {
		e.line(fmt.Sprintf(`<token kind="%s" offset="%d" line="%d" col="%d">%s</token>`,
			tok.Kind, tok.Pos.Offset, tok.Pos.Line, tok.Pos.Col, escapeXMLSafe(tok.Text)))
	}
	e.close("tokens", len(r.Tokens))

	e.open("diagnostics", len(r.Diagnostics))
	for _, d := range r.Diagnostics {
		e.line(fmt.Sprintf(`<diagnostic rule="%s" line="%d" col="%d">%s</diagnostic>`,
			d.Rule.DisplayName(), d.Pos.Line, d.Pos.Col, escapeXMLSafe(d.Detail())))
	}
	e.close("diagnostics", len(r.Diagnostics))

	e.indent--
	e.line("</report>")

	return e.writer.Flush()
}

// Close writes the end of the root element. Without any report an empty root is written.
func (e *XMLEncoder) Close() error {
	if e.started {
		e.indent--
		e.line("</reports>")
	} else {
		e.line("<reports/>")
	}

	e.started = false

	return e.writer.Flush()
}

// open writes the start tag of a list, or an empty element if the list has no entries.
func (e *XMLEncoder) open(name string, count int) {
	if count == 0 {
		e.line("<" + name + "/>")
		return
	}

	e.line("<" + name + ">")
	e.indent++
}

func (e *XMLEncoder) close(name string, count int) {
	if count == 0 {
		return
	}

	e.indent--
	e.line("</" + name + ">")
}

// line writes s indented on its own line. Write errors are reported by the final Flush.
func (e *XMLEncoder) line(s string) {
	_, _ = e.writer.WriteString(e.indentString() + s + "\n")
}

func (e *XMLEncoder) indentString() string {
	var tmp strings.Builder
	for i := uint(0); i < e.indent; i++ {
		tmp.WriteString("    ")
	}
	return tmp.String()
}

// escapeXMLSafe replaces all occurrences of reserved characters in XML: <>&". Characters
// which are not allowed in XML 1.0 at all are dropped.
func escapeXMLSafe(s string) string {
	replacer := strings.NewReplacer("<", "&lt;", ">", "&gt;", "&", "&amp;", `"`, "&quot;")

	return strings.Map(xmlChar, replacer.Replace(s))
}

// xmlChar returns r if it is a valid XML 1.0 character and -1 otherwise.
func xmlChar(r rune) rune {
	switch {
	case r == '\t' || r == '\n' || r == '\r':
		return r
	case r >= 0x20 && r <= 0xD7FF:
		return r
	case r >= 0xE000 && r <= 0xFFFD:
		return r
	case r >= 0x10000 && r <= 0x10FFFF:
		return r
	default:
		return -1
	}
}

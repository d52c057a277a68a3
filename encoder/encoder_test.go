// SPDX-FileCopyrightText: © 2021 The recog authors <https://github.com/golangee/recog/blob/main/AUTHORS>
// SPDX-License-Identifier: Apache-2.0

package encoder_test

import (
	"bytes"
	"encoding/json"
	"encoding/xml"
	"errors"
	"io"
	"strings"
	"testing"

	"github.com/golangee/recog"
	"github.com/golangee/recog/encoder"
)

func TestTextEncode(t *testing.T) {
	tests := []struct {
		name string
		text string
		want string
	}{
		{
			name: "empty",
			text: "",
			want: "",
		},
		{
			name: "valid",
			text: "x:1;",
			want: "Characters parsed: 4\n",
		},
		{
			name: "missing semicolon",
			text: "x:1",
			want: "Characters parsed: 3\n" +
				"(Line 1, Col 4) Error while parsing 'Statement': expected 'Semicolon'.\n",
		},
		{
			name: "nothing consumed",
			text: "while:1;",
			want: "(Line 1, Col 1) Error while parsing 'Identifier': 'while' is a reserved word.\n" +
				"(Line 1, Col 1) Error while parsing 'Statement': expected 'Identifier'.\n",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var buf bytes.Buffer
			if err := encoder.NewTextEncoder(&buf).Encode(recog.Recognize(tt.text)); err != nil {
				t.Fatal(err)
			}

			if buf.String() != tt.want {
				t.Fatalf("expected\n%s\nbut got\n%s", tt.want, buf.String())
			}
		})
	}
}

func TestTextEncodeStyled(t *testing.T) {
	var buf bytes.Buffer
	enc := encoder.NewTextEncoder(&buf)
	enc.ShowName = true
	enc.StyleDiagnostic = func(s string) string { return "!" + s }

	r := recog.Recognize("x:1")
	r.Name = "in:1"

	if err := enc.Encode(r); err != nil {
		t.Fatal(err)
	}

	want := "in:1\nCharacters parsed: 3\n!(Line 1, Col 4) Error while parsing 'Statement': expected 'Semicolon'.\n"
	if buf.String() != want {
		t.Fatalf("expected\n%s\nbut got\n%s", want, buf.String())
	}
}

func TestExplainEncode(t *testing.T) {
	var buf bytes.Buffer

	enc, err := encoder.New("explain", &buf)
	if err != nil {
		t.Fatal(err)
	}

	if err := enc.Encode(recog.Recognize("x:1")); err != nil {
		t.Fatal(err)
	}

	if !strings.Contains(buf.String(), "1 |x:1\n  |   ^~~~ Statement: expected 'Semicolon'.") {
		t.Fatalf("expected an explanation but got\n%s", buf.String())
	}
}

func TestJSONEncode(t *testing.T) {
	var buf bytes.Buffer

	enc, err := encoder.New("json", &buf)
	if err != nil {
		t.Fatal(err)
	}

	if err := enc.Encode(recog.Recognize("x:1")); err != nil {
		t.Fatal(err)
	}

	var got struct {
		Input    string `json:"input"`
		Consumed int    `json:"consumed"`
		Tokens   []struct {
			Kind string `json:"kind"`
			Text string `json:"text"`
		} `json:"tokens"`
		Diagnostics []struct {
			Rule     string `json:"rule"`
			Expected string `json:"expected"`
		} `json:"diagnostics"`
	}

	if err := json.Unmarshal(buf.Bytes(), &got); err != nil {
		t.Fatal(err)
	}

	if got.Input != "x:1" || got.Consumed != 3 || len(got.Tokens) != 3 || got.Tokens[2].Kind != "Integer" {
		t.Fatalf("unexpected report %+v", got)
	}

	if len(got.Diagnostics) != 1 || got.Diagnostics[0].Rule != "Statement" || got.Diagnostics[0].Expected != "Semicolon" {
		t.Fatalf("unexpected diagnostics %+v", got.Diagnostics)
	}
}

func TestYAMLEncode(t *testing.T) {
	var buf bytes.Buffer
	enc := encoder.NewYAMLEncoder(&buf)

	if err := enc.Encode(recog.Recognize("x:1;")); err != nil {
		t.Fatal(err)
	}

	if err := enc.Encode(recog.Recognize("ab:2;")); err != nil {
		t.Fatal(err)
	}

	if err := enc.Close(); err != nil {
		t.Fatal(err)
	}

	out := buf.String()
	for _, want := range []string{"kind: Identifier", "text: x", "consumed: 4", "---", "text: ab", "consumed: 5"} {
		if !strings.Contains(out, want) {
			t.Fatalf("expected %q in\n%s", want, out)
		}
	}
}

func TestXMLEncode(t *testing.T) {
	var buf bytes.Buffer

	r := recog.Recognize("x:1")
	r.Name = "a<b>"

	enc := encoder.NewXMLEncoder(&buf)
	if err := enc.Encode(r); err != nil {
		t.Fatal(err)
	}

	if err := enc.Close(); err != nil {
		t.Fatal(err)
	}

	want := `<reports>
    <report name="a&lt;b&gt;" consumed="3">
        <input>x:1</input>
        <tokens>
            <token kind="Identifier" offset="0" line="1" col="1">x</token>
            <token kind="AssignmentOperator" offset="1" line="1" col="2">:</token>
            <token kind="Integer" offset="2" line="1" col="3">1</token>
        </tokens>
        <diagnostics>
            <diagnostic rule="Statement" line="1" col="4">expected 'Semicolon'.</diagnostic>
        </diagnostics>
    </report>
</reports>
`

	if buf.String() != want {
		t.Fatalf("expected\n%s\nbut got\n%s", want, buf.String())
	}
}

func TestXMLEncodeEmpty(t *testing.T) {
	var buf bytes.Buffer

	enc := encoder.NewXMLEncoder(&buf)
	if err := enc.Encode(recog.Recognize("a:b&&c;")); err != nil {
		t.Fatal(err)
	}

	if !strings.Contains(buf.String(), `<token kind="AndOperator" offset="3" line="1" col="4">&amp;&amp;</token>`) {
		t.Fatalf("expected escaped operator in\n%s", buf.String())
	}

	if !strings.Contains(buf.String(), "        <diagnostics/>\n") {
		t.Fatalf("expected empty diagnostics in\n%s", buf.String())
	}

	buf.Reset()
	if err := encoder.NewXMLEncoder(&buf).Close(); err != nil {
		t.Fatal(err)
	}

	if got := buf.String(); got != "<reports/>\n" {
		t.Fatalf("expected an empty root but got %q", got)
	}
}

// countRoots decodes src strictly and returns the number of top-level elements.
func countRoots(t *testing.T, src string) int {
	t.Helper()

	dec := xml.NewDecoder(strings.NewReader(src))
	depth, roots := 0, 0

	for {
		tok, err := dec.Token()
		if errors.Is(err, io.EOF) {
			return roots
		}

		if err != nil {
			t.Fatalf("invalid xml: %v\n%s", err, src)
		}

		switch tok.(type) {
		case xml.StartElement:
			if depth == 0 {
				roots++
			}
			depth++
		case xml.EndElement:
			depth--
		}
	}
}

func TestXMLEncodeWellFormed(t *testing.T) {
	tests := []struct {
		name  string
		lines []string
	}{
		{name: "none"},
		{name: "one", lines: []string{"x:1;"}},
		{name: "several", lines: []string{"x:1;", "y:2", "int:1;"}},
		{name: "control characters", lines: []string{"x\x01:1;", "\x1b[31mx:1;"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var buf bytes.Buffer

			enc := encoder.NewXMLEncoder(&buf)
			for _, line := range tt.lines {
				if err := enc.Encode(recog.Recognize(line)); err != nil {
					t.Fatal(err)
				}
			}

			if err := enc.Close(); err != nil {
				t.Fatal(err)
			}

			if roots := countRoots(t, buf.String()); roots != 1 {
				t.Fatalf("expected a single root element but got %d", roots)
			}
		})
	}
}

func TestUnknownFormat(t *testing.T) {
	if _, err := encoder.New("toml", &bytes.Buffer{}); err == nil {
		t.Fatal("expected an error for an unknown format")
	}

	for _, f := range encoder.Formats {
		if _, err := encoder.New(f, &bytes.Buffer{}); err != nil {
			t.Fatalf("%s: %v", f, err)
		}
	}
}

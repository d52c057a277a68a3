// SPDX-FileCopyrightText: © 2021 The recog authors <https://github.com/golangee/recog/blob/main/AUTHORS>
// SPDX-License-Identifier: Apache-2.0

package encoder

import (
	"fmt"
	"io"

	"github.com/golangee/recog"
	"github.com/golangee/recog/token"
)

// TextEncoder writes reports the way an interactive session prints them: the number of
// consumed characters, if any, followed by one line per diagnostic.
type TextEncoder struct {
	w io.Writer
	// Explain additionally renders every diagnostic below its source line.
	Explain bool
	// StyleDiagnostic decorates diagnostic lines, e.g. with terminal colors. Nil keeps them.
	StyleDiagnostic func(string) string
	// ShowName prefixes the output of a named report with its name.
	ShowName bool
}

func NewTextEncoder(w io.Writer) *TextEncoder {
	return &TextEncoder{w: w}
}

func (e *TextEncoder) Encode(r recog.Report) error {
	if e.ShowName && r.Name != "" {
		if _, err := fmt.Fprintf(e.w, "%s\n", r.Name); err != nil {
			return err
		}
	}

	if r.Consumed > 0 {
		if _, err := fmt.Fprintf(e.w, "Characters parsed: %d\n", r.Consumed); err != nil {
			return err
		}
	}

	for _, d := range r.Diagnostics {
		line := d.String()
		if e.StyleDiagnostic != nil {
			line = e.StyleDiagnostic(line)
		}

		if _, err := fmt.Fprintln(e.w, line); err != nil {
			return err
		}
	}

	if e.Explain && len(r.Diagnostics) > 0 {
		if _, err := io.WriteString(e.w, token.Explain(r.Input, r.Diagnostics...)); err != nil {
			return err
		}
	}

	return nil
}

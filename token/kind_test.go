// SPDX-FileCopyrightText: © 2021 The recog authors <https://github.com/golangee/recog/blob/main/AUTHORS>
// SPDX-License-Identifier: Apache-2.0

package token

import (
	"encoding/json"
	"testing"
)

func TestDisplayName(t *testing.T) {
	tests := []struct {
		kind Kind
		want string
	}{
		{Statement, "Statement"},
		{AssignmentValue, "Assignment Value"},
		{AssignmentOperator, "Assignment Operator"},
		{CloseParenthesis, "Close Parenthesis"},
		{GreaterOrEqualToOperator, "Greater Or Equal To Operator"},
		{DataType, "Data Type"},
		{Unknown, "Unknown"},
		{Kind(-1), "Kind(-1)"},
	}

	for _, tt := range tests {
		if got := tt.kind.DisplayName(); got != tt.want {
			t.Errorf("expected %q but got %q", tt.want, got)
		}
	}
}

func TestSplitCamelCase(t *testing.T) {
	tests := map[string]string{
		"":                   "",
		"a":                  "a",
		"A":                  "A",
		"ABC":                "A B C",
		"lowerThenUpper":     "lower Then Upper",
		"BitwiseXorOperator": "Bitwise Xor Operator",
	}

	for in, want := range tests {
		if got := SplitCamelCase(in); got != want {
			t.Errorf("%q: expected %q but got %q", in, want, got)
		}
	}
}

func TestKindsAreNamed(t *testing.T) {
	seen := map[string]Kind{}

	for _, k := range Kinds() {
		name := k.String()
		if name == "" {
			t.Fatalf("kind %d has no name", int(k))
		}

		if other, ok := seen[name]; ok {
			t.Fatalf("kind %d and %d share the name %q", int(k), int(other), name)
		}

		seen[name] = k

		if k.Structural() && k.Terminal() {
			t.Fatalf("%v cannot be structural and terminal", k)
		}
	}

	if len(seen) != int(kindCount) {
		t.Fatalf("expected %d kinds but got %d", kindCount, len(seen))
	}
}

func TestTokenJSON(t *testing.T) {
	buf, err := json.Marshal(New(Identifier, "x", Pos{Offset: 2, Line: 1, Col: 3}))
	if err != nil {
		t.Fatal(err)
	}

	want := `{"kind":"Identifier","text":"x","pos":{"offset":2,"line":1,"col":3}}`
	if string(buf) != want {
		t.Fatalf("expected %s but got %s", want, buf)
	}
}

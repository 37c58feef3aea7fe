package parser

import (
	"reflect"
	"testing"

	"github.com/robinlinden/ffs/internal/ast"
)

func TestParseLoad(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected *ast.Program
	}{
		{
			name:     "empty input",
			input:    "",
			expected: &ast.Program{},
		},
		{
			name:     "comments and whitespace only",
			input:    "# nothing here\n\t\n# or here",
			expected: &ast.Program{},
		},
		{
			name:  "exported names only",
			input: `load("@rules_cc//cc:defs.bzl", "cc_library", "cc_test")`,
			expected: &ast.Program{Statements: []ast.Statement{
				&ast.LoadStmt{
					Module: "@rules_cc//cc:defs.bzl",
					Symbols: []ast.Symbol{
						{Local: "cc_library", Exported: "cc_library"},
						{Local: "cc_test", Exported: "cc_test"},
					},
				},
			}},
		},
		{
			name:  "local rebinding",
			input: `load("@rules_cc//cc:defs.bzl", foo = "cc_library")`,
			expected: &ast.Program{Statements: []ast.Statement{
				&ast.LoadStmt{
					Module:  "@rules_cc//cc:defs.bzl",
					Symbols: []ast.Symbol{{Local: "foo", Exported: "cc_library"}},
				},
			}},
		},
		{
			name:  "mixed symbol forms",
			input: `load("defs.bzl", "a", b = "c", "d")`,
			expected: &ast.Program{Statements: []ast.Statement{
				&ast.LoadStmt{
					Module: "defs.bzl",
					Symbols: []ast.Symbol{
						{Local: "a", Exported: "a"},
						{Local: "b", Exported: "c"},
						{Local: "d", Exported: "d"},
					},
				},
			}},
		},
		{
			name: "statements stay in source order",
			input: "# deps\nload(\"one.bzl\", \"a\")\n" +
				"load(\"two.bzl\", x = \"b\") # more deps\n",
			expected: &ast.Program{Statements: []ast.Statement{
				&ast.LoadStmt{Module: "one.bzl", Symbols: []ast.Symbol{{Local: "a", Exported: "a"}}},
				&ast.LoadStmt{Module: "two.bzl", Symbols: []ast.Symbol{{Local: "x", Exported: "b"}}},
			}},
		},
		{
			name:  "multiline module string",
			input: "load(\"\"\"defs.bzl\"\"\", \"a\")",
			expected: &ast.Program{Statements: []ast.Statement{
				&ast.LoadStmt{Module: "defs.bzl", Symbols: []ast.Symbol{{Local: "a", Exported: "a"}}},
			}},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			prog, err := Parse(tt.input)
			if err != nil {
				t.Fatalf("Parse(%q): unexpected error: %s", tt.input, err)
			}
			if !reflect.DeepEqual(prog, tt.expected) {
				t.Errorf("Parse(%q):\n  got      %#v\n  expected %#v", tt.input, prog, tt.expected)
			}
		})
	}
}

func TestParseErrors(t *testing.T) {
	tests := []struct {
		input  string
		kind   ast.ErrorKind
		offset int
	}{
		// Statement-level
		//
		{"pass", ast.ErrUnsupportedKeyword, 0},
		{"def f(): pass", ast.ErrUnsupportedKeyword, 0},
		{"foo", ast.ErrUnexpectedToken, 0},
		{`"str"`, ast.ErrUnexpectedToken, 0},
		{"+", ast.ErrUnexpectedToken, 0},
		// Load grammar
		//
		{`load "m"`, ast.ErrUnexpectedToken, 5},
		{"load()", ast.ErrUnexpectedToken, 5},
		{`load("m")`, ast.ErrEmptySymbolList, 8},
		{`load("m", "a",)`, ast.ErrUnexpectedToken, 14}, // Trailing comma is rejected
		{`load("m" "a")`, ast.ErrUnexpectedToken, 9},
		{`load("m", pass)`, ast.ErrUnexpectedToken, 10},
		{`load("m", foo "a")`, ast.ErrUnexpectedToken, 14},
		{`load("m", foo = bar)`, ast.ErrUnexpectedToken, 16},
		// Premature end of input
		//
		{"load", ast.ErrUnexpectedEOF, 4},
		{"load(", ast.ErrUnexpectedEOF, 5},
		{`load("m"`, ast.ErrUnexpectedEOF, 8},
		{`load("m", foo =`, ast.ErrUnexpectedEOF, 15},
		// Tokenizer failures surface through Parse
		//
		{`load("abc`, ast.ErrUnterminatedString, 5},
		{`load("""abc`, ast.ErrUnterminatedMultilineString, 5},
		{"load($)", ast.ErrUnknownRune, 5},
	}
	for _, tt := range tests {
		prog, err := Parse(tt.input)
		if err == nil {
			t.Errorf("Parse(%q): expected error, got none", tt.input)
			continue
		}
		if prog != nil {
			t.Errorf("Parse(%q): expected nil program on error, got %#v", tt.input, prog)
		}
		se, ok := err.(*ast.SyntaxError)
		if !ok {
			t.Errorf("Parse(%q): expected *ast.SyntaxError, got %T (%s)", tt.input, err, err)
			continue
		}
		if se.Kind != tt.kind {
			t.Errorf("Parse(%q): kind = %s, expected %s", tt.input, se.Kind, tt.kind)
		}
		if se.Offset != tt.offset {
			t.Errorf("Parse(%q): offset = %d, expected %d", tt.input, se.Offset, tt.offset)
		}
	}
}

// Failures are atomic: statements parsed before the failure point are
// discarded, never returned.
//
func TestParseDiscardsPartialProgram(t *testing.T) {
	for _, input := range []string{
		"load(\"one.bzl\", \"a\")\npass",
		"load(\"one.bzl\", \"a\")\nload()",
		"load(\"one.bzl\", \"a\")\nload(\"two.bzl\", \"b\"",
	} {
		prog, err := Parse(input)
		if err == nil {
			t.Errorf("Parse(%q): expected error, got none", input)
		}
		if prog != nil {
			t.Errorf("Parse(%q): expected nil program, got %#v", input, prog)
		}
	}
}

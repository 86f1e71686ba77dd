package formatter

import (
	"testing"

	"github.com/thomasrohde/monkey/pkg/ast"
	"github.com/thomasrohde/monkey/pkg/parser"
)

// helper to parse and format, failing on diagnostics
func format(t *testing.T, source string) string {
	t.Helper()
	program, diags := parser.Parse(source, "test.monkey")
	if len(diags) > 0 {
		t.Fatalf("unexpected diagnostics: %v", diags)
	}
	return Format(program)
}

// ---------------------------------------------------------------------------
// Test: canonical spacing
// ---------------------------------------------------------------------------
func TestFormatStatements(t *testing.T) {
	tests := []struct {
		input    string
		expected string
	}{
		{"let x=5;", "let x = 5;\n"},
		{"return   42 ;", "return 42;\n"},
		{"1+2*3;", "1 + 2 * 3;\n"},
		{"add(1,2);", "add(1, 2);\n"},
		{"let x = 1; let y = 2;", "let x = 1;\nlet y = 2;\n"},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			if got := format(t, tt.input); got != tt.expected {
				t.Errorf("got %q, want %q", got, tt.expected)
			}
		})
	}
}

// ---------------------------------------------------------------------------
// Test: only structure-preserving parentheses survive
// ---------------------------------------------------------------------------
func TestFormatParentheses(t *testing.T) {
	tests := []struct {
		input    string
		expected string
	}{
		{"(1 + 2) * 3;", "(1 + 2) * 3;\n"},
		{"1 + (2 * 3);", "1 + 2 * 3;\n"},
		{"((1 + 2)) + 3;", "1 + 2 + 3;\n"},
		{"1 - (2 - 3);", "1 - (2 - 3);\n"},
		{"-(5 + 5);", "-(5 + 5);\n"},
		{"!(true == true);", "!(true == true);\n"},
		{"(1 < 2) == true;", "(1 < 2) == true;\n"},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			if got := format(t, tt.input); got != tt.expected {
				t.Errorf("got %q, want %q", got, tt.expected)
			}
		})
	}
}

// ---------------------------------------------------------------------------
// Test: blocks are laid out with indentation
// ---------------------------------------------------------------------------
func TestFormatBlocks(t *testing.T) {
	input := "let f = fn(x,y) { if (x<y) { x } else { y } };"
	expected := "let f = fn(x, y) {\n" +
		"  if (x < y) {\n" +
		"    x;\n" +
		"  } else {\n" +
		"    y;\n" +
		"  };\n" +
		"};\n"
	if got := format(t, input); got != expected {
		t.Errorf("got:\n%s\nwant:\n%s", got, expected)
	}
}

// ---------------------------------------------------------------------------
// Test: formatting is a fixed point
// ---------------------------------------------------------------------------
func TestFormatIdempotent(t *testing.T) {
	inputs := []string{
		"let x = 5;",
		"let f = fn(a, b) { a + b };",
		"if (1 < 2) { 10 } else { 20 };",
		"-(5 + 5); !(1 == 1);",
		"add(1, 2 * 3, fn(x) { x });",
	}

	for _, input := range inputs {
		t.Run(input, func(t *testing.T) {
			once := format(t, input)
			twice := format(t, once)
			if once != twice {
				t.Errorf("not idempotent:\nonce:  %q\ntwice: %q", once, twice)
			}
		})
	}
}

// ---------------------------------------------------------------------------
// Test: fully parenthesized rendering
// ---------------------------------------------------------------------------
func TestExprString(t *testing.T) {
	tests := []struct {
		input    string
		expected string
	}{
		{"1 + 2 * 3;", "(1 + (2 * 3))"},
		{"-1 * 2 + 3;", "(((-1) * 2) + 3)"},
		{"!true;", "(!true)"},
		{"add(1, 2);", "add(1, 2)"},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			program, diags := parser.Parse(tt.input, "test.monkey")
			if len(diags) > 0 {
				t.Fatalf("unexpected diagnostics: %v", diags)
			}
			exprStmt, ok := program.Statements[0].(*ast.ExprStmt)
			if !ok {
				t.Fatalf("statement is %s, want ExprStmt", program.Statements[0].Kind())
			}
			if got := ExprString(exprStmt.Expr); got != tt.expected {
				t.Errorf("got %q, want %q", got, tt.expected)
			}
		})
	}
}

package lexer

import (
	"testing"
)

// FuzzTokenize feeds random inputs to the lexer to catch panics.
// The lexer never fails; unknown characters become ILLEGAL tokens.
func FuzzTokenize(f *testing.F) {
	seeds := []string{
		// Keywords
		`let fn if else return true false`,
		// Literals
		`42 0 1234567890`,
		// Operators
		`+ - * / < > == != = !`,
		// Delimiters
		`{ } ( ) , ;`,
		// Identifiers
		`x foo bar_baz myVar _hidden`,
		// Mixed
		`let x = 42;`,
		`fn(x, y) { x + y }(1, 2);`,
		`if (x < y) { x } else { y }`,
		// Edge cases
		``,
		`   `,
		"\t\n\r",
		`@#$^&`,
		"\x00",
		`=!`,
		`==!=`,
		// Long input
		`let aaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaa = 1;`,
	}

	for _, s := range seeds {
		f.Add(s)
	}

	f.Fuzz(func(t *testing.T, input string) {
		// Tokenize should never panic, regardless of input.
		func() {
			defer func() {
				if r := recover(); r != nil {
					t.Fatalf("Tokenize panicked on input %q: %v", input, r)
				}
			}()
			tokens := Tokenize(input, "fuzz.monkey")
			if len(tokens) == 0 {
				t.Fatalf("Tokenize returned no tokens for %q, want at least EOF", input)
			}
			if tokens[len(tokens)-1].Type != TokEOF {
				t.Fatalf("token stream for %q does not end with EOF", input)
			}
		}()
	})
}

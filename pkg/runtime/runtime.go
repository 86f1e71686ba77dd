// Package runtime provides the top-level Monkey runtime orchestrator.
package runtime

import (
	"fmt"
	"strings"

	"github.com/thomasrohde/monkey/pkg/diagnostics"
	"github.com/thomasrohde/monkey/pkg/evaluator"
	"github.com/thomasrohde/monkey/pkg/formatter"
	"github.com/thomasrohde/monkey/pkg/parser"
)

// Run parses and evaluates a Monkey program in env. Parse diagnostics are
// returned as a *DiagnosticError and the program is not evaluated; env is
// left untouched in that case. Runtime errors come back as a non-error
// *evaluator.Error value, since those belong to the language, not to Go.
func Run(source, filename string, env *evaluator.Env) (evaluator.Object, error) {
	program, diags := parser.Parse(source, filename)
	if len(diags) > 0 {
		return nil, &DiagnosticError{Diagnostics: diags}
	}
	return evaluator.Eval(program, env), nil
}

// Check parses a Monkey program without executing it.
func Check(source, filename string) []diagnostics.Diagnostic {
	_, diags := parser.Parse(source, filename)
	return diags
}

// Format parses and formats a Monkey program.
func Format(source, filename string) (string, error) {
	program, diags := parser.Parse(source, filename)
	if len(diags) > 0 {
		return "", &DiagnosticError{Diagnostics: diags}
	}
	return formatter.Format(program), nil
}

// DiagnosticError wraps diagnostics as an error.
type DiagnosticError struct {
	Diagnostics []diagnostics.Diagnostic
}

func (e *DiagnosticError) Error() string {
	msgs := make([]string, len(e.Diagnostics))
	for i, d := range e.Diagnostics {
		msgs[i] = fmt.Sprintf("%s: %s", d.Code, d.Message)
	}
	return strings.Join(msgs, "; ")
}

// Command monkey is the Monkey language CLI entry point.
package main

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/thomasrohde/monkey/pkg/diagnostics"
	"github.com/thomasrohde/monkey/pkg/evaluator"
	"github.com/thomasrohde/monkey/pkg/lexer"
	"github.com/thomasrohde/monkey/pkg/runtime"
)

func main() {
	if len(os.Args) < 2 {
		fmt.Fprintln(os.Stderr, "usage: monkey <command> [options]")
		fmt.Fprintln(os.Stderr, "commands: run, check, fmt, tokens, repl")
		os.Exit(1)
	}

	cmd := os.Args[1]
	switch cmd {
	case "run":
		os.Exit(cmdRun(os.Args[2:]))
	case "check":
		os.Exit(cmdCheck(os.Args[2:]))
	case "fmt":
		os.Exit(cmdFmt(os.Args[2:]))
	case "tokens":
		os.Exit(cmdTokens(os.Args[2:]))
	case "repl":
		os.Exit(cmdRepl(os.Args[2:]))
	default:
		fmt.Fprintf(os.Stderr, "Unknown command: %s\n", cmd)
		os.Exit(1)
	}
}

func cmdRun(args []string) int {
	var file string
	pretty := false
	jsonOutput := false

	for i := 0; i < len(args); i++ {
		switch args[i] {
		case "--pretty":
			pretty = true
		case "--json":
			jsonOutput = true
		default:
			if !strings.HasPrefix(args[i], "-") || args[i] == "-" {
				file = args[i]
			}
		}
	}

	if file == "" {
		fmt.Fprintln(os.Stderr, "usage: monkey run <file> [--pretty] [--json]")
		return 1
	}

	source, filename, exitCode := readSource(file, pretty)
	if exitCode != 0 {
		return exitCode
	}

	env := evaluator.NewEnv()
	result, err := runtime.Run(source, filename, env)
	if err != nil {
		if diagErr, ok := err.(*runtime.DiagnosticError); ok {
			fmt.Fprintln(os.Stderr, diagnostics.FormatDiagnostics(diagErr.Diagnostics, pretty))
			return 2
		}
		fmt.Fprintln(os.Stderr, err.Error())
		return 2
	}

	if errObj, ok := result.(*evaluator.Error); ok {
		fmt.Fprintln(os.Stderr, errObj.Inspect())
		return 4
	}

	if jsonOutput {
		b, jsonErr := json.Marshal(evaluator.ValueToJSON(result))
		if jsonErr != nil {
			fmt.Fprintf(os.Stderr, "error serializing result: %s\n", jsonErr)
			return 4
		}
		fmt.Println(string(b))
		return 0
	}

	fmt.Println(result.Inspect())
	return 0
}

func cmdCheck(args []string) int {
	var file string
	pretty := false

	for i := 0; i < len(args); i++ {
		switch args[i] {
		case "--pretty":
			pretty = true
		default:
			if !strings.HasPrefix(args[i], "-") || args[i] == "-" {
				file = args[i]
			}
		}
	}

	if file == "" {
		fmt.Fprintln(os.Stderr, "usage: monkey check <file> [--pretty]")
		return 1
	}

	source, filename, exitCode := readSource(file, pretty)
	if exitCode != 0 {
		return exitCode
	}

	diags := runtime.Check(source, filename)
	if len(diags) > 0 {
		fmt.Fprintln(os.Stderr, diagnostics.FormatDiagnostics(diags, pretty))
		return 2
	}

	if pretty {
		fmt.Println("No errors found.")
	} else {
		fmt.Println("[]")
	}
	return 0
}

func cmdFmt(args []string) int {
	var file string
	write := false

	for i := 0; i < len(args); i++ {
		switch args[i] {
		case "--write":
			write = true
		default:
			if !strings.HasPrefix(args[i], "-") {
				file = args[i]
			}
		}
	}

	if file == "" {
		fmt.Fprintln(os.Stderr, "usage: monkey fmt <file> [--write]")
		return 1
	}

	sourceBytes, err := os.ReadFile(file)
	if err != nil {
		diag := diagnostics.MakeDiag(diagnostics.EIO, fmt.Sprintf("cannot read file: %s", file), nil, "")
		fmt.Fprintln(os.Stderr, diagnostics.FormatDiagnostics([]diagnostics.Diagnostic{diag}, false))
		return 1
	}
	source := string(sourceBytes)

	formatted, fmtErr := runtime.Format(source, file)
	if fmtErr != nil {
		if diagErr, ok := fmtErr.(*runtime.DiagnosticError); ok {
			fmt.Fprintln(os.Stderr, diagnostics.FormatDiagnostics(diagErr.Diagnostics, false))
			return 2
		}
		fmt.Fprintln(os.Stderr, fmtErr.Error())
		return 2
	}

	if write {
		if err := os.WriteFile(file, []byte(formatted), 0644); err != nil {
			fmt.Fprintf(os.Stderr, "error writing file: %s\n", err)
			return 1
		}
		return 0
	}
	fmt.Print(formatted)
	return 0
}

func cmdTokens(args []string) int {
	var file string

	for i := 0; i < len(args); i++ {
		if !strings.HasPrefix(args[i], "-") || args[i] == "-" {
			file = args[i]
		}
	}

	if file == "" {
		fmt.Fprintln(os.Stderr, "usage: monkey tokens <file>")
		return 1
	}

	source, filename, exitCode := readSource(file, false)
	if exitCode != 0 {
		return exitCode
	}

	for _, tok := range lexer.Tokenize(source, filename) {
		fmt.Printf("%s:%d:%d\t%s\t%q\n",
			tok.Span.File, tok.Span.StartLine, tok.Span.StartCol, tok.Type, tok.Value)
	}
	return 0
}

func readSource(file string, pretty bool) (string, string, int) {
	if file == "-" {
		data, err := io.ReadAll(os.Stdin)
		if err != nil {
			fmt.Fprintf(os.Stderr, "error reading stdin: %s\n", err)
			return "", "", 1
		}
		return string(data), "<stdin>", 0
	}

	source, err := os.ReadFile(file)
	if err != nil {
		diag := diagnostics.MakeDiag(diagnostics.EIO, fmt.Sprintf("cannot read file: %s", file), nil, "")
		fmt.Fprintln(os.Stderr, diagnostics.FormatDiagnostics([]diagnostics.Diagnostic{diag}, pretty))
		return "", "", 1
	}
	return string(source), file, 0
}

package main

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/peterh/liner"

	"github.com/thomasrohde/monkey/pkg/diagnostics"
	"github.com/thomasrohde/monkey/pkg/evaluator"
	"github.com/thomasrohde/monkey/pkg/runtime"
)

const replPrompt = ">> "

func historyPath() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".monkey_history")
}

// cmdRepl runs an interactive session. Bindings persist across lines in a
// single environment, so closures defined earlier in the session keep working.
func cmdRepl(args []string) int {
	pretty := true
	for _, arg := range args {
		if arg == "--json" {
			pretty = false
		}
	}

	line := liner.NewLiner()
	defer line.Close()
	line.SetCtrlCAborts(true)

	histPath := historyPath()
	if histPath != "" {
		if f, err := os.Open(histPath); err == nil {
			line.ReadHistory(f)
			f.Close()
		}
	}

	env := evaluator.NewEnv()

	for {
		input, err := line.Prompt(replPrompt)
		if err == liner.ErrPromptAborted || err == io.EOF {
			break
		}
		if err != nil {
			fmt.Fprintf(os.Stderr, "error reading input: %s\n", err)
			return 1
		}

		trimmed := strings.TrimSpace(input)
		if trimmed == "" {
			continue
		}
		if trimmed == "exit" || trimmed == "quit" {
			break
		}
		line.AppendHistory(input)

		result, runErr := runtime.Run(input, "<repl>", env)
		if runErr != nil {
			if diagErr, ok := runErr.(*runtime.DiagnosticError); ok {
				fmt.Fprintln(os.Stderr, diagnostics.FormatDiagnostics(diagErr.Diagnostics, pretty))
				continue
			}
			fmt.Fprintln(os.Stderr, runErr.Error())
			continue
		}

		if errObj, ok := result.(*evaluator.Error); ok {
			fmt.Fprintln(os.Stderr, errObj.Inspect())
			continue
		}
		if result != evaluator.NullVal {
			fmt.Println(result.Inspect())
		}
	}

	if histPath != "" {
		if f, err := os.Create(histPath); err == nil {
			line.WriteHistory(f)
			f.Close()
		}
	}
	return 0
}

// Package repl is an interactive checker for DDL snippets.
package repl

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/peterh/liner"

	perrors "github.com/sambeau/ddl/pkg/ddl/errors"
)

const PROMPT = ">> "
const CONTINUATION_PROMPT = ".. "

// Options configures a REPL session.
type Options struct {
	Version     string
	HistoryFile string // Defaults to .ddl_history in the temp directory
	Policy      perrors.Policy
	Logger      *slog.Logger
}

// Start runs the REPL with line editing, history, and tab completion until
// the user exits. Lines are collected until a blank line, then parsed as one
// document object.
func Start(out io.Writer, opts Options) {
	line := liner.NewLiner()
	defer line.Close()

	line.SetCtrlCAborts(true)
	line.SetCompleter(filterCompletions)

	historyFile := opts.HistoryFile
	if historyFile == "" {
		historyFile = filepath.Join(os.TempDir(), ".ddl_history")
	}
	if f, err := os.Open(historyFile); err == nil {
		line.ReadHistory(f)
		f.Close()
	}
	defer func() {
		if f, err := os.Create(historyFile); err == nil {
			line.WriteHistory(f)
			f.Close()
		}
	}()

	s := NewSession(out, opts.Policy, opts.Logger)

	fmt.Fprintln(out, "ddlcheck", opts.Version)
	fmt.Fprintln(out, "Enter a DDL snippet and finish it with a blank line")
	fmt.Fprintln(out, "Type 'exit' or Ctrl+D to quit, ':help' for commands")
	fmt.Fprintln(out, "")

	var inputBuffer strings.Builder
	for {
		prompt := PROMPT
		if inputBuffer.Len() > 0 {
			prompt = CONTINUATION_PROMPT
		}
		input, err := line.Prompt(prompt)
		if err != nil {
			if errors.Is(err, liner.ErrPromptAborted) {
				if inputBuffer.Len() > 0 {
					fmt.Fprintln(out, "^C (cleared)")
				} else {
					fmt.Fprintln(out, "^C")
				}
				inputBuffer.Reset()
				continue
			}
			if errors.Is(err, io.EOF) {
				if inputBuffer.Len() > 0 {
					s.Eval(inputBuffer.String())
				}
				fmt.Fprintln(out, "\nGoodbye!")
				return
			}
			fmt.Fprintf(out, "Error reading input: %v\n", err)
			continue
		}

		trimmed := strings.TrimSpace(input)
		if inputBuffer.Len() == 0 {
			if trimmed == "exit" || trimmed == "quit" {
				fmt.Fprintln(out, "Goodbye!")
				return
			}
			if strings.HasPrefix(trimmed, ":") {
				s.Command(trimmed)
				continue
			}
			if trimmed == "" {
				continue
			}
		}

		if trimmed == "" {
			snippet := inputBuffer.String()
			line.AppendHistory(snippet)
			s.Eval(snippet)
			inputBuffer.Reset()
			continue
		}

		if inputBuffer.Len() > 0 {
			inputBuffer.WriteString("\n")
		}
		inputBuffer.WriteString(input)
	}
}

package main

import (
	"fmt"
	"io"
	"log/slog"

	"github.com/spf13/cobra"

	"github.com/sambeau/ddl/pkg/ddl/ddl"
	"github.com/sambeau/ddl/pkg/ddl/dom"
	perrors "github.com/sambeau/ddl/pkg/ddl/errors"
	"github.com/sambeau/ddl/pkg/ddl/markdown"
)

// Output formats of the check command.
const (
	formatText = "text"
	formatJSON = "json"
)

func newCheckCmd(a *app) *cobra.Command {
	var (
		dump   bool
		format string
	)

	cmd := &cobra.Command{
		Use:   "check FILE...",
		Short: "Check DDL files",
		Long: `Parse each file and print its diagnostics. Exits with status 1 if any file has errors.

Markdown files (.md) are checked block by block: every fenced code block
tagged ddl is parsed on its own. Files ending in .gz or .zst are
decompressed first.

With --format json each diagnostic is written to stdout as one JSON object
per line.`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if format != formatText && format != formatJSON {
				return fmt.Errorf("invalid format %q (must be text or json)", format)
			}
			failed := 0
			for _, path := range args {
				ok, err := a.checkFile(path, dump, format)
				if err != nil {
					return err
				}
				if !ok {
					failed++
				}
			}
			if failed > 0 {
				fmt.Fprintf(a.stderr, "%d of %d files failed\n", failed, len(args))
				return errFailed
			}
			return nil
		},
	}

	cmd.Flags().BoolVar(&dump, "dump", false, "Print the parsed document graph")
	cmd.Flags().StringVar(&format, "format", formatText, "Diagnostics format (text, json)")
	return cmd
}

// checkFile parses one file and prints its diagnostics to stderr. It
// reports whether the file is free of errors.
func (a *app) checkFile(path string, dump bool, format string) (bool, error) {
	data, ext, err := readSource(path)
	if err != nil {
		return false, err
	}

	snippets := []markdown.Snippet{{Line: 1, Code: string(data)}}
	if ext == ".md" || ext == ".markdown" {
		snippets = markdown.Snippets(data)
	}

	ok := true
	errorCount, warningCount := 0, 0
	for _, sn := range snippets {
		obj, diags, err := ddl.ParseDocumentObject(sn.Code,
			ddl.WithFilename(path),
			ddl.WithPolicy(a.cfg.Policy()),
			ddl.WithLogger(a.parserLogger()),
		)

		for _, d := range diags.All() {
			if err := a.printDiagnostic(shift(d, sn.Line-1), format); err != nil {
				return false, err
			}
		}
		errorCount += diags.ErrorCount()
		warningCount += diags.WarningCount()
		if err != nil || diags.HasErrors() {
			ok = false
		}
		if dump && obj != nil {
			printDump(a.stdout, obj)
		}
	}

	a.logger.Info("checked",
		slog.String("file", path),
		slog.Int("snippets", len(snippets)),
		slog.Int("errors", errorCount),
		slog.Int("warnings", warningCount))
	return ok, nil
}

func (a *app) printDiagnostic(d *perrors.Diagnostic, format string) error {
	switch {
	case format == formatJSON:
		data, err := d.ToJSON()
		if err != nil {
			return fmt.Errorf("failed to encode diagnostic: %w", err)
		}
		fmt.Fprintln(a.stdout, string(data))
	case d.IsWarning():
		fmt.Fprintln(a.stderr, "warning: "+d.String())
	default:
		fmt.Fprintln(a.stderr, d.String())
	}
	return nil
}

// shift moves a diagnostic down by lines, for snippets that start inside
// a larger file.
func shift(d *perrors.Diagnostic, lines int) *perrors.Diagnostic {
	if lines == 0 || d.Line == 0 {
		return d
	}
	return d.WithPosition(d.Line+lines, d.Column)
}

func printDump(w io.Writer, obj dom.DocumentObject) {
	io.WriteString(w, dom.Dump(obj))
}

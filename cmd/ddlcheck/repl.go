package main

import (
	"github.com/spf13/cobra"

	"github.com/sambeau/ddl/pkg/ddl/repl"
)

func newReplCmd(a *app) *cobra.Command {
	var history string

	cmd := &cobra.Command{
		Use:   "repl",
		Short: "Check DDL snippets interactively",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, args []string) {
			repl.Start(a.stdout, repl.Options{
				Version:     Version,
				HistoryFile: history,
				Policy:      a.cfg.Policy(),
				Logger:      a.parserLogger(),
			})
		},
	}

	cmd.Flags().StringVar(&history, "history", "", "History file (default: .ddl_history in the temp directory)")
	return cmd
}

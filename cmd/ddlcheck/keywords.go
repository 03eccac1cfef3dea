package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/sambeau/ddl/pkg/ddl/lexer"
)

func newKeywordsCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "keywords",
		Short: "List the DDL keywords",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, args []string) {
			for _, kw := range lexer.Keywords() {
				fmt.Fprintln(a.stdout, kw)
			}
			for _, sym := range []lexer.Symbol{lexer.True, lexer.False, lexer.Null} {
				if kw, ok := lexer.KeywordSpelling(sym); ok {
					fmt.Fprintln(a.stdout, kw)
				}
			}
		},
	}
}

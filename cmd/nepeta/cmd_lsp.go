package main

import (
	"github.com/spf13/cobra"
	"github.com/tliron/commonlog"

	"github.com/sepia-mori/nepeta"
	"github.com/sepia-mori/nepeta/lsp"
)

func newLSPCmd() *cobra.Command {
	var verbosity int

	cmd := &cobra.Command{
		Use:   "lsp",
		Short: "Start the language server on stdio",
		RunE: func(cmd *cobra.Command, args []string) error {
			commonlog.Configure(verbosity, nil)
			return lsp.NewServer(nepeta.Version).RunStdio()
		},
	}

	cmd.Flags().CountVarP(&verbosity, "verbose", "v", "increase log verbosity")

	return cmd
}

package main

import (
	"os"

	"github.com/spf13/cobra"
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "nepeta",
		Short: "Tools for the nepeta document format",
	}

	rootCmd.AddCommand(newParseCmd())
	rootCmd.AddCommand(newFmtCmd())
	rootCmd.AddCommand(newGetCmd())
	rootCmd.AddCommand(newLSPCmd())

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

package main

import (
	"fmt"
	"os"

	"github.com/spf13/afero"
	"github.com/spf13/cobra"

	"github.com/sepia-mori/nepeta"
	"github.com/sepia-mori/nepeta/nepio"
)

func newParseCmd() *cobra.Command {
	var outputFormat string

	cmd := &cobra.Command{
		Use:   "parse <file>",
		Short: "Parse a document and dump the resulting tree",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			filename := args[0]

			doc, err := nepio.Load(afero.NewOsFs(), filename, reportParseError(filename))
			if err != nil {
				return err
			}

			switch outputFormat {
			case "tree":
				fmt.Print(doc)
			case "nepeta":
				if err := nepeta.Write(os.Stdout, doc, nepeta.DefaultWriterOptions()); err != nil {
					return fmt.Errorf("write: %w", err)
				}
			default:
				return fmt.Errorf("unknown format: %s", outputFormat)
			}

			return nil
		},
	}

	cmd.Flags().StringVarP(&outputFormat, "format", "f", "tree", "output format (tree, nepeta)")

	return cmd
}

func reportParseError(filename string) nepeta.ErrorHandler {
	return func(kind nepeta.ErrorKind, ch byte, line, column int) {
		fmt.Fprintf(os.Stderr, "%s:%d:%d: %s\n", filename, line, column, kind)
	}
}

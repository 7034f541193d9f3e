package main

import (
	"fmt"
	"os"

	"github.com/spf13/afero"
	"github.com/spf13/cobra"

	"github.com/sepia-mori/nepeta"
	"github.com/sepia-mori/nepeta/nepio"
)

func newFmtCmd() *cobra.Command {
	var write bool
	var useSpaces bool
	var indentWidth int
	var blockThreshold int
	var base64Width int

	cmd := &cobra.Command{
		Use:   "fmt <file>",
		Short: "Reformat a document",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			filename := args[0]
			fsys := afero.NewOsFs()

			errors := 0
			doc, err := nepio.Load(fsys, filename, func(kind nepeta.ErrorKind, ch byte, line, column int) {
				if !kind.IsWarning() {
					errors++
				}
				fmt.Fprintf(os.Stderr, "%s:%d:%d: %s\n", filename, line, column, kind)
			})
			if err != nil {
				return err
			}
			if errors > 0 {
				return fmt.Errorf("%s: refusing to format a document with %d parse errors", filename, errors)
			}

			opts := nepeta.DefaultWriterOptions()
			if useSpaces {
				opts.Indent = nepeta.IndentSpaces
			}
			opts.IndentWidth = indentWidth
			opts.BlockThreshold = blockThreshold
			opts.Base64LineWidth = base64Width

			if write {
				return nepio.Save(fsys, filename, doc, opts)
			}
			if err := nepeta.Write(os.Stdout, doc, opts); err != nil {
				return fmt.Errorf("write: %w", err)
			}
			return nil
		},
	}

	cmd.Flags().BoolVarP(&write, "write", "w", false, "rewrite the file in place")
	cmd.Flags().BoolVar(&useSpaces, "spaces", false, "indent with spaces instead of tabs")
	cmd.Flags().IntVar(&indentWidth, "indent", 1, "indentation characters per level")
	cmd.Flags().IntVar(&blockThreshold, "block-limit", 128, "write values at least this long as blocks")
	cmd.Flags().IntVar(&base64Width, "base64-width", 60, "base64 characters per line")

	return cmd
}

package main

import (
	"fmt"

	"github.com/spf13/afero"
	"github.com/spf13/cobra"

	"github.com/sepia-mori/nepeta/nepio"
)

func newGetCmd() *cobra.Command {
	var asBool bool
	var asInt bool
	var index int

	cmd := &cobra.Command{
		Use:   "get <file> <key>...",
		Short: "Print the data of the node addressed by a key path",
		Args:  cobra.MinimumNArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			doc, err := nepio.Load(afero.NewOsFs(), args[0], reportParseError(args[0]))
			if err != nil {
				return err
			}

			node := doc
			for _, key := range args[1:] {
				if node = node.Find(key); node == nil {
					return fmt.Errorf("key not found: %s", key)
				}
			}

			switch {
			case asBool:
				value, ok := node.BoolAt(index)
				if !ok {
					return fmt.Errorf("data %d is not a boolean", index)
				}
				fmt.Println(value)
			case asInt:
				value, ok := node.IntegerAt(index)
				if !ok {
					return fmt.Errorf("data %d is not an integer", index)
				}
				fmt.Println(value)
			default:
				for _, data := range node.Data {
					fmt.Printf("%s\n", data)
				}
			}
			return nil
		},
	}

	cmd.Flags().BoolVar(&asBool, "bool", false, "coerce one data value to a boolean")
	cmd.Flags().BoolVar(&asInt, "int", false, "coerce one data value to an integer")
	cmd.Flags().IntVar(&index, "index", 0, "data value index used with --bool and --int")

	return cmd
}

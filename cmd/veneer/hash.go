// Hash command: SHA-256 digest of text or file contents.
// Implements: prd005-veneer-cli R4.1; prd003-utilities R1.
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/mesh-intelligence/veneer/pkg/digest"
)

func newHashCmd() *cobra.Command {
	var fromFile string

	cmd := &cobra.Command{
		Use:   "hash [text]",
		Short: "Print the hex SHA-256 digest of text, a file, or stdin",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			var data []byte
			switch {
			case fromFile != "":
				raw, err := os.ReadFile(fromFile)
				if err != nil {
					return err
				}
				data = raw
			default:
				param, err := readParam(cmd, args)
				if err != nil {
					return err
				}
				data = []byte(param)
			}

			sum := digest.Hash(data)
			if flags.jsonMode {
				return printJSON(cmd, map[string]any{"digest": sum})
			}
			fmt.Fprintln(cmd.OutOrStdout(), sum)
			return nil
		},
	}

	cmd.Flags().StringVar(&fromFile, "file", "", "hash the contents of this file instead of arguments")
	return cmd
}

// Path commands: passthroughs to the platform path primitives.
// Implements: prd005-veneer-cli R4.3; prd003-utilities R4.
package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/mesh-intelligence/veneer/pkg/pathutil"
)

func newPathCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "path",
		Short: "Path manipulation helpers",
	}

	cmd.AddCommand(&cobra.Command{
		Use:   "normalize <path>",
		Short: "Print the lexically cleaned form of a path",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			fmt.Fprintln(cmd.OutOrStdout(), pathutil.Normalize(args[0]))
			return nil
		},
	})

	cmd.AddCommand(&cobra.Command{
		Use:   "join <part>...",
		Short: "Join path elements with the platform separator",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			fmt.Fprintln(cmd.OutOrStdout(), pathutil.Join(args...))
			return nil
		},
	})

	cmd.AddCommand(&cobra.Command{
		Use:   "resolve <path>",
		Short: "Print the absolute form of a path",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			abs, err := pathutil.Resolve(args[0])
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), abs)
			return nil
		},
	})

	return cmd
}

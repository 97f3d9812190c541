// Implements: prd005-veneer-cli R2.1 (version command).
package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/mesh-intelligence/veneer/pkg/veneer"
)

const modulePath = "github.com/mesh-intelligence/veneer"

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print the veneer version",
		RunE: func(cmd *cobra.Command, args []string) error {
			fmt.Fprintf(cmd.OutOrStdout(), "veneer v%s\nmodule: %s\n", veneer.Version, modulePath)
			return nil
		},
	}
}

// Process command: payload processing over a JSON value.
// Implements: prd005-veneer-cli R4.4; prd003-utilities R5.
package main

import (
	"encoding/json"

	"github.com/spf13/cobra"

	"github.com/mesh-intelligence/veneer/pkg/dataproc"
)

func newProcessCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "process [json]",
		Short: "Process a JSON payload (arrays are copied, other values pass through)",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			param, err := readParam(cmd, args)
			if err != nil {
				return err
			}

			var value any
			if err := json.Unmarshal([]byte(param), &value); err != nil {
				return err
			}

			return printJSON(cmd, dataproc.Process(value))
		},
	}
}

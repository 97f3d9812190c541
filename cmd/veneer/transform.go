// Transform command: JSON round-trip deep copy.
// Implements: prd005-veneer-cli R4.2; prd003-utilities R3.
package main

import (
	"encoding/json"

	"github.com/spf13/cobra"

	"github.com/mesh-intelligence/veneer/pkg/digest"
)

func newTransformCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "transform [json]",
		Short: "Round-trip a JSON value through the transform and print the copy",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			param, err := readParam(cmd, args)
			if err != nil {
				return err
			}

			var value any
			if err := json.Unmarshal([]byte(param), &value); err != nil {
				// Decode errors surface verbatim (prd005 R7.2).
				return err
			}

			out, err := digest.Transform(value)
			if err != nil {
				return err
			}
			return printJSON(cmd, out)
		},
	}
}

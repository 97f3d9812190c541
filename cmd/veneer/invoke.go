// Invoke and handlers commands: run registry handlers and record the results.
// Implements: prd005-veneer-cli R5; prd001-envelope-core R3;
//
//	prd002-journal-backend R2.
package main

import (
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"
)

func newHandlersCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "handlers",
		Short: "List the registered handler names",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			names := newRuntimeRegistry().Names()
			if flags.jsonMode {
				return printJSON(cmd, names)
			}
			for _, name := range names {
				fmt.Fprintln(cmd.OutOrStdout(), name)
			}
			return nil
		},
	}
}

func newInvokeCmd() *cobra.Command {
	var noRecord bool

	cmd := &cobra.Command{
		Use:   "invoke <handler> [param-json]",
		Short: "Invoke a handler and print its response envelope",
		Args:  cobra.RangeArgs(1, 2),
		RunE: func(cmd *cobra.Command, args []string) error {
			var param any
			if len(args) > 1 {
				if err := json.Unmarshal([]byte(args[1]), &param); err != nil {
					return err
				}
			}

			env, err := newRuntimeRegistry().Invoke(args[0], param)
			if err != nil {
				return err
			}

			// Record before printing: a failed journal write fails the
			// command rather than silently dropping the invocation.
			if !noRecord {
				j, err := attachJournal()
				if err != nil {
					return &sysError{err}
				}
				defer j.Detach()
				if _, err := j.Record(args[0], env); err != nil {
					return &sysError{fmt.Errorf("recording invocation: %w", err)}
				}
			}

			return printJSON(cmd, env)
		},
	}

	cmd.Flags().BoolVar(&noRecord, "no-record", false, "do not record the invocation in the journal")
	return cmd
}

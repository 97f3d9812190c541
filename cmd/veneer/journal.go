// Journal commands: query recorded invocations.
// Implements: prd005-veneer-cli R5.3; prd002-journal-backend R2.
package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

func newJournalCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "journal",
		Short: "Query the invocation journal",
	}
	cmd.AddCommand(newJournalListCmd())
	cmd.AddCommand(newJournalGetCmd())
	return cmd
}

func newJournalListCmd() *cobra.Command {
	var limit int

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List recorded invocations, newest first",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			j, err := attachJournal()
			if err != nil {
				return &sysError{err}
			}
			defer j.Detach()

			invocations, err := j.List(limit)
			if err != nil {
				return err
			}
			if flags.jsonMode {
				return printJSON(cmd, invocations)
			}
			for _, inv := range invocations {
				fmt.Fprintf(cmd.OutOrStdout(), "%s  %-12s %s\n",
					inv.CreatedAt.Format("2006-01-02 15:04:05"), inv.Handler, inv.InvocationID)
			}
			return nil
		},
	}

	cmd.Flags().IntVar(&limit, "limit", 0, "maximum invocations to list (0 = all)")
	return cmd
}

func newJournalGetCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "get <invocation-id>",
		Short: "Print one recorded invocation",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			j, err := attachJournal()
			if err != nil {
				return &sysError{err}
			}
			defer j.Detach()

			inv, err := j.Get(args[0])
			if err != nil {
				return err
			}
			return printJSON(cmd, inv)
		},
	}
}

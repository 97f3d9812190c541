// Init command for the veneer CLI.
// Implements: prd005-veneer-cli R2.2;
//
//	prd006-configuration-directories R2, R3.
package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

func newInitCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "init",
		Short: "Initialize veneer configuration and journal storage",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			// Resolve config directory (flag > env > default) and ensure it
			// exists with a default config.yaml (prd006 R3.3).
			configDir, err := resolveConfigDir()
			if err != nil {
				return &sysError{fmt.Errorf("init: %w", err)}
			}
			if err := ensureConfigDir(configDir); err != nil {
				return &sysError{fmt.Errorf("init: %w", err)}
			}
			if err := ensureDefaultConfigFile(configDir); err != nil {
				return &sysError{fmt.Errorf("init: %w", err)}
			}

			// Attach the journal (creates the data directory and files).
			j, err := attachJournal()
			if err != nil {
				return &sysError{fmt.Errorf("init: %w", err)}
			}
			defer j.Detach()

			dataDir, err := resolveDataDir()
			if err != nil {
				return &sysError{fmt.Errorf("init: %w", err)}
			}

			fmt.Fprintln(cmd.OutOrStdout(), "Veneer initialized successfully")
			fmt.Fprintln(cmd.OutOrStdout(), "  config:", configDir)
			fmt.Fprintln(cmd.OutOrStdout(), "  data:  ", dataDir)
			return nil
		},
	}
}

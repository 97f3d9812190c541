// Root command for the veneer CLI.
// Implements: prd005-veneer-cli (R1 root command, R6 global flags, R7 exit codes);
//
//	prd006-configuration-directories (R1, R2).
package main

import (
	"github.com/spf13/cobra"
)

// Exit codes per prd005-veneer-cli R7.
const (
	exitSuccess   = 0
	exitUserError = 1
	exitSysError  = 2
)

// rootFlags holds global flag values accessible to all subcommands.
type rootFlags struct {
	configDir string
	dataDir   string
	jsonMode  bool
}

var flags rootFlags

// newRootCmd creates the top-level "veneer" command with global flags and all
// subcommands registered.
func newRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:   "veneer",
		Short: "Serve uniform canned responses from named handlers",
		Long: `Veneer resolves named handlers to uniform response envelopes and records
each invocation in a persistent journal. It also ships the supporting
utilities: content hashing, JSON round-trip transforms, path normalization,
and payload processing.`,
		// Do not print usage on errors returned by subcommands.
		SilenceUsage: true,
	}

	// Global persistent flags (prd005-veneer-cli R6).
	root.PersistentFlags().StringVar(&flags.configDir, "config-dir", "", "configuration directory (default: platform config dir)")
	root.PersistentFlags().StringVar(&flags.dataDir, "data-dir", "", "data directory (default: .veneer-db)")
	root.PersistentFlags().BoolVar(&flags.jsonMode, "json", false, "output in JSON format")

	root.AddCommand(newVersionCmd())
	root.AddCommand(newInitCmd())
	root.AddCommand(newHashCmd())
	root.AddCommand(newTransformCmd())
	root.AddCommand(newPathCmd())
	root.AddCommand(newProcessCmd())
	root.AddCommand(newHandlersCmd())
	root.AddCommand(newInvokeCmd())
	root.AddCommand(newJournalCmd())

	return root
}

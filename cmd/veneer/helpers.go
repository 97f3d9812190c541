// Shared helpers for veneer CLI commands.
// Implements: prd005-veneer-cli (R3 journal access, R8 output modes);
//
//	prd006-configuration-directories (R5 precedence chains).
package main

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/mesh-intelligence/veneer/internal/journal"
	"github.com/mesh-intelligence/veneer/internal/paths"
	"github.com/mesh-intelligence/veneer/pkg/component"
	"github.com/mesh-intelligence/veneer/pkg/stub"
	"github.com/mesh-intelligence/veneer/pkg/types"
)

// resolveConfigDir returns the config directory from flag, env, or platform
// default.
func resolveConfigDir() (string, error) {
	return paths.ResolveConfigDir(flags.configDir)
}

// resolveDataDir returns the data directory following the precedence chain
// flag > config.yaml > env > CWD default. The config.yaml value is read from
// the resolved config directory.
func resolveDataDir() (string, error) {
	configDir, err := resolveConfigDir()
	if err != nil {
		return "", fmt.Errorf("resolve config dir: %w", err)
	}
	cfg, err := loadConfig(configDir)
	if err != nil {
		return "", fmt.Errorf("load config: %w", err)
	}
	return paths.ResolveDataDir(flags.dataDir, cfg.GetString(cfgKeyDataDir))
}

// attachJournal resolves the data directory, creates a journal, and attaches
// it. The caller must defer j.Detach().
func attachJournal() (*journal.Journal, error) {
	dataDir, err := resolveDataDir()
	if err != nil {
		return nil, fmt.Errorf("resolve data dir: %w", err)
	}

	j := journal.NewJournal()
	if err := j.Attach(types.Config{Backend: types.BackendSQLite, DataDir: dataDir}); err != nil {
		return nil, fmt.Errorf("attach journal: %w", err)
	}
	return j, nil
}

// newRuntimeRegistry builds the registry served by the CLI: the echo handler
// plus the component-backed handlers.
func newRuntimeRegistry() *stub.Registry {
	r := stub.NewRegistry()
	deployer := component.NewDeployer()
	analyzer := component.NewAnalyzer()

	// Registration of built-in names cannot fail.
	_ = r.Register("echo", stub.Echo)
	_ = r.Register("deploy", func(param any) (types.Envelope, error) {
		return types.NewEnvelope(deployer.Deploy()), nil
	})
	_ = r.Register("analyze", func(param any) (types.Envelope, error) {
		return types.NewEnvelope(analyzer.Analyze()), nil
	})
	_ = r.Register("synthesize", func(param any) (types.Envelope, error) {
		return types.NewEnvelope(analyzer.Synthesize()), nil
	})
	_ = r.Register("recommend", func(param any) (types.Envelope, error) {
		return types.NewEnvelope(analyzer.Recommend()), nil
	})
	return r
}

// readParam returns the command parameter: the first positional argument if
// present, otherwise all of stdin. An empty parameter is allowed and returns
// an empty string.
func readParam(cmd *cobra.Command, args []string) (string, error) {
	if len(args) > 0 {
		return args[0], nil
	}
	raw, err := io.ReadAll(cmd.InOrStdin())
	if err != nil {
		return "", fmt.Errorf("reading stdin: %w", err)
	}
	return string(raw), nil
}

// printJSON writes v to the command output as indented JSON.
func printJSON(cmd *cobra.Command, v any) error {
	out, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return fmt.Errorf("encoding output: %w", err)
	}
	fmt.Fprintln(cmd.OutOrStdout(), string(out))
	return nil
}

// sysError marks failures that exit with exitSysError. Commands return it
// through cobra's error flow; main maps it to the exit code.
type sysError struct{ err error }

func (e *sysError) Error() string { return e.err.Error() }
func (e *sysError) Unwrap() error { return e.err }

// Package paths resolves configuration and data directory locations.
// Implements: prd006-configuration-directories (R1, R2, R5).
package paths

import (
	"os"
	"path/filepath"
	"runtime"
)

// CWD-relative directory names per prd006 R1.2 and R2.2.
const (
	DefaultConfigDirName = ".veneer"
	DefaultDataDirName   = ".veneer-db"
)

// Environment variable names for directory overrides.
const (
	EnvConfigDir = "VENEER_CONFIG_DIR"
	EnvDataDir   = "VENEER_DATA_DIR"
)

// platformDir holds platform-detection functions that can be overridden in tests.
var platformDir = struct {
	homeDir       func() (string, error)
	userConfigDir func() (string, error)
}{
	homeDir:       os.UserHomeDir,
	userConfigDir: os.UserConfigDir,
}

// DefaultConfigDir returns the platform-specific default configuration directory.
//
// Linux:   $XDG_CONFIG_HOME/veneer (fallback ~/.config/veneer)
// macOS:   ~/Library/Application Support/veneer
// Windows: %APPDATA%/veneer
func DefaultConfigDir() (string, error) {
	switch runtime.GOOS {
	case "linux":
		if xdg := os.Getenv("XDG_CONFIG_HOME"); xdg != "" {
			return filepath.Join(xdg, "veneer"), nil
		}
		home, err := platformDir.homeDir()
		if err != nil {
			return "", err
		}
		return filepath.Join(home, ".config", "veneer"), nil
	default:
		// macOS and Windows use os.UserConfigDir which returns
		// ~/Library/Application Support on macOS and %APPDATA% on Windows.
		dir, err := platformDir.userConfigDir()
		if err != nil {
			return "", err
		}
		return filepath.Join(dir, "veneer"), nil
	}
}

// DefaultDataDir returns the platform-specific default data directory.
//
// Linux:   $XDG_DATA_HOME/veneer (fallback ~/.local/share/veneer)
// macOS:   ~/Library/Application Support/veneer
// Windows: %APPDATA%/veneer
func DefaultDataDir() (string, error) {
	switch runtime.GOOS {
	case "linux":
		if xdg := os.Getenv("XDG_DATA_HOME"); xdg != "" {
			return filepath.Join(xdg, "veneer"), nil
		}
		home, err := platformDir.homeDir()
		if err != nil {
			return "", err
		}
		return filepath.Join(home, ".local", "share", "veneer"), nil
	default:
		// macOS and Windows: same as config dir.
		dir, err := platformDir.userConfigDir()
		if err != nil {
			return "", err
		}
		return filepath.Join(dir, "veneer"), nil
	}
}

// ResolveConfigDir returns the configuration directory following the precedence
// chain: flag > VENEER_CONFIG_DIR env > DefaultConfigDir().
//
// If flag is non-empty it wins. Otherwise the VENEER_CONFIG_DIR environment
// variable is checked. If neither is set, the platform default is returned.
func ResolveConfigDir(flag string) (string, error) {
	if flag != "" {
		return filepath.Abs(flag)
	}
	if env := os.Getenv(EnvConfigDir); env != "" {
		return filepath.Abs(env)
	}
	return DefaultConfigDir()
}

// ResolveDataDir returns the data directory following the precedence chain:
// flag > configYAMLValue > VENEER_DATA_DIR env > CWD-relative default.
//
// The CWD-relative default ($(CWD)/.veneer-db) is the primary mode when no
// override is active, so a journal initialized in a working tree stays with
// that tree.
func ResolveDataDir(flag, configYAMLValue string) (string, error) {
	if flag != "" {
		return filepath.Abs(flag)
	}
	if configYAMLValue != "" {
		return filepath.Abs(configYAMLValue)
	}
	if env := os.Getenv(EnvDataDir); env != "" {
		return filepath.Abs(env)
	}
	cwd, err := os.Getwd()
	if err != nil {
		return "", err
	}
	return filepath.Join(cwd, DefaultDataDirName), nil
}

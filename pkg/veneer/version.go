// Package veneer exposes module-level metadata shared by the CLI and library.
package veneer

// Version is the module version reported by the CLI version command.
const Version = "0.1.0"

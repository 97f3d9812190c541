// Package main provides the veneer CLI.
// Implements: prd005-veneer-cli R1, R7;
//
//	docs/ARCHITECTURE § CLI.
package main

import (
	"errors"
	"fmt"
	"os"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		var sysErr *sysError
		if errors.As(err, &sysErr) {
			os.Exit(exitSysError)
		}
		os.Exit(exitUserError)
	}
}

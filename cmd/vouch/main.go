// Package main provides the entry point for the vouch integrity checker CLI.
package main

import (
	"errors"
	"os"

	"github.com/jamesainslie/vouch/pkg/vouch/logging"
)

func main() {
	err := Execute()
	_ = logging.Close()

	if err != nil {
		// Mismatches get a distinct exit code so callers can tell a
		// failed verification from a usage or I/O error.
		if errors.Is(err, errMismatch) {
			os.Exit(2)
		}
		os.Exit(1)
	}
}

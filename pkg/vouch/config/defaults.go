// Package config provides configuration management for vouch.
package config

// Default configuration values for vouch.
const (
	// DefaultWorkers selects one fingerprint worker per CPU when zero.
	DefaultWorkers = 0

	// DefaultOutput is the default output format.
	DefaultOutput = "pretty"

	// DefaultMovedDisplayLimit caps the prior paths listed on a moved
	// file before the list is suppressed as too ambiguous.
	DefaultMovedDisplayLimit = 2

	// DefaultHistoryLimit is the default number of runs shown by the
	// history command.
	DefaultHistoryLimit = 20

	// DefaultLogLevel is the default logging level.
	DefaultLogLevel = "warn"
)

// DefaultSkipDirs contains directory names excluded from scans by default.
// Matching is by exact name, anywhere in the tree.
var DefaultSkipDirs = []string{}

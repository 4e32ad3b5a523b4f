// Package output provides formatters for rendering verification results
// in various output formats (pretty, plain, json, yaml).
//
// The package uses a registry pattern to allow registration of multiple
// formatter implementations that can be selected at runtime.
//
// Basic usage:
//
//	formatter, err := output.Get("pretty")
//	if err != nil {
//	    log.Fatal(err)
//	}
//	var buf bytes.Buffer
//	if err := formatter.Format(&buf, result); err != nil {
//	    log.Fatal(err)
//	}
//	fmt.Print(buf.String())
package output

import (
	"bytes"
	"fmt"
	"sort"
	"sync"
	"time"

	"github.com/jamesainslie/vouch/pkg/vouch/types"
)

// timeRounding is the display granularity for run durations.
const timeRounding = 10 * time.Millisecond

// Stats describes the scan behind a result.
type Stats struct {
	// FilesScanned is the number of paths dispatched to the scanner.
	FilesScanned int64 `json:"files_scanned" yaml:"files_scanned"`

	// Failed is the number of unreadable paths dropped from the scan.
	Failed int64 `json:"failed" yaml:"failed"`

	// BytesHashed is the total content size fingerprinted.
	BytesHashed int64 `json:"bytes_hashed" yaml:"bytes_hashed"`

	// Duration is the wall-clock time of the run.
	Duration time.Duration `json:"duration" yaml:"duration"`
}

// Result carries everything a formatter needs to render one run.
type Result struct {
	// Root is the scanned directory.
	Root string `json:"root" yaml:"root"`

	// SnapshotPath is the reference snapshot used or written.
	SnapshotPath string `json:"snapshot" yaml:"snapshot"`

	// Verdicts holds the per-file classifications, sorted by path.
	Verdicts []types.Verdict `json:"verdicts" yaml:"verdicts"`

	// Summary aggregates the verdict counts.
	Summary types.Summary `json:"summary" yaml:"summary"`

	// Stats describes the scan itself.
	Stats Stats `json:"stats" yaml:"stats"`

	// Updated is true when the reference snapshot was written back.
	Updated bool `json:"updated" yaml:"updated"`

	// Quiet suppresses per-verdict detail and the summary in the
	// human-readable formatters. Mismatch evidence still prints: it is
	// the failure signal. Structured formatters ignore Quiet.
	Quiet bool `json:"-" yaml:"-"`
}

// Formatter renders a result into a buffer.
type Formatter interface {
	Format(w *bytes.Buffer, r *Result) error
}

// registry holds the registered formatter factories.
var (
	registryMu sync.RWMutex
	registry   = make(map[string]func() Formatter)
)

// Register adds a formatter factory under a name. It is intended to be
// called from init functions.
func Register(name string, factory func() Formatter) {
	registryMu.Lock()
	defer registryMu.Unlock()
	registry[name] = factory
}

// Get returns a new formatter for the given name.
func Get(name string) (Formatter, error) {
	registryMu.RLock()
	factory, ok := registry[name]
	registryMu.RUnlock()
	if !ok {
		return nil, fmt.Errorf("unknown output format %q", name)
	}
	return factory(), nil
}

// Available returns the registered format names, sorted.
func Available() []string {
	registryMu.RLock()
	defer registryMu.RUnlock()

	names := make([]string, 0, len(registry))
	for name := range registry {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

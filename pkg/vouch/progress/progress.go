// Package progress renders scan progress as a single rewriting terminal
// line. It is purely observational: reporting never affects scan results
// or classification.
package progress

import (
	"fmt"
	"io"
	"sync"

	"github.com/jamesainslie/vouch/pkg/vouch/scanner"
	"github.com/jamesainslie/vouch/pkg/vouch/types"
)

// Reporter writes progress updates to a terminal. Updates arrive from
// scanner worker goroutines, so rendering is serialized with a mutex.
type Reporter struct {
	w  io.Writer
	mu sync.Mutex

	// wrote tracks whether anything was rendered, so Finish only emits a
	// newline when there is a line to terminate.
	wrote bool
}

// New creates a Reporter writing to w, typically os.Stderr.
func New(w io.Writer) *Reporter {
	return &Reporter{w: w}
}

// Update renders the current counters. Safe for concurrent use.
func (r *Reporter) Update(p scanner.Progress) {
	r.mu.Lock()
	defer r.mu.Unlock()

	percent := int64(100)
	if p.Total > 0 {
		percent = p.Processed * 100 / p.Total
	}

	fmt.Fprintf(r.w, "\r\033[K[%d/%d] %3d%%  %s hashed",
		p.Processed, p.Total, percent, types.FormatSize(p.BytesHashed))
	r.wrote = true
}

// Finish terminates the progress line.
func (r *Reporter) Finish() {
	r.mu.Lock()
	defer r.mu.Unlock()

	if r.wrote {
		fmt.Fprintln(r.w)
	}
}

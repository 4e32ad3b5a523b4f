// Package scanner fans the fingerprint engine out across many files and
// aggregates the results into a single snapshot map.
//
// Each worker accumulates fingerprints in a private partial map; the
// partial maps are merged sequentially after all workers finish, so no
// lock is ever taken on the result. The final map content is deterministic
// even though processing order is not.
package scanner

import (
	"context"
	"sync"
	"sync/atomic"
	"time"

	"github.com/jamesainslie/vouch/pkg/vouch/fingerprint"
	"github.com/jamesainslie/vouch/pkg/vouch/logging"
	"github.com/jamesainslie/vouch/pkg/vouch/types"
)

// Scanner computes fingerprints for a set of paths in parallel.
type Scanner struct {
	opts Options

	// Atomic counters for thread-safe progress reporting.
	total       atomic.Int64
	processed   atomic.Int64
	failed      atomic.Int64
	bytesHashed atomic.Int64

	// lastProgress throttles progress callbacks.
	lastProgress atomic.Int64
}

// New creates a Scanner with the given options. Defaults are applied for
// invalid values.
func New(opts Options) *Scanner {
	_ = opts.Validate()
	return &Scanner{opts: opts}
}

// Scan fingerprints every path and returns the snapshot of those that
// succeeded. Paths that fail are dropped from the result without error:
// one unreadable file must not abort a tree-wide scan. Failed paths still
// count toward progress, exactly once each.
//
// Scan blocks until all dispatched work is complete or ctx is cancelled;
// on cancellation the snapshot covers the paths processed so far.
func (s *Scanner) Scan(ctx context.Context, paths []string) types.Snapshot {
	logger := logging.Get("scanner")

	s.total.Store(int64(len(paths)))
	s.reportProgressForce()

	workers := s.opts.Workers
	if workers > len(paths) && len(paths) > 0 {
		workers = len(paths)
	}

	work := make(chan string)
	partials := make([]types.Snapshot, workers)

	var wg sync.WaitGroup
	for i := 0; i < workers; i++ {
		wg.Add(1)
		go func(idx int) {
			defer wg.Done()
			partials[idx] = s.worker(work)
		}(i)
	}

	// Dispatch paths; stop early on cancellation.
dispatch:
	for _, path := range paths {
		select {
		case work <- path:
		case <-ctx.Done():
			break dispatch
		}
	}
	close(work)
	wg.Wait()

	// Sequential merge of the private partial maps.
	merged := make(types.Snapshot, len(paths))
	for _, partial := range partials {
		for path, rec := range partial {
			merged[path] = rec
		}
	}

	s.reportProgressForce()
	logger.Debug("scan complete",
		"files", len(merged),
		"failed", s.failed.Load(),
		"bytes", s.bytesHashed.Load())

	return merged
}

// worker fingerprints paths from the work channel into a private map.
func (s *Scanner) worker(work <-chan string) types.Snapshot {
	partial := make(types.Snapshot)
	for path := range work {
		rec, err := fingerprint.File(path)
		if err != nil {
			// Dropped from results by policy; the path still counts
			// toward progress below.
			s.failed.Add(1)
		} else {
			partial[path] = rec
			s.bytesHashed.Add(rec.Size)
		}

		s.processed.Add(1)
		s.reportProgress()
	}
	return partial
}

// Progress returns the current progress counters.
func (s *Scanner) Progress() Progress {
	return Progress{
		Total:       s.total.Load(),
		Processed:   s.processed.Load(),
		Failed:      s.failed.Load(),
		BytesHashed: s.bytesHashed.Load(),
	}
}

// reportProgress calls the progress callback, throttled to avoid
// excessive overhead under fast hashing.
func (s *Scanner) reportProgress() {
	if s.opts.OnProgress == nil {
		return
	}

	now := time.Now().UnixMilli()
	last := s.lastProgress.Load()
	if now-last < 50 {
		return
	}
	if !s.lastProgress.CompareAndSwap(last, now) {
		return // Another goroutine reported.
	}

	s.opts.OnProgress(s.Progress())
}

// reportProgressForce calls the progress callback immediately, bypassing
// the throttle. Used at scan start and end.
func (s *Scanner) reportProgressForce() {
	if s.opts.OnProgress == nil {
		return
	}
	s.lastProgress.Store(time.Now().UnixMilli())
	s.opts.OnProgress(s.Progress())
}

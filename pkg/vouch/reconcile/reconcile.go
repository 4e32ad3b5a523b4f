// Package reconcile classifies a freshly computed snapshot against a
// stored reference snapshot.
//
// Classification is pure: it produces structured verdicts and a summary,
// and leaves all rendering to the output package. The only mutation is the
// optional in-place update of the reference snapshot, which inserts or
// overwrites entries keyed by current paths. Reference entries for paths
// absent from the current scan are never deleted; there is no Deleted
// verdict.
package reconcile

import (
	"sort"

	"github.com/jamesainslie/vouch/pkg/vouch/logging"
	"github.com/jamesainslie/vouch/pkg/vouch/types"
)

// DefaultMovedCandidateLimit is the default cap on listed prior paths for
// a Moved verdict. With more candidates than this the list is suppressed
// as too ambiguous to be useful.
const DefaultMovedCandidateLimit = 2

// Options configures a reconciliation run.
type Options struct {
	// Update inserts or overwrites reference entries for files classified
	// Skipped, Moved, or Extra. Matched entries are already current and
	// Mismatched entries keep the trusted reference record.
	Update bool

	// MovedCandidateLimit caps the number of prior paths reported on a
	// Moved verdict; beyond it the list is suppressed. Zero or negative
	// selects DefaultMovedCandidateLimit.
	MovedCandidateLimit int
}

// Result is the outcome of one reconciliation run.
type Result struct {
	// Verdicts holds one entry per current file, sorted by path.
	Verdicts []types.Verdict

	// Summary aggregates the verdict counts.
	Summary types.Summary
}

// HasMismatch reports whether the run found silent content changes.
func (r *Result) HasMismatch() bool {
	return r.Summary.HasMismatch()
}

// Run classifies every entry of current against the reference snapshot
// and its inverted index.
//
// Decision procedure per file, in order:
//  1. Path present in reference, digests match: Matched.
//  2. Path present, digests differ, modification times match: Mismatched.
//     The content changed without the filesystem recording a new mtime,
//     which is evidence of tampering or corruption.
//  3. Path present, digests and modification times both differ: Skipped.
//     A legitimate edit; the new record becomes the accepted baseline.
//  4. Path absent, nonzero size, digest known to the index: Moved, with
//     the prior paths as evidence.
//  5. Otherwise: Extra. Zero-byte files always land here: an empty file's
//     digest is shared by every other empty file and cannot witness a move.
//
// When opts.Update is set, reference is mutated in place as documented on
// Options; writing the updated snapshot back is the caller's concern.
func Run(current, reference types.Snapshot, idx Index, opts Options) Result {
	logger := logging.Get("reconcile")

	limit := opts.MovedCandidateLimit
	if limit <= 0 {
		limit = DefaultMovedCandidateLimit
	}

	var result Result
	for path, cur := range current {
		verdict := classify(path, cur, reference, idx, limit)
		result.Verdicts = append(result.Verdicts, verdict)
		result.Summary.Count(verdict.Kind)

		if opts.Update {
			switch verdict.Kind {
			case types.Skipped, types.Moved, types.Extra:
				reference[path] = cur
			}
		}
	}

	sort.Slice(result.Verdicts, func(i, j int) bool {
		return result.Verdicts[i].Path < result.Verdicts[j].Path
	})

	logger.Debug("reconciliation complete",
		"files", result.Summary.Total(),
		"matched", result.Summary.Matched,
		"mismatched", result.Summary.Mismatched,
		"moved", result.Summary.Moved)

	return result
}

// classify decides the verdict for one current file.
func classify(path string, cur types.Record, reference types.Snapshot, idx Index, limit int) types.Verdict {
	if expected, ok := reference[path]; ok {
		switch {
		case cur.Hash == expected.Hash:
			return types.Verdict{Path: path, Kind: types.Matched}
		case cur.Modified == expected.Modified:
			return types.Verdict{
				Path:     path,
				Kind:     types.Mismatched,
				Expected: expected.Hash,
				Found:    cur.Hash,
			}
		default:
			return types.Verdict{Path: path, Kind: types.Skipped}
		}
	}

	if prior := idx[cur.Hash]; len(prior) > 0 && cur.Size != 0 {
		verdict := types.Verdict{Path: path, Kind: types.Moved}
		if len(prior) <= limit {
			verdict.PriorPaths = append([]string(nil), prior...)
		}
		return verdict
	}

	return types.Verdict{Path: path, Kind: types.Extra}
}

package reconcile

import "github.com/jamesainslie/vouch/pkg/vouch/types"

// Index is an inverted index over a reference snapshot: digest to the
// reference paths sharing that digest. It is derived state, rebuilt once
// per reconciliation run and never mutated afterwards, even when the
// reference snapshot it came from is updated in place. Move detection
// therefore always sees the pre-update reference.
type Index map[string][]string

// BuildIndex builds the inverted index for a reference snapshot. Path
// order within a digest follows the map traversal order of this run; it
// is not stable across runs.
func BuildIndex(reference types.Snapshot) Index {
	idx := make(Index)
	for path, rec := range reference {
		idx[rec.Hash] = append(idx[rec.Hash], path)
	}
	return idx
}

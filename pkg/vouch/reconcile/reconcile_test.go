package reconcile

import (
	"sort"
	"testing"

	"github.com/jamesainslie/vouch/pkg/vouch/types"
)

// rec is a shorthand record constructor for tests.
func rec(hash string, modified, size int64) types.Record {
	return types.Record{Hash: hash, Modified: modified, Size: size}
}

// verdictFor finds the verdict for a path, failing the test when absent.
func verdictFor(t *testing.T, result Result, path string) types.Verdict {
	t.Helper()
	for _, v := range result.Verdicts {
		if v.Path == path {
			return v
		}
	}
	t.Fatalf("no verdict for %s", path)
	return types.Verdict{}
}

func TestBuildIndex(t *testing.T) {
	t.Parallel()
	reference := types.Snapshot{
		"a.txt": rec("h1", 100, 10),
		"b.txt": rec("h1", 100, 10),
		"c.txt": rec("h2", 200, 20),
	}

	idx := BuildIndex(reference)

	if len(idx) != 2 {
		t.Fatalf("index size: got %d, want 2", len(idx))
	}
	paths := append([]string(nil), idx["h1"]...)
	sort.Strings(paths)
	if len(paths) != 2 || paths[0] != "a.txt" || paths[1] != "b.txt" {
		t.Errorf("h1 paths: got %v", paths)
	}
	if len(idx["h2"]) != 1 || idx["h2"][0] != "c.txt" {
		t.Errorf("h2 paths: got %v", idx["h2"])
	}
}

func TestRunAllMatched(t *testing.T) {
	t.Parallel()
	reference := types.Snapshot{
		"a.txt": rec("h1", 100, 10),
		"b.txt": rec("h2", 200, 20),
	}
	current := reference.Clone()

	result := Run(current, reference, BuildIndex(reference), Options{})

	if result.Summary.Matched != 2 || result.Summary.Mismatched != 0 {
		t.Errorf("summary: %+v", result.Summary)
	}
	if result.HasMismatch() {
		t.Error("HasMismatch() = true for fully matched run")
	}
}

func TestRunMismatchSameMtime(t *testing.T) {
	t.Parallel()
	reference := types.Snapshot{"a.txt": rec("old-hash", 100, 10)}
	// Content changed, mtime did not: the corruption signal.
	current := types.Snapshot{"a.txt": rec("new-hash", 100, 10)}

	result := Run(current, reference, BuildIndex(reference), Options{})

	v := verdictFor(t, result, "a.txt")
	if v.Kind != types.Mismatched {
		t.Fatalf("kind: got %v, want Mismatched", v.Kind)
	}
	if v.Expected != "old-hash" || v.Found != "new-hash" {
		t.Errorf("evidence: expected=%q found=%q", v.Expected, v.Found)
	}
	if !result.HasMismatch() {
		t.Error("HasMismatch() = false")
	}
}

func TestRunSkippedWhenMtimeDiffers(t *testing.T) {
	t.Parallel()
	reference := types.Snapshot{"a.txt": rec("old-hash", 100, 10)}
	// Content and mtime both changed: a legitimate edit, never Mismatched.
	current := types.Snapshot{"a.txt": rec("new-hash", 300, 12)}

	result := Run(current, reference, BuildIndex(reference), Options{})

	if v := verdictFor(t, result, "a.txt"); v.Kind != types.Skipped {
		t.Fatalf("kind: got %v, want Skipped", v.Kind)
	}
	if result.HasMismatch() {
		t.Error("HasMismatch() = true for a skipped file")
	}
}

func TestRunMovedSingleCandidate(t *testing.T) {
	t.Parallel()
	reference := types.Snapshot{"old/b.txt": rec("h-b", 100, 10)}
	current := types.Snapshot{"new/c.txt": rec("h-b", 100, 10)}

	result := Run(current, reference, BuildIndex(reference), Options{})

	v := verdictFor(t, result, "new/c.txt")
	if v.Kind != types.Moved {
		t.Fatalf("kind: got %v, want Moved", v.Kind)
	}
	if len(v.PriorPaths) != 1 || v.PriorPaths[0] != "old/b.txt" {
		t.Errorf("prior paths: got %v", v.PriorPaths)
	}
}

func TestRunMovedCandidateSuppression(t *testing.T) {
	t.Parallel()
	reference := types.Snapshot{
		"p1": rec("dup", 100, 10),
		"p2": rec("dup", 100, 10),
		"p3": rec("dup", 100, 10),
	}
	current := types.Snapshot{"p4": rec("dup", 100, 10)}

	t.Run("default limit suppresses three candidates", func(t *testing.T) {
		result := Run(current, reference.Clone(), BuildIndex(reference), Options{})
		v := verdictFor(t, result, "p4")
		if v.Kind != types.Moved {
			t.Fatalf("kind: got %v, want Moved", v.Kind)
		}
		if len(v.PriorPaths) != 0 {
			t.Errorf("prior paths not suppressed: %v", v.PriorPaths)
		}
	})

	t.Run("raised limit lists all candidates", func(t *testing.T) {
		result := Run(current, reference.Clone(), BuildIndex(reference), Options{MovedCandidateLimit: 5})
		v := verdictFor(t, result, "p4")
		if len(v.PriorPaths) != 3 {
			t.Errorf("prior paths: got %v, want 3 entries", v.PriorPaths)
		}
	})
}

func TestRunZeroByteNeverMoved(t *testing.T) {
	t.Parallel()
	// Reference already contains an empty file; its digest is shared by
	// every other empty file.
	reference := types.Snapshot{"old/empty-a": rec("empty-hash", 100, 0)}
	current := types.Snapshot{"new/empty-b": rec("empty-hash", 100, 0)}

	result := Run(current, reference, BuildIndex(reference), Options{})

	if v := verdictFor(t, result, "new/empty-b"); v.Kind != types.Extra {
		t.Fatalf("kind: got %v, want Extra", v.Kind)
	}
	if result.Summary.Moved != 0 {
		t.Errorf("moved count: got %d, want 0", result.Summary.Moved)
	}
}

func TestRunExtra(t *testing.T) {
	t.Parallel()
	reference := types.Snapshot{"known.txt": rec("h1", 100, 10)}
	current := types.Snapshot{
		"known.txt": rec("h1", 100, 10),
		"brand-new": rec("h-new", 500, 5),
	}

	result := Run(current, reference, BuildIndex(reference), Options{})

	if v := verdictFor(t, result, "brand-new"); v.Kind != types.Extra {
		t.Fatalf("kind: got %v, want Extra", v.Kind)
	}
	if result.Summary.Matched != 1 || result.Summary.Extra != 1 {
		t.Errorf("summary: %+v", result.Summary)
	}
}

func TestRunDeletionsNeverVisited(t *testing.T) {
	t.Parallel()
	reference := types.Snapshot{
		"present.txt": rec("h1", 100, 10),
		"deleted.txt": rec("h2", 100, 10),
	}
	current := types.Snapshot{"present.txt": rec("h1", 100, 10)}

	result := Run(current, reference, BuildIndex(reference), Options{Update: true})

	// Files only in the reference produce no verdict and survive update.
	if len(result.Verdicts) != 1 {
		t.Fatalf("verdicts: got %d, want 1", len(result.Verdicts))
	}
	if _, ok := reference["deleted.txt"]; !ok {
		t.Error("update removed a reference entry for an unscanned path")
	}
}

func TestRunUpdateMutations(t *testing.T) {
	t.Parallel()
	reference := types.Snapshot{
		"matched.txt":  rec("h-m", 100, 10),
		"mismatch.txt": rec("h-old", 100, 10),
		"edited.txt":   rec("h-before", 100, 10),
		"moved-src":    rec("h-moved", 100, 10),
	}
	current := types.Snapshot{
		"matched.txt":  rec("h-m", 100, 10),
		"mismatch.txt": rec("h-tampered", 100, 10),
		"edited.txt":   rec("h-after", 900, 11),
		"moved-dst":    rec("h-moved", 100, 10),
		"fresh.txt":    rec("h-fresh", 900, 3),
	}

	idx := BuildIndex(reference)
	result := Run(current, reference, idx, Options{Update: true})

	// Skipped: overwritten with the new baseline.
	if got := reference["edited.txt"]; got.Hash != "h-after" {
		t.Errorf("edited.txt not updated: %+v", got)
	}
	// Moved: inserted under the new path, old entry untouched.
	if got := reference["moved-dst"]; got.Hash != "h-moved" {
		t.Errorf("moved-dst not inserted: %+v", got)
	}
	if got := reference["moved-src"]; got.Hash != "h-moved" {
		t.Errorf("moved-src entry was touched: %+v", got)
	}
	// Extra: inserted.
	if got := reference["fresh.txt"]; got.Hash != "h-fresh" {
		t.Errorf("fresh.txt not inserted: %+v", got)
	}
	// Mismatched: the trusted reference record is kept.
	if got := reference["mismatch.txt"]; got.Hash != "h-old" {
		t.Errorf("mismatch.txt was overwritten: %+v", got)
	}

	want := types.Summary{Matched: 1, Mismatched: 1, Skipped: 1, Moved: 1, Extra: 1}
	if result.Summary != want {
		t.Errorf("summary: got %+v, want %+v", result.Summary, want)
	}
}

func TestRunIndexUnaffectedByUpdate(t *testing.T) {
	t.Parallel()
	reference := types.Snapshot{"src": rec("h", 100, 10)}
	idx := BuildIndex(reference)

	current := types.Snapshot{"dst": rec("h", 100, 10)}
	Run(current, reference, idx, Options{Update: true})

	// The index is a snapshot of the pre-update reference.
	if len(idx["h"]) != 1 || idx["h"][0] != "src" {
		t.Errorf("index mutated by update: %v", idx["h"])
	}
}

func TestRunVerdictsSortedByPath(t *testing.T) {
	t.Parallel()
	current := types.Snapshot{
		"zebra": rec("h1", 1, 1),
		"alpha": rec("h2", 1, 1),
		"mango": rec("h3", 1, 1),
	}

	result := Run(current, types.Snapshot{}, Index{}, Options{})

	if !sort.SliceIsSorted(result.Verdicts, func(i, j int) bool {
		return result.Verdicts[i].Path < result.Verdicts[j].Path
	}) {
		t.Errorf("verdicts not sorted: %+v", result.Verdicts)
	}
}

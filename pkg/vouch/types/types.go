// Package types provides core data types for the vouch integrity checker.
// It includes the fingerprint record stored in snapshots, the snapshot map
// itself, and the verdict types produced by reconciliation.
package types

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/dustin/go-humanize"
)

// Record is the content fingerprint of a single file at a point in time.
// It is immutable once created; a fresh Record is computed per scan.
type Record struct {
	// Hash is the hex-encoded BLAKE3 digest of the file content.
	// It depends on file bytes only, never on path or name.
	Hash string `json:"hash"`

	// Modified is the file's modification time in seconds since epoch.
	Modified int64 `json:"modified"`

	// Size is the file size in bytes.
	Size int64 `json:"size"`
}

// Snapshot maps a file path to its fingerprint record. It represents
// either the current filesystem state (freshly computed) or the reference
// state (loaded from a snapshot file, possibly mutated during verification).
type Snapshot map[string]Record

// Clone returns a deep copy of the snapshot.
func (s Snapshot) Clone() Snapshot {
	out := make(Snapshot, len(s))
	for path, rec := range s {
		out[path] = rec
	}
	return out
}

// VerdictKind classifies the outcome of comparing one current file against
// the reference snapshot.
type VerdictKind int

// Verdict kinds, in classification priority order.
const (
	// Matched means path and digest both agree with the reference.
	Matched VerdictKind = iota

	// Mismatched means the digest changed while the recorded modification
	// time did not. This is the only kind treated as a failure: content
	// changed behind the filesystem's back.
	Mismatched

	// Skipped means the digest changed and so did the modification time.
	// The file was legitimately edited; the new content becomes the
	// accepted baseline.
	Skipped

	// Moved means the path is new but its digest matches one or more
	// reference entries. Zero-byte files never qualify.
	Moved

	// Extra means the path is new and its digest is unknown to the
	// reference.
	Extra
)

// String returns the lowercase name of the verdict kind.
func (k VerdictKind) String() string {
	switch k {
	case Matched:
		return "matched"
	case Mismatched:
		return "mismatched"
	case Skipped:
		return "skipped"
	case Moved:
		return "moved"
	case Extra:
		return "extra"
	default:
		return "unknown"
	}
}

// ParseVerdictKind parses a verdict kind name. It accepts the values
// produced by VerdictKind.String.
func ParseVerdictKind(s string) (VerdictKind, bool) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "matched":
		return Matched, true
	case "mismatched":
		return Mismatched, true
	case "skipped":
		return Skipped, true
	case "moved":
		return Moved, true
	case "extra":
		return Extra, true
	default:
		return Matched, false
	}
}

// MarshalJSON encodes the kind as its string name.
func (k VerdictKind) MarshalJSON() ([]byte, error) {
	return json.Marshal(k.String())
}

// UnmarshalJSON decodes a kind from its string name.
func (k *VerdictKind) UnmarshalJSON(data []byte) error {
	var name string
	if err := json.Unmarshal(data, &name); err != nil {
		return err
	}
	kind, ok := ParseVerdictKind(name)
	if !ok {
		return fmt.Errorf("unknown verdict kind %q", name)
	}
	*k = kind
	return nil
}

// Verdict is the classification of a single current file, carrying the
// evidence behind the decision.
type Verdict struct {
	// Path is the file path as it appears in the current scan.
	Path string `json:"path"`

	// Kind is the classification outcome.
	Kind VerdictKind `json:"kind"`

	// Expected is the reference digest for Mismatched verdicts.
	Expected string `json:"expected,omitempty"`

	// Found is the freshly computed digest for Mismatched verdicts.
	Found string `json:"found,omitempty"`

	// PriorPaths lists the reference paths sharing the digest for Moved
	// verdicts. Empty when the candidate list was suppressed.
	PriorPaths []string `json:"prior_paths,omitempty"`
}

// Summary aggregates verdict counts for one reconciliation run.
type Summary struct {
	Matched    int `json:"matched"`
	Mismatched int `json:"mismatched"`
	Skipped    int `json:"skipped"`
	Moved      int `json:"moved"`
	Extra      int `json:"extra"`
}

// Total returns the number of classified files.
func (s Summary) Total() int {
	return s.Matched + s.Mismatched + s.Skipped + s.Moved + s.Extra
}

// HasMismatch reports whether at least one Mismatched verdict occurred.
// This is the run's overall failure signal.
func (s Summary) HasMismatch() bool {
	return s.Mismatched > 0
}

// Count adds one verdict to the summary.
func (s *Summary) Count(kind VerdictKind) {
	switch kind {
	case Matched:
		s.Matched++
	case Mismatched:
		s.Mismatched++
	case Skipped:
		s.Skipped++
	case Moved:
		s.Moved++
	case Extra:
		s.Extra++
	}
}

// FormatSize converts a byte count to a human-readable string using
// binary (IEC) units, consistent with common filesystem tools.
func FormatSize(bytes int64) string {
	return humanize.IBytes(uint64(bytes))
}

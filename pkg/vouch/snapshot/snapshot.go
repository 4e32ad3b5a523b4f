// Package snapshot persists fingerprint snapshots as JSON files.
//
// The on-disk format is a single JSON object mapping file paths to
// fingerprint records:
//
//	{
//	  "data/a.txt": {"hash": "…", "modified": 1712345678, "size": 42}
//	}
//
// Loading then saving an unmodified snapshot reproduces the same key set
// and field values; key order and whitespace are not guaranteed.
package snapshot

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/jamesainslie/vouch/pkg/vouch/types"
)

// ParseError reports a snapshot file that is missing or malformed. It is
// fatal: verification aborts before any classification.
type ParseError struct {
	Path string
	Err  error
}

// Error implements the error interface.
func (e *ParseError) Error() string {
	return fmt.Sprintf("parse snapshot %s: %v", e.Path, e.Err)
}

// Unwrap returns the underlying error.
func (e *ParseError) Unwrap() error {
	return e.Err
}

// WriteError reports a failure to persist a snapshot.
type WriteError struct {
	Path string
	Err  error
}

// Error implements the error interface.
func (e *WriteError) Error() string {
	return fmt.Sprintf("write snapshot %s: %v", e.Path, e.Err)
}

// Unwrap returns the underlying error.
func (e *WriteError) Unwrap() error {
	return e.Err
}

// Load reads and parses a snapshot file.
func Load(path string) (types.Snapshot, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, &ParseError{Path: path, Err: err}
	}

	var snap types.Snapshot
	if err := json.Unmarshal(data, &snap); err != nil {
		return nil, &ParseError{Path: path, Err: err}
	}
	if snap == nil {
		snap = make(types.Snapshot)
	}
	return snap, nil
}

// Save writes a snapshot to path, replacing any prior contents in full.
// The write goes to a temporary file in the same directory followed by a
// rename, so a crash mid-write cannot leave a truncated snapshot behind.
func Save(path string, snap types.Snapshot) error {
	data, err := json.MarshalIndent(snap, "", "  ")
	if err != nil {
		return &WriteError{Path: path, Err: err}
	}
	data = append(data, '\n')

	tmpPath := path + ".tmp"
	if err := os.WriteFile(tmpPath, data, 0o644); err != nil {
		return &WriteError{Path: path, Err: err}
	}

	if err := os.Rename(tmpPath, path); err != nil {
		_ = os.Remove(tmpPath)
		return &WriteError{Path: path, Err: err}
	}

	return nil
}

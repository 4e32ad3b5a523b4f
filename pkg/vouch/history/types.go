package history

import (
	"bytes"
	"encoding/gob"
	"time"

	"github.com/jamesainslie/vouch/pkg/vouch/types"
)

// Mode identifies what kind of run was recorded.
type Mode string

const (
	// ModeSnapshot is a produce-snapshot run.
	ModeSnapshot Mode = "snapshot"
	// ModeVerify is a verification run.
	ModeVerify Mode = "verify"
)

// RunRecord describes one completed vouch run.
type RunRecord struct {
	ID           string
	Time         time.Time
	Mode         Mode
	Root         string
	SnapshotPath string
	Updated      bool
	Files        int64
	FailedFiles  int64
	BytesHashed  int64
	Summary      types.Summary
}

// Encode serializes the record to bytes using gob.
func (r *RunRecord) Encode() ([]byte, error) {
	var buf bytes.Buffer
	if err := gob.NewEncoder(&buf).Encode(r); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// Decode deserializes bytes into the record using gob.
func (r *RunRecord) Decode(data []byte) error {
	return gob.NewDecoder(bytes.NewReader(data)).Decode(r)
}

// key builds the store key for a record. Keys start with a fixed-width
// UTC timestamp so byte order equals chronological order; the ID suffix
// keeps simultaneous runs distinct.
func (r *RunRecord) key() []byte {
	return []byte(r.Time.UTC().Format("20060102T150405.000000000") + "-" + r.ID)
}

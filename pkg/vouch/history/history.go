// Package history records completed vouch runs in a local Badger store,
// so past snapshot and verification outcomes can be reviewed with the
// history command. Recording is best-effort: a failure to persist history
// never fails the run that produced it.
package history

import (
	"fmt"
	"time"

	"github.com/dgraph-io/badger/v4"
	"github.com/google/uuid"
)

// Store wraps Badger for run history operations.
type Store struct {
	db *badger.DB
}

// Open opens or creates a history store at the given directory.
func Open(path string) (*Store, error) {
	opts := badger.DefaultOptions(path)
	opts.Logger = nil // Disable badger logging

	db, err := badger.Open(opts)
	if err != nil {
		return nil, fmt.Errorf("opening history store: %w", err)
	}

	return &Store{db: db}, nil
}

// Close closes the store.
func (s *Store) Close() error {
	return s.db.Close()
}

// Record persists a run record, assigning its ID and timestamp when unset,
// and returns the stored record.
func (s *Store) Record(rec RunRecord) (*RunRecord, error) {
	if rec.ID == "" {
		rec.ID = uuid.NewString()
	}
	if rec.Time.IsZero() {
		rec.Time = time.Now().UTC()
	}

	data, err := rec.Encode()
	if err != nil {
		return nil, fmt.Errorf("encoding run record: %w", err)
	}

	err = s.db.Update(func(txn *badger.Txn) error {
		return txn.Set(rec.key(), data)
	})
	if err != nil {
		return nil, fmt.Errorf("storing run record: %w", err)
	}

	return &rec, nil
}

// List returns the most recent runs, newest first. If limit is zero or
// negative, all runs are returned.
func (s *Store) List(limit int) ([]RunRecord, error) {
	var records []RunRecord

	err := s.db.View(func(txn *badger.Txn) error {
		opts := badger.DefaultIteratorOptions
		opts.Reverse = true // Keys are chronological; walk newest first.

		it := txn.NewIterator(opts)
		defer it.Close()

		// A reverse iteration must seek past the last key.
		for it.Seek([]byte("\xff")); it.Valid(); it.Next() {
			if limit > 0 && len(records) >= limit {
				break
			}

			var rec RunRecord
			if err := it.Item().Value(rec.Decode); err != nil {
				return err
			}
			records = append(records, rec)
		}
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("listing run history: %w", err)
	}

	return records, nil
}

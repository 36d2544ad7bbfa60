package boltdb

import (
	"context"
	"fmt"

	"go.etcd.io/bbolt"
)

var (
	// BoltDB bucket names
	bucketSession = []byte("session")
	bucketDevice  = []byte("device")
)

// Storage is the BoltDB-backed secure store for the client. Session values
// are sealed with AES-256-GCM before they hit the file; the key is derived
// from the device keyfile, not stored in the database.
type Storage struct {
	db  *bbolt.DB
	key []byte
}

// New opens the BoltDB file at dbPath and prepares the buckets.
// key must be a 32-byte storage key (see crypto.DeriveStorageKey).
func New(ctx context.Context, dbPath string, key []byte) (*Storage, error) {
	db, err := bbolt.Open(dbPath, 0o600, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to open boltdb: %w", err)
	}

	s := &Storage{db: db, key: key}

	if err := s.initBuckets(); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to initialize buckets: %w", err)
	}

	return s, nil
}

// Close closes the database connection
func (s *Storage) Close() error {
	if s.db == nil {
		return nil
	}
	return s.db.Close()
}

// initBuckets creates the required buckets if they do not exist
func (s *Storage) initBuckets() error {
	return s.db.Update(func(tx *bbolt.Tx) error {
		if _, err := tx.CreateBucketIfNotExists(bucketSession); err != nil {
			return fmt.Errorf("failed to create session bucket: %w", err)
		}
		if _, err := tx.CreateBucketIfNotExists(bucketDevice); err != nil {
			return fmt.Errorf("failed to create device bucket: %w", err)
		}
		return nil
	})
}

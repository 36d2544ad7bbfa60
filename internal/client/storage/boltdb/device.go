package boltdb

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"go.etcd.io/bbolt"
)

var keyDeviceID = []byte("id")

// DeviceID returns the installation identifier, generating one on first
// access. The ID is plaintext: it is not a secret, only a way for the
// backend to tell installations apart.
func (s *Storage) DeviceID(ctx context.Context) (string, error) {
	var id string
	err := s.db.Update(func(tx *bbolt.Tx) error {
		bucket := tx.Bucket(bucketDevice)
		if bucket == nil {
			return fmt.Errorf("device bucket not found")
		}
		if data := bucket.Get(keyDeviceID); data != nil {
			id = string(data)
			return nil
		}
		id = uuid.New().String()
		if err := bucket.Put(keyDeviceID, []byte(id)); err != nil {
			return fmt.Errorf("failed to save device id: %w", err)
		}
		return nil
	})
	if err != nil {
		return "", err
	}
	return id, nil
}

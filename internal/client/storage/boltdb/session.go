package boltdb

import (
	"context"
	"encoding/json"
	"fmt"

	"go.etcd.io/bbolt"

	"github.com/talariafits/talaria/internal/client/storage"
	"github.com/talariafits/talaria/internal/crypto"
	"github.com/talariafits/talaria/internal/models"
)

// Session entry keys, matching the names the mobile secure store used
var (
	keyAccessToken = []byte("accessToken")
	keyUser        = []byte("user")
)

// Compile-time check that Storage implements SessionStorage
var _ storage.SessionStorage = (*Storage)(nil)

// SaveToken stores the bearer token, sealed with the storage key.
func (s *Storage) SaveToken(ctx context.Context, token string) error {
	sealed, err := crypto.Seal([]byte(token), s.key)
	if err != nil {
		return fmt.Errorf("failed to seal token: %w", err)
	}
	return s.putSession(keyAccessToken, sealed)
}

// GetToken retrieves and unseals the stored bearer token.
func (s *Storage) GetToken(ctx context.Context) (string, error) {
	sealed, err := s.getSession(keyAccessToken, storage.ErrTokenNotFound)
	if err != nil {
		return "", err
	}
	token, err := crypto.Open(sealed, s.key)
	if err != nil {
		return "", fmt.Errorf("failed to unseal token: %w", err)
	}
	return string(token), nil
}

// DeleteToken removes the stored bearer token. Deleting an absent token is
// not an error; logout must be idempotent.
func (s *Storage) DeleteToken(ctx context.Context) error {
	return s.deleteSession(keyAccessToken)
}

// SaveUser stores the profile as a sealed single-element JSON array.
func (s *Storage) SaveUser(ctx context.Context, users []models.User) error {
	data, err := json.Marshal(users)
	if err != nil {
		return fmt.Errorf("failed to marshal user record: %w", err)
	}
	sealed, err := crypto.Seal(data, s.key)
	if err != nil {
		return fmt.Errorf("failed to seal user record: %w", err)
	}
	return s.putSession(keyUser, sealed)
}

// GetUser retrieves and unseals the stored user array.
func (s *Storage) GetUser(ctx context.Context) ([]models.User, error) {
	sealed, err := s.getSession(keyUser, storage.ErrUserNotFound)
	if err != nil {
		return nil, err
	}
	data, err := crypto.Open(sealed, s.key)
	if err != nil {
		return nil, fmt.Errorf("failed to unseal user record: %w", err)
	}
	var users []models.User
	if err := json.Unmarshal(data, &users); err != nil {
		return nil, fmt.Errorf("failed to unmarshal user record: %w", err)
	}
	return users, nil
}

// DeleteUser removes the stored user entry.
func (s *Storage) DeleteUser(ctx context.Context) error {
	return s.deleteSession(keyUser)
}

func (s *Storage) putSession(key, value []byte) error {
	return s.db.Update(func(tx *bbolt.Tx) error {
		bucket := tx.Bucket(bucketSession)
		if bucket == nil {
			return fmt.Errorf("session bucket not found")
		}
		if err := bucket.Put(key, value); err != nil {
			return fmt.Errorf("failed to save session entry: %w", err)
		}
		return nil
	})
}

func (s *Storage) getSession(key []byte, notFound error) ([]byte, error) {
	var value []byte
	err := s.db.View(func(tx *bbolt.Tx) error {
		bucket := tx.Bucket(bucketSession)
		if bucket == nil {
			return fmt.Errorf("session bucket not found")
		}
		data := bucket.Get(key)
		if data == nil {
			return notFound
		}
		// Copy out: bolt values are only valid inside the transaction
		value = append([]byte(nil), data...)
		return nil
	})
	if err != nil {
		return nil, err
	}
	return value, nil
}

func (s *Storage) deleteSession(key []byte) error {
	return s.db.Update(func(tx *bbolt.Tx) error {
		bucket := tx.Bucket(bucketSession)
		if bucket == nil {
			return fmt.Errorf("session bucket not found")
		}
		if err := bucket.Delete(key); err != nil {
			return fmt.Errorf("failed to delete session entry: %w", err)
		}
		return nil
	})
}

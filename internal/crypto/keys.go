package crypto

import (
	"crypto/rand"
	"fmt"
	"os"

	"golang.org/x/crypto/argon2"
)

// Argon2id parameters for deriving the storage key from the device secret
const (
	argon2Time    = 1
	argon2Memory  = 64 * 1024
	argon2Threads = 4

	// secretSize is the random device secret length
	secretSize = 32
	// saltSize is the derivation salt length
	saltSize = 32
)

// LoadOrCreateDeviceSecret reads the device keyfile, creating it with a
// fresh random secret and salt on first run. The file is secret (32 bytes)
// followed by salt (32 bytes), mode 0600.
func LoadOrCreateDeviceSecret(path string) (secret, salt []byte, err error) {
	data, err := os.ReadFile(path)
	if err == nil {
		if len(data) != secretSize+saltSize {
			return nil, nil, fmt.Errorf("device keyfile %s is corrupt: %d bytes", path, len(data))
		}
		return data[:secretSize], data[secretSize:], nil
	}
	if !os.IsNotExist(err) {
		return nil, nil, fmt.Errorf("failed to read device keyfile: %w", err)
	}

	data = make([]byte, secretSize+saltSize)
	if _, err := rand.Read(data); err != nil {
		return nil, nil, fmt.Errorf("failed to generate device secret: %w", err)
	}
	if err := os.WriteFile(path, data, 0o600); err != nil {
		return nil, nil, fmt.Errorf("failed to write device keyfile: %w", err)
	}
	return data[:secretSize], data[secretSize:], nil
}

// DeriveStorageKey derives the 32-byte session storage key from the device
// secret using Argon2id.
func DeriveStorageKey(secret, salt []byte) ([]byte, error) {
	if len(secret) == 0 {
		return nil, fmt.Errorf("device secret cannot be empty")
	}
	if len(salt) == 0 {
		return nil, fmt.Errorf("salt cannot be empty")
	}
	key := argon2.IDKey(secret, salt, argon2Time, argon2Memory, argon2Threads, KeySize)
	return key, nil
}

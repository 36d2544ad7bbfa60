package storage

import (
	"context"

	"github.com/talariafits/talaria/internal/models"
)

// SessionStorage defines the durable secure store behind the session
// manager. The two session entries (token and user) are persisted
// independently so a partial delete during logout does not block the
// in-memory reset.
type SessionStorage interface {
	// SaveToken stores the bearer token under the accessToken entry
	SaveToken(ctx context.Context, token string) error

	// GetToken retrieves the stored bearer token.
	// Returns ErrTokenNotFound if no token exists.
	GetToken(ctx context.Context) (string, error)

	// DeleteToken removes the stored bearer token
	DeleteToken(ctx context.Context) error

	// SaveUser stores the profile under the user entry. The value is
	// always written as a single-element array for format consistency
	// with the backend payloads.
	SaveUser(ctx context.Context, users []models.User) error

	// GetUser retrieves the stored user array.
	// Returns ErrUserNotFound if no user exists.
	GetUser(ctx context.Context) ([]models.User, error)

	// DeleteUser removes the stored user entry
	DeleteUser(ctx context.Context) error

	// DeviceID returns the installation identifier, generating and
	// persisting one on first access.
	DeviceID(ctx context.Context) (string, error)
}

package storage

import "errors"

// Common client storage errors
var (
	// ErrTokenNotFound indicates that no access token is stored
	ErrTokenNotFound = errors.New("access token not found")

	// ErrUserNotFound indicates that no user record is stored
	ErrUserNotFound = errors.New("user record not found")
)

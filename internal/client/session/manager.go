package session

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/talariafits/talaria/internal/client/api"
	"github.com/talariafits/talaria/internal/client/storage"
	"github.com/talariafits/talaria/internal/models"
)

// Manager is the single source of truth for "is there a logged-in user".
// It is backed by the durable secure store so a relaunch restores the
// session without re-authentication.
//
// Manager is not safe for concurrent login/logout; callers serialize
// mutations, matching the single-threaded UI flow it was built for.
type Manager struct {
	store   storage.SessionStorage
	backend *api.Client

	loading       bool
	authenticated bool
	token         string
	user          *models.User
}

// NewManager creates a session manager. The session is in the loading
// state until Restore has run.
func NewManager(store storage.SessionStorage, backend *api.Client) *Manager {
	return &Manager{
		store:   store,
		backend: backend,
		loading: true,
	}
}

// Restore rehydrates the session from the secure store. It never fails:
// a missing entry, a storage error, or an unparseable user record all
// degrade to the unauthenticated state. Called once at process start.
func (m *Manager) Restore(ctx context.Context) {
	defer func() { m.loading = false }()

	token, err := m.store.GetToken(ctx)
	if err != nil {
		if !errors.Is(err, storage.ErrTokenNotFound) {
			slog.Warn("failed to read stored token", "error", err)
		}
		m.reset()
		return
	}

	users, err := m.store.GetUser(ctx)
	if err != nil {
		if !errors.Is(err, storage.ErrUserNotFound) {
			slog.Warn("failed to read stored user", "error", err)
		}
		m.reset()
		return
	}
	if len(users) == 0 {
		slog.Warn("stored user record is empty")
		m.reset()
		return
	}

	user := users[0]
	m.token = token
	m.user = &user
	m.authenticated = true
}

// Login persists the bearer token and the user payload and marks the
// session authenticated. The payload may be a bare user object or a
// one-element array; it is always persisted as a single-element array.
// A payload without an _id fails the whole operation and leaves the
// session unauthenticated.
func (m *Manager) Login(ctx context.Context, token string, payload []byte) error {
	user, err := models.UserFromPayload(payload)
	if err != nil {
		slog.Error("login rejected: invalid user payload", "error", err)
		m.reset()
		return fmt.Errorf("invalid user payload: %w", err)
	}

	if err := m.store.SaveToken(ctx, token); err != nil {
		m.reset()
		return fmt.Errorf("failed to persist token: %w", err)
	}
	if err := m.store.SaveUser(ctx, []models.User{*user}); err != nil {
		m.reset()
		return fmt.Errorf("failed to persist user: %w", err)
	}

	m.token = token
	m.user = user
	m.authenticated = true
	return nil
}

// Logout deletes both persisted entries and clears the in-memory session.
// The in-memory state is cleared even if deletion fails; leftover entries
// are overwritten by the next login rather than blocking logout.
func (m *Manager) Logout(ctx context.Context) {
	if err := m.store.DeleteToken(ctx); err != nil {
		slog.Warn("failed to delete stored token", "error", err)
	}
	if err := m.store.DeleteUser(ctx); err != nil {
		slog.Warn("failed to delete stored user", "error", err)
	}
	m.reset()
}

// SetUser pushes a refreshed server copy of the profile into the session.
// A nil user deauthenticates, mirroring Logout's storage behavior.
func (m *Manager) SetUser(ctx context.Context, user *models.User) error {
	if user == nil {
		m.Logout(ctx)
		return nil
	}

	if err := m.store.SaveUser(ctx, []models.User{*user}); err != nil {
		return fmt.Errorf("failed to persist user: %w", err)
	}
	m.user = user
	m.authenticated = true
	return nil
}

// IsAuthenticated reports whether a user is logged in.
func (m *Manager) IsAuthenticated() bool {
	return m.authenticated
}

// Loading is true only while the initial restore is in flight, so callers
// can tell "not yet known" apart from "known unauthenticated".
func (m *Manager) Loading() bool {
	return m.loading
}

// Token returns the bearer token, or "" when unauthenticated.
func (m *Manager) Token() string {
	return m.token
}

// User returns the active profile, or nil when unauthenticated.
func (m *Manager) User() *models.User {
	return m.user
}

// UserID returns the active user's identifier, or "" when unauthenticated.
func (m *Manager) UserID() string {
	if m.user == nil {
		return ""
	}
	return m.user.ID
}

func (m *Manager) reset() {
	m.token = ""
	m.user = nil
	m.authenticated = false
}

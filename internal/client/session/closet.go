package session

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"strings"

	"github.com/talariafits/talaria/internal/client/api"
	"github.com/talariafits/talaria/internal/models"
	pkgapi "github.com/talariafits/talaria/pkg/api"
)

// AddResult is the outcome of an AddToCloset call. Added is false both for
// local validation failures and for the benign "already in closet" server
// answer; Message carries the user-displayable detail.
type AddResult struct {
	Added   bool
	Message string
}

// CheckIfInCloset reports whether the sneaker is already saved to the
// current user's closet. This is advisory, UI-only state: any failure
// (no session, network error, non-OK response) answers false, never an
// error.
func (m *Manager) CheckIfInCloset(ctx context.Context, sneakerID string) bool {
	if m.UserID() == "" {
		return false
	}

	resp, err := m.backend.GetCloset(ctx, m.token, m.UserID())
	if err != nil {
		slog.Debug("closet check failed", "error", err)
		return false
	}

	for _, entry := range resp.Data {
		if entry.SneakerID == sneakerID {
			return true
		}
	}
	return false
}

// AddToCloset saves a sneaker to the user's closet. The sneaker payload is
// validated locally before any request is issued. Server responses map as:
// 2xx added, 400 not added without error (duplicate), any other non-2xx
// not added plus an error carrying the status code. Transport failures
// degrade to a message, never an unhandled error.
func (m *Manager) AddToCloset(ctx context.Context, sneaker *models.Sneaker) (*AddResult, error) {
	if !m.authenticated || m.token == "" {
		return &AddResult{Message: "not authenticated"}, nil
	}
	if m.UserID() == "" {
		return &AddResult{Message: "user id not found"}, nil
	}

	// Re-read the persisted profile: the shoe size may have been edited
	// since the session was hydrated.
	users, err := m.store.GetUser(ctx)
	if err != nil || len(users) == 0 {
		slog.Warn("user record unavailable for closet add", "error", err)
		return &AddResult{Message: "user data not found"}, nil
	}

	sizeRaw := strings.TrimSpace(string(users[0].SneakerSize))
	if sizeRaw == "" {
		return &AddResult{Message: "user sneaker size not set"}, nil
	}
	// Unparseable (but present) sizes fall back to 0. Intentional
	// leniency carried over from the mobile client.
	size, ok := users[0].SneakerSize.Float()
	if !ok {
		size = 0
	}

	if !validSneaker(sneaker) {
		return &AddResult{Message: "invalid sneaker data"}, nil
	}

	req := pkgapi.AddClosetRequest{
		SneakerID: sneaker.ID,
		Name:      sneaker.Name,
		Colorway:  sneaker.Colorway,
		ImageURL:  sneaker.Image.Small,
		Price:     *sneaker.RetailPrice,
		Size:      size,
	}

	err = m.backend.AddToCloset(ctx, m.token, m.UserID(), req)
	if err == nil {
		return &AddResult{Added: true}, nil
	}

	var statusErr *api.StatusError
	if errors.As(err, &statusErr) {
		if statusErr.Code == http.StatusBadRequest {
			msg := statusErr.Message
			if msg == "" {
				msg = "sneaker already in closet"
			}
			return &AddResult{Message: msg}, nil
		}
		return &AddResult{Message: statusErr.Message}, err
	}

	// Transport-level failure: degrade to a message
	slog.Warn("closet add failed", "error", err)
	return &AddResult{Message: err.Error()}, nil
}

// validSneaker checks the payload shape the closet endpoint requires.
func validSneaker(s *models.Sneaker) bool {
	if s == nil {
		return false
	}
	return s.ID != "" &&
		s.Name != "" &&
		s.Colorway != "" &&
		s.Image.Small != "" &&
		s.RetailPrice != nil
}

package cli

import (
	"context"
	"fmt"

	"github.com/talariafits/talaria/internal/models"
	"github.com/talariafits/talaria/internal/validation"
	"github.com/talariafits/talaria/pkg/api"
)

func (c *Cli) runProfile(ctx context.Context) error {
	if err := c.requireAuth(); err != nil {
		return err
	}

	user := c.session.User()

	c.io.Println("=== Profile ===")
	c.io.Println()
	c.io.Printf("Name:       %s\n", user.Name)
	c.io.Printf("Email:      %s\n", user.Email)
	c.io.Printf("Phone:      %s\n", orNA(user.PhoneNumber))
	c.io.Printf("Shoe size:  %s\n", orNA(string(user.SneakerSize)))
	c.io.Printf("Birthday:   %s\n", orNA(user.Birthday))

	return nil
}

// runProfileEdit prompts for new values (empty keeps the current one),
// PATCHes the backend, then re-fetches the profile so the session holds
// the server's copy rather than an optimistic local one.
func (c *Cli) runProfileEdit(ctx context.Context) error {
	if err := c.requireAuth(); err != nil {
		return err
	}

	user := c.session.User()

	c.io.Println("=== Edit Profile ===")
	c.io.Println("Press Enter to keep the current value.")
	c.io.Println()

	name, err := c.io.ReadInput(fmt.Sprintf("Name [%s]: ", user.Name))
	if err != nil {
		return fmt.Errorf("failed to read name: %w", err)
	}
	phone, err := c.io.ReadInput(fmt.Sprintf("Phone [%s]: ", orNA(user.PhoneNumber)))
	if err != nil {
		return fmt.Errorf("failed to read phone: %w", err)
	}
	size, err := c.io.ReadInput(fmt.Sprintf("Shoe size [%s]: ", orNA(string(user.SneakerSize))))
	if err != nil {
		return fmt.Errorf("failed to read shoe size: %w", err)
	}
	birthday, err := c.io.ReadInput(fmt.Sprintf("Birthday YYYY-MM-DD [%s]: ", orNA(user.Birthday)))
	if err != nil {
		return fmt.Errorf("failed to read birthday: %w", err)
	}

	req := api.EditUserRequest{
		ID:          user.ID,
		Name:        firstNonEmpty(name, user.Name),
		Email:       user.Email,
		PhoneNumber: firstNonEmpty(phone, user.PhoneNumber),
		SneakerSize: firstNonEmpty(size, string(user.SneakerSize)),
		Birthday:    firstNonEmpty(birthday, user.Birthday),
		Role:        user.Role,
	}
	if err := validation.Struct(req); err != nil {
		return err
	}

	if err := c.backend.EditUser(ctx, c.session.Token(), user.ID, req); err != nil {
		return err
	}

	// Refresh from the server so edits made elsewhere are not clobbered
	payload, err := c.backend.UserInfo(ctx, c.session.Token())
	if err != nil {
		return fmt.Errorf("profile saved but refresh failed: %w", err)
	}
	refreshed, err := models.UserFromPayload(payload)
	if err != nil {
		return fmt.Errorf("profile saved but refresh failed: %w", err)
	}
	if err := c.session.SetUser(ctx, refreshed); err != nil {
		return fmt.Errorf("profile saved but session update failed: %w", err)
	}

	c.io.Println()
	c.io.Println("✓ Profile updated.")
	return nil
}

func orNA(s string) string {
	if s == "" {
		return "N/A"
	}
	return s
}

func firstNonEmpty(values ...string) string {
	for _, v := range values {
		if v != "" {
			return v
		}
	}
	return ""
}

package cli

import (
	"context"
	"fmt"

	"github.com/talariafits/talaria/internal/validation"
	"github.com/talariafits/talaria/pkg/api"
)

func (c *Cli) runLogin(ctx context.Context) error {
	c.io.Println("=== Login ===")
	c.io.Println()

	email, err := c.io.ReadInput("Email: ")
	if err != nil {
		return fmt.Errorf("failed to read email: %w", err)
	}

	password, err := c.io.ReadPassword("Password: ")
	if err != nil {
		return fmt.Errorf("failed to read password: %w", err)
	}

	req := api.LoginRequest{Email: email, Password: password}
	if err := validation.Struct(req); err != nil {
		return err
	}

	c.io.Println()
	c.io.Println("Authenticating...")

	resp, err := c.backend.Login(ctx, req)
	if err != nil {
		return err
	}

	// The profile comes from a second call; the payload shape varies, so
	// the raw body goes to the session for normalization.
	userPayload, err := c.backend.UserInfo(ctx, resp.AccessToken)
	if err != nil {
		return fmt.Errorf("failed to fetch profile: %w", err)
	}

	if err := c.session.Login(ctx, resp.AccessToken, userPayload); err != nil {
		return fmt.Errorf("failed to save session: %w", err)
	}

	c.io.Println()
	c.io.Println("✓ Login successful!")
	if user := c.session.User(); user != nil && user.Name != "" {
		c.io.Printf("Welcome back, %s\n", user.Name)
	}
	c.io.Println()
	c.io.Println("Your session has been saved securely.")

	return nil
}

package cli

import (
	"context"
	"fmt"

	"github.com/talariafits/talaria/internal/validation"
	"github.com/talariafits/talaria/pkg/api"
)

func (c *Cli) runVerify(ctx context.Context) error {
	c.io.Println("=== Verify Account ===")
	c.io.Println()

	email, err := c.io.ReadInput("Email: ")
	if err != nil {
		return fmt.Errorf("failed to read email: %w", err)
	}
	code, err := c.io.ReadInput("Verification code: ")
	if err != nil {
		return fmt.Errorf("failed to read code: %w", err)
	}

	req := api.VerifyAccountRequest{Email: email, Code: code}
	if err := validation.Struct(req); err != nil {
		return err
	}

	if err := c.backend.VerifyAccount(ctx, req); err != nil {
		return err
	}

	c.io.Println()
	c.io.Println("✓ Account verified! You can log in now.")
	return nil
}

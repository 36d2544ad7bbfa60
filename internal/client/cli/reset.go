package cli

import (
	"context"
	"fmt"

	"github.com/talariafits/talaria/internal/validation"
	"github.com/talariafits/talaria/pkg/api"
)

// runForgotPassword walks the three-step reset flow: request a code,
// verify it, set the new password.
func (c *Cli) runForgotPassword(ctx context.Context) error {
	c.io.Println("=== Password Reset ===")
	c.io.Println()

	email, err := c.io.ReadInput("Email: ")
	if err != nil {
		return fmt.Errorf("failed to read email: %w", err)
	}

	forgotReq := api.ForgotPasswordRequest{Email: email}
	if err := validation.Struct(forgotReq); err != nil {
		return err
	}
	if err := c.backend.ForgotPassword(ctx, forgotReq); err != nil {
		return err
	}
	c.io.Println("A reset code has been sent to your email.")
	c.io.Println()

	code, err := c.io.ReadInput("Reset code: ")
	if err != nil {
		return fmt.Errorf("failed to read code: %w", err)
	}
	verifyReq := api.VerifyCodeRequest{Email: email, Code: code}
	if err := validation.Struct(verifyReq); err != nil {
		return err
	}
	if err := c.backend.VerifyCode(ctx, verifyReq); err != nil {
		return err
	}

	password, err := c.io.ReadPassword("New password: ")
	if err != nil {
		return fmt.Errorf("failed to read password: %w", err)
	}
	confirm, err := c.io.ReadPassword("Confirm new password: ")
	if err != nil {
		return fmt.Errorf("failed to read password confirmation: %w", err)
	}
	if err := validation.PasswordsMatch(password, confirm); err != nil {
		return err
	}

	changeReq := api.ChangePasswordRequest{Email: email, Code: code, NewPassword: password}
	if err := validation.Struct(changeReq); err != nil {
		return err
	}
	if err := c.backend.ChangePassword(ctx, changeReq); err != nil {
		return err
	}

	c.io.Println()
	c.io.Println("✓ Password changed! You can log in with the new password.")
	return nil
}

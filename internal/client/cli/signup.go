package cli

import (
	"context"
	"fmt"
	"strconv"

	"github.com/talariafits/talaria/internal/validation"
	"github.com/talariafits/talaria/pkg/api"
)

func (c *Cli) runSignup(ctx context.Context) error {
	c.io.Println("=== Sign Up ===")
	c.io.Println()

	name, err := c.io.ReadInput("Name: ")
	if err != nil {
		return fmt.Errorf("failed to read name: %w", err)
	}
	email, err := c.io.ReadInput("Email: ")
	if err != nil {
		return fmt.Errorf("failed to read email: %w", err)
	}
	phone, err := c.io.ReadInput("Phone number (optional): ")
	if err != nil {
		return fmt.Errorf("failed to read phone number: %w", err)
	}
	sizeInput, err := c.io.ReadInput("Shoe size (US): ")
	if err != nil {
		return fmt.Errorf("failed to read shoe size: %w", err)
	}
	size, err := strconv.ParseFloat(sizeInput, 64)
	if err != nil {
		return fmt.Errorf("shoe size must be a number")
	}

	password, err := c.io.ReadPassword("Password: ")
	if err != nil {
		return fmt.Errorf("failed to read password: %w", err)
	}
	confirm, err := c.io.ReadPassword("Confirm password: ")
	if err != nil {
		return fmt.Errorf("failed to read password confirmation: %w", err)
	}
	if err := validation.PasswordsMatch(password, confirm); err != nil {
		return err
	}

	req := api.SignupRequest{
		Name:        name,
		Email:       email,
		Password:    password,
		PhoneNumber: phone,
		SneakerSize: size,
		Role:        "user",
	}
	if err := validation.Struct(req); err != nil {
		return err
	}

	c.io.Println()
	c.io.Println("Creating account...")

	if err := c.backend.Signup(ctx, req); err != nil {
		return err
	}

	c.io.Println()
	c.io.Println("✓ Account created!")
	c.io.Println("Check your email for a verification code, then run 'talaria verify'.")

	return nil
}

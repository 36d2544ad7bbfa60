package cli

import (
	"context"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

func (c *Cli) runStatus(ctx context.Context) error {
	c.io.Println("=== Session Status ===")
	c.io.Println()

	if c.session.Loading() {
		c.io.Println("Status: Restoring session...")
		return nil
	}

	if !c.session.IsAuthenticated() {
		c.io.Println("Status: Not authenticated")
		c.io.Println()
		c.io.Println("Run 'talaria login' to authenticate.")
		return nil
	}

	c.io.Println("Status: Authenticated")
	if user := c.session.User(); user != nil {
		c.io.Printf("User:   %s <%s>\n", user.Name, user.Email)
		c.io.Printf("ID:     %s\n", user.ID)
	}

	// The token is opaque to us, but when it happens to be a JWT its
	// claims are worth showing. Decoded without verification; the
	// backend is the only party that validates it.
	token, _, err := jwt.NewParser().ParseUnverified(c.session.Token(), jwt.MapClaims{})
	if err != nil {
		return nil
	}
	exp, err := token.Claims.GetExpirationTime()
	if err != nil || exp == nil {
		return nil
	}

	c.io.Printf("Token expires: %s\n", exp.Format(time.RFC3339))
	if remaining := time.Until(exp.Time); remaining > 0 {
		c.io.Printf("Time remaining: %s\n", remaining.Round(time.Second))
	} else {
		c.io.Println("⚠️  Token has expired. Please login again.")
	}

	return nil
}

package cli

import "context"

func (c *Cli) runLogout(ctx context.Context) error {
	c.session.Logout(ctx)

	c.io.Println("✓ Logged out.")
	return nil
}

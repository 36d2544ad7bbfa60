package cli

import (
	"context"
	"errors"
	"fmt"

	"github.com/talariafits/talaria/internal/client/catalog"
)

func (c *Cli) runCloset(ctx context.Context) error {
	if err := c.requireAuth(); err != nil {
		return err
	}

	resp, err := c.backend.GetCloset(ctx, c.session.Token(), c.session.UserID())
	if err != nil {
		return err
	}

	if len(resp.Data) == 0 {
		c.io.Println("Your closet is empty.")
		c.io.Println("Run 'talaria closet add <id>' to save a sneaker.")
		return nil
	}

	c.io.Printf("=== Closet (%d) ===\n", len(resp.Data))
	c.io.Println()
	for _, entry := range resp.Data {
		c.io.Printf("%-38s $%-7.0f size %-5.1f %s (%s)\n",
			entry.SneakerID, entry.Price, entry.Size, entry.Name, entry.Colorway)
	}
	return nil
}

// runClosetAdd fetches the sneaker from the catalog and saves it to the
// closet. "Already saved" is reported as a plain message, not a failure.
func (c *Cli) runClosetAdd(ctx context.Context, args []string) error {
	if err := c.requireAuth(); err != nil {
		return err
	}
	if len(args) != 1 {
		return fmt.Errorf("usage: talaria closet add <id>")
	}
	id := args[0]

	sneaker, err := c.catalog.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, catalog.ErrSneakerNotFound) {
			return fmt.Errorf("sneaker %s not found", id)
		}
		return err
	}

	result, err := c.session.AddToCloset(ctx, sneaker)
	if err != nil {
		return err
	}

	if result.Added {
		c.io.Printf("✓ %s added to your closet.\n", sneaker.Name)
	} else {
		c.io.Println(result.Message)
	}
	return nil
}

package cli

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/talariafits/talaria/internal/client/catalog"
)

// runSneaker shows the detail view for one sneaker and records the view in
// local history. When a session exists it also reports closet membership.
func (c *Cli) runSneaker(ctx context.Context, args []string) error {
	if len(args) != 1 {
		return fmt.Errorf("usage: talaria sneaker <id>")
	}
	id := args[0]

	sneaker, err := c.catalog.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, catalog.ErrSneakerNotFound) {
			return fmt.Errorf("sneaker %s not found", id)
		}
		return err
	}

	if err := c.history.RecordView(ctx, sneaker.ID, sneaker.Name); err != nil {
		slog.Warn("failed to record view", "error", err)
	}

	c.io.Printf("=== %s ===\n", sneaker.Name)
	c.io.Println()
	c.io.Printf("ID:          %s\n", sneaker.ID)
	c.io.Printf("Brand:       %s\n", sneaker.Brand)
	c.io.Printf("Colorway:    %s\n", orNA(sneaker.Colorway))
	c.io.Printf("Silhouette:  %s\n", orNA(sneaker.Silhouette))
	c.io.Printf("SKU:         %s\n", orNA(sneaker.SKU))
	c.io.Printf("Released:    %s\n", orNA(sneaker.ReleaseDate))
	if sneaker.RetailPrice != nil {
		c.io.Printf("Retail:      $%.0f\n", *sneaker.RetailPrice)
	} else {
		c.io.Println("Retail:      N/A")
	}
	if sneaker.Image.Original != "" {
		c.io.Printf("Image:       %s\n", sneaker.Image.Original)
	}
	if sneaker.Description != "" {
		c.io.Println()
		c.io.Println(sneaker.Description)
	}

	if c.session.IsAuthenticated() {
		c.io.Println()
		if c.session.CheckIfInCloset(ctx, sneaker.ID) {
			c.io.Println("✓ Already in your closet.")
		} else {
			c.io.Printf("Run 'talaria closet add %s' to save it.\n", sneaker.ID)
		}
	}

	return nil
}

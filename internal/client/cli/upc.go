package cli

import (
	"context"
	"fmt"
)

func (c *Cli) runUPC(ctx context.Context, args []string) error {
	if len(args) != 1 {
		return fmt.Errorf("usage: talaria upc <code>")
	}
	upc := args[0]

	sneakers, err := c.catalog.GetByUPC(ctx, upc)
	if err != nil {
		return err
	}
	if len(sneakers) == 0 {
		c.io.Printf("No sneakers found for UPC %s.\n", upc)
		return nil
	}

	c.io.Printf("=== UPC %s ===\n", upc)
	c.io.Println()
	for _, s := range sneakers {
		c.printSneaker(s)
	}
	return nil
}

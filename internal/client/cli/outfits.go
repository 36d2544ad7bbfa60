package cli

import "context"

func (c *Cli) runOutfits(ctx context.Context) error {
	if err := c.requireAuth(); err != nil {
		return err
	}

	outfits, err := c.backend.GetOutfits(ctx, c.session.Token())
	if err != nil {
		return err
	}

	if len(outfits) == 0 {
		c.io.Println("No outfits yet.")
		return nil
	}

	c.io.Printf("=== Outfits (%d) ===\n", len(outfits))
	c.io.Println()
	for _, o := range outfits {
		c.io.Printf("%-38s %s\n", o.ID, o.Name)
		if o.ImageURL != "" {
			c.io.Printf("    %s\n", o.ImageURL)
		}
	}
	return nil
}

package cli

import (
	"fmt"

	"github.com/talariafits/talaria/internal/models"
)

// allowedBrands is the home-feed allow list. Filtering happens here in the
// presentation layer on the merged results; the query cache stores the
// server's raw pages.
var allowedBrands = []string{"Nike", "adidas", "Jordan", "Reebok", "New Balance"}

// filterFeed keeps sneakers from allowed brands that have a usable image.
func filterFeed(in []models.Sneaker) []models.Sneaker {
	out := make([]models.Sneaker, 0, len(in))
	for _, s := range in {
		if s.Image.Small == "" {
			continue
		}
		for _, brand := range allowedBrands {
			if s.Brand == brand {
				out = append(out, s)
				break
			}
		}
	}
	return out
}

// printSneaker writes the one-line listing format.
func (c *Cli) printSneaker(s models.Sneaker) {
	price := "n/a"
	if s.RetailPrice != nil {
		price = fmt.Sprintf("$%.0f", *s.RetailPrice)
	}
	c.io.Printf("%-38s %-12s %-8s %s\n", s.ID, s.Brand, price, s.Name)
}

// requireAuth fails fast for commands that need a session.
func (c *Cli) requireAuth() error {
	if !c.session.IsAuthenticated() {
		return fmt.Errorf("not authenticated. Please run 'talaria login' first")
	}
	return nil
}

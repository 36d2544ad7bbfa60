package cli

import "context"

const historyLimit = 10

func (c *Cli) runHistory(ctx context.Context) error {
	searches, err := c.history.RecentSearches(ctx, historyLimit)
	if err != nil {
		return err
	}
	views, err := c.history.RecentlyViewed(ctx, historyLimit)
	if err != nil {
		return err
	}

	if len(searches) == 0 && len(views) == 0 {
		c.io.Println("No history yet.")
		return nil
	}

	if len(searches) > 0 {
		c.io.Println("=== Recent searches ===")
		for _, s := range searches {
			c.io.Printf("%s  %s\n", s.SearchedAt.Local().Format("2006-01-02 15:04"), s.Query)
		}
		c.io.Println()
	}

	if len(views) > 0 {
		c.io.Println("=== Recently viewed ===")
		for _, v := range views {
			c.io.Printf("%s  %s (%s)\n", v.ViewedAt.Local().Format("2006-01-02 15:04"), v.Name, v.SneakerID)
		}
	}

	return nil
}

func (c *Cli) runHistoryClear(ctx context.Context) error {
	if err := c.history.Clear(ctx); err != nil {
		return err
	}
	c.io.Println("✓ History cleared.")
	return nil
}

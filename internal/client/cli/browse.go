package cli

import (
	"context"
	"fmt"
	"strconv"

	"github.com/talariafits/talaria/internal/models"
)

const defaultPageSize = 20

// runBrowse shows the home feed: the accumulated sneaker listing, filtered
// to the allowed brands. An optional page argument extends the feed.
func (c *Cli) runBrowse(ctx context.Context, args []string) error {
	page := 0
	if len(args) > 0 {
		p, err := strconv.Atoi(args[0])
		if err != nil || p < 0 {
			return fmt.Errorf("page must be a non-negative number")
		}
		page = p
	}

	filters := models.SneakerFilters{
		Page:  page,
		Limit: defaultPageSize,
	}

	result, err := c.catalog.Browse(ctx, filters)
	if err != nil {
		return err
	}

	feed := filterFeed(result.Results)
	if len(feed) == 0 {
		c.io.Println("Nothing to show yet.")
		return nil
	}

	c.io.Printf("=== Feed (%d loaded, %d total) ===\n", len(result.Results), result.Count)
	c.io.Println()
	for _, s := range feed {
		c.printSneaker(s)
	}
	c.io.Println()
	c.io.Printf("Run 'talaria browse %d' to load more.\n", page+1)

	return nil
}

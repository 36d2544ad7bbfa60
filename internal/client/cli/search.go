package cli

import (
	"context"
	"fmt"
	"log/slog"
	"strconv"
	"strings"
)

// runSearch queries the catalog. Repeating the command with a higher page
// number extends the result set for the same query; a new query starts its
// own result set.
func (c *Cli) runSearch(ctx context.Context, args []string) error {
	if len(args) == 0 {
		return fmt.Errorf("usage: talaria search <query> [page]")
	}

	page := 0
	if n := len(args); n > 1 {
		if p, err := strconv.Atoi(args[n-1]); err == nil && p >= 0 {
			page = p
			args = args[:n-1]
		}
	}
	query := strings.Join(args, " ")

	result, err := c.catalog.Search(ctx, query, page, defaultPageSize)
	if err != nil {
		return err
	}

	// Only record fresh searches, not pagination of an existing one
	if page == 0 {
		if err := c.history.RecordSearch(ctx, query); err != nil {
			slog.Warn("failed to record search", "error", err)
		}
	}

	if len(result.Results) == 0 {
		c.io.Printf("No results for %q.\n", query)
		return nil
	}

	c.io.Printf("=== %q (%d loaded, %d total) ===\n", query, len(result.Results), result.Count)
	c.io.Println()
	for _, s := range result.Results {
		c.printSneaker(s)
	}
	c.io.Println()
	c.io.Printf("Run 'talaria search %s %d' to load more.\n", query, page+1)

	return nil
}

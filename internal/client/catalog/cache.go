package catalog

import (
	"context"
	"fmt"
	"net/url"
	"sync"

	"github.com/talariafits/talaria/internal/models"
)

// firstPage is the page number that resets an accumulated result set.
const firstPage = 0

// Lookup extends API with the single-record fetches the detail screens use.
type Lookup interface {
	API
	SneakerByID(ctx context.Context, id string) (*models.Sneaker, error)
	SneakersByUPC(ctx context.Context, upc string) ([]models.Sneaker, error)
}

// QueryCache accumulates paginated catalog results per logical query, so
// that repeated increasing-page requests grow one sequence instead of each
// page overwriting the last.
//
// Keys: the listing endpoint shares a single entry; each distinct search
// string gets its own, so two searches never merge into one another. A
// request whose full argument set equals the previous one for its key is
// served from cache; any change forces a refetch. Page 0 replaces the
// accumulated sequence, later pages append in arrival order.
//
// Merges for one key are serialized by a per-entry mutex held across the
// fetch, which keeps appends in issue order even when callers overlap
// requests for increasing pages.
type QueryCache struct {
	api     Lookup
	mu      sync.Mutex
	entries map[string]*cacheEntry
}

type cacheEntry struct {
	mu       sync.Mutex
	results  []models.Sneaker
	count    int
	lastArgs string
	primed   bool
}

// NewQueryCache creates a query cache over the given catalog client.
func NewQueryCache(api Lookup) *QueryCache {
	return &QueryCache{
		api:     api,
		entries: make(map[string]*cacheEntry),
	}
}

// Browse returns the accumulated listing for the given filters, fetching
// and merging a new page when the argument set changed.
func (q *QueryCache) Browse(ctx context.Context, filters models.SneakerFilters) (*Page, error) {
	return q.resolve(ctx, "sneakers", filters.Fingerprint(), filters.Page, func(ctx context.Context) (*Page, error) {
		return q.api.Sneakers(ctx, filters)
	})
}

// Search returns the accumulated results for a search string. Each distinct
// string has its own cache entry.
func (q *QueryCache) Search(ctx context.Context, query string, page, limit int) (*Page, error) {
	key := "search:" + query
	args := fmt.Sprintf("query=%s&page=%d&limit=%d", url.QueryEscape(query), page, limit)
	return q.resolve(ctx, key, args, page, func(ctx context.Context) (*Page, error) {
		return q.api.Search(ctx, query, page, limit)
	})
}

// GetByID fetches a single sneaker, bypassing the page cache.
// Returns ErrSneakerNotFound when the catalog has no such record.
func (q *QueryCache) GetByID(ctx context.Context, id string) (*models.Sneaker, error) {
	return q.api.SneakerByID(ctx, id)
}

// GetByUPC fetches sneakers by UPC code, bypassing the page cache.
func (q *QueryCache) GetByUPC(ctx context.Context, upc string) ([]models.Sneaker, error) {
	return q.api.SneakersByUPC(ctx, upc)
}

// Cached returns the accumulated results currently held for a search
// string, without touching the network. The second return reports whether
// the entry exists.
func (q *QueryCache) Cached(query string) (*Page, bool) {
	q.mu.Lock()
	e, ok := q.entries["search:"+query]
	q.mu.Unlock()
	if !ok {
		return nil, false
	}
	e.mu.Lock()
	defer e.mu.Unlock()
	if !e.primed {
		return nil, false
	}
	return e.snapshot(), true
}

func (q *QueryCache) resolve(ctx context.Context, key, args string, page int, do func(context.Context) (*Page, error)) (*Page, error) {
	e := q.entry(key)

	// One merge at a time per key: overlapping requests apply in the
	// order they were issued, not in network-completion order.
	e.mu.Lock()
	defer e.mu.Unlock()

	if e.primed && args == e.lastArgs {
		return e.snapshot(), nil
	}

	fresh, err := do(ctx)
	if err != nil {
		return nil, err
	}

	if page == firstPage {
		e.results = append([]models.Sneaker(nil), fresh.Results...)
	} else {
		e.results = append(e.results, fresh.Results...)
	}
	e.count = fresh.Count
	e.lastArgs = args
	e.primed = true

	return e.snapshot(), nil
}

func (q *QueryCache) entry(key string) *cacheEntry {
	q.mu.Lock()
	defer q.mu.Unlock()
	e, ok := q.entries[key]
	if !ok {
		e = &cacheEntry{}
		q.entries[key] = e
	}
	return e
}

// snapshot copies the accumulated sequence so callers cannot mutate the
// cache. Must be called with the entry lock held.
func (e *cacheEntry) snapshot() *Page {
	return &Page{
		Results: append([]models.Sneaker(nil), e.results...),
		Count:   e.count,
	}
}

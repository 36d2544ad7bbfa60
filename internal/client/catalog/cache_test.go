package catalog

import (
	"context"
	"fmt"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/talariafits/talaria/internal/models"
)

// fakeLookup serves canned pages and counts fetches per query.
type fakeLookup struct {
	mu          sync.Mutex
	searchPages map[string]map[int][]models.Sneaker
	listPages   map[int][]models.Sneaker
	count       int
	calls       map[string]int
}

func newFakeLookup() *fakeLookup {
	return &fakeLookup{
		searchPages: make(map[string]map[int][]models.Sneaker),
		listPages:   make(map[int][]models.Sneaker),
		calls:       make(map[string]int),
	}
}

func (f *fakeLookup) Sneakers(ctx context.Context, filters models.SneakerFilters) (*Page, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.calls["sneakers"]++
	return &Page{Results: f.listPages[filters.Page], Count: f.count}, nil
}

func (f *fakeLookup) Search(ctx context.Context, query string, page, limit int) (*Page, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.calls["search:"+query]++
	return &Page{Results: f.searchPages[query][page], Count: f.count}, nil
}

func (f *fakeLookup) SneakerByID(ctx context.Context, id string) (*models.Sneaker, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.calls["byid"]++
	return &models.Sneaker{ID: id}, nil
}

func (f *fakeLookup) SneakersByUPC(ctx context.Context, upc string) ([]models.Sneaker, error) {
	return nil, nil
}

func (f *fakeLookup) callCount(key string) int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.calls[key]
}

func sneakers(ids ...string) []models.Sneaker {
	out := make([]models.Sneaker, len(ids))
	for i, id := range ids {
		out[i] = models.Sneaker{ID: id}
	}
	return out
}

func ids(page *Page) []string {
	out := make([]string, len(page.Results))
	for i, s := range page.Results {
		out[i] = s.ID
	}
	return out
}

func TestQueryCache_Search_AppendsPages(t *testing.T) {
	fake := newFakeLookup()
	fake.count = 4
	fake.searchPages["jordan"] = map[int][]models.Sneaker{
		0: sneakers("A", "B"),
		1: sneakers("C", "D"),
	}
	cache := NewQueryCache(fake)
	ctx := context.Background()

	page, err := cache.Search(ctx, "jordan", 0, 2)
	require.NoError(t, err)
	assert.Equal(t, []string{"A", "B"}, ids(page))

	page, err = cache.Search(ctx, "jordan", 1, 2)
	require.NoError(t, err)
	assert.Equal(t, []string{"A", "B", "C", "D"}, ids(page))
	assert.Equal(t, 4, page.Count)
}

func TestQueryCache_Search_KeyIsolation(t *testing.T) {
	fake := newFakeLookup()
	fake.searchPages["jordan"] = map[int][]models.Sneaker{0: sneakers("A", "B")}
	fake.searchPages["yeezy"] = map[int][]models.Sneaker{0: sneakers("X")}
	cache := NewQueryCache(fake)
	ctx := context.Background()

	jordan, err := cache.Search(ctx, "jordan", 0, 20)
	require.NoError(t, err)
	yeezy, err := cache.Search(ctx, "yeezy", 0, 20)
	require.NoError(t, err)

	// The second query must not absorb or disturb the first
	assert.Equal(t, []string{"X"}, ids(yeezy))
	assert.Equal(t, []string{"A", "B"}, ids(jordan))

	jordanAgain, ok := cache.Cached("jordan")
	require.True(t, ok)
	assert.Equal(t, []string{"A", "B"}, ids(jordanAgain))
}

func TestQueryCache_Search_FirstPageReplaces(t *testing.T) {
	fake := newFakeLookup()
	fake.searchPages["jordan"] = map[int][]models.Sneaker{
		0: sneakers("A", "B"),
		1: sneakers("C"),
	}
	cache := NewQueryCache(fake)
	ctx := context.Background()

	_, err := cache.Search(ctx, "jordan", 0, 20)
	require.NoError(t, err)
	_, err = cache.Search(ctx, "jordan", 1, 20)
	require.NoError(t, err)

	// Pulling page 0 again starts the sequence over instead of appending
	fake.mu.Lock()
	fake.searchPages["jordan"][0] = sneakers("E", "F")
	fake.mu.Unlock()

	page, err := cache.Search(ctx, "jordan", 0, 20)
	require.NoError(t, err)
	assert.Equal(t, []string{"E", "F"}, ids(page))
}

func TestQueryCache_Search_MemoizesSameArgs(t *testing.T) {
	fake := newFakeLookup()
	fake.searchPages["jordan"] = map[int][]models.Sneaker{0: sneakers("A")}
	cache := NewQueryCache(fake)
	ctx := context.Background()

	_, err := cache.Search(ctx, "jordan", 0, 20)
	require.NoError(t, err)
	_, err = cache.Search(ctx, "jordan", 0, 20)
	require.NoError(t, err)

	assert.Equal(t, 1, fake.callCount("search:jordan"),
		"identical arguments must be served from cache")
}

func TestQueryCache_Search_ChangedLimitRefetches(t *testing.T) {
	fake := newFakeLookup()
	fake.searchPages["jordan"] = map[int][]models.Sneaker{0: sneakers("A")}
	cache := NewQueryCache(fake)
	ctx := context.Background()

	_, err := cache.Search(ctx, "jordan", 0, 20)
	require.NoError(t, err)
	_, err = cache.Search(ctx, "jordan", 0, 50)
	require.NoError(t, err)

	assert.Equal(t, 2, fake.callCount("search:jordan"),
		"any argument change must force a refetch")
}

func TestQueryCache_Search_FetchError(t *testing.T) {
	fake := newFakeLookup()
	fake.searchPages["jordan"] = map[int][]models.Sneaker{0: sneakers("A")}
	cache := NewQueryCache(fake)
	ctx := context.Background()

	page, err := cache.Search(ctx, "jordan", 0, 20)
	require.NoError(t, err)
	require.Equal(t, []string{"A"}, ids(page))

	// A later failed fetch must leave the accumulated results intact
	errLookup := &failingLookup{}
	cache.api = errLookup
	_, err = cache.Search(ctx, "jordan", 1, 20)
	require.Error(t, err)

	cached, ok := cache.Cached("jordan")
	require.True(t, ok)
	assert.Equal(t, []string{"A"}, ids(cached))
}

type failingLookup struct{}

func (f *failingLookup) Sneakers(ctx context.Context, filters models.SneakerFilters) (*Page, error) {
	return nil, fmt.Errorf("catalog unavailable")
}

func (f *failingLookup) Search(ctx context.Context, query string, page, limit int) (*Page, error) {
	return nil, fmt.Errorf("catalog unavailable")
}

func (f *failingLookup) SneakerByID(ctx context.Context, id string) (*models.Sneaker, error) {
	return nil, fmt.Errorf("catalog unavailable")
}

func (f *failingLookup) SneakersByUPC(ctx context.Context, upc string) ([]models.Sneaker, error) {
	return nil, fmt.Errorf("catalog unavailable")
}

func TestQueryCache_Browse_AppendsPages(t *testing.T) {
	fake := newFakeLookup()
	fake.count = 3
	fake.listPages[0] = sneakers("A", "B")
	fake.listPages[1] = sneakers("C")
	cache := NewQueryCache(fake)
	ctx := context.Background()

	page, err := cache.Browse(ctx, models.SneakerFilters{Page: 0, Limit: 2})
	require.NoError(t, err)
	assert.Equal(t, []string{"A", "B"}, ids(page))

	page, err = cache.Browse(ctx, models.SneakerFilters{Page: 1, Limit: 2})
	require.NoError(t, err)
	assert.Equal(t, []string{"A", "B", "C"}, ids(page))
}

func TestQueryCache_SnapshotIsACopy(t *testing.T) {
	fake := newFakeLookup()
	fake.searchPages["jordan"] = map[int][]models.Sneaker{0: sneakers("A", "B")}
	cache := NewQueryCache(fake)
	ctx := context.Background()

	page, err := cache.Search(ctx, "jordan", 0, 20)
	require.NoError(t, err)

	page.Results[0].ID = "mutated"

	cached, ok := cache.Cached("jordan")
	require.True(t, ok)
	assert.Equal(t, "A", cached.Results[0].ID, "callers must not be able to mutate the cache")
}

func TestQueryCache_Cached_Misses(t *testing.T) {
	cache := NewQueryCache(newFakeLookup())

	_, ok := cache.Cached("never-searched")

	assert.False(t, ok)
}

// gatedLookup holds the page-0 fetch open until released, so a test can
// issue page 1 while page 0 is still in flight.
type gatedLookup struct {
	mu      sync.Mutex
	fetched []int
	started chan struct{}
	release chan struct{}
}

func (g *gatedLookup) Search(ctx context.Context, query string, page, limit int) (*Page, error) {
	g.mu.Lock()
	g.fetched = append(g.fetched, page)
	g.mu.Unlock()

	if page == 0 {
		close(g.started)
		<-g.release
		return &Page{Results: sneakers("A", "B"), Count: 4}, nil
	}
	return &Page{Results: sneakers("C", "D"), Count: 4}, nil
}

func (g *gatedLookup) Sneakers(ctx context.Context, filters models.SneakerFilters) (*Page, error) {
	return &Page{}, nil
}

func (g *gatedLookup) SneakerByID(ctx context.Context, id string) (*models.Sneaker, error) {
	return nil, ErrSneakerNotFound
}

func (g *gatedLookup) SneakersByUPC(ctx context.Context, upc string) ([]models.Sneaker, error) {
	return nil, nil
}

func TestQueryCache_Search_OverlappingPagesMergeInIssueOrder(t *testing.T) {
	fake := &gatedLookup{
		started: make(chan struct{}),
		release: make(chan struct{}),
	}
	cache := NewQueryCache(fake)
	ctx := context.Background()

	var wg sync.WaitGroup
	wg.Add(2)
	go func() {
		defer wg.Done()
		_, err := cache.Search(ctx, "jordan", 0, 2)
		assert.NoError(t, err)
	}()

	// Issue page 1 only once page 0's fetch is in flight and holding the
	// entry lock; it must wait for page 0's merge, not race past it.
	<-fake.started
	go func() {
		defer wg.Done()
		_, err := cache.Search(ctx, "jordan", 1, 2)
		assert.NoError(t, err)
	}()

	// Let page 1 reach the entry lock before page 0's fetch completes
	time.Sleep(10 * time.Millisecond)
	close(fake.release)
	wg.Wait()

	page, ok := cache.Cached("jordan")
	require.True(t, ok)
	assert.Equal(t, []string{"A", "B", "C", "D"}, ids(page))

	fake.mu.Lock()
	defer fake.mu.Unlock()
	assert.Equal(t, []int{0, 1}, fake.fetched,
		"page 1 must not fetch until page 0's merge completes")
}

func TestQueryCache_GetByID_Passthrough(t *testing.T) {
	fake := newFakeLookup()
	cache := NewQueryCache(fake)

	s, err := cache.GetByID(context.Background(), "s-1")

	require.NoError(t, err)
	assert.Equal(t, "s-1", s.ID)
	assert.Equal(t, 1, fake.callCount("byid"))
}

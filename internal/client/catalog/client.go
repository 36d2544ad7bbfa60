package catalog

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"github.com/talariafits/talaria/internal/models"
)

// ErrSneakerNotFound indicates a lookup matched no catalog record
var ErrSneakerNotFound = errors.New("sneaker not found")

// Page is the result envelope returned by the catalog listing and search
// endpoints.
type Page struct {
	Results []models.Sneaker `json:"results"`
	Count   int              `json:"count"`
}

// API is the subset of the catalog client the query cache depends on.
type API interface {
	Sneakers(ctx context.Context, filters models.SneakerFilters) (*Page, error)
	Search(ctx context.Context, query string, page, limit int) (*Page, error)
}

// Client talks to the third-party sneaker database. Credentials travel as
// request headers on every call.
type Client struct {
	httpClient *http.Client
	baseURL    string
	apiKey     string
	apiHost    string
}

// Compile-time check that Client implements API
var _ API = (*Client)(nil)

// NewClient creates a catalog client. apiKey and apiHost are the RapidAPI
// credentials from config.
func NewClient(baseURL, apiKey, apiHost string) *Client {
	return &Client{
		baseURL: baseURL,
		apiKey:  apiKey,
		apiHost: apiHost,
		httpClient: &http.Client{
			Timeout: 30 * time.Second,
		},
	}
}

// Sneakers fetches one page of the catalog listing. Empty filters are left
// out of the query string entirely.
func (c *Client) Sneakers(ctx context.Context, filters models.SneakerFilters) (*Page, error) {
	var page Page
	if err := c.doRequest(ctx, "/sneakers", filters.Query(), &page); err != nil {
		return nil, fmt.Errorf("sneakers request failed: %w", err)
	}
	return &page, nil
}

// Search fetches one page of free-text search results.
func (c *Client) Search(ctx context.Context, query string, page, limit int) (*Page, error) {
	params := url.Values{}
	params.Set("query", query)
	params.Set("page", strconv.Itoa(page))
	params.Set("limit", strconv.Itoa(limit))

	var result Page
	if err := c.doRequest(ctx, "/search", params, &result); err != nil {
		return nil, fmt.Errorf("search request failed: %w", err)
	}
	return &result, nil
}

// SneakerByID fetches a single sneaker. The endpoint answers with a results
// envelope; the first element is unwrapped and an empty envelope maps to
// ErrSneakerNotFound.
func (c *Client) SneakerByID(ctx context.Context, id string) (*models.Sneaker, error) {
	var page Page
	if err := c.doRequest(ctx, "/sneakers/"+url.PathEscape(id), nil, &page); err != nil {
		return nil, fmt.Errorf("sneaker lookup failed: %w", err)
	}
	if len(page.Results) == 0 {
		return nil, ErrSneakerNotFound
	}
	sneaker := page.Results[0]
	return &sneaker, nil
}

// SneakersByUPC fetches sneakers by UPC code. UPC is not guaranteed unique,
// so the whole slice is returned.
func (c *Client) SneakersByUPC(ctx context.Context, upc string) ([]models.Sneaker, error) {
	params := url.Values{}
	params.Set("upc", upc)

	var page Page
	if err := c.doRequest(ctx, "/sneakers", params, &page); err != nil {
		return nil, fmt.Errorf("upc lookup failed: %w", err)
	}
	return page.Results, nil
}

func (c *Client) doRequest(ctx context.Context, path string, params url.Values, result interface{}) error {
	u := c.baseURL + path
	if len(params) > 0 {
		u += "?" + params.Encode()
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u, nil)
	if err != nil {
		return fmt.Errorf("failed to create request: %w", err)
	}

	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("X-RapidAPI-Key", c.apiKey)
	req.Header.Set("X-RapidAPI-Host", c.apiHost)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("request failed: %w", err)
	}
	defer func() {
		_ = resp.Body.Close()
	}()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("failed to read response body: %w", err)
	}

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return fmt.Errorf("catalog error (%d): %s", resp.StatusCode, string(respBody))
	}

	if result != nil {
		if err := json.Unmarshal(respBody, result); err != nil {
			return fmt.Errorf("failed to decode response: %w", err)
		}
	}

	return nil
}

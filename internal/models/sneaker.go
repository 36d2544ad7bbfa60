package models

import (
	"net/url"
	"strconv"
)

// Sneaker is a catalog record from the remote sneaker database.
// RetailPrice is a pointer so a missing price can be told apart from a
// price of zero; the closet flow refuses sneakers without one.
type Sneaker struct {
	ID          string       `json:"id"`
	Name        string       `json:"name"`
	Brand       string       `json:"brand"`
	Image       SneakerImage `json:"image"`
	ReleaseDate string       `json:"releaseDate"`
	RetailPrice *float64     `json:"retailPrice,omitempty"`
	Description string       `json:"description"`
	Colorway    string       `json:"colorway"`
	Gender      string       `json:"gender,omitempty"`
	Silhouette  string       `json:"silhouette,omitempty"`
	SKU         string       `json:"sku,omitempty"`
}

// SneakerImage holds the catalog image variants.
type SneakerImage struct {
	Small    string `json:"small"`
	Original string `json:"original"`
}

// SneakerFilters are the query parameters accepted by the catalog listing
// endpoint. Zero values are omitted from the request entirely; the catalog
// API treats an empty parameter as a filter for the empty string.
type SneakerFilters struct {
	Name        string
	Brand       string
	Gender      string
	Silhouette  string
	Colorway    string
	ReleaseYear string
	ReleaseDate string
	SKU         string
	Sort        string
	Page        int
	Limit       int
}

// Query encodes the non-empty filters as URL query parameters. Page and
// Limit are always sent.
func (f SneakerFilters) Query() url.Values {
	params := url.Values{}
	set := func(key, value string) {
		if value != "" {
			params.Set(key, value)
		}
	}
	set("name", f.Name)
	set("brand", f.Brand)
	set("gender", f.Gender)
	set("silhouette", f.Silhouette)
	set("colorway", f.Colorway)
	set("releaseYear", f.ReleaseYear)
	set("releaseDate", f.ReleaseDate)
	set("sku", f.SKU)
	set("sort", f.Sort)
	params.Set("page", strconv.Itoa(f.Page))
	params.Set("limit", strconv.Itoa(f.Limit))
	return params
}

// Fingerprint is a stable encoding of the full argument set, used to decide
// whether a repeated request for the same cache key must be re-issued.
func (f SneakerFilters) Fingerprint() string {
	return f.Query().Encode()
}

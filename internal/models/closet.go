package models

// ClosetEntry is a sneaker saved to the user's closet on the backend.
// The wire names use the backend's historical "snicker" spelling.
type ClosetEntry struct {
	SneakerID string  `json:"snickerId"`
	Name      string  `json:"snickerName"`
	Colorway  string  `json:"snickerColor"`
	ImageURL  string  `json:"snickerImg"`
	Price     float64 `json:"snickerPrice"`
	Size      float64 `json:"snickerSize"`
	Brand     string  `json:"brand,omitempty"`
}

// Outfit is a styled look built around a closet sneaker.
type Outfit struct {
	ID        string `json:"_id"`
	Name      string `json:"outfitName"`
	SneakerID string `json:"sneakerId"`
	ImageURL  string `json:"imageUrl"`
}

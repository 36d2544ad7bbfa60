package api

import "github.com/talariafits/talaria/internal/models"

// AddClosetRequest is the body of POST /closet. Field names follow the
// backend's wire format.
type AddClosetRequest struct {
	SneakerID string  `json:"snickerId"`
	Name      string  `json:"snickerName"`
	Colorway  string  `json:"snickerColor"`
	ImageURL  string  `json:"snickerImg"`
	Price     float64 `json:"snickerPrice"`
	Size      float64 `json:"snickerSize"`
}

// ClosetResponse is the body of GET /closet.
type ClosetResponse struct {
	Data []models.ClosetEntry `json:"data"`
}

package models

// WorkItem is a portfolio entry shown in the public gallery.
type WorkItem struct {
	ID          string `json:"id"`
	Title       string `json:"title"`
	Description string `json:"description"`
	Category    string `json:"category"`
	ImageURL    string `json:"image_url"`
	Active      bool   `json:"active"`
	Order       int    `json:"order"`
}

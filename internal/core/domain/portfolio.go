package domain

import "time"

// CategoryAll is the filter value meaning "every category".
const CategoryAll = "all"

// PortfolioItem is one public, category-tagged photo or video.
type PortfolioItem struct {
	ID         string    `json:"id"`
	Title      string    `json:"title"`
	Category   string    `json:"category"`
	Type       MediaType `json:"type"`
	URL        string    `json:"url"`
	Thumbnail  string    `json:"thumbnail,omitempty"`
	UploadedAt time.Time `json:"uploadedAt,omitzero"`
}

// Matches reports whether the item passes the category filter.
func (p PortfolioItem) Matches(category string) bool {
	return category == "" || category == CategoryAll || p.Category == category
}

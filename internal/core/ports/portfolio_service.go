package ports

import (
	"context"

	"github.com/lumenstudio/studio/internal/core/domain"
)

// NewPortfolioItemInput carries the admin "add to portfolio" form.
type NewPortfolioItemInput struct {
	Title     string           `validate:"required"`
	Category  string           `validate:"required"`
	Type      domain.MediaType `validate:"required,oneof=image video"`
	URL       string           `validate:"required"`
	Thumbnail string
}

// PortfolioService is the public portfolio repository.
type PortfolioService interface {
	// List returns items in insertion order. An empty category or "all"
	// disables filtering.
	List(ctx context.Context, category string) ([]domain.PortfolioItem, error)
	Categories(ctx context.Context) ([]string, error)
	Add(ctx context.Context, input NewPortfolioItemInput) (*domain.PortfolioItem, error)
	Remove(ctx context.Context, id string) error
	RequestDelete(ctx context.Context, id string) (string, error)
	ConfirmDelete(ctx context.Context, token string) error
}

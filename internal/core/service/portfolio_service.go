package service

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/lumenstudio/studio/internal/core/domain"
	"github.com/lumenstudio/studio/internal/core/ports"
	"github.com/lumenstudio/studio/internal/core/store"
	"github.com/lumenstudio/studio/internal/pkg/validate"
)

// PortfolioService manages the public portfolio under companyPortfolio.
type PortfolioService struct {
	store   *store.Store
	queue   ports.MutationQueue
	confirm *Confirmations
	logger  zerolog.Logger
	now     func() time.Time
}

func NewPortfolioService(st *store.Store, queue ports.MutationQueue, confirm *Confirmations, logger zerolog.Logger) *PortfolioService {
	s := &PortfolioService{
		store:   st,
		queue:   queue,
		confirm: confirm,
		logger:  logger,
		now:     func() time.Time { return time.Now().UTC() },
	}
	confirm.Register(ActionDeletePortfolioItem, s.Remove)
	return s
}

func (s *PortfolioService) load(ctx context.Context) ([]domain.PortfolioItem, error) {
	items := []domain.PortfolioItem{}
	if _, err := s.store.Load(ctx, store.KeyPortfolio, &items); err != nil {
		return nil, err
	}
	return items, nil
}

func (s *PortfolioService) List(ctx context.Context, category string) ([]domain.PortfolioItem, error) {
	items, err := s.load(ctx)
	if err != nil {
		return nil, err
	}
	out := make([]domain.PortfolioItem, 0, len(items))
	for _, it := range items {
		if it.Matches(category) {
			out = append(out, it)
		}
	}
	return out, nil
}

// Categories returns the distinct categories in the order they first appear.
func (s *PortfolioService) Categories(ctx context.Context) ([]string, error) {
	items, err := s.load(ctx)
	if err != nil {
		return nil, err
	}
	seen := make(map[string]struct{}, len(items))
	out := []string{}
	for _, it := range items {
		if _, ok := seen[it.Category]; ok {
			continue
		}
		seen[it.Category] = struct{}{}
		out = append(out, it.Category)
	}
	return out, nil
}

func (s *PortfolioService) Add(ctx context.Context, input ports.NewPortfolioItemInput) (*domain.PortfolioItem, error) {
	if err := validate.Struct(input); err != nil {
		return nil, err
	}

	item := domain.PortfolioItem{
		ID:         uuid.NewString(),
		Title:      input.Title,
		Category:   input.Category,
		Type:       input.Type,
		URL:        input.URL,
		Thumbnail:  input.Thumbnail,
		UploadedAt: s.now(),
	}
	if item.Thumbnail == "" {
		item.Thumbnail = item.URL
	}

	err := s.queue.Do(ctx, store.KeyPortfolio, func(ctx context.Context) error {
		items, err := s.load(ctx)
		if err != nil {
			return err
		}
		return s.store.Save(ctx, store.KeyPortfolio, append(items, item))
	})
	if err != nil {
		return nil, fmt.Errorf("add portfolio item: %w", err)
	}

	s.logger.Info().Str("item_id", item.ID).Str("category", item.Category).Msg("portfolio item added")
	return &item, nil
}

// Remove deletes the item with id. Unknown ids are a no-op.
func (s *PortfolioService) Remove(ctx context.Context, id string) error {
	err := s.queue.Do(ctx, store.KeyPortfolio, func(ctx context.Context) error {
		items, err := s.load(ctx)
		if err != nil {
			return err
		}
		out := items[:0]
		for _, it := range items {
			if it.ID != id {
				out = append(out, it)
			}
		}
		return s.store.Save(ctx, store.KeyPortfolio, out)
	})
	if err != nil {
		return fmt.Errorf("remove portfolio item: %w", err)
	}
	return nil
}

func (s *PortfolioService) RequestDelete(ctx context.Context, id string) (string, error) {
	items, err := s.load(ctx)
	if err != nil {
		return "", err
	}
	for _, it := range items {
		if it.ID == id {
			return s.confirm.Issue(ActionDeletePortfolioItem, id)
		}
	}
	return "", domain.ErrPortfolioItemNotFound
}

func (s *PortfolioService) ConfirmDelete(ctx context.Context, token string) error {
	return s.confirm.ConfirmAction(ctx, token, ActionDeletePortfolioItem)
}

package service

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/lumenstudio/studio/internal/core/domain"
	"github.com/lumenstudio/studio/internal/core/ports"
	"github.com/lumenstudio/studio/internal/core/store"
	"github.com/lumenstudio/studio/internal/pkg/validate"
)

// ClientService stores clients and their private galleries under the
// studioClients key. Every mutation is a read-modify-write of the whole
// collection, serialised through the mutation queue.
type ClientService struct {
	store      *store.Store
	queue      ports.MutationQueue
	confirm    *Confirmations
	identities ports.IdentityProvider
	logger     zerolog.Logger
	now        func() time.Time
}

// NewClientService builds the repository. identities is nil for the local
// backend; otherwise every added client also gets a sign-in account there.
func NewClientService(st *store.Store, queue ports.MutationQueue, confirm *Confirmations, identities ports.IdentityProvider, logger zerolog.Logger) *ClientService {
	s := &ClientService{
		store:      st,
		queue:      queue,
		confirm:    confirm,
		identities: identities,
		logger:     logger,
		now:        func() time.Time { return time.Now().UTC() },
	}
	confirm.Register(ActionDeleteClient, s.DeleteClient)
	return s
}

func (s *ClientService) load(ctx context.Context) ([]domain.Client, error) {
	clients := []domain.Client{}
	if _, err := s.store.Load(ctx, store.KeyClients, &clients); err != nil {
		return nil, err
	}
	return clients, nil
}

// mutate loads the collection, applies fn and persists the result once.
// fn returning an error aborts without writing.
func (s *ClientService) mutate(ctx context.Context, fn func(clients []domain.Client) ([]domain.Client, error)) error {
	return s.queue.Do(ctx, store.KeyClients, func(ctx context.Context) error {
		clients, err := s.load(ctx)
		if err != nil {
			return err
		}
		updated, err := fn(clients)
		if err != nil {
			return err
		}
		return s.store.Save(ctx, store.KeyClients, updated)
	})
}

// ListClients returns every client in insertion order.
func (s *ClientService) ListClients(ctx context.Context) ([]domain.Client, error) {
	return s.load(ctx)
}

func (s *ClientService) GetClient(ctx context.Context, id string) (*domain.Client, error) {
	clients, err := s.load(ctx)
	if err != nil {
		return nil, err
	}
	if i := indexOfClient(clients, id); i >= 0 {
		return &clients[i], nil
	}
	return nil, domain.ErrClientNotFound
}

// FindByEmail returns the first client whose email matches case-insensitively.
// Duplicate emails are allowed, so later records with the same email are
// unreachable through this lookup.
func (s *ClientService) FindByEmail(ctx context.Context, email string) (*domain.Client, error) {
	clients, err := s.load(ctx)
	if err != nil {
		return nil, err
	}
	for i := range clients {
		if strings.EqualFold(clients[i].Email, email) {
			return &clients[i], nil
		}
	}
	return nil, domain.ErrClientNotFound
}

func (s *ClientService) AddClient(ctx context.Context, input ports.NewClientInput) (*domain.Client, error) {
	if err := validate.Struct(input); err != nil {
		return nil, err
	}

	client := domain.Client{
		ID:          uuid.NewString(),
		Name:        input.Name,
		Email:       input.Email,
		Password:    input.Password,
		SessionType: input.SessionType,
		SessionDate: input.SessionDate,
		Gallery:     []domain.MediaItem{},
		CreatedAt:   s.now(),
	}

	if s.identities != nil {
		if _, err := s.identities.Register(ctx, client.Email, client.Password, client.Name, false); err != nil {
			return nil, fmt.Errorf("add client: register account: %w", err)
		}
	}

	err := s.mutate(ctx, func(clients []domain.Client) ([]domain.Client, error) {
		return append(clients, client), nil
	})
	if err != nil {
		return nil, fmt.Errorf("add client: %w", err)
	}

	s.logger.Info().Str("client_id", client.ID).Msg("client added")
	return &client, nil
}

// DeleteClient removes the client and its gallery. Deleting an unknown id
// is a no-op.
func (s *ClientService) DeleteClient(ctx context.Context, id string) error {
	removed := false
	err := s.mutate(ctx, func(clients []domain.Client) ([]domain.Client, error) {
		out := clients[:0]
		for _, c := range clients {
			if c.ID == id {
				removed = true
				continue
			}
			out = append(out, c)
		}
		return out, nil
	})
	if err != nil {
		return fmt.Errorf("delete client: %w", err)
	}
	if removed {
		s.logger.Info().Str("client_id", id).Msg("client deleted")
	}
	return nil
}

func (s *ClientService) RequestDelete(ctx context.Context, id string) (string, error) {
	if _, err := s.GetClient(ctx, id); err != nil {
		return "", err
	}
	return s.confirm.Issue(ActionDeleteClient, id)
}

func (s *ClientService) ConfirmDelete(ctx context.Context, token string) error {
	return s.confirm.ConfirmAction(ctx, token, ActionDeleteClient)
}

// AppendMedia validates every item, then appends them in order with fresh
// ids. The collection is written once.
func (s *ClientService) AppendMedia(ctx context.Context, clientID string, items []ports.NewMediaInput) ([]domain.MediaItem, error) {
	if len(items) == 0 {
		return nil, domain.NewValidationError("at least one media item is required")
	}
	for i, in := range items {
		if err := validate.Struct(in); err != nil {
			return nil, fmt.Errorf("item %d: %w", i, err)
		}
	}

	now := s.now()
	added := make([]domain.MediaItem, len(items))
	for i, in := range items {
		added[i] = domain.MediaItem{
			ID:         uuid.NewString(),
			Type:       in.Type,
			URL:        in.URL,
			Filename:   in.Filename,
			Title:      in.Title,
			UploadedAt: now,
		}
	}

	err := s.mutate(ctx, func(clients []domain.Client) ([]domain.Client, error) {
		i := indexOfClient(clients, clientID)
		if i < 0 {
			return nil, domain.ErrClientNotFound
		}
		clients[i].Gallery = append(clients[i].Gallery, added...)
		return clients, nil
	})
	if err != nil {
		return nil, fmt.Errorf("append media: %w", err)
	}

	s.logger.Info().Str("client_id", clientID).Int("count", len(added)).Msg("media appended")
	return added, nil
}

// RemoveMedia deletes the gallery item with the given stable id.
func (s *ClientService) RemoveMedia(ctx context.Context, clientID, mediaID string) error {
	err := s.mutate(ctx, func(clients []domain.Client) ([]domain.Client, error) {
		i := indexOfClient(clients, clientID)
		if i < 0 {
			return nil, domain.ErrClientNotFound
		}
		m := clients[i].MediaIndex(mediaID)
		if m < 0 {
			return nil, domain.ErrMediaNotFound
		}
		clients[i].Gallery = removeAt(clients[i].Gallery, m)
		return clients, nil
	})
	if err != nil {
		return fmt.Errorf("remove media: %w", err)
	}
	return nil
}

// RemoveMediaAt deletes the gallery item at position index. Items without a
// stable id can only be removed this way.
func (s *ClientService) RemoveMediaAt(ctx context.Context, clientID string, index int) error {
	err := s.mutate(ctx, func(clients []domain.Client) ([]domain.Client, error) {
		i := indexOfClient(clients, clientID)
		if i < 0 {
			return nil, domain.ErrClientNotFound
		}
		if index < 0 || index >= len(clients[i].Gallery) {
			return nil, domain.ErrMediaNotFound
		}
		clients[i].Gallery = removeAt(clients[i].Gallery, index)
		return clients, nil
	})
	if err != nil {
		return fmt.Errorf("remove media at %d: %w", index, err)
	}
	return nil
}

func (s *ClientService) Gallery(ctx context.Context, clientID string) ([]domain.MediaItem, error) {
	c, err := s.GetClient(ctx, clientID)
	if err != nil {
		return nil, err
	}
	gallery := make([]domain.MediaItem, len(c.Gallery))
	copy(gallery, c.Gallery)
	return gallery, nil
}

func indexOfClient(clients []domain.Client, id string) int {
	for i := range clients {
		if clients[i].ID == id {
			return i
		}
	}
	return -1
}

func removeAt[T any](s []T, i int) []T {
	out := make([]T, 0, len(s)-1)
	out = append(out, s[:i]...)
	return append(out, s[i+1:]...)
}

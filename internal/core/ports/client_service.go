package ports

import (
	"context"

	"github.com/lumenstudio/studio/internal/core/domain"
)

// NewClientInput carries the admin "add client" form.
type NewClientInput struct {
	Name        string `validate:"required"`
	Email       string `validate:"required,email"`
	Password    string `validate:"required"`
	SessionType string
	SessionDate string
}

// NewMediaInput describes one uploaded photo or video.
type NewMediaInput struct {
	Type     domain.MediaType `validate:"required,oneof=image video"`
	URL      string           `validate:"required"`
	Filename string
	Title    string
}

// ClientService is the client gallery repository.
type ClientService interface {
	ListClients(ctx context.Context) ([]domain.Client, error)
	GetClient(ctx context.Context, id string) (*domain.Client, error)
	FindByEmail(ctx context.Context, email string) (*domain.Client, error)
	AddClient(ctx context.Context, input NewClientInput) (*domain.Client, error)
	DeleteClient(ctx context.Context, id string) error
	// RequestDelete returns a token that ConfirmDelete redeems to remove the
	// client.
	RequestDelete(ctx context.Context, id string) (string, error)
	ConfirmDelete(ctx context.Context, token string) error
	AppendMedia(ctx context.Context, clientID string, items []NewMediaInput) ([]domain.MediaItem, error)
	RemoveMedia(ctx context.Context, clientID, mediaID string) error
	RemoveMediaAt(ctx context.Context, clientID string, index int) error
	Gallery(ctx context.Context, clientID string) ([]domain.MediaItem, error)
}

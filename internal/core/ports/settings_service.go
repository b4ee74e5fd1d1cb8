package ports

import (
	"context"

	"github.com/lumenstudio/studio/internal/core/domain"
)

type SettingsInput struct {
	StudioName   string
	ContactEmail string `validate:"omitempty,email"`
	ContactPhone string
}

// SettingsService manages studio contact settings and the per-profile theme.
type SettingsService interface {
	Settings(ctx context.Context) (domain.Settings, error)
	SaveSettings(ctx context.Context, input SettingsInput) (domain.Settings, error)
	Theme(ctx context.Context) (domain.Theme, error)
	SetTheme(ctx context.Context, theme domain.Theme) error
	ToggleTheme(ctx context.Context) (domain.Theme, error)
}

// Confirmer performs a deletion previously requested with a token.
type Confirmer interface {
	Confirm(ctx context.Context, token string) error
}

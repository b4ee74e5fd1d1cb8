package service

import (
	"context"
	"fmt"
	"strings"

	"github.com/rs/zerolog"

	"github.com/lumenstudio/studio/internal/core/domain"
	"github.com/lumenstudio/studio/internal/core/ports"
	"github.com/lumenstudio/studio/internal/core/store"
	"github.com/lumenstudio/studio/internal/pkg/validate"
)

type SettingsService struct {
	store  *store.Store
	queue  ports.MutationQueue
	logger zerolog.Logger
}

func NewSettingsService(st *store.Store, queue ports.MutationQueue, logger zerolog.Logger) *SettingsService {
	return &SettingsService{store: st, queue: queue, logger: logger}
}

func (s *SettingsService) Settings(ctx context.Context) (domain.Settings, error) {
	var settings domain.Settings
	if _, err := s.store.Load(ctx, store.KeySettings, &settings); err != nil {
		return domain.Settings{}, err
	}
	return settings, nil
}

// SaveSettings replaces the stored settings wholesale.
func (s *SettingsService) SaveSettings(ctx context.Context, input ports.SettingsInput) (domain.Settings, error) {
	if err := validate.Struct(input); err != nil {
		return domain.Settings{}, err
	}
	settings := domain.Settings{
		StudioName:   input.StudioName,
		ContactEmail: input.ContactEmail,
		ContactPhone: input.ContactPhone,
	}
	err := s.queue.Do(ctx, store.KeySettings, func(ctx context.Context) error {
		return s.store.Save(ctx, store.KeySettings, settings)
	})
	if err != nil {
		return domain.Settings{}, fmt.Errorf("save settings: %w", err)
	}
	return settings, nil
}

// Theme returns the profile's theme, light when none was chosen.
func (s *SettingsService) Theme(ctx context.Context) (domain.Theme, error) {
	raw, _, err := s.store.LoadString(ctx, store.KeyTheme)
	if err != nil {
		return "", err
	}
	if domain.Theme(strings.Trim(raw, `"`)) == domain.ThemeDark {
		return domain.ThemeDark, nil
	}
	return domain.ThemeLight, nil
}

func (s *SettingsService) SetTheme(ctx context.Context, theme domain.Theme) error {
	if err := validate.Var("theme", string(theme), "required,oneof=light dark"); err != nil {
		return err
	}
	return s.queue.Do(ctx, store.ResolveKey(ctx, store.KeyTheme), func(ctx context.Context) error {
		return s.store.SaveString(ctx, store.KeyTheme, string(theme))
	})
}

func (s *SettingsService) ToggleTheme(ctx context.Context) (domain.Theme, error) {
	var next domain.Theme
	err := s.queue.Do(ctx, store.ResolveKey(ctx, store.KeyTheme), func(ctx context.Context) error {
		current, err := s.Theme(ctx)
		if err != nil {
			return err
		}
		next = current.Toggle()
		return s.store.SaveString(ctx, store.KeyTheme, string(next))
	})
	if err != nil {
		return "", fmt.Errorf("toggle theme: %w", err)
	}
	return next, nil
}

package service

import (
	"context"
	"errors"
	"testing"

	"github.com/lumenstudio/studio/internal/core/domain"
	"github.com/lumenstudio/studio/internal/core/ports"
	"github.com/lumenstudio/studio/internal/core/store"
)

func TestTheme_DefaultAndToggle(t *testing.T) {
	f := newFixture(t)
	ctx := store.WithProfile(context.Background(), "p1")

	theme, err := f.settings.Theme(ctx)
	if err != nil || theme != domain.ThemeLight {
		t.Fatalf("Theme = %q, %v; want light", theme, err)
	}

	next, err := f.settings.ToggleTheme(ctx)
	if err != nil || next != domain.ThemeDark {
		t.Fatalf("ToggleTheme = %q, %v; want dark", next, err)
	}

	raw, _, _ := f.kv.Get(ctx, "profile:p1:theme")
	if raw != "dark" {
		t.Fatalf("stored theme = %q, want unquoted dark", raw)
	}

	other, _ := f.settings.Theme(store.WithProfile(context.Background(), "p2"))
	if other != domain.ThemeLight {
		t.Fatalf("theme leaked across profiles: %q", other)
	}
}

func TestSetTheme_RejectsUnknown(t *testing.T) {
	f := newFixture(t)
	err := f.settings.SetTheme(context.Background(), "sepia")
	if !errors.Is(err, domain.ErrValidation) {
		t.Fatalf("expected ErrValidation, got %v", err)
	}
}

func TestSettings_SaveAndLoad(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	empty, err := f.settings.Settings(ctx)
	if err != nil || empty != (domain.Settings{}) {
		t.Fatalf("Settings = %+v, %v; want zero", empty, err)
	}

	in := ports.SettingsInput{StudioName: "Lumen", ContactEmail: "hi@lumen.studio", ContactPhone: "555"}
	if _, err := f.settings.SaveSettings(ctx, in); err != nil {
		t.Fatalf("SaveSettings: %v", err)
	}
	got, _ := f.settings.Settings(ctx)
	if got.StudioName != "Lumen" || got.ContactEmail != "hi@lumen.studio" {
		t.Fatalf("unexpected settings: %+v", got)
	}

	_, err = f.settings.SaveSettings(ctx, ports.SettingsInput{ContactEmail: "nope"})
	if !errors.Is(err, domain.ErrValidation) {
		t.Fatalf("expected ErrValidation, got %v", err)
	}
}

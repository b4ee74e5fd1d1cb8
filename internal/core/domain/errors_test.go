package domain

import (
	"errors"
	"fmt"
	"testing"
)

func TestValidationError_IsErrValidation(t *testing.T) {
	err := fmt.Errorf("add client: %w", NewValidationError("name is required"))
	if !errors.Is(err, ErrValidation) {
		t.Fatalf("expected errors.Is(err, ErrValidation)")
	}
	var ve *ValidationError
	if !errors.As(err, &ve) || ve.Fields[0] != "name is required" {
		t.Fatalf("unexpected validation error: %v", err)
	}
}

func TestNotFoundFamily(t *testing.T) {
	for _, err := range []error{ErrClientNotFound, ErrMediaNotFound, ErrPortfolioItemNotFound, ErrViewNotFound} {
		if !errors.Is(err, ErrNotFound) {
			t.Fatalf("%v should wrap ErrNotFound", err)
		}
	}
}

func TestTransportError_Message(t *testing.T) {
	tests := []struct {
		code string
		want string
	}{
		{CodeUserNotFound, "No account found with this email."},
		{CodeWrongPassword, "Incorrect password."},
		{CodeInvalidEmail, "Invalid email address."},
		{CodeTooManyRequests, "Too many failed attempts. Please try again later."},
		{"auth/network-request-failed", genericTransportMessage},
	}
	for _, tt := range tests {
		err := &TransportError{Code: tt.code}
		if got := err.Message(); got != tt.want {
			t.Errorf("code %s: got %q, want %q", tt.code, got, tt.want)
		}
		if !errors.Is(err, ErrTransport) {
			t.Errorf("code %s: expected errors.Is(err, ErrTransport)", tt.code)
		}
	}
}

func TestClientPrincipal_OmitsPassword(t *testing.T) {
	c := &Client{ID: "c1", Name: "Ann", Email: "ann@example.com", Password: "pw", Gallery: []MediaItem{{ID: "m1", Type: MediaImage, URL: "u"}}}
	p := c.Principal()
	if p.Kind != KindClient || p.ID != "c1" || p.Email != "ann@example.com" || len(p.Gallery) != 1 {
		t.Fatalf("unexpected principal: %+v", p)
	}
	p.Gallery[0].URL = "changed"
	if c.Gallery[0].URL != "u" {
		t.Fatalf("principal gallery must not alias the client gallery")
	}
}

func TestTheme_Toggle(t *testing.T) {
	if ThemeLight.Toggle() != ThemeDark || ThemeDark.Toggle() != ThemeLight {
		t.Fatalf("toggle is not symmetric")
	}
}

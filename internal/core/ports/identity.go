package ports

import (
	"context"
	"time"
)

// Identity is an account known to a remote identity provider.
type Identity struct {
	UID         string
	Email       string
	DisplayName string
	Admin       bool
	CreatedAt   time.Time
}

// IdentityProvider verifies credentials against a remote account store.
// Rejections are returned as *domain.TransportError with a provider code.
type IdentityProvider interface {
	SignIn(ctx context.Context, email, password string) (*Identity, error)
	Register(ctx context.Context, email, password, displayName string, admin bool) (*Identity, error)
}

// AttemptLimiter caps sign-in attempts per account within a time window.
type AttemptLimiter interface {
	Allow(ctx context.Context, subject string) (bool, error)
	Reset(ctx context.Context, subject string) error
}

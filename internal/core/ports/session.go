package ports

import (
	"context"

	"github.com/lumenstudio/studio/internal/core/domain"
)

// SessionDirectory answers "who is logged in" for the client and admin
// principal kinds independently.
type SessionDirectory interface {
	// Authenticate checks credentials for kind and returns the principal with
	// its password removed. Failure does not distinguish unknown email from
	// wrong password.
	Authenticate(ctx context.Context, kind domain.PrincipalKind, email, password string) (*domain.Principal, error)
	// CurrentPrincipal returns nil when no session of kind exists.
	CurrentPrincipal(ctx context.Context, kind domain.PrincipalKind) (*domain.Principal, error)
	StartSession(ctx context.Context, kind domain.PrincipalKind, principal *domain.Principal) error
	EndSession(ctx context.Context, kind domain.PrincipalKind) error
	IsAuthenticated(ctx context.Context, kind domain.PrincipalKind) (bool, error)
	// Login authenticates and starts the session in one step.
	Login(ctx context.Context, kind domain.PrincipalKind, email, password string) (*domain.Principal, error)
}

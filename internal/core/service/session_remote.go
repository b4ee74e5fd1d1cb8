package service

import (
	"context"
	"errors"
	"strings"

	"github.com/rs/zerolog"

	"github.com/lumenstudio/studio/internal/core/domain"
	"github.com/lumenstudio/studio/internal/core/ports"
	"github.com/lumenstudio/studio/internal/core/store"
)

// RemoteSessionDirectory delegates credential checks to an identity provider.
// Provider rejections surface as *domain.TransportError so callers can show
// the mapped message.
type RemoteSessionDirectory struct {
	sessions
	provider ports.IdentityProvider
	limiter  ports.AttemptLimiter
	clients  ports.ClientService
	logger   zerolog.Logger
}

// NewRemoteSessionDirectory builds the directory. limiter may be nil.
func NewRemoteSessionDirectory(st *store.Store, provider ports.IdentityProvider, limiter ports.AttemptLimiter, clients ports.ClientService, logger zerolog.Logger) *RemoteSessionDirectory {
	return &RemoteSessionDirectory{
		sessions: sessions{store: st},
		provider: provider,
		limiter:  limiter,
		clients:  clients,
		logger:   logger,
	}
}

func (d *RemoteSessionDirectory) Authenticate(ctx context.Context, kind domain.PrincipalKind, email, password string) (*domain.Principal, error) {
	if err := checkCredentials(kind, email, password); err != nil {
		return nil, err
	}

	if d.limiter != nil {
		ok, err := d.limiter.Allow(ctx, email)
		if err != nil {
			return nil, &domain.TransportError{Code: domain.CodeInternal, Err: err}
		}
		if !ok {
			return nil, &domain.TransportError{Code: domain.CodeTooManyRequests}
		}
	}

	identity, err := d.provider.SignIn(ctx, email, password)
	if err != nil {
		return nil, err
	}
	if d.limiter != nil {
		if err := d.limiter.Reset(ctx, email); err != nil {
			d.logger.Warn().Err(err).Msg("reset attempt counter")
		}
	}

	if kind == domain.KindAdmin {
		if !isAdmin(identity) {
			return nil, domain.ErrAccessDenied
		}
		name := identity.DisplayName
		if name == "" {
			name = identity.Email
		}
		return &domain.Principal{
			Kind:  domain.KindAdmin,
			ID:    identity.UID,
			Name:  name,
			Email: identity.Email,
			Role:  domain.RoleAdmin,
		}, nil
	}

	client, err := d.clients.FindByEmail(ctx, identity.Email)
	switch {
	case err == nil:
		return client.Principal(), nil
	case errors.Is(err, domain.ErrNotFound):
		return &domain.Principal{
			Kind:      domain.KindClient,
			ID:        identity.UID,
			Name:      identity.DisplayName,
			Email:     identity.Email,
			Gallery:   []domain.MediaItem{},
			CreatedAt: identity.CreatedAt,
		}, nil
	default:
		return nil, err
	}
}

func (d *RemoteSessionDirectory) Login(ctx context.Context, kind domain.PrincipalKind, email, password string) (*domain.Principal, error) {
	p, err := d.Authenticate(ctx, kind, email, password)
	if err != nil {
		var te *domain.TransportError
		if errors.As(err, &te) {
			d.logger.Info().Str("kind", string(kind)).Str("code", te.Code).Msg("login rejected")
		}
		return nil, err
	}
	if err := d.StartSession(ctx, kind, p); err != nil {
		return nil, err
	}
	d.logger.Info().Str("kind", string(kind)).Str("principal_id", p.ID).Msg("login")
	return p, nil
}

// isAdmin applies the admin claim: an explicit flag, or an email address
// containing "admin".
func isAdmin(id *ports.Identity) bool {
	return id.Admin || strings.Contains(strings.ToLower(id.Email), "admin")
}

var _ ports.SessionDirectory = (*RemoteSessionDirectory)(nil)

package service

import (
	"context"
	"fmt"
	"strings"

	"github.com/rs/zerolog"

	"github.com/lumenstudio/studio/internal/core/domain"
	"github.com/lumenstudio/studio/internal/core/ports"
	"github.com/lumenstudio/studio/internal/core/store"
)

// LocalSessionDirectory authenticates against the stored client collection
// and a fixed admin list, comparing plaintext passwords. It exists for
// compatibility with data written by the browser front end.
type LocalSessionDirectory struct {
	sessions
	clients ports.ClientService
	admins  []domain.Admin
	logger  zerolog.Logger
}

func NewLocalSessionDirectory(st *store.Store, clients ports.ClientService, admins []domain.Admin, logger zerolog.Logger) *LocalSessionDirectory {
	return &LocalSessionDirectory{
		sessions: sessions{store: st},
		clients:  clients,
		admins:   admins,
		logger:   logger,
	}
}

// Authenticate returns the first record of kind whose email matches
// case-insensitively and whose password matches exactly.
func (d *LocalSessionDirectory) Authenticate(ctx context.Context, kind domain.PrincipalKind, email, password string) (*domain.Principal, error) {
	if err := checkCredentials(kind, email, password); err != nil {
		return nil, err
	}

	switch kind {
	case domain.KindClient:
		clients, err := d.clients.ListClients(ctx)
		if err != nil {
			return nil, fmt.Errorf("authenticate: %w", err)
		}
		for i := range clients {
			if strings.EqualFold(clients[i].Email, email) && clients[i].Password == password {
				return clients[i].Principal(), nil
			}
		}
	case domain.KindAdmin:
		for i := range d.admins {
			if strings.EqualFold(d.admins[i].Email, email) && d.admins[i].Password == password {
				return d.admins[i].Principal(), nil
			}
		}
	}
	return nil, domain.ErrAuthFailure
}

func (d *LocalSessionDirectory) Login(ctx context.Context, kind domain.PrincipalKind, email, password string) (*domain.Principal, error) {
	p, err := d.Authenticate(ctx, kind, email, password)
	if err != nil {
		d.logger.Info().Str("kind", string(kind)).Msg("login rejected")
		return nil, err
	}
	if err := d.StartSession(ctx, kind, p); err != nil {
		return nil, err
	}
	d.logger.Info().Str("kind", string(kind)).Str("principal_id", p.ID).Msg("login")
	return p, nil
}

var _ ports.SessionDirectory = (*LocalSessionDirectory)(nil)

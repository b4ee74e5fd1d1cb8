package service

import (
	"context"

	"github.com/lumenstudio/studio/internal/core/domain"
	"github.com/lumenstudio/studio/internal/core/store"
	"github.com/lumenstudio/studio/internal/pkg/validate"
)

// credentials is the login form shared by both session backends.
type credentials struct {
	Email    string `validate:"required,email"`
	Password string `validate:"required"`
}

func sessionKey(kind domain.PrincipalKind) (string, error) {
	switch kind {
	case domain.KindClient:
		return store.KeyCurrentUser, nil
	case domain.KindAdmin:
		return store.KeyCurrentAdmin, nil
	}
	_, err := domain.ParseKind(string(kind))
	return "", err
}

func checkCredentials(kind domain.PrincipalKind, email, password string) error {
	if !kind.Valid() {
		_, err := domain.ParseKind(string(kind))
		return err
	}
	return validate.Struct(credentials{Email: email, Password: password})
}

// sessions keeps one principal per kind in the profile-scoped store keys.
// Both session directories embed it.
type sessions struct {
	store *store.Store
}

func (s sessions) CurrentPrincipal(ctx context.Context, kind domain.PrincipalKind) (*domain.Principal, error) {
	key, err := sessionKey(kind)
	if err != nil {
		return nil, err
	}
	var p domain.Principal
	found, err := s.store.Load(ctx, key, &p)
	if err != nil || !found {
		return nil, err
	}
	if p.Kind == "" {
		p.Kind = kind
	}
	return &p, nil
}

func (s sessions) StartSession(ctx context.Context, kind domain.PrincipalKind, principal *domain.Principal) error {
	key, err := sessionKey(kind)
	if err != nil {
		return err
	}
	if principal == nil {
		return domain.NewValidationError("principal is required")
	}
	p := *principal
	p.Kind = kind
	return s.store.Save(ctx, key, p)
}

// EndSession is a no-op when no session exists.
func (s sessions) EndSession(ctx context.Context, kind domain.PrincipalKind) error {
	key, err := sessionKey(kind)
	if err != nil {
		return err
	}
	return s.store.Remove(ctx, key)
}

func (s sessions) IsAuthenticated(ctx context.Context, kind domain.PrincipalKind) (bool, error) {
	p, err := s.CurrentPrincipal(ctx, kind)
	if err != nil {
		return false, err
	}
	return p != nil, nil
}

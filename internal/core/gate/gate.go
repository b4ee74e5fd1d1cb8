// Package gate decides, once per page load, whether a view may render or
// must redirect based on session presence.
package gate

import (
	"context"
	"fmt"

	"github.com/lumenstudio/studio/internal/core/domain"
	"github.com/lumenstudio/studio/internal/core/ports"
)

// State is the outcome of an access check.
type State int

const (
	Unknown State = iota
	Authorized
	Redirecting
)

func (s State) String() string {
	switch s {
	case Authorized:
		return "authorized"
	case Redirecting:
		return "redirecting"
	}
	return "unknown"
}

func (s State) MarshalText() ([]byte, error) {
	return []byte(s.String()), nil
}

// View describes one guarded page.
type View struct {
	Name string
	Kind domain.PrincipalKind
	// Protected views require a session; login views redirect away from one.
	Protected bool
	Redirect  string
}

// Views are the guarded pages of the site.
var Views = map[string]View{
	"gallery":     {Name: "gallery", Kind: domain.KindClient, Protected: true, Redirect: "/login.html"},
	"login":       {Name: "login", Kind: domain.KindClient, Redirect: "/gallery.html"},
	"admin":       {Name: "admin", Kind: domain.KindAdmin, Protected: true, Redirect: "/admin-login.html"},
	"admin-login": {Name: "admin-login", Kind: domain.KindAdmin, Redirect: "/admin.html"},
}

// Decision is the result of Evaluate. Principal is set whenever a session of
// the view's kind exists.
type Decision struct {
	View      string            `json:"view"`
	State     State             `json:"state"`
	Location  string            `json:"location,omitempty"`
	Principal *domain.Principal `json:"principal,omitempty"`
}

type Gate struct {
	sessions ports.SessionDirectory
}

func New(sessions ports.SessionDirectory) *Gate {
	return &Gate{sessions: sessions}
}

// Evaluate checks the session for view. It does not poll; callers evaluate
// again on the next page load.
func (g *Gate) Evaluate(ctx context.Context, view string) (Decision, error) {
	v, ok := Views[view]
	if !ok {
		return Decision{State: Unknown}, fmt.Errorf("%q: %w", view, domain.ErrViewNotFound)
	}

	p, err := g.sessions.CurrentPrincipal(ctx, v.Kind)
	if err != nil {
		return Decision{View: view, State: Unknown}, fmt.Errorf("gate %s: %w", view, err)
	}

	d := Decision{View: view, State: Authorized, Principal: p}
	switch {
	case v.Protected && p == nil:
		d.State, d.Location = Redirecting, v.Redirect
	case !v.Protected && p != nil:
		d.State, d.Location = Redirecting, v.Redirect
	}
	return d, nil
}

package domain

import (
	"fmt"
	"time"
)

// PrincipalKind selects which of the two independent sessions an operation targets.
type PrincipalKind string

const (
	KindClient PrincipalKind = "client"
	KindAdmin  PrincipalKind = "admin"
)

// Valid reports whether k is a known principal kind.
func (k PrincipalKind) Valid() bool {
	return k == KindClient || k == KindAdmin
}

// ParseKind converts s to a PrincipalKind.
func ParseKind(s string) (PrincipalKind, error) {
	k := PrincipalKind(s)
	if !k.Valid() {
		return "", NewValidationError(fmt.Sprintf("kind must be one of: %s %s", KindClient, KindAdmin))
	}
	return k, nil
}

// Principal is an authenticated identity with credentials removed. The type
// carries no password field, so a stored session can never leak one.
type Principal struct {
	Kind        PrincipalKind `json:"kind,omitempty"`
	ID          string        `json:"id"`
	Name        string        `json:"name"`
	Email       string        `json:"email"`
	Role        AdminRole     `json:"role,omitempty"`
	SessionType string        `json:"sessionType,omitempty"`
	SessionDate string        `json:"sessionDate,omitempty"`
	Gallery     []MediaItem   `json:"gallery,omitempty"`
	CreatedAt   time.Time     `json:"createdAt,omitzero"`
}

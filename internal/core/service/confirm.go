package service

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"

	"github.com/lumenstudio/studio/internal/core/domain"
	"github.com/lumenstudio/studio/internal/core/ports"
)

// Confirmation actions. A token is only redeemable for the action it was
// issued for.
const (
	ActionDeleteClient        = "delete_client"
	ActionDeletePortfolioItem = "delete_portfolio_item"
)

const defaultConfirmTTL = 5 * time.Minute

type confirmClaims struct {
	Action string `json:"act"`
	jwt.RegisteredClaims
}

// Executor performs a confirmed action on subject.
type Executor func(ctx context.Context, subject string) error

// Confirmations issues and redeems signed, short-lived deletion tokens.
type Confirmations struct {
	secret []byte
	ttl    time.Duration
	now    func() time.Time

	mu        sync.RWMutex
	executors map[string]Executor
}

func NewConfirmations(secret string, ttl time.Duration) *Confirmations {
	if ttl <= 0 {
		ttl = defaultConfirmTTL
	}
	return &Confirmations{
		secret:    []byte(secret),
		ttl:       ttl,
		now:       time.Now,
		executors: make(map[string]Executor),
	}
}

// Register binds action to the function that carries it out.
func (c *Confirmations) Register(action string, fn Executor) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.executors[action] = fn
}

// confirmAudience keeps confirmation tokens apart from other tokens signed
// with the same secret.
const confirmAudience = "studio:confirm"

// Issue signs a token for action on subject.
func (c *Confirmations) Issue(action, subject string) (string, error) {
	now := c.now()
	claims := confirmClaims{
		Action: action,
		RegisteredClaims: jwt.RegisteredClaims{
			ID:        uuid.NewString(),
			Audience:  jwt.ClaimStrings{confirmAudience},
			Subject:   subject,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(c.ttl)),
		},
	}
	t := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return t.SignedString(c.secret)
}

// Verify parses token and returns its action and subject. When action is
// non-empty the token must have been issued for it.
func (c *Confirmations) Verify(token, action string) (string, string, error) {
	claims := &confirmClaims{}
	parsed, err := jwt.ParseWithClaims(token, claims, func(t *jwt.Token) (any, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", t.Header["alg"])
		}
		return c.secret, nil
	}, jwt.WithTimeFunc(c.now), jwt.WithAudience(confirmAudience))
	if err != nil || !parsed.Valid {
		return "", "", fmt.Errorf("%w: %v", domain.ErrInvalidConfirmation, err)
	}
	if claims.Subject == "" || claims.Action == "" {
		return "", "", domain.ErrInvalidConfirmation
	}
	if action != "" && claims.Action != action {
		return "", "", fmt.Errorf("%w: token issued for %s", domain.ErrInvalidConfirmation, claims.Action)
	}
	return claims.Action, claims.Subject, nil
}

// Confirm redeems token with whichever executor its action is bound to.
func (c *Confirmations) Confirm(ctx context.Context, token string) error {
	action, subject, err := c.Verify(token, "")
	if err != nil {
		return err
	}
	return c.run(ctx, action, subject)
}

// ConfirmAction redeems token only if it was issued for action.
func (c *Confirmations) ConfirmAction(ctx context.Context, token, action string) error {
	_, subject, err := c.Verify(token, action)
	if err != nil {
		return err
	}
	return c.run(ctx, action, subject)
}

func (c *Confirmations) run(ctx context.Context, action, subject string) error {
	c.mu.RLock()
	fn, ok := c.executors[action]
	c.mu.RUnlock()
	if !ok {
		return fmt.Errorf("%w: no handler for %s", domain.ErrInvalidConfirmation, action)
	}
	return fn(ctx, subject)
}

var _ ports.Confirmer = (*Confirmations)(nil)

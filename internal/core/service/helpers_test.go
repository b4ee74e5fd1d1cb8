package service

import (
	"testing"
	"time"

	"github.com/rs/zerolog"

	"github.com/lumenstudio/studio/internal/core/store"
	"github.com/lumenstudio/studio/internal/infrastructure/db/memory"
	"github.com/lumenstudio/studio/internal/infrastructure/queue"
)

const testSecret = "test-secret"

// fixture wires the services over an in-memory store.
type fixture struct {
	kv        *memory.Store
	store     *store.Store
	confirm   *Confirmations
	clients   *ClientService
	portfolio *PortfolioService
	settings  *SettingsService
}

func newFixture(t *testing.T) *fixture {
	t.Helper()
	kv := memory.New()
	st := store.New(kv)
	confirm := NewConfirmations(testSecret, time.Minute)
	q := queue.Inline{}
	log := zerolog.Nop()
	return &fixture{
		kv:        kv,
		store:     st,
		confirm:   confirm,
		clients:   NewClientService(st, q, confirm, nil, log),
		portfolio: NewPortfolioService(st, q, confirm, log),
		settings:  NewSettingsService(st, q, log),
	}
}

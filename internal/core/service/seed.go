package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/rs/zerolog"

	"github.com/lumenstudio/studio/internal/core/domain"
	"github.com/lumenstudio/studio/internal/core/ports"
	"github.com/lumenstudio/studio/internal/core/store"
)

// DemoAdmins are the built-in dashboard accounts of the local backend.
func DemoAdmins() []domain.Admin {
	return []domain.Admin{
		{ID: "admin1", Name: "Studio Admin", Email: "admin@studio.com", Password: "Admin123!", Role: domain.RoleAdmin},
		{ID: "admin2", Name: "Super Admin", Email: "superadmin@studio.com", Password: "SuperAdmin123!", Role: domain.RoleSuperAdmin},
	}
}

func demoClients(now time.Time) []domain.Client {
	return []domain.Client{
		{
			ID: "client1", Name: "John Doe", Email: "john.doe@email.com", Password: "password123",
			SessionType: "Wedding", SessionDate: "2024-12-15", Gallery: []domain.MediaItem{}, CreatedAt: now,
		},
		{
			ID: "client2", Name: "Sarah Smith", Email: "sarah.smith@email.com", Password: "password456",
			SessionType: "Portrait", SessionDate: "2025-01-02", Gallery: []domain.MediaItem{}, CreatedAt: now,
		},
	}
}

func demoPortfolio() []domain.PortfolioItem {
	const cdn = "https://images.unsplash.com/"
	item := func(id, title, category, photo string) domain.PortfolioItem {
		return domain.PortfolioItem{
			ID:        id,
			Title:     title,
			Category:  category,
			Type:      domain.MediaImage,
			URL:       cdn + photo + "?w=800",
			Thumbnail: cdn + photo + "?w=400",
		}
	}
	return []domain.PortfolioItem{
		item("port1", "Elegant Wedding Ceremony", "weddings", "photo-1519741497674-611481863552"),
		item("port2", "Professional Portrait", "portraits", "photo-1531746020798-e6953c6e8e04"),
		item("port3", "Corporate Event", "events", "photo-1511795409834-ef04bbd61622"),
		item("port4", "Fashion Editorial", "editorial", "photo-1509631179647-0177331693ae"),
		item("port5", "Product Photography", "commercial", "photo-1505740420928-5e560c06d30e"),
		item("port6", "Reception Celebration", "weddings", "photo-1464366400600-7168b8af9bc3"),
	}
}

// SeedResult reports which collections were populated.
type SeedResult struct {
	Clients   int
	Portfolio int
	Admins    int
	// ClientAccounts counts demo clients registered with the identity provider.
	ClientAccounts int
}

// Seeder fills empty collections with demo data.
type Seeder struct {
	store    *store.Store
	queue    ports.MutationQueue
	provider ports.IdentityProvider
	logger   zerolog.Logger
}

// NewSeeder builds a seeder. provider is nil for the local backend.
func NewSeeder(st *store.Store, queue ports.MutationQueue, provider ports.IdentityProvider, logger zerolog.Logger) *Seeder {
	return &Seeder{store: st, queue: queue, provider: provider, logger: logger}
}

// Seed writes demo clients and portfolio items into empty collections only.
// Non-empty collections are left untouched.
func (s *Seeder) Seed(ctx context.Context) (SeedResult, error) {
	var res SeedResult
	now := time.Now().UTC()

	err := s.queue.Do(ctx, store.KeyClients, func(ctx context.Context) error {
		var clients []domain.Client
		if _, err := s.store.Load(ctx, store.KeyClients, &clients); err != nil {
			return err
		}
		if len(clients) > 0 {
			return nil
		}
		demo := demoClients(now)
		res.Clients = len(demo)
		return s.store.Save(ctx, store.KeyClients, demo)
	})
	if err != nil {
		return res, fmt.Errorf("seed clients: %w", err)
	}

	err = s.queue.Do(ctx, store.KeyPortfolio, func(ctx context.Context) error {
		var items []domain.PortfolioItem
		if _, err := s.store.Load(ctx, store.KeyPortfolio, &items); err != nil {
			return err
		}
		if len(items) > 0 {
			return nil
		}
		demo := demoPortfolio()
		for i := range demo {
			demo[i].UploadedAt = now
		}
		res.Portfolio = len(demo)
		return s.store.Save(ctx, store.KeyPortfolio, demo)
	})
	if err != nil {
		return res, fmt.Errorf("seed portfolio: %w", err)
	}

	if s.provider != nil {
		n, err := s.registerAdmins(ctx)
		if err != nil {
			return res, err
		}
		res.Admins = n
		if res.ClientAccounts, err = s.registerClients(ctx, now); err != nil {
			return res, err
		}
	}

	s.logger.Info().
		Int("clients", res.Clients).
		Int("portfolio", res.Portfolio).
		Int("admins", res.Admins).
		Int("client_accounts", res.ClientAccounts).
		Msg("demo data seeded")
	return res, nil
}

// registerAdmins creates the demo admin accounts in the identity provider.
// Accounts that already exist are skipped.
func (s *Seeder) registerAdmins(ctx context.Context) (int, error) {
	n := 0
	for _, a := range DemoAdmins() {
		created, err := s.register(ctx, a.Email, a.Password, a.Name, true)
		if err != nil {
			return n, fmt.Errorf("register admin %s: %w", a.Email, err)
		}
		if created {
			n++
		}
	}
	return n, nil
}

// registerClients gives the demo clients sign-in accounts so the remote
// backend can log them in.
func (s *Seeder) registerClients(ctx context.Context, now time.Time) (int, error) {
	n := 0
	for _, c := range demoClients(now) {
		created, err := s.register(ctx, c.Email, c.Password, c.Name, false)
		if err != nil {
			return n, fmt.Errorf("register client %s: %w", c.Email, err)
		}
		if created {
			n++
		}
	}
	return n, nil
}

func (s *Seeder) register(ctx context.Context, email, password, name string, admin bool) (bool, error) {
	_, err := s.provider.Register(ctx, email, password, name, admin)
	var te *domain.TransportError
	switch {
	case err == nil:
		return true, nil
	case errors.As(err, &te) && te.Code == domain.CodeEmailInUse:
		return false, nil
	default:
		return false, err
	}
}

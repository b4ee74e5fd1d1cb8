// Package app wires configuration, storage, services and the HTTP router
// into a runnable application.
package app

import (
	"context"
	"errors"
	"fmt"

	"github.com/labstack/echo/v4"
	goredis "github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/lumenstudio/studio/internal/api"
	"github.com/lumenstudio/studio/internal/core/ports"
	"github.com/lumenstudio/studio/internal/core/service"
	"github.com/lumenstudio/studio/internal/core/store"
	"github.com/lumenstudio/studio/internal/infrastructure/db/memory"
	mongodb "github.com/lumenstudio/studio/internal/infrastructure/db/mongo"
	redisdb "github.com/lumenstudio/studio/internal/infrastructure/db/redis"
	"github.com/lumenstudio/studio/internal/infrastructure/db/sqlite"
	"github.com/lumenstudio/studio/internal/infrastructure/queue"
	"github.com/lumenstudio/studio/internal/pkg/config"
	"github.com/lumenstudio/studio/pkg/logger"
)

type backend interface {
	ports.KVStore
	ports.Pinger
}

// App is a fully wired studio instance.
type App struct {
	Config *config.Config
	Echo   *echo.Echo
	Seeder *service.Seeder

	Clients   *service.ClientService
	Portfolio *service.PortfolioService
	Settings  *service.SettingsService
	Sessions  ports.SessionDirectory

	stopQueue context.CancelFunc
	closers   []func(context.Context) error
}

// builder holds connections shared between the store and the remote auth
// backend so each is opened at most once.
type builder struct {
	cfg     *config.Config
	log     zerolog.Logger
	mongo   *mongodb.Conn
	redis   *goredis.Client
	closers []func(context.Context) error
}

// New builds the application described by cfg. Close must be called to
// release connections and stop the mutation workers.
func New(ctx context.Context, cfg *config.Config, log zerolog.Logger) (*App, error) {
	b := &builder{cfg: cfg, log: log}

	kv, err := b.store(ctx)
	if err != nil {
		b.close(ctx)
		return nil, err
	}
	st := store.New(kv)

	pingers := map[string]ports.Pinger{"store": kv}

	// The remote backend's accounts live in the identity provider; clients
	// added by the dashboard are registered there too.
	var (
		provider ports.IdentityProvider
		limiter  ports.AttemptLimiter
	)
	if cfg.AuthBackend == config.AuthRemote {
		identities, rl, err := b.remoteAuth(ctx)
		if err != nil {
			b.close(ctx)
			return nil, err
		}
		provider, limiter = identities, rl
		pingers["identity"] = b.mongo
		pingers["limiter"] = pingFunc(func(ctx context.Context) error { return b.redis.Ping(ctx).Err() })
	}

	qctx, stopQueue := context.WithCancel(context.Background())
	dispatcher := queue.NewDispatcher(cfg.QueueWorkers, logger.Scoped(log, "queue"))
	dispatcher.Start(qctx)

	confirm := service.NewConfirmations(cfg.ProfileSecret, cfg.ConfirmTTL)
	clients := service.NewClientService(st, dispatcher, confirm, provider, logger.Scoped(log, "clients"))
	portfolio := service.NewPortfolioService(st, dispatcher, confirm, logger.Scoped(log, "portfolio"))
	settings := service.NewSettingsService(st, dispatcher, logger.Scoped(log, "settings"))

	var sessions ports.SessionDirectory
	authLog := logger.Scoped(log, "auth")
	if provider != nil {
		sessions = service.NewRemoteSessionDirectory(st, provider, limiter, clients, authLog)
	} else {
		sessions = service.NewLocalSessionDirectory(st, clients, service.DemoAdmins(), authLog)
	}

	e := api.NewRouter(api.Dependencies{
		Logger:        log,
		ProfileSecret: cfg.ProfileSecret,
		LoginRate:     cfg.Login.Rate,
		LoginBurst:    cfg.Login.Burst,
		Sessions:      sessions,
		Clients:       clients,
		Portfolio:     portfolio,
		Settings:      settings,
		Confirmer:     confirm,
		Pingers:       pingers,
	})

	return &App{
		Config:    cfg,
		Echo:      e,
		Seeder:    service.NewSeeder(st, dispatcher, provider, logger.Scoped(log, "seed")),
		Clients:   clients,
		Portfolio: portfolio,
		Settings:  settings,
		Sessions:  sessions,
		stopQueue: stopQueue,
		closers:   b.closers,
	}, nil
}

// Close stops the mutation workers and closes every open connection.
func (a *App) Close(ctx context.Context) error {
	a.stopQueue()
	var errs []error
	for i := len(a.closers) - 1; i >= 0; i-- {
		if err := a.closers[i](ctx); err != nil {
			errs = append(errs, err)
		}
	}
	return errors.Join(errs...)
}

func (b *builder) store(ctx context.Context) (backend, error) {
	switch b.cfg.StoreDriver {
	case config.DriverMemory:
		return memory.New(), nil
	case config.DriverSQLite:
		s, err := sqlite.Open(ctx, b.cfg.SQLite.Path)
		if err != nil {
			return nil, err
		}
		b.closers = append(b.closers, func(context.Context) error { return s.Close() })
		return s, nil
	case config.DriverRedis:
		rc, err := b.redisClient(ctx)
		if err != nil {
			return nil, err
		}
		return redisdb.NewStore(rc, b.cfg.Redis.Prefix), nil
	case config.DriverMongo:
		db, err := b.mongoDB(ctx)
		if err != nil {
			return nil, err
		}
		return mongodb.NewKVStore(db), nil
	default:
		return nil, fmt.Errorf("app: unknown store driver %q", b.cfg.StoreDriver)
	}
}

// remoteAuth opens the identity provider and the per-account attempt limiter.
func (b *builder) remoteAuth(ctx context.Context) (*mongodb.IdentityRepository, *redisdb.AttemptLimiter, error) {
	db, err := b.mongoDB(ctx)
	if err != nil {
		return nil, nil, err
	}
	identities := mongodb.NewIdentityRepository(db)
	if err := identities.EnsureIndexes(ctx); err != nil {
		return nil, nil, err
	}
	rc, err := b.redisClient(ctx)
	if err != nil {
		return nil, nil, err
	}
	limiter := redisdb.NewAttemptLimiter(rc, b.cfg.Redis.Prefix, b.cfg.Login.MaxAttempts, b.cfg.Login.Window)
	return identities, limiter, nil
}

func (b *builder) mongoDB(ctx context.Context) (*mongo.Database, error) {
	if b.mongo != nil {
		return b.mongo.DB, nil
	}
	conn, err := mongodb.Connect(ctx, mongodb.Config{URI: b.cfg.Mongo.URI, Database: b.cfg.Mongo.Database})
	if err != nil {
		return nil, err
	}
	b.log.Info().Str("database", b.cfg.Mongo.Database).Msg("connected to mongo")
	b.closers = append(b.closers, conn.Close)
	b.mongo = conn
	return conn.DB, nil
}

func (b *builder) redisClient(ctx context.Context) (*goredis.Client, error) {
	if b.redis != nil {
		return b.redis, nil
	}
	rc, err := redisdb.Connect(ctx, redisdb.Config{
		Addr:     b.cfg.Redis.Addr,
		Password: b.cfg.Redis.Password,
		DB:       b.cfg.Redis.DB,
	})
	if err != nil {
		return nil, err
	}
	b.log.Info().Str("addr", b.cfg.Redis.Addr).Msg("connected to redis")
	b.closers = append(b.closers, func(context.Context) error { return rc.Close() })
	b.redis = rc
	return rc, nil
}

func (b *builder) close(ctx context.Context) {
	for i := len(b.closers) - 1; i >= 0; i-- {
		_ = b.closers[i](ctx)
	}
}

type pingFunc func(ctx context.Context) error

func (f pingFunc) Ping(ctx context.Context) error { return f(ctx) }

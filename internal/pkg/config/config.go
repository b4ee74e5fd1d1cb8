package config

import (
	"context"
	"fmt"
	"time"

	"github.com/sethvargo/go-envconfig"
)

// Store drivers.
const (
	DriverMemory = "memory"
	DriverSQLite = "sqlite"
	DriverRedis  = "redis"
	DriverMongo  = "mongo"
)

// Auth backends.
const (
	AuthLocal  = "local"
	AuthRemote = "remote"
)

type Config struct {
	Port     string `env:"PORT,      default=8080"`
	Env      string `env:"ENV,       default=development"`
	LogLevel string `env:"LOG_LEVEL, default=info"`

	StoreDriver string `env:"STORE_DRIVER, default=sqlite"`
	AuthBackend string `env:"AUTH_BACKEND, default=local"`
	SeedDemo    bool   `env:"SEED_DEMO,    default=false"`

	// ProfileSecret signs browser profile and deletion confirmation tokens.
	ProfileSecret string        `env:"PROFILE_SECRET, default=change-me-in-production"`
	ConfirmTTL    time.Duration `env:"CONFIRM_TTL,    default=5m"`
	QueueWorkers  int           `env:"QUEUE_WORKERS,  default=4"`

	SQLite SQLiteConfig
	Mongo  MongoConfig
	Redis  RedisConfig
	Login  LoginConfig
}

type SQLiteConfig struct {
	Path string `env:"SQLITE_PATH, default=studio.db"`
}

type MongoConfig struct {
	URI      string `env:"MONGO_URI, default=mongodb://localhost:27017"`
	Database string `env:"MONGO_DB,  default=studio"`
}

type RedisConfig struct {
	Addr     string `env:"REDIS_ADDR,     default=localhost:6379"`
	Password string `env:"REDIS_PASSWORD"`
	DB       int    `env:"REDIS_DB,       default=0"`
	Prefix   string `env:"REDIS_PREFIX,   default=studio:"`
}

// LoginConfig bounds sign-in traffic: Rate/Burst per client IP on the login
// routes, MaxAttempts per account within Window for the remote backend.
type LoginConfig struct {
	Rate        float64       `env:"LOGIN_RATE,         default=1"`
	Burst       int           `env:"LOGIN_BURST,        default=5"`
	MaxAttempts int64         `env:"LOGIN_MAX_ATTEMPTS, default=5"`
	Window      time.Duration `env:"LOGIN_WINDOW,       default=15m"`
}

// IsDevelopment reports whether human-friendly logging should be used.
func (c *Config) IsDevelopment() bool {
	return c.Env == "development"
}

// Validate rejects driver and backend combinations the service cannot run.
func (c *Config) Validate() error {
	switch c.StoreDriver {
	case DriverMemory, DriverSQLite, DriverRedis, DriverMongo:
	default:
		return fmt.Errorf("config: unknown STORE_DRIVER %q", c.StoreDriver)
	}
	switch c.AuthBackend {
	case AuthLocal, AuthRemote:
	default:
		return fmt.Errorf("config: unknown AUTH_BACKEND %q", c.AuthBackend)
	}
	if c.ProfileSecret == "" {
		return fmt.Errorf("config: PROFILE_SECRET must be set")
	}
	return nil
}

// Load reads configuration from environment variables using go-envconfig.
func Load(ctx context.Context) (*Config, error) {
	return LoadWith(ctx, envconfig.OsLookuper())
}

// LoadWith reads configuration from an arbitrary lookuper.
func LoadWith(ctx context.Context, l envconfig.Lookuper) (*Config, error) {
	var cfg Config
	if err := envconfig.ProcessWith(ctx, &envconfig.Config{Target: &cfg, Lookuper: l}); err != nil {
		return nil, fmt.Errorf("config: failed to load configuration: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// MustLoad is Load for process startup, where a bad environment is fatal.
func MustLoad(ctx context.Context) *Config {
	cfg, err := Load(ctx)
	if err != nil {
		panic(err)
	}
	return cfg
}

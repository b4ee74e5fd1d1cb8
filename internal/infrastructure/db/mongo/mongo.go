// Package mongo holds the MongoDB adapters: the key-value store backend and
// the identity provider used by the remote auth backend.
package mongo

import (
	"context"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.mongodb.org/mongo-driver/mongo/readpref"
)

const (
	defaultTimeout = 10 * time.Second
	appName        = "studio"
)

type Config struct {
	URI      string
	Database string
	Timeout  time.Duration
}

// Conn is a verified client bound to one database.
type Conn struct {
	Client *mongo.Client
	DB     *mongo.Database
}

// Connect dials cfg.URI and pings the primary before returning.
func Connect(ctx context.Context, cfg Config) (*Conn, error) {
	if cfg.Database == "" {
		return nil, fmt.Errorf("mongo connect: database name is required")
	}
	timeout := cfg.Timeout
	if timeout <= 0 {
		timeout = defaultTimeout
	}

	opts := options.Client().
		ApplyURI(cfg.URI).
		SetAppName(appName).
		SetConnectTimeout(timeout).
		SetServerSelectionTimeout(timeout)

	dialCtx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()

	client, err := mongo.Connect(dialCtx, opts)
	if err != nil {
		return nil, fmt.Errorf("mongo connect: %w", err)
	}
	conn := &Conn{Client: client, DB: client.Database(cfg.Database)}
	if err := conn.Ping(dialCtx); err != nil {
		_ = client.Disconnect(context.Background())
		return nil, err
	}
	return conn, nil
}

func (c *Conn) Ping(ctx context.Context) error {
	if err := c.Client.Ping(ctx, readpref.Primary()); err != nil {
		return fmt.Errorf("mongo ping: %w", err)
	}
	return nil
}

func (c *Conn) Close(ctx context.Context) error {
	return c.Client.Disconnect(ctx)
}

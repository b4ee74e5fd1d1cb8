package ports

import "context"

// KVStore is the key-value persistence layer. Values are JSON text; a missing
// key is reported with found == false rather than an error.
type KVStore interface {
	Get(ctx context.Context, key string) (value string, found bool, err error)
	Set(ctx context.Context, key, value string) error
	Remove(ctx context.Context, key string) error
}

// Pinger is implemented by backends that can report their own health.
type Pinger interface {
	Ping(ctx context.Context) error
}

// MutationQueue serializes read-modify-write cycles that share a key.
type MutationQueue interface {
	Do(ctx context.Context, key string, fn func(ctx context.Context) error) error
}

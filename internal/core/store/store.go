// Package store is the JSON layer over a ports.KVStore backend.
package store

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/lumenstudio/studio/internal/core/ports"
)

type profileCtxKey struct{}

// WithProfile scopes per-browser keys in ctx to the given profile id.
func WithProfile(ctx context.Context, profileID string) context.Context {
	return context.WithValue(ctx, profileCtxKey{}, profileID)
}

// ProfileFrom returns the profile id carried by ctx, if any.
func ProfileFrom(ctx context.Context) (string, bool) {
	id, ok := ctx.Value(profileCtxKey{}).(string)
	return id, ok && id != ""
}

// ResolveKey maps a logical key to the backend key. Per-browser keys are
// prefixed with the profile id from ctx; without one the bare key is used.
func ResolveKey(ctx context.Context, key string) string {
	if _, scoped := profileKeys[key]; !scoped {
		return key
	}
	if id, ok := ProfileFrom(ctx); ok {
		return "profile:" + id + ":" + key
	}
	return key
}

// Store reads and writes JSON values. Each key is independent: there is no
// multi-key transaction.
type Store struct {
	kv ports.KVStore
}

func New(kv ports.KVStore) *Store {
	return &Store{kv: kv}
}

// KV exposes the underlying backend.
func (s *Store) KV() ports.KVStore {
	return s.kv
}

// Load decodes the value at key into dst. A missing key leaves dst untouched
// and reports found == false, so callers pre-fill dst with the default.
func (s *Store) Load(ctx context.Context, key string, dst any) (bool, error) {
	raw, found, err := s.kv.Get(ctx, ResolveKey(ctx, key))
	if err != nil {
		return false, fmt.Errorf("store load %s: %w", key, err)
	}
	if !found || raw == "" {
		return false, nil
	}
	if err := json.Unmarshal([]byte(raw), dst); err != nil {
		return false, fmt.Errorf("store decode %s: %w", key, err)
	}
	return true, nil
}

// Save encodes v as JSON and writes it at key.
func (s *Store) Save(ctx context.Context, key string, v any) error {
	raw, err := json.Marshal(v)
	if err != nil {
		return fmt.Errorf("store encode %s: %w", key, err)
	}
	if err := s.kv.Set(ctx, ResolveKey(ctx, key), string(raw)); err != nil {
		return fmt.Errorf("store save %s: %w", key, err)
	}
	return nil
}

// LoadString returns the raw value at key. Plain-string keys such as theme are
// stored unquoted, the way the browser writes them.
func (s *Store) LoadString(ctx context.Context, key string) (string, bool, error) {
	v, found, err := s.kv.Get(ctx, ResolveKey(ctx, key))
	if err != nil {
		return "", false, fmt.Errorf("store load %s: %w", key, err)
	}
	return v, found, nil
}

// SaveString writes v at key without JSON encoding.
func (s *Store) SaveString(ctx context.Context, key, v string) error {
	if err := s.kv.Set(ctx, ResolveKey(ctx, key), v); err != nil {
		return fmt.Errorf("store save %s: %w", key, err)
	}
	return nil
}

// Remove deletes key. Removing a missing key is not an error.
func (s *Store) Remove(ctx context.Context, key string) error {
	if err := s.kv.Remove(ctx, ResolveKey(ctx, key)); err != nil {
		return fmt.Errorf("store remove %s: %w", key, err)
	}
	return nil
}

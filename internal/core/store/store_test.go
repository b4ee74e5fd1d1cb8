package store_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/lumenstudio/studio/internal/core/domain"
	"github.com/lumenstudio/studio/internal/core/store"
	"github.com/lumenstudio/studio/internal/infrastructure/db/memory"
)

func TestLoad_MissingKeyKeepsDefault(t *testing.T) {
	s := store.New(memory.New())

	settings := domain.Settings{StudioName: "default"}
	found, err := s.Load(context.Background(), store.KeySettings, &settings)
	require.NoError(t, err)
	require.False(t, found)
	require.Equal(t, "default", settings.StudioName)
}

func TestSaveLoad_RoundTrip(t *testing.T) {
	ctx := context.Background()
	s := store.New(memory.New())

	in := []domain.PortfolioItem{{ID: "1", Title: "A", Category: "weddings", URL: "u"}}
	require.NoError(t, s.Save(ctx, store.KeyPortfolio, in))

	var out []domain.PortfolioItem
	found, err := s.Load(ctx, store.KeyPortfolio, &out)
	require.NoError(t, err)
	require.True(t, found)
	require.Equal(t, in, out)
}

func TestLoad_CorruptValue(t *testing.T) {
	ctx := context.Background()
	kv := memory.New()
	require.NoError(t, kv.Set(ctx, store.KeyClients, "{not json"))

	var clients []domain.Client
	_, err := store.New(kv).Load(ctx, store.KeyClients, &clients)
	require.Error(t, err)
}

func TestResolveKey_ProfileScoping(t *testing.T) {
	ctx := store.WithProfile(context.Background(), "p1")

	require.Equal(t, "profile:p1:currentUser", store.ResolveKey(ctx, store.KeyCurrentUser))
	require.Equal(t, "profile:p1:currentAdmin", store.ResolveKey(ctx, store.KeyCurrentAdmin))
	require.Equal(t, "profile:p1:theme", store.ResolveKey(ctx, store.KeyTheme))
	require.Equal(t, store.KeyClients, store.ResolveKey(ctx, store.KeyClients))
	require.Equal(t, store.KeyCurrentUser, store.ResolveKey(context.Background(), store.KeyCurrentUser))
}

func TestProfilesAreIsolated(t *testing.T) {
	kv := memory.New()
	s := store.New(kv)
	a := store.WithProfile(context.Background(), "a")
	b := store.WithProfile(context.Background(), "b")

	require.NoError(t, s.SaveString(a, store.KeyTheme, "dark"))

	_, found, err := s.LoadString(b, store.KeyTheme)
	require.NoError(t, err)
	require.False(t, found)

	require.NoError(t, s.Remove(b, store.KeyTheme))
	v, found, err := s.LoadString(a, store.KeyTheme)
	require.NoError(t, err)
	require.True(t, found)
	require.Equal(t, "dark", v)
	require.Equal(t, 1, kv.Len())
}

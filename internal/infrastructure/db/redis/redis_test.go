package redis

import (
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jovens-paroquia/membership/internal/infrastructure/identity"
)

func newTestClient(t *testing.T) (*redis.Client, *miniredis.Miniredis) {
	t.Helper()

	mr, err := miniredis.Run()
	if err != nil {
		t.Fatalf("miniredis run failed: %v", err)
	}
	rdb := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() {
		_ = rdb.Close()
		mr.Close()
	})
	return rdb, mr
}

func testKey(b byte) [32]byte {
	var k [32]byte
	for i := range k {
		k[i] = b
	}
	return k
}

func TestConnect(t *testing.T) {
	mr := miniredis.RunT(t)

	client, err := Connect(context.Background(), Config{Addr: mr.Addr()})
	require.NoError(t, err)
	_ = client.Close()

	_, err = Connect(context.Background(), Config{Addr: "127.0.0.1:1", Timeout: 200 * time.Millisecond})
	assert.Error(t, err)
}

// ---------------------------------------------------------------------------
// SessionStore
// ---------------------------------------------------------------------------

func TestSessionStore_EmptyLoad(t *testing.T) {
	rdb, _ := newTestClient(t)
	store := NewSessionStore(rdb, "app", testKey(1))

	user, err := store.Load(context.Background())

	require.NoError(t, err)
	assert.Nil(t, user)
}

func TestSessionStore_SaveLoadClear(t *testing.T) {
	rdb, mr := newTestClient(t)
	store := NewSessionStore(rdb, "app", testKey(1))
	ctx := context.Background()
	want := identity.PersistedUser{
		UserID:       "uid-1",
		Email:        "ana@example.com",
		RefreshToken: "refresh-secret",
		ExpiresAt:    time.Date(2026, 1, 2, 3, 4, 5, 0, time.UTC),
	}

	require.NoError(t, store.Save(ctx, want))

	raw, err := mr.Get("session:app:current")
	require.NoError(t, err)
	assert.NotContains(t, raw, "refresh-secret", "refresh token must not be stored in clear")
	assert.True(t, mr.TTL("session:app:current") > 0)

	got, err := store.Load(ctx)
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Equal(t, want.UserID, got.UserID)
	assert.Equal(t, want.RefreshToken, got.RefreshToken)
	assert.True(t, want.ExpiresAt.Equal(got.ExpiresAt))

	require.NoError(t, store.Clear(ctx))
	require.NoError(t, store.Clear(ctx))
	got, err = store.Load(ctx)
	require.NoError(t, err)
	assert.Nil(t, got)
}

func TestSessionStore_WrongKey(t *testing.T) {
	rdb, _ := newTestClient(t)
	ctx := context.Background()
	require.NoError(t, NewSessionStore(rdb, "app", testKey(1)).Save(ctx, identity.PersistedUser{UserID: "u"}))

	_, err := NewSessionStore(rdb, "app", testKey(2)).Load(ctx)

	assert.ErrorIs(t, err, ErrSealedSession)
}

func TestSessionStore_TruncatedPayload(t *testing.T) {
	rdb, mr := newTestClient(t)
	require.NoError(t, mr.Set("session:app:current", "short"))

	_, err := NewSessionStore(rdb, "app", testKey(1)).Load(context.Background())

	assert.ErrorIs(t, err, ErrSealedSession)
}

func TestSessionStore_IsolatedPerApp(t *testing.T) {
	rdb, _ := newTestClient(t)
	ctx := context.Background()
	require.NoError(t, NewSessionStore(rdb, "a", testKey(1)).Save(ctx, identity.PersistedUser{UserID: "u"}))

	got, err := NewSessionStore(rdb, "b", testKey(1)).Load(ctx)

	require.NoError(t, err)
	assert.Nil(t, got)
}

// ---------------------------------------------------------------------------
// BootstrapCredential
// ---------------------------------------------------------------------------

func TestBootstrapCredential_ConsumedOnce(t *testing.T) {
	rdb, mr := newTestClient(t)
	require.NoError(t, mr.Set(BootstrapKey("app"), "custom-token"))
	cred := NewBootstrapCredential(rdb, "app")
	ctx := context.Background()

	first, err := cred.Take(ctx)
	require.NoError(t, err)
	second, err := cred.Take(ctx)
	require.NoError(t, err)

	assert.Equal(t, "custom-token", first)
	assert.Empty(t, second)
	assert.False(t, mr.Exists(BootstrapKey("app")))
}

func TestBootstrapCredential_ConnectionError(t *testing.T) {
	rdb := redis.NewClient(&redis.Options{Addr: "127.0.0.1:1", MaxRetries: -1})
	t.Cleanup(func() { _ = rdb.Close() })

	_, err := NewBootstrapCredential(rdb, "app").Take(context.Background())

	assert.Error(t, err)
}

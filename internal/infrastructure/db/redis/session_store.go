package redis

import (
	"context"
	"crypto/rand"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"time"

	"github.com/redis/go-redis/v9"
	"golang.org/x/crypto/nacl/secretbox"

	"github.com/jovens-paroquia/membership/internal/infrastructure/identity"
)

const (
	sessionTTL = 30 * 24 * time.Hour
	nonceSize  = 24
)

// ErrSealedSession is returned when a stored session cannot be opened with the
// configured key.
var ErrSealedSession = errors.New("stored session cannot be opened")

// SessionStore keeps the signed-in user of one portal instance in Redis. The
// payload holds a refresh token, so it is sealed with secretbox before it is
// written.
// Key format: session:<app_id>:current
type SessionStore struct {
	client *redis.Client
	key    string
	seal   [32]byte
}

// NewSessionStore creates a SessionStore for appID sealed with key.
func NewSessionStore(client *redis.Client, appID string, key [32]byte) *SessionStore {
	return &SessionStore{
		client: client,
		key:    fmt.Sprintf("session:%s:current", appID),
		seal:   key,
	}
}

// Load returns the stored user, or nil when none is stored.
func (s *SessionStore) Load(ctx context.Context) (*identity.PersistedUser, error) {
	raw, err := s.client.Get(ctx, s.key).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("load session: %w", err)
	}
	if len(raw) < nonceSize {
		return nil, ErrSealedSession
	}

	var nonce [nonceSize]byte
	copy(nonce[:], raw[:nonceSize])
	plain, ok := secretbox.Open(nil, raw[nonceSize:], &nonce, &s.seal)
	if !ok {
		return nil, ErrSealedSession
	}

	var user identity.PersistedUser
	if err := json.Unmarshal(plain, &user); err != nil {
		return nil, fmt.Errorf("decode session: %w", err)
	}
	return &user, nil
}

// Save replaces the stored user.
func (s *SessionStore) Save(ctx context.Context, user identity.PersistedUser) error {
	plain, err := json.Marshal(user)
	if err != nil {
		return fmt.Errorf("encode session: %w", err)
	}

	var nonce [nonceSize]byte
	if _, err := io.ReadFull(rand.Reader, nonce[:]); err != nil {
		return fmt.Errorf("session nonce: %w", err)
	}
	sealed := secretbox.Seal(nonce[:], plain, &nonce, &s.seal)

	if err := s.client.Set(ctx, s.key, sealed, sessionTTL).Err(); err != nil {
		return fmt.Errorf("save session: %w", err)
	}
	return nil
}

// Clear removes the stored user. Clearing an empty store is not an error.
func (s *SessionStore) Clear(ctx context.Context) error {
	if err := s.client.Del(ctx, s.key).Err(); err != nil {
		return fmt.Errorf("clear session: %w", err)
	}
	return nil
}

package identity

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/jovens-paroquia/membership/internal/core/domain"
	"github.com/jovens-paroquia/membership/internal/core/ports"
)

// PersistedUser is the signed-in state kept across restarts.
type PersistedUser struct {
	UserID       string    `json:"user_id"`
	Email        string    `json:"email,omitempty"`
	RefreshToken string    `json:"refresh_token"`
	ExpiresAt    time.Time `json:"expires_at"`
}

// SessionPersistence stores the signed-in user. Load returns nil, nil when
// nothing is stored.
type SessionPersistence interface {
	Load(ctx context.Context) (*PersistedUser, error)
	Save(ctx context.Context, user PersistedUser) error
	Clear(ctx context.Context) error
}

var _ ports.IdentityGateway = (*Gateway)(nil)

// Gateway implements ports.IdentityGateway on top of Client. It keeps the
// current user and reports changes to subscribers on the scheduler, never on
// the caller's goroutine.
type Gateway struct {
	client *Client
	store  SessionPersistence
	sched  ports.Scheduler
	log    zerolog.Logger

	mu      sync.Mutex
	current *domain.Account
	subs    map[uuid.UUID]ports.UserChangedFunc
}

// NewGateway returns a Gateway. store may be nil to keep sessions in memory only.
func NewGateway(client *Client, store SessionPersistence, sched ports.Scheduler, log zerolog.Logger) *Gateway {
	return &Gateway{
		client: client,
		store:  store,
		sched:  sched,
		log:    log,
		subs:   make(map[uuid.UUID]ports.UserChangedFunc),
	}
}

// Restore reloads a persisted session. A refresh token the provider rejects is
// discarded and the gateway starts signed out.
func (g *Gateway) Restore(ctx context.Context) error {
	if g.store == nil {
		return nil
	}
	saved, err := g.store.Load(ctx)
	if err != nil {
		return fmt.Errorf("restore session: %w", err)
	}
	if saved == nil {
		return nil
	}

	creds, err := g.client.Refresh(ctx, saved.RefreshToken)
	if err != nil {
		if domain.GatewayCode(err) == "" {
			return fmt.Errorf("restore session: %w", err)
		}
		g.log.Warn().Err(err).Str("user_id", saved.UserID).Msg("stored session rejected, starting signed out")
		if clearErr := g.store.Clear(ctx); clearErr != nil {
			g.log.Warn().Err(clearErr).Msg("failed to clear stored session")
		}
		return nil
	}
	if creds.LocalID == "" {
		creds.LocalID = saved.UserID
	}
	if creds.Email == "" {
		creds.Email = saved.Email
	}

	_, err = g.establish(ctx, creds)
	return err
}

func (g *Gateway) SignInWithPassword(ctx context.Context, email, password string) (*domain.Account, error) {
	creds, err := g.client.SignInWithPassword(ctx, email, password)
	if err != nil {
		return nil, err
	}
	return g.establish(ctx, creds)
}

func (g *Gateway) SignInWithCustomToken(ctx context.Context, token string) (*domain.Account, error) {
	creds, err := g.client.SignInWithCustomToken(ctx, token)
	if err != nil {
		return nil, err
	}
	return g.establish(ctx, creds)
}

// CreateAccountWithPassword creates the account and signs it in.
func (g *Gateway) CreateAccountWithPassword(ctx context.Context, email, password string) (*domain.Account, error) {
	creds, err := g.client.SignUp(ctx, email, password)
	if err != nil {
		return nil, err
	}
	return g.establish(ctx, creds)
}

func (g *Gateway) SendPasswordResetEmail(ctx context.Context, email string) error {
	return g.client.SendPasswordResetEmail(ctx, email)
}

// SignOut forgets the current user. If the stored session cannot be removed
// the user stays signed in.
func (g *Gateway) SignOut(ctx context.Context) error {
	if g.store != nil {
		if err := g.store.Clear(ctx); err != nil {
			return &domain.GatewayError{Err: fmt.Errorf("sign out: %w", err)}
		}
	}
	g.setCurrent(nil)
	return nil
}

// OnUserChanged subscribes fn. fn first receives the current state, then every change.
func (g *Gateway) OnUserChanged(fn ports.UserChangedFunc) func() {
	id := uuid.New()

	g.mu.Lock()
	g.subs[id] = fn
	current := cloneAccount(g.current)
	g.mu.Unlock()

	g.deliver(id, fn, current)

	return func() {
		g.mu.Lock()
		delete(g.subs, id)
		g.mu.Unlock()
	}
}

// CurrentUser returns the signed-in account or nil.
func (g *Gateway) CurrentUser() *domain.Account {
	g.mu.Lock()
	defer g.mu.Unlock()
	return cloneAccount(g.current)
}

func (g *Gateway) establish(ctx context.Context, creds *Credentials) (*domain.Account, error) {
	acct := &domain.Account{ID: creds.LocalID, Email: creds.Email}

	var expiresAt time.Time
	if creds.IDToken != "" {
		claims, err := readIDToken(creds.IDToken)
		switch {
		case err == nil:
			if acct.ID == "" {
				acct.ID = claims.UserID
			}
			if acct.Email == "" {
				acct.Email = claims.Email
			}
			expiresAt = claims.ExpiresAt
		case acct.ID == "":
			return nil, &domain.GatewayError{Err: err}
		default:
			g.log.Debug().Err(err).Msg("id token unreadable, using response fields")
		}
	}
	if acct.ID == "" {
		return nil, &domain.GatewayError{Err: fmt.Errorf("provider returned no account id")}
	}

	if g.store != nil && creds.RefreshToken != "" {
		err := g.store.Save(ctx, PersistedUser{
			UserID:       acct.ID,
			Email:        acct.Email,
			RefreshToken: creds.RefreshToken,
			ExpiresAt:    expiresAt,
		})
		if err != nil {
			g.log.Warn().Err(err).Str("user_id", acct.ID).Msg("failed to persist session")
		}
	}

	g.setCurrent(acct)
	return cloneAccount(acct), nil
}

// setCurrent records the user and notifies subscribers when it actually changed.
func (g *Gateway) setCurrent(acct *domain.Account) {
	g.mu.Lock()
	if sameAccount(g.current, acct) {
		g.current = cloneAccount(acct)
		g.mu.Unlock()
		return
	}
	g.current = cloneAccount(acct)
	subs := make(map[uuid.UUID]ports.UserChangedFunc, len(g.subs))
	for id, fn := range g.subs {
		subs[id] = fn
	}
	g.mu.Unlock()

	for id, fn := range subs {
		g.deliver(id, fn, cloneAccount(acct))
	}
}

func (g *Gateway) deliver(id uuid.UUID, fn ports.UserChangedFunc, user *domain.Account) {
	g.sched.Post(func() {
		g.mu.Lock()
		_, live := g.subs[id]
		g.mu.Unlock()
		if live {
			fn(user)
		}
	})
}

func sameAccount(a, b *domain.Account) bool {
	if a == nil || b == nil {
		return a == nil && b == nil
	}
	return a.ID == b.ID
}

func cloneAccount(a *domain.Account) *domain.Account {
	if a == nil {
		return nil
	}
	cp := *a
	return &cp
}

package service

import (
	"context"
	"sync"

	"github.com/rs/zerolog"

	"github.com/jovens-paroquia/membership/internal/core/domain"
	"github.com/jovens-paroquia/membership/internal/core/ports"
)

// SessionController owns the session and is the only component that navigates
// in response to authentication changes.
type SessionController struct {
	session   *Session
	gateway   ports.IdentityGateway
	navigator ports.Navigator
	scheduler ports.Scheduler
	bootstrap ports.CredentialSource
	log       zerolog.Logger

	initOnce    sync.Once
	mu          sync.Mutex
	unsubscribe func()
}

// NewSessionController wires a controller. bootstrap may be nil.
func NewSessionController(
	session *Session,
	gateway ports.IdentityGateway,
	navigator ports.Navigator,
	scheduler ports.Scheduler,
	bootstrap ports.CredentialSource,
	log zerolog.Logger,
) *SessionController {
	return &SessionController{
		session:   session,
		gateway:   gateway,
		navigator: navigator,
		scheduler: scheduler,
		bootstrap: bootstrap,
		log:       log,
	}
}

// Initialize exchanges a pending bootstrap credential and subscribes to
// user-changed notifications. Only the first call has any effect.
func (c *SessionController) Initialize(ctx context.Context) {
	c.initOnce.Do(func() {
		c.exchangeBootstrapCredential(ctx)

		unsubscribe := c.gateway.OnUserChanged(c.onUserChanged)
		c.mu.Lock()
		c.unsubscribe = unsubscribe
		c.mu.Unlock()
	})
}

// Close drops the user-changed subscription.
func (c *SessionController) Close() {
	c.mu.Lock()
	unsubscribe := c.unsubscribe
	c.unsubscribe = nil
	c.mu.Unlock()
	if unsubscribe != nil {
		unsubscribe()
	}
}

func (c *SessionController) exchangeBootstrapCredential(ctx context.Context) {
	if c.bootstrap == nil {
		return
	}
	token, err := c.bootstrap.Take(ctx)
	if err != nil {
		c.log.Warn().Err(err).Msg("bootstrap credential unavailable")
		return
	}
	if token == "" {
		return
	}
	acct, err := c.gateway.SignInWithCustomToken(ctx, token)
	if err != nil {
		c.log.Error().Err(err).Msg("bootstrap credential exchange failed, continuing anonymously")
		return
	}
	c.log.Info().Str("user_id", acct.ID).Msg("signed in with bootstrap credential")
}

// onUserChanged defers the state update by one scheduling turn so it observes
// everything the triggering call's continuation has already written.
func (c *SessionController) onUserChanged(user *domain.Account) {
	var u *domain.Account
	if user != nil {
		cp := *user
		u = &cp
	}
	c.scheduler.Post(func() { c.applyUser(u) })
}

func (c *SessionController) applyUser(user *domain.Account) {
	c.session.applyUser(user)

	if user != nil {
		c.log.Info().Str("user_id", user.ID).Msg("user signed in")
		c.navigator.Navigate(domain.PageProfile)
		return
	}

	c.log.Info().Msg("user signed out")
	// Leave an in-progress login alone until the provider confirms.
	if c.navigator.Current() != domain.PageLogin {
		c.navigator.Navigate(domain.PageHome)
	}
}

// SignIn authenticates with email and password. The outcome is returned and
// also recorded on the session; navigation follows the user-changed
// notification, not this call.
func (c *SessionController) SignIn(ctx context.Context, email, password string) error {
	c.session.setError("")
	c.session.beginAuth()

	var acct *domain.Account
	defer func() { c.session.endAuth(acct) }()

	a, err := c.gateway.SignInWithPassword(ctx, email, password)
	if err != nil {
		code := domain.GatewayCode(err)
		c.log.Warn().Err(err).Str("code", code).Msg("sign-in failed")
		msg := domain.SignInMessage(code)
		c.session.setError(msg)
		return &domain.SignInError{Code: code, Message: msg, Err: err}
	}
	acct = a
	return nil
}

// SignUp creates an account with only email and password.
func (c *SessionController) SignUp(ctx context.Context, email, password string) error {
	c.session.setError("")
	c.session.beginAuth()

	var acct *domain.Account
	defer func() { c.session.endAuth(acct) }()

	if len(password) < domain.MinPasswordLength {
		c.session.setError(domain.MsgPasswordTooShort)
		return &domain.ValidationError{Message: domain.MsgPasswordTooShort}
	}

	a, err := c.gateway.CreateAccountWithPassword(ctx, email, password)
	if err != nil {
		code := domain.GatewayCode(err)
		c.log.Warn().Err(err).Str("code", code).Msg("sign-up failed")
		msg := domain.SignUpMessage(code)
		c.session.setError(msg)
		return &domain.AccountCreationError{Code: code, Message: msg, Err: err}
	}
	acct = a
	return nil
}

// SignOut ends the session. On failure the current user is kept.
func (c *SessionController) SignOut(ctx context.Context) error {
	c.session.setError("")
	if err := c.gateway.SignOut(ctx); err != nil {
		c.log.Error().Err(err).Msg("sign-out failed")
		c.session.setError(domain.MsgSignOutFail)
		return &domain.SignOutError{Message: domain.MsgSignOutFail, Err: err}
	}
	return nil
}

// Snapshot returns the session together with the active page.
func (c *SessionController) Snapshot() domain.SessionSnapshot {
	snap := c.session.Snapshot()
	snap.Page = c.navigator.Current()
	return snap
}

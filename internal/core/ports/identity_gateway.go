package ports

import (
	"context"

	"github.com/jovens-paroquia/membership/internal/core/domain"
)

// UserChangedFunc receives the current account, or nil after sign-out.
type UserChangedFunc func(user *domain.Account)

// IdentityGateway is the external authentication service.
//
// Failures carry a *domain.GatewayError. Sign-in style calls also change the
// gateway's current user, which is reported to subscribers asynchronously and
// independently of the call's own return.
type IdentityGateway interface {
	SignInWithPassword(ctx context.Context, email, password string) (*domain.Account, error)
	SignInWithCustomToken(ctx context.Context, token string) (*domain.Account, error)
	CreateAccountWithPassword(ctx context.Context, email, password string) (*domain.Account, error)
	SendPasswordResetEmail(ctx context.Context, email string) error
	SignOut(ctx context.Context) error

	// OnUserChanged registers fn. fn is called once with the current state and
	// then once per actual change. The returned func removes the subscription.
	OnUserChanged(fn UserChangedFunc) (unsubscribe func())
}

// CredentialSource yields a one-time bootstrap credential. An empty string means none.
type CredentialSource interface {
	Take(ctx context.Context) (string, error)
}

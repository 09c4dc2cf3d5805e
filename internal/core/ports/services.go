package ports

import (
	"context"

	"github.com/jovens-paroquia/membership/internal/core/domain"
)

// SessionService is what the view needs from the session controller.
type SessionService interface {
	SignIn(ctx context.Context, email, password string) error
	SignUp(ctx context.Context, email, password string) error
	SignOut(ctx context.Context) error
	Snapshot() domain.SessionSnapshot
}

// Validator checks the validate struct tags of a form. Failures are
// *domain.ValidationError.
type Validator interface {
	Validate(i any) error
}

// RegistrationService registers a new member.
type RegistrationService interface {
	Register(ctx context.Context, profile domain.UserProfile, password string) error
	Status() domain.FlowStatus
}

// PasswordResetService requests reset emails.
type PasswordResetService interface {
	RequestReset(ctx context.Context, email string) error
	Status() domain.FlowStatus
}

// ProfileService reads a signed-in member's profile.
type ProfileService interface {
	Current(ctx context.Context, userID string) (*domain.ProfileRecord, error)
}

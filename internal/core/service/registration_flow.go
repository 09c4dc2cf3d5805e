package service

import (
	"context"
	"errors"
	"time"

	"github.com/rs/zerolog"

	"github.com/jovens-paroquia/membership/internal/core/domain"
	"github.com/jovens-paroquia/membership/internal/core/ports"
	"github.com/jovens-paroquia/membership/pkg/logger"
)

// RegistrationFlow creates an identity account and then its profile record.
// The two writes are not transactional: when the profile write fails the
// account stays behind without a profile and a *domain.ProfileWriteError is
// returned.
type RegistrationFlow struct {
	session *Session
	gateway ports.IdentityGateway
	store   ports.ProfileStore
	forms   ports.Validator
	appID   string
	now     func() time.Time
	log     zerolog.Logger

	status flowStatus
}

// NewRegistrationFlow returns a RegistrationFlow writing profiles under appID's
// namespace. forms may be nil, in which case only the password is checked.
func NewRegistrationFlow(
	session *Session,
	gateway ports.IdentityGateway,
	store ports.ProfileStore,
	forms ports.Validator,
	appID string,
	log zerolog.Logger,
) *RegistrationFlow {
	return &RegistrationFlow{
		session: session,
		gateway: gateway,
		store:   store,
		forms:   forms,
		appID:   appID,
		now:     time.Now,
		log:     log,
	}
}

// Register creates the account for profile.Email with password and stores the
// profile under the new account id. The outcome is recorded in Status and also
// returned.
func (f *RegistrationFlow) Register(ctx context.Context, profile domain.UserProfile, password string) error {
	f.status.begin()

	if err := f.validate(profile); err != nil {
		f.status.fail(err.Message)
		return err
	}
	if len(password) < domain.MinPasswordLength {
		f.status.fail(domain.MsgPasswordTooShort)
		return &domain.ValidationError{Message: domain.MsgPasswordTooShort}
	}

	f.session.beginAuth()
	var acct *domain.Account
	defer func() { f.session.endAuth(acct) }()

	created, err := f.gateway.CreateAccountWithPassword(ctx, profile.Email, password)
	if err != nil {
		code := domain.GatewayCode(err)
		msg := domain.RegistrationMessage(code)
		f.log.Warn().Err(err).Str("code", code).Str("email", logger.MaskEmail(profile.Email)).Msg("account creation failed")
		f.status.fail(msg)
		return &domain.AccountCreationError{Code: code, Message: msg, Err: err}
	}
	acct = created

	record := profile.WithoutPassword(f.now().UTC())
	if err := f.store.UpsertDocument(ctx, domain.ProfilesPath(f.appID), created.ID, record.Fields()); err != nil {
		f.log.Error().Err(err).
			Str("account_id", created.ID).
			Msg("profile write failed, account exists without profile")
		f.status.fail(domain.MsgProfileWriteFail)
		return &domain.ProfileWriteError{AccountID: created.ID, Message: domain.MsgProfileWriteFail, Err: err}
	}

	f.log.Info().Str("account_id", created.ID).Msg("member registered")
	f.status.succeed(domain.MsgRegistered)
	return nil
}

func (f *RegistrationFlow) validate(profile domain.UserProfile) *domain.ValidationError {
	if f.forms == nil {
		return nil
	}
	err := f.forms.Validate(&profile)
	if err == nil {
		return nil
	}
	var ve *domain.ValidationError
	if errors.As(err, &ve) {
		return ve
	}
	return &domain.ValidationError{Message: err.Error()}
}

// Status returns the current registration status.
func (f *RegistrationFlow) Status() domain.FlowStatus {
	return f.status.snapshot()
}

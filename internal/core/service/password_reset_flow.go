package service

import (
	"context"
	"strings"

	"github.com/rs/zerolog"

	"github.com/jovens-paroquia/membership/internal/core/domain"
	"github.com/jovens-paroquia/membership/internal/core/ports"
	"github.com/jovens-paroquia/membership/pkg/logger"
)

// PasswordResetFlow asks the identity provider to email a reset link.
type PasswordResetFlow struct {
	gateway ports.IdentityGateway
	log     zerolog.Logger

	status flowStatus
}

func NewPasswordResetFlow(gateway ports.IdentityGateway, log zerolog.Logger) *PasswordResetFlow {
	return &PasswordResetFlow{gateway: gateway, log: log}
}

// RequestReset sends a reset link to email. On success the caller should clear
// its email input.
func (f *PasswordResetFlow) RequestReset(ctx context.Context, email string) error {
	f.status.begin()

	email = strings.TrimSpace(email)
	if email == "" {
		f.status.fail(domain.MsgEmailRequired)
		return &domain.ValidationError{Message: domain.MsgEmailRequired}
	}

	if err := f.gateway.SendPasswordResetEmail(ctx, email); err != nil {
		code := domain.GatewayCode(err)
		msg := domain.ResetMessage(code)
		f.log.Warn().Err(err).Str("code", code).Str("email", logger.MaskEmail(email)).Msg("password reset request failed")
		f.status.fail(msg)
		return &domain.ResetError{Code: code, Message: msg, Err: err}
	}

	f.status.succeed(domain.MsgResetLinkSent)
	return nil
}

func (f *PasswordResetFlow) Status() domain.FlowStatus {
	return f.status.snapshot()
}

package domain

import (
	"errors"
	"fmt"
)

var (
	ErrNotAuthenticated = errors.New("not authenticated")
	ErrProfileNotFound  = errors.New("profile not found")
)

// ValidationError is a local, pre-network rejection of user input.
type ValidationError struct {
	Message string
}

func (e *ValidationError) Error() string { return e.Message }

// GatewayError is a failure reported by the identity provider.
// Code uses the "auth/..." vocabulary; it is empty for transport failures.
type GatewayError struct {
	Code string
	Err  error
}

func (e *GatewayError) Error() string {
	switch {
	case e.Code != "" && e.Err != nil:
		return fmt.Sprintf("identity gateway: %s: %v", e.Code, e.Err)
	case e.Code != "":
		return "identity gateway: " + e.Code
	case e.Err != nil:
		return fmt.Sprintf("identity gateway: %v", e.Err)
	}
	return "identity gateway: unknown error"
}

func (e *GatewayError) Unwrap() error { return e.Err }

// SignInError reports a rejected email and password sign-in. Message is the
// text shown on the login form.
type SignInError struct {
	Code    string
	Message string
	Err     error
}

func (e *SignInError) Error() string { return e.Message }

func (e *SignInError) Unwrap() error { return e.Err }

// AccountCreationError reports that the identity provider refused to create an account.
// The profile store is never written when this is returned.
type AccountCreationError struct {
	Code    string
	Message string
	Err     error
}

func (e *AccountCreationError) Error() string { return e.Message }

func (e *AccountCreationError) Unwrap() error { return e.Err }

// ProfileWriteError reports that the account was created but its profile record
// could not be written. The account is left in place (orphan account).
type ProfileWriteError struct {
	AccountID string
	Message   string
	Err       error
}

func (e *ProfileWriteError) Error() string { return e.Message }

func (e *ProfileWriteError) Unwrap() error { return e.Err }

// ResetError reports that the provider did not send a password-reset email.
type ResetError struct {
	Code    string
	Message string
	Err     error
}

func (e *ResetError) Error() string { return e.Message }

func (e *ResetError) Unwrap() error { return e.Err }

// SignOutError reports a failed sign-out; the session is left unchanged.
type SignOutError struct {
	Message string
	Err     error
}

func (e *SignOutError) Error() string { return e.Message }

func (e *SignOutError) Unwrap() error { return e.Err }

// GatewayCode extracts the provider error code from err, if any.
func GatewayCode(err error) string {
	var ge *GatewayError
	if errors.As(err, &ge) {
		return ge.Code
	}
	return ""
}

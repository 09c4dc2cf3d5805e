package handler

import (
	"errors"
	"net/http"

	"github.com/jovens-paroquia/membership/internal/core/domain"
)

// HTTPStatus maps a domain error to the status code the API answers with.
// Errors it does not recognise yield 500.
func HTTPStatus(err error) int {
	var (
		validation *domain.ValidationError
		signIn     *domain.SignInError
		creation   *domain.AccountCreationError
		profile    *domain.ProfileWriteError
		reset      *domain.ResetError
		signOut    *domain.SignOutError
		gateway    *domain.GatewayError
	)

	switch {
	case err == nil:
		return http.StatusOK
	case errors.As(err, &validation):
		return http.StatusUnprocessableEntity
	case errors.Is(err, domain.ErrNotAuthenticated):
		return http.StatusUnauthorized
	case errors.Is(err, domain.ErrProfileNotFound):
		return http.StatusNotFound
	case errors.As(err, &signIn):
		return signInStatus(signIn.Code)
	case errors.As(err, &creation):
		if creation.Code == domain.CodeEmailInUse {
			return http.StatusConflict
		}
		return providerStatus(creation.Code)
	case errors.As(err, &profile):
		return http.StatusBadGateway
	case errors.As(err, &reset):
		return providerStatus(reset.Code)
	case errors.As(err, &signOut):
		return http.StatusBadGateway
	case errors.As(err, &gateway):
		return providerStatus(gateway.Code)
	}
	return http.StatusInternalServerError
}

// providerStatus maps an identity provider code. An empty code means the
// provider could not be reached.
func providerStatus(code string) int {
	switch code {
	case "":
		return http.StatusBadGateway
	case domain.CodeUserNotFound:
		return http.StatusNotFound
	case domain.CodeWrongPassword, domain.CodeInvalidCredential, domain.CodeUserDisabled, domain.CodeInvalidCustomToken:
		return http.StatusUnauthorized
	case domain.CodeInvalidEmail, domain.CodeWeakPassword:
		return http.StatusUnprocessableEntity
	case domain.CodeTooManyRequests:
		return http.StatusTooManyRequests
	}
	return http.StatusBadRequest
}

// signInStatus answers every rejected login with 401, except when the provider
// throttled the caller or could not be reached.
func signInStatus(code string) int {
	switch code {
	case "":
		return http.StatusBadGateway
	case domain.CodeTooManyRequests:
		return http.StatusTooManyRequests
	}
	return http.StatusUnauthorized
}

// HTTPMessage returns the user-facing message carried by err, or "" when err
// has none that is safe to show.
func HTTPMessage(err error) string {
	var (
		validation *domain.ValidationError
		signIn     *domain.SignInError
		creation   *domain.AccountCreationError
		profile    *domain.ProfileWriteError
		reset      *domain.ResetError
		signOut    *domain.SignOutError
	)

	switch {
	case errors.As(err, &validation):
		return validation.Message
	case errors.As(err, &signIn):
		return signIn.Message
	case errors.As(err, &creation):
		return creation.Message
	case errors.As(err, &profile):
		return profile.Message
	case errors.As(err, &reset):
		return reset.Message
	case errors.As(err, &signOut):
		return signOut.Message
	case errors.Is(err, domain.ErrNotAuthenticated):
		return domain.MsgNotAuthenticated
	case errors.Is(err, domain.ErrProfileNotFound):
		return domain.MsgProfileNotFound
	}
	return ""
}

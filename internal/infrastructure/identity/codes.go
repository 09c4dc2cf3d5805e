package identity

import (
	"strings"

	"github.com/jovens-paroquia/membership/internal/core/domain"
)

var providerCodes = map[string]string{
	"EMAIL_NOT_FOUND":             domain.CodeUserNotFound,
	"USER_NOT_FOUND":              domain.CodeUserNotFound,
	"INVALID_PASSWORD":            domain.CodeWrongPassword,
	"INVALID_LOGIN_CREDENTIALS":   domain.CodeInvalidCredential,
	"EMAIL_EXISTS":                domain.CodeEmailInUse,
	"WEAK_PASSWORD":               domain.CodeWeakPassword,
	"INVALID_EMAIL":               domain.CodeInvalidEmail,
	"MISSING_EMAIL":               domain.CodeInvalidEmail,
	"TOO_MANY_ATTEMPTS_TRY_LATER": domain.CodeTooManyRequests,
	"USER_DISABLED":               domain.CodeUserDisabled,
	"INVALID_CUSTOM_TOKEN":        domain.CodeInvalidCustomToken,
}

// ProviderCode converts a REST error message such as
// "WEAK_PASSWORD : Password should be at least 6 characters" to an auth/* code.
func ProviderCode(message string) string {
	raw := strings.TrimSpace(message)
	if i := strings.Index(raw, ":"); i >= 0 {
		raw = strings.TrimSpace(raw[:i])
	}
	if code, ok := providerCodes[raw]; ok {
		return code
	}
	if raw == "" {
		return ""
	}
	return "auth/" + strings.ToLower(strings.ReplaceAll(raw, "_", "-"))
}

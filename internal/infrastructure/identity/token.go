package identity

import (
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// tokenClaims are the ID-token fields the gateway relies on.
type tokenClaims struct {
	UserID    string
	Email     string
	ExpiresAt time.Time
}

// readIDToken extracts claims without verifying the signature: the token comes
// straight from the provider over TLS in response to our own call.
func readIDToken(idToken string) (tokenClaims, error) {
	claims := jwt.MapClaims{}
	if _, _, err := jwt.NewParser().ParseUnverified(idToken, claims); err != nil {
		return tokenClaims{}, fmt.Errorf("read id token: %w", err)
	}

	var out tokenClaims
	if uid, ok := claims["user_id"].(string); ok {
		out.UserID = uid
	}
	if out.UserID == "" {
		sub, _ := claims.GetSubject()
		out.UserID = sub
	}
	if out.UserID == "" {
		return tokenClaims{}, errors.New("read id token: no subject")
	}
	out.Email, _ = claims["email"].(string)
	if exp, err := claims.GetExpirationTime(); err == nil && exp != nil {
		out.ExpiresAt = exp.Time
	}
	return out, nil
}

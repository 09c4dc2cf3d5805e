package domain

// SessionState represents where the session sits in the authentication lifecycle.
type SessionState string

const (
	SessionUnknown        SessionState = "unknown"
	SessionAuthenticating SessionState = "authenticating"
	SessionAuthenticated  SessionState = "authenticated"
	SessionAnonymous      SessionState = "anonymous"
)

// SessionSnapshot is a point-in-time copy of the process session.
type SessionSnapshot struct {
	State            SessionState `json:"state"`
	CurrentUserID    string       `json:"current_user_id,omitempty"`
	IsAuthenticating bool         `json:"is_authenticating"`
	LastError        string       `json:"last_error,omitempty"`
	Page             Destination  `json:"page"`
}

// Authenticated reports whether a user is signed in.
func (s SessionSnapshot) Authenticated() bool {
	return s.CurrentUserID != ""
}

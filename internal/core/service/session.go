package service

import (
	"sync"

	"github.com/jovens-paroquia/membership/internal/core/domain"
)

// Session is the process-wide record of who is signed in. Create one with
// NewSession at startup and inject it; the current user is only ever written
// by the session controller's user-changed handler.
type Session struct {
	mu       sync.Mutex
	userID   string
	state    domain.SessionState
	settled  domain.SessionState // last state established by a user-changed event
	inFlight int
	lastErr  string
}

// NewSession returns a session in the unknown state.
func NewSession() *Session {
	return &Session{state: domain.SessionUnknown, settled: domain.SessionUnknown}
}

// Snapshot returns a copy of the session. Page is left empty.
func (s *Session) Snapshot() domain.SessionSnapshot {
	s.mu.Lock()
	defer s.mu.Unlock()
	return domain.SessionSnapshot{
		State:            s.state,
		CurrentUserID:    s.userID,
		IsAuthenticating: s.inFlight > 0,
		LastError:        s.lastErr,
	}
}

func (s *Session) beginAuth() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.inFlight++
	s.state = domain.SessionAuthenticating
}

// endAuth closes an authentication bracket. acct is the account returned by a
// successful call, nil on failure. A success only settles the state when it
// cannot produce a user-changed event (same user already signed in).
func (s *Session) endAuth(acct *domain.Account) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.inFlight > 0 {
		s.inFlight--
	}
	if s.inFlight > 0 || s.state != domain.SessionAuthenticating {
		return
	}
	if acct == nil || (s.userID != "" && acct.ID == s.userID) {
		s.state = s.settled
	}
}

func (s *Session) applyUser(user *domain.Account) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if user != nil {
		s.userID = user.ID
		s.settled = domain.SessionAuthenticated
	} else {
		s.userID = ""
		s.settled = domain.SessionAnonymous
	}
	if s.inFlight == 0 {
		s.state = s.settled
	}
}

func (s *Session) setError(msg string) {
	s.mu.Lock()
	s.lastErr = msg
	s.mu.Unlock()
}

package identity

import (
	"context"
	"errors"
	"sync"

	"github.com/jovens-paroquia/membership/internal/core/ports"
)

// StaticCredential hands out a fixed token exactly once.
type StaticCredential struct {
	mu    sync.Mutex
	token string
}

func NewStaticCredential(token string) *StaticCredential {
	return &StaticCredential{token: token}
}

func (s *StaticCredential) Take(context.Context) (string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	token := s.token
	s.token = ""
	return token, nil
}

// FirstCredential asks each source in turn and returns the first token found.
// Source errors are only reported when no source produced a token.
type FirstCredential []ports.CredentialSource

func (f FirstCredential) Take(ctx context.Context) (string, error) {
	var errs []error
	for _, src := range f {
		if src == nil {
			continue
		}
		token, err := src.Take(ctx)
		if err != nil {
			errs = append(errs, err)
			continue
		}
		if token != "" {
			return token, nil
		}
	}
	return "", errors.Join(errs...)
}

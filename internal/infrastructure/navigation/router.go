// Package navigation tracks the page the view is showing.
package navigation

import (
	"sync"
	"time"

	"github.com/rs/zerolog"

	"github.com/jovens-paroquia/membership/internal/core/domain"
)

const historySize = 32

// Entry records one navigation.
type Entry struct {
	From domain.Destination `json:"from"`
	To   domain.Destination `json:"to"`
	At   time.Time          `json:"at"`
}

// Option configures a Router.
type Option func(*Router)

// WithHook registers fn to be called after every navigation.
func WithHook(fn func(from, to domain.Destination)) Option {
	return func(r *Router) { r.hooks = append(r.hooks, fn) }
}

// Router holds the active page. It is safe for concurrent use.
type Router struct {
	mu      sync.RWMutex
	current domain.Destination
	history []Entry
	hooks   []func(from, to domain.Destination)
	now     func() time.Time
	log     zerolog.Logger
}

// NewRouter returns a Router showing start.
func NewRouter(start domain.Destination, log zerolog.Logger, opts ...Option) *Router {
	r := &Router{
		current: domain.ResolvePath(string(start)),
		now:     time.Now,
		log:     log,
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// Navigate switches to dest. Unknown destinations fall back to home.
func (r *Router) Navigate(dest domain.Destination) {
	dest = domain.ResolvePath(string(dest))

	r.mu.Lock()
	from := r.current
	r.current = dest
	r.history = append(r.history, Entry{From: from, To: dest, At: r.now().UTC()})
	if len(r.history) > historySize {
		r.history = r.history[len(r.history)-historySize:]
	}
	hooks := r.hooks
	r.mu.Unlock()

	r.log.Debug().Str("from", string(from)).Str("to", string(dest)).Msg("navigate")
	for _, fn := range hooks {
		fn(from, dest)
	}
}

// Open resolves a view path and navigates to it.
func (r *Router) Open(path string) domain.Destination {
	dest := domain.ResolvePath(path)
	r.Navigate(dest)
	return dest
}

func (r *Router) Current() domain.Destination {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.current
}

// History returns the most recent navigations, oldest first.
func (r *Router) History() []Entry {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return append([]Entry(nil), r.history...)
}

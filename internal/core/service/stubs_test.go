package service

import (
	"context"
	"sync"
	"time"

	"github.com/jovens-paroquia/membership/internal/core/domain"
	"github.com/jovens-paroquia/membership/internal/core/ports"
)

// ---------------------------------------------------------------------------
// Identity gateway stub
// ---------------------------------------------------------------------------

type stubGateway struct {
	mu sync.Mutex

	signInErr      error
	signInErrFor   map[string]error // per email, overrides signInErr
	customTokenErr error
	createErr      error
	resetErr       error
	signOutErr     error

	// accounts created successfully, keyed by email
	accounts map[string]*domain.Account

	signInCalls      int
	customTokenCalls []string
	createCalls      int
	resetCalls       []string
	signOutCalls     int
	subscribers      []ports.UserChangedFunc
	unsubscribed     int
	// number of custom-token calls seen when the first subscription was made
	tokensAtSubscribe int

	// block, when set, is waited on inside SignInWithPassword. blockEmail
	// limits it to one email.
	block      chan struct{}
	blockEmail string
}

func newStubGateway() *stubGateway {
	return &stubGateway{accounts: make(map[string]*domain.Account)}
}

func (g *stubGateway) SignInWithPassword(_ context.Context, email, _ string) (*domain.Account, error) {
	g.mu.Lock()
	g.signInCalls++
	block := g.block
	if g.blockEmail != "" && g.blockEmail != email {
		block = nil
	}
	err := g.signInErr
	if e, ok := g.signInErrFor[email]; ok {
		err = e
	}
	g.mu.Unlock()

	if block != nil {
		<-block
	}
	if err != nil {
		return nil, err
	}
	return &domain.Account{ID: "uid-" + email, Email: email}, nil
}

func (g *stubGateway) SignInWithCustomToken(_ context.Context, token string) (*domain.Account, error) {
	g.mu.Lock()
	defer g.mu.Unlock()
	g.customTokenCalls = append(g.customTokenCalls, token)
	if g.customTokenErr != nil {
		return nil, g.customTokenErr
	}
	return &domain.Account{ID: "uid-custom"}, nil
}

func (g *stubGateway) CreateAccountWithPassword(_ context.Context, email, _ string) (*domain.Account, error) {
	g.mu.Lock()
	defer g.mu.Unlock()
	g.createCalls++
	if g.createErr != nil {
		return nil, g.createErr
	}
	acct := &domain.Account{ID: "uid-" + email, Email: email}
	g.accounts[email] = acct
	return acct, nil
}

func (g *stubGateway) SendPasswordResetEmail(_ context.Context, email string) error {
	g.mu.Lock()
	defer g.mu.Unlock()
	g.resetCalls = append(g.resetCalls, email)
	return g.resetErr
}

func (g *stubGateway) SignOut(context.Context) error {
	g.mu.Lock()
	defer g.mu.Unlock()
	g.signOutCalls++
	return g.signOutErr
}

func (g *stubGateway) OnUserChanged(fn ports.UserChangedFunc) func() {
	g.mu.Lock()
	defer g.mu.Unlock()
	if len(g.subscribers) == 0 {
		g.tokensAtSubscribe = len(g.customTokenCalls)
	}
	g.subscribers = append(g.subscribers, fn)
	return func() {
		g.mu.Lock()
		g.unsubscribed++
		g.mu.Unlock()
	}
}

// emit delivers a user-changed notification to every subscriber.
func (g *stubGateway) emit(user *domain.Account) {
	g.mu.Lock()
	subs := append([]ports.UserChangedFunc(nil), g.subscribers...)
	g.mu.Unlock()
	for _, fn := range subs {
		fn(user)
	}
}

func (g *stubGateway) networkCalls() int {
	g.mu.Lock()
	defer g.mu.Unlock()
	return g.signInCalls + len(g.customTokenCalls) + g.createCalls + len(g.resetCalls) + g.signOutCalls
}

func gatewayErr(code string) error {
	return &domain.GatewayError{Code: code}
}

// ---------------------------------------------------------------------------
// Profile store stub
// ---------------------------------------------------------------------------

type upsertCall struct {
	path   string
	key    string
	fields map[string]any
}

type stubProfileStore struct {
	upsertErr error
	upserts   []upsertCall
	docs      map[string]map[string]any
}

func newStubProfileStore() *stubProfileStore {
	return &stubProfileStore{docs: make(map[string]map[string]any)}
}

func (s *stubProfileStore) UpsertDocument(_ context.Context, path, key string, fields map[string]any) error {
	s.upserts = append(s.upserts, upsertCall{path: path, key: key, fields: fields})
	if s.upsertErr != nil {
		return s.upsertErr
	}
	s.docs[path+"/"+key] = fields
	return nil
}

func (s *stubProfileStore) FindDocument(_ context.Context, path, key string) (map[string]any, error) {
	doc, ok := s.docs[path+"/"+key]
	if !ok {
		return nil, domain.ErrProfileNotFound
	}
	return doc, nil
}

// ---------------------------------------------------------------------------
// Navigator and scheduler stubs
// ---------------------------------------------------------------------------

type stubNavigator struct {
	mu      sync.Mutex
	current domain.Destination
	history []domain.Destination
}

func newStubNavigator(start domain.Destination) *stubNavigator {
	return &stubNavigator{current: start}
}

func (n *stubNavigator) Navigate(dest domain.Destination) {
	n.mu.Lock()
	defer n.mu.Unlock()
	n.current = dest
	n.history = append(n.history, dest)
}

func (n *stubNavigator) Current() domain.Destination {
	n.mu.Lock()
	defer n.mu.Unlock()
	return n.current
}

func (n *stubNavigator) navigations() []domain.Destination {
	n.mu.Lock()
	defer n.mu.Unlock()
	return append([]domain.Destination(nil), n.history...)
}

// manualScheduler queues tasks until the test drains them, so a test can
// observe state between scheduling turns.
type manualScheduler struct {
	mu    sync.Mutex
	tasks []func()
}

func (s *manualScheduler) Post(task func()) {
	s.mu.Lock()
	s.tasks = append(s.tasks, task)
	s.mu.Unlock()
}

func (s *manualScheduler) PostAfter(_ time.Duration, task func()) {
	s.Post(task)
}

func (s *manualScheduler) pending() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.tasks)
}

// drain runs queued tasks, including ones queued while draining.
func (s *manualScheduler) drain() {
	for {
		s.mu.Lock()
		if len(s.tasks) == 0 {
			s.mu.Unlock()
			return
		}
		task := s.tasks[0]
		s.tasks = s.tasks[1:]
		s.mu.Unlock()
		task()
	}
}

type stubCredentials struct {
	token string
	err   error
	taken int
}

func (c *stubCredentials) Take(context.Context) (string, error) {
	c.taken++
	token := c.token
	c.token = ""
	return token, c.err
}

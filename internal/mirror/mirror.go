// Package mirror keeps a local, observable copy of the authenticated
// identity. It resolves the current session once at start, then follows
// the auth service's session-change events, merging the profile row into
// the identity on a best-effort basis.
package mirror

import (
	"context"
	"sync"

	"github.com/ngoiyaeric/dash/internal/authn"
	"github.com/ngoiyaeric/dash/internal/domain/repository"
	"github.com/ngoiyaeric/dash/internal/observability/logger"
)

// Identity is the mirrored principal. Profile is nil when the identity has
// no profile row yet or the fetch failed; the two cases are deliberately
// not distinguishable. A nil Profile never means unauthenticated.
type Identity struct {
	ID       string
	Email    string
	Metadata map[string]any
	Profile  *repository.Profile
}

// State is a snapshot of the mirrored auth state.
type State struct {
	Identity     *Identity
	Session      *authn.Session
	Loading      bool
	IsConfigured bool
}

// Deps contains the mirror's collaborators.
type Deps struct {
	Auth     authn.Service
	Profiles repository.ProfileRepository

	// TokenSource returns the session token the embedding UI has stored
	// (cookie, keychain). Empty means no prior session. Optional.
	TokenSource func() string
}

// Mirror owns the subscription lifecycle: acquire on Start, release on
// Close, exactly once each.
type Mirror struct {
	deps Deps

	mu          sync.Mutex
	state       State
	resolved    bool // first resolution done; Loading flips false once
	unsubscribe authn.Unsubscribe
	watchers    map[int]chan State
	nextWatcher int
}

// New builds a Mirror. Call Start before reading state.
func New(deps Deps) *Mirror {
	return &Mirror{
		deps: deps,
		state: State{
			Loading:      true,
			IsConfigured: deps.Auth != nil && deps.Auth.Configured(),
		},
		watchers: make(map[int]chan State),
	}
}

// Start performs the initial session resolution and subscribes to
// session-change events. In unconfigured (demo) mode the demo identity is
// applied synchronously; sign-in/sign-out still flow through the offline
// service's events.
func (m *Mirror) Start(ctx context.Context) {
	// Suscribir antes de resolver: si llega un evento durante el fetch
	// inicial gana la última escritura, ambas derivan del mismo backend.
	m.mu.Lock()
	if m.unsubscribe == nil && m.deps.Auth != nil {
		m.unsubscribe = m.deps.Auth.OnSessionChange(func(s *authn.Session) {
			m.resolve(context.Background(), s)
		})
	}
	m.mu.Unlock()

	if !m.state.IsConfigured {
		m.apply(demoSession(), demoIdentity())
		return
	}

	var token string
	if m.deps.TokenSource != nil {
		token = m.deps.TokenSource()
	}
	sess, err := m.deps.Auth.CurrentSession(ctx, token)
	if err != nil {
		sess = nil
	}
	m.resolve(ctx, sess)
}

// Close releases the session-change subscription. Safe to call multiple
// times and regardless of how the owner tears down.
func (m *Mirror) Close() {
	m.mu.Lock()
	unsub := m.unsubscribe
	m.unsubscribe = nil
	for id, ch := range m.watchers {
		close(ch)
		delete(m.watchers, id)
	}
	m.mu.Unlock()
	if unsub != nil {
		unsub()
	}
}

// State returns the current snapshot.
func (m *Mirror) State() State {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.state
}

// Watch returns a channel receiving each state change and a cancel func.
// The channel is closed on cancel or Close.
func (m *Mirror) Watch() (<-chan State, func()) {
	m.mu.Lock()
	defer m.mu.Unlock()
	id := m.nextWatcher
	m.nextWatcher++
	ch := make(chan State, 8)
	m.watchers[id] = ch
	var once sync.Once
	cancel := func() {
		once.Do(func() {
			m.mu.Lock()
			defer m.mu.Unlock()
			if c, ok := m.watchers[id]; ok {
				close(c)
				delete(m.watchers, id)
			}
		})
	}
	return ch, cancel
}

// SignIn authenticates and updates the mirrored state. In demo mode the
// identity is synthesized locally from the email.
func (m *Mirror) SignIn(ctx context.Context, email, password string) error {
	_, _, err := m.deps.Auth.SignInWithPassword(ctx, email, password)
	return err
}

// SignUp registers and updates the mirrored state.
func (m *Mirror) SignUp(ctx context.Context, email, password string) error {
	_, _, err := m.deps.Auth.SignUp(ctx, email, password)
	return err
}

// SignOut clears the mirrored state.
func (m *Mirror) SignOut(ctx context.Context) error {
	m.mu.Lock()
	var token string
	if m.state.Session != nil {
		token = m.state.Session.Token
	}
	m.mu.Unlock()
	return m.deps.Auth.SignOut(ctx, token)
}

// resolve deriva el estado a partir de una sesión: resuelve la identidad y
// mergea el perfil best-effort. Nunca retorna error; un fetch de perfil
// fallido deja Profile en nil.
func (m *Mirror) resolve(ctx context.Context, sess *authn.Session) {
	log := logger.From(ctx).With(logger.Component("mirror"), logger.Op("resolve"))

	if sess == nil {
		m.apply(nil, nil)
		return
	}

	ident := &Identity{ID: sess.UserID, Email: sess.Email}
	if u, err := m.deps.Auth.CurrentUser(ctx, sess.Token); err == nil {
		ident.ID = u.ID
		ident.Email = u.Email
		ident.Metadata = u.Metadata
	}

	if m.deps.Profiles != nil {
		prof, err := m.deps.Profiles.GetByID(ctx, ident.ID)
		if err != nil {
			// Best-effort: sin perfil no es no-autenticado
			log.Debug("profile fetch failed", logger.Err(err), logger.UserID(ident.ID))
		} else {
			ident.Profile = prof
		}
	}

	m.apply(sess, ident)
}

func (m *Mirror) apply(sess *authn.Session, ident *Identity) {
	m.mu.Lock()
	m.state.Session = sess
	m.state.Identity = ident
	if !m.resolved {
		m.resolved = true
		m.state.Loading = false
	}
	snapshot := m.state
	for _, ch := range m.watchers {
		select {
		case ch <- snapshot:
		default: // watcher lento: se pierde el snapshot intermedio
		}
	}
	m.mu.Unlock()
}

func demoSession() *authn.Session {
	return &authn.Session{
		Token:  "demo-session",
		UserID: authn.DemoUserID,
		Email:  authn.DemoEmail,
	}
}

func demoIdentity() *Identity {
	return &Identity{
		ID:       authn.DemoUserID,
		Email:    authn.DemoEmail,
		Metadata: map[string]any{"name": authn.DemoName},
	}
}

package authn

import (
	"context"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/ngoiyaeric/dash/internal/domain/repository"
)

// Demo identity used when no auth backend is configured.
const (
	DemoUserID = "demo-user"
	DemoEmail  = "demo@queuecx.com"
	DemoName   = "Demo User"
)

// offlineService synthesizes identities locally and never contacts a
// backend. Sign-in and sign-up accept any credentials and derive the
// display name from the email local-part.
type offlineService struct {
	mu      sync.Mutex
	session *Session
	idents  map[string]*repository.Identity // by user ID
	bus     *broadcaster
}

// NewOffline builds the demo-mode auth service.
func NewOffline() Service {
	s := &offlineService{
		idents: make(map[string]*repository.Identity),
		bus:    newBroadcaster(),
	}
	s.idents[DemoUserID] = demoIdentity()
	return s
}

func demoIdentity() *repository.Identity {
	return &repository.Identity{
		ID:        DemoUserID,
		Email:     DemoEmail,
		Metadata:  map[string]any{"name": DemoName},
		CreatedAt: time.Now(),
	}
}

func (s *offlineService) Configured() bool { return false }

func (s *offlineService) CurrentSession(ctx context.Context, token string) (*Session, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.session != nil && (token == "" || token == s.session.Token) {
		cp := *s.session
		return &cp, nil
	}
	return nil, ErrInvalidToken
}

func (s *offlineService) CurrentUser(ctx context.Context, token string) (*repository.Identity, error) {
	sess, err := s.CurrentSession(ctx, token)
	if err != nil {
		return nil, err
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	if ident, ok := s.idents[sess.UserID]; ok {
		cp := *ident
		return &cp, nil
	}
	return nil, ErrInvalidToken
}

func (s *offlineService) SignInWithPassword(ctx context.Context, email, password string) (*Session, *repository.Identity, error) {
	return s.synthesize(email)
}

func (s *offlineService) SignUp(ctx context.Context, email, password string) (*Session, *repository.Identity, error) {
	return s.synthesize(email)
}

// synthesize fabrica identidad y sesión locales a partir del email, sin
// tocar ningún servicio.
func (s *offlineService) synthesize(email string) (*Session, *repository.Identity, error) {
	email = normalizeEmail(email)
	if email == "" || !strings.Contains(email, "@") {
		return nil, nil, ErrInvalidCredentials
	}

	now := time.Now()
	ident := &repository.Identity{
		ID:        uuid.NewString(),
		Email:     email,
		Metadata:  map[string]any{"name": DisplayNameFromEmail(email)},
		CreatedAt: now,
	}
	sess := &Session{
		Token:     "offline-" + uuid.NewString(),
		UserID:    ident.ID,
		Email:     email,
		IssuedAt:  now,
		ExpiresAt: now.Add(168 * time.Hour),
	}

	s.mu.Lock()
	s.idents[ident.ID] = ident
	s.session = sess
	s.mu.Unlock()

	s.bus.emit(sess)
	return sess, ident, nil
}

func (s *offlineService) SignOut(ctx context.Context, token string) error {
	s.mu.Lock()
	s.session = nil
	s.mu.Unlock()
	s.bus.emit(nil)
	return nil
}

func (s *offlineService) OnSessionChange(fn func(*Session)) Unsubscribe {
	return s.bus.subscribe(fn)
}

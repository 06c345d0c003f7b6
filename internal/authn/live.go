package authn

import (
	"context"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/ngoiyaeric/dash/internal/domain/repository"
	"github.com/ngoiyaeric/dash/internal/email"
	"github.com/ngoiyaeric/dash/internal/observability/logger"
)

// LiveDeps contains dependencies for the live auth service.
type LiveDeps struct {
	Identities repository.IdentityRepository
	Profiles   repository.ProfileRepository
	Mailer     email.Mailer
	// SessionSecret signs session tokens (HS256).
	SessionSecret []byte
	SessionTTL    time.Duration
}

type liveService struct {
	deps LiveDeps
	bus  *broadcaster
}

// NewLive builds the live auth service backed by the row store.
func NewLive(deps LiveDeps) Service {
	if deps.SessionTTL <= 0 {
		deps.SessionTTL = 168 * time.Hour
	}
	return &liveService{deps: deps, bus: newBroadcaster()}
}

func (s *liveService) Configured() bool { return true }

func (s *liveService) CurrentSession(ctx context.Context, token string) (*Session, error) {
	if strings.TrimSpace(token) == "" {
		return nil, ErrInvalidToken
	}
	return parseSession(s.deps.SessionSecret, token)
}

func (s *liveService) CurrentUser(ctx context.Context, token string) (*repository.Identity, error) {
	sess, err := s.CurrentSession(ctx, token)
	if err != nil {
		return nil, err
	}
	ident, err := s.deps.Identities.GetByID(ctx, sess.UserID)
	if err != nil {
		if repository.IsNotFound(err) {
			return nil, ErrInvalidToken
		}
		return nil, err
	}
	return ident, nil
}

func (s *liveService) SignInWithPassword(ctx context.Context, emailAddr, password string) (*Session, *repository.Identity, error) {
	log := logger.From(ctx).With(logger.Layer("service"), logger.Component("authn"), logger.Op("SignInWithPassword"))

	emailAddr = normalizeEmail(emailAddr)
	if emailAddr == "" || password == "" {
		return nil, nil, ErrInvalidCredentials
	}

	ident, err := s.deps.Identities.GetByEmail(ctx, emailAddr)
	if err != nil {
		if repository.IsNotFound(err) {
			return nil, nil, ErrInvalidCredentials
		}
		log.Error("identity lookup failed", logger.Err(err))
		return nil, nil, err
	}
	if ident.PasswordHash == nil || !verifyPassword(password, *ident.PasswordHash) {
		return nil, nil, ErrInvalidCredentials
	}

	sess, err := signSession(s.deps.SessionSecret, ident.ID, ident.Email, s.deps.SessionTTL, time.Now())
	if err != nil {
		return nil, nil, err
	}
	s.bus.emit(sess)

	log.Info("signed in", logger.UserID(ident.ID))
	return sess, ident, nil
}

func (s *liveService) SignUp(ctx context.Context, emailAddr, password string) (*Session, *repository.Identity, error) {
	log := logger.From(ctx).With(logger.Layer("service"), logger.Component("authn"), logger.Op("SignUp"))

	emailAddr = normalizeEmail(emailAddr)
	if emailAddr == "" || !strings.Contains(emailAddr, "@") {
		return nil, nil, repository.ErrInvalidInput
	}
	if len(password) < MinPasswordLen {
		return nil, nil, ErrWeakPassword
	}

	if _, err := s.deps.Identities.GetByEmail(ctx, emailAddr); err == nil {
		return nil, nil, ErrEmailInUse
	} else if !repository.IsNotFound(err) {
		log.Error("identity lookup failed", logger.Err(err))
		return nil, nil, err
	}

	hash, err := hashPassword(password)
	if err != nil {
		return nil, nil, err
	}

	now := time.Now()
	ident := &repository.Identity{
		ID:           uuid.NewString(),
		Email:        emailAddr,
		PasswordHash: &hash,
		CreatedAt:    now,
	}
	if err := s.deps.Identities.Create(ctx, ident); err != nil {
		if repository.IsConflict(err) {
			return nil, nil, ErrEmailInUse
		}
		return nil, nil, err
	}

	// Fila de perfil inicial, display name = parte local del email
	prof := &repository.Profile{
		ID:          ident.ID,
		DisplayName: DisplayNameFromEmail(emailAddr),
		Email:       emailAddr,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	if err := s.deps.Profiles.Create(ctx, prof); err != nil && !repository.IsConflict(err) {
		log.Error("initial profile create failed", logger.Err(err), logger.UserID(ident.ID))
	}

	sess, err := signSession(s.deps.SessionSecret, ident.ID, ident.Email, s.deps.SessionTTL, now)
	if err != nil {
		return nil, nil, err
	}
	s.bus.emit(sess)

	// Welcome mail best-effort; nunca falla el registro por esto
	if s.deps.Mailer != nil {
		if err := s.deps.Mailer.SendWelcome(ctx, emailAddr, prof.DisplayName); err != nil {
			log.Warn("welcome mail failed", logger.Err(err), logger.Email(emailAddr))
		}
	}

	log.Info("signed up", logger.UserID(ident.ID))
	return sess, ident, nil
}

func (s *liveService) SignOut(ctx context.Context, token string) error {
	// Tokens de sesión son stateless; sign-out notifica a los
	// suscriptores para que limpien estado local.
	s.bus.emit(nil)
	return nil
}

func (s *liveService) OnSessionChange(fn func(*Session)) Unsubscribe {
	return s.bus.subscribe(fn)
}

func normalizeEmail(e string) string {
	return strings.ToLower(strings.TrimSpace(e))
}

// DisplayNameFromEmail deriva un display name de la parte local del email.
func DisplayNameFromEmail(e string) string {
	if i := strings.IndexByte(e, '@'); i > 0 {
		return e[:i]
	}
	return e
}

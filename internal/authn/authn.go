// Package authn is the auth-service port: session issuance, password auth
// and session-change notifications. The live implementation hosts
// identities in the row store; the offline implementation synthesizes a
// local demo identity and never touches a backend.
package authn

import (
	"context"
	"errors"
	"time"

	"github.com/ngoiyaeric/dash/internal/domain/repository"
)

// Session is a time-bounded credential bound to an identity. Its lifecycle
// is owned here; the rest of the code only observes it.
type Session struct {
	Token     string
	UserID    string
	Email     string
	IssuedAt  time.Time
	ExpiresAt time.Time
}

// Unsubscribe releases a session-change subscription.
type Unsubscribe func()

// Service is the auth collaborator contract.
type Service interface {
	// Configured reports whether a real auth backend is wired. When
	// false, callers run in demo mode.
	Configured() bool

	// CurrentSession resolves a session from its token. Returns
	// ErrInvalidToken for expired or malformed tokens.
	CurrentSession(ctx context.Context, token string) (*Session, error)

	// CurrentUser resolves the identity behind a session token.
	CurrentUser(ctx context.Context, token string) (*repository.Identity, error)

	// SignInWithPassword authenticates email+password and issues a
	// session. Returns ErrInvalidCredentials on mismatch.
	SignInWithPassword(ctx context.Context, email, password string) (*Session, *repository.Identity, error)

	// SignUp registers a new identity and issues a session. Returns
	// ErrEmailInUse if the email is taken.
	SignUp(ctx context.Context, email, password string) (*Session, *repository.Identity, error)

	// SignOut destroys the session and notifies subscribers with a nil
	// session.
	SignOut(ctx context.Context, token string) error

	// OnSessionChange registers a callback invoked on every session
	// creation, renewal or destruction. Delivery is serialized; the
	// callback must not block. The returned Unsubscribe is safe to call
	// more than once.
	OnSessionChange(fn func(*Session)) Unsubscribe
}

var (
	// ErrInvalidCredentials: email/password mismatch.
	ErrInvalidCredentials = errors.New("invalid credentials")

	// ErrEmailInUse: sign-up with an already registered email.
	ErrEmailInUse = errors.New("email already in use")

	// ErrInvalidToken: malformed, tampered or expired session token.
	ErrInvalidToken = errors.New("invalid session token")

	// ErrWeakPassword: password below the minimum policy.
	ErrWeakPassword = errors.New("password too weak")
)

// MinPasswordLen is the sign-up password policy.
const MinPasswordLen = 8

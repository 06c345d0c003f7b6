package authn

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/ngoiyaeric/dash/internal/domain/repository"
	"github.com/ngoiyaeric/dash/internal/email"
	storemem "github.com/ngoiyaeric/dash/internal/store/memory"
)

func newLiveService(t *testing.T) (Service, *storemem.Store) {
	t.Helper()
	rows := storemem.New()
	svc := NewLive(LiveDeps{
		Identities:    rows.Identities(),
		Profiles:      rows.Profiles(),
		Mailer:        email.Noop{},
		SessionSecret: testSecret,
		SessionTTL:    time.Hour,
	})
	return svc, rows
}

func TestLiveSignUpAndSignIn(t *testing.T) {
	svc, rows := newLiveService(t)
	ctx := context.Background()

	sess, ident, err := svc.SignUp(ctx, "Grace@Example.COM", "password8")
	if err != nil {
		t.Fatalf("sign up: %v", err)
	}
	// Email normalizado a minúsculas
	if ident.Email != "grace@example.com" {
		t.Fatalf("email = %q", ident.Email)
	}
	if sess.UserID != ident.ID {
		t.Fatalf("session user = %q, identity = %q", sess.UserID, ident.ID)
	}

	// Fila de perfil inicial con display name = parte local
	prof, err := rows.Profiles().GetByID(ctx, ident.ID)
	if err != nil {
		t.Fatalf("initial profile: %v", err)
	}
	if prof.DisplayName != "grace" {
		t.Fatalf("display name = %q", prof.DisplayName)
	}

	// Login con las mismas credenciales
	sess2, _, err := svc.SignInWithPassword(ctx, "grace@example.com", "password8")
	if err != nil {
		t.Fatalf("sign in: %v", err)
	}
	got, err := svc.CurrentSession(ctx, sess2.Token)
	if err != nil {
		t.Fatalf("current session: %v", err)
	}
	if got.UserID != ident.ID {
		t.Fatalf("resolved user = %q", got.UserID)
	}
}

func TestLiveSignUpErrors(t *testing.T) {
	svc, _ := newLiveService(t)
	ctx := context.Background()

	if _, _, err := svc.SignUp(ctx, "short@example.com", "seven77"); !errors.Is(err, ErrWeakPassword) {
		t.Fatalf("weak password err = %v", err)
	}
	if _, _, err := svc.SignUp(ctx, "not-an-email", "password8"); !errors.Is(err, repository.ErrInvalidInput) {
		t.Fatalf("invalid email err = %v", err)
	}

	if _, _, err := svc.SignUp(ctx, "dup@example.com", "password8"); err != nil {
		t.Fatalf("first sign up: %v", err)
	}
	if _, _, err := svc.SignUp(ctx, "DUP@example.com", "password8"); !errors.Is(err, ErrEmailInUse) {
		t.Fatalf("duplicate err = %v", err)
	}
}

func TestLiveSignInErrors(t *testing.T) {
	svc, _ := newLiveService(t)
	ctx := context.Background()

	if _, _, err := svc.SignInWithPassword(ctx, "ghost@example.com", "password8"); !errors.Is(err, ErrInvalidCredentials) {
		t.Fatalf("unknown user err = %v", err)
	}

	if _, _, err := svc.SignUp(ctx, "known@example.com", "password8"); err != nil {
		t.Fatalf("sign up: %v", err)
	}
	if _, _, err := svc.SignInWithPassword(ctx, "known@example.com", "wrongpass"); !errors.Is(err, ErrInvalidCredentials) {
		t.Fatalf("wrong password err = %v", err)
	}
	if _, _, err := svc.SignInWithPassword(ctx, "", ""); !errors.Is(err, ErrInvalidCredentials) {
		t.Fatalf("empty credentials err = %v", err)
	}
}

func TestLiveSessionChangeEvents(t *testing.T) {
	svc, _ := newLiveService(t)
	ctx := context.Background()

	var events []*Session
	unsub := svc.OnSessionChange(func(s *Session) { events = append(events, s) })

	if _, _, err := svc.SignUp(ctx, "events@example.com", "password8"); err != nil {
		t.Fatalf("sign up: %v", err)
	}
	if err := svc.SignOut(ctx, ""); err != nil {
		t.Fatalf("sign out: %v", err)
	}

	if len(events) != 2 {
		t.Fatalf("events = %d, want 2", len(events))
	}
	if events[0] == nil || events[0].Email != "events@example.com" {
		t.Fatalf("first event = %+v", events[0])
	}
	// Sign-out emite nil
	if events[1] != nil {
		t.Fatalf("second event = %+v, want nil", events[1])
	}

	// Después de desuscribir no llegan más eventos
	unsub()
	unsub() // idempotente
	if _, _, err := svc.SignInWithPassword(ctx, "events@example.com", "password8"); err != nil {
		t.Fatalf("sign in: %v", err)
	}
	if len(events) != 2 {
		t.Fatalf("events after unsubscribe = %d", len(events))
	}
}

func TestLiveCurrentUser(t *testing.T) {
	svc, _ := newLiveService(t)
	ctx := context.Background()

	sess, ident, err := svc.SignUp(ctx, "who@example.com", "password8")
	if err != nil {
		t.Fatalf("sign up: %v", err)
	}

	got, err := svc.CurrentUser(ctx, sess.Token)
	if err != nil {
		t.Fatalf("current user: %v", err)
	}
	if got.ID != ident.ID {
		t.Fatalf("id = %q", got.ID)
	}

	if _, err := svc.CurrentUser(ctx, "garbage"); !errors.Is(err, ErrInvalidToken) {
		t.Fatalf("garbage token err = %v", err)
	}
	if _, err := svc.CurrentSession(ctx, ""); !errors.Is(err, ErrInvalidToken) {
		t.Fatalf("empty token err = %v", err)
	}
}

func TestDisplayNameFromEmail(t *testing.T) {
	cases := map[string]string{
		"ada@example.com": "ada",
		"no-at-sign":      "no-at-sign",
		"a@b":             "a",
	}
	for in, want := range cases {
		if got := DisplayNameFromEmail(in); got != want {
			t.Fatalf("DisplayNameFromEmail(%q) = %q, want %q", in, got, want)
		}
	}
}

package authn

import (
	"context"
	"errors"
	"testing"
)

func TestOfflineNotConfigured(t *testing.T) {
	if NewOffline().Configured() {
		t.Fatal("offline service must report unconfigured")
	}
}

func TestOfflineSynthesizesAnyCredentials(t *testing.T) {
	svc := NewOffline()
	ctx := context.Background()

	sess, ident, err := svc.SignInWithPassword(ctx, "anyone@example.com", "whatever")
	if err != nil {
		t.Fatalf("sign in: %v", err)
	}
	if ident.Email != "anyone@example.com" {
		t.Fatalf("email = %q", ident.Email)
	}
	if name, _ := ident.Metadata["name"].(string); name != "anyone" {
		t.Fatalf("derived name = %q", name)
	}

	got, err := svc.CurrentSession(ctx, sess.Token)
	if err != nil {
		t.Fatalf("current session: %v", err)
	}
	if got.UserID != ident.ID {
		t.Fatalf("user = %q", got.UserID)
	}

	// Sign-up se comporta igual que sign-in
	if _, _, err := svc.SignUp(ctx, "other@example.com", "x"); err != nil {
		t.Fatalf("sign up: %v", err)
	}
}

func TestOfflineRejectsNonEmail(t *testing.T) {
	svc := NewOffline()
	if _, _, err := svc.SignInWithPassword(context.Background(), "not-an-email", "x"); !errors.Is(err, ErrInvalidCredentials) {
		t.Fatalf("err = %v", err)
	}
}

func TestOfflineSignOutClearsSession(t *testing.T) {
	svc := NewOffline()
	ctx := context.Background()

	sess, _, err := svc.SignInWithPassword(ctx, "a@b.com", "x")
	if err != nil {
		t.Fatalf("sign in: %v", err)
	}
	if err := svc.SignOut(ctx, sess.Token); err != nil {
		t.Fatalf("sign out: %v", err)
	}
	if _, err := svc.CurrentSession(ctx, sess.Token); !errors.Is(err, ErrInvalidToken) {
		t.Fatalf("session after sign out: %v", err)
	}
}

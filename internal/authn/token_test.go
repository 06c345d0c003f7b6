package authn

import (
	"testing"
	"time"
)

var testSecret = []byte("test-secret-0123456789abcdef0123")

func TestSessionTokenRoundTrip(t *testing.T) {
	now := time.Now().Truncate(time.Second)
	sess, err := signSession(testSecret, "user-1", "u@example.com", time.Hour, now)
	if err != nil {
		t.Fatalf("sign: %v", err)
	}

	got, err := parseSession(testSecret, sess.Token)
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	if got.UserID != "user-1" || got.Email != "u@example.com" {
		t.Fatalf("claims = %+v", got)
	}
	if !got.IssuedAt.Equal(now) {
		t.Fatalf("iat = %v, want %v", got.IssuedAt, now)
	}
	if !got.ExpiresAt.Equal(now.Add(time.Hour)) {
		t.Fatalf("exp = %v", got.ExpiresAt)
	}
}

func TestParseSession_WrongSecret(t *testing.T) {
	sess, err := signSession(testSecret, "user-1", "u@example.com", time.Hour, time.Now())
	if err != nil {
		t.Fatalf("sign: %v", err)
	}
	if _, err := parseSession([]byte("another-secret-another-secret-00"), sess.Token); err != ErrInvalidToken {
		t.Fatalf("err = %v, want ErrInvalidToken", err)
	}
}

func TestParseSession_Expired(t *testing.T) {
	past := time.Now().Add(-2 * time.Hour)
	sess, err := signSession(testSecret, "user-1", "u@example.com", time.Hour, past)
	if err != nil {
		t.Fatalf("sign: %v", err)
	}
	if _, err := parseSession(testSecret, sess.Token); err != ErrInvalidToken {
		t.Fatalf("err = %v, want ErrInvalidToken", err)
	}
}

func TestParseSession_Garbage(t *testing.T) {
	for _, raw := range []string{"", "abc", "a.b.c"} {
		if _, err := parseSession(testSecret, raw); err != ErrInvalidToken {
			t.Fatalf("err for %q = %v, want ErrInvalidToken", raw, err)
		}
	}
}

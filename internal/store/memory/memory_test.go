package memory

import (
	"context"
	"testing"
	"time"

	"github.com/ngoiyaeric/dash/internal/domain/repository"
)

func TestProfilesCRUD(t *testing.T) {
	s := New()
	ctx := context.Background()
	now := time.Now()

	if _, err := s.Profiles().GetByID(ctx, "p1"); !repository.IsNotFound(err) {
		t.Fatalf("missing profile err = %v", err)
	}

	prof := &repository.Profile{ID: "p1", DisplayName: "Ada", Email: "ada@example.com", CreatedAt: now, UpdatedAt: now}
	if err := s.Profiles().Create(ctx, prof); err != nil {
		t.Fatalf("create: %v", err)
	}
	if err := s.Profiles().Create(ctx, prof); !repository.IsConflict(err) {
		t.Fatalf("duplicate create err = %v", err)
	}

	later := now.Add(time.Minute)
	if err := s.Profiles().UpdateDisplayName(ctx, "p1", "Ada L", later); err != nil {
		t.Fatalf("update name: %v", err)
	}
	if err := s.Profiles().UpdateAvatarURL(ctx, "p1", "http://x/a.png", later); err != nil {
		t.Fatalf("update avatar: %v", err)
	}

	got, err := s.Profiles().GetByID(ctx, "p1")
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if got.DisplayName != "Ada L" || got.AvatarURL == nil || *got.AvatarURL != "http://x/a.png" {
		t.Fatalf("profile = %+v", got)
	}
	if !got.UpdatedAt.Equal(later) {
		t.Fatalf("updated_at = %v", got.UpdatedAt)
	}

	if err := s.Profiles().UpdateDisplayName(ctx, "ghost", "x", later); !repository.IsNotFound(err) {
		t.Fatalf("update missing err = %v", err)
	}
}

func TestConnectedAccountsOrdering(t *testing.T) {
	s := New()
	now := time.Now()

	// Fuera de orden a propósito
	s.SeedConnectedAccount(repository.ConnectedAccount{ID: "c", UserID: "u1", Provider: "google", CreatedAt: now})
	s.SeedConnectedAccount(repository.ConnectedAccount{ID: "a", UserID: "u1", Provider: "github", CreatedAt: now.Add(-2 * time.Hour)})
	s.SeedConnectedAccount(repository.ConnectedAccount{ID: "b", UserID: "u1", Provider: "gitlab", CreatedAt: now.Add(-time.Hour)})
	s.SeedConnectedAccount(repository.ConnectedAccount{ID: "x", UserID: "other", Provider: "github", CreatedAt: now})

	got, err := s.ConnectedAccounts().ListByUser(context.Background(), "u1")
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(got) != 3 {
		t.Fatalf("len = %d", len(got))
	}
	for i, want := range []string{"a", "b", "c"} {
		if got[i].ID != want {
			t.Fatalf("got[%d] = %s, want %s", i, got[i].ID, want)
		}
	}

	// Usuario sin cuentas: slice vacío, no nil error
	empty, err := s.ConnectedAccounts().ListByUser(context.Background(), "nobody")
	if err != nil {
		t.Fatalf("list empty: %v", err)
	}
	if len(empty) != 0 {
		t.Fatalf("len = %d", len(empty))
	}
}

func TestIdentitiesEmailLookup(t *testing.T) {
	s := New()
	ctx := context.Background()

	ident := &repository.Identity{ID: "i1", Email: "ada@example.com", CreatedAt: time.Now()}
	if err := s.Identities().Create(ctx, ident); err != nil {
		t.Fatalf("create: %v", err)
	}

	// Lookup case-insensitive, igual que el índice lower(email) de postgres
	got, err := s.Identities().GetByEmail(ctx, "ADA@example.com")
	if err != nil {
		t.Fatalf("get by email: %v", err)
	}
	if got.ID != "i1" {
		t.Fatalf("id = %q", got.ID)
	}

	dup := &repository.Identity{ID: "i2", Email: "Ada@Example.com"}
	if err := s.Identities().Create(ctx, dup); !repository.IsConflict(err) {
		t.Fatalf("duplicate email err = %v", err)
	}

	if _, err := s.Identities().GetByEmail(ctx, "ghost@example.com"); !repository.IsNotFound(err) {
		t.Fatalf("missing err = %v", err)
	}
}

func TestPersonalizationUpsert(t *testing.T) {
	s := New()
	ctx := context.Background()

	if _, err := s.Settings().GetPersonalization(ctx, "u1"); !repository.IsNotFound(err) {
		t.Fatalf("missing err = %v", err)
	}

	if err := s.Settings().UpsertPersonalization(ctx, &repository.Personalization{UserID: "u1", SystemPrompt: "a"}); err != nil {
		t.Fatalf("insert: %v", err)
	}
	if err := s.Settings().UpsertPersonalization(ctx, &repository.Personalization{UserID: "u1", SystemPrompt: "b", Notes: "n"}); err != nil {
		t.Fatalf("update: %v", err)
	}

	got, err := s.Settings().GetPersonalization(ctx, "u1")
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if got.SystemPrompt != "b" || got.Notes != "n" {
		t.Fatalf("persisted = %+v", got)
	}
}

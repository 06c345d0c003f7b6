package profile

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/ngoiyaeric/dash/internal/domain/repository"
	"github.com/ngoiyaeric/dash/internal/fault"
	storagemem "github.com/ngoiyaeric/dash/internal/storage/memory"
	storemem "github.com/ngoiyaeric/dash/internal/store/memory"
	"github.com/ngoiyaeric/dash/internal/viewcache"
)

const testUserID = "user-1"

func newTestService(t *testing.T) (Service, *storemem.Store, *storagemem.Store) {
	t.Helper()
	rows := storemem.New()
	now := time.Now()
	if err := rows.Profiles().Create(context.Background(), &repository.Profile{
		ID:          testUserID,
		DisplayName: "Initial",
		Email:       "user@queuecx.com",
		CreatedAt:   now,
		UpdatedAt:   now,
	}); err != nil {
		t.Fatalf("seed profile: %v", err)
	}
	objects := storagemem.New("http://localhost:8080")
	svc := NewService(Deps{
		Profiles: rows.Profiles(),
		Accounts: rows.ConnectedAccounts(),
		Objects:  objects,
		Views:    viewcache.NewMemory(time.Minute),
	})
	return svc, rows, objects
}

func TestUpdateDisplayName(t *testing.T) {
	svc, rows, _ := newTestService(t)
	ctx := context.Background()

	msg, err := svc.UpdateDisplayName(ctx, testUserID, "New Name")
	if err != nil {
		t.Fatalf("update: %v", err)
	}
	if msg != "Profile updated successfully" {
		t.Fatalf("message = %q", msg)
	}

	prof, err := rows.Profiles().GetByID(ctx, testUserID)
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if prof.DisplayName != "New Name" {
		t.Fatalf("display name = %q", prof.DisplayName)
	}
}

func TestUpdateDisplayName_ValidationBeforeAuth(t *testing.T) {
	svc, _, _ := newTestService(t)

	// Input inválido + sin usuario: gana la validación
	_, err := svc.UpdateDisplayName(context.Background(), "", "")
	if !fault.IsValidation(err) {
		t.Fatalf("expected validation fault, got %v", err)
	}

	_, err = svc.UpdateDisplayName(context.Background(), "", "ok")
	if !fault.IsAuth(err) {
		t.Fatalf("expected auth fault, got %v", err)
	}
}

func TestUploadAvatar(t *testing.T) {
	svc, rows, objects := newTestService(t)
	ctx := context.Background()

	url, err := svc.UploadAvatar(ctx, testUserID, AvatarUpload{
		Filename:    "Photo.PNG",
		Size:        4,
		ContentType: "image/png",
		Data:        []byte("data"),
	})
	if err != nil {
		t.Fatalf("upload: %v", err)
	}
	if !strings.HasPrefix(url, "http://localhost:8080/media/avatars/"+testUserID+"-") {
		t.Fatalf("url = %q", url)
	}
	// Extensión original en minúsculas
	if !strings.HasSuffix(url, ".png") {
		t.Fatalf("url = %q, expected .png suffix", url)
	}
	if objects.Len() != 1 {
		t.Fatalf("objects stored = %d", objects.Len())
	}

	prof, err := rows.Profiles().GetByID(ctx, testUserID)
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if prof.AvatarURL == nil || *prof.AvatarURL != url {
		t.Fatalf("avatar url not persisted: %v", prof.AvatarURL)
	}
}

func TestUploadAvatar_Validation(t *testing.T) {
	svc, _, objects := newTestService(t)

	cases := []struct {
		name string
		up   AvatarUpload
		msg  string
	}{
		{"missing", AvatarUpload{}, "Please select a file to upload"},
		{"too big", AvatarUpload{Filename: "a.png", Size: 2*1024*1024 + 1, ContentType: "image/png"}, "File size must be less than 2MB"},
		{"not image", AvatarUpload{Filename: "a.txt", Size: 10, ContentType: "text/plain"}, "File must be an image"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := svc.UploadAvatar(context.Background(), testUserID, tc.up)
			fe := fault.As(err)
			if fe == nil || fe.Kind != fault.KindValidation {
				t.Fatalf("expected validation fault, got %v", err)
			}
			if fe.Message != tc.msg {
				t.Fatalf("message = %q, want %q", fe.Message, tc.msg)
			}
		})
	}
	if objects.Len() != 0 {
		t.Fatalf("validation failures must not store objects, got %d", objects.Len())
	}
}

// failingProfiles falla la escritura del avatar para ejercitar la
// compensación.
type failingProfiles struct {
	repository.ProfileRepository
}

func (f failingProfiles) UpdateAvatarURL(ctx context.Context, id, avatarURL string, updatedAt time.Time) error {
	return errors.New("row store write failed")
}

func TestUploadAvatar_CompensatesOnProfileWriteFailure(t *testing.T) {
	rows := storemem.New()
	objects := storagemem.New("http://localhost:8080")
	svc := NewService(Deps{
		Profiles: failingProfiles{rows.Profiles()},
		Accounts: rows.ConnectedAccounts(),
		Objects:  objects,
		Views:    viewcache.NewMemory(time.Minute),
	})

	_, err := svc.UploadAvatar(context.Background(), testUserID, AvatarUpload{
		Filename:    "a.png",
		Size:        4,
		ContentType: "image/png",
		Data:        []byte("data"),
	})
	if !fault.IsRemote(err) {
		t.Fatalf("expected remote fault, got %v", err)
	}
	// El objeto subido se borra: nada huérfano en storage
	if objects.Len() != 0 {
		t.Fatalf("expected orphan cleanup, %d objects remain", objects.Len())
	}
}

// noURLStore nunca resuelve URL pública.
type noURLStore struct {
	*storagemem.Store
}

func (noURLStore) PublicURL(bucket, key string) (string, bool) { return "", false }

func TestUploadAvatar_PublicURLFailure(t *testing.T) {
	rows := storemem.New()
	svc := NewService(Deps{
		Profiles: rows.Profiles(),
		Accounts: rows.ConnectedAccounts(),
		Objects:  noURLStore{storagemem.New("")},
		Views:    viewcache.NewMemory(time.Minute),
	})

	_, err := svc.UploadAvatar(context.Background(), testUserID, AvatarUpload{
		Filename:    "a.png",
		Size:        4,
		ContentType: "image/png",
		Data:        []byte("data"),
	})
	fe := fault.As(err)
	if fe == nil || fe.Kind != fault.KindRemote {
		t.Fatalf("expected remote fault, got %v", err)
	}
	if fe.Message != "Failed to get avatar URL" {
		t.Fatalf("message = %q", fe.Message)
	}
}

func TestListConnectedAccounts_OrderedByCreation(t *testing.T) {
	svc, rows, _ := newTestService(t)
	now := time.Now()

	// Sembrado fuera de orden a propósito
	rows.SeedConnectedAccount(repository.ConnectedAccount{
		ID: "acc-2", UserID: testUserID, Provider: "google", CreatedAt: now,
	})
	rows.SeedConnectedAccount(repository.ConnectedAccount{
		ID: "acc-1", UserID: testUserID, Provider: "github", CreatedAt: now.Add(-time.Hour),
	})

	accounts, err := svc.ListConnectedAccounts(context.Background(), testUserID)
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(accounts) != 2 {
		t.Fatalf("len = %d", len(accounts))
	}
	if accounts[0].ID != "acc-1" || accounts[1].ID != "acc-2" {
		t.Fatalf("order = %s, %s; want acc-1, acc-2", accounts[0].ID, accounts[1].ID)
	}
}

func TestListConnectedAccounts_Unauthenticated(t *testing.T) {
	svc, _, _ := newTestService(t)
	_, err := svc.ListConnectedAccounts(context.Background(), "")
	if !fault.IsAuth(err) {
		t.Fatalf("expected auth fault, got %v", err)
	}
}

func TestAvatarKey(t *testing.T) {
	at := time.UnixMilli(1700000000000)
	got := avatarKey("u1", "Selfie.JPG", at)
	want := "u1-1700000000000.jpg"
	if got != want {
		t.Fatalf("key = %q, want %q", got, want)
	}
	// Sin extensión: la key queda sin sufijo
	if got := avatarKey("u1", "raw", at); got != "u1-1700000000000" {
		t.Fatalf("key = %q", got)
	}
}

package settings

import (
	"context"
	"strings"
	"testing"
	"time"

	"github.com/ngoiyaeric/dash/internal/fault"
	storemem "github.com/ngoiyaeric/dash/internal/store/memory"
	"github.com/ngoiyaeric/dash/internal/viewcache"
)

func newTestService() (Service, *storemem.Store, *viewcache.Memory) {
	rows := storemem.New()
	views := viewcache.NewMemory(time.Minute)
	svc := NewService(Deps{Settings: rows.Settings(), Views: views})
	return svc, rows, views
}

func TestUpdatePersonalization(t *testing.T) {
	svc, rows, views := newTestService()
	ctx := context.Background()

	msg, err := svc.UpdatePersonalization(ctx, "user-1", "be brief", "likes go")
	if err != nil {
		t.Fatalf("update: %v", err)
	}
	if msg != "Settings saved successfully" {
		t.Fatalf("message = %q", msg)
	}

	p, err := rows.Settings().GetPersonalization(ctx, "user-1")
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if p.SystemPrompt != "be brief" || p.Notes != "likes go" {
		t.Fatalf("persisted = %+v", p)
	}

	// La vista de settings quedó invalidada
	v, err := views.Version(ctx, viewcache.ViewSettings)
	if err != nil {
		t.Fatalf("version: %v", err)
	}
	if v != 1 {
		t.Fatalf("settings view version = %d", v)
	}
}

func TestUpdatePersonalization_Upsert(t *testing.T) {
	svc, rows, _ := newTestService()
	ctx := context.Background()

	if _, err := svc.UpdatePersonalization(ctx, "user-1", "first", ""); err != nil {
		t.Fatalf("first: %v", err)
	}
	if _, err := svc.UpdatePersonalization(ctx, "user-1", "second", "n"); err != nil {
		t.Fatalf("second: %v", err)
	}

	p, err := rows.Settings().GetPersonalization(ctx, "user-1")
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if p.SystemPrompt != "second" || p.Notes != "n" {
		t.Fatalf("persisted = %+v", p)
	}
}

func TestUpdatePersonalization_PromptCheckedFirst(t *testing.T) {
	svc, _, _ := newTestService()

	_, err := svc.UpdatePersonalization(context.Background(), "user-1",
		strings.Repeat("p", 1001), strings.Repeat("n", 2001))
	fe := fault.As(err)
	if fe == nil || fe.Kind != fault.KindValidation {
		t.Fatalf("expected validation fault, got %v", err)
	}
	if fe.Message != "System prompt must be 1000 characters or less" {
		t.Fatalf("message = %q", fe.Message)
	}
}

func TestUpdatePersonalization_Unauthenticated(t *testing.T) {
	svc, _, _ := newTestService()
	_, err := svc.UpdatePersonalization(context.Background(), "", "p", "n")
	if !fault.IsAuth(err) {
		t.Fatalf("expected auth fault, got %v", err)
	}
}

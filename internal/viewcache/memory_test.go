package viewcache

import (
	"context"
	"sync"
	"testing"
	"time"
)

func TestMemoryVersionStartsAtZero(t *testing.T) {
	m := NewMemory(time.Minute)
	v, err := m.Version(context.Background(), ViewSettings)
	if err != nil {
		t.Fatalf("version: %v", err)
	}
	if v != 0 {
		t.Fatalf("initial version = %d", v)
	}
}

func TestMemoryInvalidateBumpsMonotonically(t *testing.T) {
	m := NewMemory(time.Minute)
	ctx := context.Background()

	for i := int64(1); i <= 3; i++ {
		if err := m.Invalidate(ctx, ViewSettings); err != nil {
			t.Fatalf("invalidate: %v", err)
		}
		v, _ := m.Version(ctx, ViewSettings)
		if v != i {
			t.Fatalf("version = %d, want %d", v, i)
		}
	}

	// Las vistas son independientes
	v, _ := m.Version(ctx, ViewDashboard)
	if v != 0 {
		t.Fatalf("dashboard version = %d", v)
	}
}

func TestMemoryInvalidateConcurrent(t *testing.T) {
	m := NewMemory(time.Minute)
	ctx := context.Background()

	const n = 50
	var wg sync.WaitGroup
	wg.Add(n)
	for i := 0; i < n; i++ {
		go func() {
			defer wg.Done()
			_ = m.Invalidate(ctx, ViewDashboard)
		}()
	}
	wg.Wait()

	v, _ := m.Version(ctx, ViewDashboard)
	if v != n {
		t.Fatalf("version = %d, want %d (lost updates)", v, n)
	}
}

func TestNewPicksBackend(t *testing.T) {
	if _, ok := New(Config{Kind: "memory"}).(*Memory); !ok {
		t.Fatal("kind=memory did not build Memory")
	}
	if _, ok := New(Config{}).(*Memory); !ok {
		t.Fatal("empty kind did not default to Memory")
	}
	if _, ok := New(Config{Kind: "redis", RedisAddr: "localhost:6379"}).(*Redis); !ok {
		t.Fatal("kind=redis did not build Redis")
	}
}

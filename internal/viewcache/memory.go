package viewcache

import (
	"context"
	"sync"
	"time"

	gocache "github.com/patrickmn/go-cache"
)

// Memory guarda las versiones en un go-cache in-process. Las versiones no
// expiran; el TTL aplica solo a payloads de render que se cacheen aparte.
type Memory struct {
	mu sync.Mutex
	c  *gocache.Cache
}

func NewMemory(defaultTTL time.Duration) *Memory {
	if defaultTTL <= 0 {
		defaultTTL = 2 * time.Minute
	}
	return &Memory{c: gocache.New(defaultTTL, time.Minute)}
}

func (m *Memory) Invalidate(ctx context.Context, view string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	var v int64
	if cur, ok := m.c.Get(versionKey(view)); ok {
		v, _ = cur.(int64)
	}
	m.c.Set(versionKey(view), v+1, gocache.NoExpiration)
	return nil
}

func (m *Memory) Version(ctx context.Context, view string) (int64, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if cur, ok := m.c.Get(versionKey(view)); ok {
		if v, ok := cur.(int64); ok {
			return v, nil
		}
	}
	return 0, nil
}

func versionKey(view string) string { return "view_version:" + view }

var _ Invalidator = (*Memory)(nil)

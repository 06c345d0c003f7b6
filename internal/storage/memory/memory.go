// Package memory implementa el object store en memoria, para modo offline
// y tests.
package memory

import (
	"context"
	"strings"
	"sync"

	"github.com/ngoiyaeric/dash/internal/storage"
)

type Store struct {
	mu      sync.RWMutex
	objects map[string][]byte // "bucket/key" -> data
	baseURL string
}

func New(baseURL string) *Store {
	return &Store{
		objects: make(map[string][]byte),
		baseURL: strings.TrimRight(baseURL, "/"),
	}
}

func (s *Store) Upload(ctx context.Context, bucket, key string, data []byte, contentType string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	cp := make([]byte, len(data))
	copy(cp, data)
	s.objects[bucket+"/"+key] = cp
	return nil
}

func (s *Store) PublicURL(bucket, key string) (string, bool) {
	if s.baseURL == "" {
		return "", false
	}
	return s.baseURL + "/media/" + bucket + "/" + key, true
}

func (s *Store) Remove(ctx context.Context, bucket string, keys ...string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, k := range keys {
		delete(s.objects, bucket+"/"+k)
	}
	return nil
}

// Has reporta si bucket/key existe. Solo para asserts en tests.
func (s *Store) Has(bucket, key string) bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	_, ok := s.objects[bucket+"/"+key]
	return ok
}

// Len retorna la cantidad de objetos guardados.
func (s *Store) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.objects)
}

var _ storage.ObjectStore = (*Store)(nil)

// Package memory implementa el row store en memoria. Lo usa el modo
// offline y los tests; las semánticas (ErrNotFound, ErrConflict, orden de
// listado) son las mismas que el driver de postgres.
package memory

import (
	"context"
	"sort"
	"strings"
	"sync"
	"time"

	"github.com/ngoiyaeric/dash/internal/domain/repository"
	"github.com/ngoiyaeric/dash/internal/store"
)

type Store struct {
	mu       sync.RWMutex
	profiles map[string]repository.Profile
	accounts map[string][]repository.ConnectedAccount // por userID
	ids      map[string]repository.Identity           // por ID
	settings map[string]repository.Personalization    // por userID
}

func New() *Store {
	return &Store{
		profiles: make(map[string]repository.Profile),
		accounts: make(map[string][]repository.ConnectedAccount),
		ids:      make(map[string]repository.Identity),
		settings: make(map[string]repository.Personalization),
	}
}

func (s *Store) Profiles() repository.ProfileRepository                 { return (*profiles)(s) }
func (s *Store) ConnectedAccounts() repository.ConnectedAccountRepository { return (*accounts)(s) }
func (s *Store) Identities() repository.IdentityRepository              { return (*identities)(s) }
func (s *Store) Settings() repository.SettingsRepository                { return (*settings)(s) }
func (s *Store) Close() error                                           { return nil }

// SeedConnectedAccount agrega una cuenta conectada. Para fixtures y tests.
func (s *Store) SeedConnectedAccount(a repository.ConnectedAccount) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.accounts[a.UserID] = append(s.accounts[a.UserID], a)
}

// ---------------------------------------------------------------------------
// Profiles

type profiles Store

func (p *profiles) GetByID(ctx context.Context, id string) (*repository.Profile, error) {
	p.mu.RLock()
	defer p.mu.RUnlock()
	if prof, ok := p.profiles[id]; ok {
		cp := prof
		return &cp, nil
	}
	return nil, repository.ErrNotFound
}

func (p *profiles) Create(ctx context.Context, prof *repository.Profile) error {
	p.mu.Lock()
	defer p.mu.Unlock()
	if _, ok := p.profiles[prof.ID]; ok {
		return repository.ErrConflict
	}
	p.profiles[prof.ID] = *prof
	return nil
}

func (p *profiles) UpdateDisplayName(ctx context.Context, id, displayName string, updatedAt time.Time) error {
	p.mu.Lock()
	defer p.mu.Unlock()
	prof, ok := p.profiles[id]
	if !ok {
		return repository.ErrNotFound
	}
	prof.DisplayName = displayName
	prof.UpdatedAt = updatedAt
	p.profiles[id] = prof
	return nil
}

func (p *profiles) UpdateAvatarURL(ctx context.Context, id, avatarURL string, updatedAt time.Time) error {
	p.mu.Lock()
	defer p.mu.Unlock()
	prof, ok := p.profiles[id]
	if !ok {
		return repository.ErrNotFound
	}
	prof.AvatarURL = &avatarURL
	prof.UpdatedAt = updatedAt
	p.profiles[id] = prof
	return nil
}

// ---------------------------------------------------------------------------
// Connected accounts

type accounts Store

func (a *accounts) ListByUser(ctx context.Context, userID string) ([]repository.ConnectedAccount, error) {
	a.mu.RLock()
	defer a.mu.RUnlock()
	src := a.accounts[userID]
	out := make([]repository.ConnectedAccount, len(src))
	copy(out, src)
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].CreatedAt.Before(out[j].CreatedAt)
	})
	return out, nil
}

// ---------------------------------------------------------------------------
// Identities

type identities Store

func (s *identities) GetByID(ctx context.Context, id string) (*repository.Identity, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if ident, ok := s.ids[id]; ok {
		cp := ident
		return &cp, nil
	}
	return nil, repository.ErrNotFound
}

func (s *identities) GetByEmail(ctx context.Context, email string) (*repository.Identity, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for _, ident := range s.ids {
		if strings.EqualFold(ident.Email, email) {
			cp := ident
			return &cp, nil
		}
	}
	return nil, repository.ErrNotFound
}

func (s *identities) Create(ctx context.Context, ident *repository.Identity) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, existing := range s.ids {
		if strings.EqualFold(existing.Email, ident.Email) {
			return repository.ErrConflict
		}
	}
	s.ids[ident.ID] = *ident
	return nil
}

// ---------------------------------------------------------------------------
// Settings

type settings Store

func (s *settings) GetPersonalization(ctx context.Context, userID string) (*repository.Personalization, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if p, ok := s.settings[userID]; ok {
		cp := p
		return &cp, nil
	}
	return nil, repository.ErrNotFound
}

func (s *settings) UpsertPersonalization(ctx context.Context, p *repository.Personalization) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.settings[p.UserID] = *p
	return nil
}

var _ store.DataAccess = (*Store)(nil)

package repository

import (
	"context"
	"time"
)

// Personalization son las preferencias de personalización de un usuario.
type Personalization struct {
	UserID       string
	SystemPrompt string
	Notes        string
	UpdatedAt    time.Time
}

// SettingsRepository define operaciones sobre settings de usuario.
type SettingsRepository interface {
	// GetPersonalization retorna las preferencias del usuario, o
	// ErrNotFound si nunca las guardó.
	GetPersonalization(ctx context.Context, userID string) (*Personalization, error)

	// UpsertPersonalization crea o reemplaza las preferencias.
	UpsertPersonalization(ctx context.Context, p *Personalization) error
}

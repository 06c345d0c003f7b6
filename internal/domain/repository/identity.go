package repository

import (
	"context"
	"time"
)

// Identity es el principal autenticado. Solo el backend de auth la escribe;
// el resto del código la trata como read-only salvo el display name que
// escribe en el Profile vinculado.
type Identity struct {
	ID           string
	Email        string
	PasswordHash *string
	Metadata     map[string]any
	CreatedAt    time.Time
}

// IdentityRepository define operaciones sobre identidades.
type IdentityRepository interface {
	// GetByID busca una identidad por ID. Retorna ErrNotFound si no existe.
	GetByID(ctx context.Context, id string) (*Identity, error)

	// GetByEmail busca una identidad por email (case-insensitive).
	// Retorna ErrNotFound si no existe.
	GetByEmail(ctx context.Context, email string) (*Identity, error)

	// Create inserta una identidad nueva. Retorna ErrConflict si el
	// email ya está registrado.
	Create(ctx context.Context, id *Identity) error
}

package repository

import (
	"context"
	"time"
)

// Profile es el registro mutable por identidad: una fila por usuario,
// keyed por el ID de la identidad. Se muta exclusivamente vía la capa de
// acciones; el store garantiza unicidad por ID.
type Profile struct {
	ID          string // = ID de la identidad
	DisplayName string
	AvatarURL   *string // nullable: el usuario puede no tener avatar
	Email       string
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// ProfileRepository define operaciones sobre perfiles.
type ProfileRepository interface {
	// GetByID busca un perfil por ID. Retorna ErrNotFound si no existe.
	GetByID(ctx context.Context, id string) (*Profile, error)

	// Create inserta el perfil inicial de una identidad.
	// Retorna ErrConflict si ya existe.
	Create(ctx context.Context, p *Profile) error

	// UpdateDisplayName persiste display_name y updated_at.
	UpdateDisplayName(ctx context.Context, id, displayName string, updatedAt time.Time) error

	// UpdateAvatarURL persiste avatar_url y updated_at.
	UpdateAvatarURL(ctx context.Context, id, avatarURL string, updatedAt time.Time) error
}

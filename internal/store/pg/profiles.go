package pg

import (
	"context"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/ngoiyaeric/dash/internal/domain/repository"
)

type profileRepo struct{ pool *pgxpool.Pool }

func (r *profileRepo) GetByID(ctx context.Context, id string) (*repository.Profile, error) {
	const q = `
		SELECT id, display_name, avatar_url, email, created_at, updated_at
		FROM profiles WHERE id = $1`
	var p repository.Profile
	err := r.pool.QueryRow(ctx, q, id).Scan(
		&p.ID, &p.DisplayName, &p.AvatarURL, &p.Email, &p.CreatedAt, &p.UpdatedAt,
	)
	if err != nil {
		return nil, mapError(err)
	}
	return &p, nil
}

func (r *profileRepo) Create(ctx context.Context, p *repository.Profile) error {
	const q = `
		INSERT INTO profiles (id, display_name, avatar_url, email, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6)`
	_, err := r.pool.Exec(ctx, q, p.ID, p.DisplayName, p.AvatarURL, p.Email, p.CreatedAt, p.UpdatedAt)
	return mapError(err)
}

func (r *profileRepo) UpdateDisplayName(ctx context.Context, id, displayName string, updatedAt time.Time) error {
	const q = `UPDATE profiles SET display_name = $2, updated_at = $3 WHERE id = $1`
	tag, err := r.pool.Exec(ctx, q, id, displayName, updatedAt)
	if err != nil {
		return mapError(err)
	}
	if tag.RowsAffected() == 0 {
		return repository.ErrNotFound
	}
	return nil
}

func (r *profileRepo) UpdateAvatarURL(ctx context.Context, id, avatarURL string, updatedAt time.Time) error {
	const q = `UPDATE profiles SET avatar_url = $2, updated_at = $3 WHERE id = $1`
	tag, err := r.pool.Exec(ctx, q, id, avatarURL, updatedAt)
	if err != nil {
		return mapError(err)
	}
	if tag.RowsAffected() == 0 {
		return repository.ErrNotFound
	}
	return nil
}

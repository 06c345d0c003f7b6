package pg

import (
	"context"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/ngoiyaeric/dash/internal/domain/repository"
)

type settingsRepo struct{ pool *pgxpool.Pool }

func (r *settingsRepo) GetPersonalization(ctx context.Context, userID string) (*repository.Personalization, error) {
	const q = `
		SELECT user_id, system_prompt, notes, updated_at
		FROM personalization WHERE user_id = $1`
	var p repository.Personalization
	err := r.pool.QueryRow(ctx, q, userID).Scan(&p.UserID, &p.SystemPrompt, &p.Notes, &p.UpdatedAt)
	if err != nil {
		return nil, mapError(err)
	}
	return &p, nil
}

func (r *settingsRepo) UpsertPersonalization(ctx context.Context, p *repository.Personalization) error {
	const q = `
		INSERT INTO personalization (user_id, system_prompt, notes, updated_at)
		VALUES ($1, $2, $3, $4)
		ON CONFLICT (user_id) DO UPDATE
		SET system_prompt = EXCLUDED.system_prompt,
		    notes = EXCLUDED.notes,
		    updated_at = EXCLUDED.updated_at`
	_, err := r.pool.Exec(ctx, q, p.UserID, p.SystemPrompt, p.Notes, p.UpdatedAt)
	return mapError(err)
}

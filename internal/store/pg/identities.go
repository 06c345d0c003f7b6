package pg

import (
	"context"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/ngoiyaeric/dash/internal/domain/repository"
)

type identityRepo struct{ pool *pgxpool.Pool }

func (r *identityRepo) GetByID(ctx context.Context, id string) (*repository.Identity, error) {
	const q = `
		SELECT id, email, password_hash, metadata, created_at
		FROM identities WHERE id = $1`
	return r.scanOne(ctx, q, id)
}

func (r *identityRepo) GetByEmail(ctx context.Context, email string) (*repository.Identity, error) {
	const q = `
		SELECT id, email, password_hash, metadata, created_at
		FROM identities WHERE lower(email) = lower($1)`
	return r.scanOne(ctx, q, email)
}

func (r *identityRepo) scanOne(ctx context.Context, q string, arg any) (*repository.Identity, error) {
	var ident repository.Identity
	err := r.pool.QueryRow(ctx, q, arg).Scan(
		&ident.ID, &ident.Email, &ident.PasswordHash, &ident.Metadata, &ident.CreatedAt,
	)
	if err != nil {
		return nil, mapError(err)
	}
	return &ident, nil
}

func (r *identityRepo) Create(ctx context.Context, ident *repository.Identity) error {
	const q = `
		INSERT INTO identities (id, email, password_hash, metadata, created_at)
		VALUES ($1, $2, $3, $4, $5)`
	_, err := r.pool.Exec(ctx, q, ident.ID, ident.Email, ident.PasswordHash, ident.Metadata, ident.CreatedAt)
	return mapError(err)
}

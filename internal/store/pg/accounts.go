package pg

import (
	"context"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/ngoiyaeric/dash/internal/domain/repository"
)

type accountRepo struct{ pool *pgxpool.Pool }

func (r *accountRepo) ListByUser(ctx context.Context, userID string) ([]repository.ConnectedAccount, error) {
	const q = `
		SELECT id, user_id, provider, provider_account_id, email, created_at
		FROM connected_accounts
		WHERE user_id = $1
		ORDER BY created_at ASC`
	rows, err := r.pool.Query(ctx, q, userID)
	if err != nil {
		return nil, mapError(err)
	}
	defer rows.Close()

	var out []repository.ConnectedAccount
	for rows.Next() {
		var a repository.ConnectedAccount
		if err := rows.Scan(&a.ID, &a.UserID, &a.Provider, &a.ProviderAccountID, &a.Email, &a.CreatedAt); err != nil {
			return nil, mapError(err)
		}
		out = append(out, a)
	}
	return out, mapError(rows.Err())
}

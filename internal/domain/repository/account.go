package repository

import (
	"context"
	"time"
)

// ConnectedAccount es una vinculación con un proveedor externo ("github",
// "google"). Append-only desde la perspectiva de este servicio: la capa de
// acciones solo lista, nunca escribe.
type ConnectedAccount struct {
	ID                string
	UserID            string
	Provider          string
	ProviderAccountID string
	Email             string
	CreatedAt         time.Time
}

// ConnectedAccountRepository define operaciones sobre cuentas conectadas.
type ConnectedAccountRepository interface {
	// ListByUser lista las cuentas de un usuario ordenadas por
	// created_at ascendente.
	ListByUser(ctx context.Context, userID string) ([]ConnectedAccount, error)
}

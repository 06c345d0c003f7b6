package pg

import "context"

// schema es el DDL del servicio. Espejo de migrations/postgres; se aplica
// idempotente en el arranque en entornos sin pipeline de migraciones.
const schema = `
CREATE TABLE IF NOT EXISTS identities (
	id            TEXT PRIMARY KEY,
	email         TEXT NOT NULL,
	password_hash TEXT,
	metadata      JSONB,
	created_at    TIMESTAMPTZ NOT NULL DEFAULT now()
);
CREATE UNIQUE INDEX IF NOT EXISTS identities_email_idx ON identities (lower(email));

CREATE TABLE IF NOT EXISTS profiles (
	id           TEXT PRIMARY KEY REFERENCES identities(id) ON DELETE CASCADE,
	display_name TEXT NOT NULL,
	avatar_url   TEXT,
	email        TEXT NOT NULL,
	created_at   TIMESTAMPTZ NOT NULL DEFAULT now(),
	updated_at   TIMESTAMPTZ NOT NULL DEFAULT now()
);

CREATE TABLE IF NOT EXISTS connected_accounts (
	id                  TEXT PRIMARY KEY,
	user_id             TEXT NOT NULL REFERENCES identities(id) ON DELETE CASCADE,
	provider            TEXT NOT NULL,
	provider_account_id TEXT NOT NULL,
	email               TEXT NOT NULL DEFAULT '',
	created_at          TIMESTAMPTZ NOT NULL DEFAULT now(),
	UNIQUE (provider, provider_account_id)
);
CREATE INDEX IF NOT EXISTS connected_accounts_user_idx
	ON connected_accounts (user_id, created_at ASC);

CREATE TABLE IF NOT EXISTS personalization (
	user_id       TEXT PRIMARY KEY REFERENCES identities(id) ON DELETE CASCADE,
	system_prompt TEXT NOT NULL DEFAULT '',
	notes         TEXT NOT NULL DEFAULT '',
	updated_at    TIMESTAMPTZ NOT NULL DEFAULT now()
);
`

// ApplySchema aplica el DDL embebido.
func (s *Store) ApplySchema(ctx context.Context) error {
	_, err := s.pool.Exec(ctx, schema)
	return err
}

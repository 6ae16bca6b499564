package postgres

import (
	"context"
	"fmt"
)

// schema es idempotente: se puede ejecutar en cada arranque.
const schema = `
CREATE TABLE IF NOT EXISTS documents (
	collection    TEXT        NOT NULL,
	id            TEXT        NOT NULL,
	restaurant_id TEXT        NOT NULL DEFAULT '',
	body          JSONB       NOT NULL,
	created_at    TIMESTAMPTZ NOT NULL DEFAULT now(),
	PRIMARY KEY (collection, id)
);

CREATE INDEX IF NOT EXISTS idx_documents_tenant
	ON documents (collection, restaurant_id, created_at DESC);

CREATE UNIQUE INDEX IF NOT EXISTS uq_documents_user_email
	ON documents (lower(body->>'email'))
	WHERE collection = 'users';
`

// Migrate crea la tabla de documentos y sus índices si no existen.
func Migrate(ctx context.Context, db DBTX) error {
	if _, err := db.Exec(ctx, schema); err != nil {
		return fmt.Errorf("migrar esquema: %w", err)
	}
	return nil
}

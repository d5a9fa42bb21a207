package postgres

import (
	"context"
	"fmt"
)

// schemaDDL tablas de la réplica local de ventas. Los importes se guardan como
// texto porque el backend mezcla números y cadenas.
const schemaDDL = `
CREATE TABLE IF NOT EXISTS sales_records (
	id             TEXT        NOT NULL,
	kind           TEXT        NOT NULL CHECK (kind IN ('order', 'invoice')),
	invoice_number TEXT        NOT NULL DEFAULT '',
	customer_name  TEXT        NOT NULL DEFAULT '',
	payment_method TEXT        NOT NULL DEFAULT '',
	cash_amount    TEXT,
	momo_amount    TEXT,
	total_amount   TEXT,
	items          JSONB       NOT NULL DEFAULT '[]'::jsonb,
	created_at     TIMESTAMPTZ,
	PRIMARY KEY (kind, id)
);
CREATE INDEX IF NOT EXISTS idx_sales_records_created ON sales_records (kind, created_at DESC);

CREATE TABLE IF NOT EXISTS products (
	id              TEXT PRIMARY KEY,
	name            TEXT          NOT NULL,
	category        TEXT          NOT NULL DEFAULT '',
	quantity        INTEGER       NOT NULL DEFAULT 0,
	retail_price    NUMERIC(14,2) NOT NULL DEFAULT 0,
	wholesale_price NUMERIC(14,2) NOT NULL DEFAULT 0,
	created_at      TIMESTAMPTZ
);

CREATE TABLE IF NOT EXISTS expenses (
	id          TEXT PRIMARY KEY,
	description TEXT NOT NULL DEFAULT '',
	amount      TEXT,
	category    TEXT NOT NULL DEFAULT '',
	spent_at    TIMESTAMPTZ,
	notes       TEXT NOT NULL DEFAULT ''
);

CREATE TABLE IF NOT EXISTS watermarks (
	scope        TEXT PRIMARY KEY,
	last_seen_at TIMESTAMPTZ NOT NULL,
	last_seen_id TEXT        NOT NULL DEFAULT '',
	updated_at   TIMESTAMPTZ NOT NULL DEFAULT now()
);
`

// EnsureSchema crea las tablas si no existen.
func EnsureSchema(ctx context.Context, q Querier) error {
	if _, err := q.Exec(ctx, schemaDDL); err != nil {
		return fmt.Errorf("postgres.EnsureSchema: %w", err)
	}
	return nil
}

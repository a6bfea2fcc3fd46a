package postgres

import (
	"context"

	"github.com/jackc/pgx/v5/pgxpool"
)

// schemaSQL is idempotent so it can run on every process start.
const schemaSQL = `CREATE TABLE IF NOT EXISTS time_log (
    id SERIAL PRIMARY KEY,
    entry_date DATE NOT NULL,
    time_slot TIME NOT NULL,
    activity TEXT,
    category TEXT,
    priority TEXT,
    notes TEXT,
    UNIQUE (entry_date, time_slot)
)`

// EnsureSchema creates the time_log table if it does not exist yet.
func EnsureSchema(ctx context.Context, pool *pgxpool.Pool) error {
	_, err := pool.Exec(ctx, schemaSQL)
	return err
}

// Package postgres provides pgx-backed persistence for time log entries.
package postgres

import (
	"context"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"

	"example.com/timelog/internal/domain"
	"example.com/timelog/internal/observability"
)

// Repository implements domain.EntryRepository on top of a pgx pool.
type Repository struct {
	pool *pgxpool.Pool
}

// NewRepository constructs a Repository.
func NewRepository(pool *pgxpool.Pool) *Repository {
	return &Repository{pool: pool}
}

// ListByDate returns every entry for the given ISO date keyed by HH:MM slot.
func (r *Repository) ListByDate(ctx context.Context, date string) (map[string]domain.TimeLogEntry, error) {
	const query = `SELECT to_char(time_slot, 'HH24:MI'),
            COALESCE(activity, ''), COALESCE(category, ''), COALESCE(priority, ''), COALESCE(notes, '')
        FROM time_log WHERE entry_date = $1::date`

	rows, err := r.pool.Query(ctx, query, date)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	entries := make(map[string]domain.TimeLogEntry)
	for rows.Next() {
		entry := domain.TimeLogEntry{Date: date}
		if err := rows.Scan(&entry.Slot, &entry.Activity, &entry.Category, &entry.Priority, &entry.Notes); err != nil {
			return nil, err
		}
		entries[entry.Slot] = entry
	}
	return entries, rows.Err()
}

// Upsert inserts the entry or overwrites the existing row for (date, slot).
// Date and slot values are cast by Postgres; malformed input surfaces as a
// store error rather than being validated here.
func (r *Repository) Upsert(ctx context.Context, entry domain.TimeLogEntry) error {
	const stmt = `INSERT INTO time_log (entry_date, time_slot, activity, category, priority, notes)
        VALUES ($1::date, $2::time, $3, $4, $5, $6)
        ON CONFLICT (entry_date, time_slot)
        DO UPDATE SET
            activity = EXCLUDED.activity,
            category = EXCLUDED.category,
            priority = EXCLUDED.priority,
            notes = EXCLUDED.notes`

	if _, err := r.pool.Exec(ctx, stmt,
		entry.Date,
		entry.Slot,
		entry.Activity,
		entry.Category,
		entry.Priority,
		entry.Notes,
	); err != nil {
		return err
	}
	observability.RecordEntryPersisted(time.Now())
	return nil
}

// CategoryTotals aggregates hours per non-empty category across all dates.
func (r *Repository) CategoryTotals(ctx context.Context) ([]domain.DashboardRow, error) {
	const query = `SELECT category, COUNT(*) * 0.25 AS total_hours
        FROM time_log
        WHERE category IS NOT NULL AND category != ''
        GROUP BY category
        ORDER BY total_hours DESC`

	rows, err := r.pool.Query(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var totals []domain.DashboardRow
	for rows.Next() {
		var row domain.DashboardRow
		if err := rows.Scan(&row.Category, &row.Hours); err != nil {
			return nil, err
		}
		totals = append(totals, row)
	}
	return totals, rows.Err()
}

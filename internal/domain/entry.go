// Package domain defines the time log model shared by the web and persistence layers.
package domain

import "context"

// TimeLogEntry is one quarter-hour block of a day. Date and Slot carry the
// values exactly as submitted ("2006-01-02" and "HH:MM"); the store is the
// only place their format is enforced.
type TimeLogEntry struct {
	Date     string
	Slot     string
	Activity string
	Category string
	Priority string
	Notes    string
}

// DashboardRow is a derived per-category total, never stored.
type DashboardRow struct {
	Category string
	Hours    float64
}

// EntryRepository captures persistence operations for time log entries.
type EntryRepository interface {
	// ListByDate returns every entry stored for the given ISO date, keyed by
	// its zero-padded HH:MM slot label.
	ListByDate(ctx context.Context, date string) (map[string]TimeLogEntry, error)
	// Upsert inserts the entry or, when one already exists for (date, slot),
	// overwrites all four text fields in place.
	Upsert(ctx context.Context, entry TimeLogEntry) error
	// CategoryTotals aggregates hours per non-empty category across all
	// stored dates, ordered descending by hours.
	CategoryTotals(ctx context.Context) ([]DashboardRow, error)
}

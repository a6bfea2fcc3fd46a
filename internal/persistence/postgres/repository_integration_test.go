//go:build integration

package postgres

import (
	"context"
	"testing"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/stretchr/testify/require"
	postgrescontainer "github.com/testcontainers/testcontainers-go/modules/postgres"

	"example.com/timelog/internal/domain"
)

func startDatabase(t *testing.T, ctx context.Context) *pgxpool.Pool {
	t.Helper()

	pg, err := postgrescontainer.RunContainer(ctx,
		postgrescontainer.WithDatabase("timelog"),
		postgrescontainer.WithUsername("timelog"),
		postgrescontainer.WithPassword("timelog"),
	)
	require.NoError(t, err)
	t.Cleanup(func() { _ = pg.Terminate(ctx) })

	connStr, err := pg.ConnectionString(ctx, "sslmode=disable")
	require.NoError(t, err)

	require.NoError(t, waitForDatabase(ctx, connStr))

	pool, err := pgxpool.New(ctx, connStr)
	require.NoError(t, err)
	t.Cleanup(func() { pool.Close() })

	require.NoError(t, EnsureSchema(ctx, pool))
	// Safe to run again on an existing table.
	require.NoError(t, EnsureSchema(ctx, pool))

	return pool
}

func TestUpsertIsIdempotentByKey(t *testing.T) {
	ctx := context.Background()
	pool := startDatabase(t, ctx)
	repo := NewRepository(pool)

	entry := domain.TimeLogEntry{
		Date:     "2024-03-01",
		Slot:     "09:00",
		Activity: "Write report",
		Category: "Deep Work",
		Priority: "Finish draft",
		Notes:    "focused",
	}
	require.NoError(t, repo.Upsert(ctx, entry))

	entry.Activity = "Review report"
	entry.Notes = "second pass"
	require.NoError(t, repo.Upsert(ctx, entry))

	var count int
	require.NoError(t, pool.QueryRow(ctx,
		`SELECT COUNT(*) FROM time_log WHERE entry_date = $1::date AND time_slot = $2::time`,
		entry.Date, entry.Slot).Scan(&count))
	require.Equal(t, 1, count, "upsert must never duplicate a (date, slot) pair")

	stored, err := repo.ListByDate(ctx, entry.Date)
	require.NoError(t, err)
	require.Equal(t, "Review report", stored["09:00"].Activity)
	require.Equal(t, "second pass", stored["09:00"].Notes)
}

func TestUpsertRoundTrip(t *testing.T) {
	ctx := context.Background()
	pool := startDatabase(t, ctx)
	repo := NewRepository(pool)

	entry := domain.TimeLogEntry{
		Date:     "2024-03-01",
		Slot:     "09:00",
		Activity: "Write report",
		Category: "Deep Work",
		Priority: "Finish draft",
		Notes:    "focused",
	}
	require.NoError(t, repo.Upsert(ctx, entry))

	stored, err := repo.ListByDate(ctx, "2024-03-01")
	require.NoError(t, err)
	require.Equal(t, entry, stored["09:00"])
}

func TestListByDateIsScopedToItsDate(t *testing.T) {
	ctx := context.Background()
	pool := startDatabase(t, ctx)
	repo := NewRepository(pool)

	require.NoError(t, repo.Upsert(ctx, domain.TimeLogEntry{Date: "2024-03-01", Slot: "09:00", Activity: "a"}))
	require.NoError(t, repo.Upsert(ctx, domain.TimeLogEntry{Date: "2024-03-01", Slot: "09:15", Activity: "b"}))
	require.NoError(t, repo.Upsert(ctx, domain.TimeLogEntry{Date: "2024-03-02", Slot: "09:00", Activity: "c"}))

	stored, err := repo.ListByDate(ctx, "2024-03-01")
	require.NoError(t, err)
	require.Len(t, stored, 2)
	require.Equal(t, "a", stored["09:00"].Activity)
	require.Equal(t, "b", stored["09:15"].Activity)
}

func TestCategoryTotals(t *testing.T) {
	ctx := context.Background()
	pool := startDatabase(t, ctx)
	repo := NewRepository(pool)

	// Four quarter-hour blocks of Deep Work spread over two days, one block
	// of Admin and one uncategorized block.
	for i, slot := range []string{"09:00", "09:15", "10:30"} {
		date := "2024-03-01"
		if i == 2 {
			date = "2024-03-02"
		}
		require.NoError(t, repo.Upsert(ctx, domain.TimeLogEntry{Date: date, Slot: slot, Category: "Deep Work"}))
	}
	require.NoError(t, repo.Upsert(ctx, domain.TimeLogEntry{Date: "2024-03-02", Slot: "11:00", Category: "Deep Work"}))
	require.NoError(t, repo.Upsert(ctx, domain.TimeLogEntry{Date: "2024-03-01", Slot: "12:00", Category: "Admin"}))
	require.NoError(t, repo.Upsert(ctx, domain.TimeLogEntry{Date: "2024-03-01", Slot: "13:00", Activity: "lunch"}))

	totals, err := repo.CategoryTotals(ctx)
	require.NoError(t, err)
	require.Len(t, totals, 2, "empty categories must be excluded")

	require.Equal(t, "Deep Work", totals[0].Category)
	require.InDelta(t, 1.0, totals[0].Hours, 1e-9)
	require.Equal(t, "Admin", totals[1].Category)
	require.InDelta(t, 0.25, totals[1].Hours, 1e-9)
}

func TestUpsertRejectsMalformedSlot(t *testing.T) {
	ctx := context.Background()
	pool := startDatabase(t, ctx)
	repo := NewRepository(pool)

	err := repo.Upsert(ctx, domain.TimeLogEntry{Date: "2024-03-01", Slot: "not-a-time"})
	require.Error(t, err, "the store enforces slot format, the application does not")
}

func waitForDatabase(ctx context.Context, connStr string) error {
	deadline := time.Now().Add(30 * time.Second)
	for {
		pool, err := pgxpool.New(ctx, connStr)
		if err == nil {
			err = pool.Ping(ctx)
			pool.Close()
			if err == nil {
				return nil
			}
		}
		if time.Now().After(deadline) {
			return err
		}
		time.Sleep(time.Second)
	}
}

// Command initdb re-runs schema initialization against the configured
// database, independently of the web process. Intended for bootstrap and
// operational use.
package main

import (
	"context"
	"log"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"

	"example.com/timelog/internal/config"
	persistence "example.com/timelog/internal/persistence/postgres"
)

func main() {
	cfg := config.Load()

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	pool, err := pgxpool.New(ctx, cfg.PostgresURL())
	if err != nil {
		log.Fatalf("invalid postgres configuration: %v", err)
	}
	defer pool.Close()

	log.Printf("connecting to %s:%d/%s", cfg.DBHost, cfg.DBPort, cfg.DBName)
	if err := pool.Ping(ctx); err != nil {
		log.Fatalf("could not connect to the database, check the DB_* environment variables: %v", err)
	}

	if err := persistence.EnsureSchema(ctx, pool); err != nil {
		log.Fatalf("schema initialization failed: %v", err)
	}
	log.Printf("table time_log is ready")
}

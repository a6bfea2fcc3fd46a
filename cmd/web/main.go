package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"example.com/timelog/internal/config"
	persistence "example.com/timelog/internal/persistence/postgres"
	httptransport "example.com/timelog/internal/transport/http"
	"example.com/timelog/internal/web"
)

func main() {
	cfg := config.Load()

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	pool, err := pgxpool.New(ctx, cfg.PostgresURL())
	if err != nil {
		log.Fatalf("invalid postgres configuration: %v", err)
	}
	defer pool.Close()

	// Best effort: a failure here is logged and the process keeps serving.
	// Requests will surface the connection problem as error pages.
	initCtx, initCancel := context.WithTimeout(ctx, 10*time.Second)
	if err := persistence.EnsureSchema(initCtx, pool); err != nil {
		log.Printf("schema initialization failed: %v", err)
	} else {
		log.Printf("table time_log is ready")
	}
	initCancel()

	repo := persistence.NewRepository(pool)
	handler := web.NewHandler(repo)

	mux := http.NewServeMux()
	handler.RegisterRoutes(mux)
	mux.Handle("/metrics", promhttp.Handler())

	// Basic request logger with a per-request ID
	logger := func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			log.Printf("[%s] %s %s", uuid.NewString()[:8], r.Method, r.URL.Path)
			next.ServeHTTP(w, r)
		})
	}

	server := httptransport.NewServer(httptransport.ServerConfig{
		Address:      cfg.HTTPAddress,
		ReadTimeout:  5 * time.Second,
		WriteTimeout: 10 * time.Second,
		IdleTimeout:  60 * time.Second,
	}, logger(mux))

	shutdownCh := make(chan os.Signal, 1)
	signal.Notify(shutdownCh, syscall.SIGINT, syscall.SIGTERM)

	go func() {
		log.Printf("timelog listening on %s", cfg.HTTPAddress)
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("server error: %v", err)
		}
	}()

	<-shutdownCh
	cancel()

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer shutdownCancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		log.Printf("graceful shutdown failed: %v", err)
	}
}

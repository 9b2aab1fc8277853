// Package main is the entry point for the WanderPlan API server.
// Its sole responsibility is wiring dependencies together and starting the server.
// No business logic belongs here.
package main

import (
	"context"
	"database/sql"
	"errors"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
	_ "github.com/jackc/pgx/v5/stdlib" // registers "pgx" driver for database/sql
	"github.com/pressly/goose/v3"

	"github.com/mpatel-dev/wanderplan/backend/internal/config"
	"github.com/mpatel-dev/wanderplan/backend/internal/handler"
	"github.com/mpatel-dev/wanderplan/backend/internal/planner"
	"github.com/mpatel-dev/wanderplan/backend/internal/repo"
	"github.com/mpatel-dev/wanderplan/backend/internal/service"
	"github.com/mpatel-dev/wanderplan/backend/migrations"
)

func main() {
	// --- Config -----------------------------------------------------------
	cfg, err := config.Load()
	if err != nil {
		// Use plain stderr before the logger is configured.
		slog.Error("configuration error", "error", err)
		os.Exit(1)
	}

	// --- Logger -----------------------------------------------------------
	// log/slog is the stdlib structured logger introduced in Go 1.21.
	// JSON handler writes machine-readable output suitable for log aggregators.
	var logLevel slog.Level
	if err := logLevel.UnmarshalText([]byte(cfg.LogLevel)); err != nil {
		logLevel = slog.LevelInfo
	}
	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		Level: logLevel,
	}))
	slog.SetDefault(logger)

	// --- Database ---------------------------------------------------------
	// pgxpool manages a pool of Postgres connections.
	// New() does not open connections immediately — the first query does.
	pool, err := pgxpool.New(context.Background(), cfg.DatabaseURL)
	if err != nil {
		slog.Error("failed to create database pool", "error", err)
		os.Exit(1)
	}
	defer pool.Close()

	// Verify the DB is reachable before accepting traffic.
	if err := pool.Ping(context.Background()); err != nil {
		slog.Error("failed to connect to database", "error", err)
		os.Exit(1)
	}
	slog.Info("database connection established")

	// --- Migrations -------------------------------------------------------
	// goose drives the embedded SQL migrations through database/sql; the pgx
	// stdlib driver shares the same DSN as the pool.
	if err := runMigrations(cfg.DatabaseURL); err != nil {
		slog.Error("failed to run migrations", "error", err)
		os.Exit(1)
	}
	slog.Info("migrations applied")

	// --- Wiring -----------------------------------------------------------
	provider := planner.NewOpenAIProvider(cfg.OpenAIAPIKey, cfg.AIModel)
	if !provider.IsAvailable() {
		slog.Warn("OPENAI_API_KEY not set; itineraries will use the deterministic fallback")
	}
	plan := planner.New(provider, cfg.AITimeout, logger)

	tripRepo := repo.NewTripRepo(pool)
	expenseRepo := repo.NewExpenseRepo(pool)

	trips := service.NewTripService(tripRepo, plan, logger)
	expenses := service.NewExpenseService(expenseRepo)
	advice := service.NewAdviceService(expenseRepo, provider, cfg.AITimeout, logger)

	srvHandlers := handler.NewServer(trips, expenses, advice, logger)
	router := handler.NewRouter(srvHandlers, handler.RouterOptions{
		Logger:      logger,
		JWTSecret:   cfg.JWTSecret,
		CORSOrigins: cfg.CORSOrigins,
	})

	// --- HTTP Server ------------------------------------------------------
	// Explicit timeouts prevent slowloris and resource exhaustion attacks.
	// WriteTimeout leaves headroom over the planner's per-attempt budget so a
	// slow generation (attempt + retry) does not get cut off mid-response.
	srv := &http.Server{
		Addr:         ":" + cfg.Port,
		Handler:      router,
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 2*cfg.AITimeout + 10*time.Second,
		IdleTimeout:  60 * time.Second,
	}

	// Graceful shutdown: wait for OS signal, then give in-flight requests
	// up to 15 seconds to complete before forcefully closing.
	stop := make(chan os.Signal, 1)
	signal.Notify(stop, syscall.SIGINT, syscall.SIGTERM)

	go func() {
		slog.Info("server starting", "addr", srv.Addr)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			slog.Error("server error", "error", err)
			os.Exit(1)
		}
	}()

	<-stop
	slog.Info("shutting down server")

	ctx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		slog.Error("shutdown error", "error", err)
		os.Exit(1)
	}
	slog.Info("server stopped")
}

// runMigrations applies all embedded goose migrations against the database.
func runMigrations(dsn string) error {
	db, err := sql.Open("pgx", dsn)
	if err != nil {
		return err
	}
	defer db.Close()

	provider, err := goose.NewProvider(goose.DialectPostgres, db, migrations.FS)
	if err != nil {
		return err
	}
	_, err = provider.Up(context.Background())
	return err
}

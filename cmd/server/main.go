package main

import (
	"context"
	"database/sql"
	"flag"
	"fmt"
	"log"
	"log/slog"
	"mission-energy-service/internal/adapters/distance"
	"mission-energy-service/internal/adapters/repositories"
	"mission-energy-service/internal/api"
	"mission-energy-service/internal/config"
	"mission-energy-service/internal/platform/db"
	"mission-energy-service/internal/platform/logging"
	"net/http"
	"time"

	"github.com/joho/godotenv"
)

// main is the application composition root.
// It wires concrete adapters (SQL store, haversine) behind ports and starts the HTTP server.
func main() {
	configPath := flag.String("config", "configs/server.yaml", "Path to the YAML configuration file")
	flag.Parse()

	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found (using environment variables)")
	}

	cfg, err := config.Load(*configPath)
	if err != nil {
		log.Fatal(err)
	}

	closeLog, err := logging.Init(cfg.Log)
	if err != nil {
		log.Fatal(err)
	}
	defer closeLog()

	conn, err := db.Open(cfg.DB.Driver, cfg.DB.DSN)
	if err != nil {
		slog.Error("open database", "driver", cfg.DB.Driver, "err", err)
		return
	}
	defer conn.Close()

	// Initialize schema and seed demo data on startup for local runs.
	if err := initAndSeed(conn, cfg); err != nil {
		slog.Error("init and seed", "err", err)
		return
	}

	repo, err := repositories.NewSQLScenarioRepository(conn, cfg.DB.Driver)
	if err != nil {
		slog.Error("scenario repository", "err", err)
		return
	}
	router := api.NewRouter(repo, distance.NewHaversineProvider())

	slog.Info("server listening", "addr", cfg.Server.Address, "db_driver", cfg.DB.Driver)
	srv := &http.Server{
		Addr:              cfg.Server.Address,
		Handler:           router,
		ReadHeaderTimeout: 5 * time.Second,
		ReadTimeout:       10 * time.Second,
		WriteTimeout:      30 * time.Second,
		IdleTimeout:       60 * time.Second,
	}
	if err := srv.ListenAndServe(); err != nil {
		slog.Error("server stopped", "err", err)
	}
}

// initAndSeed creates the schema and, when the store is empty, loads the
// JSON scenarios found under the data directory.
func initAndSeed(conn *sql.DB, cfg *config.Config) error {
	ctx := context.Background()

	if err := repositories.InitSchema(ctx, conn); err != nil {
		return fmt.Errorf("init and seed: %w", err)
	}

	repo, err := repositories.NewSQLScenarioRepository(conn, cfg.DB.Driver)
	if err != nil {
		return fmt.Errorf("init and seed: %w", err)
	}
	ids, err := repo.ListScenarioIDs(ctx)
	if err != nil {
		return fmt.Errorf("init and seed: %w", err)
	}
	if len(ids) > 0 {
		slog.Info("scenario store already seeded", "scenarios", len(ids))
		return nil
	}

	src := repositories.NewJSONScenarioRepository(cfg.Data.Dir)
	if err := repositories.SeedFromRepository(ctx, conn, cfg.DB.Driver, src); err != nil {
		return fmt.Errorf("init and seed: %w", err)
	}
	slog.Info("scenario store seeded", "data_dir", cfg.Data.Dir)

	return nil
}

package main

import (
	"context"
	"database/sql"
	"flag"
	"log"
	"mission-energy-service/internal/adapters/repositories"
	"mission-energy-service/internal/config"
	"mission-energy-service/internal/platform/db"

	"github.com/joho/godotenv"
)

func main() {
	configPath := flag.String("config", "configs/server.yaml", "Path to the YAML configuration file")
	dataDir := flag.String("data", "", "JSON scenario directory (overrides config)")
	flag.Parse()

	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found (using environment variables)")
	}

	cfg, err := config.Load(*configPath)
	if err != nil {
		log.Fatal(err)
	}
	if *dataDir != "" {
		cfg.Data.Dir = *dataDir
	}

	conn, err := db.Open(cfg.DB.Driver, cfg.DB.DSN)
	if err != nil {
		log.Fatal(err)
	}
	defer conn.Close()

	if err := initAndSeed(conn, cfg.DB.Driver, cfg.Data.Dir); err != nil {
		log.Fatal(err)
	}
}

func initAndSeed(conn *sql.DB, driver, dataDir string) error {
	ctx := context.Background()

	log.Printf("Initializing %s database schema...", driver)
	if err := repositories.InitSchema(ctx, conn); err != nil {
		log.Fatalf("schema initialization failed: %v", err)
	}
	log.Println("Schema ready.")

	log.Printf("Seeding database from %s...", dataDir)
	src := repositories.NewJSONScenarioRepository(dataDir)
	if err := repositories.SeedFromRepository(ctx, conn, driver, src); err != nil {
		log.Fatalf("seeding failed: %v", err)
	}
	log.Println("Seeding complete.")

	return nil
}

package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"io/fs"
	"log"
	"log/slog"
	"mission-energy-service/internal/adapters/repositories"
	"mission-energy-service/internal/config"
	"mission-energy-service/internal/platform/logging"
	"mission-energy-service/internal/services"
	"os"

	"github.com/joho/godotenv"
)

// evaluate checks every scenario of a JSON data directory and prints
// "<mission name> : <feasible>" per mission. Scenarios that cannot be
// evaluated are logged and skipped.
func main() {
	os.Exit(run(os.Args[1:], os.Stdout))
}

func run(args []string, out io.Writer) int {
	fset := flag.NewFlagSet("evaluate", flag.ContinueOnError)
	envFile := fset.String("env", ".env", "dotenv file loaded before reading the environment")
	dataDir := fset.String("data", "", "JSON scenario directory (default $DATA_DIR or data)")
	level := fset.String("log-level", "", "DEBUG, INFO, WARN or ERROR (default $LOG_LEVEL or WARN)")
	if err := fset.Parse(args); err != nil {
		return 2
	}

	if err := godotenv.Load(*envFile); err != nil {
		if !errors.Is(err, fs.ErrNotExist) {
			log.Printf("load %s: %v", *envFile, err)
			return 1
		}
		log.Println("No .env file found (using environment variables)")
	}
	if *dataDir == "" {
		*dataDir = config.Get("DATA_DIR", "data")
	}
	if *level == "" {
		*level = config.Get("LOG_LEVEL", "WARN")
	}

	closeLog, err := logging.Init(config.LogConfig{Level: *level})
	if err != nil {
		log.Print(err)
		return 1
	}
	defer closeLog()

	repo := repositories.NewJSONScenarioRepository(*dataDir)
	results, err := services.EvaluateScenarios(context.Background(), repo, nil)
	if err != nil {
		slog.Error("evaluate scenarios", "data_dir", *dataDir, "err", err)
		return 1
	}

	for _, r := range results {
		if r.Err != nil {
			slog.Warn("scenario skipped", "id", r.ID, "err", r.Err)
			continue
		}
		fmt.Fprintf(out, "%s : %t\n", r.MissionName, r.Verdict.Feasible)
	}
	return 0
}

package repositories

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"mission-energy-service/internal/domain"
	"mission-energy-service/internal/ports"
)

// Initialize the scenario schema. The statements are valid for both SQLite
// and Postgres.
func InitSchema(ctx context.Context, db *sql.DB) error {
	if db == nil {
		return errors.New("init schema: DB is nil")
	}

	tx, err := db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("init schema: begin tx: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	createScenariosQuery := `
	CREATE TABLE IF NOT EXISTS scenarios (
		id INTEGER PRIMARY KEY,
		mission_name TEXT NOT NULL,
		horizontal_speed DOUBLE PRECISION NOT NULL,
		altitude DOUBLE PRECISION NOT NULL,
		ascension_speed DOUBLE PRECISION NOT NULL,
		descent_speed DOUBLE PRECISION NOT NULL,
		additional_load DOUBLE PRECISION,
		number_of_batteries INTEGER NOT NULL,
		battery_capacity DOUBLE PRECISION NOT NULL,
		ascension_load DOUBLE PRECISION NOT NULL,
		translation_load DOUBLE PRECISION NOT NULL,
		descent_load DOUBLE PRECISION NOT NULL
	);
	`

	createWaypointsQuery := `
	CREATE TABLE IF NOT EXISTS waypoints (
		scenario_id INTEGER NOT NULL REFERENCES scenarios(id) ON DELETE CASCADE,
		seq INTEGER NOT NULL,
		latitude DOUBLE PRECISION NOT NULL,
		longitude DOUBLE PRECISION NOT NULL,
		PRIMARY KEY (scenario_id, seq)
	);
	`

	statements := []string{
		createScenariosQuery,
		createWaypointsQuery,
	}

	for i, stmt := range statements {
		if _, err := tx.ExecContext(ctx, stmt); err != nil {
			return fmt.Errorf("init schema: exec statement #%d: %w", i+1, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("init schema: commit tx: %w", err)
	}

	return nil
}

// Insert or replace scenarios and their waypoints in a single transaction.
func SeedScenarios(ctx context.Context, db *sql.DB, driver string, scenarios []*domain.Scenario) error {
	if db == nil {
		return errors.New("seed scenarios: DB is nil")
	}

	for i, sc := range scenarios {
		if sc == nil || sc.Mission == nil || sc.Config == nil || sc.Drone == nil {
			return fmt.Errorf("seed scenarios: incomplete scenario at index %d: %w", i, domain.ErrInvalidMission)
		}
	}

	tx, err := db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("seed scenarios: begin tx: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	upsertScenario := rebind(driver, `
	INSERT INTO scenarios (
		id,
		mission_name,
		horizontal_speed,
		altitude,
		ascension_speed,
		descent_speed,
		additional_load,
		number_of_batteries,
		battery_capacity,
		ascension_load,
		translation_load,
		descent_load
	)
	VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
	ON CONFLICT (id) DO UPDATE
	SET mission_name = EXCLUDED.mission_name,
		horizontal_speed = EXCLUDED.horizontal_speed,
		altitude = EXCLUDED.altitude,
		ascension_speed = EXCLUDED.ascension_speed,
		descent_speed = EXCLUDED.descent_speed,
		additional_load = EXCLUDED.additional_load,
		number_of_batteries = EXCLUDED.number_of_batteries,
		battery_capacity = EXCLUDED.battery_capacity,
		ascension_load = EXCLUDED.ascension_load,
		translation_load = EXCLUDED.translation_load,
		descent_load = EXCLUDED.descent_load;
	`)
	deleteWaypoints := rebind(driver, `DELETE FROM waypoints WHERE scenario_id = ?;`)
	insertWaypoint := rebind(driver, `
	INSERT INTO waypoints (
		scenario_id,
		seq,
		latitude,
		longitude
	)
	VALUES (?, ?, ?, ?);
	`)

	for _, sc := range scenarios {
		var payload sql.NullFloat64
		if sc.Config.Payload != nil {
			payload = sql.NullFloat64{Float64: sc.Config.Payload.AdditionalLoad, Valid: true}
		}
		loads := sc.Drone.CurrentLoadInFlight

		if _, err := tx.ExecContext(ctx, upsertScenario,
			sc.ID,
			sc.Mission.Name,
			sc.Mission.HorizontalSpeed,
			sc.Mission.Altitude,
			sc.Config.VerticalSpeeds.Ascension,
			sc.Config.VerticalSpeeds.Descent,
			payload,
			sc.Config.Energy.NumberOfBatteries,
			sc.Config.Energy.Capacity,
			loads.Ascension,
			loads.Translation,
			loads.Descent,
		); err != nil {
			return fmt.Errorf("seed scenarios: upsert scenario id=%d: %w", sc.ID, err)
		}

		if _, err := tx.ExecContext(ctx, deleteWaypoints, sc.ID); err != nil {
			return fmt.Errorf("seed scenarios: clear waypoints id=%d: %w", sc.ID, err)
		}

		for seq, p := range sc.Mission.Points {
			if _, err := tx.ExecContext(ctx, insertWaypoint, sc.ID, seq, p.Lat, p.Lon); err != nil {
				return fmt.Errorf("seed scenarios: insert waypoint id=%d seq=%d: %w", sc.ID, seq, err)
			}
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("seed scenarios: commit tx: %w", err)
	}

	return nil
}

// Copy every scenario of src into the database. Scenarios that fail to load
// abort the seed; a partial seed is never committed.
func SeedFromRepository(ctx context.Context, db *sql.DB, driver string, src ports.ScenarioRepository) error {
	ids, err := src.ListScenarioIDs(ctx)
	if err != nil {
		return fmt.Errorf("seed from repository: list ids: %w", err)
	}

	scenarios := make([]*domain.Scenario, 0, len(ids))
	for _, id := range ids {
		sc, err := src.GetScenario(ctx, id)
		if err != nil {
			return fmt.Errorf("seed from repository: %w", err)
		}
		scenarios = append(scenarios, sc)
	}

	return SeedScenarios(ctx, db, driver, scenarios)
}

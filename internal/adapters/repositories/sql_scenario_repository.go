package repositories

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"mission-energy-service/internal/domain"
	"mission-energy-service/internal/platform/db"
	"mission-energy-service/internal/platform/obs"
	"strconv"
	"strings"
)

// SQL-backed implementation of the ScenarioRepository port.
// Queries are written with "?" placeholders and rebound for Postgres.
type SQLScenarioRepository struct {
	DB     *sql.DB
	Driver string
}

func NewSqliteScenarioRepository(conn *sql.DB) *SQLScenarioRepository {
	return &SQLScenarioRepository{DB: conn, Driver: db.DriverSqlite}
}

func NewPostgresScenarioRepository(conn *sql.DB) *SQLScenarioRepository {
	return &SQLScenarioRepository{DB: conn, Driver: db.DriverPostgres}
}

// NewSQLScenarioRepository picks the repository dialect from a db driver name.
func NewSQLScenarioRepository(conn *sql.DB, driver string) (*SQLScenarioRepository, error) {
	switch driver {
	case db.DriverSqlite:
		return NewSqliteScenarioRepository(conn), nil
	case db.DriverPostgres:
		return NewPostgresScenarioRepository(conn), nil
	default:
		return nil, fmt.Errorf("new sql scenario repository: unsupported driver %q", driver)
	}
}

// Return all scenario ids stored in the database.
func (s *SQLScenarioRepository) ListScenarioIDs(ctx context.Context) (_ []int, err error) {
	defer obs.Time(ctx, "sql.ListScenarioIDs")(&err)

	if s.DB == nil {
		return nil, errors.New("sql scenario repository: DB is nil")
	}

	rows, err := s.DB.QueryContext(ctx, `SELECT id FROM scenarios ORDER BY id;`)
	if err != nil {
		return nil, fmt.Errorf("list scenario ids: query scenarios table: %w", err)
	}
	defer rows.Close()

	ids := make([]int, 0, 16)
	for rows.Next() {
		var id int
		if err := rows.Scan(&id); err != nil {
			return nil, fmt.Errorf("list scenario ids: scan row: %w", err)
		}
		ids = append(ids, id)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("list scenario ids: row iteration: %w", err)
	}

	return ids, nil
}

// Return one scenario with its ordered waypoints.
func (s *SQLScenarioRepository) GetScenario(ctx context.Context, id int) (_ *domain.Scenario, err error) {
	defer obs.Time(ctx, "sql.GetScenario")(&err)

	if s.DB == nil {
		return nil, errors.New("sql scenario repository: DB is nil")
	}

	q := s.rebind(`
	SELECT
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
	FROM scenarios
	WHERE id = ?;
	`)

	var (
		mission domain.Mission
		cfg     domain.MissionConfig
		drone   domain.Drone
		payload sql.NullFloat64
	)
	err = s.DB.QueryRowContext(ctx, q, id).Scan(
		&mission.Name,
		&mission.HorizontalSpeed,
		&mission.Altitude,
		&cfg.VerticalSpeeds.Ascension,
		&cfg.VerticalSpeeds.Descent,
		&payload,
		&cfg.Energy.NumberOfBatteries,
		&cfg.Energy.Capacity,
		&drone.CurrentLoadInFlight.Ascension,
		&drone.CurrentLoadInFlight.Translation,
		&drone.CurrentLoadInFlight.Descent,
	)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("get scenario %d: %w", id, domain.ErrNotFound)
	}
	if err != nil {
		return nil, fmt.Errorf("get scenario %d: query scenarios table: %w", id, err)
	}
	if payload.Valid {
		cfg.Payload = &domain.Payload{AdditionalLoad: payload.Float64}
	}

	points, err := s.listWaypoints(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("get scenario %d: %w", id, err)
	}
	mission.Points = points

	return &domain.Scenario{ID: id, Mission: &mission, Config: &cfg, Drone: &drone}, nil
}

func (s *SQLScenarioRepository) listWaypoints(ctx context.Context, id int) ([]domain.Waypoint, error) {
	q := s.rebind(`
	SELECT
		latitude,
		longitude
	FROM waypoints
	WHERE scenario_id = ?
	ORDER BY seq;
	`)

	rows, err := s.DB.QueryContext(ctx, q, id)
	if err != nil {
		return nil, fmt.Errorf("list waypoints: query waypoints table: %w", err)
	}
	defer rows.Close()

	points := make([]domain.Waypoint, 0, 16)
	for rows.Next() {
		var lat, lon float64
		if err := rows.Scan(&lat, &lon); err != nil {
			return nil, fmt.Errorf("list waypoints: scan row: %w", err)
		}
		points = append(points, domain.Waypoint{Coordinates: domain.Coordinates{Lat: lat, Lon: lon}})
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("list waypoints: row iteration: %w", err)
	}

	return points, nil
}

func (s *SQLScenarioRepository) rebind(q string) string {
	return rebind(s.Driver, q)
}

// rebind rewrites "?" placeholders as $1, $2, ... for Postgres.
func rebind(driver, q string) string {
	if driver != db.DriverPostgres {
		return q
	}

	var b strings.Builder
	n := 0
	for _, r := range q {
		if r == '?' {
			n++
			b.WriteString("$" + strconv.Itoa(n))
			continue
		}
		b.WriteRune(r)
	}
	return b.String()
}

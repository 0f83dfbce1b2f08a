package repositories

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"mission-energy-service/internal/domain"
	"mission-energy-service/internal/platform/obs"
	"os"
	"path/filepath"
	"slices"
	"strconv"
	"strings"
)

// On-disk record shapes. Required objects are pointers so that an absent key
// is reported instead of silently zeroed.
type missionRecord struct {
	Name            string        `json:"name"`
	HorizontalSpeed float64       `json:"horizontalSpeed"`
	Altitude        float64       `json:"altitude"`
	Points          []pointRecord `json:"points"`
}

type pointRecord struct {
	Latitude  float64 `json:"latitude"`
	Longitude float64 `json:"longitude"`
}

type configRecord struct {
	VerticalSpeeds *struct {
		Ascension float64 `json:"ascension"`
		Descent   float64 `json:"descent"`
	} `json:"verticalSpeeds"`
	Payload *struct {
		AdditionalLoad float64 `json:"additionalLoad"`
	} `json:"payload"`
	Energy *struct {
		NumberOfBatteries int     `json:"numberOfBatteries"`
		Capacity          float64 `json:"capacity"`
	} `json:"energy"`
}

type droneRecord struct {
	CurrentLoadInFlight *struct {
		Ascension   float64 `json:"ascension"`
		Translation float64 `json:"translation"`
		Descent     float64 `json:"descent"`
	} `json:"currentLoadInFlight"`
}

// JSONScenarioRepository reads numbered scenarios from a data directory laid
// out as missions/mission-N.json, configurations/config-N.json and
// drones/drone-N.json.
type JSONScenarioRepository struct {
	Dir string
}

func NewJSONScenarioRepository(dir string) *JSONScenarioRepository {
	return &JSONScenarioRepository{Dir: dir}
}

// Return the ids of every mission file in ascending order.
func (r *JSONScenarioRepository) ListScenarioIDs(ctx context.Context) ([]int, error) {
	matches, err := filepath.Glob(filepath.Join(r.Dir, "missions", "mission-*.json"))
	if err != nil {
		return nil, fmt.Errorf("list scenario ids: glob missions: %w", err)
	}

	ids := make([]int, 0, len(matches))
	for _, m := range matches {
		name := filepath.Base(m)
		raw := strings.TrimSuffix(strings.TrimPrefix(name, "mission-"), ".json")
		id, err := strconv.Atoi(raw)
		// Only canonical names round-trip to the file GetScenario reads.
		if err != nil || id < 0 || missionFile(id) != name {
			continue
		}
		ids = append(ids, id)
	}
	slices.Sort(ids)

	return ids, nil
}

// Load the mission, config and drone records sharing the given id.
func (r *JSONScenarioRepository) GetScenario(ctx context.Context, id int) (_ *domain.Scenario, err error) {
	defer obs.Time(ctx, "json.GetScenario")(&err)

	mission, err := r.readMission(id)
	if err != nil {
		return nil, err
	}
	cfg, err := r.readConfig(id)
	if err != nil {
		return nil, err
	}
	drone, err := r.readDrone(id)
	if err != nil {
		return nil, err
	}

	return &domain.Scenario{ID: id, Mission: mission, Config: cfg, Drone: drone}, nil
}

func (r *JSONScenarioRepository) readMission(id int) (*domain.Mission, error) {
	var rec missionRecord
	if err := r.readJSON(filepath.Join("missions", missionFile(id)), &rec); err != nil {
		return nil, fmt.Errorf("read mission %d: %w", id, err)
	}
	if rec.Points == nil {
		return nil, fmt.Errorf("read mission %d: points missing: %w", id, domain.ErrInvalidMission)
	}

	points := make([]domain.Waypoint, 0, len(rec.Points))
	for _, p := range rec.Points {
		points = append(points, domain.Waypoint{
			Coordinates: domain.Coordinates{Lat: p.Latitude, Lon: p.Longitude},
		})
	}

	return &domain.Mission{
		Name:            rec.Name,
		HorizontalSpeed: rec.HorizontalSpeed,
		Altitude:        rec.Altitude,
		Points:          points,
	}, nil
}

func missionFile(id int) string {
	return fmt.Sprintf("mission-%d.json", id)
}

func (r *JSONScenarioRepository) readConfig(id int) (*domain.MissionConfig, error) {
	var rec configRecord
	if err := r.readJSON(filepath.Join("configurations", fmt.Sprintf("config-%d.json", id)), &rec); err != nil {
		return nil, fmt.Errorf("read config %d: %w", id, err)
	}
	if rec.VerticalSpeeds == nil || rec.Energy == nil {
		return nil, fmt.Errorf("read config %d: verticalSpeeds and energy are required: %w", id, domain.ErrInvalidMission)
	}

	cfg := &domain.MissionConfig{
		VerticalSpeeds: domain.VerticalSpeeds{
			Ascension: rec.VerticalSpeeds.Ascension,
			Descent:   rec.VerticalSpeeds.Descent,
		},
		Energy: domain.BatteryBudget{
			NumberOfBatteries: rec.Energy.NumberOfBatteries,
			Capacity:          rec.Energy.Capacity,
		},
	}
	if rec.Payload != nil {
		cfg.Payload = &domain.Payload{AdditionalLoad: rec.Payload.AdditionalLoad}
	}

	return cfg, nil
}

func (r *JSONScenarioRepository) readDrone(id int) (*domain.Drone, error) {
	var rec droneRecord
	if err := r.readJSON(filepath.Join("drones", fmt.Sprintf("drone-%d.json", id)), &rec); err != nil {
		return nil, fmt.Errorf("read drone %d: %w", id, err)
	}
	if rec.CurrentLoadInFlight == nil {
		return nil, fmt.Errorf("read drone %d: currentLoadInFlight is required: %w", id, domain.ErrInvalidMission)
	}

	l := rec.CurrentLoadInFlight
	return &domain.Drone{
		CurrentLoadInFlight: domain.LoadProfile{
			Ascension:   l.Ascension,
			Translation: l.Translation,
			Descent:     l.Descent,
		},
	}, nil
}

func (r *JSONScenarioRepository) readJSON(rel string, v any) error {
	path := filepath.Join(r.Dir, rel)

	data, err := os.ReadFile(path)
	if errors.Is(err, fs.ErrNotExist) {
		return fmt.Errorf("%q: %w", path, domain.ErrNotFound)
	}
	if err != nil {
		return fmt.Errorf("read %q: %w", path, err)
	}

	if err := json.Unmarshal(data, v); err != nil {
		return fmt.Errorf("parse %q: %w: %w", path, domain.ErrInvalidMission, err)
	}
	return nil
}

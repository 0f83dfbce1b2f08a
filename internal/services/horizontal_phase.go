package services

import (
	"errors"
	"fmt"
	"math"
	"mission-energy-service/internal/domain"
	"mission-energy-service/internal/ports"
)

// Result of flying a path at cruise altitude.
type HorizontalResult struct {
	Phase    domain.PhaseEnergy
	Legs     []domain.LegEnergy
	Timeline []domain.WaypointTimeline
}

// HorizontalPhase accumulates time and energy over consecutive waypoint legs.
//
// The first waypoint starts at the given offset (the ascent phase); every
// following waypoint carries the previous cumulative values plus its leg.
// A path with fewer than two waypoints contributes nothing.
func HorizontalPhase(
	path []domain.Coordinates,
	start domain.PhaseEnergy,
	speed float64,
	load float64,
	distanceProvider ports.DistanceProvider,
) (HorizontalResult, error) {
	if speed == 0 {
		return HorizontalResult{}, fmt.Errorf("horizontal phase: speed must be non-zero: %w", domain.ErrDivisionByZero)
	}
	if speed < 0 {
		return HorizontalResult{}, fmt.Errorf("horizontal phase: negative speed %v: %w", speed, domain.ErrInvalidMission)
	}
	if distanceProvider == nil {
		return HorizontalResult{}, errors.New("horizontal phase: distance provider must be non-nil")
	}

	res := HorizontalResult{
		Legs:     make([]domain.LegEnergy, 0, max(len(path)-1, 0)),
		Timeline: make([]domain.WaypointTimeline, 0, len(path)),
	}
	if len(path) == 0 {
		return res, nil
	}

	res.Timeline = append(res.Timeline, domain.WaypointTimeline{
		Coordinates: path[0],
		EndTime:     start.Seconds,
		Energy:      start.Energy,
	})

	for i := 0; i < len(path)-1; i++ {
		meters, err := distanceProvider.Distance(path[i], path[i+1])
		if err != nil {
			return HorizontalResult{}, fmt.Errorf("horizontal phase: leg %d -> %d: %w", i, i+1, err)
		}

		seconds := meters / speed
		energy := seconds * load * speed * speed
		if math.IsNaN(energy) || math.IsInf(energy, 0) {
			return HorizontalResult{}, fmt.Errorf("horizontal phase: leg %d -> %d: non-finite energy: %w", i, i+1, domain.ErrNumericDomain)
		}

		prev := res.Timeline[i]
		res.Timeline = append(res.Timeline, domain.WaypointTimeline{
			Coordinates: path[i+1],
			EndTime:     prev.EndTime + seconds,
			Energy:      prev.Energy + energy,
		})
		res.Legs = append(res.Legs, domain.LegEnergy{
			From:           i,
			To:             i + 1,
			DistanceMeters: meters,
			Seconds:        seconds,
			Energy:         energy,
		})

		res.Phase.Seconds += seconds
		res.Phase.Energy += energy
	}

	return res, nil
}

package services

import (
	"fmt"
	"math"
	"mission-energy-service/internal/domain"

	"github.com/paulmach/orb"
	"github.com/paulmach/orb/geo"
)

type FlightState string

const (
	StateFlying        FlightState = "flying"
	StateLandedHalfway FlightState = "landed halfway"
	StateFlewProperly  FlightState = "flew properly"
)

type FlightPhase string

const (
	PhaseAscent  FlightPhase = "ascent"
	PhaseCruise  FlightPhase = "cruise"
	PhaseDescent FlightPhase = "descent"
	PhaseLanded  FlightPhase = "landed"
)

// Position and state of a drone at some elapsed time of its mission.
// Leg is the index of the leg being flown during cruise, -1 otherwise.
type FlightStatus struct {
	Elapsed  float64
	State    FlightState
	Phase    FlightPhase
	Position domain.Coordinates
	Leg      int
}

// TrackFlight replays an evaluated mission and reports where the drone is
// after elapsed seconds.
//
// A drone is reported as landed halfway when the energy spent on reaching the
// waypoint ahead, plus the descent reserve (EnergyReq), exceeds the budget.
func TrackFlight(report *domain.EnergyReport, budget domain.BatteryBudget, elapsed float64) (FlightStatus, error) {
	if report == nil || len(report.Timeline) == 0 {
		return FlightStatus{}, fmt.Errorf("track flight: mission has no waypoints: %w", domain.ErrInvalidMission)
	}
	if math.IsNaN(elapsed) {
		return FlightStatus{}, fmt.Errorf("track flight: elapsed is NaN: %w", domain.ErrNumericDomain)
	}
	if elapsed < 0 {
		elapsed = 0
	}

	capacity := budget.Total()
	timeline := report.Timeline
	first := timeline[0]
	last := timeline[len(timeline)-1]

	status := FlightStatus{Elapsed: elapsed, State: StateFlying, Leg: -1}

	switch {
	case first.EndTime > elapsed:
		status.Phase = PhaseAscent
		status.Position = first.Coordinates
		if first.Energy+report.EnergyReq > capacity {
			status.State = StateLandedHalfway
		}
		return status, nil
	case report.EndTime < elapsed:
		status.State = StateFlewProperly
		status.Phase = PhaseLanded
		status.Position = last.Coordinates
		return status, nil
	case last.EndTime <= elapsed:
		status.Phase = PhaseDescent
		status.Position = last.Coordinates
		return status, nil
	}

	for i := 1; i < len(timeline); i++ {
		prev, cur := timeline[i-1], timeline[i]
		if elapsed < prev.EndTime || elapsed >= cur.EndTime {
			continue
		}

		frac := (elapsed - prev.EndTime) / (cur.EndTime - prev.EndTime)
		status.Phase = PhaseCruise
		status.Leg = i - 1
		status.Position = interpolate(prev.Coordinates, cur.Coordinates, frac)
		if cur.Energy+report.EnergyReq > capacity {
			status.State = StateLandedHalfway
		}
		return status, nil
	}

	return FlightStatus{}, fmt.Errorf("track flight: elapsed %v not covered by timeline: %w", elapsed, domain.ErrInvalidMission)
}

// interpolate returns the point at frac of the great circle from a to b.
func interpolate(a, b domain.Coordinates, frac float64) domain.Coordinates {
	from := orb.Point{a.Lon, a.Lat}
	to := orb.Point{b.Lon, b.Lat}

	d := geo.Distance(from, to)
	if d == 0 || frac <= 0 {
		return a
	}
	if frac >= 1 {
		return b
	}

	// orb does not wrap longitude on legs crossing the antimeridian.
	p := geo.PointAtBearingAndDistance(from, geo.Bearing(from, to), d*frac)
	return domain.Coordinates{Lat: p.Lat(), Lon: math.Remainder(p.Lon(), 360)}
}

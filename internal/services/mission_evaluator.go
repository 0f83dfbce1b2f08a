package services

import (
	"errors"
	"fmt"
	"math"
	"mission-energy-service/internal/adapters/distance"
	"mission-energy-service/internal/domain"
	"mission-energy-service/internal/ports"
)

var defaultDistanceProvider ports.DistanceProvider = distance.NewHaversineProvider()

// EvaluateMission computes the energy a drone needs to fly a mission:
// ascent, horizontal cruise over every leg, then descent.
//
// The payload's additional load is added to every phase. The mission is not
// modified; use Mission.ApplyReport to annotate it with the result.
// A nil distanceProvider selects the haversine provider.
func EvaluateMission(
	cfg *domain.MissionConfig,
	drone *domain.Drone,
	mission *domain.Mission,
	distanceProvider ports.DistanceProvider,
) (*domain.EnergyReport, error) {
	if err := validateInputs(cfg, drone, mission); err != nil {
		return nil, fmt.Errorf("evaluate mission: %w", err)
	}
	if distanceProvider == nil {
		distanceProvider = defaultDistanceProvider
	}

	additional := cfg.AdditionalLoad()
	loads := drone.CurrentLoadInFlight

	ascent, err := VerticalPhase(mission.Altitude, cfg.VerticalSpeeds.Ascension, loads.Ascension+additional)
	if err != nil {
		return nil, fmt.Errorf("evaluate mission %q: ascent: %w", mission.Name, err)
	}

	horizontal, err := HorizontalPhase(mission.Path(), ascent, mission.HorizontalSpeed, loads.Translation+additional, distanceProvider)
	if err != nil {
		return nil, fmt.Errorf("evaluate mission %q: %w", mission.Name, err)
	}

	descent, err := VerticalPhase(mission.Altitude, cfg.VerticalSpeeds.Descent, loads.Descent+additional)
	if err != nil {
		return nil, fmt.Errorf("evaluate mission %q: descent: %w", mission.Name, err)
	}

	// Without waypoints the drone lands where it took off.
	endTime := ascent.Seconds + descent.Seconds
	if n := len(horizontal.Timeline); n > 0 {
		endTime = horizontal.Timeline[n-1].EndTime + descent.Seconds
	}

	total := ascent.Energy + horizontal.Phase.Energy + descent.Energy
	if math.IsNaN(total) || math.IsInf(total, 0) {
		return nil, fmt.Errorf("evaluate mission %q: non-finite total energy: %w", mission.Name, domain.ErrNumericDomain)
	}

	return &domain.EnergyReport{
		MissionName: mission.Name,
		Ascent:      ascent,
		Horizontal:  horizontal.Phase,
		Descent:     descent,
		Legs:        horizontal.Legs,
		Timeline:    horizontal.Timeline,
		EndTime:     endTime,
		EnergyReq:   descent.Energy,
		TotalEnergy: total,
	}, nil
}

// RequiredEnergy returns the total energy of a mission using haversine distances.
func RequiredEnergy(cfg *domain.MissionConfig, drone *domain.Drone, mission *domain.Mission) (float64, error) {
	report, err := EvaluateMission(cfg, drone, mission, nil)
	if err != nil {
		return 0, err
	}
	return report.TotalEnergy, nil
}

func validateInputs(cfg *domain.MissionConfig, drone *domain.Drone, mission *domain.Mission) error {
	return errors.Join(cfg.Validate(), drone.Validate(), mission.Validate())
}

package services

import (
	"fmt"
	"math"
	"mission-energy-service/internal/domain"
)

// VerticalPhase computes the time and energy of a climb to, or a descent
// from, the given altitude at a constant vertical speed.
//
//	time   = altitude / speed
//	energy = time × load × speed²
func VerticalPhase(altitude, speed, load float64) (domain.PhaseEnergy, error) {
	if speed == 0 {
		return domain.PhaseEnergy{}, fmt.Errorf("vertical phase: speed must be non-zero: %w", domain.ErrDivisionByZero)
	}
	if speed < 0 || altitude < 0 {
		return domain.PhaseEnergy{}, fmt.Errorf(
			"vertical phase: altitude=%v speed=%v must be non-negative: %w",
			altitude, speed, domain.ErrInvalidMission,
		)
	}

	seconds := altitude / speed
	energy := seconds * load * speed * speed

	if math.IsNaN(energy) || math.IsInf(energy, 0) || math.IsInf(seconds, 0) {
		return domain.PhaseEnergy{}, fmt.Errorf("vertical phase: non-finite result: %w", domain.ErrNumericDomain)
	}

	return domain.PhaseEnergy{Seconds: seconds, Energy: energy}, nil
}

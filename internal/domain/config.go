package domain

import "fmt"

// Vertical speeds used for the climb to and descent from cruise altitude.
type VerticalSpeeds struct {
	Ascension float64
	Descent   float64
}

// Optional extra load carried through every phase.
type Payload struct {
	AdditionalLoad float64
}

// Available battery energy.
type BatteryBudget struct {
	NumberOfBatteries int
	Capacity          float64
}

// Total returns numberOfBatteries × capacity.
func (b BatteryBudget) Total() float64 {
	return float64(b.NumberOfBatteries) * b.Capacity
}

// Flight configuration applied to a mission.
type MissionConfig struct {
	VerticalSpeeds VerticalSpeeds
	Payload        *Payload
	Energy         BatteryBudget
}

// AdditionalLoad resolves the payload, defaulting to zero when absent.
func (c *MissionConfig) AdditionalLoad() float64 {
	if c.Payload == nil {
		return 0
	}
	return c.Payload.AdditionalLoad
}

func (c *MissionConfig) Validate() error {
	if c == nil {
		return fmt.Errorf("config is nil: %w", ErrInvalidMission)
	}
	v := c.VerticalSpeeds
	if !finite(v.Ascension) || !finite(v.Descent) || !finite(c.AdditionalLoad()) || !finite(c.Energy.Capacity) {
		return fmt.Errorf("config: non-finite value: %w", ErrNumericDomain)
	}
	if v.Ascension < 0 || v.Descent < 0 {
		return fmt.Errorf("config: negative vertical speed (ascension=%v descent=%v): %w", v.Ascension, v.Descent, ErrInvalidMission)
	}
	if c.AdditionalLoad() < 0 {
		return fmt.Errorf("config: negative additional load %v: %w", c.AdditionalLoad(), ErrInvalidMission)
	}
	if c.Energy.NumberOfBatteries < 0 || c.Energy.Capacity < 0 {
		return fmt.Errorf(
			"config: negative battery budget (batteries=%d capacity=%v): %w",
			c.Energy.NumberOfBatteries, c.Energy.Capacity, ErrInvalidMission,
		)
	}
	return nil
}

// Scenario groups the numbered mission, configuration and drone records that
// are evaluated together.
type Scenario struct {
	ID      int
	Mission *Mission
	Config  *MissionConfig
	Drone   *Drone
}

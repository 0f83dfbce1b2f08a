package domain

import "fmt"

// Per-phase load figures of a drone in flight.
type LoadProfile struct {
	Ascension   float64
	Translation float64
	Descent     float64
}

// Drone describes the aircraft flying a mission.
type Drone struct {
	CurrentLoadInFlight LoadProfile
}

func (d *Drone) Validate() error {
	if d == nil {
		return fmt.Errorf("drone is nil: %w", ErrInvalidMission)
	}
	l := d.CurrentLoadInFlight
	loads := []struct {
		name string
		v    float64
	}{
		{"ascension", l.Ascension},
		{"translation", l.Translation},
		{"descent", l.Descent},
	}
	for _, ld := range loads {
		if !finite(ld.v) {
			return fmt.Errorf("drone: %s load %v: %w", ld.name, ld.v, ErrNumericDomain)
		}
		if ld.v < 0 {
			return fmt.Errorf("drone: negative %s load %v: %w", ld.name, ld.v, ErrInvalidMission)
		}
	}
	return nil
}

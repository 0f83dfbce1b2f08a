package domain

import (
	"errors"
	"fmt"
	"math"
)

// Represents a single point along a mission path.
// EndTime and Energy are cumulative (seconds and energy units since mission
// start) and are only populated by ApplyReport.
type Waypoint struct {
	Coordinates
	EndTime float64
	Energy  float64
}

// Represents a planned flight: a cruise altitude, a horizontal speed and an
// ordered path. EndTime and EnergyReq are populated by ApplyReport.
type Mission struct {
	Name            string
	HorizontalSpeed float64
	Altitude        float64
	Points          []Waypoint
	EndTime         float64
	EnergyReq       float64
}

// Path returns the waypoint coordinates in order.
func (m *Mission) Path() []Coordinates {
	out := make([]Coordinates, 0, len(m.Points))
	for _, p := range m.Points {
		out = append(out, p.Coordinates)
	}
	return out
}

// Validate checks the mission-level invariants. Zero speed is left to the
// energy computation, which reports it as ErrDivisionByZero.
func (m *Mission) Validate() error {
	if m == nil {
		return fmt.Errorf("mission is nil: %w", ErrInvalidMission)
	}
	if !finite(m.HorizontalSpeed) || !finite(m.Altitude) {
		return fmt.Errorf("mission %q: speed=%v altitude=%v: %w", m.Name, m.HorizontalSpeed, m.Altitude, ErrNumericDomain)
	}
	if m.HorizontalSpeed < 0 {
		return fmt.Errorf("mission %q: negative horizontal speed %v: %w", m.Name, m.HorizontalSpeed, ErrInvalidMission)
	}
	if m.Altitude < 0 {
		return fmt.Errorf("mission %q: negative altitude %v: %w", m.Name, m.Altitude, ErrInvalidMission)
	}
	for i, p := range m.Points {
		if err := p.Coordinates.Validate(); err != nil {
			return fmt.Errorf("mission %q: point %d: %w", m.Name, i, err)
		}
	}
	return nil
}

// ApplyReport writes an evaluation result back onto the mission, producing the
// annotated form: per-waypoint cumulative time and energy, the mission end
// time and EnergyReq.
func (m *Mission) ApplyReport(r *EnergyReport) error {
	if r == nil {
		return errors.New("apply report: report must be non-nil")
	}
	if len(r.Timeline) != len(m.Points) {
		return fmt.Errorf(
			"apply report: mission %q has %d points, report has %d",
			m.Name, len(m.Points), len(r.Timeline),
		)
	}

	for i := range m.Points {
		m.Points[i].EndTime = r.Timeline[i].EndTime
		m.Points[i].Energy = r.Timeline[i].Energy
	}
	m.EndTime = r.EndTime
	m.EnergyReq = r.EnergyReq

	return nil
}

func finite(f float64) bool {
	return !math.IsNaN(f) && !math.IsInf(f, 0)
}

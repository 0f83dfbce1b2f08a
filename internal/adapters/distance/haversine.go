package distance

import (
	"fmt"
	"math"
	"mission-energy-service/internal/domain"
)

const earthRadiusMeters = 6371000.0

// Float error may push the haversine term just outside [0, 1]; excursions up
// to this size are clamped, anything larger is a domain error.
const haversineTolerance = 1e-12

// Haversine returns the great-circle distance in meters between two points.
func Haversine(a, b domain.Coordinates) (float64, error) {
	if err := a.Validate(); err != nil {
		return 0, fmt.Errorf("haversine: origin: %w", err)
	}
	if err := b.Validate(); err != nil {
		return 0, fmt.Errorf("haversine: destination: %w", err)
	}

	lat1 := a.Lat * (math.Pi / 180.0)
	lat2 := b.Lat * (math.Pi / 180.0)
	dLat := (b.Lat - a.Lat) * (math.Pi / 180.0)
	dLon := (b.Lon - a.Lon) * (math.Pi / 180.0)

	sinLat := math.Sin(dLat / 2)
	sinLon := math.Sin(dLon / 2)
	h := sinLat*sinLat + math.Cos(lat1)*math.Cos(lat2)*sinLon*sinLon

	h, err := clampUnit(h)
	if err != nil {
		return 0, fmt.Errorf("haversine: (%v, %v) -> (%v, %v): %w", a.Lat, a.Lon, b.Lat, b.Lon, err)
	}

	c := 2 * math.Atan2(math.Sqrt(h), math.Sqrt(1-h))
	return earthRadiusMeters * c, nil
}

func clampUnit(h float64) (float64, error) {
	switch {
	case math.IsNaN(h):
		return 0, fmt.Errorf("intermediate term is NaN: %w", domain.ErrNumericDomain)
	case h < -haversineTolerance || h > 1+haversineTolerance:
		return 0, fmt.Errorf("intermediate term %v outside [0, 1]: %w", h, domain.ErrNumericDomain)
	case h < 0:
		return 0, nil
	case h > 1:
		return 1, nil
	}
	return h, nil
}

// HaversineProvider implements DistanceProvider on a spherical Earth.
type HaversineProvider struct{}

func NewHaversineProvider() *HaversineProvider {
	return &HaversineProvider{}
}

func (HaversineProvider) Distance(a, b domain.Coordinates) (float64, error) {
	return Haversine(a, b)
}

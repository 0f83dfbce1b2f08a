package ports

import "mission-energy-service/internal/domain"

// Contract for computing the surface distance between two coordinates.
type DistanceProvider interface {
	// Return the distance in meters from a to b.
	Distance(a, b domain.Coordinates) (float64, error)
}

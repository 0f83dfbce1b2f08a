package distance

import (
	"fmt"
	"mission-energy-service/internal/domain"
)

type MockPair struct {
	From, To domain.Coordinates
	Meters   float64
}

type MockDistanceProvider struct {
	m map[[2]domain.Coordinates]float64
}

func NewMockDistanceProvider(pairs []MockPair) *MockDistanceProvider {
	m := make(map[[2]domain.Coordinates]float64, len(pairs))
	for _, p := range pairs {
		m[[2]domain.Coordinates{p.From, p.To}] = p.Meters
	}
	return &MockDistanceProvider{m: m}
}

func (p *MockDistanceProvider) Distance(a, b domain.Coordinates) (float64, error) {
	d, ok := p.m[[2]domain.Coordinates{a, b}]
	if !ok {
		return 0, fmt.Errorf("missing pair %v -> %v", a, b)
	}

	return d, nil
}

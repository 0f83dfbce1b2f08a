package ports

import (
	"context"
	"mission-energy-service/internal/domain"
)

// Port: a boundary for retrieving evaluation scenarios from a data source.
type ScenarioRepository interface {
	// Return the ids of every stored scenario in ascending order.
	ListScenarioIDs(ctx context.Context) ([]int, error)
	// Return one scenario; a missing record yields domain.ErrNotFound.
	GetScenario(ctx context.Context, id int) (*domain.Scenario, error)
}

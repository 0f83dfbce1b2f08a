package services

import (
	"context"
	"errors"
	"fmt"
	"mission-energy-service/internal/domain"
	"mission-energy-service/internal/platform/obs"
	"mission-energy-service/internal/ports"
)

// Outcome of evaluating one scenario. Err is set when the scenario could not
// be loaded or evaluated; Report and Verdict are then zero.
type ScenarioResult struct {
	ID          int
	MissionName string
	Budget      domain.BatteryBudget
	Report      *domain.EnergyReport
	Verdict     domain.Verdict
	Err         error
}

// EvaluateScenario loads one scenario and evaluates it against its own battery budget.
func EvaluateScenario(
	ctx context.Context,
	repo ports.ScenarioRepository,
	id int,
	distanceProvider ports.DistanceProvider,
) (_ *ScenarioResult, err error) {
	defer obs.Time(ctx, "services.EvaluateScenario")(&err)

	if repo == nil {
		return nil, errors.New("evaluate scenario: repository must be non-nil")
	}

	sc, err := repo.GetScenario(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("evaluate scenario %d: %w", id, err)
	}
	if sc == nil || sc.Mission == nil || sc.Config == nil || sc.Drone == nil {
		return nil, fmt.Errorf("evaluate scenario %d: incomplete record: %w", id, domain.ErrInvalidMission)
	}

	report, err := EvaluateMission(sc.Config, sc.Drone, sc.Mission, distanceProvider)
	if err != nil {
		return nil, fmt.Errorf("evaluate scenario %d: %w", id, err)
	}

	return &ScenarioResult{
		ID:          id,
		MissionName: sc.Mission.Name,
		Budget:      sc.Config.Energy,
		Report:      report,
		Verdict:     CheckFeasibility(report, sc.Config.Energy),
	}, nil
}

// EvaluateScenarios evaluates every scenario of the repository in id order.
//
// A scenario that fails keeps its error in its own result and the walk goes
// on; whether that is fatal is the caller's decision. Listing failures and
// context cancellation abort the walk.
func EvaluateScenarios(
	ctx context.Context,
	repo ports.ScenarioRepository,
	distanceProvider ports.DistanceProvider,
) (_ []ScenarioResult, err error) {
	defer obs.Time(ctx, "services.EvaluateScenarios")(&err)

	if repo == nil {
		return nil, errors.New("evaluate scenarios: repository must be non-nil")
	}

	ids, err := repo.ListScenarioIDs(ctx)
	if err != nil {
		return nil, fmt.Errorf("evaluate scenarios: list scenario ids: %w", err)
	}

	results := make([]ScenarioResult, 0, len(ids))
	for _, id := range ids {
		if err := ctx.Err(); err != nil {
			return nil, fmt.Errorf("evaluate scenarios: %w", err)
		}

		res, err := EvaluateScenario(ctx, repo, id, distanceProvider)
		if err != nil {
			results = append(results, ScenarioResult{ID: id, Err: err})
			continue
		}
		results = append(results, *res)
	}

	return results, nil
}

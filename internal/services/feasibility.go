package services

import "mission-energy-service/internal/domain"

// Feasible reports whether the required energy fits the battery budget.
// The comparison is exact; equality is feasible.
func Feasible(required float64, budget domain.BatteryBudget) bool {
	return required <= budget.Total()
}

// CheckFeasibility compares an evaluated mission against a battery budget.
func CheckFeasibility(report *domain.EnergyReport, budget domain.BatteryBudget) domain.Verdict {
	available := budget.Total()
	return domain.Verdict{
		Required:  report.TotalEnergy,
		Available: available,
		Feasible:  Feasible(report.TotalEnergy, budget),
	}
}

package handlers

import (
	"mission-energy-service/internal/api/dto"
	"mission-energy-service/internal/ports"
	"net/http"
)

type ScenarioHandler struct {
	Repo ports.ScenarioRepository
}

// List returns every stored scenario id with its mission name.
func (h *ScenarioHandler) List(w http.ResponseWriter, r *http.Request) {
	if !allowGet(w, r) {
		return
	}

	ids, err := h.Repo.ListScenarioIDs(r.Context())
	if err != nil {
		writeDomainError(w, r, err)
		return
	}

	res := dto.ListScenarioResponse{Scenarios: make([]dto.ScenarioResponse, 0, len(ids))}
	for _, id := range ids {
		sc, err := h.Repo.GetScenario(r.Context(), id)
		if err != nil {
			res.Scenarios = append(res.Scenarios, dto.ScenarioResponse{ID: id, Error: err.Error()})
			continue
		}

		item := dto.ScenarioResponse{ID: id}
		if sc.Mission != nil {
			item.MissionName = sc.Mission.Name
			item.Waypoints = len(sc.Mission.Points)
		}
		res.Scenarios = append(res.Scenarios, item)
	}

	writeJSON(w, r, http.StatusOK, res)
}

package handlers

import (
	"mission-energy-service/internal/adapters/export"
	"mission-energy-service/internal/api/dto"
	"mission-energy-service/internal/platform/metrics"
	"mission-energy-service/internal/ports"
	"mission-energy-service/internal/services"
	"net/http"
	"strconv"
)

type EvaluationHandler struct {
	Repo     ports.ScenarioRepository
	Provider ports.DistanceProvider
}

// List evaluates every scenario. Scenarios that fail are reported inline.
func (h *EvaluationHandler) List(w http.ResponseWriter, r *http.Request) {
	if !allowGet(w, r) {
		return
	}

	results, err := services.EvaluateScenarios(r.Context(), h.Repo, h.Provider)
	if err != nil {
		writeDomainError(w, r, err)
		return
	}

	res := dto.ListEvaluationResponse{Evaluations: make([]dto.EvaluationResponse, 0, len(results))}
	for _, sr := range results {
		metrics.ObserveEvaluation(sr.Verdict.Feasible, sr.Err)
		res.Evaluations = append(res.Evaluations, dto.FromScenarioResult(sr))
	}

	writeJSON(w, r, http.StatusOK, res)
}

// Get evaluates one scenario and returns its full report.
func (h *EvaluationHandler) Get(w http.ResponseWriter, r *http.Request) {
	sr, ok := h.evaluate(w, r)
	if !ok {
		return
	}

	writeJSON(w, r, http.StatusOK, dto.FromScenarioResult(*sr))
}

// Status replays a scenario and reports the drone state after elapsed seconds.
func (h *EvaluationHandler) Status(w http.ResponseWriter, r *http.Request) {
	if !allowGet(w, r) {
		return
	}

	elapsed, err := strconv.ParseFloat(r.URL.Query().Get("elapsed"), 64)
	if err != nil {
		writeError(w, r, http.StatusBadRequest, "elapsed must be a number of seconds")
		return
	}

	sr, ok := h.evaluate(w, r)
	if !ok {
		return
	}

	status, err := services.TrackFlight(sr.Report, sr.Budget, elapsed)
	if err != nil {
		writeDomainError(w, r, err)
		return
	}

	writeJSON(w, r, http.StatusOK, dto.FromFlightStatus(sr.ID, status))
}

// Path returns the evaluated mission as a GeoJSON FeatureCollection.
func (h *EvaluationHandler) Path(w http.ResponseWriter, r *http.Request) {
	sr, ok := h.evaluate(w, r)
	if !ok {
		return
	}

	fc, err := export.PathFeatureCollection(sr.Report)
	if err != nil {
		writeDomainError(w, r, err)
		return
	}

	w.Header().Set("Content-Type", "application/geo+json")
	data, err := fc.MarshalJSON()
	if err != nil {
		writeDomainError(w, r, err)
		return
	}
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write(data)
}

// evaluate runs the shared method check, id parsing and evaluation. It writes
// the error response itself and reports whether the caller should continue.
func (h *EvaluationHandler) evaluate(w http.ResponseWriter, r *http.Request) (*services.ScenarioResult, bool) {
	if !allowGet(w, r) {
		return nil, false
	}

	id, err := scenarioID(r)
	if err != nil {
		writeError(w, r, http.StatusBadRequest, err.Error())
		return nil, false
	}

	sr, err := services.EvaluateScenario(r.Context(), h.Repo, id, h.Provider)
	if err != nil {
		metrics.ObserveEvaluation(false, err)
		writeDomainError(w, r, err)
		return nil, false
	}
	metrics.ObserveEvaluation(sr.Verdict.Feasible, nil)

	return sr, true
}

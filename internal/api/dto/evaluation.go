package dto

import (
	"mission-energy-service/internal/domain"
	"mission-energy-service/internal/services"
)

type PhaseResponse struct {
	Seconds float64 `json:"seconds"`
	Energy  float64 `json:"energy"`
}

type LegResponse struct {
	From           int     `json:"from"`
	To             int     `json:"to"`
	DistanceMeters float64 `json:"distance_meters"`
	Seconds        float64 `json:"seconds"`
	Energy         float64 `json:"energy"`
}

type WaypointResponse struct {
	Latitude  float64 `json:"latitude"`
	Longitude float64 `json:"longitude"`
	EndTime   float64 `json:"end_time"`
	Energy    float64 `json:"energy"`
}

type ReportResponse struct {
	Ascent      PhaseResponse      `json:"ascent"`
	Horizontal  PhaseResponse      `json:"horizontal"`
	Descent     PhaseResponse      `json:"descent"`
	Legs        []LegResponse      `json:"legs"`
	Waypoints   []WaypointResponse `json:"waypoints"`
	EndTime     float64            `json:"end_time"`
	EnergyReq   float64            `json:"energy_req"`
	TotalEnergy float64            `json:"total_energy"`
}

type EvaluationResponse struct {
	ID          int             `json:"id"`
	MissionName string          `json:"mission_name,omitempty"`
	Required    float64         `json:"required"`
	Available   float64         `json:"available"`
	Feasible    bool            `json:"feasible"`
	Report      *ReportResponse `json:"report,omitempty"`
	Error       string          `json:"error,omitempty"`
}

type ListEvaluationResponse struct {
	Evaluations []EvaluationResponse `json:"evaluations"`
}

// FromScenarioResult flattens a service result for the wire.
func FromScenarioResult(sr services.ScenarioResult) EvaluationResponse {
	res := EvaluationResponse{
		ID:          sr.ID,
		MissionName: sr.MissionName,
		Required:    sr.Verdict.Required,
		Available:   sr.Verdict.Available,
		Feasible:    sr.Verdict.Feasible,
	}
	if sr.Err != nil {
		res.Error = sr.Err.Error()
		return res
	}
	if sr.Report != nil {
		res.Report = fromReport(sr.Report)
	}
	return res
}

func fromReport(r *domain.EnergyReport) *ReportResponse {
	res := &ReportResponse{
		Ascent:      PhaseResponse(r.Ascent),
		Horizontal:  PhaseResponse(r.Horizontal),
		Descent:     PhaseResponse(r.Descent),
		Legs:        make([]LegResponse, 0, len(r.Legs)),
		Waypoints:   make([]WaypointResponse, 0, len(r.Timeline)),
		EndTime:     r.EndTime,
		EnergyReq:   r.EnergyReq,
		TotalEnergy: r.TotalEnergy,
	}
	for _, l := range r.Legs {
		res.Legs = append(res.Legs, LegResponse(l))
	}
	for _, wp := range r.Timeline {
		res.Waypoints = append(res.Waypoints, WaypointResponse{
			Latitude:  wp.Lat,
			Longitude: wp.Lon,
			EndTime:   wp.EndTime,
			Energy:    wp.Energy,
		})
	}
	return res
}

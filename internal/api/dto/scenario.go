package dto

type ScenarioResponse struct {
	ID          int    `json:"id"`
	MissionName string `json:"mission_name,omitempty"`
	Waypoints   int    `json:"waypoints"`
	Error       string `json:"error,omitempty"`
}

type ListScenarioResponse struct {
	Scenarios []ScenarioResponse `json:"scenarios"`
}

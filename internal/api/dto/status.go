package dto

import "mission-energy-service/internal/services"

type StatusResponse struct {
	ID        int     `json:"id"`
	Elapsed   float64 `json:"elapsed"`
	State     string  `json:"state"`
	Phase     string  `json:"phase"`
	Latitude  float64 `json:"latitude"`
	Longitude float64 `json:"longitude"`
	Leg       *int    `json:"leg,omitempty"`
}

func FromFlightStatus(id int, s services.FlightStatus) StatusResponse {
	res := StatusResponse{
		ID:        id,
		Elapsed:   s.Elapsed,
		State:     string(s.State),
		Phase:     string(s.Phase),
		Latitude:  s.Position.Lat,
		Longitude: s.Position.Lon,
	}
	if s.Leg >= 0 {
		leg := s.Leg
		res.Leg = &leg
	}
	return res
}

package domain

// Elapsed time and energy of one flight phase.
type PhaseEnergy struct {
	Seconds float64
	Energy  float64
}

// Energy spent flying between two consecutive waypoints.
type LegEnergy struct {
	From           int
	To             int
	DistanceMeters float64
	Seconds        float64
	Energy         float64
}

// Cumulative time and energy on arrival at a waypoint.
type WaypointTimeline struct {
	Coordinates
	EndTime float64
	Energy  float64
}

// Represents the evaluated energy budget of a mission.
// An EnergyReport is the output of the evaluator; it never aliases the
// evaluated Mission and carries no side effects.
//
// EnergyReq holds the descent-phase energy only. Flight tracking adds it to a
// waypoint's cumulative energy to decide whether the drone can still land.
type EnergyReport struct {
	MissionName string
	Ascent      PhaseEnergy
	Horizontal  PhaseEnergy
	Descent     PhaseEnergy
	Legs        []LegEnergy
	Timeline    []WaypointTimeline
	EndTime     float64
	EnergyReq   float64
	TotalEnergy float64
}

// Result of comparing required energy with the battery budget.
type Verdict struct {
	Required  float64
	Available float64
	Feasible  bool
}

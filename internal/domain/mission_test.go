package domain

import (
	"errors"
	"math"
	"testing"
)

func TestMissionApplyReport(t *testing.T) {
	// build test data
	mission := &Mission{
		Name:            "survey",
		HorizontalSpeed: 5,
		Altitude:        10,
		Points: []Waypoint{
			{Coordinates: Coordinates{Lat: 0, Lon: 0}},
			{Coordinates: Coordinates{Lat: 0, Lon: 0.001}},
		},
	}

	report := &EnergyReport{
		MissionName: "survey",
		Timeline: []WaypointTimeline{
			{Coordinates: Coordinates{Lat: 0, Lon: 0}, EndTime: 5, Energy: 20},
			{Coordinates: Coordinates{Lat: 0, Lon: 0.001}, EndTime: 27.2, Energy: 575},
		},
		EndTime:   32.2,
		EnergyReq: 20,
	}

	// call the method under test
	if err := mission.ApplyReport(report); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	// verify behavior
	for i, p := range mission.Points {
		if p.EndTime != report.Timeline[i].EndTime {
			t.Errorf("point %d EndTime = %v, want %v", i, p.EndTime, report.Timeline[i].EndTime)
		}
		if p.Energy != report.Timeline[i].Energy {
			t.Errorf("point %d Energy = %v, want %v", i, p.Energy, report.Timeline[i].Energy)
		}
	}

	if mission.EndTime != 32.2 {
		t.Errorf("EndTime = %v, want 32.2", mission.EndTime)
	}
	if mission.EnergyReq != 20 {
		t.Errorf("EnergyReq = %v, want 20", mission.EnergyReq)
	}
}

func TestMissionApplyReportLengthMismatch(t *testing.T) {
	mission := &Mission{Points: []Waypoint{{}, {}}}
	report := &EnergyReport{Timeline: []WaypointTimeline{{}}}

	if err := mission.ApplyReport(report); err == nil {
		t.Fatal("expected error for mismatched timeline length")
	}
	if err := mission.ApplyReport(nil); err == nil {
		t.Fatal("expected error for nil report")
	}
}

func TestMissionValidate(t *testing.T) {
	tests := []struct {
		name    string
		mission *Mission
		want    error
	}{
		{"nil", nil, ErrInvalidMission},
		{"negative altitude", &Mission{HorizontalSpeed: 1, Altitude: -1}, ErrInvalidMission},
		{"negative speed", &Mission{HorizontalSpeed: -1, Altitude: 1}, ErrInvalidMission},
		{"nan speed", &Mission{HorizontalSpeed: math.NaN(), Altitude: 1}, ErrNumericDomain},
		{"bad latitude", &Mission{HorizontalSpeed: 1, Points: []Waypoint{{Coordinates: Coordinates{Lat: 91}}}}, ErrInvalidMission},
		{"infinite longitude", &Mission{HorizontalSpeed: 1, Points: []Waypoint{{Coordinates: Coordinates{Lon: math.Inf(1)}}}}, ErrNumericDomain},
		{"zero speed is left to the evaluator", &Mission{}, nil},
		{"empty path", &Mission{HorizontalSpeed: 3, Altitude: 0}, nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.mission.Validate()
			if tt.want == nil {
				if err != nil {
					t.Fatalf("unexpected error: %v", err)
				}
				return
			}
			if !errors.Is(err, tt.want) {
				t.Fatalf("error = %v, want %v", err, tt.want)
			}
		})
	}
}

func TestBatteryBudgetTotal(t *testing.T) {
	b := BatteryBudget{NumberOfBatteries: 2, Capacity: 1000}
	if got := b.Total(); got != 2000 {
		t.Fatalf("Total() = %v, want 2000", got)
	}
}

func TestMissionConfigAdditionalLoad(t *testing.T) {
	cfg := &MissionConfig{}
	if got := cfg.AdditionalLoad(); got != 0 {
		t.Fatalf("AdditionalLoad() without payload = %v, want 0", got)
	}

	cfg.Payload = &Payload{AdditionalLoad: 0.5}
	if got := cfg.AdditionalLoad(); got != 0.5 {
		t.Fatalf("AdditionalLoad() = %v, want 0.5", got)
	}
}

func TestDroneAndConfigValidate(t *testing.T) {
	var d *Drone
	if err := d.Validate(); !errors.Is(err, ErrInvalidMission) {
		t.Fatalf("nil drone error = %v", err)
	}

	d = &Drone{CurrentLoadInFlight: LoadProfile{Ascension: 1, Translation: -1, Descent: 1}}
	if err := d.Validate(); !errors.Is(err, ErrInvalidMission) {
		t.Fatalf("negative load error = %v", err)
	}

	cfg := &MissionConfig{
		VerticalSpeeds: VerticalSpeeds{Ascension: 2, Descent: 2},
		Energy:         BatteryBudget{NumberOfBatteries: -1, Capacity: 10},
	}
	if err := cfg.Validate(); !errors.Is(err, ErrInvalidMission) {
		t.Fatalf("negative batteries error = %v", err)
	}
}

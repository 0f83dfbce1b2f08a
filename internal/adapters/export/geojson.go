package export

import (
	"fmt"
	"mission-energy-service/internal/domain"

	"github.com/paulmach/orb"
	"github.com/paulmach/orb/geojson"
)

// PathFeatureCollection renders an evaluated mission as GeoJSON: one
// LineString for the flown path followed by one Point per waypoint carrying
// its cumulative end_time and energy.
func PathFeatureCollection(report *domain.EnergyReport) (*geojson.FeatureCollection, error) {
	if report == nil {
		return nil, fmt.Errorf("path feature collection: report is nil: %w", domain.ErrInvalidMission)
	}

	fc := geojson.NewFeatureCollection()

	line := make(orb.LineString, 0, len(report.Timeline))
	for _, wp := range report.Timeline {
		line = append(line, toPoint(wp.Coordinates))
	}

	path := geojson.NewFeature(line)
	path.Properties["name"] = report.MissionName
	path.Properties["end_time"] = report.EndTime
	path.Properties["total_energy"] = report.TotalEnergy
	path.Properties["energy_req"] = report.EnergyReq
	fc.Append(path)

	for i, wp := range report.Timeline {
		f := geojson.NewFeature(toPoint(wp.Coordinates))
		f.Properties["index"] = i
		f.Properties["end_time"] = wp.EndTime
		f.Properties["energy"] = wp.Energy
		fc.Append(f)
	}

	return fc, nil
}

// orb points are (lon, lat).
func toPoint(c domain.Coordinates) orb.Point {
	return orb.Point{c.Lon, c.Lat}
}

package repositories

import (
	"context"
	"mission-energy-service/internal/domain"
	"os"
	"path/filepath"
	"strconv"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeFile(t *testing.T, dir, rel, body string) {
	t.Helper()
	path := filepath.Join(dir, rel)
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o755))
	require.NoError(t, os.WriteFile(path, []byte(body), 0o644))
}

func writeScenario(t *testing.T, dir string, id int, mission, config, drone string) {
	t.Helper()
	writeFile(t, dir, filepath.Join("missions", "mission-"+strconv.Itoa(id)+".json"), mission)
	writeFile(t, dir, filepath.Join("configurations", "config-"+strconv.Itoa(id)+".json"), config)
	writeFile(t, dir, filepath.Join("drones", "drone-"+strconv.Itoa(id)+".json"), drone)
}

const (
	testMission = `{
		"name": "short hop",
		"horizontalSpeed": 5,
		"altitude": 10,
		"points": [
			{"latitude": 0, "longitude": 0},
			{"latitude": 0, "longitude": 0.001}
		]
	}`
	testConfig = `{
		"verticalSpeeds": {"ascension": 2, "descent": 2},
		"energy": {"numberOfBatteries": 2, "capacity": 1000}
	}`
	testConfigWithPayload = `{
		"verticalSpeeds": {"ascension": 2, "descent": 2},
		"payload": {"additionalLoad": 0.5},
		"energy": {"numberOfBatteries": 2, "capacity": 1000}
	}`
	testDrone = `{
		"currentLoadInFlight": {"ascension": 1, "translation": 1, "descent": 1}
	}`
)

func TestJSONRepositoryListAndGet(t *testing.T) {
	dir := t.TempDir()
	writeScenario(t, dir, 2, testMission, testConfigWithPayload, testDrone)
	writeScenario(t, dir, 1, testMission, testConfig, testDrone)
	writeFile(t, dir, filepath.Join("missions", "mission-notes.json"), `{}`)

	repo := NewJSONScenarioRepository(dir)
	ctx := context.Background()

	ids, err := repo.ListScenarioIDs(ctx)
	require.NoError(t, err)
	assert.Equal(t, []int{1, 2}, ids)

	sc, err := repo.GetScenario(ctx, 1)
	require.NoError(t, err)
	assert.Equal(t, 1, sc.ID)
	assert.Equal(t, "short hop", sc.Mission.Name)
	assert.Equal(t, 5.0, sc.Mission.HorizontalSpeed)
	require.Len(t, sc.Mission.Points, 2)
	assert.Equal(t, domain.Coordinates{Lat: 0, Lon: 0.001}, sc.Mission.Points[1].Coordinates)
	assert.Nil(t, sc.Config.Payload)
	assert.Equal(t, 2000.0, sc.Config.Energy.Total())
	assert.Equal(t, 1.0, sc.Drone.CurrentLoadInFlight.Translation)

	sc, err = repo.GetScenario(ctx, 2)
	require.NoError(t, err)
	require.NotNil(t, sc.Config.Payload)
	assert.Equal(t, 0.5, sc.Config.Payload.AdditionalLoad)
}

func TestJSONRepositoryNotFound(t *testing.T) {
	repo := NewJSONScenarioRepository(t.TempDir())

	_, err := repo.GetScenario(context.Background(), 7)
	assert.ErrorIs(t, err, domain.ErrNotFound)

	ids, err := repo.ListScenarioIDs(context.Background())
	require.NoError(t, err)
	assert.Empty(t, ids)
}

func TestJSONRepositoryInvalidRecords(t *testing.T) {
	tests := []struct {
		name    string
		mission string
		config  string
		drone   string
	}{
		{"malformed mission", `{"name":`, testConfig, testDrone},
		{"missing points", `{"name":"x","horizontalSpeed":1,"altitude":1}`, testConfig, testDrone},
		{"missing energy", testMission, `{"verticalSpeeds":{"ascension":1,"descent":1}}`, testDrone},
		{"missing loads", testMission, testConfig, `{}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			dir := t.TempDir()
			writeScenario(t, dir, 1, tt.mission, tt.config, tt.drone)

			_, err := NewJSONScenarioRepository(dir).GetScenario(context.Background(), 1)
			assert.ErrorIs(t, err, domain.ErrInvalidMission)
		})
	}
}

func TestJSONRepositorySkipsNonCanonicalNames(t *testing.T) {
	dir := t.TempDir()
	writeScenario(t, dir, 3, testMission, testConfig, testDrone)
	for _, name := range []string{"mission-01.json", "mission-+4.json", "mission--5.json", "mission- 6.json"} {
		writeFile(t, dir, filepath.Join("missions", name), testMission)
	}

	repo := NewJSONScenarioRepository(dir)
	ids, err := repo.ListScenarioIDs(context.Background())
	require.NoError(t, err)
	assert.Equal(t, []int{3}, ids)

	for _, id := range ids {
		_, err := repo.GetScenario(context.Background(), id)
		assert.NoError(t, err)
	}
}

package main

import (
	"context"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/melody88h/ProjectBike/dataset"
	"github.com/melody88h/ProjectBike/internal/config"
	"github.com/melody88h/ProjectBike/internal/logging"
	"github.com/melody88h/ProjectBike/report"
)

const (
	tripsFixture = `trip_id,bike_id,user_id,start_station_id,end_station_id,start_time,end_time,duration_minutes,distance_km,user_type,bike_type,status
T001,B001,U001,S001,S002,2024-06-01 08:00:00,2024-06-01 08:30:00,30,5.2,casual,classic,completed
T002,B002,U002,S002,S003,2024-06-01 09:15:00,2024-06-01 09:40:00,25,4.1,member,electric,completed
T003,B001,U003,S001,S003,2024-06-02 08:10:00,2024-06-02 08:55:00,45,7.8,casual,classic,completed
T004,B003,U001,S002,S001,2024-07-03 17:20:00,2024-07-03 17:35:00,15,2.4,member,classic,completed
`
	stationsFixture = `station_id,station_name,capacity,latitude,longitude
S001,Hauptbahnhof,20,52.5251,13.3694
S002,Alexanderplatz,30,52.5219,13.4132
S003,Warschauer Str,24,52.5058,13.4490
`
	maintenanceFixture = `record_id,bike_id,bike_type,maintenance_type,date,cost,description
M001,B001,classic,tire_repair,2024-05-12,25.50,front tire replaced
M002,B002,electric,battery_check,2024-06-02,40.00,battery diagnostics
`
)

func writeDataDir(t *testing.T, trips, stations, maintenance string) string {
	t.Helper()
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, dataset.TripsFile), []byte(trips), 0644))
	require.NoError(t, os.WriteFile(filepath.Join(dir, dataset.StationsFile), []byte(stations), 0644))
	require.NoError(t, os.WriteFile(filepath.Join(dir, dataset.MaintenanceFile), []byte(maintenance), 0644))
	return dir
}

func testConfig(dataDir, outDir string) *config.Config {
	cfg := config.DefaultConfig()
	cfg.Data.Dir = dataDir
	cfg.Output.Dir = outDir
	cfg.Bench.Repeats = 1
	return cfg
}

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func TestRunEndToEnd(t *testing.T) {
	dataDir := writeDataDir(t, tripsFixture, stationsFixture, maintenanceFixture)
	outDir := filepath.Join(t.TempDir(), "out")
	cfg := testConfig(dataDir, outDir)

	var stdout strings.Builder
	require.NoError(t, run(context.Background(), cfg, discardLogger(), &stdout))

	content, err := os.ReadFile(filepath.Join(outDir, report.ReportFile))
	require.NoError(t, err)
	text := string(content)
	assert.Contains(t, text, "CityBike — Summary Report")
	assert.Contains(t, text, "Total trips: 4")
	assert.Contains(t, text, "S001")
	assert.Contains(t, text, "--- Algorithm Benchmarks ---")
	assert.Contains(t, text, "merge_sort_ms")

	// The console render matches the file.
	assert.Equal(t, text, stdout.String())

	for _, name := range []string{
		dataset.TripsCleanFile,
		dataset.StationsCleanFile,
		dataset.MaintenanceCleanFile,
		report.WorkbookFile,
	} {
		_, err := os.Stat(filepath.Join(outDir, name))
		assert.NoError(t, err, name)
	}

	for _, name := range []string{
		report.TripsPerStationFile,
		report.MonthlyTrendFile,
		report.DurationHistogramFile,
		report.DurationByUserTypeFile,
	} {
		_, err := os.Stat(filepath.Join(outDir, "figures", name))
		assert.NoError(t, err, name)
	}
}

func TestRunFileLoggingLifecycle(t *testing.T) {
	dataDir := writeDataDir(t, tripsFixture, stationsFixture, maintenanceFixture)
	outDir := t.TempDir()
	cfg := testConfig(dataDir, outDir)
	cfg.Logging.Output = "file"
	cfg.Logging.FilePath = filepath.Join(outDir, "citybike.log")

	prev := slog.Default()
	defer slog.SetDefault(prev)

	logger, err := logging.Setup(cfg.Logging)
	require.NoError(t, err)

	require.NoError(t, run(context.Background(), cfg, logger, io.Discard))
	require.NoError(t, logging.Close())

	content, err := os.ReadFile(cfg.Logging.FilePath)
	require.NoError(t, err)
	assert.Contains(t, string(content), "Pipeline complete")
}

func TestRunMissingDataDir(t *testing.T) {
	cfg := testConfig(filepath.Join(t.TempDir(), "absent"), t.TempDir())

	err := run(context.Background(), cfg, discardLogger(), io.Discard)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "load data")
}

func TestRunNoUsableTrips(t *testing.T) {
	headerOnly := "trip_id,bike_id,user_id,start_station_id,end_station_id,start_time,end_time,duration_minutes,distance_km,user_type,bike_type,status\n"
	dataDir := writeDataDir(t, headerOnly, stationsFixture, maintenanceFixture)
	cfg := testConfig(dataDir, t.TempDir())

	err := run(context.Background(), cfg, discardLogger(), io.Discard)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "duration statistics")
}

func TestRunUnknownUserType(t *testing.T) {
	trips := `trip_id,bike_id,user_id,start_station_id,end_station_id,start_time,end_time,duration_minutes,distance_km,user_type,bike_type,status
T001,B001,U001,S001,S002,2024-06-01 08:00:00,2024-06-01 08:30:00,30,5.2,staff,classic,completed
`
	dataDir := writeDataDir(t, trips, stationsFixture, maintenanceFixture)
	cfg := testConfig(dataDir, t.TempDir())

	err := run(context.Background(), cfg, discardLogger(), io.Discard)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "revenue by user type")
}

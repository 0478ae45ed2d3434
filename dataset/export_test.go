package dataset

import (
	"encoding/csv"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func readCSV(t *testing.T, path string) [][]string {
	t.Helper()
	file, err := os.Open(path)
	require.NoError(t, err)
	defer file.Close()

	records, err := csv.NewReader(file).ReadAll()
	require.NoError(t, err)
	return records
}

func TestExportClean(t *testing.T) {
	ds := &CleanDataset{
		Trips: []Trip{{
			TripID:          "T001",
			BikeID:          "B001",
			UserID:          "U001",
			StartStationID:  "S001",
			EndStationID:    "S002",
			StartTime:       time.Date(2024, 6, 1, 8, 0, 0, 0, time.UTC),
			EndTime:         time.Date(2024, 6, 1, 8, 30, 0, 0, time.UTC),
			DurationMinutes: 30,
			DistanceKM:      5.2,
			UserType:        "casual",
			BikeType:        "classic",
			Status:          "completed",
		}},
		Stations: []Station{{
			StationID: "S001",
			Name:      "Hauptbahnhof",
			Capacity:  20,
			Latitude:  52.5251,
			Longitude: 13.3694,
		}},
		Maintenance: []Maintenance{
			{
				RecordID: "M001",
				BikeID:   "B001",
				BikeType: "classic",
				Kind:     "tire_repair",
				Date:     time.Date(2024, 5, 12, 0, 0, 0, 0, time.UTC),
				Cost:     25.5,
			},
			{
				RecordID: "M002",
				BikeID:   "B002",
				BikeType: "electric",
				Kind:     "battery_replacement",
				Cost:     120,
			},
		},
	}

	dir := t.TempDir()
	require.NoError(t, ExportClean(ds, dir))

	trips := readCSV(t, filepath.Join(dir, TripsCleanFile))
	require.Len(t, trips, 2)
	assert.Equal(t, TripColumns, trips[0])
	assert.Equal(t, []string{
		"T001", "B001", "U001", "S001", "S002",
		"2024-06-01 08:00:00", "2024-06-01 08:30:00", "30", "5.2",
		"casual", "classic", "completed",
	}, trips[1])

	stations := readCSV(t, filepath.Join(dir, StationsCleanFile))
	require.Len(t, stations, 2)
	assert.Equal(t, StationColumns, stations[0])
	assert.Equal(t, []string{"S001", "Hauptbahnhof", "20", "52.5251", "13.3694"}, stations[1])

	maintenance := readCSV(t, filepath.Join(dir, MaintenanceCleanFile))
	require.Len(t, maintenance, 3)
	assert.Equal(t, MaintenanceColumns, maintenance[0])
	assert.Equal(t, []string{"M001", "B001", "classic", "tire_repair", "2024-05-12", "25.5", ""}, maintenance[1])
	// The zero date exports as an empty cell.
	assert.Equal(t, "", maintenance[2][4])
	assert.Equal(t, "120", maintenance[2][5])
}

func TestExportCleanCreatesDirectory(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "output", "clean")
	require.NoError(t, ExportClean(&CleanDataset{}, dir))

	for _, name := range []string{TripsCleanFile, StationsCleanFile, MaintenanceCleanFile} {
		records := readCSV(t, filepath.Join(dir, name))
		require.Len(t, records, 1)
	}
}

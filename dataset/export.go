package dataset

import (
	"encoding/csv"
	"os"
	"path/filepath"
	"strconv"

	"github.com/melody88h/ProjectBike/model"
)

// Clean file names written by ExportClean.
const (
	TripsCleanFile       = "trips_clean.csv"
	StationsCleanFile    = "stations_clean.csv"
	MaintenanceCleanFile = "maintenance_clean.csv"
)

// ExportClean writes the cleaned rows under dir as one CSV per source
// file, using the source column layout. dir is created when missing.
func ExportClean(ds *CleanDataset, dir string) error {
	if err := os.MkdirAll(dir, 0755); err != nil {
		return NewFileError(err, "create directory", dir)
	}

	if err := writeCSV(filepath.Join(dir, TripsCleanFile), TripColumns, tripRecords(ds.Trips)); err != nil {
		return err
	}
	if err := writeCSV(filepath.Join(dir, StationsCleanFile), StationColumns, stationRecords(ds.Stations)); err != nil {
		return err
	}
	return writeCSV(filepath.Join(dir, MaintenanceCleanFile), MaintenanceColumns, maintenanceRecords(ds.Maintenance))
}

func tripRecords(trips []Trip) [][]string {
	records := make([][]string, len(trips))
	for i, t := range trips {
		records[i] = []string{
			t.TripID, t.BikeID, t.UserID, t.StartStationID, t.EndStationID,
			t.StartTime.Format(model.DateTimeLayout), t.EndTime.Format(model.DateTimeLayout),
			formatFloat(t.DurationMinutes), formatFloat(t.DistanceKM),
			t.UserType, t.BikeType, t.Status,
		}
	}
	return records
}

func stationRecords(stations []Station) [][]string {
	records := make([][]string, len(stations))
	for i, s := range stations {
		records[i] = []string{
			s.StationID, s.Name, strconv.Itoa(s.Capacity),
			formatFloat(s.Latitude), formatFloat(s.Longitude),
		}
	}
	return records
}

func maintenanceRecords(maintenance []Maintenance) [][]string {
	records := make([][]string, len(maintenance))
	for i, m := range maintenance {
		date := ""
		if !m.Date.IsZero() {
			date = m.Date.Format(model.DateLayout)
		}
		records[i] = []string{
			m.RecordID, m.BikeID, m.BikeType, m.Kind, date,
			formatFloat(m.Cost), m.Description,
		}
	}
	return records
}

// writeCSV writes a header row followed by records.
func writeCSV(path string, header []string, records [][]string) error {
	file, err := os.Create(path)
	if err != nil {
		return NewFileError(err, "create", path)
	}
	defer file.Close()

	writer := csv.NewWriter(file)
	if err := writer.Write(header); err != nil {
		return NewFileError(err, "write", path)
	}
	for _, record := range records {
		if err := writer.Write(record); err != nil {
			return NewFileError(err, "write", path)
		}
	}
	writer.Flush()
	return writer.Error()
}

func formatFloat(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}

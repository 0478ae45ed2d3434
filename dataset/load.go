package dataset

import (
	"context"
	"encoding/csv"
	"errors"
	"os"
	"path/filepath"
	"strings"

	"golang.org/x/sync/errgroup"
)

// Load reads the three source files under dir concurrently. Any file that
// fails to open or parse cancels the remaining reads and is returned as
// the group error.
func Load(ctx context.Context, dir string) (*Dataset, error) {
	ds := &Dataset{}

	g, ctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		trips, err := loadTrips(ctx, filepath.Join(dir, TripsFile))
		if err != nil {
			return err
		}
		ds.Trips = trips
		return nil
	})
	g.Go(func() error {
		stations, err := loadStations(ctx, filepath.Join(dir, StationsFile))
		if err != nil {
			return err
		}
		ds.Stations = stations
		return nil
	})
	g.Go(func() error {
		maintenance, err := loadMaintenance(ctx, filepath.Join(dir, MaintenanceFile))
		if err != nil {
			return err
		}
		ds.Maintenance = maintenance
		return nil
	})

	if err := g.Wait(); err != nil {
		return nil, err
	}
	return ds, nil
}

func loadTrips(ctx context.Context, path string) ([]RawTrip, error) {
	records, index, err := readSource(ctx, path, TripColumns)
	if err != nil {
		return nil, err
	}

	trips := make([]RawTrip, len(records))
	for i, record := range records {
		trips[i] = RawTrip{
			TripID:          record[index["trip_id"]],
			BikeID:          record[index["bike_id"]],
			UserID:          record[index["user_id"]],
			StartStationID:  record[index["start_station_id"]],
			EndStationID:    record[index["end_station_id"]],
			StartTime:       record[index["start_time"]],
			EndTime:         record[index["end_time"]],
			DurationMinutes: record[index["duration_minutes"]],
			DistanceKM:      record[index["distance_km"]],
			UserType:        record[index["user_type"]],
			BikeType:        record[index["bike_type"]],
			Status:          record[index["status"]],
		}
	}
	return trips, nil
}

func loadStations(ctx context.Context, path string) ([]RawStation, error) {
	records, index, err := readSource(ctx, path, StationColumns)
	if err != nil {
		return nil, err
	}

	stations := make([]RawStation, len(records))
	for i, record := range records {
		stations[i] = RawStation{
			StationID: record[index["station_id"]],
			Name:      record[index["station_name"]],
			Capacity:  record[index["capacity"]],
			Latitude:  record[index["latitude"]],
			Longitude: record[index["longitude"]],
		}
	}
	return stations, nil
}

func loadMaintenance(ctx context.Context, path string) ([]RawMaintenance, error) {
	records, index, err := readSource(ctx, path, MaintenanceColumns)
	if err != nil {
		return nil, err
	}

	maintenance := make([]RawMaintenance, len(records))
	for i, record := range records {
		maintenance[i] = RawMaintenance{
			RecordID:    record[index["record_id"]],
			BikeID:      record[index["bike_id"]],
			BikeType:    record[index["bike_type"]],
			Kind:        record[index["maintenance_type"]],
			Date:        record[index["date"]],
			Cost:        record[index["cost"]],
			Description: record[index["description"]],
		}
	}
	return maintenance, nil
}

// readSource reads one CSV file and resolves the required columns against
// its header row. The column order in the file does not matter. ctx is
// checked up front so a failed sibling load cancels pending reads.
func readSource(ctx context.Context, path string, columns []string) ([][]string, map[string]int, error) {
	if err := ctx.Err(); err != nil {
		return nil, nil, err
	}

	file, err := os.Open(path)
	if err != nil {
		return nil, nil, NewFileError(err, "open", path)
	}
	defer file.Close()

	reader := csv.NewReader(file)
	records, err := reader.ReadAll()
	if err != nil {
		return nil, nil, NewParseError(filepath.Base(path), 0, "", err)
	}
	if len(records) == 0 {
		return nil, nil, NewParseError(filepath.Base(path), 0, "", errors.New("empty file"))
	}

	index := make(map[string]int, len(records[0]))
	for i, name := range records[0] {
		index[strings.TrimSpace(name)] = i
	}
	for _, name := range columns {
		if _, ok := index[name]; !ok {
			return nil, nil, NewParseError(filepath.Base(path), 1, name, ErrMissingColumn)
		}
	}

	return records[1:], index, nil
}

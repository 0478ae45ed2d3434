// Package dataset loads the bike-share source files, inspects and cleans
// the raw rows, and exports the cleaned result. Loading keeps every cell
// as a string; cleaning coerces the rows into typed values and reports
// what each rule dropped.
package dataset

import "time"

// Source file names expected under the data directory.
const (
	TripsFile       = "trips.csv"
	StationsFile    = "stations.csv"
	MaintenanceFile = "maintenance.csv"
)

// Column layouts of the three source files, in file order.
var (
	TripColumns = []string{
		"trip_id", "bike_id", "user_id", "start_station_id", "end_station_id",
		"start_time", "end_time", "duration_minutes", "distance_km",
		"user_type", "bike_type", "status",
	}
	StationColumns = []string{
		"station_id", "station_name", "capacity", "latitude", "longitude",
	}
	MaintenanceColumns = []string{
		"record_id", "bike_id", "bike_type", "maintenance_type", "date",
		"cost", "description",
	}
)

// RawTrip is one trips.csv row with every cell kept verbatim.
type RawTrip struct {
	TripID          string
	BikeID          string
	UserID          string
	StartStationID  string
	EndStationID    string
	StartTime       string
	EndTime         string
	DurationMinutes string
	DistanceKM      string
	UserType        string
	BikeType        string
	Status          string
}

func (t RawTrip) record() []string {
	return []string{
		t.TripID, t.BikeID, t.UserID, t.StartStationID, t.EndStationID,
		t.StartTime, t.EndTime, t.DurationMinutes, t.DistanceKM,
		t.UserType, t.BikeType, t.Status,
	}
}

// RawStation is one stations.csv row with every cell kept verbatim.
type RawStation struct {
	StationID string
	Name      string
	Capacity  string
	Latitude  string
	Longitude string
}

// RawMaintenance is one maintenance.csv row with every cell kept verbatim.
type RawMaintenance struct {
	RecordID    string
	BikeID      string
	BikeType    string
	Kind        string
	Date        string
	Cost        string
	Description string
}

// Dataset holds the raw rows of all three source files.
type Dataset struct {
	Trips       []RawTrip
	Stations    []RawStation
	Maintenance []RawMaintenance
}

// Trip is a cleaned trips.csv row. Categorical fields are trimmed and
// lowercased; duration is the denormalized duration_minutes column, not
// recomputed from the timestamps.
type Trip struct {
	TripID          string
	BikeID          string
	UserID          string
	StartStationID  string
	EndStationID    string
	StartTime       time.Time
	EndTime         time.Time
	DurationMinutes float64
	DistanceKM      float64
	UserType        string
	BikeType        string
	Status          string
}

// Station is a cleaned stations.csv row.
type Station struct {
	StationID string
	Name      string
	Capacity  int
	Latitude  float64
	Longitude float64
}

// Maintenance is a cleaned maintenance.csv row. Date is the zero time
// when the source cell did not parse.
type Maintenance struct {
	RecordID    string
	BikeID      string
	BikeType    string
	Kind        string
	Date        time.Time
	Cost        float64
	Description string
}

// CleanDataset holds the typed rows produced by Clean.
type CleanDataset struct {
	Trips       []Trip
	Stations    []Station
	Maintenance []Maintenance
}

// CleanReport counts what each cleaning rule dropped or rewrote.
type CleanReport struct {
	// DuplicateTrips counts trips dropped for a repeated trip_id.
	DuplicateTrips int
	// DuplicateMaintenance counts records dropped for a repeated record_id.
	DuplicateMaintenance int
	// UnparseableTrips counts trips dropped because a critical field
	// (start_time, end_time, duration_minutes, distance_km) did not parse.
	UnparseableTrips int
	// InconsistentTrips counts trips dropped because end_time was before
	// start_time.
	InconsistentTrips int
	// DroppedStations counts stations dropped for an unparseable capacity
	// or coordinate.
	DroppedStations int
	// ZeroedCosts counts maintenance costs rewritten to 0.
	ZeroedCosts int
	// ZeroDates counts maintenance dates that did not parse.
	ZeroDates int
}

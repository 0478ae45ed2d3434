package dataset

import (
	"strings"

	"github.com/melody88h/ProjectBike/algo"
)

// Inspection summarizes a freshly loaded dataset before cleaning.
type Inspection struct {
	TripCount        int
	StationCount     int
	MaintenanceCount int
	// EmptyTripCells counts empty cells per trip column.
	EmptyTripCells map[string]int
	// UserTypes lists the distinct raw user_type values in ascending order.
	UserTypes []string
	// SampleTrips holds up to the first three trip rows.
	SampleTrips []RawTrip
}

// Inspect reports row counts, per-column empty cells in the trip file,
// the distinct user types, and a small row sample.
func Inspect(ds *Dataset) Inspection {
	insp := Inspection{
		TripCount:        len(ds.Trips),
		StationCount:     len(ds.Stations),
		MaintenanceCount: len(ds.Maintenance),
		EmptyTripCells:   make(map[string]int, len(TripColumns)),
		SampleTrips:      ds.Trips[:min(3, len(ds.Trips))],
	}
	for _, column := range TripColumns {
		insp.EmptyTripCells[column] = 0
	}

	seen := make(map[string]bool)
	var userTypes []string
	for _, trip := range ds.Trips {
		record := trip.record()
		for i, column := range TripColumns {
			if strings.TrimSpace(record[i]) == "" {
				insp.EmptyTripCells[column]++
			}
		}
		if !seen[trip.UserType] {
			seen[trip.UserType] = true
			userTypes = append(userTypes, trip.UserType)
		}
	}
	insp.UserTypes = algo.MergeSort(userTypes)

	return insp
}

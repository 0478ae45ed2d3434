package dataset

import (
	"strconv"
	"strings"

	"github.com/melody88h/ProjectBike/model"
)

// Clean applies the cleaning rules to a raw dataset and reports what each
// rule dropped or rewrote. The rules run in order: duplicate ids go first
// (first occurrence wins), then type coercion, then the end-before-start
// consistency filter. Categorical trip fields come out trimmed and
// lowercased. The input is not modified.
func Clean(ds *Dataset) (*CleanDataset, CleanReport) {
	clean := &CleanDataset{}
	var report CleanReport

	seenTrips := make(map[string]bool, len(ds.Trips))
	for _, raw := range ds.Trips {
		if seenTrips[raw.TripID] {
			report.DuplicateTrips++
			continue
		}
		seenTrips[raw.TripID] = true

		trip, ok := coerceTrip(raw)
		if !ok {
			report.UnparseableTrips++
			continue
		}
		if trip.EndTime.Before(trip.StartTime) {
			report.InconsistentTrips++
			continue
		}
		clean.Trips = append(clean.Trips, trip)
	}

	for _, raw := range ds.Stations {
		station, ok := coerceStation(raw)
		if !ok {
			report.DroppedStations++
			continue
		}
		clean.Stations = append(clean.Stations, station)
	}

	seenRecords := make(map[string]bool, len(ds.Maintenance))
	for _, raw := range ds.Maintenance {
		if seenRecords[raw.RecordID] {
			report.DuplicateMaintenance++
			continue
		}
		seenRecords[raw.RecordID] = true

		record := Maintenance{
			RecordID:    raw.RecordID,
			BikeID:      raw.BikeID,
			BikeType:    raw.BikeType,
			Kind:        raw.Kind,
			Description: raw.Description,
		}
		if date, err := model.ParseTime(raw.Date); err == nil {
			record.Date = date
		} else {
			report.ZeroDates++
		}
		if cost, err := strconv.ParseFloat(strings.TrimSpace(raw.Cost), 64); err == nil {
			record.Cost = cost
		} else {
			report.ZeroedCosts++
		}
		clean.Maintenance = append(clean.Maintenance, record)
	}

	return clean, report
}

// coerceTrip parses the critical trip fields. A trip whose timestamps or
// numeric fields fail to parse is reported unusable.
func coerceTrip(raw RawTrip) (Trip, bool) {
	startTime, err := model.ParseTime(raw.StartTime)
	if err != nil {
		return Trip{}, false
	}
	endTime, err := model.ParseTime(raw.EndTime)
	if err != nil {
		return Trip{}, false
	}
	duration, err := strconv.ParseFloat(strings.TrimSpace(raw.DurationMinutes), 64)
	if err != nil {
		return Trip{}, false
	}
	distance, err := strconv.ParseFloat(strings.TrimSpace(raw.DistanceKM), 64)
	if err != nil {
		return Trip{}, false
	}

	return Trip{
		TripID:          raw.TripID,
		BikeID:          raw.BikeID,
		UserID:          raw.UserID,
		StartStationID:  raw.StartStationID,
		EndStationID:    raw.EndStationID,
		StartTime:       startTime,
		EndTime:         endTime,
		DurationMinutes: duration,
		DistanceKM:      distance,
		UserType:        normalize(raw.UserType),
		BikeType:        normalize(raw.BikeType),
		Status:          normalize(raw.Status),
	}, true
}

func coerceStation(raw RawStation) (Station, bool) {
	capacity, err := strconv.Atoi(strings.TrimSpace(raw.Capacity))
	if err != nil {
		return Station{}, false
	}
	latitude, err := strconv.ParseFloat(strings.TrimSpace(raw.Latitude), 64)
	if err != nil {
		return Station{}, false
	}
	longitude, err := strconv.ParseFloat(strings.TrimSpace(raw.Longitude), 64)
	if err != nil {
		return Station{}, false
	}

	return Station{
		StationID: raw.StationID,
		Name:      raw.Name,
		Capacity:  capacity,
		Latitude:  latitude,
		Longitude: longitude,
	}, true
}

func normalize(value string) string {
	return strings.ToLower(strings.TrimSpace(value))
}

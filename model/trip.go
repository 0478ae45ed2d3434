package model

import "time"

// Trip is a completed ride between two stations.
type Trip struct {
	TripID       string `validate:"required"`
	User         User
	Bike         Bike
	StartStation Station
	EndStation   Station
	StartTime    time.Time `validate:"required"`
	EndTime      time.Time `validate:"required,gtefield=StartTime"`
	DistanceKM   float64   `validate:"gte=0"`
}

// NewTrip returns a validated trip. The end time must not be before the
// start time and the distance must not be negative.
func NewTrip(tripID string, user User, bike Bike, start, end Station, startTime, endTime time.Time, distanceKM float64) (*Trip, error) {
	t := &Trip{
		TripID:       tripID,
		User:         user,
		Bike:         bike,
		StartStation: start,
		EndStation:   end,
		StartTime:    startTime,
		EndTime:      endTime,
		DistanceKM:   distanceKM,
	}
	if err := validate.Struct(t); err != nil {
		return nil, NewValidationError("trip", tripID, err)
	}
	return t, nil
}

// DurationMinutes returns the trip duration in minutes.
func (t *Trip) DurationMinutes() float64 {
	return t.EndTime.Sub(t.StartTime).Minutes()
}

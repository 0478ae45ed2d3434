package model

// Station is a docking station with a fixed location and capacity.
type Station struct {
	StationID string  `validate:"required"`
	Name      string  `validate:"required"`
	Capacity  int     `validate:"gt=0"`
	Latitude  float64 `validate:"gte=-90,lte=90"`
	Longitude float64 `validate:"gte=-180,lte=180"`
}

// NewStation returns a validated station.
func NewStation(stationID, name string, capacity int, latitude, longitude float64) (*Station, error) {
	s := &Station{
		StationID: stationID,
		Name:      name,
		Capacity:  capacity,
		Latitude:  latitude,
		Longitude: longitude,
	}
	if err := validate.Struct(s); err != nil {
		return nil, NewValidationError("station", stationID, err)
	}
	return s, nil
}

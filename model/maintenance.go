package model

import "time"

// MaintenanceRecord is a single service entry for a bike.
type MaintenanceRecord struct {
	RecordID    string    `validate:"required"`
	BikeID      string    `validate:"required"`
	Date        time.Time `validate:"required"`
	Kind        string    `validate:"oneof=tire_repair brake_adjustment battery_replacement chain_lubrication general_inspection"`
	Cost        float64   `validate:"gte=0"`
	Description string
}

// NewMaintenanceRecord returns a validated maintenance record.
func NewMaintenanceRecord(recordID, bikeID string, date time.Time, kind string, cost float64, description string) (*MaintenanceRecord, error) {
	r := &MaintenanceRecord{
		RecordID:    recordID,
		BikeID:      bikeID,
		Date:        date,
		Kind:        kind,
		Cost:        cost,
		Description: description,
	}
	if err := validate.Struct(r); err != nil {
		return nil, NewValidationError("maintenance record", recordID, err)
	}
	return r, nil
}

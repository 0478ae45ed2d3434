package model

// ClassicBike is a geared bike without electric assist.
type ClassicBike struct {
	BikeID    string `validate:"required"`
	GearCount int    `validate:"gt=0"`
	Status    string `validate:"oneof=available in_use maintenance"`
}

// NewClassicBike returns a validated classic bike in the available state.
func NewClassicBike(bikeID string, gearCount int) (*ClassicBike, error) {
	b := &ClassicBike{BikeID: bikeID, GearCount: gearCount, Status: StatusAvailable}
	if err := validate.Struct(b); err != nil {
		return nil, NewValidationError("bike", bikeID, err)
	}
	return b, nil
}

// ID returns the bike id.
func (b *ClassicBike) ID() string { return b.BikeID }

// Type returns BikeTypeClassic.
func (b *ClassicBike) Type() string { return BikeTypeClassic }

// ElectricBike is a battery-assisted bike.
type ElectricBike struct {
	BikeID       string  `validate:"required"`
	BatteryLevel float64 `validate:"gte=0,lte=100"`
	MaxRangeKM   float64 `validate:"gt=0"`
	Status       string  `validate:"oneof=available in_use maintenance"`
}

// NewElectricBike returns a validated electric bike in the available
// state. The battery level is a percentage within [0, 100].
func NewElectricBike(bikeID string, batteryLevel, maxRangeKM float64) (*ElectricBike, error) {
	b := &ElectricBike{
		BikeID:       bikeID,
		BatteryLevel: batteryLevel,
		MaxRangeKM:   maxRangeKM,
		Status:       StatusAvailable,
	}
	if err := validate.Struct(b); err != nil {
		return nil, NewValidationError("bike", bikeID, err)
	}
	return b, nil
}

// ID returns the bike id.
func (b *ElectricBike) ID() string { return b.BikeID }

// Type returns BikeTypeElectric.
func (b *ElectricBike) Type() string { return BikeTypeElectric }

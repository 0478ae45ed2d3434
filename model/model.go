// Package model defines the bike share domain entities with
// construction-time validation, plus factories that build them from
// CSV-shaped rows.
package model

import "github.com/go-playground/validator/v10"

// Bike types and statuses accepted by the entity constructors.
const (
	BikeTypeClassic  = "classic"
	BikeTypeElectric = "electric"

	StatusAvailable   = "available"
	StatusInUse       = "in_use"
	StatusMaintenance = "maintenance"
)

// User types and membership tiers.
const (
	UserTypeCasual = "casual"
	UserTypeMember = "member"

	TierBasic   = "basic"
	TierPremium = "premium"
)

// Bike is implemented by all bike variants.
type Bike interface {
	ID() string
	Type() string
}

// User is implemented by all user variants.
type User interface {
	ID() string
	Type() string
}

var validate = validator.New()

package model

import (
	"fmt"
)

// ValidationError represents an entity that failed construction-time validation
type ValidationError struct {
	// Entity is the kind of entity that failed validation
	Entity string
	// ID is the id of the failing entity, empty if the id itself was missing
	ID string
	// Cause is the underlying validation error
	Cause error
}

func (e *ValidationError) Error() string {
	if e.ID != "" {
		return fmt.Sprintf("invalid %s %s: %v", e.Entity, e.ID, e.Cause)
	}
	return fmt.Sprintf("invalid %s: %v", e.Entity, e.Cause)
}

func (e *ValidationError) Unwrap() error {
	return e.Cause
}

// NewValidationError creates a ValidationError
func NewValidationError(entity, id string, cause error) error {
	return &ValidationError{Entity: entity, ID: id, Cause: cause}
}

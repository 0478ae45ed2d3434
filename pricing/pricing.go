// Package pricing implements interchangeable fare strategies for
// completed trips.
package pricing

import (
	"fmt"
	"math"

	"github.com/melody88h/ProjectBike/model"
)

// Strategy prices a single trip from its duration and distance.
type Strategy interface {
	// Cost returns the fare in euro, rounded to two decimals. Negative
	// duration or distance is an InputError.
	Cost(durationMinutes, distanceKM float64) (float64, error)
}

// Casual fare rates.
const (
	CasualUnlockFee = 1.00
	CasualPerMinute = 0.15
	CasualPerKM     = 0.10
)

// Member fare rates.
const (
	MemberPerMinute = 0.08
	MemberPerKM     = 0.05
)

// PeakMultiplier scales the casual fare during peak hours.
const PeakMultiplier = 1.5

// InputError reports a negative duration or distance passed to a strategy
type InputError struct {
	// DurationMinutes is the duration that was passed
	DurationMinutes float64
	// DistanceKM is the distance that was passed
	DistanceKM float64
}

func (e *InputError) Error() string {
	return fmt.Sprintf("duration and distance must be non-negative, got %v min / %v km", e.DurationMinutes, e.DistanceKM)
}

// CasualPricing charges an unlock fee plus per-minute and per-kilometer
// rates.
type CasualPricing struct{}

// Cost implements Strategy.
func (CasualPricing) Cost(durationMinutes, distanceKM float64) (float64, error) {
	if durationMinutes < 0 || distanceKM < 0 {
		return 0, &InputError{DurationMinutes: durationMinutes, DistanceKM: distanceKM}
	}
	cost := CasualUnlockFee + CasualPerMinute*durationMinutes + CasualPerKM*distanceKM
	return round2(cost), nil
}

// MemberPricing drops the unlock fee and charges reduced rates.
type MemberPricing struct{}

// Cost implements Strategy.
func (MemberPricing) Cost(durationMinutes, distanceKM float64) (float64, error) {
	if durationMinutes < 0 || distanceKM < 0 {
		return 0, &InputError{DurationMinutes: durationMinutes, DistanceKM: distanceKM}
	}
	cost := MemberPerMinute*durationMinutes + MemberPerKM*distanceKM
	return round2(cost), nil
}

// PeakHourPricing composes CasualPricing and multiplies the rounded base
// fare by PeakMultiplier.
type PeakHourPricing struct {
	base CasualPricing
}

// Cost implements Strategy.
func (p PeakHourPricing) Cost(durationMinutes, distanceKM float64) (float64, error) {
	base, err := p.base.Cost(durationMinutes, distanceKM)
	if err != nil {
		return 0, err
	}
	return round2(base * PeakMultiplier), nil
}

// ForUserType returns the strategy matching a user type as it appears in
// trip rows: casual or member.
func ForUserType(userType string) (Strategy, error) {
	switch userType {
	case model.UserTypeCasual:
		return CasualPricing{}, nil
	case model.UserTypeMember:
		return MemberPricing{}, nil
	default:
		return nil, fmt.Errorf("no pricing strategy for user type %q", userType)
	}
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}

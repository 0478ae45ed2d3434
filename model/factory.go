package model

import (
	"fmt"
	"strconv"
	"strings"
	"time"
)

// Factory defaults applied when a row leaves an optional field empty.
const (
	DefaultGearCount    = 7
	DefaultBatteryLevel = 100.0
	DefaultMaxRangeKM   = 50.0
	DefaultName         = "Unknown"
	DefaultEmail        = "unknown@email.com"
)

// BikeFromRow builds a bike from a CSV-shaped row. The bike_type value
// is normalized by trimming and lowercasing before dispatch; optional
// fields fall back to the factory defaults.
func BikeFromRow(row map[string]string) (Bike, error) {
	bikeType := strings.ToLower(strings.TrimSpace(row["bike_type"]))
	switch bikeType {
	case BikeTypeClassic:
		gears, err := intField(row, "gear_count", DefaultGearCount)
		if err != nil {
			return nil, err
		}
		b, err := NewClassicBike(row["bike_id"], gears)
		if err != nil {
			return nil, err
		}
		return b, nil
	case BikeTypeElectric:
		battery, err := floatField(row, "battery_level", DefaultBatteryLevel)
		if err != nil {
			return nil, err
		}
		rangeKM, err := floatField(row, "max_range_km", DefaultMaxRangeKM)
		if err != nil {
			return nil, err
		}
		b, err := NewElectricBike(row["bike_id"], battery, rangeKM)
		if err != nil {
			return nil, err
		}
		return b, nil
	default:
		return nil, fmt.Errorf("unknown bike_type %q", bikeType)
	}
}

// UserFromRow builds a user from a CSV-shaped row. The user_type value
// is normalized by trimming and lowercasing before dispatch. Member rows
// without a membership_start begin now; rows without a membership_end
// run one year from the start.
func UserFromRow(row map[string]string) (User, error) {
	userType := strings.ToLower(strings.TrimSpace(row["user_type"]))
	name := stringField(row, "name", DefaultName)
	email := stringField(row, "email", DefaultEmail)
	switch userType {
	case UserTypeCasual:
		passes, err := intField(row, "day_pass_count", 0)
		if err != nil {
			return nil, err
		}
		u, err := NewCasualUser(row["user_id"], name, email, passes)
		if err != nil {
			return nil, err
		}
		return u, nil
	case UserTypeMember:
		start := time.Now()
		if v := strings.TrimSpace(row["membership_start"]); v != "" {
			t, err := ParseTime(v)
			if err != nil {
				return nil, err
			}
			start = t
		}
		end := start.AddDate(1, 0, 0)
		if v := strings.TrimSpace(row["membership_end"]); v != "" {
			t, err := ParseTime(v)
			if err != nil {
				return nil, err
			}
			end = t
		}
		tier := strings.ToLower(stringField(row, "tier", TierBasic))
		u, err := NewMemberUser(row["user_id"], name, email, start, end, tier)
		if err != nil {
			return nil, err
		}
		return u, nil
	default:
		return nil, fmt.Errorf("unknown user_type %q", userType)
	}
}

func stringField(row map[string]string, key, fallback string) string {
	if v := strings.TrimSpace(row[key]); v != "" {
		return v
	}
	return fallback
}

func intField(row map[string]string, key string, fallback int) (int, error) {
	v := strings.TrimSpace(row[key])
	if v == "" {
		return fallback, nil
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		return 0, fmt.Errorf("invalid %s %q: %w", key, v, err)
	}
	return n, nil
}

func floatField(row map[string]string, key string, fallback float64) (float64, error) {
	v := strings.TrimSpace(row[key])
	if v == "" {
		return fallback, nil
	}
	f, err := strconv.ParseFloat(v, 64)
	if err != nil {
		return 0, fmt.Errorf("invalid %s %q: %w", key, v, err)
	}
	return f, nil
}

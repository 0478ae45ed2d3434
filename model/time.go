package model

import (
	"fmt"
	"strings"
	"time"
)

// Timestamp layouts used across the toolkit's CSV inputs.
const (
	DateTimeLayout = "2006-01-02 15:04:05"
	DateLayout     = "2006-01-02"
)

// ParseTime parses a timestamp in DateTimeLayout, falling back to the
// date-only DateLayout. The input is trimmed first.
func ParseTime(text string) (time.Time, error) {
	text = strings.TrimSpace(text)
	t, err := time.Parse(DateTimeLayout, text)
	if err == nil {
		return t, nil
	}
	if t, dateErr := time.Parse(DateLayout, text); dateErr == nil {
		return t, nil
	}
	return time.Time{}, fmt.Errorf("invalid time %q: %w", text, err)
}

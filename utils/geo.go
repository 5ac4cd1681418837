package utils

import (
	"fmt"
	"strings"
)

// UnknownLocation is substituted for missing city/state/country values so
// trend keys never carry empty fields.
const UnknownLocation = "Unknown"

// NormalizeLocation returns the sentinel for nil or blank location fields and
// the value unchanged otherwise. Matching stays case-sensitive.
func NormalizeLocation(value *string) string {
	if value == nil {
		return UnknownLocation
	}
	if strings.TrimSpace(*value) == "" {
		return UnknownLocation
	}
	return *value
}

// ValidateLocation checks if location coordinates are valid
func ValidateLocation(lat, lon float64) error {
	if lat < -90 || lat > 90 {
		return fmt.Errorf("invalid latitude: must be between -90 and 90")
	}
	if lon < -180 || lon > 180 {
		return fmt.Errorf("invalid longitude: must be between -180 and 180")
	}
	return nil
}

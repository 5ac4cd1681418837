package utils

import "testing"

func TestNormalizeLocation(t *testing.T) {
	la := "Los Angeles"
	blank := ""
	spaces := "   "

	tests := []struct {
		name     string
		value    *string
		expected string
	}{
		{"Nil value returns sentinel", nil, UnknownLocation},
		{"Empty string returns sentinel", &blank, UnknownLocation},
		{"Whitespace only returns sentinel", &spaces, UnknownLocation},
		{"Real value passes through", &la, "Los Angeles"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := NormalizeLocation(tt.value)
			if result != tt.expected {
				t.Errorf("NormalizeLocation() = %q, expected %q", result, tt.expected)
			}
		})
	}

	t.Run("Case is preserved", func(t *testing.T) {
		lower := "los angeles"
		if NormalizeLocation(&lower) != "los angeles" {
			t.Error("NormalizeLocation() must not change casing")
		}
	})
}

func TestValidateLocation(t *testing.T) {
	tests := []struct {
		name      string
		lat       float64
		lon       float64
		expectErr bool
	}{
		{"Valid coordinates", 34.0522, -118.2437, false},
		{"Valid edge - North Pole", 90, 0, false},
		{"Valid edge - South Pole", -90, 0, false},
		{"Valid edge - Date Line East", 0, 180, false},
		{"Valid edge - Date Line West", 0, -180, false},
		{"Invalid latitude too high", 91, 0, true},
		{"Invalid latitude too low", -91, 0, true},
		{"Invalid longitude too high", 0, 181, true},
		{"Invalid longitude too low", 0, -181, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateLocation(tt.lat, tt.lon)
			if (err != nil) != tt.expectErr {
				t.Errorf("ValidateLocation(%v, %v) error = %v, expectErr %v",
					tt.lat, tt.lon, err, tt.expectErr)
			}
		})
	}
}

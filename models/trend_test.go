package models

import (
	"testing"
	"time"
)

func strPtr(s string) *string { return &s }

func TestResolveTrendKey(t *testing.T) {
	tests := []struct {
		name     string
		order    Order
		expected TrendKey
	}{
		{
			name: "Full location",
			order: Order{
				City:    strPtr("Los Angeles"),
				State:   strPtr("CA"),
				Country: strPtr("USA"),
			},
			expected: TrendKey{MovieID: 7, City: "Los Angeles", State: "CA", Country: "USA"},
		},
		{
			name:     "All fields missing fall back to sentinel",
			order:    Order{},
			expected: TrendKey{MovieID: 7, City: "Unknown", State: "Unknown", Country: "Unknown"},
		},
		{
			name: "Empty strings fall back to sentinel",
			order: Order{
				City:    strPtr("Seattle"),
				State:   strPtr(""),
				Country: strPtr(""),
			},
			expected: TrendKey{MovieID: 7, City: "Seattle", State: "Unknown", Country: "Unknown"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			key := ResolveTrendKey(7, &tt.order)
			if key != tt.expected {
				t.Errorf("ResolveTrendKey() = %+v, expected %+v", key, tt.expected)
			}
		})
	}
}

func TestResolveTrendKeyEquality(t *testing.T) {
	// Two orders with the same movie and same (sentinel-filled) location must
	// produce identical keys so their quantities merge.
	a := Order{City: strPtr("Austin"), State: nil, Country: strPtr("USA")}
	b := Order{City: strPtr("Austin"), State: strPtr(""), Country: strPtr("USA")}

	if ResolveTrendKey(3, &a) != ResolveTrendKey(3, &b) {
		t.Error("keys for equivalent locations must be identical")
	}
	if ResolveTrendKey(3, &a) == ResolveTrendKey(4, &a) {
		t.Error("keys for different movies must differ")
	}
}

func TestTrendLabel(t *testing.T) {
	trend := MovieLocationTrend{
		Movie:         Movie{Name: "Inception"},
		City:          "Los Angeles",
		State:         "CA",
		PurchaseCount: 3,
		Date:          time.Date(2024, 6, 15, 0, 0, 0, 0, time.UTC),
	}

	expected := "Inception - Los Angeles, CA (3 purchases)"
	if got := trend.Label(); got != expected {
		t.Errorf("Label() = %q, expected %q", got, expected)
	}
}

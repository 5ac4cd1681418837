package models

import (
	"fmt"
	"time"

	"moviesstore-backend/utils"
)

// MovieLocationTrend is a running purchase counter for one (movie, location)
// combination. Identity is the (movie, city, state, country) 4-tuple; Date
// records when the row was created and is never changed by a merge.
type MovieLocationTrend struct {
	ID            uint      `gorm:"primaryKey" json:"id"`
	MovieID       uint      `gorm:"uniqueIndex:idx_trend_key" json:"movie_id"`
	Movie         Movie     `json:"movie"`
	City          string    `gorm:"uniqueIndex:idx_trend_key;size:100" json:"city"`
	State         string    `gorm:"uniqueIndex:idx_trend_key;size:100" json:"state"`
	Country       string    `gorm:"uniqueIndex:idx_trend_key;size:100" json:"country"`
	Latitude      float64   `json:"latitude"`
	Longitude     float64   `json:"longitude"`
	PurchaseCount int       `json:"purchase_count"`
	Date          time.Time `json:"date"`
}

// Label renders the trend the way the operator report and logs show it.
func (t *MovieLocationTrend) Label() string {
	return fmt.Sprintf("%s - %s, %s (%d purchases)", t.Movie.Name, t.City, t.State, t.PurchaseCount)
}

// GetPurchaseCount returns the running total for sorting.
func (t MovieLocationTrend) GetPurchaseCount() int {
	return t.PurchaseCount
}

// TrendKey is the canonical grouping key for trend accumulation and lookup.
// It is comparable so it can key a map directly.
type TrendKey struct {
	MovieID uint
	City    string
	State   string
	Country string
}

// ResolveTrendKey derives the grouping key for one purchased item, replacing
// missing location fields with the "Unknown" sentinel. Two items for the same
// movie and the same (possibly sentinel-filled) location always resolve to an
// identical key.
func ResolveTrendKey(movieID uint, order *Order) TrendKey {
	return TrendKey{
		MovieID: movieID,
		City:    utils.NormalizeLocation(order.City),
		State:   utils.NormalizeLocation(order.State),
		Country: utils.NormalizeLocation(order.Country),
	}
}

// AggregationReport summarizes one aggregation run.
type AggregationReport struct {
	StartDate        time.Time            `json:"start_date"`
	EndDate          time.Time            `json:"end_date"`
	QualifyingOrders int                  `json:"qualifying_orders"`
	Created          int                  `json:"created"`
	Updated          int                  `json:"updated"`
	Skipped          int                  `json:"skipped"`
	Failed           int                  `json:"failed"`
	TopTrends        []MovieLocationTrend `json:"top_trends"`
}

// TrendMarker is one exported map marker. Field names and formats match the
// consumer of the export file.
type TrendMarker struct {
	Lat       float64 `json:"lat"`
	Lng       float64 `json:"lng"`
	Title     string  `json:"title"`
	Info      string  `json:"info"`
	Purchases int     `json:"purchases"`
	MovieName string  `json:"movie_name"`
	City      string  `json:"city"`
	State     string  `json:"state"`
}

// TrendLocation is the location block of the trending API response.
type TrendLocation struct {
	City    string  `json:"city"`
	State   string  `json:"state"`
	Country string  `json:"country"`
	Lat     float64 `json:"lat"`
	Lng     float64 `json:"lng"`
}

// TrendResponse is one entry of the trending API response.
type TrendResponse struct {
	Movie         string        `json:"movie"`
	PurchaseCount int           `json:"purchase_count"`
	Location      TrendLocation `json:"location"`
}

// ToResponse converts a trend row to its API shape.
func (t *MovieLocationTrend) ToResponse() TrendResponse {
	return TrendResponse{
		Movie:         t.Movie.Name,
		PurchaseCount: t.PurchaseCount,
		Location: TrendLocation{
			City:    t.City,
			State:   t.State,
			Country: t.Country,
			Lat:     t.Latitude,
			Lng:     t.Longitude,
		},
	}
}

package services

import (
	"log"
	"time"

	"moviesstore-backend/config"
	"moviesstore-backend/models"
	"moviesstore-backend/utils"
)

// AggregationService turns raw orders and line items into per-movie,
// per-location purchase trends. One call processes a full window start to
// finish; runs are batch-oriented and single-threaded.
type AggregationService struct {
	store *Store
	cfg   *config.Config
	now   func() time.Time
}

// NewAggregationService creates a new aggregation service instance
func NewAggregationService(store *Store, cfg *config.Config) *AggregationService {
	return &AggregationService{
		store: store,
		cfg:   cfg,
		now:   time.Now,
	}
}

// trendAccumulator carries the in-memory totals for one trend key within a
// single run: summed quantity plus the last-seen coordinates.
type trendAccumulator struct {
	quantity  int
	latitude  float64
	longitude float64
}

// reconcileResult discriminates the outcome of reconciling one key.
type reconcileResult int

const (
	trendCreated reconcileResult = iota
	trendMerged
	trendSkipped
)

// Aggregate scans orders in the trailing window of the given size, groups
// their items by (movie, location) and reconciles the accumulated totals
// against the persisted trend rows. With force set, existing rows absorb the
// new counts; otherwise they are left untouched. A failure on one key is
// logged and counted, never aborts the run.
func (s *AggregationService) Aggregate(days int, force bool) (*models.AggregationReport, error) {
	if days < 0 {
		log.Printf("Negative window of %d days requested, clamping to 0", days)
		days = 0
	}

	endDate := truncateToDay(s.now())
	startDate := endDate.AddDate(0, 0, -days)

	log.Printf("Aggregating orders from %s to %s",
		startDate.Format("2006-01-02"), endDate.Format("2006-01-02"))

	report := &models.AggregationReport{
		StartDate: startDate,
		EndDate:   endDate,
	}

	orders, err := s.store.OrdersWithLocation(startDate, endDate)
	if err != nil {
		return nil, err
	}
	report.QualifyingOrders = len(orders)

	if len(orders) == 0 {
		log.Println("No orders with location data found")
		return report, nil
	}

	log.Printf("Found %d orders with location data", len(orders))

	totals, keys, err := s.accumulate(orders)
	if err != nil {
		return nil, err
	}

	for _, key := range keys {
		acc := totals[key]
		result, trend, err := s.reconcile(key, acc, force, endDate)
		if err != nil {
			report.Failed++
			log.Printf("Failed to reconcile trend for movie %d in %s, %s: %v",
				key.MovieID, key.City, key.State, err)
			continue
		}

		switch result {
		case trendCreated:
			report.Created++
			log.Printf("Created trend: movie %d in %s, %s (%d purchases)",
				key.MovieID, key.City, key.State, acc.quantity)
		case trendMerged:
			report.Updated++
			log.Printf("Updated trend: movie %d in %s, %s (total: %d purchases)",
				key.MovieID, key.City, key.State, trend.PurchaseCount)
		case trendSkipped:
			report.Skipped++
			log.Printf("Skipped existing trend: movie %d in %s, %s",
				key.MovieID, key.City, key.State)
		}
	}

	log.Printf("Aggregation complete - Created: %d, Updated: %d, Skipped: %d, Failed: %d",
		report.Created, report.Updated, report.Skipped, report.Failed)

	topTrends, err := s.store.TrendsCreatedOn(endDate)
	if err != nil {
		return nil, err
	}
	report.TopTrends = utils.TopByCount(topTrends, s.topLimit())

	return report, nil
}

// accumulate joins each qualifying order to its items and folds quantities
// into a per-key total. Coordinates are last-write-wins within the run. Key
// order is preserved so reconciliation is deterministic.
func (s *AggregationService) accumulate(orders []models.Order) (map[models.TrendKey]*trendAccumulator, []models.TrendKey, error) {
	totals := make(map[models.TrendKey]*trendAccumulator)
	keys := []models.TrendKey{}

	for i := range orders {
		order := &orders[i]
		items, err := s.store.ItemsForOrder(order.ID)
		if err != nil {
			return nil, nil, err
		}

		for _, item := range items {
			key := models.ResolveTrendKey(item.MovieID, order)
			acc, ok := totals[key]
			if !ok {
				acc = &trendAccumulator{}
				totals[key] = acc
				keys = append(keys, key)
			}
			acc.quantity += item.Quantity
			acc.latitude = *order.Latitude
			acc.longitude = *order.Longitude
		}
	}

	return totals, keys, nil
}

// reconcile applies one accumulated total to the store: create when absent,
// merge when present and forced, otherwise leave the row alone.
func (s *AggregationService) reconcile(key models.TrendKey, acc *trendAccumulator, force bool, endDate time.Time) (reconcileResult, *models.MovieLocationTrend, error) {
	existing, err := s.store.FindTrend(key)
	if err != nil {
		return trendSkipped, nil, err
	}

	if existing == nil {
		trend := &models.MovieLocationTrend{
			MovieID:       key.MovieID,
			City:          key.City,
			State:         key.State,
			Country:       key.Country,
			Latitude:      acc.latitude,
			Longitude:     acc.longitude,
			PurchaseCount: acc.quantity,
			Date:          endDate,
		}
		if err := s.store.CreateTrend(trend); err != nil {
			return trendSkipped, nil, err
		}
		return trendCreated, trend, nil
	}

	if !force {
		return trendSkipped, existing, nil
	}

	if err := s.store.MergeTrend(existing, acc.quantity, acc.latitude, acc.longitude); err != nil {
		return trendSkipped, nil, err
	}
	return trendMerged, existing, nil
}

// LogTopTrends prints the ranked report list to the operator log.
func (s *AggregationService) LogTopTrends(report *models.AggregationReport) {
	if len(report.TopTrends) == 0 {
		return
	}
	log.Println("Top trending movies:")
	for i := range report.TopTrends {
		log.Printf("  %s", report.TopTrends[i].Label())
	}
}

func (s *AggregationService) topLimit() int {
	if s.cfg != nil && s.cfg.TrendTopLimit > 0 {
		return s.cfg.TrendTopLimit
	}
	return 10
}

// truncateToDay drops the time-of-day component in the timestamp's location.
func truncateToDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}

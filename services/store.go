package services

import (
	"errors"
	"fmt"
	"time"

	"moviesstore-backend/models"

	"gorm.io/gorm"
)

// Store is the read/write adapter over the order and trend tables. The
// aggregation engine only touches the database through it.
type Store struct {
	db *gorm.DB
}

// NewStore creates a store adapter over the given database handle.
func NewStore(db *gorm.DB) *Store {
	return &Store{db: db}
}

// DB exposes the underlying handle for glue code that manages its own queries.
func (s *Store) DB() *gorm.DB {
	return s.db
}

// OrdersWithLocation returns orders whose date falls in [start, end] inclusive
// (both taken as calendar days) and that carry both coordinates. Orders
// missing either coordinate are excluded, not errors.
func (s *Store) OrdersWithLocation(start, end time.Time) ([]models.Order, error) {
	var orders []models.Order
	err := s.db.
		Where("date >= ? AND date < ?", start, end.AddDate(0, 0, 1)).
		Where("latitude IS NOT NULL AND longitude IS NOT NULL").
		Order("date").
		Find(&orders).Error
	if err != nil {
		return nil, fmt.Errorf("failed to fetch orders: %w", err)
	}
	return orders, nil
}

// ItemsForOrder returns all line items of one order.
func (s *Store) ItemsForOrder(orderID uint) ([]models.Item, error) {
	var items []models.Item
	if err := s.db.Where("order_id = ?", orderID).Find(&items).Error; err != nil {
		return nil, fmt.Errorf("failed to fetch items for order %d: %w", orderID, err)
	}
	return items, nil
}

// FindTrend looks up the trend row for a key. Identity is the 4-tuple only;
// the stored date plays no part in the lookup. Returns (nil, nil) when absent.
func (s *Store) FindTrend(key models.TrendKey) (*models.MovieLocationTrend, error) {
	var trend models.MovieLocationTrend
	err := s.db.
		Where("movie_id = ? AND city = ? AND state = ? AND country = ?",
			key.MovieID, key.City, key.State, key.Country).
		First(&trend).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to look up trend: %w", err)
	}
	return &trend, nil
}

// CreateTrend inserts a new trend row. The unique index on the 4-tuple makes
// a concurrent duplicate create fail here rather than corrupt the table.
func (s *Store) CreateTrend(trend *models.MovieLocationTrend) error {
	if err := s.db.Create(trend).Error; err != nil {
		return fmt.Errorf("failed to create trend: %w", err)
	}
	return nil
}

// MergeTrend folds newly accumulated purchases into an existing row. The
// count only grows, coordinates are overwritten with the latest seen values,
// and the row's date is left as originally stored.
func (s *Store) MergeTrend(trend *models.MovieLocationTrend, addCount int, lat, lng float64) error {
	trend.PurchaseCount += addCount
	trend.Latitude = lat
	trend.Longitude = lng
	err := s.db.Model(trend).Updates(map[string]interface{}{
		"purchase_count": trend.PurchaseCount,
		"latitude":       lat,
		"longitude":      lng,
	}).Error
	if err != nil {
		return fmt.Errorf("failed to merge trend: %w", err)
	}
	return nil
}

// AllTrends returns every persisted trend row with its movie, in insertion
// order. Callers must not depend on any particular ordering.
func (s *Store) AllTrends() ([]models.MovieLocationTrend, error) {
	var trends []models.MovieLocationTrend
	if err := s.db.Preload("Movie").Order("id").Find(&trends).Error; err != nil {
		return nil, fmt.Errorf("failed to fetch trends: %w", err)
	}
	return trends, nil
}

// TrendsCreatedOn returns the trend rows whose date matches the given run day.
func (s *Store) TrendsCreatedOn(day time.Time) ([]models.MovieLocationTrend, error) {
	var trends []models.MovieLocationTrend
	err := s.db.Preload("Movie").
		Where("date >= ? AND date < ?", day, day.AddDate(0, 0, 1)).
		Find(&trends).Error
	if err != nil {
		return nil, fmt.Errorf("failed to fetch trends for %s: %w", day.Format("2006-01-02"), err)
	}
	return trends, nil
}

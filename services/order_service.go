package services

import (
	"fmt"
	"log"

	"moviesstore-backend/models"
	"moviesstore-backend/utils"

	"gorm.io/gorm"
)

// OrderService handles purchase creation and the post-checkout location
// capture that feeds the aggregation engine.
type OrderService struct {
	db *gorm.DB
}

// NewOrderService creates a new order service instance
func NewOrderService(db *gorm.DB) *OrderService {
	return &OrderService{db: db}
}

// CreatePurchase turns a set of cart lines into an order with one item per
// movie. Item prices are captured from the catalog at purchase time. The
// order starts without a location; that arrives later via SetOrderLocation.
func (s *OrderService) CreatePurchase(req *models.PurchaseRequest) (*models.Order, error) {
	movieIDs := make([]uint, 0, len(req.Items))
	for _, line := range req.Items {
		if line.Quantity <= 0 {
			return nil, fmt.Errorf("invalid quantity %d for movie %d", line.Quantity, line.MovieID)
		}
		movieIDs = append(movieIDs, line.MovieID)
	}

	var movies []models.Movie
	if err := s.db.Where("id IN ?", movieIDs).Find(&movies).Error; err != nil {
		return nil, fmt.Errorf("failed to fetch movies: %w", err)
	}
	moviesByID := make(map[uint]models.Movie, len(movies))
	for _, m := range movies {
		moviesByID[m.ID] = m
	}

	total := 0
	for _, line := range req.Items {
		movie, ok := moviesByID[line.MovieID]
		if !ok {
			return nil, fmt.Errorf("movie %d not found", line.MovieID)
		}
		total += movie.Price * line.Quantity
	}

	order := &models.Order{
		Total:  total,
		UserID: req.UserID,
	}

	err := s.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(order).Error; err != nil {
			return err
		}
		for _, line := range req.Items {
			item := models.Item{
				Price:    moviesByID[line.MovieID].Price,
				Quantity: line.Quantity,
				OrderID:  order.ID,
				MovieID:  line.MovieID,
			}
			if err := tx.Create(&item).Error; err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create order: %w", err)
	}

	log.Printf("Created order %d for user %d (%d items, total %d)",
		order.ID, req.UserID, len(req.Items), total)
	return order, nil
}

// SetOrderLocation attaches coordinates and place names to an existing order.
// Both coordinates are required together; place names may stay empty and are
// normalized to the sentinel at aggregation time, not here.
func (s *OrderService) SetOrderLocation(req *models.OrderLocationRequest) (*models.Order, error) {
	if req.Latitude == nil || req.Longitude == nil {
		return nil, fmt.Errorf("latitude and longitude are both required")
	}
	if err := utils.ValidateLocation(*req.Latitude, *req.Longitude); err != nil {
		return nil, err
	}

	var order models.Order
	if err := s.db.First(&order, req.OrderID).Error; err != nil {
		return nil, fmt.Errorf("order %d not found: %w", req.OrderID, err)
	}

	order.Latitude = req.Latitude
	order.Longitude = req.Longitude
	order.City = optionalString(req.City)
	order.State = optionalString(req.State)
	order.Country = optionalString(req.Country)

	if err := s.db.Save(&order).Error; err != nil {
		return nil, fmt.Errorf("failed to update order location: %w", err)
	}

	log.Printf("Recorded location for order %d (%.4f, %.4f)", order.ID, *req.Latitude, *req.Longitude)
	return &order, nil
}

func optionalString(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}

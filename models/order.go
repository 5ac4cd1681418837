package models

import "time"

// Order is a completed purchase. Location fields are nullable because they are
// captured by a separate call after checkout; latitude and longitude are always
// set together or not at all.
type Order struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	Total     int       `json:"total"`
	Date      time.Time `gorm:"index:idx_order_date;autoCreateTime" json:"date"`
	UserID    uint      `gorm:"index:idx_order_user" json:"user_id"`
	Latitude  *float64  `json:"latitude,omitempty"`
	Longitude *float64  `json:"longitude,omitempty"`
	City      *string   `json:"city,omitempty"`
	State     *string   `json:"state,omitempty"`
	Country   *string   `json:"country,omitempty"`
}

// HasLocation reports whether both coordinates are set.
func (o *Order) HasLocation() bool {
	return o.Latitude != nil && o.Longitude != nil
}

// Item is one purchased line of an order. Price is the unit price at purchase
// time, independent of the movie's current price. Items are immutable.
type Item struct {
	ID       uint `gorm:"primaryKey" json:"id"`
	Price    int  `json:"price"`
	Quantity int  `json:"quantity"`
	OrderID  uint `gorm:"index:idx_item_order" json:"order_id"`
	MovieID  uint `gorm:"index:idx_item_movie" json:"movie_id"`
}

// PurchaseRequest creates an order from a set of cart lines.
type PurchaseRequest struct {
	UserID uint           `json:"user_id" binding:"required"`
	Items  []PurchaseLine `json:"items" binding:"required,min=1"`
}

// PurchaseLine is one (movie, quantity) entry of a purchase request.
type PurchaseLine struct {
	MovieID  uint `json:"movie_id" binding:"required"`
	Quantity int  `json:"quantity" binding:"required,min=1"`
}

// OrderLocationRequest attaches a geographic location to an existing order.
// City, state and country may be omitted; coordinates may not.
type OrderLocationRequest struct {
	OrderID   uint     `json:"order_id" binding:"required"`
	Latitude  *float64 `json:"latitude" binding:"required"`
	Longitude *float64 `json:"longitude" binding:"required"`
	City      string   `json:"city"`
	State     string   `json:"state"`
	Country   string   `json:"country"`
}

package services

import (
	"testing"
	"time"

	"moviesstore-backend/models"
)

func TestCreatePurchase(t *testing.T) {
	db := setupTestDB(t)
	inception := createMovie(t, db, "Inception", 12)
	heat := createMovie(t, db, "Heat", 10)

	svc := NewOrderService(db)
	order, err := svc.CreatePurchase(&models.PurchaseRequest{
		UserID: 1,
		Items: []models.PurchaseLine{
			{MovieID: inception.ID, Quantity: 2},
			{MovieID: heat.ID, Quantity: 1},
		},
	})
	if err != nil {
		t.Fatalf("CreatePurchase() error: %v", err)
	}

	if order.Total != 34 {
		t.Errorf("Total = %d, expected 34 (2*12 + 1*10)", order.Total)
	}
	if order.HasLocation() {
		t.Error("new order must start without a location")
	}

	var items []models.Item
	if err := db.Where("order_id = ?", order.ID).Find(&items).Error; err != nil {
		t.Fatalf("failed to fetch items: %v", err)
	}
	if len(items) != 2 {
		t.Fatalf("order has %d items, expected 2", len(items))
	}
	for _, item := range items {
		// Item price is captured at purchase time.
		if item.MovieID == inception.ID && item.Price != 12 {
			t.Errorf("item price = %d, expected 12", item.Price)
		}
	}
}

func TestCreatePurchaseUnknownMovie(t *testing.T) {
	db := setupTestDB(t)
	svc := NewOrderService(db)

	_, err := svc.CreatePurchase(&models.PurchaseRequest{
		UserID: 1,
		Items:  []models.PurchaseLine{{MovieID: 999, Quantity: 1}},
	})
	if err == nil {
		t.Error("CreatePurchase() with unknown movie must fail")
	}
}

func TestSetOrderLocation(t *testing.T) {
	db := setupTestDB(t)
	order := createOrder(t, db, time.Now(), nil, nil, nil, nil, nil)

	svc := NewOrderService(db)
	updated, err := svc.SetOrderLocation(&models.OrderLocationRequest{
		OrderID:   order.ID,
		Latitude:  f64(34.05),
		Longitude: f64(-118.24),
		City:      "Los Angeles",
		State:     "CA",
	})
	if err != nil {
		t.Fatalf("SetOrderLocation() error: %v", err)
	}

	if !updated.HasLocation() {
		t.Fatal("order must have a location after update")
	}
	if *updated.Latitude != 34.05 || *updated.Longitude != -118.24 {
		t.Errorf("coordinates = (%v, %v)", *updated.Latitude, *updated.Longitude)
	}
	if updated.City == nil || *updated.City != "Los Angeles" {
		t.Errorf("City = %v, expected Los Angeles", updated.City)
	}
	if updated.Country != nil {
		t.Error("empty country must stay null, normalization happens at aggregation time")
	}
}

func TestSetOrderLocationValidation(t *testing.T) {
	db := setupTestDB(t)
	order := createOrder(t, db, time.Now(), nil, nil, nil, nil, nil)
	svc := NewOrderService(db)

	tests := []struct {
		name string
		req  models.OrderLocationRequest
	}{
		{"Missing longitude", models.OrderLocationRequest{OrderID: order.ID, Latitude: f64(10)}},
		{"Missing latitude", models.OrderLocationRequest{OrderID: order.ID, Longitude: f64(10)}},
		{"Latitude out of range", models.OrderLocationRequest{OrderID: order.ID, Latitude: f64(91), Longitude: f64(0)}},
		{"Longitude out of range", models.OrderLocationRequest{OrderID: order.ID, Latitude: f64(0), Longitude: f64(181)}},
		{"Unknown order", models.OrderLocationRequest{OrderID: 999, Latitude: f64(0), Longitude: f64(0)}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := svc.SetOrderLocation(&tt.req); err == nil {
				t.Error("SetOrderLocation() must fail")
			}
		})
	}
}

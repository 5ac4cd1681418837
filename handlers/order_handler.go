package handlers

import (
	"net/http"
	"strings"

	"moviesstore-backend/models"
	"moviesstore-backend/services"

	"github.com/gin-gonic/gin"
)

type OrderHandler struct {
	orderService *services.OrderService
}

// NewOrderHandler creates a new order handler
func NewOrderHandler(orderService *services.OrderService) *OrderHandler {
	return &OrderHandler{orderService: orderService}
}

// CreateOrder records a purchase.
// POST /api/v1/orders
// Body: {"user_id": 1, "items": [{"movie_id": 2, "quantity": 3}]}
func (h *OrderHandler) CreateOrder(c *gin.Context) {
	var req models.PurchaseRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBadRequest(c, err.Error())
		return
	}

	order, err := h.orderService.CreatePurchase(&req)
	if err != nil {
		if strings.Contains(err.Error(), "not found") {
			respondNotFound(c, err.Error())
			return
		}
		respondInternalError(c, err.Error())
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"status": "success",
		"order":  order,
	})
}

// UpdateOrderLocation attaches coordinates to an order after checkout.
// POST /api/v1/orders/location
// Body: {"order_id": 1, "latitude": 34.05, "longitude": -118.24, "city": "Los Angeles", ...}
func (h *OrderHandler) UpdateOrderLocation(c *gin.Context) {
	var req models.OrderLocationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBadRequest(c, err.Error())
		return
	}

	order, err := h.orderService.SetOrderLocation(&req)
	if err != nil {
		if strings.Contains(err.Error(), "not found") {
			respondNotFound(c, err.Error())
			return
		}
		respondBadRequest(c, err.Error())
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"status": "success",
		"order":  order,
	})
}

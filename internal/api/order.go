package api

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/beldyconnect/backend/internal/middleware"
	"github.com/beldyconnect/backend/internal/service"
	"github.com/beldyconnect/backend/internal/types"
)

type OrderHandler struct {
	orderService service.IOrderService
	validator    middleware.TokenValidator
	rateLimiter  *middleware.RateLimiter
}

// NewOrderHandler creates the handler for order placement and tracking.
// rateLimiter may be nil when Redis is unavailable.
func NewOrderHandler(orderService service.IOrderService, validator middleware.TokenValidator, rateLimiter *middleware.RateLimiter) *OrderHandler {
	return &OrderHandler{
		orderService: orderService,
		validator:    validator,
		rateLimiter:  rateLimiter,
	}
}

func (h *OrderHandler) RegisterRoutes(router *gin.RouterGroup) {
	router.GET("/delivery/locations", h.ListDeliveryLocations)

	orders := router.Group("/orders")
	orders.Use(middleware.AuthMiddleware(h.validator))
	{
		place := []gin.HandlerFunc{}
		if h.rateLimiter != nil {
			place = append(place, h.rateLimiter.RateLimitMiddleware())
		}
		place = append(place, h.PlaceOrder)
		orders.POST("", place...)

		orders.GET("", h.ListOrders)
		orders.GET("/:id", h.GetOrder)
		orders.POST("/:id/delivered", h.MarkDelivered)
	}
}

// ListDeliveryLocations lists campus delivery points and BikeSync
// pickup stations.
func (h *OrderHandler) ListDeliveryLocations(c *gin.Context) {
	campus := make([]gin.H, 0, len(service.CampusDeliveryPoints))
	for name, description := range service.CampusDeliveryPoints {
		campus = append(campus, gin.H{"name": name, "description": description})
	}

	c.JSON(http.StatusOK, gin.H{
		"campus":          campus,
		"bikesync_pickup": service.BikeSyncPickupPoints,
	})
}

func (h *OrderHandler) PlaceOrder(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}

	var req types.PlaceOrderRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	order, err := h.orderService.PlaceOrder(c.Request.Context(), userID, &req)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrEmptyBasket),
			errors.Is(err, service.ErrUnknownBasket),
			errors.Is(err, service.ErrMissingProfile),
			errors.Is(err, service.ErrInvalidDeliveryLocation):
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to place order"})
		}
		return
	}

	c.JSON(http.StatusCreated, toOrderResponse(order))
}

func (h *OrderHandler) ListOrders(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}

	orders, err := h.orderService.ListOrders(c.Request.Context(), userID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to fetch orders"})
		return
	}

	responses := make([]types.OrderResponse, 0, len(orders))
	for _, order := range orders {
		responses = append(responses, toOrderResponse(order))
	}

	c.JSON(http.StatusOK, gin.H{"orders": responses})
}

func (h *OrderHandler) GetOrder(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}

	orderID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid order id"})
		return
	}

	order, err := h.orderService.GetOrder(c.Request.Context(), userID, orderID)
	if err != nil {
		if errors.Is(err, service.ErrOrderNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "order not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to fetch order"})
		return
	}

	c.JSON(http.StatusOK, toOrderResponse(order))
}

func (h *OrderHandler) MarkDelivered(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}

	orderID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid order id"})
		return
	}

	order, err := h.orderService.MarkDelivered(c.Request.Context(), userID, orderID)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrOrderNotFound):
			c.JSON(http.StatusNotFound, gin.H{"error": "order not found"})
		case errors.Is(err, service.ErrAlreadyDelivered):
			c.JSON(http.StatusConflict, gin.H{"error": "order already delivered"})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to update order"})
		}
		return
	}

	c.JSON(http.StatusOK, toOrderResponse(order))
}

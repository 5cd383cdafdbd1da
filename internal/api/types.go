package api

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/beldyconnect/backend/internal/models"
	"github.com/beldyconnect/backend/internal/pricing"
	"github.com/beldyconnect/backend/internal/types"
)

// HealthCheck returns the health status of the API
func HealthCheck(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status":  "healthy",
		"message": "BeldyConnect API is running",
		"version": "v1.0.0",
	})
}

// currentUserID pulls the authenticated user out of the gin context.
// Returns false and writes a 401 when the request is not authenticated.
func currentUserID(c *gin.Context) (uuid.UUID, bool) {
	value, exists := c.Get("user_id")
	if !exists {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "user not authenticated"})
		return uuid.Nil, false
	}
	userID, ok := value.(uuid.UUID)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "user not authenticated"})
		return uuid.Nil, false
	}
	return userID, true
}

func toNutritionProfile(req *types.NutritionProfileRequest) pricing.NutritionProfile {
	return pricing.NutritionProfile{
		DietType:            pricing.DietType(req.DietType),
		WeeklyProteinsGrams: req.WeeklyProteinsGrams,
		WeeklyCarbsGrams:    req.WeeklyCarbsGrams,
		WeeklyFatsGrams:     req.WeeklyFatsGrams,
		WeeklyFiberGrams:    req.WeeklyFiberGrams,
	}
}

func toOrderResponse(order *models.Order) types.OrderResponse {
	return types.OrderResponse{
		ID:             order.ID,
		BasketName:     order.BasketName,
		Items:          order.Items,
		Subtotal:       order.Subtotal,
		DeliveryMethod: order.DeliveryMethod,
		DeliveryFee:    order.DeliveryFee,
		Total:          order.Total,
		Address:        order.Address,
		Status:         order.Status,
		CreatedAt:      order.CreatedAt,
	}
}

func toFeedbackResponse(fb *models.Feedback) types.FeedbackResponse {
	return types.FeedbackResponse{
		ID:        fb.ID,
		OrderID:   fb.OrderID,
		UserID:    fb.UserID,
		Rating:    fb.Rating,
		Comments:  fb.Comments,
		CreatedAt: fb.CreatedAt,
	}
}

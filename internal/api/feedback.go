package api

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/beldyconnect/backend/internal/middleware"
	"github.com/beldyconnect/backend/internal/models"
	"github.com/beldyconnect/backend/internal/service"
	"github.com/beldyconnect/backend/internal/types"
)

type FeedbackHandler struct {
	feedbackService service.IFeedbackService
	validator       middleware.TokenValidator
}

func NewFeedbackHandler(feedbackService service.IFeedbackService, validator middleware.TokenValidator) *FeedbackHandler {
	return &FeedbackHandler{
		feedbackService: feedbackService,
		validator:       validator,
	}
}

func (h *FeedbackHandler) RegisterRoutes(router *gin.RouterGroup) {
	feedback := router.Group("/feedback")
	feedback.Use(middleware.AuthMiddleware(h.validator))
	{
		feedback.POST("", h.CreateFeedback)
		feedback.GET("", h.ListFeedback)
		feedback.GET("/:id", h.GetFeedback)
	}
}

func (h *FeedbackHandler) CreateFeedback(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}

	var req types.CreateFeedbackRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	fb, err := h.feedbackService.CreateFeedback(c.Request.Context(), &req, userID)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrOrderNotFound):
			c.JSON(http.StatusNotFound, gin.H{"error": "order not found"})
		case errors.Is(err, service.ErrOrderNotDelivered):
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to save feedback"})
		}
		return
	}

	c.JSON(http.StatusCreated, toFeedbackResponse(fb))
}

func (h *FeedbackHandler) GetFeedback(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid feedback id"})
		return
	}

	fb, err := h.feedbackService.GetFeedback(c.Request.Context(), id)
	if err != nil {
		if errors.Is(err, service.ErrFeedbackNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "feedback not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to fetch feedback"})
		return
	}

	c.JSON(http.StatusOK, toFeedbackResponse(fb))
}

// ListFeedback returns the authenticated user's feedback, optionally
// filtered by order or rating.
func (h *FeedbackHandler) ListFeedback(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}

	filters := &models.FeedbackFilters{UserID: userID.String()}

	if raw := c.Query("order_id"); raw != "" {
		orderID, err := uuid.Parse(raw)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid order_id filter"})
			return
		}
		filters.OrderID = orderID.String()
	}

	if raw := c.Query("rating"); raw != "" {
		rating, err := strconv.Atoi(raw)
		if err != nil || rating < 1 || rating > 5 {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid rating filter"})
			return
		}
		filters.Rating = rating
	}

	if raw := c.Query("limit"); raw != "" {
		limit, err := strconv.Atoi(raw)
		if err != nil || limit < 1 {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid limit"})
			return
		}
		filters.Limit = limit
	}

	list, err := h.feedbackService.ListFeedback(c.Request.Context(), filters)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to fetch feedback"})
		return
	}

	responses := make([]types.FeedbackResponse, 0, len(list))
	for _, fb := range list {
		responses = append(responses, toFeedbackResponse(fb))
	}

	c.JSON(http.StatusOK, gin.H{"feedback": responses})
}

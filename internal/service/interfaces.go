package service

import (
	"context"

	"github.com/google/uuid"
	"github.com/beldyconnect/backend/internal/models"
	"github.com/beldyconnect/backend/internal/pricing"
	"github.com/beldyconnect/backend/internal/types"
)

// IAuthService defines the interface for authentication operations.
type IAuthService interface {
	Register(ctx context.Context, req *types.RegisterRequest) (string, error)
	Login(ctx context.Context, email, password string) (string, error)
	ValidateToken(token string) (*types.TokenClaims, error)
}

// IProfileService defines the interface for profile operations.
type IProfileService interface {
	GetProfile(ctx context.Context, userID uuid.UUID) (*models.UserProfile, error)
	UpdateProfile(ctx context.Context, userID uuid.UUID, req *types.UpdateProfileRequest) (*models.UserProfile, error)
}

// IBasketService defines the interface for catalog and pricing operations.
type IBasketService interface {
	Catalog() pricing.Catalog
	PresetBaskets() []pricing.PresetBasket
	Estimate(profile pricing.NutritionProfile, items []string, budget float64) pricing.Quote
}

// IOrderService defines the interface for order operations.
type IOrderService interface {
	PlaceOrder(ctx context.Context, userID uuid.UUID, req *types.PlaceOrderRequest) (*models.Order, error)
	GetOrder(ctx context.Context, userID, orderID uuid.UUID) (*models.Order, error)
	ListOrders(ctx context.Context, userID uuid.UUID) ([]*models.Order, error)
	MarkDelivered(ctx context.Context, userID, orderID uuid.UUID) (*models.Order, error)
}

// IFeedbackService defines the interface for feedback operations.
type IFeedbackService interface {
	CreateFeedback(ctx context.Context, req *types.CreateFeedbackRequest, userID uuid.UUID) (*models.Feedback, error)
	GetFeedback(ctx context.Context, id uuid.UUID) (*models.Feedback, error)
	ListFeedback(ctx context.Context, filters *models.FeedbackFilters) ([]*models.Feedback, error)
}

// IEmailService defines the interface for email operations.
type IEmailService interface {
	SendEmail(to, subject, body string) error
	SendOrderNotification(order *models.Order, user *models.User) error
	SendFeedbackNotification(feedback *models.Feedback, user *models.User) error
}

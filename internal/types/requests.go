package types

import (
	"time"

	"github.com/google/uuid"
)

// RegisterRequest represents the request body for account creation.
type RegisterRequest struct {
	FirstName string `json:"first_name" binding:"required,max=100"`
	LastName  string `json:"last_name" binding:"required,max=100"`
	Username  string `json:"username" binding:"required,max=50"`
	Email     string `json:"email" binding:"required,email"`
	Phone     string `json:"phone" binding:"required,max=20"`
	Password  string `json:"password" binding:"required,min=8"`
}

// LoginRequest represents the request body for login.
type LoginRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

// NutritionProfileRequest mirrors the estimate form's nutrition inputs.
type NutritionProfileRequest struct {
	DietType            string  `json:"diet_type" binding:"required,oneof=Balanced Vegetarian Vegan Keto"`
	WeeklyProteinsGrams float64 `json:"weekly_proteins_grams" binding:"gte=0"`
	WeeklyCarbsGrams    float64 `json:"weekly_carbs_grams" binding:"gte=0"`
	WeeklyFatsGrams     float64 `json:"weekly_fats_grams" binding:"gte=0"`
	WeeklyFiberGrams    float64 `json:"weekly_fiber_grams" binding:"gte=0"`
}

// EstimateRequest represents the request body for a basket price estimate.
type EstimateRequest struct {
	Profile NutritionProfileRequest `json:"profile" binding:"required"`
	Items   []string                `json:"items" binding:"required,min=1"`
	Budget  float64                 `json:"budget" binding:"required,gt=0"`
}

// EstimateResponse carries the price quote back to the client.
type EstimateResponse struct {
	Price    float64 `json:"price"`
	RawSum   float64 `json:"raw_sum"`
	MinPrice float64 `json:"min_price"`
	MaxPrice float64 `json:"max_price"`
	Source   string  `json:"source"`
}

// DeliveryOptionsRequest captures the delivery choices made at checkout.
type DeliveryOptionsRequest struct {
	Method            string `json:"method" binding:"required,oneof=traditional bikesync"`
	Location          string `json:"location" binding:"required"`
	Notes             string `json:"notes"`
	Express           bool   `json:"express"`
	ChillBag          bool   `json:"chill_bag"`
	EcoPackaging      bool   `json:"eco_packaging"`
	SignatureRequired bool   `json:"signature_required"`
}

// PlaceOrderRequest represents the request body for placing an order.
// Preset baskets are priced from the catalog (or their fixed price);
// custom baskets are priced by the estimator and require a profile and
// budget.
type PlaceOrderRequest struct {
	BasketName string                   `json:"basket_name" binding:"required,max=100"`
	Preset     bool                     `json:"preset"`
	Items      []string                 `json:"items"`
	Profile    *NutritionProfileRequest `json:"profile"`
	Budget     float64                  `json:"budget"`
	Delivery   DeliveryOptionsRequest   `json:"delivery" binding:"required"`
	Address    string                   `json:"address" binding:"required"`
}

// OrderResponse represents an order in API responses.
type OrderResponse struct {
	ID             uuid.UUID `json:"id"`
	BasketName     string    `json:"basket_name"`
	Items          []string  `json:"items"`
	Subtotal       float64   `json:"subtotal"`
	DeliveryMethod string    `json:"delivery_method"`
	DeliveryFee    float64   `json:"delivery_fee"`
	Total          float64   `json:"total"`
	Address        string    `json:"address"`
	Status         string    `json:"status"`
	CreatedAt      time.Time `json:"created_at"`
}

// CreateFeedbackRequest represents the post-delivery feedback form.
type CreateFeedbackRequest struct {
	OrderID  uuid.UUID `json:"order_id" binding:"required"`
	Rating   int       `json:"rating" binding:"required,min=1,max=5"`
	Comments string    `json:"comments" binding:"max=2000"`
}

// FeedbackResponse represents feedback in API responses.
type FeedbackResponse struct {
	ID        uuid.UUID `json:"id"`
	OrderID   uuid.UUID `json:"order_id"`
	UserID    uuid.UUID `json:"user_id"`
	Rating    int       `json:"rating"`
	Comments  string    `json:"comments,omitempty"`
	CreatedAt time.Time `json:"created_at"`
}

// UpdateProfileRequest represents the request body for updating the
// basket-building defaults stored on a profile.
type UpdateProfileRequest struct {
	DietType            string  `json:"diet_type" binding:"omitempty,oneof=Balanced Vegetarian Vegan Keto"`
	WeeklyProteinsGrams float64 `json:"weekly_proteins_grams" binding:"gte=0"`
	WeeklyCarbsGrams    float64 `json:"weekly_carbs_grams" binding:"gte=0"`
	WeeklyFatsGrams     float64 `json:"weekly_fats_grams" binding:"gte=0"`
	WeeklyFiberGrams    float64 `json:"weekly_fiber_grams" binding:"gte=0"`
	WeeklyBudget        float64 `json:"weekly_budget" binding:"gte=0"`
}

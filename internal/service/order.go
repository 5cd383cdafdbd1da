package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
	"gorm.io/gorm"

	"github.com/beldyconnect/backend/internal/models"
	"github.com/beldyconnect/backend/internal/pricing"
	"github.com/beldyconnect/backend/internal/types"
)

var (
	ErrOrderNotFound           = errors.New("order not found")
	ErrEmptyBasket             = errors.New("basket has no items")
	ErrUnknownBasket           = errors.New("unknown preset basket")
	ErrMissingProfile          = errors.New("custom baskets require a nutrition profile and budget")
	ErrInvalidDeliveryLocation = errors.New("invalid delivery location")
	ErrAlreadyDelivered        = errors.New("order already delivered")
)

type OrderService struct {
	db     *gorm.DB
	basket IBasketService
	email  IEmailService
	log    *logrus.Logger
}

func NewOrderService(db *gorm.DB, basket IBasketService, email IEmailService, log *logrus.Logger) *OrderService {
	return &OrderService{
		db:     db,
		basket: basket,
		email:  email,
		log:    log,
	}
}

func (s *OrderService) PlaceOrder(ctx context.Context, userID uuid.UUID, req *types.PlaceOrderRequest) (*models.Order, error) {
	items, subtotal, source, err := s.priceBasket(req)
	if err != nil {
		return nil, err
	}

	if !ValidDeliveryLocation(req.Delivery.Method, req.Delivery.Location) {
		return nil, ErrInvalidDeliveryLocation
	}
	fee, err := DeliveryFee(&req.Delivery)
	if err != nil {
		return nil, err
	}

	order := &models.Order{
		UserID:            userID,
		BasketName:        req.BasketName,
		Items:             items,
		Subtotal:          subtotal,
		PriceSource:       source,
		DeliveryMethod:    req.Delivery.Method,
		DeliveryFee:       fee,
		DeliveryLocation:  req.Delivery.Location,
		DeliveryNotes:     req.Delivery.Notes,
		Address:           req.Address,
		Express:           req.Delivery.Express,
		ChillBag:          req.Delivery.ChillBag,
		EcoPackaging:      req.Delivery.EcoPackaging,
		SignatureRequired: req.Delivery.SignatureRequired,
		Total:             subtotal + fee,
		Status:            models.OrderStatusConfirmed,
	}
	if err := s.db.WithContext(ctx).Create(order).Error; err != nil {
		return nil, fmt.Errorf("failed to create order: %w", err)
	}

	s.notify(ctx, order)

	return order, nil
}

// priceBasket resolves the order's items and subtotal. Preset baskets
// use the curated item list and catalog (or fixed) price; custom
// baskets go through the estimator.
func (s *OrderService) priceBasket(req *types.PlaceOrderRequest) (models.StringArray, float64, string, error) {
	if req.Preset {
		for _, basket := range s.basket.PresetBaskets() {
			if basket.Name == req.BasketName {
				return models.StringArray(basket.Items), basket.Price(s.basket.Catalog()), "preset", nil
			}
		}
		return nil, 0, "", ErrUnknownBasket
	}

	if len(req.Items) == 0 {
		return nil, 0, "", ErrEmptyBasket
	}
	if req.Profile == nil || req.Budget <= 0 {
		return nil, 0, "", ErrMissingProfile
	}

	profile := pricing.NutritionProfile{
		DietType:            pricing.DietType(req.Profile.DietType),
		WeeklyProteinsGrams: req.Profile.WeeklyProteinsGrams,
		WeeklyCarbsGrams:    req.Profile.WeeklyCarbsGrams,
		WeeklyFatsGrams:     req.Profile.WeeklyFatsGrams,
		WeeklyFiberGrams:    req.Profile.WeeklyFiberGrams,
	}
	quote := s.basket.Estimate(profile, req.Items, req.Budget)
	return models.StringArray(req.Items), quote.Price, string(quote.Source), nil
}

// notify sends the order confirmation asynchronously. Failures are
// logged, never surfaced to the caller.
func (s *OrderService) notify(ctx context.Context, order *models.Order) {
	var user models.User
	if err := s.db.WithContext(ctx).First(&user, "id = ?", order.UserID).Error; err != nil {
		s.log.WithError(err).Warn("could not load user for order notification")
		return
	}

	go func() {
		if err := s.email.SendOrderNotification(order, &user); err != nil {
			s.log.WithError(err).WithField("order_id", order.ID).Error("failed to send order notification")
		}
	}()
}

func (s *OrderService) GetOrder(ctx context.Context, userID, orderID uuid.UUID) (*models.Order, error) {
	var order models.Order
	err := s.db.WithContext(ctx).Where("id = ? AND user_id = ?", orderID, userID).First(&order).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrOrderNotFound
		}
		return nil, fmt.Errorf("failed to get order: %w", err)
	}
	return &order, nil
}

func (s *OrderService) ListOrders(ctx context.Context, userID uuid.UUID) ([]*models.Order, error) {
	var orders []*models.Order
	err := s.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("created_at DESC").
		Find(&orders).Error
	if err != nil {
		return nil, fmt.Errorf("failed to list orders: %w", err)
	}
	return orders, nil
}

// MarkDelivered records that the student received the basket, which
// unlocks the feedback form.
func (s *OrderService) MarkDelivered(ctx context.Context, userID, orderID uuid.UUID) (*models.Order, error) {
	order, err := s.GetOrder(ctx, userID, orderID)
	if err != nil {
		return nil, err
	}
	if order.Status == models.OrderStatusDelivered {
		return nil, ErrAlreadyDelivered
	}

	order.Status = models.OrderStatusDelivered
	if err := s.db.WithContext(ctx).Save(order).Error; err != nil {
		return nil, fmt.Errorf("failed to update order: %w", err)
	}
	return order, nil
}

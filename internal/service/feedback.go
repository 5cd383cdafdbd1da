package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
	"gorm.io/gorm"

	"github.com/beldyconnect/backend/internal/models"
	"github.com/beldyconnect/backend/internal/types"
)

var (
	ErrFeedbackNotFound  = errors.New("feedback not found")
	ErrOrderNotDelivered = errors.New("feedback requires a delivered order")
)

type FeedbackService struct {
	db    *gorm.DB
	email IEmailService
	log   *logrus.Logger
}

func NewFeedbackService(db *gorm.DB, email IEmailService, log *logrus.Logger) *FeedbackService {
	return &FeedbackService{
		db:    db,
		email: email,
		log:   log,
	}
}

func (s *FeedbackService) CreateFeedback(ctx context.Context, req *types.CreateFeedbackRequest, userID uuid.UUID) (*models.Feedback, error) {
	var order models.Order
	err := s.db.WithContext(ctx).Where("id = ? AND user_id = ?", req.OrderID, userID).First(&order).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrOrderNotFound
		}
		return nil, fmt.Errorf("failed to load order: %w", err)
	}
	if order.Status != models.OrderStatusDelivered {
		return nil, ErrOrderNotDelivered
	}

	feedback := &models.Feedback{
		UserID:   userID,
		OrderID:  req.OrderID,
		Rating:   req.Rating,
		Comments: req.Comments,
	}
	if err := s.db.WithContext(ctx).Create(feedback).Error; err != nil {
		return nil, fmt.Errorf("failed to create feedback: %w", err)
	}

	var user models.User
	if err := s.db.WithContext(ctx).First(&user, "id = ?", userID).Error; err != nil {
		s.log.WithError(err).Warn("could not load user for feedback notification")
		return feedback, nil
	}

	go func() {
		if err := s.email.SendFeedbackNotification(feedback, &user); err != nil {
			s.log.WithError(err).WithField("feedback_id", feedback.ID).Error("failed to send feedback notification")
		}
	}()

	return feedback, nil
}

func (s *FeedbackService) GetFeedback(ctx context.Context, id uuid.UUID) (*models.Feedback, error) {
	var feedback models.Feedback
	if err := s.db.WithContext(ctx).First(&feedback, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrFeedbackNotFound
		}
		return nil, fmt.Errorf("failed to get feedback: %w", err)
	}
	return &feedback, nil
}

func (s *FeedbackService) ListFeedback(ctx context.Context, filters *models.FeedbackFilters) ([]*models.Feedback, error) {
	query := s.db.WithContext(ctx)

	if filters != nil {
		if filters.UserID != "" {
			if userUUID, err := uuid.Parse(filters.UserID); err == nil {
				query = query.Where("user_id = ?", userUUID)
			}
		}
		if filters.OrderID != "" {
			if orderUUID, err := uuid.Parse(filters.OrderID); err == nil {
				query = query.Where("order_id = ?", orderUUID)
			}
		}
		if filters.Rating > 0 {
			query = query.Where("rating = ?", filters.Rating)
		}
		if filters.Limit > 0 {
			query = query.Limit(filters.Limit)
		} else {
			query = query.Limit(50)
		}
		if filters.Offset > 0 {
			query = query.Offset(filters.Offset)
		}
	}

	query = query.Order("created_at DESC")

	var feedback []*models.Feedback
	if err := query.Find(&feedback).Error; err != nil {
		return nil, fmt.Errorf("failed to list feedback: %w", err)
	}
	return feedback, nil
}

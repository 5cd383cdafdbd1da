package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/beldyconnect/backend/internal/models"
	"github.com/beldyconnect/backend/internal/types"
)

var ErrProfileNotFound = errors.New("profile not found")

type ProfileService struct {
	db *gorm.DB
}

func NewProfileService(db *gorm.DB) *ProfileService {
	return &ProfileService{db: db}
}

func (s *ProfileService) GetProfile(ctx context.Context, userID uuid.UUID) (*models.UserProfile, error) {
	var profile models.UserProfile
	if err := s.db.WithContext(ctx).Where("user_id = ?", userID).First(&profile).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrProfileNotFound
		}
		return nil, fmt.Errorf("failed to get profile: %w", err)
	}
	return &profile, nil
}

func (s *ProfileService) UpdateProfile(ctx context.Context, userID uuid.UUID, req *types.UpdateProfileRequest) (*models.UserProfile, error) {
	profile, err := s.GetProfile(ctx, userID)
	if err != nil {
		return nil, err
	}

	if req.DietType != "" {
		profile.DietType = req.DietType
	}
	if req.WeeklyProteinsGrams > 0 {
		profile.WeeklyProteinsGrams = req.WeeklyProteinsGrams
	}
	if req.WeeklyCarbsGrams > 0 {
		profile.WeeklyCarbsGrams = req.WeeklyCarbsGrams
	}
	if req.WeeklyFatsGrams > 0 {
		profile.WeeklyFatsGrams = req.WeeklyFatsGrams
	}
	if req.WeeklyFiberGrams > 0 {
		profile.WeeklyFiberGrams = req.WeeklyFiberGrams
	}
	if req.WeeklyBudget > 0 {
		profile.WeeklyBudget = req.WeeklyBudget
	}

	if err := s.db.WithContext(ctx).Save(profile).Error; err != nil {
		return nil, fmt.Errorf("failed to update profile: %w", err)
	}
	return profile, nil
}

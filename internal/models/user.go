package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type User struct {
	ID           uuid.UUID      `gorm:"type:varchar(36);primarykey" json:"id"`
	CreatedAt    time.Time      `json:"created_at"`
	UpdatedAt    time.Time      `json:"updated_at"`
	DeletedAt    gorm.DeletedAt `gorm:"index" json:"-"`
	FirstName    string         `gorm:"size:100;not null" json:"first_name"`
	LastName     string         `gorm:"size:100;not null" json:"last_name"`
	Email        string         `gorm:"uniqueIndex;not null" json:"email"`
	Phone        string         `gorm:"size:20" json:"phone"`
	PasswordHash string         `gorm:"not null" json:"-"`
}

func (u *User) BeforeCreate(tx *gorm.DB) error {
	if u.ID == uuid.Nil {
		u.ID = uuid.New()
	}
	return nil
}

// UserProfile stores a student's basket-building defaults. The weekly
// nutrition fields seed the estimate form on the client.
type UserProfile struct {
	ID                  uuid.UUID      `gorm:"type:varchar(36);primarykey" json:"id"`
	UserID              uuid.UUID      `gorm:"type:varchar(36);not null;uniqueIndex" json:"user_id"`
	Username            string         `gorm:"size:50;not null;uniqueIndex" json:"username"`
	DietType            string         `gorm:"size:20;default:'Balanced'" json:"diet_type"`
	WeeklyProteinsGrams float64        `gorm:"default:120" json:"weekly_proteins_grams"`
	WeeklyCarbsGrams    float64        `gorm:"default:300" json:"weekly_carbs_grams"`
	WeeklyFatsGrams     float64        `gorm:"default:70" json:"weekly_fats_grams"`
	WeeklyFiberGrams    float64        `gorm:"default:25" json:"weekly_fiber_grams"`
	WeeklyBudget        float64        `gorm:"default:200" json:"weekly_budget"`
	CreatedAt           time.Time      `json:"created_at"`
	UpdatedAt           time.Time      `json:"updated_at"`
	DeletedAt           gorm.DeletedAt `gorm:"index" json:"-"`
}

func (p *UserProfile) BeforeCreate(tx *gorm.DB) error {
	if p.ID == uuid.Nil {
		p.ID = uuid.New()
	}
	return nil
}

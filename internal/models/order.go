package models

import (
	"database/sql/driver"
	"encoding/json"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Order status progression, in delivery order.
const (
	OrderStatusConfirmed    = "confirmed"
	OrderStatusPacking      = "packing"
	OrderStatusQualityCheck = "quality_check"
	OrderStatusDispatched   = "dispatched"
	OrderStatusInTransit    = "in_transit"
	OrderStatusDelivered    = "delivered"
)

// Delivery methods.
const (
	DeliveryTraditional = "traditional"
	DeliveryBikeSync    = "bikesync"
)

// StringArray stores a string slice as a JSON text column, portable
// across postgres and the sqlite test driver.
type StringArray []string

// Value implements the driver.Valuer interface.
func (a StringArray) Value() (driver.Value, error) {
	if len(a) == 0 {
		return "[]", nil
	}
	return json.Marshal(a)
}

// Scan implements the sql.Scanner interface.
func (a *StringArray) Scan(value interface{}) error {
	if value == nil {
		*a = StringArray{}
		return nil
	}

	var bytes []byte
	switch v := value.(type) {
	case []byte:
		bytes = v
	case string:
		bytes = []byte(v)
	default:
		return nil
	}

	return json.Unmarshal(bytes, a)
}

type Order struct {
	ID        uuid.UUID      `gorm:"type:varchar(36);primarykey" json:"id"`
	CreatedAt time.Time      `json:"created_at"`
	UpdatedAt time.Time      `json:"updated_at"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"-"`
	UserID    uuid.UUID      `gorm:"type:varchar(36);not null;index" json:"user_id"`

	BasketName  string      `gorm:"size:100;not null" json:"basket_name"`
	Items       StringArray `gorm:"type:text;not null;default:'[]'" json:"items"`
	Subtotal    float64     `gorm:"not null" json:"subtotal"`
	PriceSource string      `gorm:"size:20" json:"price_source"` // model, fallback or preset

	DeliveryMethod    string  `gorm:"size:20;not null" json:"delivery_method"`
	DeliveryFee       float64 `gorm:"not null" json:"delivery_fee"`
	DeliveryLocation  string  `gorm:"size:100" json:"delivery_location"`
	DeliveryNotes     string  `gorm:"type:text" json:"delivery_notes"`
	Address           string  `gorm:"type:text;not null" json:"address"`
	Express           bool    `json:"express"`
	ChillBag          bool    `json:"chill_bag"`
	EcoPackaging      bool    `json:"eco_packaging"`
	SignatureRequired bool    `json:"signature_required"`

	Total  float64 `gorm:"not null" json:"total"`
	Status string  `gorm:"size:20;not null;default:'confirmed'" json:"status"`
}

func (o *Order) BeforeCreate(tx *gorm.DB) error {
	if o.ID == uuid.Nil {
		o.ID = uuid.New()
	}
	return nil
}

package database

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/beldyconnect/backend/internal/models"
	"github.com/beldyconnect/backend/internal/testhelpers"
)

func TestDatabaseRoundtrip(t *testing.T) {
	db := testhelpers.SetupTestDatabase(t)
	require.NotNil(t, db)

	user := models.User{
		ID:           uuid.New(),
		FirstName:    "Test",
		LastName:     "User",
		Email:        "test@example.com",
		PasswordHash: "hashedpassword",
	}
	require.NoError(t, db.Create(&user).Error)

	order := models.Order{
		UserID:         user.ID,
		BasketName:     "Balanced Basket",
		Items:          models.StringArray{"Rice (1kg)", "Yogurt"},
		Subtotal:       30,
		PriceSource:    "preset",
		DeliveryMethod: models.DeliveryTraditional,
		DeliveryFee:    0,
		Address:        "Dorm 12",
		Total:          30,
		Status:         models.OrderStatusConfirmed,
	}
	require.NoError(t, db.Create(&order).Error)

	var loaded models.Order
	require.NoError(t, db.First(&loaded, "id = ?", order.ID).Error)
	assert.Equal(t, order.Items, loaded.Items)
	assert.Equal(t, user.ID, loaded.UserID)
}

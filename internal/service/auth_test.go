package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/beldyconnect/backend/internal/models"
	"github.com/beldyconnect/backend/internal/testhelpers"
	"github.com/beldyconnect/backend/internal/types"
)

func registerRequest() *types.RegisterRequest {
	return &types.RegisterRequest{
		FirstName: "Sara",
		LastName:  "Amrani",
		Username:  "sara",
		Email:     "sara@um6p.ma",
		Phone:     "0600000000",
		Password:  "supersecret",
	}
}

func TestRegisterCreatesUserAndProfile(t *testing.T) {
	db := testhelpers.SetupSQLiteDB(t)
	svc := NewAuthService(db, "test-secret")

	token, err := svc.Register(context.Background(), registerRequest())
	require.NoError(t, err)
	require.NotEmpty(t, token)

	claims, err := svc.ValidateToken(token)
	require.NoError(t, err)
	assert.Equal(t, "sara", claims.Username)

	var profile models.UserProfile
	require.NoError(t, db.Where("user_id = ?", claims.UserID).First(&profile).Error)
	assert.Equal(t, "Balanced", profile.DietType)
	assert.Equal(t, 120.0, profile.WeeklyProteinsGrams)
	assert.Equal(t, 200.0, profile.WeeklyBudget)
}

func TestRegisterDuplicateEmail(t *testing.T) {
	db := testhelpers.SetupSQLiteDB(t)
	svc := NewAuthService(db, "test-secret")

	_, err := svc.Register(context.Background(), registerRequest())
	require.NoError(t, err)

	req := registerRequest()
	req.Username = "sara2"
	_, err = svc.Register(context.Background(), req)
	assert.ErrorIs(t, err, ErrUserExists)
}

func TestLogin(t *testing.T) {
	db := testhelpers.SetupSQLiteDB(t)
	svc := NewAuthService(db, "test-secret")

	_, err := svc.Register(context.Background(), registerRequest())
	require.NoError(t, err)

	token, err := svc.Login(context.Background(), "sara@um6p.ma", "supersecret")
	require.NoError(t, err)
	assert.NotEmpty(t, token)

	_, err = svc.Login(context.Background(), "sara@um6p.ma", "wrong")
	assert.ErrorIs(t, err, ErrInvalidCredentials)

	_, err = svc.Login(context.Background(), "nobody@um6p.ma", "supersecret")
	assert.ErrorIs(t, err, ErrInvalidCredentials)
}

func TestValidateToken(t *testing.T) {
	db := testhelpers.SetupSQLiteDB(t)
	svc := NewAuthService(db, "test-secret")

	token, err := svc.Register(context.Background(), registerRequest())
	require.NoError(t, err)

	_, err = svc.ValidateToken(token)
	assert.NoError(t, err)

	_, err = svc.ValidateToken("not-a-token")
	assert.Error(t, err)

	// A token signed with a different secret is rejected
	other := NewAuthService(db, "other-secret")
	otherToken, err := other.Register(context.Background(), &types.RegisterRequest{
		FirstName: "Ali", LastName: "B", Username: "ali",
		Email: "ali@um6p.ma", Phone: "0611111111", Password: "supersecret",
	})
	require.NoError(t, err)
	_, err = svc.ValidateToken(otherToken)
	assert.Error(t, err)
}

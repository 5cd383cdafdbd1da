package api

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"github.com/beldyconnect/backend/internal/pricing"
	"github.com/beldyconnect/backend/internal/service"
	"github.com/beldyconnect/backend/internal/testhelpers"
	"github.com/beldyconnect/backend/internal/types"
)

type testEnv struct {
	router *gin.Engine
	db     *gorm.DB
	auth   *service.AuthService
	email  *testhelpers.MockEmailService
}

func setupTestEnv(t *testing.T) *testEnv {
	t.Helper()
	gin.SetMode(gin.TestMode)

	db := testhelpers.SetupSQLiteDB(t)
	authService := service.NewAuthService(db, "test-secret")

	model, err := pricing.TrainModel()
	require.NoError(t, err)
	basketService := service.NewBasketService(pricing.DefaultCatalog(), model)

	email := &testhelpers.MockEmailService{}
	email.On("SendOrderNotification", mock.Anything, mock.Anything).Return(nil).Maybe()
	email.On("SendFeedbackNotification", mock.Anything, mock.Anything).Return(nil).Maybe()

	log := logrus.New()
	log.SetOutput(bytes.NewBuffer(nil))

	orderService := service.NewOrderService(db, basketService, email, log)
	feedbackService := service.NewFeedbackService(db, email, log)
	profileService := service.NewProfileService(db)

	router := gin.New()
	v1 := router.Group("/api/v1")
	NewAuthHandler(authService).RegisterRoutes(v1)
	NewProfileHandler(profileService, authService).RegisterRoutes(v1)
	NewBasketHandler(basketService, nil, authService, nil).RegisterRoutes(v1)
	NewOrderHandler(orderService, authService, nil).RegisterRoutes(v1)
	NewFeedbackHandler(feedbackService, authService).RegisterRoutes(v1)
	router.GET("/health", HealthCheck)

	return &testEnv{router: router, db: db, auth: authService, email: email}
}

// registerTestUser creates an account through the API and returns its token.
func registerTestUser(t *testing.T, env *testEnv) string {
	t.Helper()

	suffix := uuid.New().String()[:8]
	w := performRequest(env.router, http.MethodPost, "/api/v1/auth/register", types.RegisterRequest{
		FirstName: "Sara",
		LastName:  "Amrani",
		Username:  "sara_" + suffix,
		Email:     "sara+" + suffix + "@um6p.ma",
		Phone:     "0600000000",
		Password:  "supersecret",
	}, "")
	require.Equal(t, http.StatusCreated, w.Code)

	var resp map[string]string
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	require.NotEmpty(t, resp["token"])
	return resp["token"]
}

func tokenUserID(t *testing.T, env *testEnv, token string) uuid.UUID {
	t.Helper()
	claims, err := env.auth.ValidateToken(token)
	require.NoError(t, err)
	return claims.UserID
}

func performRequest(router *gin.Engine, method, path string, body interface{}, token string) *httptest.ResponseRecorder {
	var req *http.Request
	if body != nil {
		payload, err := json.Marshal(body)
		if err != nil {
			panic(err)
		}
		req = httptest.NewRequest(method, path, bytes.NewBuffer(payload))
		req.Header.Set("Content-Type", "application/json")
	} else {
		req = httptest.NewRequest(method, path, nil)
	}
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

// placeTestOrder places a preset basket order and returns its ID.
func placeTestOrder(t *testing.T, env *testEnv, token string) uuid.UUID {
	t.Helper()

	w := performRequest(env.router, http.MethodPost, "/api/v1/orders", types.PlaceOrderRequest{
		BasketName: "Balanced Basket",
		Preset:     true,
		Delivery: types.DeliveryOptionsRequest{
			Method:   "traditional",
			Location: "Library",
		},
		Address: "Room 204, Building C",
	}, token)
	require.Equal(t, http.StatusCreated, w.Code)

	var resp types.OrderResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	return resp.ID
}

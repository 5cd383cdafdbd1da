package router

import (
	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"github.com/beldyconnect/backend/internal/api"
	"github.com/beldyconnect/backend/internal/middleware"
)

// Handlers groups the API handlers wired into the router
type Handlers struct {
	Auth     *api.AuthHandler
	Profile  *api.ProfileHandler
	Basket   *api.BasketHandler
	Order    *api.OrderHandler
	Feedback *api.FeedbackHandler
}

// Setup configures the application routes
func Setup(h Handlers, log *logrus.Logger) *gin.Engine {
	router := gin.New()

	router.Use(middleware.ErrorHandler(log))
	router.Use(middleware.CORS())

	router.GET("/health", api.HealthCheck)
	router.GET("/api/health", api.HealthCheck)

	v1 := router.Group("/api/v1")
	h.Auth.RegisterRoutes(v1)
	h.Profile.RegisterRoutes(v1)
	h.Basket.RegisterRoutes(v1)
	h.Order.RegisterRoutes(v1)
	h.Feedback.RegisterRoutes(v1)

	return router
}

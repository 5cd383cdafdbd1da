package main

import (
	"context"

	"github.com/beldyconnect/backend/config"
	"github.com/beldyconnect/backend/internal/api"
	"github.com/beldyconnect/backend/internal/database"
	"github.com/beldyconnect/backend/internal/logger"
	"github.com/beldyconnect/backend/internal/middleware"
	"github.com/beldyconnect/backend/internal/pricing"
	"github.com/beldyconnect/backend/internal/router"
	"github.com/beldyconnect/backend/internal/server"
	"github.com/beldyconnect/backend/internal/service"
)

func main() {
	log := logger.New()

	cfg, err := config.LoadConfig()
	if err != nil {
		log.WithError(err).Fatal("failed to load configuration")
	}

	db, err := database.New(cfg, log)
	if err != nil {
		log.WithError(err).Fatal("failed to connect to database")
	}

	if err := database.RunMigrations(db, "migrations", log); err != nil {
		log.WithError(err).Fatal("failed to run migrations")
	}

	// The price model is loaded from disk, or trained on first start
	store := pricing.NewFileStore(cfg.ModelArtifactPath)
	model, err := pricing.LoadOrTrain(store)
	if err != nil {
		log.WithError(err).Fatal("failed to load price model")
	}
	log.WithField("artifact", cfg.ModelArtifactPath).Info("price model ready")

	// Rate limiting degrades gracefully when Redis is unreachable
	var estimateLimiter, orderLimiter *middleware.RateLimiter
	redisClient, err := database.NewRedisClient(cfg, log)
	if err != nil {
		log.WithError(err).Warn("redis unavailable, rate limiting disabled")
	} else {
		estimateLimiter = middleware.NewEstimateRateLimiter(redisClient)
		orderLimiter = middleware.NewOrderRateLimiter(redisClient)
	}

	// Basket imagery lives in S3; the API serves URLs without it when
	// AWS credentials are missing
	var imageService *service.BasketImageService
	if s3Cfg, err := config.NewS3Config(context.Background()); err != nil {
		log.WithError(err).Warn("S3 unavailable, basket images disabled")
	} else {
		imageService = service.NewBasketImageService(context.Background(), s3Cfg, log)
	}

	authService := service.NewAuthService(db, cfg.JWTSecret)
	profileService := service.NewProfileService(db)
	basketService := service.NewBasketService(pricing.DefaultCatalog(), model)
	emailService := service.NewEmailService(cfg, log)
	orderService := service.NewOrderService(db, basketService, emailService, log)
	feedbackService := service.NewFeedbackService(db, emailService, log)

	engine := router.Setup(router.Handlers{
		Auth:     api.NewAuthHandler(authService),
		Profile:  api.NewProfileHandler(profileService, authService),
		Basket:   api.NewBasketHandler(basketService, imageService, authService, estimateLimiter),
		Order:    api.NewOrderHandler(orderService, authService, orderLimiter),
		Feedback: api.NewFeedbackHandler(feedbackService, authService),
	}, log)

	srv := server.New(cfg, engine, log)
	if err := srv.Run(); err != nil {
		log.WithError(err).Fatal("server error")
	}

	log.Info("server stopped")
}

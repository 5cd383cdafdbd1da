package api

import (
	"io"
	"net/http"
	"sort"

	"github.com/gin-gonic/gin"

	"github.com/beldyconnect/backend/internal/middleware"
	"github.com/beldyconnect/backend/internal/service"
	"github.com/beldyconnect/backend/internal/types"
)

type BasketHandler struct {
	basketService service.IBasketService
	images        *service.BasketImageService
	validator     middleware.TokenValidator
	rateLimiter   *middleware.RateLimiter
}

// NewBasketHandler creates the handler for the catalog and estimate
// endpoints. images and rateLimiter may be nil when S3 or Redis are
// unavailable.
func NewBasketHandler(basketService service.IBasketService, images *service.BasketImageService, validator middleware.TokenValidator, rateLimiter *middleware.RateLimiter) *BasketHandler {
	return &BasketHandler{
		basketService: basketService,
		images:        images,
		validator:     validator,
		rateLimiter:   rateLimiter,
	}
}

func (h *BasketHandler) RegisterRoutes(router *gin.RouterGroup) {
	router.GET("/catalog", h.GetCatalog)

	baskets := router.Group("/baskets")
	{
		baskets.GET("", h.ListPresetBaskets)

		estimate := []gin.HandlerFunc{middleware.AuthMiddleware(h.validator)}
		if h.rateLimiter != nil {
			estimate = append(estimate, h.rateLimiter.RateLimitMiddleware())
		}
		estimate = append(estimate, h.Estimate)
		baskets.POST("/estimate", estimate...)

		baskets.PUT("/:name/image", middleware.AuthMiddleware(h.validator), h.UploadBasketImage)
	}
}

type catalogItem struct {
	Name  string  `json:"name"`
	Price float64 `json:"price"`
}

// GetCatalog lists every item available for custom baskets with its
// unit price in MAD.
func (h *BasketHandler) GetCatalog(c *gin.Context) {
	catalog := h.basketService.Catalog()

	items := make([]catalogItem, 0, len(catalog))
	for name, price := range catalog {
		items = append(items, catalogItem{Name: name, Price: price})
	}
	sort.Slice(items, func(i, j int) bool { return items[i].Name < items[j].Name })

	c.JSON(http.StatusOK, gin.H{"items": items})
}

type presetBasketResponse struct {
	Name     string   `json:"name"`
	Items    []string `json:"items"`
	Price    float64  `json:"price"`
	ImageURL string   `json:"image_url,omitempty"`
}

// ListPresetBaskets lists the curated baskets with their prices.
func (h *BasketHandler) ListPresetBaskets(c *gin.Context) {
	catalog := h.basketService.Catalog()

	presets := h.basketService.PresetBaskets()
	baskets := make([]presetBasketResponse, 0, len(presets))
	for _, p := range presets {
		resp := presetBasketResponse{
			Name:  p.Name,
			Items: p.Items,
			Price: p.Price(catalog),
		}
		if h.images != nil {
			resp.ImageURL = h.images.BasketImageURL(c.Request.Context(), p.Name)
		}
		baskets = append(baskets, resp)
	}

	c.JSON(http.StatusOK, gin.H{"baskets": baskets})
}

// UploadBasketImage replaces the promotional image for a preset basket.
func (h *BasketHandler) UploadBasketImage(c *gin.Context) {
	if h.images == nil {
		c.JSON(http.StatusServiceUnavailable, gin.H{"error": "image storage not configured"})
		return
	}

	name := c.Param("name")
	known := false
	for _, p := range h.basketService.PresetBaskets() {
		if p.Name == name {
			known = true
			break
		}
	}
	if !known {
		c.JSON(http.StatusNotFound, gin.H{"error": "unknown preset basket"})
		return
	}

	file, err := c.FormFile("image")
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "image file is required"})
		return
	}

	src, err := file.Open()
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "could not read image"})
		return
	}
	defer src.Close()

	data := make([]byte, file.Size)
	if _, err := io.ReadFull(src, data); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "could not read image"})
		return
	}

	url, err := h.images.UploadBasketImage(c.Request.Context(), name, data)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to store image"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"image_url": url})
}

// Estimate prices a custom basket for the authenticated user.
func (h *BasketHandler) Estimate(c *gin.Context) {
	var req types.EstimateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	quote := h.basketService.Estimate(toNutritionProfile(&req.Profile), req.Items, req.Budget)

	c.JSON(http.StatusOK, types.EstimateResponse{
		Price:    quote.Price,
		RawSum:   quote.RawSum,
		MinPrice: quote.MinPrice,
		MaxPrice: quote.MaxPrice,
		Source:   string(quote.Source),
	})
}

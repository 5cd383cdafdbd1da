package service

import "github.com/beldyconnect/backend/internal/pricing"

// BasketService exposes the catalog and the price estimator to the API
// layer. Both are fixed at construction; the service holds no mutable
// state.
type BasketService struct {
	catalog   pricing.Catalog
	estimator *pricing.Estimator
}

func NewBasketService(catalog pricing.Catalog, model *pricing.PriceModel) *BasketService {
	return &BasketService{
		catalog:   catalog,
		estimator: pricing.NewEstimator(catalog, model),
	}
}

func (s *BasketService) Catalog() pricing.Catalog {
	return s.catalog
}

func (s *BasketService) PresetBaskets() []pricing.PresetBasket {
	return pricing.PresetBaskets()
}

func (s *BasketService) Estimate(profile pricing.NutritionProfile, items []string, budget float64) pricing.Quote {
	return s.estimator.Quote(profile, items, budget)
}

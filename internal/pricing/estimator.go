package pricing

import "math"

// Source identifies which path produced a quote, so the fallback policy
// is explicit rather than hidden behind swallowed errors.
type Source string

const (
	SourceModel    Source = "model"
	SourceFallback Source = "fallback"
)

// Quote carries an estimate together with the raw prediction and the
// clamp bounds it was held to.
type Quote struct {
	Price    float64 `json:"price"`
	Raw      float64 `json:"raw"`
	RawSum   float64 `json:"raw_sum"`
	MinPrice float64 `json:"min_price"`
	MaxPrice float64 `json:"max_price"`
	Source   Source  `json:"source"`
}

const (
	minPriceRatio = 0.8
	maxPriceRatio = 1.5
)

// Fallback multiplier thresholds, kept at their tuned production values.
const (
	fallbackProteinsThreshold = 150
	fallbackFatsThreshold     = 80
	fallbackCarbsThreshold    = 1000
)

// Estimator prices baskets against a catalog, using the fitted model
// when one is available and a deterministic fallback otherwise. Both
// the catalog and the model are fixed at construction, so a single
// Estimator serves concurrent requests without locking.
type Estimator struct {
	catalog Catalog
	model   *PriceModel
}

// NewEstimator builds an estimator. A nil model forces the fallback
// path for every quote.
func NewEstimator(catalog Catalog, model *PriceModel) *Estimator {
	return &Estimator{catalog: catalog, model: model}
}

// Quote estimates a basket price. It never fails: a missing model or a
// prediction error silently routes to the fallback formula, unknown
// items price at 0, and an empty basket collapses the clamp band to 0.
func (e *Estimator) Quote(profile NutritionProfile, items []string, budget float64) Quote {
	rawSum := e.catalog.RawSum(items)

	raw, source := e.predict(profile, items, budget)
	if source == SourceFallback {
		raw = rawSum * fallbackMultiplier(profile)
	}

	minPrice := rawSum * minPriceRatio
	maxPrice := rawSum * maxPriceRatio

	return Quote{
		Price:    clamp(raw, minPrice, maxPrice),
		Raw:      raw,
		RawSum:   rawSum,
		MinPrice: minPrice,
		MaxPrice: maxPrice,
		Source:   source,
	}
}

// Estimate returns only the final clamped price.
func (e *Estimator) Estimate(profile NutritionProfile, items []string, budget float64) float64 {
	return e.Quote(profile, items, budget).Price
}

func (e *Estimator) predict(profile NutritionProfile, items []string, budget float64) (float64, Source) {
	if e.model == nil {
		return 0, SourceFallback
	}
	raw, err := e.model.Predict(featureVector(profile, items, budget))
	if err != nil {
		return 0, SourceFallback
	}
	return raw, SourceModel
}

// fallbackMultiplier accumulates the non-model price multiplier. The
// threshold conditions stack additively.
func fallbackMultiplier(profile NutritionProfile) float64 {
	multiplier := 1.0
	if profile.WeeklyProteinsGrams > fallbackProteinsThreshold {
		multiplier += 0.1
	}
	if profile.WeeklyFatsGrams > fallbackFatsThreshold {
		multiplier += 0.05
	}
	if profile.WeeklyCarbsGrams < fallbackCarbsThreshold {
		multiplier += 0.05
	}
	return multiplier
}

func clamp(v, lo, hi float64) float64 {
	return math.Max(math.Min(v, hi), lo)
}

package pricing

import "strings"

// numFeatures is the model input width: 4 diet one-hot columns followed
// by fats, carbs, proteins, fiber, item count, has-protein and budget.
// The one-hot columns double as per-diet intercepts, so the design
// matrix needs no separate constant column.
const numFeatures = 11

// proteinMarkers are the substrings that flag a basket as containing a
// protein staple. The match is case-sensitive, as tuned in production.
var proteinMarkers = []string{"Chicken", "Eggs", "Milk"}

// hasProteinItem reports whether any selected item name contains one of
// the protein marker substrings.
func hasProteinItem(items []string) bool {
	for _, item := range items {
		for _, marker := range proteinMarkers {
			if strings.Contains(item, marker) {
				return true
			}
		}
	}
	return false
}

// featureVector builds the model input for a basket request.
func featureVector(profile NutritionProfile, items []string, budget float64) []float64 {
	hasProtein := 0.0
	if hasProteinItem(items) {
		hasProtein = 1.0
	}
	return featuresFromValues(
		profile.DietType,
		profile.WeeklyFatsGrams,
		profile.WeeklyCarbsGrams,
		profile.WeeklyProteinsGrams,
		profile.WeeklyFiberGrams,
		float64(len(items)),
		hasProtein,
		budget,
	)
}

// featuresFromValues assembles a feature vector from raw field values.
// Training-data synthesis draws these fields directly, without a
// concrete item list, so it shares this path with serving.
func featuresFromValues(diet DietType, fats, carbs, proteins, fiber, itemCount, hasProtein, budget float64) []float64 {
	features := make([]float64, numFeatures)
	for i, dt := range dietTypes {
		if diet == dt {
			features[i] = 1
			break
		}
	}
	features[4] = fats
	features[5] = carbs
	features[6] = proteins
	features[7] = fiber
	features[8] = itemCount
	features[9] = hasProtein
	features[10] = budget
	return features
}

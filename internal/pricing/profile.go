package pricing

// DietType is a student's declared diet.
type DietType string

const (
	DietBalanced   DietType = "Balanced"
	DietVegetarian DietType = "Vegetarian"
	DietVegan      DietType = "Vegan"
	DietKeto       DietType = "Keto"
)

// dietTypes fixes the one-hot encoding order (alphabetical, matching a
// sorted categorical encoding). Changing this order invalidates any
// persisted model artifact.
var dietTypes = [...]DietType{DietBalanced, DietKeto, DietVegan, DietVegetarian}

// ValidDietType reports whether d is one of the supported diets.
func ValidDietType(d DietType) bool {
	for _, dt := range dietTypes {
		if d == dt {
			return true
		}
	}
	return false
}

// NutritionProfile captures a student's weekly nutrition targets.
type NutritionProfile struct {
	DietType            DietType `json:"diet_type"`
	WeeklyProteinsGrams float64  `json:"weekly_proteins_grams"`
	WeeklyCarbsGrams    float64  `json:"weekly_carbs_grams"`
	WeeklyFatsGrams     float64  `json:"weekly_fats_grams"`
	WeeklyFiberGrams    float64  `json:"weekly_fiber_grams"`
}

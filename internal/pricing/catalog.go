package pricing

// Catalog maps item names to unit prices in MAD. It is loaded once at
// startup and treated as read-only by the estimator, so it is safe to
// share across concurrent callers.
type Catalog map[string]float64

// Price returns the unit price for an item. Items absent from the
// catalog are priced at 0 rather than treated as errors.
func (c Catalog) Price(item string) float64 {
	return c[item]
}

// RawSum sums the catalog prices of the given items.
func (c Catalog) RawSum(items []string) float64 {
	var sum float64
	for _, item := range items {
		sum += c[item]
	}
	return sum
}

// DefaultCatalog returns the standard student grocery catalog.
func DefaultCatalog() Catalog {
	return Catalog{
		"Vegetables (1kg)":       25,
		"Fruits (1kg)":           30,
		"Cheese (250g)":          25,
		"Yogurt":                 10,
		"Milk (1L)":              15,
		"Chicken (1kg)":          50,
		"Eggs (dozen)":           20,
		"Bread (loaf)":           8,
		"Rice (1kg)":             20,
		"Energy Balls":           15,
		"Protein Bars":           12,
		"Dried Fruits":           18,
		"Granola Bars":           10,
		"Nuts (200g)":            25,
		"Dark Chocolate":         20,
		"Homemade Bread":         25,
		"Homemade Jam":           20,
		"Fresh Butter":           15,
		"Local Honey":            30,
		"Farm Eggs (dozen)":      25,
		"Fresh Cheese":           20,
		"Homemade Hricha":        15,
		"Local Tea Herbs":        10,
		"Homemade Ground Coffee": 25,
		"Fresh Cow/Goat Milk":    20,
	}
}

// PresetBasket is a curated basket offered alongside custom baskets.
type PresetBasket struct {
	Name       string   `json:"name"`
	Items      []string `json:"items"`
	FixedPrice float64  `json:"fixed_price,omitempty"` // 0 means priced from the catalog
}

// Price returns the basket price: the fixed price when one is set,
// otherwise the catalog sum of its items.
func (b PresetBasket) Price(c Catalog) float64 {
	if b.FixedPrice > 0 {
		return b.FixedPrice
	}
	return c.RawSum(b.Items)
}

// PresetBaskets returns the curated baskets shown to students.
func PresetBaskets() []PresetBasket {
	return []PresetBasket{
		{
			Name: "The Chef's Basket",
			Items: []string{
				"Vegetables (1kg)", "Fruits (1kg)", "Cheese (250g)", "Yogurt",
				"Milk (1L)", "Chicken (1kg)", "Eggs (dozen)", "Bread (loaf)", "Rice (1kg)",
			},
		},
		{
			Name: "Snacker's Basket",
			Items: []string{
				"Energy Balls", "Protein Bars", "Dried Fruits",
				"Granola Bars", "Nuts (200g)", "Dark Chocolate",
			},
		},
		{
			Name: "Balanced Basket",
			Items: []string{
				"Fruits (1kg)", "Vegetables (1kg)", "Eggs (dozen)",
				"Yogurt", "Granola Bars", "Rice (1kg)",
			},
		},
		{
			Name: "Breakfast Basket",
			Items: []string{
				"Homemade Bread", "Homemade Jam", "Fresh Butter", "Local Honey",
				"Farm Eggs (dozen)", "Fresh Cheese", "Homemade Hricha",
				"Local Tea Herbs", "Homemade Ground Coffee", "Fresh Cow/Goat Milk",
			},
			FixedPrice: 100,
		},
	}
}

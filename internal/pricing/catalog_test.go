package pricing

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCatalogRawSum(t *testing.T) {
	catalog := testCatalog()
	assert.Equal(t, 43.0, catalog.RawSum([]string{"Milk (1L)", "Bread (loaf)", "Eggs (dozen)"}))
	assert.Equal(t, 0.0, catalog.RawSum(nil))
	assert.Equal(t, 15.0, catalog.RawSum([]string{"Milk (1L)", "Unknown Item"}))
}

func TestPresetBasketPrices(t *testing.T) {
	catalog := DefaultCatalog()

	for _, basket := range PresetBaskets() {
		switch basket.Name {
		case "Breakfast Basket":
			assert.Equal(t, 100.0, basket.Price(catalog))
		case "The Chef's Basket":
			assert.Equal(t, 203.0, basket.Price(catalog))
		default:
			assert.Equal(t, catalog.RawSum(basket.Items), basket.Price(catalog))
		}
	}
}

func TestPresetBasketItemsInCatalog(t *testing.T) {
	catalog := DefaultCatalog()
	for _, basket := range PresetBaskets() {
		for _, item := range basket.Items {
			assert.Contains(t, catalog, item)
		}
	}
}

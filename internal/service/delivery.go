package service

import (
	"fmt"

	"github.com/beldyconnect/backend/internal/models"
	"github.com/beldyconnect/backend/internal/types"
)

// Delivery fee schedule in MAD.
const (
	expressFee  = 20
	chillBagFee = 5
	bikeSyncFee = 10
)

// CampusDeliveryPoints are the traditional-delivery drop-off locations.
var CampusDeliveryPoints = map[string]string{
	"Main Gate":      "Primary entrance (Security booth)",
	"Cafeteria":      "Central food court",
	"Sports Complex": "Near gym entrance",
	"Library":        "Front desk",
	"Student Center": "Information desk",
}

// BikeSyncPickupPoints are the self-pickup locations.
var BikeSyncPickupPoints = []string{
	"Market Hub",
	"Campus Center",
	"Administrative Building",
}

// DeliveryFee computes the fee for the chosen delivery options.
// Traditional delivery is free at standard speed; express and the
// chill bag add flat surcharges. BikeSync pickup is a flat fee.
func DeliveryFee(opts *types.DeliveryOptionsRequest) (float64, error) {
	switch opts.Method {
	case models.DeliveryTraditional:
		var fee float64
		if opts.Express {
			fee += expressFee
		}
		if opts.ChillBag {
			fee += chillBagFee
		}
		return fee, nil
	case models.DeliveryBikeSync:
		return bikeSyncFee, nil
	default:
		return 0, fmt.Errorf("unknown delivery method %q", opts.Method)
	}
}

// ValidDeliveryLocation reports whether the location is served by the
// chosen method.
func ValidDeliveryLocation(method, location string) bool {
	switch method {
	case models.DeliveryTraditional:
		_, ok := CampusDeliveryPoints[location]
		return ok
	case models.DeliveryBikeSync:
		for _, p := range BikeSyncPickupPoints {
			if p == location {
				return true
			}
		}
	}
	return false
}

package service

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/beldyconnect/backend/internal/types"
)

func TestDeliveryFee(t *testing.T) {
	tests := []struct {
		name string
		opts types.DeliveryOptionsRequest
		want float64
	}{
		{
			name: "traditional standard is free",
			opts: types.DeliveryOptionsRequest{Method: "traditional"},
			want: 0,
		},
		{
			name: "express surcharge",
			opts: types.DeliveryOptionsRequest{Method: "traditional", Express: true},
			want: 20,
		},
		{
			name: "chill bag surcharge",
			opts: types.DeliveryOptionsRequest{Method: "traditional", ChillBag: true},
			want: 5,
		},
		{
			name: "express with chill bag",
			opts: types.DeliveryOptionsRequest{Method: "traditional", Express: true, ChillBag: true},
			want: 25,
		},
		{
			name: "bikesync flat fee",
			opts: types.DeliveryOptionsRequest{Method: "bikesync"},
			want: 10,
		},
		{
			name: "bikesync ignores extras",
			opts: types.DeliveryOptionsRequest{Method: "bikesync", Express: true, ChillBag: true},
			want: 10,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			fee, err := DeliveryFee(&tt.opts)
			require.NoError(t, err)
			assert.Equal(t, tt.want, fee)
		})
	}
}

func TestDeliveryFeeUnknownMethod(t *testing.T) {
	_, err := DeliveryFee(&types.DeliveryOptionsRequest{Method: "teleport"})
	assert.Error(t, err)
}

func TestValidDeliveryLocation(t *testing.T) {
	assert.True(t, ValidDeliveryLocation("traditional", "Library"))
	assert.True(t, ValidDeliveryLocation("traditional", "Main Gate"))
	assert.False(t, ValidDeliveryLocation("traditional", "Market Hub"))
	assert.False(t, ValidDeliveryLocation("traditional", "Parking Lot"))

	assert.True(t, ValidDeliveryLocation("bikesync", "Market Hub"))
	assert.True(t, ValidDeliveryLocation("bikesync", "Campus Center"))
	assert.False(t, ValidDeliveryLocation("bikesync", "Library"))

	assert.False(t, ValidDeliveryLocation("teleport", "Library"))
}

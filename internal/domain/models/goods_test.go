package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestComputeFinalPrice(t *testing.T) {
	tests := []struct {
		name           string
		quantity       float64
		pricePerUnit   float64
		withCommission bool
		want           float64
	}{
		{name: "no commission keeps total", quantity: 10, pricePerUnit: 5, withCommission: false, want: 50},
		{name: "commission deducts ten percent", quantity: 10, pricePerUnit: 5, withCommission: true, want: 45},
		{name: "fractional quantity", quantity: 2.5, pricePerUnit: 4, withCommission: true, want: 9},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ComputeFinalPrice(tt.quantity, tt.pricePerUnit, tt.withCommission)
			assert.InDelta(t, tt.want, got, 1e-9)
		})
	}
}

func TestFinalPriceNeverExceedsGross(t *testing.T) {
	for _, withCommission := range []bool{true, false} {
		rec := GoodsRecord{Quantity: 7, PricePerUnit: 13.5, WithCommission: withCommission}
		rec.FinalPrice = ComputeFinalPrice(rec.Quantity, rec.PricePerUnit, rec.WithCommission)
		assert.LessOrEqual(t, rec.FinalPrice, rec.GrossAmount())
	}
}

func TestCommissionAmount(t *testing.T) {
	with := GoodsRecord{Quantity: 10, PricePerUnit: 5, WithCommission: true}
	assert.InDelta(t, 5, with.CommissionAmount(), 1e-9)

	without := GoodsRecord{Quantity: 10, PricePerUnit: 5, WithCommission: false}
	assert.Zero(t, without.CommissionAmount())
}

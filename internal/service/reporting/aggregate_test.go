package reporting

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/farmconnect/trader/internal/domain/models"
)

func TestAggregateEmptyCollection(t *testing.T) {
	totals := Aggregate(nil)
	assert.Zero(t, totals.Revenue)
	assert.Zero(t, totals.Commission)
}

func TestAggregateSingleRecord(t *testing.T) {
	totals := Aggregate([]models.GoodsRecord{{
		Quantity: 10, PricePerUnit: 5, WithCommission: true, FinalPrice: 45,
	}})

	assert.InDelta(t, 45, totals.Revenue, 1e-9)
	assert.InDelta(t, 5, totals.Commission, 1e-9)
}

func TestAggregateSkipsCommissionForUnflaggedRecords(t *testing.T) {
	totals := Aggregate([]models.GoodsRecord{
		{Quantity: 10, PricePerUnit: 5, WithCommission: true, FinalPrice: 45},
		{Quantity: 4, PricePerUnit: 20, WithCommission: false, FinalPrice: 80},
	})

	assert.InDelta(t, 125, totals.Revenue, 1e-9)
	assert.InDelta(t, 5, totals.Commission, 1e-9)
}

func TestAggregateToleratesMissingFinalPrice(t *testing.T) {
	// Malformed records degrade to zero contribution instead of failing the
	// whole report.
	totals := Aggregate([]models.GoodsRecord{
		{Quantity: 10, PricePerUnit: 5, WithCommission: true},
		{Quantity: 4, PricePerUnit: 20, FinalPrice: 80},
	})

	assert.InDelta(t, 80, totals.Revenue, 1e-9)
	assert.InDelta(t, 5, totals.Commission, 1e-9)
}

func TestAggregateCommissionIndependentOfStoredFinalPrice(t *testing.T) {
	// Drifted stored value: commission still comes from the raw fields.
	totals := Aggregate([]models.GoodsRecord{{
		Quantity: 10, PricePerUnit: 5, WithCommission: true, FinalPrice: 40,
	}})

	assert.InDelta(t, 40, totals.Revenue, 1e-9)
	assert.InDelta(t, 5, totals.Commission, 1e-9)
}

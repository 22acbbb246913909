package reporting

import "github.com/farmconnect/trader/internal/domain/models"

// Aggregate derives financial totals over whatever goods collection it is
// handed, typically the post-filter view. Revenue trusts the stored final
// price (absent values contribute zero); commission is recomputed from the
// raw quantity and unit price so formula drift stays visible.
func Aggregate(records []models.GoodsRecord) models.Totals {
	var totals models.Totals
	for _, rec := range records {
		totals.Revenue += rec.FinalPrice
		totals.Commission += rec.CommissionAmount()
	}
	return totals
}

package reporting

import (
	"strings"
	"time"

	"github.com/farmconnect/trader/internal/domain/models"
)

// FilterGoods applies the supplied criteria over a goods collection and
// returns a new slice in the input order. The input is never mutated; empty
// criteria returns an equal copy.
func FilterGoods(records []models.GoodsRecord, criteria models.Criteria) []models.GoodsRecord {
	out := make([]models.GoodsRecord, 0, len(records))
	for _, rec := range records {
		if !goodsMatchesSearch(rec, criteria.Search) {
			continue
		}
		if criteria.HasDate() && !sameCalendarDay(rec.CreatedAt, criteria.Date) {
			continue
		}
		if !matchesCommission(rec.WithCommission, criteria.Commission) {
			continue
		}
		out = append(out, rec)
	}
	return out
}

// FilterCustomers applies the supplied criteria over a customer collection.
// The commission filter does not apply to customers and is ignored.
func FilterCustomers(records []models.CustomerRecord, criteria models.Criteria) []models.CustomerRecord {
	out := make([]models.CustomerRecord, 0, len(records))
	for _, rec := range records {
		if !customerMatchesSearch(rec, criteria.Search) {
			continue
		}
		if criteria.HasDate() && !sameCalendarDay(rec.CreatedAt, criteria.Date) {
			continue
		}
		out = append(out, rec)
	}
	return out
}

func goodsMatchesSearch(rec models.GoodsRecord, term string) bool {
	if term == "" {
		return true
	}
	return containsFold(term, rec.FarmerName, rec.FarmerPhone, rec.GoodName, string(rec.Units))
}

func customerMatchesSearch(rec models.CustomerRecord, term string) bool {
	if term == "" {
		return true
	}
	return containsFold(term, rec.CustomerName, rec.Phone, rec.GoodsPurchased)
}

// containsFold reports whether any field contains the term, case-insensitively.
func containsFold(term string, fields ...string) bool {
	needle := strings.ToLower(term)
	for _, field := range fields {
		if strings.Contains(strings.ToLower(field), needle) {
			return true
		}
	}
	return false
}

func matchesCommission(withCommission bool, filter models.CommissionFilter) bool {
	switch filter {
	case models.CommissionWith:
		return withCommission
	case models.CommissionWithout:
		return !withCommission
	default:
		return true
	}
}

// sameCalendarDay compares wall-clock date components. The record timestamp
// is shifted into the filter date's location first so a record logged at
// 23:59 still lands on its local day.
func sameCalendarDay(t, day time.Time) bool {
	t = t.In(day.Location())
	y1, m1, d1 := t.Date()
	y2, m2, d2 := day.Date()
	return y1 == y2 && m1 == m2 && d1 == d2
}

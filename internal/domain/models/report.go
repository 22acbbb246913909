package models

import "time"

// CommissionFilter narrows a goods report to one side of the commission flag.
type CommissionFilter string

const (
	CommissionAll     CommissionFilter = "all"
	CommissionWith    CommissionFilter = "with"
	CommissionWithout CommissionFilter = "without"
)

// Criteria is the explicit view-parameters object driving every report
// recomputation. All supplied criteria combine with logical AND; the zero
// value matches everything.
type Criteria struct {
	Search     string           `json:"search"`
	Date       time.Time        `json:"date"`
	Commission CommissionFilter `json:"commission"`
}

// HasDate reports whether a calendar-day filter was supplied.
func (c Criteria) HasDate() bool {
	return !c.Date.IsZero()
}

// Totals holds the derived financial aggregates of a goods collection.
type Totals struct {
	Revenue    float64 `json:"total_revenue"`
	Commission float64 `json:"total_commission"`
}

// DailySummary is the aggregated snapshot of one trading day, persisted by
// the scheduled job.
type DailySummary struct {
	Date            time.Time `bson:"date" json:"date"`
	GoodsCount      int       `bson:"goods_count" json:"goods_count"`
	CustomerCount   int       `bson:"customer_count" json:"customer_count"`
	TotalRevenue    float64   `bson:"total_revenue" json:"total_revenue"`
	TotalCommission float64   `bson:"total_commission" json:"total_commission"`
	SalesAmount     float64   `bson:"sales_amount" json:"sales_amount"`
	CreatedAt       time.Time `bson:"created_at" json:"created_at"`
}

package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// CommissionRate is the fixed deduction applied to flagged goods records.
// Single tier, never configurable per record.
const CommissionRate = 0.10

// Units enumerates the measures goods can be collected in.
type Units string

const (
	UnitKg   Units = "Kg"
	UnitBox  Units = "Box"
	UnitBags Units = "Bags"
)

// GoodsRecord captures one collection of goods from a farmer. Records are
// append-only: once the store assigns an id and created_at they never change.
type GoodsRecord struct {
	ID             primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	FarmerName     string             `bson:"farmer_name" json:"farmer_name"`
	FarmerPhone    string             `bson:"farmer_phone" json:"farmer_phone"`
	GoodName       string             `bson:"good_name" json:"good_name"`
	Quantity       float64            `bson:"quantity" json:"quantity"`
	Units          Units              `bson:"units" json:"units"`
	PricePerUnit   float64            `bson:"price_per_unit" json:"price_per_unit"`
	WithCommission bool               `bson:"with_commission" json:"with_commission"`
	FinalPrice     float64            `bson:"final_price" json:"final_price"`
	CreatedAt      time.Time          `bson:"created_at" json:"created_at"`
}

// ComputeFinalPrice applies the entry-time commission formula. The stored
// final_price is produced by this once at creation and trusted afterwards.
func ComputeFinalPrice(quantity, pricePerUnit float64, withCommission bool) float64 {
	total := quantity * pricePerUnit
	if withCommission {
		return total * (1 - CommissionRate)
	}
	return total
}

// GrossAmount is the pre-commission value of the record.
func (g GoodsRecord) GrossAmount() float64 {
	return g.Quantity * g.PricePerUnit
}

// CommissionAmount recomputes the deduction from the raw fields rather than
// deriving it from final_price, so drift between the stored value and the
// formula stays observable.
func (g GoodsRecord) CommissionAmount() float64 {
	if !g.WithCommission {
		return 0
	}
	return g.GrossAmount() * CommissionRate
}

package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// CustomerRecord captures one sale to a customer. The price is the total
// entered at the counter, not derived.
type CustomerRecord struct {
	ID             primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	CustomerName   string             `bson:"customer_name" json:"customer_name"`
	Phone          string             `bson:"phone" json:"phone"`
	Address        string             `bson:"address" json:"address"`
	GoodsPurchased string             `bson:"goods_purchased" json:"goods_purchased"`
	Price          float64            `bson:"price" json:"price"`
	CreatedAt      time.Time          `bson:"created_at" json:"created_at"`
}

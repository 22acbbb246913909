package models

// NewGoodsRequest is the validated payload for recording a collection of
// goods. The final price is always computed server-side at creation time.
type NewGoodsRequest struct {
	FarmerName     string  `json:"farmer_name" binding:"required"`
	FarmerPhone    string  `json:"farmer_phone" binding:"required"`
	GoodName       string  `json:"good_name" binding:"required"`
	Quantity       float64 `json:"quantity" binding:"required,gt=0"`
	Units          Units   `json:"units" binding:"required,oneof=Kg Box Bags"`
	PricePerUnit   float64 `json:"price_per_unit" binding:"required,gt=0"`
	WithCommission bool    `json:"with_commission"`
}

// NewCustomerRequest is the validated payload for recording a sale.
type NewCustomerRequest struct {
	CustomerName   string  `json:"customer_name" binding:"required"`
	Phone          string  `json:"phone" binding:"required"`
	Address        string  `json:"address" binding:"required"`
	GoodsPurchased string  `json:"goods_purchased" binding:"required"`
	Price          float64 `json:"price" binding:"required,gt=0"`
}

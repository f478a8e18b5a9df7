package models

// Product is an item in the eco-rewards shop, redeemable for points.
type Product struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Cost        int    `json:"cost"`
	Description string `json:"description"`
}

type RedeemRequest struct {
	ProductID string `json:"product_id"`
}

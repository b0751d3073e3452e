package models

// Product is a catalog entry owned by a seller. ProductName is the key used
// by every product-targeted endpoint.
type Product struct {
	ID              ID     `json:"id"`
	ProductName     string `json:"product_name"`
	AmountAvailable int64  `json:"amount_available"`
	Cost            int64  `json:"cost"`
	SellerID        ID     `json:"seller_id"`
}

// ProductInput is the body of create and update calls.
type ProductInput struct {
	ProductName     string `json:"product_name"`
	AmountAvailable int64  `json:"amount_available"`
	Cost            int64  `json:"cost"`
}

type BuyRequest struct {
	ProductName string `json:"product_name"`
	Amount      int64  `json:"amount"`
}

// PurchaseResult is the backend's authoritative outcome of a buy call.
// Change is the buyer's remaining deposit.
type PurchaseResult struct {
	TotalSpent int64    `json:"total_spent"`
	Products   []string `json:"products"`
	Amount     int64    `json:"amount"`
	Change     int64    `json:"change"`
}

package model

// OrderPlaced is emitted after a buyer order is finalized.
// It is published to Kafka topic orders.placed and consumed by Projectors.
type OrderPlaced struct {
	EventID     string      `json:"event_id"`
	OrderID     string      `json:"order_id"`
	CropName    string      `json:"crop_name"`
	SellerName  string      `json:"seller_name"`
	TotalAmount float64     `json:"total_amount"`
	Status      OrderStatus `json:"status"`
	Date        string      `json:"date"`
	Timestamp   string      `json:"timestamp"` // RFC3339Nano
}

// WalletAdjusted records a signed change to the buyer wallet.
type WalletAdjusted struct {
	EventID   string  `json:"event_id"`
	Delta     float64 `json:"delta"`
	Balance   float64 `json:"balance"`
	Reason    string  `json:"reason"` // order | topup
	Timestamp string  `json:"timestamp"`
}

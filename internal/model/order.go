package model

// OrderStatus is the lifecycle state of a buyer order.
type OrderStatus string

const (
	OrderBlocked         OrderStatus = "Blocked"
	OrderInstallmentPaid OrderStatus = "Installment Paid"
	OrderFullyPaid       OrderStatus = "Fully Paid"
	OrderDelivered       OrderStatus = "Delivered"
)

// OrderReview is attached once, after delivery.
type OrderReview struct {
	Rating  int    `json:"rating" validate:"min=1,max=5"`
	Comment string `json:"comment"`
}

// Order is created at finalization and only mutated to attach a review.
type Order struct {
	ID          string       `json:"id"`
	CropName    string       `json:"crop_name"`
	SellerName  string       `json:"seller_name"`
	TotalAmount float64      `json:"total_amount"`
	Status      OrderStatus  `json:"status"`
	Date        string       `json:"date"` // YYYY-MM-DD
	Review      *OrderReview `json:"review,omitempty"`
}

// Reviewable reports whether a review may still be attached.
func (o Order) Reviewable() bool {
	return o.Status == OrderDelivered && o.Review == nil
}

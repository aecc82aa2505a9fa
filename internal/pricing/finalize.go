package pricing

import (
	"fmt"
	"time"

	"cropconnect-backend/internal/model"
)

// DateLayout is how order dates are stored.
const DateLayout = "2006-01-02"

// Finalization describes what the caller must apply once an order is
// confirmed. Nothing here has been applied yet.
type Finalization struct {
	// WalletDelta is zero or negative: the wallet deduction to request.
	WalletDelta float64     `json:"wallet_delta"`
	Order       model.Order `json:"order"`
}

// FinalizeOrder builds the new order record for crop with the given status.
// The id is derived from now in milliseconds.
func FinalizeOrder(b Breakdown, crop model.Crop, status model.OrderStatus, now time.Time) Finalization {
	var delta float64
	if b.UseWallet && b.WalletContribution > 0 {
		delta = -b.WalletContribution
	}
	return Finalization{
		WalletDelta: delta,
		Order: model.Order{
			ID:          fmt.Sprintf("ord_%d", now.UnixMilli()),
			CropName:    crop.Name,
			SellerName:  crop.SellerName,
			TotalAmount: b.TotalAmount,
			Status:      status,
			Date:        now.Format(DateLayout),
		},
	}
}

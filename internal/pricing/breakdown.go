// Package pricing splits an order total between the buyer wallet, the share
// blocked through a UPI mandate and the installment remainder.
//
// Amounts are float64 rupees. Small drift between BlockedAmount +
// InstallmentRemainder and RemainingAfterWallet is accepted.
package pricing

import (
	"math"

	"cropconnect-backend/internal/model"
	"cropconnect-backend/internal/validation"
)

// BlockedShare is the portion of the unpaid balance blocked at mandate time.
const BlockedShare = 0.25

// Breakdown holds every figure derived from a quote.
type Breakdown struct {
	UnitPrice            float64 `json:"unit_price"`
	Quantity             int     `json:"quantity"`
	UseWallet            bool    `json:"use_wallet"`
	TotalAmount          float64 `json:"total_amount"`
	WalletContribution   float64 `json:"wallet_contribution"`
	RemainingAfterWallet float64 `json:"remaining_after_wallet"`
	BlockedAmount        float64 `json:"blocked_amount"`
	InstallmentRemainder float64 `json:"installment_remainder"`
}

// ComputeOrderBreakdown derives the order split. It does not check stock;
// use Quote for that. A non-positive quantity is reported as InvalidQuantity.
func ComputeOrderBreakdown(unitPrice float64, quantity int, walletBalance float64, useWallet bool) (Breakdown, error) {
	if quantity <= 0 {
		return Breakdown{}, &validation.Error{
			Kind:    validation.InvalidQuantity,
			Field:   "quantity",
			Message: "Quantity must be greater than 0.",
		}
	}

	total := float64(quantity) * unitPrice
	wallet := 0.0
	if useWallet {
		wallet = math.Min(walletBalance, total)
	}
	remaining := total - wallet
	blocked := remaining * BlockedShare

	return Breakdown{
		UnitPrice:            unitPrice,
		Quantity:             quantity,
		UseWallet:            useWallet,
		TotalAmount:          total,
		WalletContribution:   wallet,
		RemainingAfterWallet: remaining,
		BlockedAmount:        blocked,
		InstallmentRemainder: remaining - blocked,
	}, nil
}

// Quote validates quantity against the crop's stock and computes the breakdown.
func Quote(crop model.Crop, quantity int, walletBalance float64, useWallet bool) (Breakdown, error) {
	if err := validation.ValidateQuantity(quantity, crop.StockKg); err != nil {
		return Breakdown{}, err
	}
	return ComputeOrderBreakdown(crop.PricePerKg, quantity, walletBalance, useWallet)
}

// RequiresMandate reports whether part of the order is left after the wallet.
func (b Breakdown) RequiresMandate() bool {
	return b.RemainingAfterWallet > 0
}

// Decision is the status the order will carry once finalized: FullyPaid when
// the wallet covers it, otherwise Blocked after mandate authorization.
func (b Breakdown) Decision() model.OrderStatus {
	if b.RequiresMandate() {
		return model.OrderBlocked
	}
	return model.OrderFullyPaid
}

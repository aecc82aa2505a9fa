package checkout

import (
	"time"

	"cropconnect-backend/internal/model"
	"cropconnect-backend/internal/pricing"
	"cropconnect-backend/internal/validation"
)

// DefaultQuantity is the quantity the order summary opens with.
const DefaultQuantity = 100

// Result is what a completed payment flow hands to the caller.
type Result struct {
	Breakdown    pricing.Breakdown     `json:"breakdown"`
	Finalization pricing.Finalization  `json:"finalization"`
	Installments []pricing.Installment `json:"installments"`
}

// Payment is one buyer's pass through the order flow for a single crop.
type Payment struct {
	machine
	crop          model.Crop
	walletBalance float64
	quantity      int
	useWallet     bool
	breakdown     pricing.Breakdown
	result        *Result
	now           func() time.Time
}

// NewPayment starts a flow at AmountEntry.
func NewPayment(crop model.Crop, walletBalance float64) *Payment {
	return &Payment{
		machine:       machine{state: AmountEntry},
		crop:          crop,
		walletBalance: walletBalance,
		quantity:      DefaultQuantity,
		now:           time.Now,
	}
}

// SetQuantity records the requested quantity and reports whether it is
// acceptable. An invalid quantity is kept so the caller can show it; Proceed
// refuses to move on until it is fixed.
func (p *Payment) SetQuantity(q int) error {
	if err := p.require(AmountEntry); err != nil {
		return err
	}
	p.quantity = q
	return validation.ValidateQuantity(q, p.crop.StockKg)
}

// SetUseWallet toggles paying from the wallet first.
func (p *Payment) SetUseWallet(use bool) error {
	if err := p.require(AmountEntry); err != nil {
		return err
	}
	p.useWallet = use
	return nil
}

// Quote is the live breakdown for the current inputs.
func (p *Payment) Quote() (pricing.Breakdown, error) {
	return pricing.Quote(p.crop, p.quantity, p.walletBalance, p.useWallet)
}

// Proceed leaves the order summary. When the wallet covers the whole total the
// order is finalized as FullyPaid right away; otherwise the mandate must be
// authorized.
func (p *Payment) Proceed() error {
	if err := p.require(AmountEntry); err != nil {
		return err
	}
	b, err := p.Quote()
	if err != nil {
		return err
	}
	p.breakdown = b
	if !b.RequiresMandate() {
		if err := p.to(Success); err != nil {
			return err
		}
		p.finish(model.OrderFullyPaid)
		return nil
	}
	return p.to(AuthorizeMandate)
}

// Authorize accepts the mandate terms and asks for the PIN.
func (p *Payment) Authorize() error {
	if err := p.require(AuthorizeMandate); err != nil {
		return err
	}
	return p.to(EnterPin)
}

// SubmitPIN confirms the mandate. The order is finalized as Blocked.
func (p *Payment) SubmitPIN(pin string) error {
	if err := p.require(EnterPin); err != nil {
		return err
	}
	if err := validation.ValidatePIN(pin); err != nil {
		return err
	}
	if err := p.to(Success); err != nil {
		return err
	}
	p.finish(model.OrderBlocked)
	return nil
}

func (p *Payment) finish(status model.OrderStatus) {
	now := p.now()
	p.result = &Result{
		Breakdown:    p.breakdown,
		Finalization: pricing.FinalizeOrder(p.breakdown, p.crop, status, now),
		Installments: pricing.Installments(p.breakdown, now),
	}
}

// Result is available once the flow reaches Success.
func (p *Payment) Result() (Result, bool) {
	if p.result == nil {
		return Result{}, false
	}
	return *p.result, true
}

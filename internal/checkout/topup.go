package checkout

import (
	"cropconnect-backend/internal/validation"
)

// DefaultTopUpAmount pre-fills the add-money dialog.
const DefaultTopUpAmount = 1000

// TopUp adds money to the wallet through a mandate.
type TopUp struct {
	machine
	amount float64
}

// NewTopUp starts a top-up at AmountEntry.
func NewTopUp(amount float64) *TopUp {
	return &TopUp{machine: machine{state: AmountEntry}, amount: amount}
}

// SetAmount changes the amount while still at AmountEntry.
func (t *TopUp) SetAmount(amount float64) error {
	if err := t.require(AmountEntry); err != nil {
		return err
	}
	t.amount = amount
	return nil
}

// Proceed moves to mandate authorization once the amount is positive.
func (t *TopUp) Proceed() error {
	if err := t.require(AmountEntry); err != nil {
		return err
	}
	if t.amount <= 0 {
		return &validation.Error{Kind: validation.MalformedField, Field: "amount", Message: "Amount must be greater than 0."}
	}
	return t.to(AuthorizeMandate)
}

// Authorize accepts the mandate and asks for the PIN.
func (t *TopUp) Authorize() error {
	if err := t.require(AuthorizeMandate); err != nil {
		return err
	}
	return t.to(EnterPin)
}

// SubmitPIN completes the top-up.
func (t *TopUp) SubmitPIN(pin string) error {
	if err := t.require(EnterPin); err != nil {
		return err
	}
	if err := validation.ValidatePIN(pin); err != nil {
		return err
	}
	return t.to(Success)
}

// Delta is the wallet credit to apply, available only after Success.
func (t *TopUp) Delta() (float64, bool) {
	if t.state != Success {
		return 0, false
	}
	return t.amount, true
}

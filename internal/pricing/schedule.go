package pricing

import "time"

// DefaultInstallments is the number of monthly installments after the
// blocked share.
const DefaultInstallments = 3

// BuildInstallmentSchedule returns count due dates, reference + N months for
// N = 1..count. Day-of-month overflow rolls into the next month the way
// time.AddDate normalizes it (Jan 31 + 1 month = Mar 2 or 3).
func BuildInstallmentSchedule(reference time.Time, count int) []time.Time {
	if count <= 0 {
		return nil
	}
	dates := make([]time.Time, 0, count)
	for n := 1; n <= count; n++ {
		dates = append(dates, reference.AddDate(0, n, 0))
	}
	return dates
}

// Installment is one scheduled collection.
type Installment struct {
	Number int       `json:"number"`
	DueOn  time.Time `json:"due_on"`
	Amount float64   `json:"amount"`
}

// Installments spreads the installment remainder evenly over the default
// schedule. Orders that need no mandate get no installments.
func Installments(b Breakdown, reference time.Time) []Installment {
	if !b.RequiresMandate() {
		return nil
	}
	dates := BuildInstallmentSchedule(reference, DefaultInstallments)
	share := b.InstallmentRemainder / float64(len(dates))
	out := make([]Installment, len(dates))
	for i, d := range dates {
		out[i] = Installment{Number: i + 1, DueOn: d, Amount: share}
	}
	return out
}

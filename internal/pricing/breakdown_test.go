package pricing

import (
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"cropconnect-backend/internal/model"
	"cropconnect-backend/internal/validation"
)

var tomatoes = model.Crop{ID: "1", Name: "Tomatoes", SellerName: "Ram Kumar", PricePerKg: 30, StockKg: 500}

func TestComputeOrderBreakdown_NoWallet(t *testing.T) {
	b, err := ComputeOrderBreakdown(30, 100, 0, false)
	require.NoError(t, err)

	assert.Equal(t, 3000.0, b.TotalAmount)
	assert.Equal(t, 0.0, b.WalletContribution)
	assert.Equal(t, 3000.0, b.RemainingAfterWallet)
	assert.Equal(t, 750.0, b.BlockedAmount)
	assert.Equal(t, 2250.0, b.InstallmentRemainder)
	assert.Equal(t, model.OrderBlocked, b.Decision())
}

func TestComputeOrderBreakdown_WalletCoversTotal(t *testing.T) {
	b, err := ComputeOrderBreakdown(30, 100, 5000, true)
	require.NoError(t, err)

	assert.Equal(t, 3000.0, b.WalletContribution)
	assert.Equal(t, 0.0, b.RemainingAfterWallet)
	assert.Equal(t, 0.0, b.BlockedAmount)
	assert.Equal(t, 0.0, b.InstallmentRemainder)
	assert.False(t, b.RequiresMandate())
	assert.Equal(t, model.OrderFullyPaid, b.Decision())
	assert.Empty(t, Installments(b, time.Now()))
}

func TestComputeOrderBreakdown_PartialWallet(t *testing.T) {
	b, err := ComputeOrderBreakdown(30, 100, 1000, true)
	require.NoError(t, err)

	assert.Equal(t, 1000.0, b.WalletContribution)
	assert.Equal(t, 2000.0, b.RemainingAfterWallet)
	assert.Equal(t, 500.0, b.BlockedAmount)
	assert.Equal(t, 1500.0, b.InstallmentRemainder)
}

func TestComputeOrderBreakdown_WalletIgnoredWhenUnused(t *testing.T) {
	b, err := ComputeOrderBreakdown(30, 100, 5000, false)
	require.NoError(t, err)
	assert.Equal(t, 0.0, b.WalletContribution)
	assert.Equal(t, 3000.0, b.RemainingAfterWallet)
}

func TestComputeOrderBreakdown_NonPositiveQuantity(t *testing.T) {
	for _, q := range []int{0, -5} {
		_, err := ComputeOrderBreakdown(30, q, 0, false)
		var verr *validation.Error
		require.True(t, errors.As(err, &verr), "quantity %d", q)
		assert.Equal(t, validation.InvalidQuantity, verr.Kind)
	}
}

func TestQuote_StockLimit(t *testing.T) {
	_, err := Quote(tomatoes, 501, 0, false)
	assert.ErrorIs(t, err, &validation.Error{Kind: validation.InvalidQuantity})

	b, err := Quote(tomatoes, 500, 0, false)
	require.NoError(t, err)
	assert.Equal(t, 15000.0, b.TotalAmount)
}

func TestBuildInstallmentSchedule(t *testing.T) {
	ref := time.Date(2024, time.March, 15, 10, 0, 0, 0, time.UTC)
	got := BuildInstallmentSchedule(ref, DefaultInstallments)

	require.Len(t, got, 3)
	assert.Equal(t, time.Date(2024, time.April, 15, 10, 0, 0, 0, time.UTC), got[0])
	assert.Equal(t, time.Date(2024, time.May, 15, 10, 0, 0, 0, time.UTC), got[1])
	assert.Equal(t, time.Date(2024, time.June, 15, 10, 0, 0, 0, time.UTC), got[2])

	assert.Nil(t, BuildInstallmentSchedule(ref, 0))
}

func TestBuildInstallmentSchedule_MonthEndRollsOver(t *testing.T) {
	ref := time.Date(2023, time.January, 31, 0, 0, 0, 0, time.UTC)
	got := BuildInstallmentSchedule(ref, 1)
	assert.Equal(t, time.Date(2023, time.March, 3, 0, 0, 0, 0, time.UTC), got[0])
}

func TestInstallments_SplitEvenly(t *testing.T) {
	b, err := ComputeOrderBreakdown(30, 100, 0, false)
	require.NoError(t, err)

	ref := time.Date(2024, time.January, 10, 0, 0, 0, 0, time.UTC)
	inst := Installments(b, ref)
	require.Len(t, inst, 3)
	for i, in := range inst {
		assert.Equal(t, i+1, in.Number)
		assert.Equal(t, 750.0, in.Amount)
	}
	assert.Equal(t, time.Date(2024, time.April, 10, 0, 0, 0, 0, time.UTC), inst[2].DueOn)
}

func TestFinalizeOrder(t *testing.T) {
	now := time.Date(2024, time.November, 5, 9, 30, 0, 0, time.UTC)

	b, _ := ComputeOrderBreakdown(30, 100, 1000, true)
	f := FinalizeOrder(b, tomatoes, b.Decision(), now)

	assert.Equal(t, -1000.0, f.WalletDelta)
	assert.Equal(t, "ord_1730799000000", f.Order.ID)
	assert.Equal(t, "Tomatoes", f.Order.CropName)
	assert.Equal(t, "Ram Kumar", f.Order.SellerName)
	assert.Equal(t, 3000.0, f.Order.TotalAmount)
	assert.Equal(t, model.OrderBlocked, f.Order.Status)
	assert.Equal(t, "2024-11-05", f.Order.Date)
	assert.Nil(t, f.Order.Review)

	b, _ = ComputeOrderBreakdown(30, 100, 1000, false)
	f = FinalizeOrder(b, tomatoes, model.OrderBlocked, now)
	assert.Equal(t, 0.0, f.WalletDelta)
}

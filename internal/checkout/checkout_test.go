package checkout

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"cropconnect-backend/internal/model"
	"cropconnect-backend/internal/validation"
)

var tomatoes = model.Crop{ID: "1", Name: "Tomatoes", SellerName: "Ram Kumar", PricePerKg: 30, StockKg: 500}

func fixedClock(p *Payment) {
	p.now = func() time.Time { return time.Date(2024, time.February, 10, 12, 0, 0, 0, time.UTC) }
}

func TestPayment_MandatePath(t *testing.T) {
	p := NewPayment(tomatoes, 1000)
	fixedClock(p)

	require.NoError(t, p.SetQuantity(100))
	require.NoError(t, p.SetUseWallet(true))
	require.NoError(t, p.Proceed())
	assert.Equal(t, AuthorizeMandate, p.State())

	require.NoError(t, p.Authorize())
	assert.Equal(t, EnterPin, p.State())

	err := p.SubmitPIN("12345")
	assert.ErrorIs(t, err, &validation.Error{Kind: validation.PinFormat})
	assert.Equal(t, EnterPin, p.State())
	_, ok := p.Result()
	assert.False(t, ok)

	require.NoError(t, p.SubmitPIN("123456"))
	assert.Equal(t, Success, p.State())

	res, ok := p.Result()
	require.True(t, ok)
	assert.Equal(t, 500.0, res.Breakdown.BlockedAmount)
	assert.Equal(t, 1500.0, res.Breakdown.InstallmentRemainder)
	assert.Equal(t, model.OrderBlocked, res.Finalization.Order.Status)
	assert.Equal(t, -1000.0, res.Finalization.WalletDelta)
	require.Len(t, res.Installments, 3)
	assert.Equal(t, time.Date(2024, time.May, 10, 12, 0, 0, 0, time.UTC), res.Installments[2].DueOn)
}

func TestPayment_WalletCoversEverything(t *testing.T) {
	p := NewPayment(tomatoes, 5000)
	fixedClock(p)
	require.NoError(t, p.SetUseWallet(true))

	require.NoError(t, p.Proceed())
	assert.Equal(t, Success, p.State())

	res, ok := p.Result()
	require.True(t, ok)
	assert.Equal(t, model.OrderFullyPaid, res.Finalization.Order.Status)
	assert.Equal(t, -3000.0, res.Finalization.WalletDelta)
	assert.Empty(t, res.Installments)

	assert.ErrorIs(t, p.Authorize(), ErrInvalidTransition)
	assert.ErrorIs(t, p.Back(), ErrInvalidTransition)
}

func TestPayment_InvalidQuantityBlocksProceed(t *testing.T) {
	p := NewPayment(tomatoes, 0)

	err := p.SetQuantity(600)
	assert.ErrorIs(t, err, &validation.Error{Kind: validation.InvalidQuantity})
	assert.ErrorIs(t, p.Proceed(), &validation.Error{Kind: validation.InvalidQuantity})
	assert.Equal(t, AmountEntry, p.State())

	assert.Error(t, p.SetQuantity(0))
	assert.Error(t, p.Proceed())

	require.NoError(t, p.SetQuantity(10))
	require.NoError(t, p.Proceed())
}

func TestPayment_BackAndGuards(t *testing.T) {
	p := NewPayment(tomatoes, 0)

	assert.ErrorIs(t, p.Back(), ErrInvalidTransition)
	assert.ErrorIs(t, p.SubmitPIN("1234"), ErrInvalidTransition)

	require.NoError(t, p.Proceed())
	assert.ErrorIs(t, p.SetQuantity(5), ErrInvalidTransition)
	require.NoError(t, p.Authorize())
	require.NoError(t, p.Back())
	assert.Equal(t, AuthorizeMandate, p.State())
	require.NoError(t, p.Back())
	assert.Equal(t, AmountEntry, p.State())

	require.NoError(t, p.SetQuantity(5))
	q, err := p.Quote()
	require.NoError(t, err)
	assert.Equal(t, 150.0, q.TotalAmount)
}

func TestTopUp(t *testing.T) {
	tu := NewTopUp(DefaultTopUpAmount)

	_, ok := tu.Delta()
	assert.False(t, ok)

	require.NoError(t, tu.SetAmount(0))
	assert.ErrorIs(t, tu.Proceed(), &validation.Error{Kind: validation.MalformedField})

	require.NoError(t, tu.SetAmount(750))
	require.NoError(t, tu.Proceed())
	require.NoError(t, tu.Authorize())
	assert.ErrorIs(t, tu.SubmitPIN("12a4"), &validation.Error{Kind: validation.PinFormat})
	require.NoError(t, tu.SubmitPIN("1234"))

	d, ok := tu.Delta()
	require.True(t, ok)
	assert.Equal(t, 750.0, d)
	assert.ErrorIs(t, tu.SetAmount(5), ErrInvalidTransition)
}

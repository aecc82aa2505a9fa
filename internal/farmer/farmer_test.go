package farmer

import (
	"context"
	"errors"
	"regexp"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"cropconnect-backend/internal/model"
	"cropconnect-backend/internal/store"
	"cropconnect-backend/internal/validation"
)

func newAccounts() *Accounts {
	a := NewAccounts(store.NewMemoryKV(), 0)
	a.cost = bcrypt.MinCost
	return a
}

var ravi = Registration{Name: "Ravi", Email: "ravi@example.com", ContactNumber: "9123456780", Password: "secret1"}

func TestAccounts_RegisterAndLogin(t *testing.T) {
	ctx := context.Background()
	a := newAccounts()

	farmID, err := a.Register(ctx, ravi)
	require.NoError(t, err)
	assert.Regexp(t, regexp.MustCompile(`^FM\d{4}$`), farmID)

	f, err := a.Login(ctx, "Ravi", farmID, "secret1")
	require.NoError(t, err)
	assert.Equal(t, model.Farmer{FarmID: farmID, Name: "Ravi", Email: "ravi@example.com", ContactNumber: "9123456780"}, f)

	_, err = a.Login(ctx, "Ravi", farmID, "wrong")
	assert.ErrorIs(t, err, ErrInvalidCredentials)
	_, err = a.Login(ctx, "Someone", farmID, "secret1")
	assert.ErrorIs(t, err, ErrInvalidCredentials)
	_, err = a.Login(ctx, "Ravi", "FM0000", "secret1")
	assert.ErrorIs(t, err, ErrInvalidCredentials)
}

func TestAccounts_RegisterValidation(t *testing.T) {
	bad := ravi
	bad.ContactNumber = "12"
	bad.Password = "123"

	_, err := newAccounts().Register(context.Background(), bad)
	var errs validation.Errors
	require.True(t, errors.As(err, &errs))
	assert.NotNil(t, errs.Field("contact_number"))
	assert.NotNil(t, errs.Field("password"))
}

func TestAccounts_ChangePasswordAndProfile(t *testing.T) {
	ctx := context.Background()
	a := newAccounts()
	farmID, err := a.Register(ctx, ravi)
	require.NoError(t, err)

	assert.ErrorIs(t, a.ChangePassword(ctx, farmID, "secret1", "short"), &validation.Error{Kind: validation.MalformedField})
	assert.ErrorIs(t, a.ChangePassword(ctx, farmID, "nope", "longer-pass"), ErrInvalidCredentials)
	assert.ErrorIs(t, a.ChangePassword(ctx, "FM0000", "secret1", "longer-pass"), ErrUnknownFarm)
	require.NoError(t, a.ChangePassword(ctx, farmID, "secret1", "longer-pass"))

	_, err = a.Login(ctx, "Ravi", farmID, "longer-pass")
	require.NoError(t, err)

	f, err := a.UpdateProfilePic(ctx, farmID, "data:image/png;base64,AAAA")
	require.NoError(t, err)
	assert.Equal(t, "data:image/png;base64,AAAA", f.ProfilePic)

	ok, err := a.Exists(ctx, farmID)
	require.NoError(t, err)
	assert.True(t, ok)
}

func TestListings_CRUD(t *testing.T) {
	ctx := context.Background()
	l := NewListings(store.NewMemoryKV())

	all, err := l.List(ctx, "FM1234")
	require.NoError(t, err)
	require.Len(t, all, 6)

	added, err := l.Add(ctx, "FM1234", model.Listing{
		Name: "Green Chillies", Type: model.CropVegetable, CulturalPractice: model.PracticeHybrid, PricePerKg: 60, StockKg: 40,
	})
	require.NoError(t, err)
	assert.NotEmpty(t, added.ID)

	all, _ = l.List(ctx, "FM1234")
	require.Len(t, all, 7)
	assert.Equal(t, "Green Chillies", all[6].Name)

	added.StockKg = 35
	_, err = l.Update(ctx, "FM1234", added)
	require.NoError(t, err)
	all, _ = l.List(ctx, "FM1234")
	assert.Equal(t, 35, all[6].StockKg)

	require.NoError(t, l.Delete(ctx, "FM1234", "3"))
	all, _ = l.List(ctx, "FM1234")
	assert.Len(t, all, 6)
	for _, c := range all {
		assert.NotEqual(t, "3", c.ID)
	}

	assert.ErrorIs(t, l.Delete(ctx, "FM1234", "3"), ErrListingNotFound)
	_, err = l.Update(ctx, "FM1234", model.Listing{ID: "zzz", Name: "x", Type: model.CropFruit, CulturalPractice: model.PracticeOrganic, PricePerKg: 1})
	assert.ErrorIs(t, err, ErrListingNotFound)

	other, _ := l.List(ctx, "FM9999")
	assert.Len(t, other, 6)
}

func TestListings_Validation(t *testing.T) {
	l := NewListings(store.NewMemoryKV())
	_, err := l.Add(context.Background(), "FM1", model.Listing{Name: "", Type: "Nut", PricePerKg: 0})
	var errs validation.Errors
	require.True(t, errors.As(err, &errs))
	assert.NotNil(t, errs.Field("name"))
	assert.NotNil(t, errs.Field("type"))
	assert.NotNil(t, errs.Field("price_per_kg"))
}

package catalog

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"cropconnect-backend/internal/model"
)

func names(crops []model.Crop) []string {
	out := make([]string, len(crops))
	for i, c := range crops {
		out[i] = c.Name
	}
	return out
}

func price(v float64) *float64 { return &v }

func TestMaxPossiblePrice(t *testing.T) {
	assert.Equal(t, 80.0, MaxPossiblePrice(Seed()))
	assert.Equal(t, 90.0, MaxPossiblePrice([]model.Crop{{PricePerKg: 81}}))
	assert.Equal(t, EmptyCatalogCeiling, MaxPossiblePrice(nil))
	assert.Equal(t, 100.0, MaxPossiblePrice([]model.Crop{}))
	assert.Equal(t, 100.0, *DefaultCriteria(nil).MaxPrice)
}

func TestFilter_DefaultCriteriaIsIdentity(t *testing.T) {
	crops := Seed()
	got := Filter(crops, DefaultCriteria(crops))
	assert.Equal(t, crops, got)

	assert.Equal(t, crops, Filter(crops, Criteria{}))
}

func TestFilter_MaxPrice(t *testing.T) {
	got := Filter(Seed(), Criteria{MaxPrice: price(30)})
	assert.Equal(t, []string{"Tomatoes", "Potatoes", "Onions", "Wheat"}, names(got))
}

func TestFilter_SearchMatchesNameOrSeller(t *testing.T) {
	got := Filter(Seed(), Criteria{SearchTerm: "RAM"})
	assert.Equal(t, []string{"Tomatoes"}, names(got))

	got = Filter(Seed(), Criteria{SearchTerm: "grain"})
	assert.Equal(t, []string{"Rice (Basmati)"}, names(got))
}

func TestFilter_Tags(t *testing.T) {
	assert.Equal(t, []string{"Tomatoes", "Carrots"}, names(Filter(Seed(), Criteria{Organic: true})))
	assert.Equal(t, []string{"Tomatoes", "Rice (Basmati)"}, names(Filter(Seed(), Criteria{Seasonal: true})))
	assert.Equal(t, []string{"Tomatoes"}, names(Filter(Seed(), Criteria{Organic: true, Seasonal: true})))
}

func TestFilter_MinRatingAndCategory(t *testing.T) {
	got := Filter(Seed(), Criteria{MinRating: 4.7})
	assert.Equal(t, []string{"Potatoes", "Wheat", "Rice (Basmati)"}, names(got))

	got = Filter(Seed(), Criteria{SellerCategory: model.SellerCooperative})
	assert.Equal(t, []string{"Onions", "Wheat"}, names(got))

	got = Filter(Seed(), Criteria{SellerCategory: model.SellerCooperative, MinRating: 4.5})
	assert.Equal(t, []string{"Wheat"}, names(got))
}

func TestFilter_UnsetCategoryExcludedOnlyWhenActive(t *testing.T) {
	crops := []model.Crop{{ID: "x", Name: "Millet", PricePerKg: 10}}
	assert.Len(t, Filter(crops, Criteria{}), 1)
	assert.Empty(t, Filter(crops, Criteria{SellerCategory: model.SellerFarmer}))
	assert.Empty(t, Filter(crops, Criteria{Organic: true}))
}

func TestSuggest(t *testing.T) {
	got := Suggest(Seed(), "to", DefaultSuggestionLimit)
	assert.Equal(t, []string{"Tomatoes", "Potatoes"}, names(got))

	assert.Empty(t, Suggest(Seed(), "", DefaultSuggestionLimit))
	assert.NotNil(t, Suggest(Seed(), "", DefaultSuggestionLimit))

	// seller names are not searched
	assert.Empty(t, Suggest(Seed(), "Ram Kumar", DefaultSuggestionLimit))
}

func TestSuggest_Limit(t *testing.T) {
	var crops []model.Crop
	for i := 0; i < 8; i++ {
		crops = append(crops, model.Crop{ID: string(rune('a' + i)), Name: "Tomato variety"})
	}
	assert.Len(t, Suggest(crops, "tomato", DefaultSuggestionLimit), 5)
	assert.Len(t, Suggest(crops, "tomato", 2), 2)
}

func TestActiveFilterCount(t *testing.T) {
	ceiling := MaxPossiblePrice(Seed())
	assert.Equal(t, 0, ActiveFilterCount(DefaultCriteria(Seed()), ceiling))
	assert.Equal(t, 0, ActiveFilterCount(Criteria{SearchTerm: "rice"}, ceiling))

	c := Criteria{
		MaxPrice:       price(50),
		MinRating:      4,
		Organic:        true,
		Seasonal:       true,
		SellerCategory: model.SellerFarmer,
	}
	assert.Equal(t, 5, ActiveFilterCount(c, ceiling))
}

func TestCatalog(t *testing.T) {
	dup := append(Seed(), model.Crop{ID: "1", Name: "Duplicate"})
	c := New(dup)

	require.Len(t, c.All(), 6)
	crop, ok := c.ByID("1")
	require.True(t, ok)
	assert.Equal(t, "Tomatoes", crop.Name)
	assert.NotNil(t, c.All()[4].Reviews)

	_, ok = c.ByID("missing")
	assert.False(t, ok)

	assert.Equal(t, 80.0, c.MaxPossiblePrice())
	assert.Equal(t, []string{"Tomatoes", "Potatoes"}, names(c.Suggest("TO")))
	assert.Equal(t, []string{"Carrots"}, names(c.Search(Criteria{Organic: true, MinRating: 4.6})))
}

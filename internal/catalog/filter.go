// Package catalog filters the crop catalog for the buyer dashboard and
// produces live search suggestions.
package catalog

import (
	"math"
	"strings"

	"cropconnect-backend/internal/model"
)

// DefaultSuggestionLimit caps the suggestion dropdown.
const DefaultSuggestionLimit = 5

// Criteria is the dashboard filter state. Zero values impose no constraint;
// MaxPrice is a pointer so that "no ceiling" is distinct from a ceiling of 0.
type Criteria struct {
	SearchTerm     string               `json:"search_term"`
	MaxPrice       *float64             `json:"max_price,omitempty"`
	MinRating      float64              `json:"min_rating"`
	Organic        bool                 `json:"organic"`
	Seasonal       bool                 `json:"seasonal"`
	SellerCategory model.SellerCategory `json:"seller_category,omitempty"`
}

// EmptyCatalogCeiling is the slider ceiling before any crop is listed.
const EmptyCatalogCeiling = 100.0

// MaxPossiblePrice is the slider ceiling: the highest price in the catalog
// rounded up to the next multiple of 10, or EmptyCatalogCeiling when there
// are no crops.
func MaxPossiblePrice(crops []model.Crop) float64 {
	if len(crops) == 0 {
		return EmptyCatalogCeiling
	}
	highest := crops[0].PricePerKg
	for _, c := range crops[1:] {
		highest = math.Max(highest, c.PricePerKg)
	}
	return math.Ceil(highest/10) * 10
}

// DefaultCriteria is the unconstrained filter for a catalog, with MaxPrice
// at the catalog ceiling.
func DefaultCriteria(crops []model.Crop) Criteria {
	ceiling := MaxPossiblePrice(crops)
	return Criteria{MaxPrice: &ceiling}
}

// Filter returns the crops matching every active criterion, in input order.
func Filter(crops []model.Crop, c Criteria) []model.Crop {
	term := strings.ToLower(c.SearchTerm)
	out := make([]model.Crop, 0, len(crops))
	for _, crop := range crops {
		if matches(crop, c, term) {
			out = append(out, crop)
		}
	}
	return out
}

func matches(crop model.Crop, c Criteria, term string) bool {
	if term != "" &&
		!strings.Contains(strings.ToLower(crop.Name), term) &&
		!strings.Contains(strings.ToLower(crop.SellerName), term) {
		return false
	}
	if c.MaxPrice != nil && crop.PricePerKg > *c.MaxPrice {
		return false
	}
	if crop.Rating < c.MinRating {
		return false
	}
	if c.Organic && !crop.IsOrganic {
		return false
	}
	if c.Seasonal && !crop.IsSeasonal {
		return false
	}
	if c.SellerCategory != "" && crop.SellerCategory != c.SellerCategory {
		return false
	}
	return true
}

// Suggest matches prefix against crop names only. An empty prefix yields no
// suggestions, unlike Filter where an empty search term matches everything.
func Suggest(crops []model.Crop, prefix string, limit int) []model.Crop {
	if prefix == "" || limit <= 0 {
		return []model.Crop{}
	}
	needle := strings.ToLower(prefix)
	out := make([]model.Crop, 0, limit)
	for _, crop := range crops {
		if strings.Contains(strings.ToLower(crop.Name), needle) {
			out = append(out, crop)
			if len(out) == limit {
				break
			}
		}
	}
	return out
}

// ActiveFilterCount is the dashboard badge value. The search term is not a
// filter for this purpose.
func ActiveFilterCount(c Criteria, ceiling float64) int {
	n := 0
	if c.MaxPrice != nil && *c.MaxPrice < ceiling {
		n++
	}
	if c.MinRating > 0 {
		n++
	}
	if c.Organic {
		n++
	}
	if c.Seasonal {
		n++
	}
	if c.SellerCategory != "" {
		n++
	}
	return n
}

package model

import (
	"slices"
	"strings"
)

// SellerCategory classifies who lists a crop on the marketplace.
type SellerCategory string

const (
	SellerFarmer      SellerCategory = "Farmer"
	SellerWholesaler  SellerCategory = "Wholesaler"
	SellerCooperative SellerCategory = "Cooperative"
)

// SellerCategories lists the categories in the order the dashboard shows them.
var SellerCategories = []SellerCategory{SellerFarmer, SellerWholesaler, SellerCooperative}

// Valid reports whether c is one of the known categories. The empty value is
// not valid; callers treat it as "unset".
func (c SellerCategory) Valid() bool {
	return slices.Contains(SellerCategories, c)
}

// SellerCategoryNames joins SellerCategories for messages, e.g.
// "Farmer, Wholesaler, Cooperative".
func SellerCategoryNames() string {
	names := make([]string, len(SellerCategories))
	for i, c := range SellerCategories {
		names[i] = string(c)
	}
	return strings.Join(names, ", ")
}

// Review is a buyer review shown on the crop detail screen.
type Review struct {
	ID           string `json:"id"`
	ReviewerName string `json:"reviewer_name"`
	Rating       int    `json:"rating"`
	Comment      string `json:"comment"`
	Date         string `json:"date"`
}

// Crop is a catalog listing as seen by buyers.
type Crop struct {
	ID             string         `json:"id"`
	Name           string         `json:"name"`
	SellerName     string         `json:"seller_name"`
	PricePerKg     float64        `json:"price_per_kg"`
	StockKg        int            `json:"stock_kg"`
	Rating         float64        `json:"rating"`
	Description    string         `json:"description"`
	ImageURL       string         `json:"image_url,omitempty"`
	IsOrganic      bool           `json:"is_organic"`
	IsSeasonal     bool           `json:"is_seasonal"`
	SellerCategory SellerCategory `json:"seller_category,omitempty"`
	Reviews        []Review       `json:"reviews"`
}

// Normalize fills in defaults so downstream code never sees a partially
// populated record: no nil review slice, clamped rating, unknown categories
// dropped to unset.
func (c Crop) Normalize() Crop {
	if c.Reviews == nil {
		c.Reviews = []Review{}
	}
	if c.Rating < 0 {
		c.Rating = 0
	}
	if c.Rating > 5 {
		c.Rating = 5
	}
	if c.SellerCategory != "" && !c.SellerCategory.Valid() {
		c.SellerCategory = ""
	}
	return c
}

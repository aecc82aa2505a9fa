package model

// CropType groups farmer listings.
type CropType string

const (
	CropVegetable CropType = "Vegetable"
	CropGrain     CropType = "Grain"
	CropFruit     CropType = "Fruit"
)

// CulturalPractice is how a listed crop was grown.
type CulturalPractice string

const (
	PracticeOrganic      CulturalPractice = "Organic"
	PracticeHybrid       CulturalPractice = "Hybrid"
	PracticeConventional CulturalPractice = "Conventional"
)

// Listing is a crop the farmer offers, managed from the farmer app.
type Listing struct {
	ID               string           `json:"id"`
	Name             string           `json:"name" validate:"required"`
	Type             CropType         `json:"type" validate:"required,oneof=Vegetable Grain Fruit"`
	CulturalPractice CulturalPractice `json:"cultural_practice" validate:"required,oneof=Organic Hybrid Conventional"`
	PricePerKg       float64          `json:"price_per_kg" validate:"gt=0"`
	StockKg          int              `json:"stock_kg" validate:"gte=0"`
	ImageURL         string           `json:"image_url,omitempty" validate:"omitempty,url"`
}

// Farmer is the logged-in farmer profile. Credentials are stored separately.
type Farmer struct {
	FarmID        string `json:"farm_id"`
	Name          string `json:"name"`
	Email         string `json:"email"`
	ContactNumber string `json:"contact_number"`
	ProfilePic    string `json:"profile_pic,omitempty"`
}

package farmer

import (
	"context"
	"errors"
	"log"
	"sync"

	"github.com/google/uuid"

	"cropconnect-backend/internal/model"
	"cropconnect-backend/internal/store"
	"cropconnect-backend/internal/validation"
)

// ErrListingNotFound is returned by Update and Delete for unknown ids.
var ErrListingNotFound = errors.New("farmer: listing not found")

// Listings manages the crops each farm offers. A farm with nothing stored
// starts from the demo listings.
type Listings struct {
	mu sync.Mutex
	kv store.KV
}

// NewListings returns a Listings store.
func NewListings(kv store.KV) *Listings {
	return &Listings{kv: kv}
}

func listingsKey(farmID string) string { return "farmerCrops:" + farmID }

func (l *Listings) load(ctx context.Context, farmID string) ([]model.Listing, error) {
	var out []model.Listing
	err := store.GetJSON(ctx, l.kv, listingsKey(farmID), &out)
	switch {
	case err == nil:
		return out, nil
	case errors.Is(err, store.ErrNotFound):
		seed := SeedListings()
		if err := l.save(ctx, farmID, seed); err != nil {
			log.Printf("Listings: seeding %s failed: %v", farmID, err)
		}
		return seed, nil
	default:
		log.Printf("Listings: load %s failed, using demo listings: %v", farmID, err)
		return SeedListings(), nil
	}
}

func (l *Listings) save(ctx context.Context, farmID string, listings []model.Listing) error {
	return store.SetJSON(ctx, l.kv, listingsKey(farmID), listings)
}

// List returns the farm's listings in insertion order.
func (l *Listings) List(ctx context.Context, farmID string) ([]model.Listing, error) {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.load(ctx, farmID)
}

// Add validates and appends a listing with a fresh id.
func (l *Listings) Add(ctx context.Context, farmID string, in model.Listing) (model.Listing, error) {
	if err := validation.Struct(in); err != nil {
		return model.Listing{}, err
	}
	in.ID = uuid.NewString()

	l.mu.Lock()
	defer l.mu.Unlock()
	cur, err := l.load(ctx, farmID)
	if err != nil {
		return model.Listing{}, err
	}
	if err := l.save(ctx, farmID, append(cur, in)); err != nil {
		return model.Listing{}, err
	}
	return in, nil
}

// Update replaces the listing with the same id.
func (l *Listings) Update(ctx context.Context, farmID string, in model.Listing) (model.Listing, error) {
	if err := validation.Struct(in); err != nil {
		return model.Listing{}, err
	}

	l.mu.Lock()
	defer l.mu.Unlock()
	cur, err := l.load(ctx, farmID)
	if err != nil {
		return model.Listing{}, err
	}
	for i := range cur {
		if cur[i].ID == in.ID {
			cur[i] = in
			return in, l.save(ctx, farmID, cur)
		}
	}
	return model.Listing{}, ErrListingNotFound
}

// Delete removes the listing with id.
func (l *Listings) Delete(ctx context.Context, farmID, id string) error {
	l.mu.Lock()
	defer l.mu.Unlock()
	cur, err := l.load(ctx, farmID)
	if err != nil {
		return err
	}
	kept := cur[:0]
	for _, c := range cur {
		if c.ID != id {
			kept = append(kept, c)
		}
	}
	if len(kept) == len(cur) {
		return ErrListingNotFound
	}
	return l.save(ctx, farmID, kept)
}

// SeedListings are the demo crops a new farm starts with.
func SeedListings() []model.Listing {
	return []model.Listing{
		{ID: "1", Name: "Red Tomatoes", Type: model.CropVegetable, CulturalPractice: model.PracticeOrganic, PricePerKg: 40, StockKg: 150},
		{ID: "2", Name: "Golden Wheat", Type: model.CropGrain, CulturalPractice: model.PracticeConventional, PricePerKg: 25, StockKg: 1200},
		{ID: "3", Name: "Granny Smith Apples", Type: model.CropFruit, CulturalPractice: model.PracticeHybrid, PricePerKg: 120, StockKg: 200},
		{ID: "4", Name: "Russet Potatoes", Type: model.CropVegetable, CulturalPractice: model.PracticeConventional, PricePerKg: 20, StockKg: 500},
		{ID: "5", Name: "Red Onions", Type: model.CropVegetable, CulturalPractice: model.PracticeOrganic, PricePerKg: 30, StockKg: 450},
		{ID: "6", Name: "Kent Mangoes", Type: model.CropFruit, CulturalPractice: model.PracticeOrganic, PricePerKg: 80, StockKg: 300},
	}
}

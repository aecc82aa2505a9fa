package catalog

import (
	"cropconnect-backend/internal/model"
)

// Catalog is a read-only, ordered set of crops with unique ids.
type Catalog struct {
	crops   []model.Crop
	byID    map[string]int
	ceiling float64
}

// New normalizes crops and indexes them. Later duplicates of an id are dropped.
func New(crops []model.Crop) *Catalog {
	c := &Catalog{byID: make(map[string]int, len(crops))}
	for _, crop := range crops {
		if _, dup := c.byID[crop.ID]; dup {
			continue
		}
		c.byID[crop.ID] = len(c.crops)
		c.crops = append(c.crops, crop.Normalize())
	}
	c.ceiling = MaxPossiblePrice(c.crops)
	return c
}

// All returns a copy of the catalog in order.
func (c *Catalog) All() []model.Crop {
	out := make([]model.Crop, len(c.crops))
	copy(out, c.crops)
	return out
}

// ByID looks up a crop.
func (c *Catalog) ByID(id string) (model.Crop, bool) {
	i, ok := c.byID[id]
	if !ok {
		return model.Crop{}, false
	}
	return c.crops[i], true
}

// MaxPossiblePrice is computed once per catalog.
func (c *Catalog) MaxPossiblePrice() float64 { return c.ceiling }

// Search applies criteria to the catalog.
func (c *Catalog) Search(cr Criteria) []model.Crop { return Filter(c.crops, cr) }

// Suggest returns up to DefaultSuggestionLimit name matches.
func (c *Catalog) Suggest(prefix string) []model.Crop {
	return Suggest(c.crops, prefix, DefaultSuggestionLimit)
}

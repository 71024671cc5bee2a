// Package catalog provides the static ingredient catalog: a read-only lookup
// of ingredient id to display metadata, loaded once at startup from an
// embedded JSON file.
package catalog

import (
	_ "embed"
	"encoding/json"
	"fmt"
)

//go:embed ingredients.json
var ingredientsJSON []byte

// Category identifies one of the four ingredient groups.
type Category string

const (
	CategoryRice      Category = "rice"
	CategoryProtein   Category = "protein"
	CategoryVegetable Category = "vegetable"
	CategoryGarnish   Category = "garnish"
)

// Categories lists all categories in display order.
var Categories = []Category{CategoryRice, CategoryProtein, CategoryVegetable, CategoryGarnish}

// Ingredient is one immutable catalog entry.
type Ingredient struct {
	// ID is the unique string key referenced by placements.
	ID string `json:"id"`
	// Name is the display label.
	Name string `json:"name"`
	// Category groups the ingredient in the picker panel.
	Category Category `json:"category"`
	// Icon is the emoji rendered on the canvas.
	Icon string `json:"icon"`
	// PrimaryColor is the fill color used by the thumbnail renderer.
	PrimaryColor string `json:"primaryColor"`
	// Width and Height are footprint sizing hints in canvas units.
	Width  float64 `json:"width"`
	Height float64 `json:"height"`
}

// Catalog is the loaded set of ingredient definitions. It is read-only after
// Load returns.
type Catalog struct {
	byID    map[string]Ingredient
	ordered []Ingredient
}

// Load parses the embedded catalog and validates its entries.
func Load() (*Catalog, error) {
	var entries []Ingredient
	if err := json.Unmarshal(ingredientsJSON, &entries); err != nil {
		return nil, fmt.Errorf("parse ingredient catalog: %w", err)
	}

	c := &Catalog{byID: make(map[string]Ingredient, len(entries))}
	for _, ing := range entries {
		if ing.ID == "" || ing.Name == "" {
			return nil, fmt.Errorf("catalog entry missing id or name: %+v", ing)
		}
		if !validCategory(ing.Category) {
			return nil, fmt.Errorf("catalog entry %q has unknown category %q", ing.ID, ing.Category)
		}
		if _, dup := c.byID[ing.ID]; dup {
			return nil, fmt.Errorf("duplicate catalog id %q", ing.ID)
		}
		c.byID[ing.ID] = ing
		c.ordered = append(c.ordered, ing)
	}
	return c, nil
}

func validCategory(cat Category) bool {
	for _, known := range Categories {
		if cat == known {
			return true
		}
	}
	return false
}

// Lookup returns the ingredient definition for id, if it exists.
func (c *Catalog) Lookup(id string) (Ingredient, bool) {
	ing, ok := c.byID[id]
	return ing, ok
}

// All returns the ingredients in file order.
func (c *Catalog) All() []Ingredient {
	out := make([]Ingredient, len(c.ordered))
	copy(out, c.ordered)
	return out
}

// ByCategory returns the ingredients belonging to the given category,
// preserving file order.
func (c *Catalog) ByCategory(cat Category) []Ingredient {
	var out []Ingredient
	for _, ing := range c.ordered {
		if ing.Category == cat {
			out = append(out, ing)
		}
	}
	return out
}

// Len reports the number of catalog entries.
func (c *Catalog) Len() int { return len(c.ordered) }

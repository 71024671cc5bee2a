package gateway

import (
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/ritvikjaiswal02/A-Loving-Lunch/internal/canvas"
	"github.com/ritvikjaiswal02/A-Loving-Lunch/internal/catalog"
	"github.com/ritvikjaiswal02/A-Loving-Lunch/internal/errs"
	"github.com/ritvikjaiswal02/A-Loving-Lunch/internal/models"
)

// maxNameRunes mirrors the server-side limit so a bad name fails before the
// request is sent.
const maxNameRunes = 100

// Serialize turns a canvas snapshot into the wire input for Save. The name
// is validated here so the round trip is skipped for input the server would
// reject anyway.
func Serialize(name, description string, snap canvas.Snapshot, thumbnail string, isPublic bool) (models.BentoBoxInput, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return models.BentoBoxInput{}, fmt.Errorf("%w: name is required", errs.ErrValidation)
	}
	if utf8.RuneCountInString(name) > maxNameRunes {
		return models.BentoBoxInput{}, fmt.Errorf("%w: name exceeds %d characters", errs.ErrValidation, maxNameRunes)
	}

	ingredients := make([]models.PlacedIngredient, 0, len(snap))
	for _, ps := range snap {
		ingredients = append(ingredients, models.PlacedIngredient{
			ID:       ps.IngredientID,
			Name:     ps.Name,
			Category: ps.Category,
			Position: ps.Position,
			Rotation: ps.Rotation,
			Scale:    ps.Scale,
		})
	}

	return models.BentoBoxInput{
		Name:        name,
		Description: description,
		Ingredients: ingredients,
		Thumbnail:   thumbnail,
		IsPublic:    isPublic,
	}, nil
}

// Deserialize rebuilds a snapshot from a stored record. Entries whose
// ingredient id is no longer in the catalog are skipped; the count of
// skipped entries is returned so the caller can tell the user.
func Deserialize(cat *catalog.Catalog, ingredients []models.PlacedIngredient) (canvas.Snapshot, int) {
	snap := make(canvas.Snapshot, 0, len(ingredients))
	skipped := 0
	for _, ing := range ingredients {
		if _, ok := cat.Lookup(ing.ID); !ok {
			skipped++
			continue
		}
		snap = append(snap, canvas.PlacementState{
			IngredientID: ing.ID,
			Name:         ing.Name,
			Category:     ing.Category,
			Position:     ing.Position,
			Rotation:     ing.Rotation,
			Scale:        ing.Scale,
		})
	}
	return snap, skipped
}

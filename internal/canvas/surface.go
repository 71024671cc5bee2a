package canvas

import (
	"fmt"

	"github.com/ritvikjaiswal02/A-Loving-Lunch/internal/catalog"
	"github.com/ritvikjaiswal02/A-Loving-Lunch/internal/errs"
	"github.com/ritvikjaiswal02/A-Loving-Lunch/internal/models"
)

// Surface is the mutable collection of placements plus selection state.
// Insertion order is z-order for rendering. All mutation happens on the
// caller's event loop; the surface holds no locks.
type Surface struct {
	catalog    *catalog.Catalog
	layout     Layout
	placements []*Placement
	nextID     PlacementID
}

// NewSurface creates an empty surface over the given catalog and container
// layout.
func NewSurface(cat *catalog.Catalog, layout Layout) *Surface {
	return &Surface{catalog: cat, layout: layout}
}

// Layout returns the container layout the surface was built with.
func (s *Surface) Layout() Layout { return s.layout }

// AddPlacement appends a new placement for the given ingredient at pos with
// default rotation and scale, marks it the sole selection, and returns its
// id. Fails with errs.ErrUnknownIngredient if the id is not in the catalog.
func (s *Surface) AddPlacement(ingredientID string, pos models.Point) (PlacementID, error) {
	ing, ok := s.catalog.Lookup(ingredientID)
	if !ok {
		return 0, fmt.Errorf("%w: %q", errs.ErrUnknownIngredient, ingredientID)
	}

	s.deselectAll()
	p := &Placement{
		ID:           s.nextID,
		IngredientID: ing.ID,
		Name:         ing.Name,
		Category:     string(ing.Category),
		Position:     pos,
		Rotation:     0,
		Scale:        models.Vec{X: 1, Y: 1},
		Selected:     true,
	}
	s.nextID++
	s.placements = append(s.placements, p)
	return p.ID, nil
}

// MovePlacement updates the placement's position and recomputes its
// advisory compartment highlight. Unknown ids are ignored.
func (s *Surface) MovePlacement(id PlacementID, pos models.Point) {
	p := s.find(id)
	if p == nil {
		return
	}
	p.Position = pos
	if comp, inside := s.layout.Locate(pos); inside {
		p.Highlight = comp
	} else {
		p.Highlight = ""
	}
}

// EndGesture clears all transient highlight state. Called when a drag
// gesture completes.
func (s *Surface) EndGesture() {
	for _, p := range s.placements {
		p.Highlight = ""
	}
}

// RemovePlacement deletes the placement. A no-op when the id is absent.
func (s *Surface) RemovePlacement(id PlacementID) {
	for i, p := range s.placements {
		if p.ID == id {
			s.placements = append(s.placements[:i], s.placements[i+1:]...)
			return
		}
	}
}

// SelectAll marks every placement selected.
func (s *Surface) SelectAll() {
	for _, p := range s.placements {
		p.Selected = true
	}
}

// Select makes the given placement the sole selection. Unknown ids clear
// the selection entirely.
func (s *Surface) Select(id PlacementID) {
	s.deselectAll()
	if p := s.find(id); p != nil {
		p.Selected = true
	}
}

// Clear removes all placements.
func (s *Surface) Clear() {
	s.placements = nil
}

// Placements returns the placements in z-order. The slice is a copy but the
// pointers reference live state; callers must not retain them across
// mutations.
func (s *Surface) Placements() []*Placement {
	out := make([]*Placement, len(s.placements))
	copy(out, s.placements)
	return out
}

// Get returns the placement with the given id, or nil.
func (s *Surface) Get(id PlacementID) *Placement { return s.find(id) }

// Len reports the number of placements.
func (s *Surface) Len() int { return len(s.placements) }

// Snapshot produces an order-preserving deep copy of the persisted fields
// of every placement. Transient selection and highlight state is excluded.
func (s *Surface) Snapshot() Snapshot {
	snap := make(Snapshot, 0, len(s.placements))
	for _, p := range s.placements {
		snap = append(snap, PlacementState{
			IngredientID: p.IngredientID,
			Name:         p.Name,
			Category:     p.Category,
			Position:     p.Position,
			Rotation:     p.Rotation,
			Scale:        p.Scale,
		})
	}
	return snap
}

// Restore replaces the entire placement collection with a deep copy
// reconstructed from the snapshot, preserving order. Selection is cleared;
// fresh placement ids are assigned.
func (s *Surface) Restore(snap Snapshot) {
	s.placements = make([]*Placement, 0, len(snap))
	for _, st := range snap {
		p := &Placement{
			ID:           s.nextID,
			IngredientID: st.IngredientID,
			Name:         st.Name,
			Category:     st.Category,
			Position:     st.Position,
			Rotation:     st.Rotation,
			Scale:        st.Scale,
		}
		s.nextID++
		s.placements = append(s.placements, p)
	}
}

func (s *Surface) find(id PlacementID) *Placement {
	for _, p := range s.placements {
		if p.ID == id {
			return p
		}
	}
	return nil
}

func (s *Surface) deselectAll() {
	for _, p := range s.placements {
		p.Selected = false
	}
}

package canvas

import "github.com/ritvikjaiswal02/A-Loving-Lunch/internal/models"

// PlacementID identifies one placement within a surface. IDs are unique for
// the life of the surface and are never reused, including across Restore.
type PlacementID int

// Placement is one positioned instance of a catalog ingredient. It is owned
// exclusively by a Surface and mutated in place by gestures. Selected and
// Highlight are transient interaction state and are never persisted.
type Placement struct {
	ID           PlacementID
	IngredientID string
	Name         string
	Category     string
	Position     models.Point
	Rotation     float64
	Scale        models.Vec
	Selected     bool
	// Highlight names the compartment the placement is currently over
	// during a drag, or "" when over neither. Advisory only: placements
	// are never snapped or constrained to a compartment.
	Highlight CompartmentID
}

// PlacementState is the persisted subset of a placement used in snapshots.
type PlacementState struct {
	IngredientID string
	Name         string
	Category     string
	Position     models.Point
	Rotation     float64
	Scale        models.Vec
}

// Snapshot is a deep, order-preserving copy of a surface's persisted state.
type Snapshot []PlacementState

// Clone returns an independent copy of the snapshot.
func (s Snapshot) Clone() Snapshot {
	if s == nil {
		return nil
	}
	out := make(Snapshot, len(s))
	copy(out, s)
	return out
}

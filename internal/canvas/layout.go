// Package canvas implements the placement model: ingredient instances
// positioned on a canvas, the two-compartment container geometry, and the
// mutable surface that owns them.
package canvas

import "github.com/ritvikjaiswal02/A-Loving-Lunch/internal/models"

// CompartmentID names one of the two container compartments.
type CompartmentID string

const (
	CompartmentLeft  CompartmentID = "left"
	CompartmentRight CompartmentID = "right"
)

// Container geometry constants: a fixed interior margin and the vertical
// divider thickness splitting the box down the middle.
const (
	interiorMargin = 15.0
	dividerWidth   = 6.0
)

// Rect is an axis-aligned rectangle in canvas space.
type Rect struct {
	X      float64
	Y      float64
	Width  float64
	Height float64
}

// Contains reports whether p lies strictly inside the rectangle. Points on
// the boundary are outside, so the divider and margin zones belong to
// neither compartment.
func (r Rect) Contains(p models.Point) bool {
	return p.X > r.X && p.X < r.X+r.Width &&
		p.Y > r.Y && p.Y < r.Y+r.Height
}

// Layout holds the two compartment rectangles derived from the container
// bounds. The container dimensions are fixed for the life of a surface, so
// the layout is computed once at construction.
type Layout struct {
	Container Rect
	Left      Rect
	Right     Rect
}

// NewLayout splits the container interior into left and right compartments
// around a vertical divider centered at x0 + w/2. The compartments never
// overlap: the left one ends half a divider (plus padding) before the
// center line and the right one starts the same distance after it.
func NewLayout(x0, y0, w, h float64) Layout {
	pad := interiorMargin + dividerWidth - 1 // 20: margin plus divider clearance per side
	return Layout{
		Container: Rect{X: x0, Y: y0, Width: w, Height: h},
		Left: Rect{
			X:      x0 + interiorMargin,
			Y:      y0 + interiorMargin,
			Width:  w/2 - pad,
			Height: h - 2*interiorMargin,
		},
		Right: Rect{
			X:      x0 + w/2 + dividerWidth - 1,
			Y:      y0 + interiorMargin,
			Width:  w/2 - pad,
			Height: h - 2*interiorMargin,
		},
	}
}

// Locate returns the compartment whose bounds strictly contain p. At most
// one compartment can match; points in the divider or margin zone match
// neither.
func (l Layout) Locate(p models.Point) (CompartmentID, bool) {
	if l.Left.Contains(p) {
		return CompartmentLeft, true
	}
	if l.Right.Contains(p) {
		return CompartmentRight, true
	}
	return "", false
}

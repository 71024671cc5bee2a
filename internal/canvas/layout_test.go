package canvas

import (
	"testing"

	"github.com/ritvikjaiswal02/A-Loving-Lunch/internal/models"
)

// The reference container used by the client: origin (100,100), 600x400.
func testLayout() Layout {
	return NewLayout(100, 100, 600, 400)
}

func TestNewLayout_Bounds(t *testing.T) {
	l := testLayout()

	if l.Left.X != 115 || l.Left.Y != 115 || l.Left.Width != 280 || l.Left.Height != 370 {
		t.Errorf("unexpected left bounds: %+v", l.Left)
	}
	if l.Right.X != 405 || l.Right.Y != 115 || l.Right.Width != 280 || l.Right.Height != 370 {
		t.Errorf("unexpected right bounds: %+v", l.Right)
	}
}

func TestNewLayout_CompartmentsDoNotOverlap(t *testing.T) {
	l := testLayout()
	leftEnd := l.Left.X + l.Left.Width
	if leftEnd > l.Right.X {
		t.Errorf("left compartment ends at %v, right begins at %v", leftEnd, l.Right.X)
	}
}

func TestLocate(t *testing.T) {
	l := testLayout()

	tests := []struct {
		name   string
		point  models.Point
		want   CompartmentID
		inside bool
	}{
		{"center of left", models.Point{X: 250, Y: 300}, CompartmentLeft, true},
		{"center of right", models.Point{X: 550, Y: 300}, CompartmentRight, true},
		{"divider center line", models.Point{X: 400, Y: 300}, "", false},
		{"top margin", models.Point{X: 250, Y: 105}, "", false},
		{"outside container", models.Point{X: 50, Y: 50}, "", false},
		{"left edge is exclusive", models.Point{X: 115, Y: 300}, "", false},
		{"just inside left edge", models.Point{X: 116, Y: 300}, CompartmentLeft, true},
		{"just inside right compartment", models.Point{X: 406, Y: 300}, CompartmentRight, true},
		{"between compartments", models.Point{X: 400, Y: 115}, "", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, inside := l.Locate(tt.point)
			if inside != tt.inside || got != tt.want {
				t.Errorf("Locate(%+v) = (%q, %v), want (%q, %v)", tt.point, got, inside, tt.want, tt.inside)
			}
		})
	}
}

// Sweeping a grid across the whole container, a point is never claimed by
// both compartments.
func TestLocate_AtMostOneCompartment(t *testing.T) {
	l := testLayout()
	for x := 90.0; x <= 710; x += 5 {
		for y := 90.0; y <= 510; y += 5 {
			p := models.Point{X: x, Y: y}
			if l.Left.Contains(p) && l.Right.Contains(p) {
				t.Fatalf("point %+v inside both compartments", p)
			}
		}
	}
}

package thumbnail

import (
	"bytes"
	"strings"
	"testing"

	"github.com/ritvikjaiswal02/A-Loving-Lunch/internal/canvas"
	"github.com/ritvikjaiswal02/A-Loving-Lunch/internal/catalog"
	"github.com/ritvikjaiswal02/A-Loving-Lunch/internal/models"
)

var pngMagic = []byte{0x89, 'P', 'N', 'G', '\r', '\n', 0x1a, '\n'}

func testSnapshot() canvas.Snapshot {
	return canvas.Snapshot{
		{
			IngredientID: "onigiri",
			Name:         "Onigiri",
			Category:     "rice",
			Position:     models.Point{X: 250, Y: 300},
			Scale:        models.Vec{X: 1, Y: 1},
		},
		{
			IngredientID: "long-gone", // unknown ids still render with fallbacks
			Name:         "Mystery",
			Position:     models.Point{X: 550, Y: 300},
			Rotation:     30,
			Scale:        models.Vec{X: 2, Y: 1},
		},
	}
}

func TestRender_ProducesPNG(t *testing.T) {
	cat, err := catalog.Load()
	if err != nil {
		t.Fatalf("catalog: %v", err)
	}
	layout := canvas.NewLayout(100, 100, 600, 400)

	png, err := Render(testSnapshot(), layout, cat, 800, 600)
	if err != nil {
		t.Fatalf("Render: %v", err)
	}
	if !bytes.HasPrefix(png, pngMagic) {
		t.Errorf("output does not start with the PNG signature")
	}
}

func TestDataURL_Prefix(t *testing.T) {
	cat, err := catalog.Load()
	if err != nil {
		t.Fatalf("catalog: %v", err)
	}
	layout := canvas.NewLayout(100, 100, 600, 400)

	url, err := DataURL(canvas.Snapshot{}, layout, cat, 400, 300)
	if err != nil {
		t.Fatalf("DataURL: %v", err)
	}
	if !strings.HasPrefix(url, "data:image/png;base64,") {
		t.Errorf("unexpected data URL prefix: %.40s", url)
	}
}

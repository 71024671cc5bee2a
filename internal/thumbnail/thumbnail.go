// Package thumbnail renders a PNG preview of a bento box arrangement.
// The preview is sent to the server as a base64 data URL on save.
package thumbnail

import (
	"bytes"
	"encoding/base64"
	"fmt"

	"github.com/fogleman/gg"
	"github.com/golang/freetype/truetype"
	"golang.org/x/image/font/gofont/goregular"

	"github.com/ritvikjaiswal02/A-Loving-Lunch/internal/canvas"
	"github.com/ritvikjaiswal02/A-Loving-Lunch/internal/catalog"
)

// Palette lifted from the editor: warm wood tones for the container,
// beige for the compartment wells.
const (
	colorBackground  = "#FFF8F0"
	colorBox         = "#D4A574"
	colorBoxStroke   = "#A67C52"
	colorInner       = "#E8D4B8"
	colorCompartment = "#F5F5DC"
	colorDivider     = "#A67C52"
	colorFallback    = "#CCCCCC"
)

const labelFontSize = 11

// Render draws the snapshot over the container layout and returns the
// encoded PNG. Canvas coordinates map 1:1 to pixels; width and height are
// the full canvas dimensions, not the container's.
func Render(snap canvas.Snapshot, layout canvas.Layout, cat *catalog.Catalog, width, height int) ([]byte, error) {
	dc := gg.NewContext(width, height)

	dc.SetHexColor(colorBackground)
	dc.Clear()

	drawContainer(dc, layout)

	font, err := truetype.Parse(goregular.TTF)
	if err != nil {
		return nil, fmt.Errorf("parse label font: %w", err)
	}
	face := truetype.NewFace(font, &truetype.Options{Size: labelFontSize})
	dc.SetFontFace(face)

	for _, st := range snap {
		drawPlacement(dc, st, cat)
	}

	var buf bytes.Buffer
	if err := dc.EncodePNG(&buf); err != nil {
		return nil, fmt.Errorf("encode thumbnail: %w", err)
	}
	return buf.Bytes(), nil
}

// DataURL renders the snapshot and wraps the PNG in a base64 data URL,
// the format the record's thumbnail field stores.
func DataURL(snap canvas.Snapshot, layout canvas.Layout, cat *catalog.Catalog, width, height int) (string, error) {
	png, err := Render(snap, layout, cat, width, height)
	if err != nil {
		return "", err
	}
	return "data:image/png;base64," + base64.StdEncoding.EncodeToString(png), nil
}

func drawContainer(dc *gg.Context, layout canvas.Layout) {
	box := layout.Container

	dc.SetHexColor(colorBox)
	dc.DrawRoundedRectangle(box.X, box.Y, box.Width, box.Height, 10)
	dc.FillPreserve()
	dc.SetHexColor(colorBoxStroke)
	dc.SetLineWidth(6)
	dc.Stroke()

	dc.SetHexColor(colorInner)
	dc.DrawRoundedRectangle(box.X+10, box.Y+10, box.Width-20, box.Height-20, 5)
	dc.Fill()

	dc.SetHexColor(colorCompartment)
	for _, comp := range []canvas.Rect{layout.Left, layout.Right} {
		dc.DrawRoundedRectangle(comp.X, comp.Y, comp.Width, comp.Height, 3)
		dc.Fill()
	}

	dc.SetHexColor(colorDivider)
	dc.DrawRectangle(box.X+box.Width/2-3, box.Y+15, 6, box.Height-30)
	dc.Fill()
}

func drawPlacement(dc *gg.Context, st canvas.PlacementState, cat *catalog.Catalog) {
	w, h := 40.0, 40.0
	color := colorFallback
	if ing, ok := cat.Lookup(st.IngredientID); ok {
		w, h = ing.Width, ing.Height
		color = ing.PrimaryColor
	}
	w *= st.Scale.X
	h *= st.Scale.Y

	dc.Push()
	dc.RotateAbout(gg.Radians(st.Rotation), st.Position.X, st.Position.Y)

	dc.SetHexColor(color)
	dc.DrawEllipse(st.Position.X, st.Position.Y, w/2, h/2)
	dc.FillPreserve()
	dc.SetHexColor(colorBoxStroke)
	dc.SetLineWidth(1.5)
	dc.Stroke()

	dc.SetHexColor("#333333")
	dc.DrawStringAnchored(st.Name, st.Position.X, st.Position.Y+h/2+8, 0.5, 0.5)

	dc.Pop()
}

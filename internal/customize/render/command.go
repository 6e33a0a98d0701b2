// Package render turns a customization state into pixels in two stages:
// Compose produces a flat drawing-command list as a pure function of its
// inputs, and a Raster backend replays the commands onto a bitmap. The
// split keeps composition unit-testable without a graphics context.
package render

import (
	"strings"

	"github.com/customcraft/customcraft-backend/internal/customize"
	"github.com/customcraft/customcraft-backend/internal/modules/catalog"
)

// Canvas dimensions. Every preview is drawn on the same square bitmap.
const (
	CanvasWidth  = 500
	CanvasHeight = 500
)

// Template is the product-side input to the renderer.
type Template struct {
	Type    catalog.ProductType
	Options catalog.Options
}

// Command is one drawing instruction. The set is closed; backends switch
// over the concrete types.
type Command interface{ isCommand() }

// FillBackground fills the whole canvas.
type FillBackground struct{ Color string }

// StrokePolyline strokes connected line segments.
type StrokePolyline struct {
	Color  string
	Width  float64
	Points []customize.Point
}

// StrokeCircle strokes a circle outline.
type StrokeCircle struct {
	Center customize.Point
	Radius float64
	Width  float64
	Color  string
}

// StrokeRect strokes a rectangle outline. Dash > 0 draws a dashed line
// with that on/off length.
type StrokeRect struct {
	X, Y, W, H float64
	Color      string
	Width      float64
	Dash       float64
}

// FillPlate fills a rounded rectangle, optionally with a diagonal shine
// gradient on top.
type FillPlate struct {
	X, Y, W, H float64
	Radius     float64
	Fill       string
	Stroke     string
	Shine      bool
}

// DrawText draws a centered text run. Shadow adds the engraved look.
type DrawText struct {
	Text   string
	X, Y   float64
	Size   int
	Color  string
	Font   string
	Shadow bool
}

// PlaceImage draws an uploaded image centered at (X, Y), scaled.
type PlaceImage struct {
	Data  []byte
	X, Y  float64
	Scale float64
}

func (FillBackground) isCommand() {}
func (StrokePolyline) isCommand() {}
func (StrokeCircle) isCommand()   {}
func (StrokeRect) isCommand()     {}
func (FillPlate) isCommand()      {}
func (DrawText) isCommand()       {}
func (PlaceImage) isCommand()     {}

// Compose builds the command list for a product template and state. It is
// deterministic: identical inputs always yield an identical list. Fields
// the product's options do not declare are ignored.
func Compose(t Template, state customize.State) []Command {
	state = customize.Gate(t.Options, state)
	switch customize.EditorFor(t.Type) {
	case customize.EditorImage:
		return composeImage(state)
	case customize.EditorEngraving:
		return composeEngraving(state)
	default:
		return composeText(state)
	}
}

// composeText follows the apparel preview: product-colored background, a
// shirt silhouette, and contrast-colored text.
func composeText(state customize.State) []Command {
	bg := state.Color
	if bg == "" {
		bg = "#FFFFFF"
	}
	cmds := []Command{
		FillBackground{Color: bg},
		StrokePolyline{Color: "#cccccc", Width: 2, Points: []customize.Point{
			{X: 100, Y: 100}, {X: 100, Y: 400}, {X: 400, Y: 400}, {X: 400, Y: 100},
		}},
		StrokePolyline{Color: "#cccccc", Width: 2, Points: []customize.Point{
			{X: 200, Y: 100}, {X: 200, Y: 50}, {X: 300, Y: 50}, {X: 300, Y: 100},
		}},
		StrokePolyline{Color: "#cccccc", Width: 2, Points: []customize.Point{
			{X: 100, Y: 100}, {X: 50, Y: 150}, {X: 50, Y: 200}, {X: 100, Y: 200},
		}},
		StrokePolyline{Color: "#cccccc", Width: 2, Points: []customize.Point{
			{X: 400, Y: 100}, {X: 450, Y: 150}, {X: 450, Y: 200}, {X: 400, Y: 200},
		}},
	}

	if state.Text != "" {
		textColor := "#FFFFFF"
		if bg == "#FFFFFF" {
			textColor = "#000000"
		}
		pos := customize.Point{X: 250, Y: 250}
		if state.TextPosition != nil {
			pos = *state.TextPosition
		}
		size := state.FontSize
		if size <= 0 {
			size = 48
		}
		font := state.Font
		if font == "" {
			font = "Arial"
		}
		cmds = append(cmds, DrawText{
			Text: state.Text, X: pos.X, Y: pos.Y,
			Size: size, Color: textColor, Font: font,
		})
	}
	return cmds
}

// composeImage follows the photo-product preview: fabric background with a
// stitched border and the placed upload, or a placeholder prompt.
func composeImage(state customize.State) []Command {
	cmds := []Command{
		FillBackground{Color: "#f5f5f5"},
		StrokeRect{X: 10, Y: 10, W: CanvasWidth - 20, H: CanvasHeight - 20, Color: "#cccccc", Width: 3},
		StrokeRect{X: 30, Y: 30, W: CanvasWidth - 60, H: CanvasHeight - 60, Color: "#e0e0e0", Width: 1, Dash: 5},
	}

	if len(state.Image) > 0 {
		pos := customize.Placement{X: 250, Y: 250, Scale: 1}
		if state.ImagePos != nil {
			pos = *state.ImagePos
		}
		cmds = append(cmds, PlaceImage{Data: state.Image, X: pos.X, Y: pos.Y, Scale: pos.Scale})
		return cmds
	}

	return append(cmds, DrawText{
		Text: "Upload your image", X: CanvasWidth / 2, Y: CanvasHeight / 2,
		Size: 24, Color: "#999999", Font: "Arial",
	})
}

// composeEngraving follows the jewelry preview: dark backdrop, chain links,
// a metal plate with a shine gradient, and shadowed uppercase text.
func composeEngraving(state customize.State) []Command {
	metal := state.Color
	if metal == "" {
		metal = "#FFD700"
	}
	cmds := []Command{FillBackground{Color: "#1a1a1a"}}
	for i := 0; i < 5; i++ {
		cmds = append(cmds, StrokeCircle{
			Center: customize.Point{X: float64(100 + i*80), Y: 150},
			Radius: 20, Width: 8, Color: metal,
		})
	}
	cmds = append(cmds, FillPlate{
		X: 150, Y: 220, W: 200, H: 80, Radius: 10,
		Fill: metal, Stroke: "#000000", Shine: true,
	})

	if state.Text != "" {
		font := state.Font
		if font == "" {
			font = "Script"
		}
		cmds = append(cmds, DrawText{
			Text: strings.ToUpper(state.Text), X: 250, Y: 260,
			Size: 36, Color: "#000000", Font: font, Shadow: true,
		})
	}
	return cmds
}

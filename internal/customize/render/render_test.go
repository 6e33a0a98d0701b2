package render

import (
	"bytes"
	"image"
	"image/color"
	"image/png"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/customcraft/customcraft-backend/internal/customize"
	"github.com/customcraft/customcraft-backend/internal/modules/catalog"
)

func tshirtTemplate() Template {
	return Template{
		Type: catalog.TypeTShirt,
		Options: catalog.Options{
			Colors:    []string{"#FFFFFF", "#000000"},
			Sizes:     []string{"S", "M", "L"},
			Fonts:     []string{"Arial"},
			AllowText: true,
		},
	}
}

func pillowTemplate() Template {
	return Template{
		Type:    catalog.TypePillow,
		Options: catalog.Options{Sizes: []string{"18x18"}, AllowImage: true},
	}
}

func chainTemplate() Template {
	return Template{
		Type: catalog.TypeChain,
		Options: catalog.Options{
			Colors:         []string{"#FFD700", "#C0C0C0"},
			Fonts:          []string{"Script"},
			AllowEngraving: true,
		},
	}
}

func testPNG(t *testing.T, w, h int, c color.NRGBA) []byte {
	t.Helper()
	img := image.NewNRGBA(image.Rect(0, 0, w, h))
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			img.SetNRGBA(x, y, c)
		}
	}
	var buf bytes.Buffer
	require.NoError(t, png.Encode(&buf, img))
	return buf.Bytes()
}

func TestComposeIsDeterministic(t *testing.T) {
	state := customize.State{Color: "#000000", Text: "HELLO", FontSize: 48}
	a := Compose(tshirtTemplate(), state)
	b := Compose(tshirtTemplate(), state)
	assert.Equal(t, a, b)
}

func TestThumbnailIsDeterministic(t *testing.T) {
	state := customize.State{
		Color:        "#FF6B6B",
		Text:         "Your Text Here",
		Font:         "Arial",
		FontSize:     48,
		TextPosition: &customize.Point{X: 250, Y: 250},
	}
	first, err := Thumbnail(tshirtTemplate(), state)
	require.NoError(t, err)
	second, err := Thumbnail(tshirtTemplate(), state)
	require.NoError(t, err)
	assert.Equal(t, first, second, "identical inputs must yield identical bytes")
}

func TestTextEditorBackgroundUsesChosenColor(t *testing.T) {
	img := Render(tshirtTemplate(), customize.State{Color: "#000000"})
	// A corner pixel sits outside the silhouette and any text.
	assert.Equal(t, color.NRGBA{A: 0xFF}, img.NRGBAAt(2, 2))

	img = Render(tshirtTemplate(), customize.State{Color: "#FF6B6B"})
	assert.Equal(t, color.NRGBA{R: 0xFF, G: 0x6B, B: 0x6B, A: 0xFF}, img.NRGBAAt(2, 2))
}

func TestTextColorContrastsWithBackground(t *testing.T) {
	cmds := Compose(tshirtTemplate(), customize.State{Color: "#FFFFFF", Text: "HI"})
	text := findText(t, cmds)
	assert.Equal(t, "#000000", text.Color, "black text on a white shirt")

	cmds = Compose(tshirtTemplate(), customize.State{Color: "#000000", Text: "HI"})
	text = findText(t, cmds)
	assert.Equal(t, "#FFFFFF", text.Color, "white text on anything else")
}

func TestTextEditorOmitsTextCommandWhenEmpty(t *testing.T) {
	for _, cmd := range Compose(tshirtTemplate(), customize.State{Color: "#FFFFFF"}) {
		_, isText := cmd.(DrawText)
		assert.False(t, isText)
	}
}

func TestImageEditorPlaceholderWithoutImage(t *testing.T) {
	cmds := Compose(pillowTemplate(), customize.State{})
	text := findText(t, cmds)
	assert.Equal(t, "Upload your image", text.Text)
}

func TestImageEditorPlacesUpload(t *testing.T) {
	data := testPNG(t, 100, 100, color.NRGBA{R: 0x11, G: 0x22, B: 0x33, A: 0xFF})
	state := customize.State{
		Image:    data,
		ImagePos: &customize.Placement{X: 250, Y: 250, Scale: 1},
	}
	cmds := Compose(pillowTemplate(), state)
	var placed *PlaceImage
	for _, cmd := range cmds {
		if p, ok := cmd.(PlaceImage); ok {
			placed = &p
		}
	}
	require.NotNil(t, placed)
	assert.Equal(t, 250.0, placed.X)
	assert.Equal(t, 1.0, placed.Scale)

	// The upload is drawn at half its native size around the center.
	img := Render(pillowTemplate(), state)
	assert.Equal(t, color.NRGBA{R: 0x11, G: 0x22, B: 0x33, A: 0xFF}, img.NRGBAAt(250, 250))
	assert.NotEqual(t, color.NRGBA{R: 0x11, G: 0x22, B: 0x33, A: 0xFF}, img.NRGBAAt(150, 150))
}

func TestEngravingComposition(t *testing.T) {
	cmds := Compose(chainTemplate(), customize.State{Text: "sophie", Color: "#C0C0C0"})

	var circles int
	var plate *FillPlate
	for _, cmd := range cmds {
		switch c := cmd.(type) {
		case StrokeCircle:
			circles++
			assert.Equal(t, "#C0C0C0", c.Color)
		case FillPlate:
			plate = &c
		}
	}
	assert.Equal(t, 5, circles, "five chain links")
	require.NotNil(t, plate)
	assert.Equal(t, "#C0C0C0", plate.Fill)
	assert.True(t, plate.Shine)

	text := findText(t, cmds)
	assert.Equal(t, "SOPHIE", text.Text, "engraving is uppercased")
	assert.True(t, text.Shadow)
	assert.Equal(t, "#000000", text.Color)
}

func TestUndeclaredFieldsDoNotAffectOutput(t *testing.T) {
	// The chain declares no image support; smuggling one in changes nothing.
	clean := Compose(chainTemplate(), customize.State{Text: "AVA"})
	dirty := Compose(chainTemplate(), customize.State{
		Text:     "AVA",
		Image:    testPNG(t, 10, 10, color.NRGBA{A: 0xFF}),
		ImagePos: &customize.Placement{X: 9, Y: 9, Scale: 2},
		Size:     "XL",
	})
	assert.Equal(t, clean, dirty)
}

func TestRenderSurvivesUndecodableImage(t *testing.T) {
	state := customize.State{Image: []byte("not an image")}
	assert.NotPanics(t, func() { Render(pillowTemplate(), state) })
}

func findText(t *testing.T, cmds []Command) DrawText {
	t.Helper()
	for _, cmd := range cmds {
		if text, ok := cmd.(DrawText); ok {
			return text
		}
	}
	t.Fatal("no DrawText command found")
	return DrawText{}
}

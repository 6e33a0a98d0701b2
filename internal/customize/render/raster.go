package render

import (
	"bytes"
	"image"
	"image/color"
	"image/draw"
	"image/png"
	"math"

	"github.com/disintegration/imaging"
	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/math/fixed"

	"github.com/customcraft/customcraft-backend/internal/customize"
)

// Raster replays a command list onto a fixed-size bitmap. A fresh Raster is
// a blank canvas; Apply may be called with successive command lists, though
// the renderer re-derives everything each frame.
type Raster struct {
	img *image.NRGBA
}

func NewRaster() *Raster {
	return &Raster{img: image.NewNRGBA(image.Rect(0, 0, CanvasWidth, CanvasHeight))}
}

// Image returns the current bitmap.
func (r *Raster) Image() *image.NRGBA { return r.img }

// Apply draws every command in order.
func (r *Raster) Apply(cmds []Command) {
	for _, c := range cmds {
		switch cmd := c.(type) {
		case FillBackground:
			draw.Draw(r.img, r.img.Bounds(), image.NewUniform(parseHex(cmd.Color)), image.Point{}, draw.Src)
		case StrokePolyline:
			col := parseHex(cmd.Color)
			for i := 1; i < len(cmd.Points); i++ {
				r.line(cmd.Points[i-1], cmd.Points[i], cmd.Width, col)
			}
		case StrokeCircle:
			r.circle(cmd.Center, cmd.Radius, cmd.Width, parseHex(cmd.Color))
		case StrokeRect:
			r.rect(cmd, parseHex(cmd.Color))
		case FillPlate:
			r.plate(cmd)
		case DrawText:
			r.text(cmd)
		case PlaceImage:
			r.place(cmd)
		}
	}
}

// Render composes and rasterizes in one call.
func Render(t Template, state customize.State) *image.NRGBA {
	r := NewRaster()
	r.Apply(Compose(t, state))
	return r.img
}

// Thumbnail renders the preview and encodes it as PNG for cart storage.
func Thumbnail(t Template, state customize.State) ([]byte, error) {
	var buf bytes.Buffer
	if err := png.Encode(&buf, Render(t, state)); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// ── primitives ───────────────────────────────────────────────────────────────

// parseHex reads #RRGGBB. Non-hex values (the catalog has a "Holographic"
// color) degrade to a neutral gray.
func parseHex(s string) color.NRGBA {
	fallback := color.NRGBA{R: 0xDD, G: 0xDD, B: 0xDD, A: 0xFF}
	if len(s) != 7 || s[0] != '#' {
		return fallback
	}
	var v [3]uint8
	for i := 0; i < 3; i++ {
		hi, ok1 := hexDigit(s[1+i*2])
		lo, ok2 := hexDigit(s[2+i*2])
		if !ok1 || !ok2 {
			return fallback
		}
		v[i] = hi<<4 | lo
	}
	return color.NRGBA{R: v[0], G: v[1], B: v[2], A: 0xFF}
}

func hexDigit(b byte) (uint8, bool) {
	switch {
	case b >= '0' && b <= '9':
		return b - '0', true
	case b >= 'a' && b <= 'f':
		return b - 'a' + 10, true
	case b >= 'A' && b <= 'F':
		return b - 'A' + 10, true
	}
	return 0, false
}

// brush stamps a filled square of side w centered on (x, y).
func (r *Raster) brush(x, y, w float64, col color.NRGBA) {
	half := w / 2
	for py := int(math.Floor(y - half)); py <= int(math.Ceil(y+half)); py++ {
		for px := int(math.Floor(x - half)); px <= int(math.Ceil(x+half)); px++ {
			if image.Pt(px, py).In(r.img.Bounds()) {
				r.img.SetNRGBA(px, py, col)
			}
		}
	}
}

func (r *Raster) line(a, b customize.Point, width float64, col color.NRGBA) {
	dx, dy := b.X-a.X, b.Y-a.Y
	dist := math.Hypot(dx, dy)
	steps := int(dist) + 1
	for i := 0; i <= steps; i++ {
		t := float64(i) / float64(steps)
		r.brush(a.X+dx*t, a.Y+dy*t, width, col)
	}
}

func (r *Raster) circle(center customize.Point, radius, width float64, col color.NRGBA) {
	steps := int(2*math.Pi*radius*2) + 8
	for i := 0; i < steps; i++ {
		theta := 2 * math.Pi * float64(i) / float64(steps)
		r.brush(center.X+radius*math.Cos(theta), center.Y+radius*math.Sin(theta), width, col)
	}
}

func (r *Raster) rect(cmd StrokeRect, col color.NRGBA) {
	corners := []customize.Point{
		{X: cmd.X, Y: cmd.Y},
		{X: cmd.X + cmd.W, Y: cmd.Y},
		{X: cmd.X + cmd.W, Y: cmd.Y + cmd.H},
		{X: cmd.X, Y: cmd.Y + cmd.H},
		{X: cmd.X, Y: cmd.Y},
	}
	for i := 1; i < len(corners); i++ {
		if cmd.Dash > 0 {
			r.dashedLine(corners[i-1], corners[i], cmd.Width, cmd.Dash, col)
		} else {
			r.line(corners[i-1], corners[i], cmd.Width, col)
		}
	}
}

func (r *Raster) dashedLine(a, b customize.Point, width, dash float64, col color.NRGBA) {
	dx, dy := b.X-a.X, b.Y-a.Y
	dist := math.Hypot(dx, dy)
	steps := int(dist) + 1
	for i := 0; i <= steps; i++ {
		t := float64(i) / float64(steps)
		// Alternate dash-length on/off runs along the line.
		if int(t*dist/dash)%2 == 0 {
			r.brush(a.X+dx*t, a.Y+dy*t, width, col)
		}
	}
}

func insideRounded(px, py, x, y, w, h, radius float64) bool {
	if px < x || px > x+w || py < y || py > y+h {
		return false
	}
	// Distance to the nearest corner-arc center; points in the central
	// cross clamp onto themselves and always pass.
	cx := math.Max(x+radius, math.Min(px, x+w-radius))
	cy := math.Max(y+radius, math.Min(py, y+h-radius))
	return math.Hypot(px-cx, py-cy) <= radius
}

func (r *Raster) plate(cmd FillPlate) {
	fill := parseHex(cmd.Fill)
	stroke := parseHex(cmd.Stroke)
	const strokeWidth = 2

	for py := int(cmd.Y) - 1; py <= int(cmd.Y+cmd.H)+1; py++ {
		for px := int(cmd.X) - 1; px <= int(cmd.X+cmd.W)+1; px++ {
			fx, fy := float64(px), float64(py)
			if !insideRounded(fx, fy, cmd.X, cmd.Y, cmd.W, cmd.H, cmd.Radius) {
				continue
			}
			col := fill
			inner := insideRounded(fx, fy,
				cmd.X+strokeWidth, cmd.Y+strokeWidth,
				cmd.W-2*strokeWidth, cmd.H-2*strokeWidth,
				math.Max(cmd.Radius-strokeWidth, 0))
			if !inner {
				col = stroke
			} else if cmd.Shine {
				t := ((fx-cmd.X)/cmd.W + (fy-cmd.Y)/cmd.H) / 2
				col = shine(col, t)
			}
			if image.Pt(px, py).In(r.img.Bounds()) {
				r.img.SetNRGBA(px, py, col)
			}
		}
	}
}

// shine applies the diagonal highlight gradient: white fading out over the
// first half, black fading in over the second.
func shine(base color.NRGBA, t float64) color.NRGBA {
	if t < 0.5 {
		a := 0.3 + (0.05-0.3)*(t/0.5)
		return blend(base, 255, 255, 255, a)
	}
	faded := blend(base, 255, 255, 255, 0.05*(1-(t-0.5)/0.5))
	return blend(faded, 0, 0, 0, 0.2*(t-0.5)/0.5)
}

func blend(base color.NRGBA, cr, cg, cb uint8, alpha float64) color.NRGBA {
	mix := func(b, c uint8) uint8 {
		return uint8(float64(b)*(1-alpha) + float64(c)*alpha)
	}
	return color.NRGBA{R: mix(base.R, cr), G: mix(base.G, cg), B: mix(base.B, cb), A: base.A}
}

// text renders a run with the packaged bitmap face and scales it to the
// requested size. One face stands in for every catalog font name; the name
// still participates in command identity.
func (r *Raster) text(cmd DrawText) {
	if cmd.Text == "" {
		return
	}
	scale := float64(cmd.Size) / 13.0
	if cmd.Shadow {
		offset := math.Max(1, scale)
		r.textRun(cmd.Text, cmd.X+offset, cmd.Y+offset, scale, color.NRGBA{A: 0x80})
	}
	r.textRun(cmd.Text, cmd.X, cmd.Y, scale, parseHex(cmd.Color))
}

func (r *Raster) textRun(text string, x, y, scale float64, col color.NRGBA) {
	face := basicfont.Face7x13
	w := font.MeasureString(face, text).Ceil()
	if w <= 0 {
		return
	}
	h := face.Height

	run := image.NewNRGBA(image.Rect(0, 0, w, h))
	drawer := font.Drawer{
		Dst:  run,
		Src:  image.NewUniform(col),
		Face: face,
		Dot:  fixed.P(0, face.Ascent),
	}
	drawer.DrawString(text)

	sw := int(math.Round(float64(w) * scale))
	sh := int(math.Round(float64(h) * scale))
	if sw <= 0 || sh <= 0 {
		return
	}
	scaled := imaging.Resize(run, sw, sh, imaging.NearestNeighbor)
	r.img = imaging.Overlay(r.img, scaled, image.Pt(int(x)-sw/2, int(y)-sh/2), 1.0)
}

func (r *Raster) place(cmd PlaceImage) {
	src, _, err := image.Decode(bytes.NewReader(cmd.Data))
	if err != nil {
		// Undecodable upload: leave the canvas as composed so far.
		return
	}
	bounds := src.Bounds()
	w := int(math.Round(float64(bounds.Dx()) * cmd.Scale * 0.5))
	h := int(math.Round(float64(bounds.Dy()) * cmd.Scale * 0.5))
	if w <= 0 || h <= 0 {
		return
	}
	scaled := imaging.Resize(src, w, h, imaging.Lanczos)
	r.img = imaging.Overlay(r.img, scaled, image.Pt(int(cmd.X)-w/2, int(cmd.Y)-h/2), 1.0)
}

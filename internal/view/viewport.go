// Package view maps a fixed-size layout onto a window of any size.
package view

import (
	"image"
	"math"

	"github.com/hajimehoshi/ebiten/v2"
)

// Viewport fits a layout of size Layout into a window of size Window,
// scaled uniformly and centred, with letterbox bars on the slack axis.
type Viewport struct {
	Layout image.Point
	Window image.Point
	// Integer restricts the scale to whole multiples when the window is at
	// least as large as the layout, keeping pixel art crisp.
	Integer bool
}

// Scale returns the layout-to-window scale factor.
func (v Viewport) Scale() float64 {
	if v.Layout.X <= 0 || v.Layout.Y <= 0 || v.Window.X <= 0 || v.Window.Y <= 0 {
		return 1
	}
	s := math.Min(float64(v.Window.X)/float64(v.Layout.X), float64(v.Window.Y)/float64(v.Layout.Y))
	if v.Integer && s >= 1 {
		s = math.Floor(s)
	}
	return s
}

// Bounds returns the window-space rectangle the layout is drawn into.
func (v Viewport) Bounds() image.Rectangle {
	s := v.Scale()
	w := int(math.Round(float64(v.Layout.X) * s))
	h := int(math.Round(float64(v.Layout.Y) * s))
	min := image.Pt((v.Window.X-w)/2, (v.Window.Y-h)/2)
	return image.Rectangle{Min: min, Max: min.Add(image.Pt(w, h))}
}

// GeoM returns the draw transform from layout space to window space.
func (v Viewport) GeoM() ebiten.GeoM {
	var g ebiten.GeoM
	s := v.Scale()
	g.Scale(s, s)
	min := v.Bounds().Min
	g.Translate(float64(min.X), float64(min.Y))
	return g
}

// ToLayout maps a window-space point into layout space. Points in the
// letterbox map outside the layout rectangle.
func (v Viewport) ToLayout(p image.Point) image.Point {
	s := v.Scale()
	min := v.Bounds().Min
	return image.Pt(
		int(math.Floor(float64(p.X-min.X)/s)),
		int(math.Floor(float64(p.Y-min.Y)/s)),
	)
}

package assets

import (
	"image"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"golang.org/x/image/font/basicfont"
)

// Text draws strings in the 7x13 bitmap face.
type Text struct {
	face *text.GoXFace
}

func NewText() *Text {
	return &Text{face: text.NewGoXFace(basicfont.Face7x13)}
}

// DrawText draws s with its top-left corner at at.
func (t *Text) DrawText(dst *ebiten.Image, s string, at image.Point, clr color.Color) {
	op := &text.DrawOptions{}
	op.GeoM.Translate(float64(at.X), float64(at.Y))
	op.ColorScale.ScaleWithColor(clr)
	text.Draw(dst, s, t.face, op)
}

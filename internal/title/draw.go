package title

import (
	"image"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
)

// TextRenderer draws a string with its top-left corner at at.
type TextRenderer interface {
	DrawText(dst *ebiten.Image, s string, at image.Point, clr color.Color)
}

// Sprites are the images the title screen is composed from.
type Sprites struct {
	Title   *ebiten.Image
	SeedBox *ebiten.Image
	Start   [buttonStateCount]*ebiten.Image // indexed by ButtonState
	Loading []*ebiten.Image
}

// Sizes returns the sprite sizes used for layout. The start button is
// measured from its Up frame and the loading indicator from its last frame.
func (sp Sprites) Sizes() SpriteSizes {
	var s SpriteSizes
	s.Title = imageSize(sp.Title)
	s.SeedBox = imageSize(sp.SeedBox)
	s.Start = imageSize(sp.Start[ButtonUp])
	if n := len(sp.Loading); n > 0 {
		s.Loading = imageSize(sp.Loading[n-1])
	}
	return s
}

func imageSize(img *ebiten.Image) image.Point {
	if img == nil {
		return image.Point{}
	}
	return img.Bounds().Size()
}

// Palette holds the title screen colours.
type Palette struct {
	Background color.RGBA
	Title      color.RGBA
	Text       color.RGBA
}

var DefaultPalette = Palette{
	Background: color.RGBA{R: 135, G: 174, B: 142, A: 255},
	Title:      color.RGBA{R: 58, G: 69, B: 104, A: 255},
	Text:       color.RGBA{A: 255},
}

// Draw composes the screen into its intermediate image and scales that onto
// dst with nearest-neighbour filtering using geo (layout space to dst).
func (s *Screen) Draw(dst *ebiten.Image, geo ebiten.GeoM) {
	if s.target == nil {
		s.target = ebiten.NewImage(s.layout.Size.X, s.layout.Size.Y)
	}
	s.target.Clear()
	s.compose(s.target)

	dst.Fill(s.palette.Background)
	op := &ebiten.DrawImageOptions{GeoM: geo, Filter: ebiten.FilterNearest}
	dst.DrawImage(s.target, op)
}

// layer is one element of the composed screen.
type layer int

const (
	layerTitle layer = iota
	layerStart
	layerSeedBox
	layerSeedText
	layerLoading
)

func (l layer) String() string {
	switch l {
	case layerTitle:
		return "title"
	case layerStart:
		return "start"
	case layerSeedBox:
		return "seed_box"
	case layerSeedText:
		return "seed_text"
	case layerLoading:
		return "loading"
	default:
		return "unknown"
	}
}

// layers lists what is drawn this frame, back to front. The seed text only
// appears when digits were typed and the loading frame only while loading.
func (s *Screen) layers() []layer {
	out := []layer{layerTitle, layerStart, layerSeedBox}
	if !s.seed.IsEmpty() {
		out = append(out, layerSeedText)
	}
	if s.handoff.Loading() {
		out = append(out, layerLoading)
	}
	return out
}

// loadingSprite is the index of the loading sprite for the current frame.
func (s *Screen) loadingSprite() int {
	if len(s.sprites.Loading) == 0 {
		return 0
	}
	return s.anim.Frame() % len(s.sprites.Loading)
}

func (s *Screen) compose(dst *ebiten.Image) {
	for _, l := range s.layers() {
		switch l {
		case layerTitle:
			drawAt(dst, s.sprites.Title, s.layout.Title, s.palette.Title)
		case layerStart:
			drawInto(dst, s.sprites.Start[s.button.State()], s.layout.Start)
		case layerSeedBox:
			drawAt(dst, s.sprites.SeedBox, s.layout.SeedBox, nil)
		case layerSeedText:
			if s.text != nil {
				s.text.DrawText(dst, s.seed.String(), s.layout.SeedText, s.palette.Text)
			}
		case layerLoading:
			if len(s.sprites.Loading) > 0 {
				drawAt(dst, s.sprites.Loading[s.loadingSprite()], s.layout.Loading, s.palette.Text)
			}
		}
	}
}

// drawAt draws img with its top-left at p, tinted by tint when non-nil.
func drawAt(dst, img *ebiten.Image, p image.Point, tint color.Color) {
	if img == nil {
		return
	}
	op := &ebiten.DrawImageOptions{}
	op.GeoM.Translate(float64(p.X), float64(p.Y))
	if tint != nil {
		op.ColorScale.ScaleWithColor(tint)
	}
	dst.DrawImage(img, op)
}

// drawInto stretches img to fill r.
func drawInto(dst, img *ebiten.Image, r image.Rectangle) {
	if img == nil || r.Empty() {
		return
	}
	sz := img.Bounds().Size()
	op := &ebiten.DrawImageOptions{Filter: ebiten.FilterNearest}
	op.GeoM.Scale(float64(r.Dx())/float64(sz.X), float64(r.Dy())/float64(sz.Y))
	op.GeoM.Translate(float64(r.Min.X), float64(r.Min.Y))
	dst.DrawImage(img, op)
}

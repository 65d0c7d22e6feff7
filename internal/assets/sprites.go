package assets

import (
	"image"
	"image/color"
	"image/draw"

	xdraw "golang.org/x/image/draw"
	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/math/fixed"
)

// Sprite names understood by the provider. A PNG at <dir>/<name>.png
// replaces the built-in drawing.
const (
	NameTitle   = "title/title"
	NameSeedBox = "title/seed"
)

var (
	NamesStart   = []string{"title/start/start1", "title/start/start2", "title/start/start3"}
	NamesLoading = []string{
		"title/loading/loading1", "title/loading/loading2",
		"title/loading/loading3", "title/loading/loading4",
	}
)

const (
	gameName    = "PROCEDURAL TD"
	titleScale  = 2
	seedBoxW    = 88
	seedBoxH    = 17
	startW      = 40
	startH      = 17
	loadingText = "LOADING"
)

var (
	outline    = color.RGBA{R: 40, G: 48, B: 44, A: 255}
	boxFill    = color.RGBA{R: 236, G: 236, B: 224, A: 255}
	buttonUp   = color.RGBA{R: 196, G: 120, B: 80, A: 255}
	buttonOver = color.RGBA{R: 226, G: 152, B: 104, A: 255}
	buttonDown = color.RGBA{R: 150, G: 86, B: 58, A: 255}
)

// builtin draws the stock sprite for name, or returns nil if the name is
// not a known sprite.
func builtin(name string) image.Image {
	switch name {
	case NameTitle:
		return drawTitle()
	case NameSeedBox:
		return drawSeedBox()
	}
	for i, n := range NamesStart {
		if n == name {
			return drawStart(i)
		}
	}
	for i, n := range NamesLoading {
		if n == name {
			return drawLoading(i)
		}
	}
	return nil
}

// textSize is the pixel size of s in the 7x13 face.
func textSize(s string) image.Point {
	m := basicfont.Face7x13.Metrics()
	return image.Pt(font.MeasureString(basicfont.Face7x13, s).Ceil(), (m.Ascent + m.Descent).Ceil())
}

// drawString writes s in white with its top-left at p.
func drawString(dst draw.Image, s string, p image.Point) {
	d := font.Drawer{
		Dst:  dst,
		Src:  image.NewUniform(color.White),
		Face: basicfont.Face7x13,
		Dot:  fixed.P(p.X, p.Y+basicfont.Face7x13.Metrics().Ascent.Ceil()),
	}
	d.DrawString(s)
}

// drawTitle renders the game name in white, upscaled; the compositor tints it.
func drawTitle() image.Image {
	sz := textSize(gameName)
	small := image.NewRGBA(image.Rectangle{Max: sz})
	drawString(small, gameName, image.Point{})

	big := image.NewRGBA(image.Rect(0, 0, sz.X*titleScale, sz.Y*titleScale))
	xdraw.NearestNeighbor.Scale(big, big.Bounds(), small, small.Bounds(), xdraw.Over, nil)
	return big
}

func drawSeedBox() image.Image {
	img := image.NewRGBA(image.Rect(0, 0, seedBoxW, seedBoxH))
	fillRect(img, img.Bounds(), outline)
	fillRect(img, img.Bounds().Inset(1), boxFill)
	drawString(img, "#", image.Pt(6, 2))
	return img
}

func drawStart(state int) image.Image {
	img := image.NewRGBA(image.Rect(0, 0, startW, startH))
	fill := [...]color.RGBA{buttonUp, buttonOver, buttonDown}[state]
	fillRect(img, img.Bounds(), outline)
	fillRect(img, img.Bounds().Inset(1), fill)

	label := "GO"
	sz := textSize(label)
	at := image.Pt((startW-sz.X)/2, (startH-sz.Y)/2)
	if state == 2 {
		at = at.Add(image.Pt(0, 1))
	}
	drawString(img, label, at)
	return img
}

// drawLoading renders "LOADING" followed by frame dots. All frames share
// the size of the widest so the indicator does not jitter.
func drawLoading(frame int) image.Image {
	full := textSize(loadingText + "...")
	img := image.NewRGBA(image.Rectangle{Max: full})
	s := loadingText
	for i := 0; i < frame; i++ {
		s += "."
	}
	drawString(img, s, image.Point{})
	return img
}

func fillRect(dst draw.Image, r image.Rectangle, c color.Color) {
	draw.Draw(dst, r, image.NewUniform(c), image.Point{}, draw.Src)
}

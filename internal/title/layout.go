package title

import "image"

// Spacing holds the fixed gaps used to place the title screen elements.
type Spacing struct {
	TitleTop    int         // gap between the top edge and the title
	SeedBelow   int         // gap between the title and the seed box
	SeedToStart int         // gap between the seed box and the start button
	TextInset   image.Point // seed text offset inside the seed box
}

// DefaultSpacing matches the stock sprites.
var DefaultSpacing = Spacing{
	TitleTop:    4,
	SeedBelow:   8,
	SeedToStart: 4,
	TextInset:   image.Pt(25, 2),
}

// Layout is where each element sits in the intermediate image.
type Layout struct {
	Size     image.Point
	Title    image.Point
	SeedBox  image.Point
	SeedText image.Point
	Start    image.Rectangle // also the button's hit-test rectangle
	Loading  image.Point
}

// SpriteSizes are the pixel sizes of the sprites a Layout is computed from.
type SpriteSizes struct {
	Title   image.Point
	SeedBox image.Point
	Start   image.Point
	Loading image.Point
}

// ComputeLayout centres the title at the top, places the seed box and start
// button side by side and centred below it, and puts the loading indicator
// in the bottom-right corner one pixel in from the edges.
func ComputeLayout(size image.Point, sp Spacing, s SpriteSizes) Layout {
	l := Layout{Size: size}
	l.Title = image.Pt(size.X/2-s.Title.X/2, sp.TitleTop)

	row := s.SeedBox.X + sp.SeedToStart + s.Start.X
	l.SeedBox = image.Pt(size.X/2-row/2, sp.TitleTop+s.Title.Y+sp.SeedBelow)
	l.SeedText = l.SeedBox.Add(sp.TextInset)

	startMin := image.Pt(
		l.SeedBox.X+s.SeedBox.X+sp.SeedToStart,
		l.SeedBox.Y+s.SeedBox.Y/2-s.Start.Y/2,
	)
	l.Start = image.Rectangle{Min: startMin, Max: startMin.Add(s.Start)}

	l.Loading = image.Pt(size.X-s.Loading.X-1, size.Y-s.Loading.Y-1)
	return l
}

package title

import (
	"image"
	"testing"
)

func TestComputeLayout_StockSprites(t *testing.T) {
	l := TestLayout
	want := Layout{
		Size:     image.Pt(320, 180),
		Title:    image.Pt(69, 4),
		SeedBox:  image.Pt(94, 38),
		SeedText: image.Pt(119, 40),
		Start:    image.Rect(186, 38, 226, 55),
		Loading:  image.Pt(249, 166),
	}
	if l != want {
		t.Fatalf("layout\n got %+v\nwant %+v", l, want)
	}
}

func TestComputeLayout_CentresUnevenButton(t *testing.T) {
	l := ComputeLayout(image.Pt(200, 100), Spacing{TitleTop: 2, SeedBelow: 3, SeedToStart: 5}, SpriteSizes{
		Title:   image.Pt(50, 10),
		SeedBox: image.Pt(60, 20),
		Start:   image.Pt(30, 10),
		Loading: image.Pt(20, 8),
	})
	// Button is vertically centred on the seed box.
	boxMid := l.SeedBox.Y + 20/2
	btnMid := l.Start.Min.Y + l.Start.Dy()/2
	if boxMid != btnMid {
		t.Fatalf("button centre y=%d, seed box centre y=%d", btnMid, boxMid)
	}
	if l.Start.Min.X != l.SeedBox.X+60+5 {
		t.Fatalf("button x=%d, want seed box right edge + gap", l.Start.Min.X)
	}
	if l.SeedBox.Y != 2+10+3 {
		t.Fatalf("seed box y=%d", l.SeedBox.Y)
	}
	if l.Loading != image.Pt(200-20-1, 100-8-1) {
		t.Fatalf("loading at %v", l.Loading)
	}
}

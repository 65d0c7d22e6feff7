package title

import (
	"image"
	"image/color"
	"reflect"
	"testing"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
)

type textCall struct {
	s   string
	at  image.Point
	clr color.Color
}

// recordingText records DrawText calls instead of drawing.
type recordingText struct{ calls []textCall }

func (r *recordingText) DrawText(_ *ebiten.Image, s string, at image.Point, clr color.Color) {
	r.calls = append(r.calls, textCall{s: s, at: at, clr: clr})
}

func TestLayers_OrderAndConditions(t *testing.T) {
	tests := []struct {
		name    string
		typed   string
		loading bool
		want    []layer
	}{
		{"empty idle", "", false, []layer{layerTitle, layerStart, layerSeedBox}},
		{"typed idle", "42", false, []layer{layerTitle, layerStart, layerSeedBox, layerSeedText}},
		{"empty loading", "", true, []layer{layerTitle, layerStart, layerSeedBox, layerLoading}},
		{"typed loading", "42", true, []layer{layerTitle, layerStart, layerSeedBox, layerSeedText, layerLoading}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ts := NewTestScreen(WithTyped(tt.typed))
			if tt.loading {
				ts.Tap(ebiten.KeyEnter)
			}
			if got := ts.Screen.layers(); !reflect.DeepEqual(got, tt.want) {
				t.Fatalf("layers = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestCompose_SeedTextOnlyWhenTyped(t *testing.T) {
	text := &recordingText{}
	ts := NewTestScreen(WithScreenOptions(WithText(text)))

	ts.Screen.compose(nil)
	if len(text.calls) != 0 {
		t.Fatalf("empty buffer drew text %v", text.calls)
	}

	ts.TypeDigits("0042")
	ts.Screen.compose(nil)
	if len(text.calls) != 1 {
		t.Fatalf("got %d text draws, want 1", len(text.calls))
	}
	c := text.calls[0]
	if c.s != "0042" || c.at != ts.Screen.Layout().SeedText || c.clr != DefaultPalette.Text {
		t.Fatalf("text draw %+v", c)
	}
}

func TestLoadingSprite_FollowsAnimation(t *testing.T) {
	sprites := Sprites{Loading: make([]*ebiten.Image, 4)}
	ts := NewTestScreen(WithScreenOptions(WithSprites(sprites)))
	ts.Tap(ebiten.KeyEnter)

	want := []int{0, 1, 2, 3, 0}
	for i, w := range want {
		if i > 0 {
			ts.Elapse(500 * time.Millisecond)
		}
		if got := ts.Screen.loadingSprite(); got != w {
			t.Fatalf("step %d: loading sprite %d, want %d", i, got, w)
		}
	}
}

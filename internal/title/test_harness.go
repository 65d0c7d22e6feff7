package title

import (
	"image"
	"math/rand"
	"time"

	"github.com/hajimehoshi/ebiten/v2"

	"github.com/Garsondee/procedural-td/internal/phase"
)

// TestScreen drives a Screen headlessly with scripted input. It has no GPU
// dependency: nothing is drawn, only Update and Animate run.
type TestScreen struct {
	Screen     *Screen
	Phases     *phase.Machine
	Dispatched []int // seeds handed to the generator, in order
	Events     *EventLog

	forward Dispatcher
	input   Input
	rngSeed int64
	typed   string
	layout  Layout
	opts    []Option
}

// recordingDispatcher records seeds and forwards them when a downstream
// dispatcher is set.
type recordingDispatcher struct{ ts *TestScreen }

func (d recordingDispatcher) Dispatch(seed int) {
	d.ts.Dispatched = append(d.ts.Dispatched, seed)
	if d.ts.forward != nil {
		d.ts.forward.Dispatch(seed)
	}
}

// HarnessOption configures a TestScreen.
type HarnessOption func(*TestScreen)

// WithRandSeed seeds the RNG used for empty-buffer seeds.
func WithRandSeed(seed int64) HarnessOption {
	return func(ts *TestScreen) { ts.rngSeed = seed }
}

// WithTyped prefills the seed box.
func WithTyped(digits string) HarnessOption {
	return func(ts *TestScreen) { ts.typed = digits }
}

// WithForward also sends dispatched seeds to d (e.g. a real generator).
func WithForward(d Dispatcher) HarnessOption {
	return func(ts *TestScreen) { ts.forward = d }
}

// WithScreenOptions passes options through to NewScreen.
func WithScreenOptions(opts ...Option) HarnessOption {
	return func(ts *TestScreen) { ts.opts = append(ts.opts, opts...) }
}

// WithLayout replaces the default test layout.
func WithLayout(l Layout) HarnessOption {
	return func(ts *TestScreen) { ts.layout = l }
}

// TestLayout is the stock 320x180 layout with stock sprite sizes.
var TestLayout = ComputeLayout(image.Pt(320, 180), DefaultSpacing, SpriteSizes{
	Title:   image.Pt(182, 26),
	SeedBox: image.Pt(88, 17),
	Start:   image.Pt(40, 17),
	Loading: image.Pt(70, 13),
})

func NewTestScreen(opts ...HarnessOption) *TestScreen {
	ts := &TestScreen{
		Phases:  phase.New(nil),
		Events:  NewEventLog(true),
		rngSeed: 1,
		layout:  TestLayout,
		input:   Input{Down: make(map[ebiten.Key]bool)},
	}
	for _, o := range opts {
		o(ts)
	}
	h := NewHandoff(ts.Phases, recordingDispatcher{ts}, rand.New(rand.NewSource(ts.rngSeed))) // #nosec G404 -- seeds are not secrets
	screenOpts := append([]Option{WithEventLog(ts.Events)}, ts.opts...)
	ts.Screen = NewScreen(ts.layout, h, screenOpts...)
	ts.Screen.Prefill(ts.typed)
	// Park the cursor outside the layout.
	ts.input.Cursor = image.Pt(-1, -1)
	return ts
}

// Hold marks keys as down from the next frame on.
func (ts *TestScreen) Hold(keys ...ebiten.Key) {
	for _, k := range keys {
		ts.input.Down[k] = true
	}
}

// Release marks keys as up from the next frame on.
func (ts *TestScreen) Release(keys ...ebiten.Key) {
	for _, k := range keys {
		delete(ts.input.Down, k)
	}
}

// MoveMouse places the cursor (layout space) and sets the left button.
func (ts *TestScreen) MoveMouse(p image.Point, down bool) {
	ts.input.Cursor = p
	ts.input.MouseDown = down
}

// Frame runs one Update with the current input.
func (ts *TestScreen) Frame() {
	ts.Screen.Update(ts.input)
}

// Frames runs n Updates.
func (ts *TestScreen) Frames(n int) {
	for i := 0; i < n; i++ {
		ts.Frame()
	}
}

// Tap presses key for one frame and releases it on the next.
func (ts *TestScreen) Tap(key ebiten.Key) {
	ts.Hold(key)
	ts.Frame()
	ts.Release(key)
	ts.Frame()
}

// TypeDigits taps the top-row key for each digit in s; other runes are skipped.
func (ts *TestScreen) TypeDigits(s string) {
	for _, r := range s {
		if r < '0' || r > '9' {
			continue
		}
		ts.Tap(digitLayouts[0][r-'0'])
	}
}

// ClickStart presses and releases the left button over the start button.
func (ts *TestScreen) ClickStart() {
	c := ts.Screen.Layout().Start.Min.Add(ts.Screen.Layout().Start.Size().Div(2))
	ts.MoveMouse(c, true)
	ts.Frame()
	ts.MoveMouse(c, false)
	ts.Frame()
}

// WaitClipboard blocks until every started clipboard read or write has
// finished and been applied to the screen.
func (ts *TestScreen) WaitClipboard() {
	for ts.Screen.clipPending > 0 {
		ts.Screen.applyClip(<-ts.Screen.clipDone)
	}
}

// Elapse animates the screen by each of the given deltas in turn.
func (ts *TestScreen) Elapse(deltas ...time.Duration) {
	for _, d := range deltas {
		ts.Screen.Animate(d)
	}
}

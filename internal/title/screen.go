package title

import (
	"fmt"
	"io"
	"time"

	"github.com/charmbracelet/log"
	"github.com/hajimehoshi/ebiten/v2"
)

// defaultLoadingFrames is used when no loading sprites are supplied.
const defaultLoadingFrames = 4

// Screen is the title screen: seed entry, start button and loading indicator.
// All methods run on the game loop goroutine.
type Screen struct {
	layout  Layout
	sprites Sprites
	text    TextRenderer
	palette Palette

	seed    SeedBuffer
	keys    *KeyLatch
	button  Button
	anim    *AnimationClock
	handoff *Handoff

	clip        Clipboard
	clipDone    chan clipResult
	clipPending int // clipboard operations not yet applied
	logger      *log.Logger
	events      *EventLog

	frameInterval time.Duration
	frame         int
	target        *ebiten.Image // intermediate image, layout.Size
}

// Option configures a Screen.
type Option func(*Screen)

// WithSprites sets the images drawn by the compositor. The number of
// loading frames sets the animation length.
func WithSprites(sp Sprites) Option {
	return func(s *Screen) { s.sprites = sp }
}

func WithText(tr TextRenderer) Option {
	return func(s *Screen) { s.text = tr }
}

func WithPalette(p Palette) Option {
	return func(s *Screen) { s.palette = p }
}

// WithFrameInterval sets how long each loading frame is shown.
func WithFrameInterval(d time.Duration) Option {
	return func(s *Screen) { s.frameInterval = d }
}

func WithClipboard(c Clipboard) Option {
	return func(s *Screen) { s.clip = c }
}

func WithLogger(l *log.Logger) Option {
	return func(s *Screen) { s.logger = l }
}

// WithEventLog records screen events into el.
func WithEventLog(el *EventLog) Option {
	return func(s *Screen) { s.events = el }
}

// NewScreen builds a title screen laid out by layout that starts generation
// through handoff.
func NewScreen(layout Layout, handoff *Handoff, opts ...Option) *Screen {
	s := &Screen{
		layout:        layout,
		handoff:       handoff,
		keys:          NewKeyLatch(),
		clipDone:      make(chan clipResult, 4),
		palette:       DefaultPalette,
		frameInterval: DefaultFrameInterval,
	}
	for _, opt := range opts {
		opt(s)
	}
	if s.logger == nil {
		s.logger = log.New(io.Discard)
	}
	if s.events == nil {
		s.events = NewEventLog(false)
	}
	frames := len(s.sprites.Loading)
	if frames == 0 {
		frames = defaultLoadingFrames
	}
	s.anim = NewAnimationClock(frames, s.frameInterval)
	return s
}

func (s *Screen) Seed() string             { return s.seed.String() }
func (s *Screen) ButtonState() ButtonState { return s.button.State() }
func (s *Screen) LoadingFrame() int        { return s.anim.Frame() }
func (s *Screen) Layout() Layout           { return s.layout }
func (s *Screen) Events() *EventLog        { return s.events }
func (s *Screen) Loading() bool            { return s.handoff.Loading() }

// Prefill types text into the seed box as if entered digit by digit.
func (s *Screen) Prefill(text string) {
	pasteDigits(&s.seed, text)
}

// Reset puts the button back to Up, used when returning to the title.
// The typed seed is kept.
func (s *Screen) Reset() {
	s.button.Reset()
}

// Update handles one frame of input: key edges first, then the start button.
func (s *Screen) Update(in Input) {
	s.frame++
	s.updateClipboard(in)
	s.updateKeys(in)

	prev := s.button.State()
	if s.button.Step(in.Cursor.In(s.layout.Start), in.MouseDown) {
		s.activate("mouse")
	}
	if s.keys.Poll(keyConfirm, in.KeyDown(keyConfirm), true) {
		s.button.Force()
		s.activate("enter")
	}
	if st := s.button.State(); st != prev {
		s.events.AddVerbose(s.frame, EventButton, fmt.Sprintf("%s -> %s", prev, st), int(st))
	}
}

func (s *Screen) updateKeys(in Input) {
	if s.keys.Poll(keyDelete, in.KeyDown(keyDelete), !s.seed.IsEmpty()) {
		s.seed.DeleteLast()
		s.events.Add(s.frame, EventDelete, s.seed.String(), s.seed.Len())
	}
	for _, layout := range digitLayouts {
		for d, key := range layout {
			if s.keys.Poll(key, in.KeyDown(key), !s.seed.IsFull()) {
				s.seed.AppendDigit(d)
				s.events.Add(s.frame, EventDigit, s.seed.String(), d)
			}
		}
	}
}

// clipResult is a finished clipboard read or write.
type clipResult struct {
	kind string // EventPaste or EventCopy
	text string
	err  error
}

// updateClipboard starts clipboard work on Ctrl+V / Ctrl+C. The system
// clipboard can shell out, so reads and writes run on their own goroutine
// and finish in a later frame through drainClipboard.
func (s *Screen) updateClipboard(in Input) {
	s.drainClipboard()
	ctrl := in.KeyDown(keyModCtrl)
	if s.keys.Poll(keyPaste, ctrl && in.KeyDown(keyPaste), true) && s.clip != nil {
		clip := s.clip
		s.startClip(func() clipResult {
			text, err := clip.ReadAll()
			return clipResult{kind: EventPaste, text: text, err: err}
		})
	}
	if s.keys.Poll(keyCopy, ctrl && in.KeyDown(keyCopy), !s.seed.IsEmpty()) && s.clip != nil {
		clip, text := s.clip, s.seed.String()
		s.startClip(func() clipResult {
			return clipResult{kind: EventCopy, text: text, err: clip.WriteAll(text)}
		})
	}
}

func (s *Screen) startClip(op func() clipResult) {
	s.clipPending++
	go func() { s.clipDone <- op() }()
}

// drainClipboard applies finished clipboard work without blocking.
func (s *Screen) drainClipboard() {
	for {
		select {
		case res := <-s.clipDone:
			s.applyClip(res)
		default:
			return
		}
	}
}

func (s *Screen) applyClip(res clipResult) {
	s.clipPending--
	switch {
	case res.err != nil && res.kind == EventPaste:
		s.logger.Warn("clipboard read failed", "error", res.err)
	case res.err != nil:
		s.logger.Warn("clipboard write failed", "error", res.err)
	case res.kind == EventPaste:
		n := pasteDigits(&s.seed, res.text)
		s.events.Add(s.frame, EventPaste, s.seed.String(), n)
	default:
		s.events.Add(s.frame, EventCopy, res.text, len(res.text))
	}
}

func (s *Screen) activate(source string) {
	seed, started := s.handoff.Activate(&s.seed)
	if !started {
		s.events.Add(s.frame, EventRefused, "source="+source, 0)
		return
	}
	s.logger.Info("starting map generation", "seed", seed, "typed", s.seed.String(), "source", source)
	s.events.Add(s.frame, EventActivate, fmt.Sprintf("seed=%d source=%s", seed, source), seed)
}

// Animate advances the loading indicator by dt of wall-clock time. It only
// moves while the game is loading a map.
func (s *Screen) Animate(dt time.Duration) {
	if n := s.anim.Advance(dt, s.handoff.Loading()); n > 0 {
		s.events.AddVerbose(s.frame, EventFrame, fmt.Sprintf("loading frame %d", s.anim.Frame()), s.anim.Frame())
	}
}

package game

import (
	"fmt"
	"image"
	"image/color"
	"io"
	"io/fs"
	"math/rand"
	"os"
	"time"

	"github.com/charmbracelet/log"
	"github.com/hajimehoshi/ebiten/v2"

	"github.com/Garsondee/procedural-td/internal/assets"
	"github.com/Garsondee/procedural-td/internal/config"
	"github.com/Garsondee/procedural-td/internal/mapgen"
	"github.com/Garsondee/procedural-td/internal/phase"
	"github.com/Garsondee/procedural-td/internal/title"
	"github.com/Garsondee/procedural-td/internal/view"
)

// Game implements ebiten.Game. It owns the phase machine and routes each
// frame to the title screen or the map view.
type Game struct {
	cfg    config.Config
	logger *log.Logger
	phases *phase.Machine
	worker *mapgen.Worker
	title  *title.Screen

	// Title layout fitted into the window; updated by Layout.
	viewport view.Viewport
	window   image.Point

	now        func() time.Time
	lastUpdate time.Time

	// Generated map shown in the Playing phase.
	current *mapgen.Map
	mapImg  *ebiten.Image // uploaded lazily on first draw

	showHUD  bool
	prevKeys map[ebiten.Key]bool
	// Offscreen buffer for HUD text, rendered at 1x then blitted at hudScale.
	hudBuf *ebiten.Image
}

// Options are the run-time inputs to New besides the config file.
type Options struct {
	Logger  *log.Logger
	Prefill string // digits typed into the seed box at start
}

// New builds the game: loads sprites, lays out the title screen and wires
// the seed handoff to a background map generator.
func New(cfg config.Config, opts Options) (*Game, error) {
	logger := opts.Logger
	if logger == nil {
		logger = log.New(io.Discard)
	}

	var overrides fs.FS
	if cfg.Assets.Dir != "" {
		overrides = os.DirFS(cfg.Assets.Dir)
	}
	provider := assets.New(overrides)
	sprites, err := provider.TitleSprites()
	if err != nil {
		return nil, fmt.Errorf("load title sprites: %w", err)
	}
	palette, err := cfg.Colors.Palette()
	if err != nil {
		return nil, err
	}

	phases := phase.New(logger.WithPrefix("phase"))
	worker := mapgen.NewWorker(cfg.MapGen, logger.WithPrefix("mapgen"))
	rng := rand.New(rand.NewSource(time.Now().UnixNano())) // #nosec G404 -- game seed, not a secret
	handoff := title.NewHandoff(phases, worker, rng)

	layout := title.ComputeLayout(cfg.Layout.Size(), cfg.Layout.Spacing(), sprites.Sizes())
	screen := title.NewScreen(layout, handoff,
		title.WithSprites(sprites),
		title.WithText(assets.NewText()),
		title.WithPalette(palette),
		title.WithFrameInterval(cfg.Loading.FrameInterval),
		title.WithClipboard(title.SystemClipboard{}),
		title.WithLogger(logger.WithPrefix("title")),
	)
	screen.Prefill(opts.Prefill)

	return newGame(cfg, logger, phases, worker, screen), nil
}

// newGame assembles a Game from already-built parts.
func newGame(cfg config.Config, logger *log.Logger, phases *phase.Machine, worker *mapgen.Worker, screen *title.Screen) *Game {
	g := &Game{
		cfg:      cfg,
		logger:   logger,
		phases:   phases,
		worker:   worker,
		title:    screen,
		now:      time.Now,
		showHUD:  true,
		prevKeys: make(map[ebiten.Key]bool),
	}
	g.lastUpdate = g.now()
	g.resize(image.Pt(cfg.Window.Width, cfg.Window.Height))
	return g
}

func (g *Game) resize(window image.Point) {
	g.window = window
	g.viewport = view.Viewport{
		Layout:  g.cfg.Layout.Size(),
		Window:  window,
		Integer: g.cfg.Window.IntegerScale,
	}
}

func (g *Game) Update() error {
	now := g.now()
	dt := now.Sub(g.lastUpdate)
	g.lastUpdate = now

	if g.phases.Current() == phase.Playing {
		g.handleInput(pollKeys(ebiten.KeyEscape, ebiten.KeyH))
	} else {
		g.updateTitle(title.PollInput(g.viewport))
	}

	g.title.Animate(dt)
	return nil
}

// updateTitle runs the title screen for one frame. Input keeps being handled
// while a map loads; the phase machine refuses a second start.
func (g *Game) updateTitle(in title.Input) {
	g.title.Update(in)
	if g.phases.Current() != phase.LoadingMap {
		return
	}
	if res, ok := g.worker.Poll(); ok {
		g.applyResult(res)
	}
}

// applyResult moves to the map view on success, or back to the title when
// generation failed.
func (g *Game) applyResult(res mapgen.Result) {
	if res.Err != nil {
		g.logger.Error("map generation failed", "seed", res.Seed, "error", res.Err)
		g.phases.ChangeState(phase.GenerationFailed)
		g.title.Reset()
		return
	}
	g.current = res.Map
	g.mapImg = nil
	g.logger.Info("map ready", "seed", res.Seed, "size", fmt.Sprintf("%dx%d", res.Map.Cols, res.Map.Rows),
		"elapsed", res.Elapsed.Round(time.Millisecond))
	g.phases.ChangeState(phase.MapReady)
}

func pollKeys(keys ...ebiten.Key) map[ebiten.Key]bool {
	out := make(map[ebiten.Key]bool, len(keys))
	for _, k := range keys {
		out[k] = ebiten.IsKeyPressed(k)
	}
	return out
}

// handleInput processes map view keypresses (edge-triggered).
func (g *Game) handleInput(currentKeys map[ebiten.Key]bool) {
	pressed := func(k ebiten.Key) bool { return currentKeys[k] && !g.prevKeys[k] }

	// H: toggle HUD.
	if pressed(ebiten.KeyH) {
		g.showHUD = !g.showHUD
	}
	// Esc: back to the title screen, keeping the typed seed.
	if pressed(ebiten.KeyEscape) && g.phases.ChangeState(phase.ReturnToTitle) {
		g.title.Reset()
	}
	g.prevKeys = currentKeys
}

func (g *Game) Draw(screen *ebiten.Image) {
	switch g.phases.Current() {
	case phase.Title, phase.LoadingMap:
		g.title.Draw(screen, g.viewport.GeoM())
	case phase.Playing:
		g.drawMap(screen)
		if g.showHUD {
			g.drawHUD(screen)
		}
	}
}

func (g *Game) drawMap(screen *ebiten.Image) {
	screen.Fill(color.RGBA{R: 12, G: 14, B: 12, A: 255})
	if g.current == nil {
		return
	}
	if g.mapImg == nil {
		g.mapImg = ebiten.NewImageFromImage(g.current.Image())
	}
	vp := view.Viewport{Layout: image.Pt(g.current.Cols, g.current.Rows), Window: g.window}
	op := &ebiten.DrawImageOptions{GeoM: vp.GeoM(), Filter: ebiten.FilterNearest}
	screen.DrawImage(g.mapImg, op)
}

// Layout uses the full window; the title screen is scaled into it.
func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	if w := image.Pt(outsideWidth, outsideHeight); w != g.window {
		g.resize(w)
	}
	return outsideWidth, outsideHeight
}

// Phase returns the current game phase.
func (g *Game) Phase() phase.State {
	return g.phases.Current()
}

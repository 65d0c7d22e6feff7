package game

import (
	"errors"
	"image"
	"io"
	"strings"
	"testing"
	"time"

	"github.com/charmbracelet/log"
	"github.com/hajimehoshi/ebiten/v2"

	"github.com/Garsondee/procedural-td/internal/config"
	"github.com/Garsondee/procedural-td/internal/mapgen"
	"github.com/Garsondee/procedural-td/internal/phase"
	"github.com/Garsondee/procedural-td/internal/title"
)

// newTestGame builds a Game around a headless title screen.
func newTestGame(t *testing.T) (*Game, *title.TestScreen) {
	t.Helper()
	cfg := config.Default()
	cfg.MapGen.Cols, cfg.MapGen.Rows = 16, 9
	ts := title.NewTestScreen()
	g := newGame(cfg, log.New(io.Discard), ts.Phases, mapgen.NewWorker(cfg.MapGen, nil), ts.Screen)
	return g, ts
}

func TestApplyResult_SuccessShowsMap(t *testing.T) {
	g, ts := newTestGame(t)

	ts.TypeDigits("7")
	ts.ClickStart()
	if g.Phase() != phase.LoadingMap {
		t.Fatalf("phase %s, want loading_map", g.Phase())
	}

	m, err := mapgen.Generate(7, g.cfg.MapGen)
	if err != nil {
		t.Fatal(err)
	}
	g.applyResult(mapgen.Result{Seed: 7, Map: m})
	if g.Phase() != phase.Playing {
		t.Fatalf("phase %s, want playing", g.Phase())
	}
	if g.current != m {
		t.Fatal("map not stored")
	}
}

func TestApplyResult_FailureReturnsToTitle(t *testing.T) {
	g, ts := newTestGame(t)
	ts.Tap(ebiten.KeyEnter)

	g.applyResult(mapgen.Result{Seed: 1, Err: errors.New("boom")})
	if g.Phase() != phase.Title {
		t.Fatalf("phase %s, want title", g.Phase())
	}
	if g.title.ButtonState() != title.ButtonUp {
		t.Fatalf("button left %s after failure", g.title.ButtonState())
	}

	// The player can start again.
	ts.Tap(ebiten.KeyEnter)
	if len(ts.Dispatched) != 2 {
		t.Fatalf("dispatched %v, want a second attempt", ts.Dispatched)
	}
}

func TestUpdateTitle_InputContinuesWhileLoading(t *testing.T) {
	g, ts := newTestGame(t)
	ts.Tap(ebiten.KeyEnter)
	if g.Phase() != phase.LoadingMap {
		t.Fatalf("phase %s, want loading_map", g.Phase())
	}

	start := g.title.Layout().Start
	over := start.Min.Add(start.Size().Div(2))
	g.updateTitle(title.Input{Down: map[ebiten.Key]bool{}, Cursor: over})
	if g.title.ButtonState() != title.ButtonHover {
		t.Fatalf("button %s during loading, want hover", g.title.ButtonState())
	}
	g.updateTitle(title.Input{Down: map[ebiten.Key]bool{}, Cursor: image.Pt(-1, -1)})
	if g.title.ButtonState() != title.ButtonUp {
		t.Fatalf("button %s after leaving, want up", g.title.ButtonState())
	}

	g.updateTitle(title.Input{Down: map[ebiten.Key]bool{ebiten.KeyEnter: true}, Cursor: image.Pt(-1, -1)})
	if n := ts.Events.Count(title.EventRefused); n != 1 {
		t.Fatalf("refused activations = %d, want 1", n)
	}
	if len(ts.Dispatched) != 1 {
		t.Fatalf("dispatched %v, want one generation", ts.Dispatched)
	}
	if g.Phase() != phase.LoadingMap {
		t.Fatalf("phase %s, want loading_map", g.Phase())
	}
}

func TestUpdateTitle_PicksUpFinishedMap(t *testing.T) {
	g, ts := newTestGame(t)
	ts.Tap(ebiten.KeyEnter)
	g.worker.Dispatch(ts.Dispatched[0])

	idle := title.Input{Down: map[ebiten.Key]bool{}, Cursor: image.Pt(-1, -1)}
	deadline := time.Now().Add(5 * time.Second)
	for g.Phase() == phase.LoadingMap {
		if time.Now().After(deadline) {
			t.Fatal("map never arrived")
		}
		g.updateTitle(idle)
		time.Sleep(time.Millisecond)
	}
	if g.Phase() != phase.Playing || g.current == nil {
		t.Fatalf("phase %s, map %v", g.Phase(), g.current)
	}
	if g.current.Seed != ts.Dispatched[0] {
		t.Fatalf("map seed %d, want %d", g.current.Seed, ts.Dispatched[0])
	}
}

func TestHandleInput_EscapeReturnsToTitleOnce(t *testing.T) {
	g, ts := newTestGame(t)
	ts.TypeDigits("12")
	ts.Tap(ebiten.KeyEnter)
	m, _ := mapgen.Generate(12, g.cfg.MapGen)
	g.applyResult(mapgen.Result{Seed: 12, Map: m})

	esc := map[ebiten.Key]bool{ebiten.KeyEscape: true}
	g.handleInput(esc)
	if g.Phase() != phase.Title {
		t.Fatalf("phase %s, want title", g.Phase())
	}
	if g.title.Seed() != "12" {
		t.Fatalf("seed %q lost on return", g.title.Seed())
	}
	g.handleInput(esc)
	if g.phases.Changes() != 3 {
		t.Fatalf("held escape applied extra transitions: %d", g.phases.Changes())
	}
}

func TestHandleInput_HToggleIsEdgeTriggered(t *testing.T) {
	g, _ := newTestGame(t)
	h := map[ebiten.Key]bool{ebiten.KeyH: true}
	g.handleInput(h)
	g.handleInput(h)
	g.handleInput(h)
	if g.showHUD {
		t.Fatal("holding H should toggle once")
	}
	g.handleInput(map[ebiten.Key]bool{})
	g.handleInput(h)
	if !g.showHUD {
		t.Fatal("re-press should toggle back")
	}
}

func TestLayout_TracksWindow(t *testing.T) {
	g, _ := newTestGame(t)
	w, h := g.Layout(1600, 900)
	if w != 1600 || h != 900 {
		t.Fatalf("layout returned %dx%d", w, h)
	}
	if g.viewport.Scale() != 5 {
		t.Fatalf("viewport scale %.2f, want 5", g.viewport.Scale())
	}
}

func TestHUDLines(t *testing.T) {
	m, err := mapgen.Generate(3, mapgen.DefaultConfig)
	if err != nil {
		t.Fatal(err)
	}
	lines := hudLines(m)
	if len(lines) != mapgen.TerrainCount+2 {
		t.Fatalf("got %d lines", len(lines))
	}
	if !strings.HasPrefix(lines[0], "SEED 3  MAP 160x90") {
		t.Fatalf("header %q", lines[0])
	}
	if !strings.Contains(lines[1], "water") {
		t.Fatalf("first terrain line %q", lines[1])
	}
	if got := hudLines(nil); got[0] != "no map" {
		t.Fatalf("nil map lines %v", got)
	}
}

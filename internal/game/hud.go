package game

import (
	"fmt"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"github.com/Garsondee/procedural-td/internal/mapgen"
)

// hudScale is the integer upscale factor applied to all HUD text.
const hudScale = 2

// hudLines describes the current map for the HUD panel.
func hudLines(m *mapgen.Map) []string {
	if m == nil {
		return []string{"no map", "[Esc] title  [H] hide"}
	}
	lines := []string{
		fmt.Sprintf("SEED %d  MAP %dx%d", m.Seed, m.Cols, m.Rows),
	}
	comp := m.Composition()
	for t := 0; t < mapgen.TerrainCount; t++ {
		lines = append(lines, fmt.Sprintf("  %-8s %5.1f%%", mapgen.Terrain(t), comp[t]*100))
	}
	return append(lines, "[Esc] title  [H] hide")
}

// drawHUD renders the map summary in the top-left corner.
// Text is drawn into hudBuf at 1x then composited onto the screen at hudScale.
func (g *Game) drawHUD(screen *ebiten.Image) {
	lines := hudLines(g.current)

	const lineH = 12 // debug font line height at 1x
	const charW = 6  // debug font char width at 1x
	const padX = 5
	const padY = 4

	maxLen := 0
	for _, l := range lines {
		if len(l) > maxLen {
			maxLen = len(l)
		}
	}
	boxW := float32(maxLen*charW + padX*2)
	boxH := float32(len(lines)*lineH + padY*2)

	bufW := int(boxW) + 8
	bufH := int(boxH) + 8
	if g.hudBuf == nil || g.hudBuf.Bounds().Dx() != bufW || g.hudBuf.Bounds().Dy() != bufH {
		g.hudBuf = ebiten.NewImage(bufW, bufH)
	}
	bx, by := float32(4), float32(4)

	g.hudBuf.Clear()
	// Panel background.
	vector.FillRect(g.hudBuf, bx, by, boxW, boxH,
		color.RGBA{R: 6, G: 10, B: 6, A: 210}, false)
	vector.StrokeRect(g.hudBuf, bx, by, boxW, boxH,
		1.0, color.RGBA{R: 60, G: 100, B: 60, A: 180}, false)

	for i, line := range lines {
		tx := int(bx) + padX
		ty := int(by) + padY + i*lineH
		ebitenutil.DebugPrintAt(g.hudBuf, line, tx, ty)
	}

	opts := &ebiten.DrawImageOptions{}
	opts.GeoM.Scale(float64(hudScale), float64(hudScale))
	screen.DrawImage(g.hudBuf, opts)
}

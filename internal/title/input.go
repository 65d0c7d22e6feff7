package title

import (
	"image"

	"github.com/hajimehoshi/ebiten/v2"
)

// CoordMapper converts a window-space cursor position into layout space.
type CoordMapper interface {
	ToLayout(p image.Point) image.Point
}

// Input is one frame of raw input as the title screen sees it.
type Input struct {
	Down      map[ebiten.Key]bool
	Cursor    image.Point // layout space
	MouseDown bool
}

// KeyDown reports whether key is currently held.
func (in Input) KeyDown(key ebiten.Key) bool {
	return in.Down[key]
}

// PollInput samples the keys the title screen tracks, the left mouse button
// and the cursor, mapped into layout space by m.
func PollInput(m CoordMapper) Input {
	keys := trackedKeys()
	in := Input{Down: make(map[ebiten.Key]bool, len(keys))}
	for _, k := range keys {
		if ebiten.IsKeyPressed(k) {
			in.Down[k] = true
		}
	}
	mx, my := ebiten.CursorPosition()
	in.Cursor = m.ToLayout(image.Pt(mx, my))
	in.MouseDown = ebiten.IsMouseButtonPressed(ebiten.MouseButtonLeft)
	return in
}

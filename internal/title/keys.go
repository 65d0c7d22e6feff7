package title

import "github.com/hajimehoshi/ebiten/v2"

// digitLayouts pairs the top-row digits with the numpad. Both rows are in
// 0..9 order so the index within a row is the digit value.
var digitLayouts = [2][10]ebiten.Key{
	{
		ebiten.KeyDigit0, ebiten.KeyDigit1, ebiten.KeyDigit2, ebiten.KeyDigit3, ebiten.KeyDigit4,
		ebiten.KeyDigit5, ebiten.KeyDigit6, ebiten.KeyDigit7, ebiten.KeyDigit8, ebiten.KeyDigit9,
	},
	{
		ebiten.KeyNumpad0, ebiten.KeyNumpad1, ebiten.KeyNumpad2, ebiten.KeyNumpad3, ebiten.KeyNumpad4,
		ebiten.KeyNumpad5, ebiten.KeyNumpad6, ebiten.KeyNumpad7, ebiten.KeyNumpad8, ebiten.KeyNumpad9,
	},
}

const (
	keyDelete  = ebiten.KeyBackspace
	keyConfirm = ebiten.KeyEnter
	keyPaste   = ebiten.KeyV
	keyCopy    = ebiten.KeyC
	keyModCtrl = ebiten.KeyControl
)

// trackedKeys lists every key the title screen polls.
func trackedKeys() []ebiten.Key {
	keys := make([]ebiten.Key, 0, 2*10+5)
	for _, layout := range digitLayouts {
		keys = append(keys, layout[:]...)
	}
	return append(keys, keyDelete, keyConfirm, keyPaste, keyCopy, keyModCtrl)
}

// KeyLatch turns "key is down" polling into one activation per press.
// A latch is set when a press is consumed and cleared only on release.
type KeyLatch struct {
	latched map[ebiten.Key]bool
}

func NewKeyLatch() *KeyLatch {
	return &KeyLatch{latched: make(map[ebiten.Key]bool)}
}

// Poll reports whether key activates this frame. eligible gates the press:
// while it is false the latch stays clear, so a key held down fires on the
// first frame it becomes eligible.
func (l *KeyLatch) Poll(key ebiten.Key, down, eligible bool) bool {
	switch {
	case down && !l.latched[key] && eligible:
		l.latched[key] = true
		return true
	case !down && l.latched[key]:
		l.latched[key] = false
	}
	return false
}

// Latched reports whether key's current press has already been consumed.
func (l *KeyLatch) Latched(key ebiten.Key) bool {
	return l.latched[key]
}

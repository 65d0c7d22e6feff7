package title

import (
	"math/rand"
	"strconv"

	"github.com/Garsondee/procedural-td/internal/phase"
)

// seedSpace is 10^MaxSeedLen, one past the largest seed the box can hold.
const seedSpace = 100_000_000

// PhaseMachine is the global phase state the title screen reads and drives.
type PhaseMachine interface {
	Current() phase.State
	ChangeState(a phase.Action) bool
}

// Dispatcher starts map generation for a seed. Dispatch must return without
// waiting for the map.
type Dispatcher interface {
	Dispatch(seed int)
}

// ResolveSeed turns the typed digits into the generation seed. An empty
// buffer draws a uniform seed in [0, 10^MaxSeedLen).
func ResolveSeed(buf *SeedBuffer, rng *rand.Rand) int {
	if buf.IsEmpty() {
		return rng.Intn(seedSpace)
	}
	seed, err := strconv.Atoi(buf.String())
	if err != nil {
		panic("title: seed buffer holds non-digits: " + err.Error())
	}
	return seed
}

// Handoff moves the game into loading and hands the seed to the generator.
type Handoff struct {
	phases   PhaseMachine
	dispatch Dispatcher
	rng      *rand.Rand
}

func NewHandoff(phases PhaseMachine, dispatch Dispatcher, rng *rand.Rand) *Handoff {
	return &Handoff{phases: phases, dispatch: dispatch, rng: rng}
}

// Activate requests the LoadMap transition and, if the phase machine accepts
// it, resolves the seed and dispatches generation. Repeated activations are
// refused by the phase machine once loading has begun.
func (h *Handoff) Activate(buf *SeedBuffer) (seed int, started bool) {
	if !h.phases.ChangeState(phase.LoadMap) {
		return 0, false
	}
	seed = ResolveSeed(buf, h.rng)
	h.dispatch.Dispatch(seed)
	return seed, true
}

// Loading reports whether a map is being generated.
func (h *Handoff) Loading() bool {
	return h.phases.Current() == phase.LoadingMap
}

// Package phase holds the game's global phase state machine.
package phase

import (
	"io"

	"github.com/charmbracelet/log"
)

// State is the phase the game is in.
type State int

const (
	Title State = iota
	LoadingMap
	Playing
)

func (s State) String() string {
	switch s {
	case Title:
		return "title"
	case LoadingMap:
		return "loading_map"
	case Playing:
		return "playing"
	default:
		return "unknown"
	}
}

// Action requests a phase change.
type Action int

const (
	LoadMap Action = iota
	MapReady
	GenerationFailed
	ReturnToTitle
)

func (a Action) String() string {
	switch a {
	case LoadMap:
		return "load_map"
	case MapReady:
		return "map_ready"
	case GenerationFailed:
		return "generation_failed"
	case ReturnToTitle:
		return "return_to_title"
	default:
		return "unknown"
	}
}

// transitions maps each action to the state it applies in and the state it
// leads to.
var transitions = map[Action]struct{ from, to State }{
	LoadMap:          {Title, LoadingMap},
	MapReady:         {LoadingMap, Playing},
	GenerationFailed: {LoadingMap, Title},
	ReturnToTitle:    {Playing, Title},
}

// Machine is the current game phase. It is owned by the game loop and is not
// safe for concurrent use; generation results reach it through the loop.
type Machine struct {
	current State
	logger  *log.Logger
	changes int
}

// New returns a machine in the Title phase. A nil logger discards output.
func New(logger *log.Logger) *Machine {
	if logger == nil {
		logger = log.New(io.Discard)
	}
	return &Machine{current: Title, logger: logger}
}

func (m *Machine) Current() State { return m.current }

// Changes returns how many transitions have been applied.
func (m *Machine) Changes() int { return m.changes }

// ChangeState applies a if it is valid in the current phase and reports
// whether the phase changed.
func (m *Machine) ChangeState(a Action) bool {
	t, ok := transitions[a]
	if !ok || t.from != m.current {
		m.logger.Warn("phase change rejected", "action", a, "state", m.current)
		return false
	}
	m.logger.Info("phase change", "action", a, "from", m.current, "to", t.to)
	m.current = t.to
	m.changes++
	return true
}

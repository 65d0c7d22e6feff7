package title

// ButtonState is the visual state of the start button. The values index the
// button's sprite frames.
type ButtonState int

const (
	ButtonUp ButtonState = iota
	ButtonHover
	ButtonPressed
	buttonStateCount
)

func (s ButtonState) String() string {
	switch s {
	case ButtonUp:
		return "up"
	case ButtonHover:
		return "hover"
	case ButtonPressed:
		return "pressed"
	default:
		return "unknown"
	}
}

// Button tracks the start control. State is recomputed every frame from the
// pointer; armed carries a press made over the button into later frames so a
// release over it completes the click.
type Button struct {
	state ButtonState
	armed bool
}

// State returns the current visual state.
func (b *Button) State() ButtonState { return b.state }

// Armed reports whether the mouse was pressed over the button and has not
// yet been released or dragged off.
func (b *Button) Armed() bool { return b.armed }

// Step evaluates one frame of pointer input and reports whether the
// press-then-release gesture completed.
func (b *Button) Step(inside, mouseDown bool) (activated bool) {
	switch {
	case inside && !mouseDown:
		activated = b.armed
		b.state = ButtonHover
		b.armed = false
	case inside && mouseDown:
		b.state = ButtonPressed
		b.armed = true
	default:
		b.state = ButtonUp
		b.armed = false
	}
	return activated
}

// Force shows the button pressed for the keyboard accelerator. The caller
// activates directly; gesture tracking is bypassed.
func (b *Button) Force() {
	b.state = ButtonPressed
}

// Reset returns the button to Up and drops any pending press.
func (b *Button) Reset() {
	b.state = ButtonUp
	b.armed = false
}

package title

import "time"

// DefaultFrameInterval is the time each loading frame stays on screen.
const DefaultFrameInterval = 500 * time.Millisecond

// AnimationClock steps a looping frame index on a fixed wall-clock interval.
type AnimationClock struct {
	interval time.Duration
	frames   int
	acc      time.Duration
	frame    int
}

// NewAnimationClock returns a clock over frames frames. Non-positive values
// fall back to one frame and DefaultFrameInterval.
func NewAnimationClock(frames int, interval time.Duration) *AnimationClock {
	if frames < 1 {
		frames = 1
	}
	if interval <= 0 {
		interval = DefaultFrameInterval
	}
	return &AnimationClock{interval: interval, frames: frames}
}

// Advance adds dt of elapsed time while running is true and returns how many
// frames were stepped. The remainder past each interval is carried over.
func (c *AnimationClock) Advance(dt time.Duration, running bool) int {
	if !running || dt <= 0 {
		return 0
	}
	c.acc += dt
	steps := 0
	for c.acc >= c.interval {
		c.acc -= c.interval
		c.frame = (c.frame + 1) % c.frames
		steps++
	}
	return steps
}

func (c *AnimationClock) Frame() int              { return c.frame }
func (c *AnimationClock) Frames() int             { return c.frames }
func (c *AnimationClock) Pending() time.Duration  { return c.acc }
func (c *AnimationClock) Interval() time.Duration { return c.interval }

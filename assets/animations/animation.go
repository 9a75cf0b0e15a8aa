// Package animations provides a tick-counted frame animation.
package animations

// Animation cycles a frame index between First and Last, advancing once
// every Ticks update calls.
type Animation struct {
	First int
	Last  int
	Ticks int // update calls per frame

	tickCounter int
	frame       int
}

// New creates a looping animation starting on the first frame.
func New(first, last, ticks int) *Animation {
	return &Animation{
		First: first,
		Last:  last,
		Ticks: ticks,
		frame: first,
	}
}

// Update advances the tick counter, moving to the next frame every Ticks
// calls and wrapping back to First past the end.
func (a *Animation) Update() {
	a.tickCounter++
	if a.tickCounter < a.Ticks {
		return
	}
	a.tickCounter = 0
	a.frame++
	if a.frame > a.Last {
		a.frame = a.First
	}
}

// Frame returns the current frame index.
func (a *Animation) Frame() int {
	return a.frame
}

// Restart rewinds the animation to its first frame.
func (a *Animation) Restart() {
	a.frame = a.First
	a.tickCounter = 0
}

package scenes

import (
	"math"

	"github.com/automoto/flappy/config"
)

// Vec2 is a 2D point or vector in screen space.
type Vec2 struct {
	X float64
	Y float64
}

// Avatar holds the playable bird's motion state. It knows nothing about
// input or rendering: the game scene decides when to call Flap and Step.
type Avatar struct {
	Position Vec2
	Velocity Vec2
	Rotation float64 // radians; negative is nose up

	// AllowGravity stays false until the first flap; while false the
	// avatar sits motionless at its start position.
	AllowGravity bool

	flapCounter int
	flapDelta   float64
}

// NewAvatar returns an avatar at the start position.
func NewAvatar() *Avatar {
	return &Avatar{
		Position: Vec2{X: config.Physics.StartX, Y: config.Physics.StartY},
	}
}

// Flap sets the upward impulse and schedules the rotation tween: over the
// next FlapFrames physics steps the rotation is pulled toward the nose-up
// angle in equal decrements. If the avatar is already pitched past that
// angle the decrements still apply and overshoot it; that matches the
// observed behavior and is left as is.
func (a *Avatar) Flap() {
	a.Velocity.Y = config.Physics.FlapImpulse
	a.flapCounter = config.Physics.FlapFrames
	a.flapDelta = math.Abs(config.Physics.FlapRotation-a.Rotation) / float64(config.Physics.FlapFrames)
}

// Step applies one gravity-enabled physics tick: velocity, position, then
// rotation. The two rotation branches are intentionally independent, not
// an if/else: while the flap tween is running the per-tick downward drift
// also applies, giving a slightly slower pitch-up, and once the tween
// ends the drift alone turns the bird nose down until the cap.
func (a *Avatar) Step() {
	a.Velocity.Y += config.Physics.GravityStep()
	a.Position.Y += a.Velocity.Y

	if a.flapCounter > 0 {
		a.Rotation -= a.flapDelta
		a.flapCounter--
	}
	if a.Rotation < config.Physics.MaxRotation {
		a.Rotation += config.Physics.RotationDrift
	}
}

// FlapCounter returns the remaining ticks of the rotation tween.
func (a *Avatar) FlapCounter() int {
	return a.flapCounter
}

// FlapDelta returns the per-tick rotation decrement of the running tween.
func (a *Avatar) FlapDelta() float64 {
	return a.flapDelta
}

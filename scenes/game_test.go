package scenes

import (
	"math"
	"testing"

	"github.com/automoto/flappy/config"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fakePointer is a scriptable Pointer for headless tests.
type fakePointer struct {
	x, y int
	down bool
}

func (p *fakePointer) Position() (int, int) { return p.x, p.y }
func (p *fakePointer) Pressed() bool        { return p.down }

func update(t *testing.T, s *GameScene) {
	t.Helper()
	tr, err := s.Update()
	require.NoError(t, err)
	assert.Equal(t, Transition{}, tr, "game scene never leaves the stack")
}

func TestGameScene_StationaryBeforeFirstFlap(t *testing.T) {
	p := &fakePointer{}
	s := newGameScene(p)

	for i := 0; i < 10; i++ {
		update(t, s)
	}

	assert.Equal(t, Vec2{X: config.Physics.StartX, Y: config.Physics.StartY}, s.avatar.Position)
	assert.Equal(t, Vec2{}, s.avatar.Velocity)
	assert.False(t, s.avatar.AllowGravity)
	assert.True(t, s.instructionsVisible)
}

func TestGameScene_FirstFlapStartsGameplay(t *testing.T) {
	p := &fakePointer{}
	s := newGameScene(p)

	p.down = true
	update(t, s)

	assert.False(t, s.instructionsVisible)
	assert.True(t, s.avatar.AllowGravity)
	assert.Equal(t, config.Physics.FlapImpulse, s.avatar.Velocity.Y)
	assert.Equal(t, config.Physics.FlapFrames, s.avatar.FlapCounter())
	assert.Equal(t, 1.0/6.0, s.avatar.FlapDelta())
	assert.Zero(t, s.avatar.Rotation, "the press tick does not advance the tween")
	assert.Equal(t, config.Physics.StartY, s.avatar.Position.Y, "the press tick applies no gravity")
}

func TestGameScene_GravityAppliesOnTickAfterFlap(t *testing.T) {
	p := &fakePointer{}
	s := newGameScene(p)

	p.down = true
	update(t, s)
	p.down = false
	update(t, s)

	wantVel := config.Physics.FlapImpulse + config.Physics.GravityStep()
	wantPos := config.Physics.StartY + wantVel

	assert.Equal(t, wantVel, s.avatar.Velocity.Y)
	assert.Equal(t, wantPos, s.avatar.Position.Y)
	assert.Equal(t, config.Physics.FlapFrames-1, s.avatar.FlapCounter())

	// Both rotation branches apply on the same tick: the tween decrement
	// and the downward drift.
	wantRot := 0.0
	wantRot -= 1.0 / 6.0
	wantRot += config.Physics.RotationDrift
	assert.Equal(t, wantRot, s.avatar.Rotation)
}

func TestGameScene_VelocityStepIsExact(t *testing.T) {
	p := &fakePointer{}
	s := newGameScene(p)

	p.down = true
	update(t, s)
	p.down = false

	vel := s.avatar.Velocity.Y
	for i := 0; i < 50; i++ {
		update(t, s)
		vel += config.Physics.GravityStep()
		assert.Equal(t, vel, s.avatar.Velocity.Y)
	}
}

func TestGameScene_RotationDriftStopsAtCeiling(t *testing.T) {
	p := &fakePointer{}
	s := newGameScene(p)

	p.down = true
	update(t, s)
	p.down = false

	// Run out the tween, then let the bird pitch nose down.
	for s.avatar.FlapCounter() > 0 {
		update(t, s)
		assert.GreaterOrEqual(t, s.avatar.FlapCounter(), 0, "flap counter never goes negative")
	}

	prev := s.avatar.Rotation
	for i := 0; i < 100; i++ {
		update(t, s)
		if prev >= config.Physics.MaxRotation {
			assert.Equal(t, prev, s.avatar.Rotation, "rotation stops changing at the cap")
		} else {
			assert.Equal(t, prev+config.Physics.RotationDrift, s.avatar.Rotation)
		}
		prev = s.avatar.Rotation
	}
	assert.GreaterOrEqual(t, s.avatar.Rotation, config.Physics.MaxRotation)
}

func TestGameScene_HeldButtonFlapsOnce(t *testing.T) {
	p := &fakePointer{}
	s := newGameScene(p)

	p.down = true
	update(t, s)
	require.Equal(t, config.Physics.FlapFrames, s.avatar.FlapCounter())

	// Holding the button must not re-fire the flap: the tween counter
	// keeps draining instead of snapping back to its full value.
	for i := 0; i < 4; i++ {
		update(t, s)
	}
	assert.Equal(t, config.Physics.FlapFrames-4, s.avatar.FlapCounter())
}

func TestGameScene_ReleaseThenPressFlapsAgain(t *testing.T) {
	p := &fakePointer{}
	s := newGameScene(p)

	p.down = true
	update(t, s)
	p.down = false
	update(t, s)
	update(t, s)

	rotation := s.avatar.Rotation
	p.down = true
	update(t, s)

	// Gravity is already on, so the same tick also runs one physics step:
	// the re-armed tween has advanced once by the end of the update.
	assert.Equal(t, config.Physics.FlapFrames-1, s.avatar.FlapCounter(), "a fresh edge re-arms the tween")
	assert.Equal(t, math.Abs(config.Physics.FlapRotation-rotation)/float64(config.Physics.FlapFrames), s.avatar.FlapDelta())
}

func TestGameScene_InstructionsHideExactlyOnce(t *testing.T) {
	p := &fakePointer{}
	s := newGameScene(p)

	p.down = true
	update(t, s)
	assert.False(t, s.instructionsVisible)

	p.down = false
	update(t, s)
	p.down = true
	update(t, s)
	assert.False(t, s.instructionsVisible, "overlay never comes back")
}

func TestGameScene_BackgroundScrollsDuringPlay(t *testing.T) {
	p := &fakePointer{}
	s := newGameScene(p)

	for i := 0; i < 7; i++ {
		update(t, s)
	}

	assert.Equal(t, 7*config.Background.Ground.Rate, s.background.ground.offset)
}

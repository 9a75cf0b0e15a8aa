package scenes

import (
	"testing"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// mockScene is a test double for the Scene interface.
type mockScene struct {
	updateCalled  int
	drawCalled    int
	disposeCalled int
	transition    Transition
	updateErr     error
}

func (m *mockScene) Update() (Transition, error) {
	m.updateCalled++
	tr := m.transition
	m.transition = Transition{}
	return tr, m.updateErr
}

func (m *mockScene) Draw(screen *ebiten.Image) {
	m.drawCalled++
}

func (m *mockScene) Dispose() {
	m.disposeCalled++
}

func TestManager_Update_DelegatesToTopScene(t *testing.T) {
	bottom := &mockScene{}
	top := &mockScene{}
	m := &Manager{scenes: []Scene{bottom, top}}

	require.NoError(t, m.Update())

	assert.Equal(t, 1, top.updateCalled, "top scene receives the update")
	assert.Equal(t, 0, bottom.updateCalled, "covered scene is not updated")
}

func TestManager_Push_NextUpdateGoesToPushedScene(t *testing.T) {
	pushed := &mockScene{}
	first := &mockScene{transition: Push(pushed)}
	m := &Manager{scenes: []Scene{first}}

	require.NoError(t, m.Update())
	require.NoError(t, m.Update())

	assert.Equal(t, 1, first.updateCalled)
	assert.Equal(t, 1, pushed.updateCalled, "update after a push goes to the new top")
	assert.Equal(t, 0, first.disposeCalled, "pushed-over scene keeps its resources")
}

func TestManager_Pop_ReturnsToPriorSceneAndDisposes(t *testing.T) {
	bottom := &mockScene{}
	top := &mockScene{transition: Pop()}
	m := &Manager{scenes: []Scene{bottom, top}}

	require.NoError(t, m.Update())

	assert.Equal(t, 1, top.disposeCalled, "popped scene is disposed")

	require.NoError(t, m.Update())
	assert.Equal(t, 1, bottom.updateCalled, "update after a pop goes to the prior top")
}

func TestManager_EmptyStackRequestsQuit(t *testing.T) {
	only := &mockScene{transition: Pop()}
	m := &Manager{scenes: []Scene{only}}

	require.NoError(t, m.Update())

	err := m.Update()
	assert.ErrorIs(t, err, ebiten.Termination, "empty stack asks the host to quit")
}

func TestManager_UpdateErrorPropagates(t *testing.T) {
	failing := &mockScene{updateErr: assert.AnError}
	m := &Manager{scenes: []Scene{failing}}

	err := m.Update()
	assert.ErrorIs(t, err, assert.AnError)
}

func TestManager_Draw_TargetsTopScene(t *testing.T) {
	bottom := &mockScene{}
	top := &mockScene{}
	m := &Manager{scenes: []Scene{bottom, top}}

	screen := ebiten.NewImage(288, 505)
	m.Draw(screen)

	assert.Equal(t, 1, top.drawCalled)
	assert.Equal(t, 0, bottom.drawCalled)
}

func TestManager_PushStartsFade(t *testing.T) {
	pushed := &mockScene{}
	first := &mockScene{transition: Push(pushed)}
	m := &Manager{scenes: []Scene{first}}

	require.NoError(t, m.Update())
	assert.Greater(t, m.fadeAlpha, float32(0), "push starts a fade-in")

	for i := 0; i < fadeFrames; i++ {
		require.NoError(t, m.Update())
	}
	assert.Zero(t, m.fadeAlpha, "fade finishes after its duration")
	assert.Nil(t, m.fade)
}

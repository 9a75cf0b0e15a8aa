package scenes

import (
	"image/color"

	"github.com/automoto/flappy/config"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"
)

// fadeFrames is how long the black fade-in runs after a scene is pushed.
const fadeFrames = 18

// Manager owns the scene stack. The top scene receives every update and
// draw; transitions returned by Update are applied before the next tick.
type Manager struct {
	scenes []Scene

	fade      *gween.Tween
	fadeAlpha float32
}

// NewManager creates the manager with the title scene on the stack.
func NewManager() (*Manager, error) {
	title, err := NewTitleScene()
	if err != nil {
		return nil, err
	}
	return &Manager{scenes: []Scene{title}}, nil
}

// Update ticks the top scene and applies its transition. With an empty
// stack it asks the host to quit by returning ebiten.Termination.
func (m *Manager) Update() error {
	if len(m.scenes) == 0 {
		return ebiten.Termination
	}

	top := m.scenes[len(m.scenes)-1]
	tr, err := top.Update()
	if err != nil {
		return err
	}

	switch tr.kind {
	case transitionPush:
		m.scenes = append(m.scenes, tr.next)
		m.fade = gween.New(1, 0, fadeFrames, ease.Linear)
		m.fadeAlpha = 1
	case transitionPop:
		top.Dispose()
		m.scenes = m.scenes[:len(m.scenes)-1]
	}

	if m.fade != nil {
		alpha, done := m.fade.Update(1)
		m.fadeAlpha = alpha
		if done {
			m.fade = nil
			m.fadeAlpha = 0
		}
	}

	return nil
}

// Draw renders the top scene, plus the fade overlay while one is running.
func (m *Manager) Draw(screen *ebiten.Image) {
	if len(m.scenes) == 0 {
		return
	}
	m.scenes[len(m.scenes)-1].Draw(screen)

	if m.fadeAlpha > 0 {
		c := color.RGBA{A: uint8(m.fadeAlpha * 255)}
		vector.FillRect(screen,
			0, 0,
			float32(config.Screen.Width), float32(config.Screen.Height),
			c, false)
	}
}

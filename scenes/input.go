package scenes

import "github.com/hajimehoshi/ebiten/v2"

// Pointer reports the primary pointer's position and level-triggered
// button state. Scenes that need edge detection keep their own latch and
// compare against the previous tick; the raw held state is never fed to
// physics code directly.
type Pointer interface {
	Position() (int, int)
	Pressed() bool
}

// mousePointer polls the real cursor and left mouse button.
type mousePointer struct{}

func (mousePointer) Position() (int, int) {
	return ebiten.CursorPosition()
}

func (mousePointer) Pressed() bool {
	return ebiten.IsMouseButtonPressed(ebiten.MouseButtonLeft)
}

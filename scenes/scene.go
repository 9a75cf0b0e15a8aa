// Package scenes contains the scene stack and the game's two scenes.
//
// A Scene owns all of its textures, sounds and mutable state. The Manager
// keeps a stack of scenes and delivers every update and draw to the top
// one; a scene asks for a stack change by returning a Transition from
// Update rather than by mutating the Manager directly.
package scenes

import "github.com/hajimehoshi/ebiten/v2"

// Scene is one screen of the game.
type Scene interface {
	// Update advances the scene by one tick and reports the stack change
	// to apply, if any. An error aborts the game loop.
	Update() (Transition, error)

	// Draw renders the scene.
	Draw(screen *ebiten.Image)

	// Dispose releases the scene's textures and sounds. Called when the
	// scene is popped off the stack.
	Dispose()
}

type transitionKind int

const (
	transitionNone transitionKind = iota
	transitionPush
	transitionPop
)

// Transition is the value a scene returns from Update to change the
// stack. The zero value leaves the stack unchanged.
type Transition struct {
	kind transitionKind
	next Scene
}

// Push returns a Transition that puts s on top of the stack.
func Push(s Scene) Transition {
	return Transition{kind: transitionPush, next: s}
}

// Pop returns a Transition that removes the current scene.
func Pop() Transition {
	return Transition{kind: transitionPop}
}

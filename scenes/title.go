package scenes

import (
	"github.com/automoto/flappy/assets"
	"github.com/automoto/flappy/config"
	"github.com/hajimehoshi/ebiten/v2"
)

// rect is an axis-aligned rectangle whose Contains test is inclusive on
// all four edges, matching the start button's hit area.
type rect struct {
	X, Y, W, H float64
}

func (r rect) Contains(x, y float64) bool {
	return x >= r.X && x <= r.X+r.W &&
		y >= r.Y && y <= r.Y+r.H
}

// buttonRect centers a W x H button horizontally on the screen and
// vertically on the configured button line.
func buttonRect(w, h float64) rect {
	return rect{
		X: float64(config.Screen.Width)/2 - w/2,
		Y: config.Title.ButtonY - h/2,
		W: w,
		H: h,
	}
}

// TitleScene shows the splash art and the start button. Pressing the
// primary button inside the button rectangle pushes the game scene. The
// check is level-triggered on purpose: the press that fires it makes the
// game scene top of the stack, so the same click cannot fire it twice.
type TitleScene struct {
	sky    *ebiten.Image
	banner *ebiten.Image
	button *ebiten.Image

	bird       *birdSprite
	background *Background

	startRect rect
	pointer   Pointer

	// newGameScene builds the scene pushed on a click. A field so tests
	// can substitute a constructor that loads nothing.
	newGameScene func() (Scene, error)
}

// NewTitleScene loads the title assets.
func NewTitleScene() (*TitleScene, error) {
	imgs, err := assets.LoadImages(
		config.Assets.Sky,
		config.Assets.Title,
		config.Assets.StartButton,
	)
	if err != nil {
		return nil, err
	}

	bird, err := newBirdSprite()
	if err != nil {
		return nil, err
	}

	background, err := NewBackground()
	if err != nil {
		return nil, err
	}

	button := imgs[2]
	return &TitleScene{
		sky:        imgs[0],
		banner:     imgs[1],
		button:     button,
		bird:       bird,
		background: background,
		startRect:  buttonRect(float64(button.Bounds().Dx()), float64(button.Bounds().Dy())),
		pointer:    mousePointer{},
		newGameScene: func() (Scene, error) {
			return NewGameScene()
		},
	}, nil
}

// Update advances the decorations and checks the start button.
func (t *TitleScene) Update() (Transition, error) {
	t.bird.Tick()
	t.background.Update()

	x, y := t.pointer.Position()
	if t.pointer.Pressed() && t.startRect.Contains(float64(x), float64(y)) {
		game, err := t.newGameScene()
		if err != nil {
			return Transition{}, err
		}
		return Push(game), nil
	}
	return Transition{}, nil
}

// Draw renders sky, parallax layers, the decorative bird, the banner and
// the start button, back to front.
func (t *TitleScene) Draw(screen *ebiten.Image) {
	screen.DrawImage(t.sky, nil)

	t.background.Draw(screen)

	op := &ebiten.DrawImageOptions{}
	op.GeoM.Translate(config.Title.BirdX, config.Title.BirdY)
	screen.DrawImage(t.bird.Image(), op)

	op = &ebiten.DrawImageOptions{}
	op.GeoM.Translate(config.Title.BannerX, config.Title.BannerY)
	screen.DrawImage(t.banner, op)

	op = &ebiten.DrawImageOptions{}
	op.GeoM.Translate(t.startRect.X, t.startRect.Y)
	screen.DrawImage(t.button, op)
}

// Dispose releases the title textures.
func (t *TitleScene) Dispose() {
	for _, img := range []*ebiten.Image{t.sky, t.banner, t.button} {
		if img != nil {
			img.Deallocate()
		}
	}
	if t.bird != nil {
		t.bird.Dispose()
	}
	if t.background != nil {
		t.background.Dispose()
	}
}

package scenes

import (
	"github.com/automoto/flappy/assets"
	"github.com/automoto/flappy/assets/animations"
	"github.com/automoto/flappy/config"
	"github.com/hajimehoshi/ebiten/v2"
)

// birdSprite is the three-frame flapping bird used by both scenes.
type birdSprite struct {
	sheet  *ebiten.Image
	frames []*ebiten.Image
	anim   *animations.Animation
}

// newBirdAnimation builds the frame cycle without textures.
func newBirdAnimation() *animations.Animation {
	return animations.New(0, config.Avatar.FrameCount-1, config.Avatar.FrameTicks)
}

func newBirdSprite() (*birdSprite, error) {
	sheet, err := assets.LoadImage(config.Assets.Bird)
	if err != nil {
		return nil, err
	}
	return &birdSprite{
		sheet:  sheet,
		frames: assets.Frames(sheet, config.Avatar.FrameWidth, config.Avatar.FrameHeight, config.Avatar.FrameCount),
		anim:   newBirdAnimation(),
	}, nil
}

func (b *birdSprite) Tick() {
	b.anim.Update()
}

// Image returns the current animation frame.
func (b *birdSprite) Image() *ebiten.Image {
	return b.frames[b.anim.Frame()]
}

func (b *birdSprite) Dispose() {
	if b.sheet != nil {
		b.sheet.Deallocate()
	}
}

package scenes

import (
	"image"
	"math"

	"github.com/automoto/flappy/assets"
	"github.com/automoto/flappy/config"
	"github.com/hajimehoshi/ebiten/v2"
)

// backgroundLayer is one parallax strip: a texture drawn at a fixed
// screen position through a clip window whose x offset advances every
// tick. The offset grows without bound; Draw wraps it modulo the texture
// width.
type backgroundLayer struct {
	img    *ebiten.Image
	offset float64
	cfg    config.LayerConfig
}

func (l *backgroundLayer) update() {
	l.offset += l.cfg.Rate
}

func (l *backgroundLayer) draw(screen *ebiten.Image) {
	texW := float64(l.img.Bounds().Dx())
	x := math.Mod(l.offset, texW)

	// The clip window [x, x+width) can run past the right edge of the
	// texture. Ebitengine sub-images do not wrap, so the tail of the
	// texture and, when needed, a second slice from its start are drawn.
	drawn := 0.0
	for drawn < l.cfg.Width {
		w := math.Min(l.cfg.Width-drawn, texW-x)
		r := image.Rect(int(x), 0, int(x+w), int(l.cfg.Height))

		op := &ebiten.DrawImageOptions{}
		op.GeoM.Translate(drawn, l.cfg.Y)
		screen.DrawImage(l.img.SubImage(r).(*ebiten.Image), op)

		drawn += w
		x = 0
	}
}

// Background scrolls four parallax layers; nearer layers move faster.
// It is shared by both scenes, each owning its own instance.
type Background struct {
	clouds    backgroundLayer
	cityscape backgroundLayer
	forest    backgroundLayer
	ground    backgroundLayer
}

// newBackground builds the layer state without textures. Used directly in
// tests; NewBackground fills in the images.
func newBackground() *Background {
	return &Background{
		clouds:    backgroundLayer{cfg: config.Background.Clouds},
		cityscape: backgroundLayer{cfg: config.Background.Cityscape},
		forest:    backgroundLayer{cfg: config.Background.Forest},
		ground:    backgroundLayer{cfg: config.Background.Ground},
	}
}

// NewBackground loads the four layer textures.
func NewBackground() (*Background, error) {
	imgs, err := assets.LoadImages(
		config.Assets.Clouds,
		config.Assets.Cityscape,
		config.Assets.Trees,
		config.Assets.Ground,
	)
	if err != nil {
		return nil, err
	}

	b := newBackground()
	b.clouds.img = imgs[0]
	b.cityscape.img = imgs[1]
	b.forest.img = imgs[2]
	b.ground.img = imgs[3]
	return b, nil
}

// Update advances every layer's clip offset by its scroll rate.
func (b *Background) Update() {
	b.ground.update()
	b.forest.update()
	b.cityscape.update()
	b.clouds.update()
}

// Draw renders the layers back to front.
func (b *Background) Draw(screen *ebiten.Image) {
	b.clouds.draw(screen)
	b.cityscape.draw(screen)
	b.forest.draw(screen)
	b.ground.draw(screen)
}

// Dispose releases the layer textures.
func (b *Background) Dispose() {
	for _, l := range []*backgroundLayer{&b.clouds, &b.cityscape, &b.forest, &b.ground} {
		if l.img != nil {
			l.img.Deallocate()
		}
	}
}

package scenes

import (
	"testing"

	"github.com/automoto/flappy/config"
	"github.com/stretchr/testify/assert"
)

func TestBackground_ScrollRates(t *testing.T) {
	b := newBackground()

	for i := 0; i < 10; i++ {
		b.Update()
	}

	assert.Equal(t, 10.0, b.clouds.offset)
	assert.Equal(t, 20.0, b.cityscape.offset)
	assert.Equal(t, 30.0, b.forest.offset)
	assert.Equal(t, 40.0, b.ground.offset)
}

func TestBackground_OffsetsGrowUnbounded(t *testing.T) {
	b := newBackground()

	const n = 1000
	for i := 0; i < n; i++ {
		b.Update()
	}

	// No wrapping happens in the scroll state itself; wrapping is a draw
	// concern.
	assert.Equal(t, n*config.Background.Clouds.Rate, b.clouds.offset)
	assert.Equal(t, n*config.Background.Cityscape.Rate, b.cityscape.offset)
	assert.Equal(t, n*config.Background.Forest.Rate, b.forest.offset)
	assert.Equal(t, n*config.Background.Ground.Rate, b.ground.offset)
}

func TestBackground_LayerLayout(t *testing.T) {
	b := newBackground()

	assert.Equal(t, 300.0, b.clouds.cfg.Y)
	assert.Equal(t, 330.0, b.cityscape.cfg.Y)
	assert.Equal(t, 360.0, b.forest.cfg.Y)
	assert.Equal(t, 400.0, b.ground.cfg.Y)

	assert.Equal(t, config.LayerConfig{Y: 300, Width: 352, Height: 100, Rate: 1}, b.clouds.cfg)
	assert.Equal(t, config.LayerConfig{Y: 400, Width: 335, Height: 112, Rate: 4}, b.ground.cfg)
}

package config

import "image/color"

// ScreenConfig holds the logical framebuffer dimensions. The window is
// opened at exactly this size and is not resizable, so logical and
// physical pixels line up one to one.
type ScreenConfig struct {
	Width  int
	Height int
	Title  string
}

// PhysicsConfig contains the avatar motion constants. All values are
// per-tick and assume the fixed 60 Hz update rate; nothing is scaled by
// wall-clock time.
type PhysicsConfig struct {
	// Gravity is divided by 30 to get the per-tick velocity increment.
	Gravity     float64
	FlapImpulse float64 // vertical velocity set on flap
	FlapFrames  int     // ticks the rotation tween runs after a flap

	FlapRotation  float64 // nose-up rotation the tween aims for (radians)
	MaxRotation   float64 // nose-down rotation cap in free fall (radians)
	RotationDrift float64 // per-tick downward rotation while below the cap

	StartX float64
	StartY float64
}

// GravityStep returns the velocity increment applied each gravity-enabled tick.
func (p PhysicsConfig) GravityStep() float64 {
	return p.Gravity / 30.0
}

// LayerConfig describes one parallax layer: where it sits on screen, the
// size of the clip window sampled from its texture, and how many texture
// pixels the clip window advances per tick.
type LayerConfig struct {
	Y      float64
	Width  float64
	Height float64
	Rate   float64
}

// BackgroundConfig lists the parallax layers back to front.
type BackgroundConfig struct {
	Clouds    LayerConfig
	Cityscape LayerConfig
	Forest    LayerConfig
	Ground    LayerConfig
}

// AvatarConfig contains the bird sprite parameters.
type AvatarConfig struct {
	FrameWidth  int
	FrameHeight int
	FrameCount  int
	FrameTicks  int // ticks per animation frame

	OriginX float64
	OriginY float64
}

// TitleConfig contains the title scene layout.
type TitleConfig struct {
	BannerX float64
	BannerY float64
	BirdX   float64
	BirdY   float64
	ButtonY float64 // vertical center of the start button
}

// OverlayConfig contains the get-ready overlay layout (positions are the
// centers of the sprites).
type OverlayConfig struct {
	InstructionsY float64
	GetReadyY     float64
}

// AssetConfig maps every texture to its path under the working directory.
type AssetConfig struct {
	Sky          string
	Ground       string
	Trees        string
	Cityscape    string
	Clouds       string
	Bird         string
	Title        string
	StartButton  string
	Instructions string
	GetReady     string
}

// DebugConfig contains debug options settable from the command line.
type DebugConfig struct {
	Overlay bool // draw avatar state and TPS on top of the game scene
}

// Global configuration instances
var Screen ScreenConfig
var Physics PhysicsConfig
var Background BackgroundConfig
var Avatar AvatarConfig
var Title TitleConfig
var Overlay OverlayConfig
var Assets AssetConfig
var Debug DebugConfig

// Shared RGBA color constants
var (
	White          = color.RGBA{R: 255, G: 255, B: 255, A: 255}
	CornflowerBlue = color.RGBA{R: 100, G: 149, B: 237, A: 255}
)

func init() {
	Screen = ScreenConfig{
		Width:  288,
		Height: 505,
		Title:  "Flappy Bird",
	}

	Physics = PhysicsConfig{
		Gravity:     9.1,
		FlapImpulse: -7.5,
		FlapFrames:  6,

		FlapRotation:  -1.0,
		MaxRotation:   1.3,
		RotationDrift: 0.05,

		StartX: 100,
		StartY: float64(Screen.Height) / 2,
	}

	Background = BackgroundConfig{
		Clouds:    LayerConfig{Y: 300, Width: 352, Height: 100, Rate: 1},
		Cityscape: LayerConfig{Y: 330, Width: 300, Height: 43, Rate: 2},
		Forest:    LayerConfig{Y: 360, Width: 335, Height: 112, Rate: 3},
		Ground:    LayerConfig{Y: 400, Width: 335, Height: 112, Rate: 4},
	}

	Avatar = AvatarConfig{
		FrameWidth:  34,
		FrameHeight: 24,
		FrameCount:  3,
		FrameTicks:  5,

		OriginX: 17,
		OriginY: 12,
	}

	Title = TitleConfig{
		BannerX: 30,
		BannerY: 100,
		BirdX:   230,
		BirdY:   105,
		ButtonY: 300,
	}

	Overlay = OverlayConfig{
		InstructionsY: 325,
		GetReadyY:     100,
	}

	Assets = AssetConfig{
		Sky:          "./resources/sky.png",
		Ground:       "./resources/ground.png",
		Trees:        "./resources/trees.png",
		Cityscape:    "./resources/cityscape.png",
		Clouds:       "./resources/clouds.png",
		Bird:         "./resources/bird.png",
		Title:        "./resources/title.png",
		StartButton:  "./resources/start-button.png",
		Instructions: "./resources/instructions.png",
		GetReady:     "./resources/get-ready.png",
	}

	Debug = DebugConfig{
		Overlay: false,
	}
}

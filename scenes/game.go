package scenes

import (
	"fmt"

	"github.com/automoto/flappy/assets"
	"github.com/automoto/flappy/config"
	"github.com/automoto/flappy/fonts"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/audio"
	"github.com/hajimehoshi/ebiten/v2/text" //nolint:staticcheck // TODO: migrate to text/v2
)

// soundSet holds the game's sound effect players. They are loaded so a
// missing or undecodable file fails scene construction, but nothing in
// this build triggers playback; the collision and scoring events that
// would play them are not implemented.
type soundSet struct {
	players map[config.SoundID]*audio.Player
}

func newSoundSet() (*soundSet, error) {
	loader := assets.NewAudioLoader(assets.AudioContext())
	players := make(map[config.SoundID]*audio.Player, len(config.Sound.SFXPaths))
	for id, path := range config.Sound.SFXPaths {
		player, err := loader.LoadSFX(path)
		if err != nil {
			return nil, err
		}
		players[id] = player
	}
	return &soundSet{players: players}, nil
}

func (s *soundSet) Dispose() {
	for _, p := range s.players {
		_ = p.Close()
	}
}

// GameScene runs the avatar physics. Until the first flap the bird hangs
// motionless behind the get-ready overlays; the press that dismisses them
// is also the first flap.
type GameScene struct {
	sky          *ebiten.Image
	instructions *ebiten.Image
	getReady     *ebiten.Image

	bird       *birdSprite
	background *Background
	sounds     *soundSet

	avatar  *Avatar
	pointer Pointer

	isMouseDown         bool
	instructionsVisible bool

	// score is tracked but has no source of points: scoring needs the
	// pipe obstacles, which are not implemented.
	score int
}

// newGameScene builds the scene state without assets. Used directly in
// tests; NewGameScene fills in textures and sounds.
func newGameScene(p Pointer) *GameScene {
	return &GameScene{
		bird:                &birdSprite{anim: newBirdAnimation()},
		background:          newBackground(),
		avatar:              NewAvatar(),
		pointer:             p,
		instructionsVisible: true,
	}
}

// NewGameScene loads the game assets and sounds.
func NewGameScene() (*GameScene, error) {
	s := newGameScene(mousePointer{})

	imgs, err := assets.LoadImages(
		config.Assets.Sky,
		config.Assets.Instructions,
		config.Assets.GetReady,
	)
	if err != nil {
		return nil, err
	}
	s.sky = imgs[0]
	s.instructions = imgs[1]
	s.getReady = imgs[2]

	bird, err := newBirdSprite()
	if err != nil {
		return nil, err
	}
	s.bird = bird

	background, err := NewBackground()
	if err != nil {
		return nil, err
	}
	s.background = background

	sounds, err := newSoundSet()
	if err != nil {
		return nil, err
	}
	s.sounds = sounds

	return s, nil
}

func (s *GameScene) startGame() {
	if s.instructionsVisible {
		s.instructionsVisible = false
	}
	s.avatar.AllowGravity = true
}

// Update ticks the animation, edge-detects the primary button, applies
// physics and scrolls the background. The scene never leaves the stack;
// there is no game-over condition without collision detection.
func (s *GameScene) Update() (Transition, error) {
	s.bird.Tick()

	// Physics runs only when gravity was already on at the top of the
	// tick. The press that starts the game therefore leaves the flap
	// impulse untouched until the next tick.
	gravityOn := s.avatar.AllowGravity

	if s.pointer.Pressed() {
		if !s.isMouseDown {
			if s.instructionsVisible {
				s.startGame()
			}
			s.avatar.Flap()
			s.isMouseDown = true
		}
	} else {
		s.isMouseDown = false
	}

	if gravityOn {
		s.avatar.Step()
	}

	s.background.Update()

	return Transition{}, nil
}

// Draw renders sky, parallax layers, the overlays while they are visible,
// and the rotated avatar.
func (s *GameScene) Draw(screen *ebiten.Image) {
	screen.Fill(config.CornflowerBlue)
	screen.DrawImage(s.sky, nil)

	s.background.Draw(screen)

	if s.instructionsVisible {
		drawCentered(screen, s.instructions, float64(config.Screen.Width)/2, config.Overlay.InstructionsY)
		drawCentered(screen, s.getReady, float64(config.Screen.Width)/2, config.Overlay.GetReadyY)
	}

	op := &ebiten.DrawImageOptions{}
	op.GeoM.Translate(-config.Avatar.OriginX, -config.Avatar.OriginY)
	op.GeoM.Rotate(s.avatar.Rotation)
	op.GeoM.Translate(s.avatar.Position.X, s.avatar.Position.Y)
	screen.DrawImage(s.bird.Image(), op)

	if config.Debug.Overlay {
		s.drawDebug(screen)
	}
}

// drawCentered draws img with its center at (x, y).
func drawCentered(screen, img *ebiten.Image, x, y float64) {
	op := &ebiten.DrawImageOptions{}
	op.GeoM.Translate(-float64(img.Bounds().Dx())/2, -float64(img.Bounds().Dy())/2)
	op.GeoM.Translate(x, y)
	screen.DrawImage(img, op)
}

func (s *GameScene) drawDebug(screen *ebiten.Image) {
	face := fonts.Debug.Get()
	lines := []string{
		fmt.Sprintf("tps %.0f", ebiten.ActualTPS()),
		fmt.Sprintf("pos %.1f, %.1f", s.avatar.Position.X, s.avatar.Position.Y),
		fmt.Sprintf("vel %.3f  rot %.3f", s.avatar.Velocity.Y, s.avatar.Rotation),
		fmt.Sprintf("flap %d  score %d", s.avatar.FlapCounter(), s.score),
	}
	for i, line := range lines {
		text.Draw(screen, line, face, 4, 16+i*16, config.White)
	}
}

// Dispose releases the scene's textures and sound players.
func (s *GameScene) Dispose() {
	for _, img := range []*ebiten.Image{s.sky, s.instructions, s.getReady} {
		if img != nil {
			img.Deallocate()
		}
	}
	if s.bird != nil {
		s.bird.Dispose()
	}
	if s.background != nil {
		s.background.Dispose()
	}
	if s.sounds != nil {
		s.sounds.Dispose()
	}
}

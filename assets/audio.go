package assets

import (
	"bytes"
	"fmt"
	"io"
	"os"
	"sync"

	"github.com/automoto/flappy/config"
	"github.com/hajimehoshi/ebiten/v2/audio"
	"github.com/hajimehoshi/ebiten/v2/audio/wav"
)

// Global audio state - the context can only be created once per process.
var (
	globalAudioContext *audio.Context
	audioInitOnce      sync.Once
)

// AudioContext returns the process-wide audio context, creating it on
// first use.
func AudioContext() *audio.Context {
	audioInitOnce.Do(func() {
		globalAudioContext = audio.NewContext(config.Sound.SampleRate)
	})
	return globalAudioContext
}

// AudioLoader loads WAV sound effects from disk.
type AudioLoader struct {
	context *audio.Context
}

// NewAudioLoader creates an audio loader bound to the given context.
func NewAudioLoader(ctx *audio.Context) *AudioLoader {
	return &AudioLoader{context: ctx}
}

// LoadSFX reads and decodes a WAV file and returns a player for it.
func (l *AudioLoader) LoadSFX(path string) (*audio.Player, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read audio file %s: %w", path, err)
	}

	stream, err := wav.DecodeWithSampleRate(l.context.SampleRate(), bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("failed to decode wav %s: %w", path, err)
	}
	decoded, err := io.ReadAll(stream)
	if err != nil {
		return nil, fmt.Errorf("failed to read decoded audio %s: %w", path, err)
	}

	player, err := l.context.NewPlayer(bytes.NewReader(decoded))
	if err != nil {
		return nil, fmt.Errorf("failed to create player for %s: %w", path, err)
	}
	return player, nil
}

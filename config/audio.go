package config

// SoundID identifies a sound effect.
type SoundID int

const (
	SoundFlap SoundID = iota
	SoundGroundHit
	SoundPipeHit
	SoundScore
	SoundOuch
)

// SoundConfig contains audio configuration values.
type SoundConfig struct {
	SampleRate int

	// SFXPaths maps each sound to its file under the working directory.
	// Every listed file is loaded at game-scene construction so a missing
	// or corrupt sound fails startup the same way a missing texture does.
	SFXPaths map[SoundID]string
}

var Sound SoundConfig

func init() {
	Sound = SoundConfig{
		SampleRate: 44100,
		SFXPaths: map[SoundID]string{
			SoundFlap:      "./resources/flap.wav",
			SoundGroundHit: "./resources/ground-hit.wav",
			SoundPipeHit:   "./resources/pipe-hit.wav",
			SoundScore:     "./resources/score.wav",
			SoundOuch:      "./resources/ouch.wav",
		},
	}
}

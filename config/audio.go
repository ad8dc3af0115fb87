package config

// SoundID represents a logical sound effect
type SoundID int

const (
	SoundNone SoundID = iota
	// Gameplay sounds
	SoundLevelStart
	SoundCountdownTick
	SoundCountdownUrgent
	SoundHitDebris
	SoundReachGoal
	SoundGameOver
	// UI sounds
	SoundMenuNavigate
	SoundMenuSelect
)

// AudioConfig contains audio-related configuration values
type AudioConfig struct {
	SampleRate    int
	DefaultSFXVol float64
}

// ToneSpec describes one synthesized sound effect: a decaying tone swept
// from StartHz to EndHz over its duration.
type ToneSpec struct {
	StartHz  float64
	EndHz    float64
	Duration float64 // seconds
	Volume   float64 // 0..1 multiplier on the SFX volume
}

// SoundConfig maps sound IDs to their synthesized tones
type SoundConfig struct {
	Tones map[SoundID]ToneSpec
}

var Audio AudioConfig
var Sound SoundConfig

func init() {
	Audio = AudioConfig{
		SampleRate:    44100,
		DefaultSFXVol: 1.0,
	}

	Sound = SoundConfig{
		Tones: map[SoundID]ToneSpec{
			SoundLevelStart:      {StartHz: 330, EndHz: 660, Duration: 0.35, Volume: 0.8},
			SoundCountdownTick:   {StartHz: 880, EndHz: 880, Duration: 0.08, Volume: 0.5},
			SoundCountdownUrgent: {StartHz: 1100, EndHz: 980, Duration: 0.12, Volume: 0.7},
			SoundHitDebris:       {StartHz: 220, EndHz: 60, Duration: 0.45, Volume: 1.0},
			SoundReachGoal:       {StartHz: 523, EndHz: 1046, Duration: 0.5, Volume: 0.9},
			SoundGameOver:        {StartHz: 440, EndHz: 110, Duration: 1.2, Volume: 1.0},
			SoundMenuNavigate:    {StartHz: 700, EndHz: 700, Duration: 0.05, Volume: 0.4},
			SoundMenuSelect:      {StartHz: 600, EndHz: 900, Duration: 0.12, Volume: 0.6},
		},
	}
}

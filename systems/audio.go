package systems

import (
	"bytes"
	"sync"

	"github.com/hajimehoshi/ebiten/v2/audio"
	"github.com/yohamta/donburi/ecs"

	"github.com/automoto/orbitfall/assets"
	"github.com/automoto/orbitfall/components"
	cfg "github.com/automoto/orbitfall/config"
)

// Global audio state - created once and shared across all scenes
var (
	globalAudioContext *audio.Context
	globalSFXVolume    float64 = cfg.Audio.DefaultSFXVol
	globalMuted        bool
	toneCache          = map[cfg.SoundID][]byte{}
	audioInitOnce      sync.Once
)

// initGlobalAudio initializes the global audio context (called once)
func initGlobalAudio() {
	audioInitOnce.Do(func() {
		globalAudioContext = audio.NewContext(cfg.Audio.SampleRate)
	})
}

// PreloadAllSFX synthesizes every tone at startup to avoid lag on first
// play. This is especially important for WASM where allocation is slower.
func PreloadAllSFX() {
	initGlobalAudio()

	for id, spec := range cfg.Sound.Tones {
		if _, ok := toneCache[id]; !ok {
			toneCache[id] = assets.Synthesize(spec, cfg.Audio.SampleRate)
		}
	}
}

// UpdateAudio drains the pending SFX queue
func UpdateAudio(e *ecs.ECS) {
	initGlobalAudio()

	entry, ok := components.Audio.First(e.World)
	if !ok {
		return
	}
	audioData := components.Audio.Get(entry)
	for _, soundID := range audioData.PendingSFX {
		playSFX(soundID)
	}
	audioData.PendingSFX = audioData.PendingSFX[:0]
}

func playSFX(soundID cfg.SoundID) {
	if globalMuted || globalSFXVolume <= 0 {
		return
	}

	pcm, ok := toneCache[soundID]
	if !ok {
		spec, ok := cfg.Sound.Tones[soundID]
		if !ok {
			return
		}
		pcm = assets.Synthesize(spec, cfg.Audio.SampleRate)
		toneCache[soundID] = pcm
	}
	if len(pcm) == 0 {
		return
	}

	player, err := globalAudioContext.NewPlayer(bytes.NewReader(pcm))
	if err != nil {
		return
	}
	player.SetVolume(globalSFXVolume)
	player.Play()
}

// PlaySFX queues a sound effect for the next UpdateAudio pass
func PlaySFX(e *ecs.ECS, soundID cfg.SoundID) {
	audioData := GetOrCreateAudio(e)
	audioData.PendingSFX = append(audioData.PendingSFX, soundID)
}

// GetOrCreateAudio returns the singleton Audio component, creating if needed
func GetOrCreateAudio(e *ecs.ECS) *components.AudioData {
	entry, ok := components.Audio.First(e.World)
	if !ok {
		entry = e.World.Entry(e.World.Create(components.Audio))
	}
	return components.Audio.Get(entry)
}

// SetSFXVolume adjusts the global effect volume (0..1)
func SetSFXVolume(v float64) {
	if v < 0 {
		v = 0
	}
	if v > 1 {
		v = 1
	}
	globalSFXVolume = v
}

// SetMuted toggles all sound output
func SetMuted(muted bool) {
	globalMuted = muted
}

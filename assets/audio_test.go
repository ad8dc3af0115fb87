package assets

import (
	"bytes"
	"testing"

	cfg "github.com/automoto/orbitfall/config"
)

func TestSynthesizeProducesStereoPCM(t *testing.T) {
	spec := cfg.ToneSpec{StartHz: 440, EndHz: 440, Duration: 0.1, Volume: 1}
	pcm := Synthesize(spec, 44100)

	if want := 4410 * 4; len(pcm) != want {
		t.Fatalf("pcm length = %d, want %d", len(pcm), want)
	}
	if bytes.Equal(pcm, make([]byte, len(pcm))) {
		t.Fatal("synthesized tone is silent")
	}

	// Stereo frames carry the same sample on both channels.
	for i := 0; i < len(pcm); i += 4 {
		if pcm[i] != pcm[i+2] || pcm[i+1] != pcm[i+3] {
			t.Fatalf("frame %d channels differ", i/4)
		}
	}
}

func TestSynthesizeIsDeterministic(t *testing.T) {
	spec := cfg.Sound.Tones[cfg.SoundReachGoal]
	a := Synthesize(spec, cfg.Audio.SampleRate)
	b := Synthesize(spec, cfg.Audio.SampleRate)
	if !bytes.Equal(a, b) {
		t.Fatal("same spec synthesized differently")
	}
}

func TestSynthesizeZeroDuration(t *testing.T) {
	if pcm := Synthesize(cfg.ToneSpec{StartHz: 440, Duration: 0}, 44100); pcm != nil {
		t.Fatalf("zero-duration tone produced %d bytes", len(pcm))
	}
}

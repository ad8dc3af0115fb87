package assets

import (
	"math"

	cfg "github.com/automoto/orbitfall/config"
)

// attackSamples is a short linear fade-in that keeps the tone from clicking.
const attackSamples = 64

// Synthesize renders a tone spec to raw 16-bit little-endian stereo PCM at
// the given sample rate, the format ebiten's audio players consume. The
// tone sweeps linearly from StartHz to EndHz with a linear decay envelope.
func Synthesize(spec cfg.ToneSpec, sampleRate int) []byte {
	n := int(spec.Duration * float64(sampleRate))
	if n <= 0 {
		return nil
	}

	out := make([]byte, n*4)
	phase := 0.0
	for i := 0; i < n; i++ {
		t := float64(i) / float64(n)
		freq := spec.StartHz + (spec.EndHz-spec.StartHz)*t
		phase += 2 * math.Pi * freq / float64(sampleRate)

		env := spec.Volume * (1 - t)
		if i < attackSamples {
			env *= float64(i) / attackSamples
		}

		v := int16(math.Sin(phase) * env * math.MaxInt16)
		lo, hi := byte(v), byte(v>>8)
		out[i*4+0] = lo
		out[i*4+1] = hi
		out[i*4+2] = lo
		out[i*4+3] = hi
	}
	return out
}

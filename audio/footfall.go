// Package audio synthesizes and plays footfall sounds
package audio

import (
	"math"
	"math/rand/v2"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/effects"

	"github.com/lixenwraith/centipede/parameter"
)

// footfallGenerator streams a low thump: a falling sine plus noise under a fast exponential decay
type footfallGenerator struct {
	sr     beep.SampleRate
	pos    int
	attack int
	phase  float64
	rng    *rand.Rand
}

// NewFootfall returns a finite footfall streamer at the given volume in [0, 1]
// seed fixes the noise so identical calls produce identical samples
func NewFootfall(sr beep.SampleRate, volume float64, seed uint64) beep.Streamer {
	g := &footfallGenerator{
		sr:     sr,
		attack: sr.N(parameter.FootfallAttack),
		rng:    rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15)),
	}
	return newVolume(beep.Take(sr.N(parameter.FootfallDuration), g), volume)
}

func (g *footfallGenerator) Stream(samples [][2]float64) (n int, ok bool) {
	total := float64(g.sr.N(parameter.FootfallDuration))
	for i := range samples {
		t := float64(g.pos) / float64(g.sr)

		env := math.Exp(-t * parameter.FootfallDecay)
		if g.pos < g.attack {
			env *= float64(g.pos) / float64(g.attack)
		}

		// Pitch falls across the sound
		freq := parameter.FootfallFreq * (1 - parameter.FootfallSweep*math.Min(float64(g.pos)/total, 1))
		tone := math.Sin(2 * math.Pi * g.phase)
		g.phase += freq / float64(g.sr)
		g.phase -= math.Floor(g.phase)

		noise := g.rng.Float64()*2 - 1
		sample := env * ((1-parameter.FootfallNoiseMix)*tone + parameter.FootfallNoiseMix*noise)

		samples[i][0] = sample
		samples[i][1] = sample
		g.pos++
	}
	return len(samples), true
}

func (g *footfallGenerator) Err() error {
	return nil
}

// newVolume wraps s with a linear gain
// math.Log2(0) is -Inf, so zero volume is expressed as silent
func newVolume(s beep.Streamer, vol float64) beep.Streamer {
	vol = math.Min(vol, 1)
	if vol <= 0 {
		return &effects.Volume{Streamer: s, Base: 2, Volume: 0, Silent: true}
	}
	return &effects.Volume{Streamer: s, Base: 2, Volume: math.Log2(vol), Silent: false}
}

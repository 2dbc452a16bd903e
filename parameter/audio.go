package parameter

import "time"

// Audio output
const (
	AudioSampleRate = 44100

	// AudioBufferDuration sets speaker latency
	AudioBufferDuration = 100 * time.Millisecond

	// AudioMaxVoices caps concurrently mixed footfalls
	AudioMaxVoices = 6

	// AudioMinGap is the minimum spacing between footfall starts
	AudioMinGap = 30 * time.Millisecond
)

// Footfall thump
const (
	FootfallDuration = 70 * time.Millisecond
	FootfallAttack   = 3 * time.Millisecond

	// FootfallDecay is the exponential envelope rate per second
	FootfallDecay = 45.0

	// FootfallFreq is the body tone; it drops by FootfallSweep over the sound
	FootfallFreq  = 90.0
	FootfallSweep = 0.4

	// FootfallNoiseMix is the noise share; the tone gets the remainder
	FootfallNoiseMix = 0.3
)

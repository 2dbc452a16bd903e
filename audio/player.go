package audio

import (
	"fmt"
	"sync"
	"sync/atomic"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/speaker"

	"github.com/lixenwraith/centipede/parameter"
	"github.com/lixenwraith/centipede/status"
)

const sampleRate = beep.SampleRate(parameter.AudioSampleRate)

// Player mixes footfalls onto the speaker
// Without a working speaker every play call is a no-op
type Player struct {
	mu          sync.Mutex
	mixer       *beep.Mixer
	volume      float64
	initialized bool
	lastPlay    time.Time
	seed        uint64

	// Cached metric pointers
	silent    *atomic.Bool
	footfalls *atomic.Int64
}

// NewPlayer creates an uninitialized player at the given volume
// reg may be nil
func NewPlayer(volume float64, reg *status.Registry) *Player {
	if reg == nil {
		reg = status.NewRegistry()
	}
	p := &Player{
		mixer:     &beep.Mixer{},
		volume:    volume,
		silent:    reg.Bools.Get(status.KeySilent),
		footfalls: reg.Ints.Get(status.KeyFootfalls),
	}
	p.silent.Store(true)
	return p
}

// Initialize opens the speaker; on failure the player stays silent
func (p *Player) Initialize() error {
	p.mu.Lock()
	defer p.mu.Unlock()

	if p.initialized {
		return nil
	}

	if err := speaker.Init(sampleRate, sampleRate.N(parameter.AudioBufferDuration)); err != nil {
		return fmt.Errorf("audio: speaker init: %w", err)
	}

	speaker.Play(p.mixer)
	p.initialized = true
	p.silent.Store(false)
	return nil
}

// Silent reports whether output is unavailable
func (p *Player) Silent() bool {
	return p.silent.Load()
}

// Footfall starts n thumps, one per touchdown, subject to the voice cap and minimum gap
// Returns the number started
func (p *Player) Footfall(n int) int {
	if n <= 0 {
		return 0
	}

	p.mu.Lock()
	defer p.mu.Unlock()

	if !p.initialized {
		return 0
	}
	now := time.Now()
	if now.Sub(p.lastPlay) < parameter.AudioMinGap {
		return 0
	}

	started := 0
	speaker.Lock()
	for range n {
		if p.mixer.Len() >= parameter.AudioMaxVoices {
			break
		}
		p.seed++
		p.mixer.Add(NewFootfall(sampleRate, p.volume, p.seed))
		started++
	}
	speaker.Unlock()

	if started > 0 {
		p.lastPlay = now
		p.footfalls.Add(int64(started))
	}
	return started
}

// Cleanup stops all sounds and releases the speaker
func (p *Player) Cleanup() {
	p.mu.Lock()
	defer p.mu.Unlock()

	if !p.initialized {
		return
	}

	speaker.Lock()
	p.mixer.Clear()
	speaker.Unlock()
	speaker.Close()

	p.initialized = false
	p.silent.Store(true)
}

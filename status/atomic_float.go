package status

import (
	"math"
	"sync/atomic"
)

// AtomicFloat holds a float32 gauge behind atomic bit conversion
// Zero value reads as 0
type AtomicFloat struct {
	bits atomic.Uint32
}

// Set stores val
func (f *AtomicFloat) Set(val float32) {
	f.bits.Store(math.Float32bits(val))
}

// Get loads the current value
func (f *AtomicFloat) Get() float32 {
	return math.Float32frombits(f.bits.Load())
}

// Add adds delta and returns the new value
func (f *AtomicFloat) Add(delta float32) float32 {
	for {
		old := f.bits.Load()
		next := math.Float32frombits(old) + delta
		if f.bits.CompareAndSwap(old, math.Float32bits(next)) {
			return next
		}
	}
}

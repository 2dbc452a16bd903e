// Package status publishes simulation telemetry for concurrent readers
package status

import (
	"fmt"
	"strings"
	"sync/atomic"
)

// Metric names written by the simulation
const (
	KeyMoves     = "creature.moves"     // applied moves
	KeyBlocked   = "creature.blocked"   // moves that fell back to axis decomposition
	KeyThrottled = "creature.throttled" // requests swallowed by the throttle
	KeyPushes    = "creature.pushes"    // whole-segment pushes during collision resolution
	KeyOutcome   = "creature.outcome"   // label of the last applied move
	KeyPlanted   = "gait.planted"       // legs on the ground after the last tick
	KeyLanded    = "gait.landed"        // cumulative touchdowns
	KeyHeight    = "body.height"        // smoothed body height
	KeyResidual  = "softbody.residual"  // overlaps left after the last relax
	KeySilent    = "audio.silent"       // audio output unavailable
	KeyFootfalls = "audio.footfalls"    // footfall sounds started
)

// Registry groups typed metric maps
// Writers cache metric pointers at setup; the tick writes atomics directly
type Registry struct {
	Bools   *MetricMap[atomic.Bool]
	Ints    *MetricMap[atomic.Int64]
	Floats  *MetricMap[AtomicFloat]
	Strings *MetricMap[AtomicString]
}

// NewRegistry creates an empty Registry
func NewRegistry() *Registry {
	return &Registry{
		Bools:   NewMetricMap[atomic.Bool](),
		Ints:    NewMetricMap[atomic.Int64](),
		Floats:  NewMetricMap[AtomicFloat](),
		Strings: NewMetricMap[AtomicString](),
	}
}

// TotalCount returns the number of metrics across all types
func (r *Registry) TotalCount() int {
	return r.Bools.Count() + r.Ints.Count() + r.Floats.Count() + r.Strings.Count()
}

// Entry is one formatted metric
type Entry struct {
	Key   string
	Value string
}

// Snapshot formats every metric, grouped by type and sorted by key within a type
func (r *Registry) Snapshot() []Entry {
	entries := make([]Entry, 0, r.TotalCount())
	r.Ints.Range(func(k string, v *atomic.Int64) {
		entries = append(entries, Entry{k, fmt.Sprintf("%d", v.Load())})
	})
	r.Floats.Range(func(k string, v *AtomicFloat) {
		entries = append(entries, Entry{k, fmt.Sprintf("%.2f", v.Get())})
	})
	r.Strings.Range(func(k string, v *AtomicString) {
		entries = append(entries, Entry{k, v.Load()})
	})
	r.Bools.Range(func(k string, v *atomic.Bool) {
		entries = append(entries, Entry{k, fmt.Sprintf("%t", v.Load())})
	})
	return entries
}

// Line formats entries as "key=value" pairs on one line
func Line(entries []Entry) string {
	var b strings.Builder
	for i, e := range entries {
		if i > 0 {
			b.WriteString("  ")
		}
		b.WriteString(e.Key)
		b.WriteByte('=')
		b.WriteString(e.Value)
	}
	return b.String()
}

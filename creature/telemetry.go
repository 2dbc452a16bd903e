package creature

import (
	"sync/atomic"

	"github.com/lixenwraith/centipede/status"
)

// telemetry caches metric pointers so the tick writes atomics without lookups
type telemetry struct {
	moves     *atomic.Int64
	blocked   *atomic.Int64
	throttled *atomic.Int64
	pushes    *atomic.Int64
	outcome   *status.AtomicString
	planted   *atomic.Int64
	landed    *atomic.Int64
	height    *status.AtomicFloat
	residual  *atomic.Int64
}

func newTelemetry(reg *status.Registry) telemetry {
	return telemetry{
		moves:     reg.Ints.Get(status.KeyMoves),
		blocked:   reg.Ints.Get(status.KeyBlocked),
		throttled: reg.Ints.Get(status.KeyThrottled),
		pushes:    reg.Ints.Get(status.KeyPushes),
		outcome:   reg.Strings.Get(status.KeyOutcome),
		planted:   reg.Ints.Get(status.KeyPlanted),
		landed:    reg.Ints.Get(status.KeyLanded),
		height:    reg.Floats.Get(status.KeyHeight),
		residual:  reg.Ints.Get(status.KeyResidual),
	}
}

func (t *telemetry) recordMove(res MoveResult) {
	t.moves.Add(1)
	t.pushes.Add(int64(res.Pushes))
	switch {
	case res.Blocked && res.Applied.Len() == 0:
		t.blocked.Add(1)
		t.outcome.Store("stuck")
	case res.Blocked:
		t.blocked.Add(1)
		t.outcome.Store("slide")
	case res.Applied != res.Requested:
		t.outcome.Store("clamped")
	default:
		t.outcome.Store("free")
	}
}

func (t *telemetry) recordTick(res TickResult, planted int) {
	t.planted.Store(int64(planted))
	t.landed.Add(int64(res.Transitions.Landed))
	t.height.Set(res.BodyHeight)
	t.residual.Store(int64(res.Relax.Residual))
}

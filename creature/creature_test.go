package creature

import (
	"testing"

	"github.com/chewxy/math32"
	"github.com/go-gl/mathgl/mgl32"

	"github.com/lixenwraith/centipede/component"
	"github.com/lixenwraith/centipede/gait"
	"github.com/lixenwraith/centipede/ik"
	"github.com/lixenwraith/centipede/parameter"
	"github.com/lixenwraith/centipede/status"
	"github.com/lixenwraith/centipede/vmath"
)

// filledCells collects every filled voxel cell per segment
func filledCells(segs []component.Segment) map[component.Cell][]int {
	cells := make(map[component.Cell][]int)
	for si := range segs {
		for _, v := range segs[si].Voxels {
			if v.Filled {
				cells[v.Cell()] = append(cells[v.Cell()], si)
			}
		}
	}
	return cells
}

// TestNew_Layout verifies spawn positions, voxel masks and legs
func TestNew_Layout(t *testing.T) {
	c := New(40, 10, 14)
	if c.Len() != 14 {
		t.Fatalf("Expected 14 segments, got %d", c.Len())
	}

	segs := c.Segments()
	if segs[0].Pos != (mgl32.Vec2{40, 10}) {
		t.Errorf("Expected head at (40,10), got %v", segs[0].Pos)
	}
	if segs[13].Pos != (mgl32.Vec2{40 - 13*3, 10}) {
		t.Errorf("Expected tail at (1,10), got %v", segs[13].Pos)
	}

	for i := range c.segs {
		seg := &c.segs[i]
		if got := seg.FilledCount(); got != 5 {
			t.Errorf("Segment %d: expected 5 filled voxels, got %d", i, got)
		}
		if len(seg.Voxels) != 9 {
			t.Errorf("Segment %d: expected 9 voxels, got %d", i, len(seg.Voxels))
		}
		for side, leg := range seg.Legs {
			if !leg.OnGround {
				t.Errorf("Segment %d leg %d: expected planted at spawn", i, side)
			}
			wantPhase := float32(i)*parameter.PhaseStepPerSegment + float32(side)*parameter.PhaseSideOffset
			if !mgl32.FloatEqualThreshold(leg.PhaseOffset, wantPhase, 1e-6) {
				t.Errorf("Segment %d leg %d: expected phase %v, got %v", i, side, wantPhase, leg.PhaseOffset)
			}
			if leg.FootHold != seg.Pos.Add(leg.Attach) {
				t.Errorf("Segment %d leg %d: expected hold at hip offset", i, side)
			}
		}
	}

	left := c.segs[0].Legs[component.LegLeft].Attach
	if !mgl32.FloatEqualThreshold(left[0], 0.3, 1e-5) || left[1] != 1.5 {
		t.Errorf("Expected left attach (0.3,1.5), got %v", left)
	}
	if len(filledCells(c.segs)) != 14*5 {
		t.Error("Expected spawn voxels in distinct cells")
	}
}

// TestRequestMove_Scenario verifies the first request is throttled and the second applies
func TestRequestMove_Scenario(t *testing.T) {
	c := New(40, 10, 14)
	tailBefore := c.segs[13].Pos
	hash := c.StateHash()

	if _, ok := c.RequestMove(1, 0); ok {
		t.Fatal("Expected first request to be throttled")
	}
	if c.segs[0].Pos != (mgl32.Vec2{40, 10}) {
		t.Errorf("Expected head unmoved after first request, got %v", c.segs[0].Pos)
	}

	res, ok := c.RequestMove(1, 0)
	if !ok {
		t.Fatal("Expected second request to apply")
	}
	if res.Applied.Len() > parameter.MaxMovePerRequest {
		t.Errorf("Expected applied magnitude <= %v, got %v", parameter.MaxMovePerRequest, res.Applied.Len())
	}
	if c.segs[0].Pos != (mgl32.Vec2{41, 10}) {
		t.Errorf("Expected head at (41,10), got %v", c.segs[0].Pos)
	}
	if res.Blocked || res.Pushes != 0 || res.Relocations != 0 {
		t.Errorf("Expected a free move, got %+v", res)
	}
	if c.LastMove() != (mgl32.Vec2{1, 0}) {
		t.Errorf("Expected last move (1,0), got %v", c.LastMove())
	}

	// The tail eases toward its predecessor's pre-move position
	wantTail := tailBefore.Add(mgl32.Vec2{3 * parameter.FollowSpeed * parameter.ChainFollowFactor, 0})
	if c.segs[13].Pos.Sub(wantTail).Len() > 1e-4 {
		t.Errorf("Expected tail at %v, got %v", wantTail, c.segs[13].Pos)
	}
	if c.StateHash() == hash {
		t.Error("Expected state hash to change after a move")
	}
}

// TestRequestMove_Throttle verifies N requests apply floor(N/T) moves
func TestRequestMove_Throttle(t *testing.T) {
	for _, n := range []int{1, 2, 3, 7, 10} {
		reg := status.NewRegistry()
		c := New(40, 10, 4, WithStatus(reg))
		applied := 0
		for range n {
			if _, ok := c.RequestMove(0.5, 0); ok {
				applied++
			}
		}
		want := n / parameter.MoveThrottle
		if applied != want {
			t.Errorf("N=%d: expected %d applied, got %d", n, want, applied)
		}
		if got := reg.Ints.Get(status.KeyMoves).Load(); got != int64(want) {
			t.Errorf("N=%d: expected %d recorded moves, got %d", n, want, got)
		}
		if got := reg.Ints.Get(status.KeyThrottled).Load(); got != int64(n-want) {
			t.Errorf("N=%d: expected %d throttled, got %d", n, n-want, got)
		}
		wantX := 40 + 0.5*float32(want)
		if !mgl32.FloatEqualThreshold(c.segs[0].Pos[0], wantX, 1e-6) {
			t.Errorf("N=%d: expected head x %v, got %v", n, wantX, c.segs[0].Pos[0])
		}
	}
}

// TestRequestMove_MaxMagnitude verifies huge requests are clamped
func TestRequestMove_MaxMagnitude(t *testing.T) {
	c := New(40, 10, 3)
	before := c.segs[0].Pos
	inputs := []mgl32.Vec2{{100, 50}, {-3, 0}, {0, 1e6}, {5, -5}}

	for _, in := range inputs {
		c.RequestMove(in[0], in[1])
		res, _ := c.RequestMove(in[0], in[1])
		if res.Applied.Len() > parameter.MaxMovePerRequest+1e-5 {
			t.Errorf("Input %v: applied %v exceeds bound", in, res.Applied.Len())
		}
		if res.Requested.Len() > parameter.MaxMovePerRequest+1e-5 {
			t.Errorf("Input %v: requested %v not clamped", in, res.Requested.Len())
		}
		moved := c.segs[0].Pos.Sub(before).Len()
		if moved > parameter.MaxMovePerRequest+1e-4 {
			t.Errorf("Input %v: head moved %v", in, moved)
		}
		before = c.segs[0].Pos
	}
}

// TestRequestMove_OverflowingMagnitude verifies requests beyond float32 length range still move the full step
func TestRequestMove_OverflowingMagnitude(t *testing.T) {
	c := New(40, 10, 3)
	c.RequestMove(3e38, 3e38)
	res, ok := c.RequestMove(3e38, 3e38)
	if !ok {
		t.Fatal("Expected second request applied")
	}
	if !mgl32.FloatEqualThreshold(res.Requested.Len(), parameter.MaxMovePerRequest, 1e-5) {
		t.Errorf("Expected requested magnitude %v, got %v", parameter.MaxMovePerRequest, res.Requested.Len())
	}
	if !mgl32.FloatEqualThreshold(res.Requested[0], res.Requested[1], 1e-5) {
		t.Errorf("Expected diagonal direction kept, got %v", res.Requested)
	}
}

// TestApplyMove_FollowConvergence verifies followers close the configured fraction of the gap per move
func TestApplyMove_FollowConvergence(t *testing.T) {
	c := New(40, 10, 6)
	rate := float32(1 - parameter.FollowSpeed*parameter.ChainFollowFactor)

	for step := range 4 {
		prev := make([]mgl32.Vec2, c.Len())
		for i := range c.segs {
			prev[i] = c.segs[i].Pos
		}
		c.ApplyMove(0.5, 0)
		for i := 1; i < c.Len(); i++ {
			before := prev[i].Sub(prev[i-1]).Len()
			after := c.segs[i].Pos.Sub(prev[i-1]).Len()
			if after >= before {
				t.Errorf("Step %d segment %d: gap did not shrink (%v -> %v)", step, i, before, after)
			}
			if !mgl32.FloatEqualThreshold(after, before*rate, 1e-4) {
				t.Errorf("Step %d segment %d: expected gap %v, got %v", step, i, before*rate, after)
			}
		}
	}
}

// TestApplyMove_HeadingEases verifies followers turn toward their predecessor gradually
func TestApplyMove_HeadingEases(t *testing.T) {
	c := New(40, 10, 3)
	c.ApplyMove(0, 1)

	if !mgl32.FloatEqualThreshold(c.segs[0].Angle, vmath.Pi/2, 1e-5) {
		t.Errorf("Expected head heading π/2, got %v", c.segs[0].Angle)
	}
	a := c.segs[1].Angle
	if a <= 0 || a >= parameter.HeadingEase*vmath.Pi/2+1e-4 {
		t.Errorf("Expected follower heading eased toward predecessor, got %v", a)
	}
}

// TestApplyMove_DisjointCells verifies a head turning into its body ends in disjoint cells
func TestApplyMove_DisjointCells(t *testing.T) {
	c := New(40, 10, 2)
	c.ApplyMove(-1.2, 0)

	head := make(map[component.Cell]bool)
	for _, v := range c.segs[0].Voxels {
		if v.Filled {
			head[v.Cell()] = true
		}
	}
	for _, v := range c.segs[1].Voxels {
		if v.Filled && head[v.Cell()] {
			t.Errorf("Cell %v shared by head and body after the move", v.Cell())
		}
	}

	for range 30 {
		tick := c.Tick()
		if tick.Relax.Residual != 0 {
			t.Fatalf("Expected no residual overlap, got %d", tick.Relax.Residual)
		}
		for cell, owners := range filledCells(c.segs) {
			if len(owners) > 1 {
				t.Fatalf("Cell %v shared by %v", cell, owners)
			}
		}
	}
}

// TestApplyMove_RelocatesBlocker verifies a body voxel in the head's path is moved aside
func TestApplyMove_RelocatesBlocker(t *testing.T) {
	c := New(40, 10, 2)
	res := c.ApplyMove(-1.2, 0)

	if res.Relocations != 1 {
		t.Errorf("Expected 1 relocation, got %d", res.Relocations)
	}
	if res.Blocked {
		t.Error("Expected move not blocked")
	}
	if res.Applied != res.Requested {
		t.Errorf("Expected full move applied, got %v", res.Applied)
	}
}

// TestAxisFallback verifies the blocked axis is dropped and the free one kept
func TestAxisFallback(t *testing.T) {
	c := New(40, 10, 2)
	c.segs[1].Translate(mgl32.Vec2{40, 12}.Sub(c.segs[1].Pos))

	if !c.wouldCollide(mgl32.Vec2{0, 1}) {
		t.Error("Expected +Y to collide")
	}
	if c.wouldCollide(mgl32.Vec2{1, 0}) {
		t.Error("Expected +X to be free")
	}
	if got := c.axisFallback(mgl32.Vec2{1, 1}); got != (mgl32.Vec2{1, 0}) {
		t.Errorf("Expected X-only fallback, got %v", got)
	}

	// Shifted body blocks both axes
	c.segs[1].Translate(mgl32.Vec2{1, -1})
	if !c.wouldCollide(mgl32.Vec2{1, 0}) || !c.wouldCollide(mgl32.Vec2{0, 1}) {
		t.Fatal("Expected both axes blocked")
	}
	if got := c.axisFallback(mgl32.Vec2{1, 1}); got != (mgl32.Vec2{}) {
		t.Errorf("Expected no movement, got %v", got)
	}
}

// TestPushSegment_Escalates verifies pushes grow per pass along head-to-segment direction
func TestPushSegment_Escalates(t *testing.T) {
	c := New(40, 10, 2)
	c.occ.Rebuild(c.segs)

	start := c.segs[1].Pos
	c.pushSegment(1, 0)
	if got := c.segs[1].Pos.Sub(start); !got.ApproxEqualThreshold(mgl32.Vec2{-parameter.PushBase, 0}, 1e-5) {
		t.Errorf("Expected first push (-1.5,0), got %v", got)
	}
	if !c.segs[1].Moved {
		t.Error("Expected pushed segment marked moved")
	}

	start = c.segs[1].Pos
	c.pushSegment(1, 2)
	want := float32(parameter.PushBase * (1 + 2*parameter.PushGrowth))
	if got := start.Sub(c.segs[1].Pos).Len(); !mgl32.FloatEqualThreshold(got, want, 1e-5) {
		t.Errorf("Expected third-pass push %v, got %v", want, got)
	}

	// Coincident segments fall back to +X
	c.segs[1].Translate(c.segs[0].Pos.Sub(c.segs[1].Pos))
	start = c.segs[1].Pos
	c.pushSegment(1, 0)
	if got := c.segs[1].Pos.Sub(start); !got.ApproxEqualThreshold(mgl32.Vec2{parameter.PushBase, 0}, 1e-5) {
		t.Errorf("Expected fallback push along +X, got %v", got)
	}
}

// TestClampToViewport verifies the head never leaves the viewport margin
func TestClampToViewport(t *testing.T) {
	c := New(40, 10, 3)
	for range 400 {
		c.ApplyMove(-1.2, -1.2) // toward the top edge
	}
	if e := c.viewport.Excess(c.segs[0].Pos); e != 0 {
		t.Errorf("Expected head inside viewport, excess %v at %v", e, c.segs[0].Pos)
	}
	sy := c.viewport.Projection.GridToScreen(c.segs[0].Pos, 0)[1]
	if sy > parameter.ViewportMargin+6 {
		t.Errorf("Expected head to reach the top margin, screen y %v", sy)
	}
}

// TestClampToViewport_AxisOrder verifies full, X-only, Y-only candidate order at an edge
func TestClampToViewport_AxisOrder(t *testing.T) {
	c := New(-5, -6, 1) // screen y 22.5, just inside the top margin

	if got := c.clampToViewport(mgl32.Vec2{0.2, 0.5}); got != (mgl32.Vec2{0.2, 0.5}) {
		t.Errorf("Expected inward move kept whole, got %v", got)
	}
	if got := c.clampToViewport(mgl32.Vec2{0.2, -1.5}); got != (mgl32.Vec2{0.2, 0}) {
		t.Errorf("Expected X-only move, got %v", got)
	}
	if got := c.clampToViewport(mgl32.Vec2{-1.5, 0.2}); got != (mgl32.Vec2{0, 0.2}) {
		t.Errorf("Expected Y-only move, got %v", got)
	}
	if got := c.clampToViewport(mgl32.Vec2{-1.5, -1.5}); got != (mgl32.Vec2{}) {
		t.Errorf("Expected no move, got %v", got)
	}
}

// TestClampToViewport_ReducedMoveAvoidsBody verifies an axis kept by the clamp never lands the head on the body
func TestClampToViewport_ReducedMoveAvoidsBody(t *testing.T) {
	c := New(-5, -6, 2) // head screen y 22.5, just inside the top margin
	// Body directly right of the head: a +1 X step would share cell (-2,-5)
	c.segs[1].Translate(mgl32.Vec2{-2, -6}.Sub(c.segs[1].Pos))

	if !c.wouldCollide(mgl32.Vec2{1, 0}) {
		t.Fatal("Expected X-only step to collide with the body")
	}
	if got := c.clampToViewport(mgl32.Vec2{1, -3}); got != (mgl32.Vec2{}) {
		t.Errorf("Expected no move when the surviving axis collides, got %v", got)
	}

	res := c.ApplyMove(1, -3)
	if res.Applied != (mgl32.Vec2{}) {
		t.Errorf("Expected move dropped, got %v", res.Applied)
	}
	for cell, owners := range filledCells(c.segs) {
		if len(owners) > 1 {
			t.Errorf("Cell %v shared by %v after a clamped move", cell, owners)
		}
	}

	// Body moved away: the X-only step is free again
	c.segs[1].Translate(mgl32.Vec2{0, 10})
	if got := c.clampToViewport(mgl32.Vec2{1, -3}); got != (mgl32.Vec2{1, 0}) {
		t.Errorf("Expected X-only move once the body is clear, got %v", got)
	}
}

// TestClampToViewport_OffscreenRecovers verifies a head outside the viewport may move back in
func TestClampToViewport_OffscreenRecovers(t *testing.T) {
	c := New(-20, -20, 1)
	before := c.viewport.Excess(c.segs[0].Pos)
	if before == 0 {
		t.Fatal("Expected spawn outside the viewport")
	}
	c.ApplyMove(1, 1)
	if after := c.viewport.Excess(c.segs[0].Pos); after >= before {
		t.Errorf("Expected excess to shrink, got %v -> %v", before, after)
	}
	res := c.ApplyMove(-1, -1)
	if res.Applied != (mgl32.Vec2{}) {
		t.Errorf("Expected move further out rejected, got %v", res.Applied)
	}
}

// TestTick_GaitClock verifies idle cadence and movement-scaled cadence
func TestTick_GaitClock(t *testing.T) {
	c := New(40, 10, 4)
	r := c.Tick()
	if !mgl32.FloatEqualThreshold(r.GaitTime, parameter.GaitIdleRate, 1e-6) {
		t.Errorf("Expected idle advance %v, got %v", parameter.GaitIdleRate, r.GaitTime)
	}

	c.ApplyMove(1, 0)
	r2 := c.Tick()
	want := r.GaitTime + parameter.GaitIdleRate + parameter.GaitPerUnit
	if !mgl32.FloatEqualThreshold(r2.GaitTime, want, 1e-5) {
		t.Errorf("Expected %v after a unit move, got %v", want, r2.GaitTime)
	}
}

// TestTick_JointLimits verifies every joint stays within limits over a long steered walk
func TestTick_JointLimits(t *testing.T) {
	c := New(40, 10, 14)
	for frame := range 1200 {
		a := float32(frame) * 0.01
		c.RequestMove(math32.Cos(a)*1.4, math32.Sin(a)*1.4)
		r := c.Tick()

		if r.BodyHeight < parameter.BodyHeightMin || r.BodyHeight > parameter.BodyHeightMax {
			t.Fatalf("Frame %d: body height %v out of range", frame, r.BodyHeight)
		}
		for i := range c.segs {
			f := gait.FrameAt(c.segs, i, parameter.DirectionEpsilon, vmath.UnitX)
			for li := range c.segs[i].Legs {
				leg := &c.segs[i].Legs[li]
				if !ik.WithinLimits(leg, f.YawRef(leg.Side)) {
					t.Fatalf("Frame %d segment %d leg %d: limits violated %+v", frame, i, li, *leg)
				}
				if leg.OnGround && leg.SwingPhase != 0 {
					t.Fatalf("Frame %d segment %d leg %d: planted leg with swing phase %v", frame, i, li, leg.SwingPhase)
				}
			}
		}
	}
}

// TestTick_BodyHeightIdle verifies an idle body settles inside its range and publishes telemetry
func TestTick_BodyHeightIdle(t *testing.T) {
	reg := status.NewRegistry()
	c := New(40, 10, 5, WithStatus(reg))
	var r TickResult
	for range 300 {
		r = c.Tick()
	}
	if r.BodyHeight < parameter.BodyHeightMin || r.BodyHeight > parameter.BodyHeightMax {
		t.Errorf("Expected height in range, got %v", r.BodyHeight)
	}
	if got := reg.Floats.Get(status.KeyHeight).Get(); got != c.BodyHeight() {
		t.Errorf("Expected published height %v, got %v", c.BodyHeight(), got)
	}
	if got := reg.Ints.Get(status.KeyPlanted).Load(); got != int64(c.Planted()) {
		t.Errorf("Expected published planted %d, got %d", c.Planted(), got)
	}
}

// TestLegSupportHeight verifies the preferred-extension height rule
func TestLegSupportHeight(t *testing.T) {
	c := New(0, 0, 1)
	leg := &c.segs[0].Legs[0]
	pref := float32(parameter.BodyPreferredExtension * parameter.LegTotalLength)

	if got := legSupportHeight(leg, pref+1); got != parameter.BodyHeightMin {
		t.Errorf("Expected stretched leg clamped to %v, got %v", parameter.BodyHeightMin, got)
	}
	if got := legSupportHeight(leg, 0); got != parameter.BodyHeightMax {
		t.Errorf("Expected foot under hip clamped to %v, got %v", parameter.BodyHeightMax, got)
	}
	want := math32.Sqrt(pref*pref - 3.8*3.8)
	if got := legSupportHeight(leg, 3.8); !mgl32.FloatEqualThreshold(got, want, 1e-3) {
		t.Errorf("Expected %v, got %v", want, got)
	}
}

// TestTick_RenderEasing verifies render positions chase logical positions
func TestTick_RenderEasing(t *testing.T) {
	c := New(40, 10, 2)
	c.segs[0].RenderPos = mgl32.Vec2{30, 10}
	c.Tick()
	want := float32(30 + 10*parameter.RenderFollowSpeed)
	if !mgl32.FloatEqualThreshold(c.segs[0].RenderPos[0], want, 1e-5) {
		t.Errorf("Expected render x %v, got %v", want, c.segs[0].RenderPos[0])
	}
}

// TestEmpty verifies a zero-length creature ignores every operation
func TestEmpty(t *testing.T) {
	c := New(40, 10, 0)
	c.RequestMove(1, 0)
	res, ok := c.RequestMove(1, 0)
	if !ok || res.Applied != (mgl32.Vec2{}) {
		t.Errorf("Expected applied no-op, got %+v (%v)", res, ok)
	}
	r := c.Tick()
	if r.Transitions != (gait.Transitions{}) {
		t.Errorf("Expected no transitions, got %+v", r.Transitions)
	}
	if len(c.Segments()) != 0 {
		t.Error("Expected no segment views")
	}
	if _, ok := c.Head(); ok {
		t.Error("Expected no head")
	}
	_ = c.StateHash()

	if neg := New(0, 0, -3); neg.Len() != 0 {
		t.Errorf("Expected negative length to yield empty creature, got %d", neg.Len())
	}
}

// TestSegments_DeepCopy verifies views do not alias simulation state
func TestSegments_DeepCopy(t *testing.T) {
	c := New(40, 10, 3)
	views := c.Segments()
	views[0].Voxels[0].Pos = mgl32.Vec2{-99, -99}
	views[0].Pos = mgl32.Vec2{-99, -99}

	if c.segs[0].Voxels[0].Pos == (mgl32.Vec2{-99, -99}) || c.segs[0].Pos == (mgl32.Vec2{-99, -99}) {
		t.Error("Expected view mutation not to reach the creature")
	}
	leg := views[1].Legs[component.LegRight]
	if math32.Abs(leg.CoxaEnd.Sub(leg.HipAttach).Len()-parameter.CoxaLength) > 1e-4 {
		t.Errorf("Expected coxa of length %v, got %v", parameter.CoxaLength, leg.CoxaEnd.Sub(leg.HipAttach).Len())
	}
	if leg.Pose.Hip.Vec2() != leg.CoxaEnd {
		t.Errorf("Expected pose rooted at coxa end")
	}
}

// TestStateHash_Deterministic verifies identical inputs give identical hashes
func TestStateHash_Deterministic(t *testing.T) {
	drive := func(c *Creature, turn float32) {
		for frame := range 240 {
			a := float32(frame) * turn
			c.RequestMove(math32.Cos(a), math32.Sin(a))
			c.Tick()
		}
	}

	a, b, other := New(40, 10, 10), New(40, 10, 10), New(40, 10, 10)
	drive(a, 0.02)
	drive(b, 0.02)
	drive(other, -0.02)

	if a.StateHash() != b.StateHash() {
		t.Error("Expected identical hashes for identical inputs")
	}
	if a.StateHash() == other.StateHash() {
		t.Error("Expected different hashes for different inputs")
	}
}

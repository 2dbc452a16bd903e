package creature

import (
	"github.com/chewxy/math32"
	"github.com/go-gl/mathgl/mgl32"

	"github.com/lixenwraith/centipede/component"
	"github.com/lixenwraith/centipede/parameter"
	"github.com/lixenwraith/centipede/physics"
	"github.com/lixenwraith/centipede/vmath"
)

// RequestMove is the throttled steering entry point
// The vector is clamped to the per-request maximum; only every MoveThrottle-th call is applied
// ok is false when the call was swallowed by the throttle
func (c *Creature) RequestMove(dx, dy float32) (res MoveResult, ok bool) {
	d := vmath.ClampMagnitude(mgl32.Vec2{dx, dy}, parameter.MaxMovePerRequest)

	c.moveCounter++
	if c.moveCounter < parameter.MoveThrottle {
		c.tel.throttled.Add(1)
		return MoveResult{Requested: d}, false
	}
	c.moveCounter = 0
	return c.ApplyMove(d[0], d[1]), true
}

// ApplyMove moves the head by (dx, dy) unconditionally, clearing its path through the body,
// then drags the chain along behind it
func (c *Creature) ApplyMove(dx, dy float32) MoveResult {
	res := MoveResult{Requested: mgl32.Vec2{dx, dy}}
	if len(c.segs) == 0 {
		return res
	}

	for i := range c.segs {
		c.prev[i] = c.segs[i].Pos
		c.segs[i].Moved = false
	}

	c.collectHeadTargets(res.Requested)
	res.Blocked = c.clearHeadTargets(&res)

	applied := res.Requested
	if res.Blocked {
		applied = c.axisFallback(applied)
		c.logger.Debug("head blocked", "requested", res.Requested, "fallback", applied, "pushes", res.Pushes)
	}
	res.Applied = c.clampToViewport(applied)

	c.moveHead(res.Applied)
	c.followLeader()
	for i := range c.segs {
		c.segs[i].RenderPos = c.segs[i].Pos
	}

	c.tel.recordMove(res)
	return res
}

// collectHeadTargets stores the cells the head's filled voxels would occupy after d
func (c *Creature) collectHeadTargets(d mgl32.Vec2) {
	c.headTargets = c.headTargets[:0]
	for _, v := range c.segs[0].Voxels {
		if v.Filled {
			c.headTargets = append(c.headTargets, component.CellOf(v.Pos.Add(d)))
		}
	}
}

func (c *Creature) isHeadTarget(cell component.Cell) bool {
	for _, t := range c.headTargets {
		if t == cell {
			return true
		}
	}
	return false
}

// clearHeadTargets runs bounded resolution passes evicting body voxels from the head's path
// Each blocker is relocated to a free ring cell, or its whole segment is pushed away from the
// head with a distance that grows per pass
// Returns true when a head target is still held by another segment afterward
func (c *Creature) clearHeadTargets(res *MoveResult) bool {
	for pass := range parameter.ResolvePasses {
		c.occ.Rebuild(c.segs)
		free := true
		for _, cell := range c.headTargets {
			owner, ok := c.occ.At(cell)
			if !ok || owner.Segment == 0 {
				continue
			}
			if c.occ.Relocate(c.segs, owner, parameter.RingSearchRadius, c.isHeadTarget) {
				res.Relocations++
				continue
			}
			c.pushSegment(owner.Segment, pass)
			res.Pushes++
			free = false
		}
		if free {
			break
		}
	}

	for _, cell := range c.headTargets {
		if owner, ok := c.occ.At(cell); ok && owner.Segment != 0 {
			return true
		}
	}
	return false
}

// pushSegment displaces segment si and its voxels away from the head
func (c *Creature) pushSegment(si, pass int) {
	seg := &c.segs[si]
	dir, _ := vmath.Normalize2D(seg.Pos.Sub(c.segs[0].Pos), parameter.DirectionEpsilon, vmath.UnitX)
	dist := parameter.PushBase * (1 + float32(pass)*parameter.PushGrowth)

	c.occ.ReleaseSegment(c.segs, si)
	seg.Translate(dir.Mul(dist))
	seg.Moved = true
	c.occ.ClaimSegment(c.segs, si)
}

// wouldCollide reports whether shifting the head's voxels by d lands any of them on a body voxel cell
func (c *Creature) wouldCollide(d mgl32.Vec2) bool {
	for _, hv := range c.segs[0].Voxels {
		if !hv.Filled {
			continue
		}
		target := component.CellOf(hv.Pos.Add(d))
		for si := 1; si < len(c.segs); si++ {
			for _, ov := range c.segs[si].Voxels {
				if ov.Filled && ov.Cell() == target {
					return true
				}
			}
		}
	}
	return false
}

// axisFallback keeps whichever single axis of d is collision free, X first
func (c *Creature) axisFallback(d mgl32.Vec2) mgl32.Vec2 {
	if alongX := (mgl32.Vec2{d[0], 0}); !c.wouldCollide(alongX) {
		return alongX
	}
	if alongY := (mgl32.Vec2{0, d[1]}); !c.wouldCollide(alongY) {
		return alongY
	}
	return mgl32.Vec2{}
}

// clampToViewport returns the first of d, its X part, its Y part that keeps the head on screen
// A head already off screen may still move if the move brings it closer
// A reduced candidate must also keep the head off body cells
func (c *Creature) clampToViewport(d mgl32.Vec2) mgl32.Vec2 {
	head := c.segs[0].Pos
	current := c.viewport.Excess(head)
	for _, cand := range [3]mgl32.Vec2{d, {d[0], 0}, {0, d[1]}} {
		e := c.viewport.Excess(head.Add(cand))
		if e != 0 && e >= current {
			continue
		}
		if cand != d && c.wouldCollide(cand) {
			continue
		}
		return cand
	}
	return mgl32.Vec2{}
}

// moveHead translates the head rigidly and records heading and last move
func (c *Creature) moveHead(d mgl32.Vec2) {
	head := &c.segs[0]
	head.Translate(d)
	head.Moved = math32.Abs(d[0]) > parameter.HeadMoveEpsilon || math32.Abs(d[1]) > parameter.HeadMoveEpsilon
	if head.Moved {
		head.Angle = vmath.Heading(d)
		c.lastMove = d
	} else {
		c.lastMove = mgl32.Vec2{}
	}
}

// followLeader eases each segment toward its predecessor's pre-move position
// A segment whose predecessor did not move stays put this move
func (c *Creature) followLeader() {
	for i := 1; i < len(c.segs); i++ {
		seg := &c.segs[i]
		if !c.segs[i-1].Moved {
			seg.Moved = false
			continue
		}

		old := seg.Pos
		seg.Pos = vmath.ApproachVec2(seg.Pos, c.prev[i-1], parameter.FollowSpeed*parameter.ChainFollowFactor)
		step := seg.Pos.Sub(old)
		seg.Moved = math32.Abs(step[0]) > parameter.FollowMoveEpsilon || math32.Abs(step[1]) > parameter.FollowMoveEpsilon

		toPred := c.segs[i-1].Pos.Sub(seg.Pos)
		if toPred.Len() > parameter.HeadingMinDistance {
			seg.Angle = vmath.ApproachAngle(seg.Angle, vmath.Heading(toPred), parameter.HeadingEase)
		}

		for vi := range seg.Voxels {
			v := &seg.Voxels[vi]
			if v.Filled {
				physics.SpringStep(v, v.Target(seg.Pos), parameter.FollowerSpring, parameter.FollowerDamping)
			}
		}

		c.separate(i)
	}
}

// separate nudges segment i off the first other segment sharing one of its cells
func (c *Creature) separate(i int) {
	seg := &c.segs[i]
	for sj := range c.segs {
		if sj == i {
			continue
		}
		other := &c.segs[sj]
		if !sharesCell(seg, other) {
			continue
		}
		push := seg.Pos.Sub(other.Pos).Mul(parameter.SeparationFactor)
		for k := range push {
			if push[k] == 0 {
				push[k] = parameter.SeparationFallback
			}
		}
		seg.Translate(push)
		return
	}
}

func sharesCell(a, b *component.Segment) bool {
	for _, bv := range b.Voxels {
		if !bv.Filled {
			continue
		}
		bc := bv.Cell()
		for _, av := range a.Voxels {
			if av.Filled && av.Cell() == bc {
				return true
			}
		}
	}
	return false
}

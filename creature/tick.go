package creature

import (
	"github.com/chewxy/math32"

	"github.com/lixenwraith/centipede/component"
	"github.com/lixenwraith/centipede/gait"
	"github.com/lixenwraith/centipede/ik"
	"github.com/lixenwraith/centipede/parameter"
	"github.com/lixenwraith/centipede/physics"
	"github.com/lixenwraith/centipede/vmath"
)

// Tick advances one frame: gait clock and legs, body height, leg IK, render easing and soft body
// Tuned for a steady 60 calls per second
func (c *Creature) Tick() TickResult {
	if len(c.segs) == 0 {
		return TickResult{GaitTime: c.gaitTime, BodyHeight: c.bodyHeight}
	}

	head := c.segs[0].Pos
	travelled := head.Sub(c.lastHead).Len()
	c.lastHead = head
	c.gaitTime += parameter.GaitIdleRate + travelled*parameter.GaitPerUnit

	res := TickResult{}
	res.Transitions = gait.Update(c.segs, c.gaitTime, c.bodyHeight, c.lastMove)

	target, planted := c.supportedHeight()
	c.bodyHeight = vmath.Clamp(
		vmath.Approach(c.bodyHeight, target, parameter.BodyHeightSmoothing),
		parameter.BodyHeightMin, parameter.BodyHeightMax,
	)

	c.solveLegs()

	for i := range c.segs {
		seg := &c.segs[i]
		seg.RenderPos = vmath.ApproachVec2(seg.RenderPos, seg.Pos, parameter.RenderFollowSpeed)
	}

	res.Relax = physics.Relax(c.segs, c.occ)
	if res.Relax.Residual > 0 {
		c.logger.Debug("voxel overlap left unresolved", "count", res.Relax.Residual)
	}

	res.GaitTime = c.gaitTime
	res.BodyHeight = c.bodyHeight
	c.tel.recordTick(res, planted)
	return res
}

// supportedHeight averages the height each planted leg would hold the body at
// Returns the rest height when no leg is planted
func (c *Creature) supportedHeight() (height float32, planted int) {
	var sum float32
	for i := range c.segs {
		frame := gait.FrameAt(c.segs, i, parameter.DirectionEpsilon, vmath.UnitX)
		for li := range c.segs[i].Legs {
			leg := &c.segs[i].Legs[li]
			if !leg.OnGround {
				continue
			}
			sum += legSupportHeight(leg, frame.CoxaAttach(leg).Sub(leg.FootHold).Len())
			planted++
		}
	}
	if planted == 0 {
		return parameter.BodyRestHeight, 0
	}
	return sum / float32(planted), planted
}

// legSupportHeight returns the body height at which a leg reaching r horizontally
// spans its preferred extension
func legSupportHeight(leg *component.Leg, r float32) float32 {
	lo, hi := leg.ReachBounds(parameter.IKReachEpsilon)
	pref := vmath.Clamp(parameter.BodyPreferredExtension*leg.Total(), lo, hi)

	z := float32(parameter.BodyHeightFloor)
	if r < pref {
		z = math32.Sqrt(max(0, pref*pref-r*r))
	}
	return vmath.Clamp(z, parameter.BodyHeightMin, parameter.BodyHeightMax)
}

// solveLegs runs IK for every leg from its coxa attach toward its foot hold
func (c *Creature) solveLegs() {
	for i := range c.segs {
		frame := gait.FrameAt(c.segs, i, parameter.DirectionEpsilon, vmath.UnitX)
		for li := range c.segs[i].Legs {
			leg := &c.segs[i].Legs[li]
			ik.SolveLeg(leg, frame.CoxaAttach(leg), c.bodyHeight, frame.YawRef(leg.Side))
		}
	}
}

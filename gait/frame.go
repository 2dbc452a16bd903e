package gait

import (
	"github.com/go-gl/mathgl/mgl32"

	"github.com/lixenwraith/centipede/component"
	"github.com/lixenwraith/centipede/parameter"
	"github.com/lixenwraith/centipede/vmath"
)

// SpineFrame is the local body frame legs of one segment hang from
type SpineFrame struct {
	Spine mgl32.Vec2 // unit, toward the next segment
	Perp  mgl32.Vec2 // unit, spine rotated +90°
	Mid   mgl32.Vec2 // leg root: midpoint with the next segment, own position for the tail
}

// FrameAt builds the spine frame of segment i
// The tail uses the direction from its predecessor; a lone segment and any
// spine shorter than eps fall back to fallback
func FrameAt(segs []component.Segment, i int, eps float32, fallback mgl32.Vec2) SpineFrame {
	n := len(segs)
	var spine, mid mgl32.Vec2
	switch {
	case i < n-1:
		spine = segs[i+1].Pos.Sub(segs[i].Pos)
		mid = segs[i].Pos.Add(segs[i+1].Pos).Mul(0.5)
	case i > 0:
		spine = segs[i].Pos.Sub(segs[i-1].Pos)
		mid = segs[i].Pos
	default:
		spine = fallback
		mid = segs[i].Pos
	}
	spine, _ = vmath.Normalize2D(spine, eps, fallback)
	return SpineFrame{Spine: spine, Perp: vmath.Perpendicular(spine), Mid: mid}
}

// Outward returns the unit direction away from the spine on side
func (f SpineFrame) Outward(side int) mgl32.Vec2 {
	return f.Perp.Mul(float32(side))
}

// HipAttach returns where the coxa leaves the body on side
func (f SpineFrame) HipAttach(side int) mgl32.Vec2 {
	return f.Mid.Add(f.Outward(side).Mul(parameter.StanceWidth))
}

// CoxaAttach returns the outer end of leg's coxa, the IK root
func (f SpineFrame) CoxaAttach(leg *component.Leg) mgl32.Vec2 {
	return f.HipAttach(leg.Side).Add(f.Outward(leg.Side).Mul(leg.Coxa))
}

// YawRef returns the natural outward yaw of side
func (f SpineFrame) YawRef(side int) float32 {
	return vmath.Heading(f.Outward(side))
}

// ForwardAxis blends the head spine with the last applied move toward travel direction
func ForwardAxis(segs []component.Segment, lastMove mgl32.Vec2) mgl32.Vec2 {
	base := vmath.UnitX
	if len(segs) >= 2 {
		base, _ = vmath.Normalize2D(segs[1].Pos.Sub(segs[0].Pos), parameter.GaitEpsilon, vmath.UnitX)
	}
	moveDir, _ := vmath.Normalize2D(lastMove, parameter.GaitEpsilon, base)

	forward := base.Mul(1 - parameter.MoveBias).Add(moveDir.Mul(parameter.MoveBias))
	forward, _ = vmath.Normalize2D(forward, parameter.GaitEpsilon, vmath.UnitX)
	return forward
}

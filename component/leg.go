package component

import (
	"github.com/chewxy/math32"
	"github.com/go-gl/mathgl/mgl32"
)

// Leg sides
const (
	SideLeft  = -1
	SideRight = 1
)

// Leg is a three-link leg (hip, knee, foot) hung off a coxa
// Angle convention: Yaw rotates in the ground plane, HipPitch is the first link's
// pitch (negative = down), Knee is added to HipPitch for the second and third links
type Leg struct {
	Side   int        // SideLeft or SideRight
	Attach mgl32.Vec2 // nominal hip offset from the segment's logical position

	Yaw, HipPitch, Knee float32

	// PhaseOffset places the leg on the metachronal wave (radians)
	PhaseOffset float32

	// Link lengths in grid units
	Hip, KneeLen, Foot, Coxa float32

	// FootHold is the IK target: fixed while planted, interpolated while swinging
	FootHold mgl32.Vec2

	// SwingPhase is swing progress in [0,1]; 0 whenever OnGround
	SwingPhase float32
	SwingStart mgl32.Vec2
	SwingLand  mgl32.Vec2

	OnGround bool
}

// Links returns the IK link pair: L1 = hip, L2 = knee + foot
func (l *Leg) Links() (l1, l2 float32) {
	return l.Hip, l.KneeLen + l.Foot
}

// Total returns the combined length of the three leg links
func (l *Leg) Total() float32 {
	return l.Hip + l.KneeLen + l.Foot
}

// ReachBounds returns the distance annulus the IK can satisfy, inset by eps
func (l *Leg) ReachBounds(eps float32) (minDist, maxDist float32) {
	l1, l2 := l.Links()
	return math32.Abs(l1-l2) + eps, l1 + l2 - eps
}

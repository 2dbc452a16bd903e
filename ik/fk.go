package ik

import (
	"github.com/chewxy/math32"
	"github.com/go-gl/mathgl/mgl32"

	"github.com/lixenwraith/centipede/component"
	"github.com/lixenwraith/centipede/vmath"
)

// Pose holds world joint positions of one leg; Z is height above ground
type Pose struct {
	Hip   mgl32.Vec3 // coxa end
	Knee  mgl32.Vec3
	Ankle mgl32.Vec3
	Foot  mgl32.Vec3
}

// ForwardKinematics places leg's joints from its current angles
// The knee and foot links share the second pitch; the foot never rises above ground
func ForwardKinematics(leg *component.Leg, coxaEnd mgl32.Vec2, bodyHeight float32) Pose {
	dir := vmath.FromAngle(leg.Yaw)
	p1 := leg.HipPitch
	p2 := leg.HipPitch + leg.Knee

	hip := mgl32.Vec3{coxaEnd[0], coxaEnd[1], bodyHeight}
	knee := hip.Add(link(dir, leg.Hip, p1))
	ankle := knee.Add(link(dir, leg.KneeLen, p2))
	foot := ankle.Add(link(dir, leg.Foot, p2))
	foot[2] = min(foot[2], 0)

	return Pose{Hip: hip, Knee: knee, Ankle: ankle, Foot: foot}
}

func link(dir mgl32.Vec2, length, pitch float32) mgl32.Vec3 {
	h := length * math32.Cos(pitch)
	return mgl32.Vec3{dir[0] * h, dir[1] * h, length * math32.Sin(pitch)}
}

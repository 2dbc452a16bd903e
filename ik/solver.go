// Package ik solves leg joint angles that place a foot on its ground anchor
package ik

import (
	"github.com/chewxy/math32"
	"github.com/go-gl/mathgl/mgl32"

	"github.com/lixenwraith/centipede/component"
	"github.com/lixenwraith/centipede/parameter"
	"github.com/lixenwraith/centipede/vmath"
)

// Angles is a solved joint configuration
type Angles struct {
	Yaw, HipPitch, Knee float32
}

// ClampAngles enforces hard joint limits, yaw relative to yawRef
func ClampAngles(a Angles, yawRef float32) Angles {
	return Angles{
		Yaw:      vmath.ClampAround(a.Yaw, yawRef, parameter.HipYawMaxDelta),
		HipPitch: vmath.Clamp(a.HipPitch, parameter.HipPitchMin, parameter.HipPitchMax),
		Knee:     vmath.Clamp(a.Knee, parameter.KneeMin, parameter.KneeMax),
	}
}

// Solve computes the limited joint target for a foot at offset from the coxa end,
// dz below it, using the two-link pair (l1, l2) with the knee bent toward the ground
// prevYaw is kept when the foot sits directly under the hip
func Solve(offset mgl32.Vec2, dz, l1, l2, prevYaw, yawRef float32) Angles {
	r := offset.Len()

	yaw := prevYaw
	if r > 1e-6 {
		yaw = vmath.Heading(offset)
	}

	cosKnee := (r*r + dz*dz - l1*l1 - l2*l2) / (2 * l1 * l2)
	cosKnee = vmath.Clamp(cosKnee, -parameter.IKCosKneeLimit, parameter.IKCosKneeLimit)
	knee := -math32.Acos(cosKnee)

	hipPitch := math32.Atan2(dz, r) - math32.Atan2(l2*math32.Sin(knee), l1+l2*math32.Cos(knee))

	return ClampAngles(Angles{Yaw: yaw, HipPitch: hipPitch, Knee: knee}, yawRef)
}

// ReachGuard clamps the foot offset so its 3D distance lies within [minDist, maxDist]
// Returns the possibly rescaled horizontal offset and whether it changed
func ReachGuard(offset mgl32.Vec2, dz, minDist, maxDist float32) (mgl32.Vec2, bool) {
	r := offset.Len()
	dist := math32.Sqrt(r*r + dz*dz)
	clamped := vmath.Clamp(dist, minDist, maxDist)
	if dist <= 1e-4 || math32.Abs(clamped-dist) <= 1e-5 {
		return offset, false
	}

	desired := math32.Sqrt(max(0, clamped*clamped-dz*dz))
	var scale float32
	if r > 1e-4 {
		scale = desired / r
	}
	return offset.Mul(scale), true
}

// SolveLeg moves leg's joints one smoothing step toward the pose that reaches its foot hold
// from coxaAttach at bodyHeight above ground
// An unreachable hold is pulled into reach only while the leg swings; planted holds never move
func SolveLeg(leg *component.Leg, coxaAttach mgl32.Vec2, bodyHeight, yawRef float32) {
	dz := parameter.GroundHeight - bodyHeight
	minDist, maxDist := leg.ReachBounds(parameter.IKReachEpsilon)

	offset, rescaled := ReachGuard(leg.FootHold.Sub(coxaAttach), dz, minDist, maxDist)
	if rescaled && !leg.OnGround {
		leg.FootHold = coxaAttach.Add(offset)
	}

	l1, l2 := leg.Links()
	target := Solve(offset, dz, l1, l2, leg.Yaw, yawRef)

	smoothed := Angles{
		Yaw:      vmath.ApproachAngle(leg.Yaw, target.Yaw, parameter.IKBlend),
		HipPitch: vmath.Approach(leg.HipPitch, target.HipPitch, parameter.IKBlend),
		Knee:     vmath.Approach(leg.Knee, target.Knee, parameter.IKBlend),
	}
	smoothed = ClampAngles(smoothed, yawRef)

	leg.Yaw = smoothed.Yaw
	leg.HipPitch = smoothed.HipPitch
	leg.Knee = smoothed.Knee
}

// WithinLimits reports whether leg's joints satisfy the hard limits around yawRef
func WithinLimits(leg *component.Leg, yawRef float32) bool {
	const tol = 1e-4
	if leg.HipPitch < parameter.HipPitchMin-tol || leg.HipPitch > parameter.HipPitchMax+tol {
		return false
	}
	if leg.Knee < parameter.KneeMin-tol || leg.Knee > parameter.KneeMax+tol {
		return false
	}
	return math32.Abs(vmath.AngleDelta(yawRef, leg.Yaw)) <= parameter.HipYawMaxDelta+tol
}

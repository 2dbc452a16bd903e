// Package gait drives each leg through a stance/swing cycle keyed on a shared gait clock
// and chooses where swinging feet land
package gait

import (
	"github.com/chewxy/math32"
	"github.com/go-gl/mathgl/mgl32"

	"github.com/lixenwraith/centipede/component"
	"github.com/lixenwraith/centipede/parameter"
	"github.com/lixenwraith/centipede/vmath"
)

// Transitions counts leg state edges produced by one Update
type Transitions struct {
	Lifted int // stance to swing
	Landed int // swing to stance
}

// StanceEnd is the phase at which a leg lifts off
const StanceEnd = parameter.StanceFraction * vmath.TwoPi

// Phase returns a leg's position in the cycle, in [0, 2π)
func Phase(gaitTime, offset float32) float32 {
	return vmath.WrapPositive(gaitTime + offset)
}

// InStance reports whether phase falls in the planted part of the cycle
func InStance(phase float32) bool {
	return phase < StanceEnd
}

// SwingProgress maps a swing phase onto [0,1]
func SwingProgress(phase float32) float32 {
	return vmath.Clamp((phase-StanceEnd)/(vmath.TwoPi-StanceEnd), 0, 1)
}

// MaxReach returns the horizontal reach of leg at bodyHeight; 0 when the body is too high
func MaxReach(leg *component.Leg, bodyHeight float32) float32 {
	_, maxDist := leg.ReachBounds(parameter.IKReachEpsilon)
	dz := math32.Abs(bodyHeight)
	if dz >= maxDist {
		return 0
	}
	return math32.Sqrt(max(0, maxDist*maxDist-dz*dz))
}

// LandingPoint returns where a swinging leg should touch down
// The target sits at the sweep edge ahead of travel with a guaranteed outward clearance
func LandingPoint(leg *component.Leg, frame SpineFrame, forward mgl32.Vec2, bodyHeight float32) mgl32.Vec2 {
	halfSweep := vmath.DegToRad(parameter.SweepDegrees) * 0.5
	reach := MaxReach(leg, bodyHeight)
	baseOut := reach * math32.Cos(halfSweep)
	amp := reach * math32.Sin(halfSweep)

	coxa := frame.CoxaAttach(leg)
	out := frame.Outward(leg.Side)
	land := coxa.Add(out.Mul(baseOut)).Add(forward.Mul(amp))

	minOut := baseOut * parameter.MinOutwardFraction
	if outComp := land.Sub(coxa).Dot(out); outComp < minOut {
		land = land.Add(out.Mul(minOut - outComp))
	}
	return land
}

// Update advances every leg's state machine to gaitTime
// Planted feet keep their hold; swinging feet ease from lift-off toward the landing point
// and snap onto it on the first stance frame
func Update(segs []component.Segment, gaitTime, bodyHeight float32, lastMove mgl32.Vec2) Transitions {
	var tr Transitions
	if len(segs) == 0 {
		return tr
	}
	forward := ForwardAxis(segs, lastMove)

	for i := range segs {
		frame := FrameAt(segs, i, parameter.GaitEpsilon, forward)
		for li := range segs[i].Legs {
			leg := &segs[i].Legs[li]
			wasOnGround := leg.OnGround
			phase := Phase(gaitTime, leg.PhaseOffset)
			land := LandingPoint(leg, frame, forward, bodyHeight)
			leg.SwingLand = land

			if InStance(phase) {
				leg.OnGround = true
				leg.SwingPhase = 0
				if !wasOnGround {
					leg.FootHold = land
					tr.Landed++
				}
				continue
			}

			leg.OnGround = false
			if wasOnGround {
				leg.SwingStart = leg.FootHold
				tr.Lifted++
			}
			t := SwingProgress(phase)
			leg.SwingPhase = t
			leg.FootHold = vmath.LerpVec2(leg.SwingStart, land, vmath.Smoothstep(t))
		}
	}
	return tr
}

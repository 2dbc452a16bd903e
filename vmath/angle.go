package vmath

import "github.com/chewxy/math32"

// WrapAngle maps a into [-π, π)
func WrapAngle(a float32) float32 {
	a = math32.Mod(a+Pi, TwoPi)
	if a < 0 {
		a += TwoPi
	}
	return a - Pi
}

// WrapPositive maps a into [0, 2π)
func WrapPositive(a float32) float32 {
	a = math32.Mod(a, TwoPi)
	if a < 0 {
		a += TwoPi
	}
	return a
}

// AngleDelta returns the shortest signed rotation from a to b
func AngleDelta(a, b float32) float32 {
	return WrapAngle(b - a)
}

// ClampAround limits a to within ±maxDelta of ref along the shortest arc
func ClampAround(a, ref, maxDelta float32) float32 {
	d := Clamp(AngleDelta(ref, a), -maxDelta, maxDelta)
	return WrapAngle(ref + d)
}

// ApproachAngle rotates current toward target by blend along the shortest arc
func ApproachAngle(current, target, blend float32) float32 {
	return WrapAngle(current + AngleDelta(current, target)*blend)
}

// DegToRad converts degrees to radians
func DegToRad(deg float32) float32 {
	return deg * (Pi / 180)
}

package vmath

import (
	"github.com/chewxy/math32"
	"github.com/go-gl/mathgl/mgl32"
)

const (
	Pi    = math32.Pi
	TwoPi = 2 * math32.Pi
)

// Clamp limits v to [lo, hi]
func Clamp(v, lo, hi float32) float32 {
	return mgl32.Clamp(v, lo, hi)
}

// Lerp interpolates a→b by t without clamping t
func Lerp(a, b, t float32) float32 {
	return a + (b-a)*t
}

// Approach moves current toward target by the blend fraction
func Approach(current, target, blend float32) float32 {
	return current + (target-current)*blend
}

// Smoothstep eases t∈[0,1] with 3t²-2t³
func Smoothstep(t float32) float32 {
	t = Clamp(t, 0, 1)
	return t * t * (3 - 2*t)
}

// RoundCell rounds a grid coordinate half-up to its integer cell
func RoundCell(v float32) int {
	return int(math32.Floor(v + 0.5))
}

package vmath

import (
	"github.com/chewxy/math32"
	"github.com/go-gl/mathgl/mgl32"
)

// UnitX is the canonical fallback direction for degenerate vectors
var UnitX = mgl32.Vec2{1, 0}

// Normalize2D returns the unit vector and original length of v
// Vectors shorter than eps return fallback and length 0
func Normalize2D(v mgl32.Vec2, eps float32, fallback mgl32.Vec2) (mgl32.Vec2, float32) {
	l := v.Len()
	if l < eps {
		return fallback, 0
	}
	return v.Mul(1 / l), l
}

// ClampMagnitude limits v to maxMag while preserving direction
// v is scaled by its largest component first so huge vectors do not overflow the length
func ClampMagnitude(v mgl32.Vec2, maxMag float32) mgl32.Vec2 {
	m := max(math32.Abs(v[0]), math32.Abs(v[1]))
	if m == 0 {
		return v
	}
	u := mgl32.Vec2{v[0] / m, v[1] / m}
	l := u.Len()
	if m <= maxMag/l {
		return v
	}
	return u.Mul(maxMag / l)
}

// Perpendicular returns v rotated 90° counter-clockwise
func Perpendicular(v mgl32.Vec2) mgl32.Vec2 {
	return mgl32.Vec2{-v[1], v[0]}
}

// Heading returns the angle of v in radians
func Heading(v mgl32.Vec2) float32 {
	return math32.Atan2(v[1], v[0])
}

// FromAngle returns the unit vector at angle a
func FromAngle(a float32) mgl32.Vec2 {
	return mgl32.Vec2{math32.Cos(a), math32.Sin(a)}
}

// LerpVec2 interpolates a→b by t
func LerpVec2(a, b mgl32.Vec2, t float32) mgl32.Vec2 {
	return a.Add(b.Sub(a).Mul(t))
}

// ApproachVec2 moves current toward target by the blend fraction
func ApproachVec2(current, target mgl32.Vec2, blend float32) mgl32.Vec2 {
	return current.Add(target.Sub(current).Mul(blend))
}

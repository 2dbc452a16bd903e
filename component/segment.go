package component

import "github.com/go-gl/mathgl/mgl32"

// Leg slots within a segment
const (
	LegLeft  = 0
	LegRight = 1
)

// Segment is one body link of the creature
type Segment struct {
	// Pos is the logical position driven by the mover
	Pos mgl32.Vec2
	// RenderPos lags Pos for smooth drawing
	RenderPos mgl32.Vec2
	// Angle is the heading in radians
	Angle float32

	// Voxel grid, VoxW×VoxH row-major; the filled mask never changes
	VoxW, VoxH int
	Voxels     []Voxel

	// Moved is set when the logical position changed materially this move
	Moved bool

	Legs [2]Leg
}

// Translate moves the segment and all its voxels rigidly
func (s *Segment) Translate(d mgl32.Vec2) {
	s.Pos = s.Pos.Add(d)
	for i := range s.Voxels {
		s.Voxels[i].Translate(d)
	}
}

// FilledCount returns the number of filled voxels
func (s *Segment) FilledCount() int {
	n := 0
	for i := range s.Voxels {
		if s.Voxels[i].Filled {
			n++
		}
	}
	return n
}

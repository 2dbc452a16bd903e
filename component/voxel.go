package component

import "github.com/go-gl/mathgl/mgl32"

// Voxel is one cell of a segment's soft body
// Rest and Filled are fixed at spawn; Pos and Vel evolve every tick
type Voxel struct {
	Rest   mgl32.Vec2 // offset from the owning segment's logical position
	Pos    mgl32.Vec2 // world position in grid units
	Vel    mgl32.Vec2 // grid units per tick
	Filled bool
}

// Cell returns the rounded grid cell the voxel occupies
func (v *Voxel) Cell() Cell {
	return CellOf(v.Pos)
}

// Target returns the rest position for a segment at center
func (v *Voxel) Target(center mgl32.Vec2) mgl32.Vec2 {
	return center.Add(v.Rest)
}

// Translate moves the voxel rigidly without touching velocity
func (v *Voxel) Translate(d mgl32.Vec2) {
	v.Pos = v.Pos.Add(d)
}

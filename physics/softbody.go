package physics

import (
	"github.com/go-gl/mathgl/mgl32"

	"github.com/lixenwraith/centipede/component"
	"github.com/lixenwraith/centipede/parameter"
)

// RelaxStats reports how de-overlap resolved conflicting voxels
type RelaxStats struct {
	Relocated int // moved to a free ring cell
	Nudged    int // freed by stepping along velocity
	Residual  int // overlap accepted
}

// SpringStep performs one damped spring integration of v toward target
// vel += (target - pos) * k; vel *= damping; pos += vel
func SpringStep(v *component.Voxel, target mgl32.Vec2, k, damping float32) {
	v.Vel = v.Vel.Add(target.Sub(v.Pos).Mul(k)).Mul(damping)
	v.Pos = v.Pos.Add(v.Vel)
}

// Relax pulls every filled voxel toward its rest position then removes doubly occupied cells
// Segments flagged Moved get the stronger spring
func Relax(segs []component.Segment, occ *Occupancy) RelaxStats {
	for si := range segs {
		seg := &segs[si]
		k := float32(parameter.VoxelCenterSpring)
		if seg.Moved {
			k += parameter.VoxelMovedSpring
		}
		for vi := range seg.Voxels {
			v := &seg.Voxels[vi]
			if !v.Filled {
				continue
			}
			SpringStep(v, v.Target(seg.Pos), k, parameter.VoxelDamping)
		}
	}
	return DeOverlap(segs, occ)
}

// DeOverlap rebuilds occ claiming cells in (segment, voxel) order
// A voxel landing on a claimed cell is relocated by ring search, else nudged along its velocity,
// else restored to its position and left overlapping
func DeOverlap(segs []component.Segment, occ *Occupancy) RelaxStats {
	var stats RelaxStats
	occ.Reset()

	for si := range segs {
		voxels := segs[si].Voxels
		for vi := range voxels {
			v := &voxels[vi]
			if !v.Filled {
				continue
			}
			self := Occupant{Segment: si, Voxel: vi}
			c := v.Cell()
			if !occ.Occupied(c) {
				occ.Set(c, self)
				continue
			}

			if free, ok := occ.FindFree(c, parameter.RingSearchRadius, nil); ok {
				v.Pos = free.Vec2()
				occ.Set(free, self)
				stats.Relocated++
				continue
			}

			if nudge(v, occ, self) {
				stats.Nudged++
				continue
			}
			stats.Residual++
		}
	}
	return stats
}

// nudge steps v along its velocity until it reaches a free cell
func nudge(v *component.Voxel, occ *Occupancy, self Occupant) bool {
	if v.Vel.Len() == 0 {
		return false
	}
	origin := v.Pos
	step := v.Vel.Mul(parameter.NudgeStep)
	for range parameter.NudgeAttempts {
		v.Pos = v.Pos.Add(step)
		if c := v.Cell(); !occ.Occupied(c) {
			occ.Set(c, self)
			return true
		}
	}
	v.Pos = origin
	return false
}

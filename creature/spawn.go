package creature

import (
	"github.com/go-gl/mathgl/mgl32"

	"github.com/lixenwraith/centipede/component"
	"github.com/lixenwraith/centipede/parameter"
)

// spawnSegment lays out segment i with a diamond voxel mask and two planted legs
func spawnSegment(i, startX, startY int) component.Segment {
	pos := mgl32.Vec2{float32(startX - i*parameter.SegmentSpacing), float32(startY)}
	seg := component.Segment{
		Pos:       pos,
		RenderPos: pos,
		VoxW:      parameter.VoxelMaskSize,
		VoxH:      parameter.VoxelMaskSize,
		Voxels:    make([]component.Voxel, 0, parameter.VoxelMaskSize*parameter.VoxelMaskSize),
	}

	center := parameter.VoxelMaskSize / 2
	for row := range parameter.VoxelMaskSize {
		for col := range parameter.VoxelMaskSize {
			rest := mgl32.Vec2{float32(col), float32(row)}
			seg.Voxels = append(seg.Voxels, component.Voxel{
				Rest:   rest,
				Pos:    pos.Add(rest),
				Filled: abs(col-center)+abs(row-center) <= parameter.VoxelMaskRadius,
			})
		}
	}

	half := float32(parameter.VoxelMaskSize) * 0.5
	for li, side := range [2]int{component.SideLeft, component.SideRight} {
		attach := mgl32.Vec2{half + float32(side)*parameter.HipSideOffset, half}
		hold := pos.Add(attach)
		seg.Legs[li] = component.Leg{
			Side:        side,
			Attach:      attach,
			PhaseOffset: float32(i)*parameter.PhaseStepPerSegment + float32(li)*parameter.PhaseSideOffset,
			Hip:         parameter.LegHipLength,
			KneeLen:     parameter.LegKneeLength,
			Foot:        parameter.LegFootLength,
			Coxa:        parameter.CoxaLength,
			FootHold:    hold,
			SwingStart:  hold,
			OnGround:    true,
		}
	}
	return seg
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}

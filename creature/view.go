package creature

import (
	"github.com/go-gl/mathgl/mgl32"

	"github.com/lixenwraith/centipede/component"
	"github.com/lixenwraith/centipede/gait"
	"github.com/lixenwraith/centipede/ik"
	"github.com/lixenwraith/centipede/parameter"
	"github.com/lixenwraith/centipede/vmath"
)

// LegView is a read-only copy of one leg with its derived attach points and pose
type LegView struct {
	Side                int
	Yaw, HipPitch, Knee float32
	OnGround            bool
	FootHold            mgl32.Vec2
	SwingPhase          float32
	HipAttach           mgl32.Vec2 // where the coxa leaves the spine
	CoxaEnd             mgl32.Vec2 // hip joint, root of the leg links
	Pose                ik.Pose
}

// SegmentView is a read-only copy of one segment
type SegmentView struct {
	Pos       mgl32.Vec2
	RenderPos mgl32.Vec2
	Angle     float32
	Moved     bool
	VoxW      int
	VoxH      int
	Voxels    []component.Voxel
	Legs      [2]LegView
}

// Segments returns deep copies of every segment, head first
func (c *Creature) Segments() []SegmentView {
	views := make([]SegmentView, len(c.segs))
	for i := range c.segs {
		seg := &c.segs[i]
		frame := gait.FrameAt(c.segs, i, parameter.DirectionEpsilon, vmath.UnitX)
		v := SegmentView{
			Pos:       seg.Pos,
			RenderPos: seg.RenderPos,
			Angle:     seg.Angle,
			Moved:     seg.Moved,
			VoxW:      seg.VoxW,
			VoxH:      seg.VoxH,
			Voxels:    append([]component.Voxel(nil), seg.Voxels...),
		}
		for li := range seg.Legs {
			leg := &seg.Legs[li]
			coxa := frame.CoxaAttach(leg)
			v.Legs[li] = LegView{
				Side:       leg.Side,
				Yaw:        leg.Yaw,
				HipPitch:   leg.HipPitch,
				Knee:       leg.Knee,
				OnGround:   leg.OnGround,
				FootHold:   leg.FootHold,
				SwingPhase: leg.SwingPhase,
				HipAttach:  frame.HipAttach(leg.Side),
				CoxaEnd:    coxa,
				Pose:       ik.ForwardKinematics(leg, coxa, c.bodyHeight),
			}
		}
		views[i] = v
	}
	return views
}

// Planted returns the number of legs currently on the ground
func (c *Creature) Planted() int {
	n := 0
	for i := range c.segs {
		for li := range c.segs[i].Legs {
			if c.segs[i].Legs[li].OnGround {
				n++
			}
		}
	}
	return n
}

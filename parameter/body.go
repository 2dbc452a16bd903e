package parameter

// Body layout at spawn
const (
	// SegmentSpacing is the distance between consecutive segment centers along -X at spawn
	SegmentSpacing = 3

	// VoxelMaskSize is the width and height of a segment's voxel grid
	VoxelMaskSize = 3

	// VoxelMaskRadius is the Manhattan radius of the diamond mask around the grid center
	// Radius 1 on a 3×3 grid fills 5 voxels
	VoxelMaskRadius = 1
)

// Leg geometry in grid units
const (
	// StanceWidth is the lateral offset from spine to hip attach
	StanceWidth = 1.0

	// CoxaLength is the distance from hip attach to hip joint
	CoxaLength = 1.4

	// LegTotalLength is split 3:2:1 into hip, knee and foot links
	LegTotalLength = 5.5
	LegHipRatio    = 3.0
	LegKneeRatio   = 2.0
	LegFootRatio   = 1.0

	// HipSideOffset shifts the nominal hip attach left/right of the mask center
	HipSideOffset = 1.2
)

// Leg link lengths derived from the ratios
const (
	legUnit       = LegTotalLength / (LegHipRatio + LegKneeRatio + LegFootRatio)
	LegHipLength  = LegHipRatio * legUnit
	LegKneeLength = LegKneeRatio * legUnit
	LegFootLength = LegFootRatio * legUnit
)

// Metachronal wave
const (
	// PhaseStepPerSegment lags each segment behind its predecessor (π/4)
	PhaseStepPerSegment = 0.78539816

	// PhaseSideOffset puts the right leg half a cycle from the left leg (π)
	PhaseSideOffset = 3.14159265
)

// Body suspension
const (
	BodyRestHeight = 0.6
	BodyHeightMin  = 0.15
	BodyHeightMax  = 2.0

	// BodyPreferredExtension is the fraction of total leg length a planted leg prefers to span
	BodyPreferredExtension = 0.75

	// BodyHeightFloor is the height a fully stretched planted leg contributes
	BodyHeightFloor = 0.05

	// BodyHeightSmoothing is the per-tick exponential blend toward the supported height
	BodyHeightSmoothing = 0.12
)

// RenderFollowSpeed eases each segment's render position toward its logical position per tick
const RenderFollowSpeed = 0.28

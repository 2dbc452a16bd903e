package parameter

// Voxel relaxation springs (per tick, kinematic)
const (
	VoxelCenterSpring = 0.04
	VoxelMovedSpring  = 0.12
	VoxelDamping      = 0.85
)

// De-overlap fallback when the ring search fails
const (
	// NudgeStep is the fraction of voxel velocity applied per nudge attempt
	NudgeStep     = 0.25
	NudgeAttempts = 8
)

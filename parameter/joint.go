package parameter

// Hard joint limits in radians, enforced as absolute clamps by the IK solver
// Pitch is negative downward; knee flexion is a negative rotation added to hip pitch
const (
	HipPitchMin = -1.25 // ≈ -71.6°
	HipPitchMax = 0.15  // ≈ 8.6°
	KneeMin     = -2.00
	KneeMax     = -0.05

	// HipYawMaxDelta bounds yaw deviation from the leg's outward direction (±60°)
	HipYawMaxDelta = 1.04719755
)

// IK solver tuning
const (
	// IKReachEpsilon keeps targets strictly inside the two-link annulus
	IKReachEpsilon = 0.05

	// IKCosKneeLimit avoids acos singularities at full extension/fold
	IKCosKneeLimit = 0.999

	// IKBlend is the per-tick fraction of the way joints move toward their solved targets
	IKBlend = 0.20

	// GroundHeight is the z of the flat ground plane
	GroundHeight = 0.0
)

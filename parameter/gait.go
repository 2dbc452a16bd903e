package parameter

// Gait clock, tuned for 60 updates per second
const (
	// GaitIdleRate advances the gait clock while standing still (rad/tick)
	GaitIdleRate = 0.015

	// GaitPerUnit adds cadence per grid unit the head travelled since the last tick (rad/unit)
	GaitPerUnit = 5.55
)

// Stance/swing timing
const (
	// StanceFraction is the duty cycle: share of each 2π cycle a foot stays planted
	StanceFraction = 0.55

	// SweepDegrees is the total desired angular sweep of a foot around its coxa
	SweepDegrees = 150.0

	// MoveBias weights the last travel direction over the body axis for landing placement
	MoveBias = 0.85

	// MinOutwardFraction keeps landings at least this share of the base outward reach from the spine
	MinOutwardFraction = 0.95

	// GaitEpsilon guards direction normalization in the gait controller
	GaitEpsilon = 1e-4
)

package parameter

// Move request throttling
const (
	// MoveThrottle applies one move every N requests
	MoveThrottle = 2

	// MaxMovePerRequest clamps the magnitude of a single request (large mouse jumps)
	MaxMovePerRequest = 1.2
)

// Collision resolution
const (
	// ResolvePasses bounds the relocate/push passes per move
	ResolvePasses = 5

	// RingSearchRadius bounds the concentric ring search for a free cell
	RingSearchRadius = 6

	// PushBase is the first-pass distance a blocking segment is shoved when relocation fails
	// Pass n pushes PushBase * (1 + n*PushGrowth)
	PushBase   = 1.5
	PushGrowth = 0.7
)

// Follow-the-leader chain
const (
	// FollowSpeed is the fraction of remaining distance a follower closes per move
	// ChainFollowFactor softens it further along the chain
	FollowSpeed       = 0.28
	ChainFollowFactor = 0.9

	// HeadingEase is the per-move blend of follower heading toward its predecessor
	HeadingEase = 0.15

	// HeadingMinDistance skips heading updates when a follower sits on its predecessor
	HeadingMinDistance = 0.1

	// Follower voxel spring-damper applied during propagation
	FollowerSpring  = 0.22
	FollowerDamping = 0.82

	// Separation nudge away from overlapping segments
	SeparationFactor   = 0.2
	SeparationFallback = 0.2
)

// Movement thresholds
const (
	HeadMoveEpsilon   = 1e-6
	FollowMoveEpsilon = 1e-4
	DirectionEpsilon  = 1e-3
)

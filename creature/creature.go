// Package creature composes the mover, gait, body suspension, leg IK and soft body
// into one steerable multi-segment walker
package creature

import (
	"io"

	"github.com/charmbracelet/log"
	"github.com/go-gl/mathgl/mgl32"

	"github.com/lixenwraith/centipede/component"
	"github.com/lixenwraith/centipede/gait"
	"github.com/lixenwraith/centipede/parameter"
	"github.com/lixenwraith/centipede/physics"
	"github.com/lixenwraith/centipede/status"
	"github.com/lixenwraith/centipede/vmath"
)

// Creature owns all simulation state of one walker
// Not safe for concurrent use; call RequestMove and Tick from one goroutine and read views after
type Creature struct {
	segs []component.Segment

	// Scratch reused by every move and tick
	occ         *physics.Occupancy
	prev        []mgl32.Vec2
	headTargets []component.Cell

	moveCounter int
	gaitTime    float32
	bodyHeight  float32
	lastMove    mgl32.Vec2
	lastHead    mgl32.Vec2

	viewport vmath.Viewport
	logger   *log.Logger
	tel      telemetry
}

// MoveResult describes what one applied move did
type MoveResult struct {
	Requested   mgl32.Vec2
	Applied     mgl32.Vec2
	Blocked     bool // head targets stayed occupied after all resolution passes
	Pushes      int  // whole-segment pushes
	Relocations int  // single-voxel relocations
}

// TickResult summarizes one simulation step
type TickResult struct {
	GaitTime    float32
	BodyHeight  float32
	Transitions gait.Transitions
	Relax       physics.RelaxStats
}

// Option configures a Creature
type Option func(*Creature)

// WithLogger routes debug diagnostics to l
func WithLogger(l *log.Logger) Option {
	return func(c *Creature) {
		if l != nil {
			c.logger = l
		}
	}
}

// WithStatus publishes telemetry into reg
func WithStatus(reg *status.Registry) Option {
	return func(c *Creature) {
		if reg != nil {
			c.tel = newTelemetry(reg)
		}
	}
}

// WithViewport replaces the screen rectangle the head is kept inside
func WithViewport(v vmath.Viewport) Option {
	return func(c *Creature) {
		c.viewport = v
	}
}

// New builds a creature of length segments with its head at (startX, startY),
// the body trailing toward -X
// A non-positive length yields an empty creature on which every operation is a no-op
func New(startX, startY, length int, opts ...Option) *Creature {
	length = max(length, 0)
	c := &Creature{
		segs:        make([]component.Segment, length),
		occ:         physics.NewOccupancy(),
		prev:        make([]mgl32.Vec2, length),
		headTargets: make([]component.Cell, 0, parameter.VoxelMaskSize*parameter.VoxelMaskSize),
		bodyHeight:  parameter.BodyRestHeight,
		lastHead:    mgl32.Vec2{float32(startX), float32(startY)},
		viewport:    vmath.DefaultViewport(),
		logger:      log.New(io.Discard),
	}
	c.tel = newTelemetry(status.NewRegistry())

	for i := range c.segs {
		c.segs[i] = spawnSegment(i, startX, startY)
	}
	for _, opt := range opts {
		opt(c)
	}

	c.logger.Debug("creature spawned", "segments", length, "x", startX, "y", startY)
	return c
}

// Len returns the number of segments
func (c *Creature) Len() int {
	return len(c.segs)
}

// BodyHeight returns the smoothed height of the body above ground
func (c *Creature) BodyHeight() float32 {
	return c.bodyHeight
}

// LastMove returns the most recent applied head displacement, zero if the head did not move
func (c *Creature) LastMove() mgl32.Vec2 {
	return c.lastMove
}

// GaitTime returns the gait clock
func (c *Creature) GaitTime() float32 {
	return c.gaitTime
}

// Head returns the head's logical position; ok is false for an empty creature
func (c *Creature) Head() (pos mgl32.Vec2, ok bool) {
	if len(c.segs) == 0 {
		return mgl32.Vec2{}, false
	}
	return c.segs[0].Pos, true
}

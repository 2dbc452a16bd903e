package input

import (
	"github.com/go-gl/mathgl/mgl32"

	"github.com/lixenwraith/centipede/parameter"
)

// Steering turns held input into one move request per frame
// Priority: primary button toward the cursor, then a placed destination, then arrow keys
type Steering struct {
	destination    mgl32.Vec2
	hasDestination bool
}

// NewSteering creates steering with no destination
func NewSteering() *Steering {
	return &Steering{}
}

// SetDestination places a ground-plane destination the head walks toward
func (s *Steering) SetDestination(g mgl32.Vec2) {
	s.destination = g
	s.hasDestination = true
}

// ClearDestination drops the destination
func (s *Steering) ClearDestination() {
	s.hasDestination = false
}

// Destination returns the placed destination if any
func (s *Steering) Destination() (mgl32.Vec2, bool) {
	return s.destination, s.hasDestination
}

// Next returns this frame's move request
// cursor is the cursor's ground-plane grid point, head the head's grid position
// ok is false when nothing should be requested
func (s *Steering) Next(st *State, cursor, head mgl32.Vec2) (delta mgl32.Vec2, ok bool) {
	if st.Button(ButtonLeft) {
		return toward(head, cursor, parameter.SteerMouseMultiplier)
	}

	if s.hasDestination {
		if s.destination.Sub(head).Len() < parameter.SteerArrivalRadius {
			s.hasDestination = false
			return mgl32.Vec2{}, false
		}
		return toward(head, s.destination, parameter.SteerDestinationMultiplier)
	}

	switch {
	case st.Arrow(ArrowLeft):
		return mgl32.Vec2{-parameter.SteerStep, 0}, true
	case st.Arrow(ArrowRight):
		return mgl32.Vec2{parameter.SteerStep, 0}, true
	case st.Arrow(ArrowUp):
		return mgl32.Vec2{0, -parameter.SteerStep}, true
	case st.Arrow(ArrowDown):
		return mgl32.Vec2{0, parameter.SteerStep}, true
	}
	return mgl32.Vec2{}, false
}

// toward returns a step of SteerStep·mult from 'from' toward 'to'
func toward(from, to mgl32.Vec2, mult float32) (mgl32.Vec2, bool) {
	dir := to.Sub(from)
	l := dir.Len()
	if l <= parameter.SteerMinDistance {
		return mgl32.Vec2{}, false
	}
	return dir.Mul(parameter.SteerStep * mult / l), true
}

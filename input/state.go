package input

import "github.com/go-gl/mathgl/mgl32"

// Arrow identifies a steering key
type Arrow uint8

const (
	ArrowLeft Arrow = iota
	ArrowRight
	ArrowUp
	ArrowDown
	arrowCount
)

// Button identifies a pointer button
type Button uint8

const (
	ButtonLeft Button = iota
	ButtonMiddle
	ButtonRight
	buttonCount
)

// State is a front-end neutral snapshot of held input for one frame
// Front ends translate their native events into it before steering
type State struct {
	arrows  [arrowCount]bool
	buttons [buttonCount]bool

	// Cursor is the pointer position in screen units
	Cursor mgl32.Vec2
}

// SetArrow records whether an arrow key is held
func (s *State) SetArrow(a Arrow, held bool) {
	if a < arrowCount {
		s.arrows[a] = held
	}
}

// SetButton records whether a pointer button is held
func (s *State) SetButton(b Button, held bool) {
	if b < buttonCount {
		s.buttons[b] = held
	}
}

func (s *State) Arrow(a Arrow) bool {
	return a < arrowCount && s.arrows[a]
}

func (s *State) Button(b Button) bool {
	return b < buttonCount && s.buttons[b]
}

// ReleaseArrows clears all arrow keys
// Terminals report presses only, so the sandbox releases keys every frame
func (s *State) ReleaseArrows() {
	s.arrows = [arrowCount]bool{}
}

package parameter

import "time"

// Steering intent
const (
	// SteerStep is the base per-frame displacement for key steering
	SteerStep = 0.4

	// SteerMouseMultiplier scales SteerStep while the primary button is held
	SteerMouseMultiplier = 3.5

	// SteerDestinationMultiplier scales SteerStep while walking to a placed destination
	SteerDestinationMultiplier = 3.0

	// SteerArrivalRadius clears the destination once the head is this close
	SteerArrivalRadius = 0.6

	// SteerMinDistance is the cursor distance below which no move is requested
	SteerMinDistance = 0.001
)

// Terminal input
const (
	// TerminalArrowHold keeps an arrow held this long after its last key event
	// Terminals report presses and repeats but no releases
	TerminalArrowHold = 150 * time.Millisecond
)

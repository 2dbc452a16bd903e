package parameter

// Isometric camera pan/zoom
const (
	// CameraZoomStep multiplies or divides zoom once per wheel notch
	CameraZoomStep = 1.05
	CameraZoomMin  = 0.2
	CameraZoomMax  = 4.0
)

// Terminal camera dead zone
// The view scrolls only when the head enters the margin between dead zone and viewport edge
const (
	// CameraDeadZoneMarginX is horizontal margin in cells from viewport edge
	CameraDeadZoneMarginX = 12

	// CameraDeadZoneMarginY is vertical margin in cells from viewport edge
	CameraDeadZoneMarginY = 6
)

package parameter

// Isometric drawing sizes as fractions of the zoomed tile
const (
	DrawSpineWidth      = 0.2
	DrawLegJointRadius  = 0.2
	DrawCoxaWidth       = 0.1
	DrawLegWidth        = 0.12
	DrawJointRadius     = 0.15
	DrawFootRadius      = 0.25
	DrawSegmentRadius   = 0.3
	DrawMarkerRadius    = 0.25
	DrawMarkerMinRadius = 3.0 // pixels

	// DrawMinLinePixels skips links shorter than this on screen
	DrawMinLinePixels = 0.1
)

// Isometric floor grid
const (
	// GridMargin extends the drawn grid beyond the visible area, in grid units
	GridMargin = 6.0

	// GridLinePixels is the grid stroke width
	GridLinePixels = 2.0
)

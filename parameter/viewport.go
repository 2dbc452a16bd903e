package parameter

// Fixed isometric viewport used to keep the head on screen
const (
	ViewportWidth  = 800.0
	ViewportHeight = 800.0
	ViewportMargin = 20.0

	// ViewportTile is the tile size in pixels at zoom 1
	ViewportTile = 10.0

	// ViewportOriginY is the screen Y of grid origin; X origin is the viewport center
	ViewportOriginY = 50.0

	// ViewportHeightScale converts z (tile units) into screen lift per tile pixel
	ViewportHeightScale = 0.3
)

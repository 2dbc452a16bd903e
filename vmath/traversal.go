package vmath

import (
	"github.com/chewxy/math32"
	"github.com/go-gl/mathgl/mgl32"
)

// --- 2D Traversal (Supercover DDA) ---

// Traverse visits every unit cell intersected by the segment from a to b
// Cell (x, y) covers [x, x+1) × [y, y+1); the callback returns false to stop
// Terminates by checking target bounds before stepping
func Traverse(a, b mgl32.Vec2, callback func(x, y int) bool) {
	ix, iy := int(math32.Floor(a[0])), int(math32.Floor(a[1]))
	targetX, targetY := int(math32.Floor(b[0])), int(math32.Floor(b[1]))

	if ix == targetX && iy == targetY {
		callback(ix, iy)
		return
	}

	dx := b[0] - a[0]
	dy := b[1] - a[1]

	stepX, stepY := 1, 1
	if dx < 0 {
		stepX = -1
		dx = -dx
	}
	if dy < 0 {
		stepY = -1
		dy = -dy
	}

	// Parametric distance to the first boundary and between boundaries
	inf := math32.Inf(1)
	tMaxX, tMaxY := inf, inf
	var tDeltaX, tDeltaY float32
	if dx != 0 {
		tDeltaX = 1 / dx
		fx := a[0] - math32.Floor(a[0])
		if stepX > 0 {
			tMaxX = (1 - fx) * tDeltaX
		} else {
			tMaxX = fx * tDeltaX
		}
	}
	if dy != 0 {
		tDeltaY = 1 / dy
		fy := a[1] - math32.Floor(a[1])
		if stepY > 0 {
			tMaxY = (1 - fy) * tDeltaY
		} else {
			tMaxY = fy * tDeltaY
		}
	}

	if !callback(ix, iy) {
		return
	}

	for ix != targetX || iy != targetY {
		if tMaxX < tMaxY {
			if ix != targetX {
				ix += stepX
				tMaxX += tDeltaX
			} else {
				// X is done, forced to step Y
				iy += stepY
				tMaxY += tDeltaY
			}
		} else if tMaxX > tMaxY {
			if iy != targetY {
				iy += stepY
				tMaxY += tDeltaY
			} else {
				ix += stepX
				tMaxX += tDeltaX
			}
		} else {
			// Diagonal step
			if ix != targetX {
				ix += stepX
				tMaxX += tDeltaX
			}
			if iy != targetY {
				iy += stepY
				tMaxY += tDeltaY
			}
		}

		if !callback(ix, iy) {
			break
		}
	}
}

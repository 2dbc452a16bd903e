package input

import (
	"github.com/go-gl/mathgl/mgl32"

	"github.com/lixenwraith/centipede/parameter"
	"github.com/lixenwraith/centipede/vmath"
)

// Camera pans and zooms an isometric projection
// Offset is in screen pixels relative to the base projection origin
type Camera struct {
	base   vmath.Projection
	Zoom   float32
	Offset mgl32.Vec2

	dragging bool
	lastDrag mgl32.Vec2
}

// NewCamera creates a camera at zoom 1 over the base projection
func NewCamera(base vmath.Projection) *Camera {
	return &Camera{base: base, Zoom: 1}
}

// Projection returns the base projection scaled by zoom and shifted by offset
func (c *Camera) Projection() vmath.Projection {
	p := c.base
	p.Tile = c.base.Tile * c.Zoom
	p.Origin = c.base.Origin.Add(c.Offset)
	return p
}

// ScreenToGrid maps a screen point onto the ground plane
func (c *Camera) ScreenToGrid(s mgl32.Vec2) mgl32.Vec2 {
	return c.Projection().ScreenToGrid(s)
}

// BeginDrag starts a pan at screen point p
func (c *Camera) BeginDrag(p mgl32.Vec2) {
	c.dragging = true
	c.lastDrag = p
}

// EndDrag stops panning
func (c *Camera) EndDrag() {
	c.dragging = false
}

// Dragging reports whether a pan is in progress
func (c *Camera) Dragging() bool {
	return c.dragging
}

// DragTo pans by the pointer movement since the last drag point
func (c *Camera) DragTo(p mgl32.Vec2) {
	if !c.dragging {
		return
	}
	c.Offset = c.Offset.Add(p.Sub(c.lastDrag))
	c.lastDrag = p
}

// ZoomAt zooms one step in (wheel > 0) or out (wheel < 0), keeping the
// grid point under cursor fixed on screen
func (c *Camera) ZoomAt(wheel float32, cursor mgl32.Vec2) {
	if wheel == 0 {
		return
	}
	anchor := c.ScreenToGrid(cursor)

	if wheel > 0 {
		c.Zoom *= parameter.CameraZoomStep
	} else {
		c.Zoom /= parameter.CameraZoomStep
	}
	c.Zoom = vmath.Clamp(c.Zoom, parameter.CameraZoomMin, parameter.CameraZoomMax)

	// Solve for the origin that projects anchor back onto cursor
	p := c.Projection()
	p.Origin = mgl32.Vec2{}
	rel := p.GridToScreen(anchor, 0)
	c.Offset = cursor.Sub(rel).Sub(c.base.Origin)
}

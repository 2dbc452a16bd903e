package vmath

import (
	"github.com/go-gl/mathgl/mgl32"

	"github.com/lixenwraith/centipede/parameter"
)

// Projection maps grid space onto isometric screen pixels
// Each grid cell projects to a diamond Tile wide and Tile/2 tall
type Projection struct {
	Tile        float32    // tile size in pixels at current zoom
	Origin      mgl32.Vec2 // screen position of grid (0,0)
	HeightScale float32    // screen lift per tile pixel per unit z
}

// DefaultProjection returns the fixed viewport projection
func DefaultProjection() Projection {
	return Projection{
		Tile:        parameter.ViewportTile,
		Origin:      mgl32.Vec2{parameter.ViewportWidth * 0.5, parameter.ViewportOriginY},
		HeightScale: parameter.ViewportHeightScale,
	}
}

// GridToScreen projects a grid point at height z
func (p Projection) GridToScreen(g mgl32.Vec2, z float32) mgl32.Vec2 {
	halfW := p.Tile * 0.5
	halfH := p.Tile * 0.25
	return mgl32.Vec2{
		(g[0]-g[1])*halfW + p.Origin[0],
		(g[0]+g[1])*halfH - z*p.Tile*p.HeightScale + p.Origin[1],
	}
}

// ScreenToGrid inverts the ground-plane projection; height cannot be recovered
func (p Projection) ScreenToGrid(s mgl32.Vec2) mgl32.Vec2 {
	halfW := p.Tile * 0.5
	halfH := p.Tile * 0.25
	if halfW == 0 || halfH == 0 {
		return mgl32.Vec2{}
	}
	a := (s[0] - p.Origin[0]) / halfW
	b := (s[1] - p.Origin[1]) / halfH
	return mgl32.Vec2{(a + b) * 0.5, (b - a) * 0.5}
}

// Viewport is a screen rectangle with an inset margin
type Viewport struct {
	Projection    Projection
	Width, Height float32
	Margin        float32
}

// DefaultViewport returns the fixed 800×800 viewport the head is kept within
func DefaultViewport() Viewport {
	return Viewport{
		Projection: DefaultProjection(),
		Width:      parameter.ViewportWidth,
		Height:     parameter.ViewportHeight,
		Margin:     parameter.ViewportMargin,
	}
}

// Contains reports per screen axis whether ground point g projects inside the margin
func (v Viewport) Contains(g mgl32.Vec2) (inX, inY bool) {
	s := v.Projection.GridToScreen(g, 0)
	inX = s[0] >= v.Margin && s[0] <= v.Width-v.Margin
	inY = s[1] >= v.Margin && s[1] <= v.Height-v.Margin
	return inX, inY
}

// Excess returns how far ground point g projects beyond the margin rectangle, summed over both screen axes
func (v Viewport) Excess(g mgl32.Vec2) float32 {
	s := v.Projection.GridToScreen(g, 0)
	lo, hiX, hiY := v.Margin, v.Width-v.Margin, v.Height-v.Margin
	var e float32
	e += max(0, lo-s[0]) + max(0, s[0]-hiX)
	e += max(0, lo-s[1]) + max(0, s[1]-hiY)
	return e
}

package terminal

import (
	"github.com/chewxy/math32"
	"github.com/go-gl/mathgl/mgl32"

	"github.com/lixenwraith/centipede/parameter"
)

// View maps grid space onto terminal cells, one cell per grid unit
// Origin is the grid point at the top-left corner of cell (0, 0)
type View struct {
	Origin mgl32.Vec2
}

// ToCell returns the cell containing grid point g
func (v View) ToCell(g mgl32.Vec2) (x, y int) {
	d := g.Sub(v.Origin)
	return int(math32.Floor(d[0])), int(math32.Floor(d[1]))
}

// ToLocal returns g in continuous cell coordinates
func (v View) ToLocal(g mgl32.Vec2) mgl32.Vec2 {
	return g.Sub(v.Origin)
}

// ToGrid returns the grid point at the center of cell (x, y)
func (v View) ToGrid(x, y int) mgl32.Vec2 {
	return v.Origin.Add(mgl32.Vec2{float32(x) + 0.5, float32(y) + 0.5})
}

// CenterOn places target in the middle of a w×h area
func (v *View) CenterOn(target mgl32.Vec2, w, h int) {
	v.Origin = target.Sub(mgl32.Vec2{float32(w) * 0.5, float32(h) * 0.5})
}

// Follow scrolls only when target leaves the dead zone of a w×h area
// Margins shrink on small terminals so the dead zone never inverts
func (v *View) Follow(target mgl32.Vec2, w, h int) {
	mx := min(float32(parameter.CameraDeadZoneMarginX), float32(w)*0.25)
	my := min(float32(parameter.CameraDeadZoneMarginY), float32(h)*0.25)

	local := v.ToLocal(target)
	if local[0] < mx {
		v.Origin[0] -= mx - local[0]
	} else if hi := float32(w) - mx; local[0] > hi {
		v.Origin[0] += local[0] - hi
	}
	if local[1] < my {
		v.Origin[1] -= my - local[1]
	} else if hi := float32(h) - my; local[1] > hi {
		v.Origin[1] += local[1] - hi
	}
}

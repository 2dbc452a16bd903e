package component

import (
	"github.com/go-gl/mathgl/mgl32"

	"github.com/lixenwraith/centipede/vmath"
)

// Cell is an integer grid cell
type Cell struct {
	X, Y int
}

// CellOf returns the cell a grid point rounds into
func CellOf(p mgl32.Vec2) Cell {
	return Cell{X: vmath.RoundCell(p[0]), Y: vmath.RoundCell(p[1])}
}

// Add offsets the cell
func (c Cell) Add(dx, dy int) Cell {
	return Cell{X: c.X + dx, Y: c.Y + dy}
}

// Vec2 returns the cell center as a grid point
func (c Cell) Vec2() mgl32.Vec2 {
	return mgl32.Vec2{float32(c.X), float32(c.Y)}
}

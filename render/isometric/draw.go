package isometric

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"github.com/lixenwraith/centipede/render"
)

// Draw clears dst and rasterizes the display list in order
func Draw(dst *ebiten.Image, shapes []Shape) {
	dst.Fill(render.RGBA(render.BackgroundColor, 255))
	for i := range shapes {
		s := &shapes[i]
		switch s.Kind {
		case ShapeLine:
			vector.StrokeLine(dst, s.A[0], s.A[1], s.B[0], s.B[1], s.Size, s.Color, true)
		case ShapeCircle:
			vector.DrawFilledCircle(dst, s.A[0], s.A[1], s.Size, s.Color, true)
		}
	}
}

// Package isometric draws the creature in the isometric window
// Plan builds a display list; Draw rasterizes it with ebiten
package isometric

import (
	"image/color"

	"github.com/chewxy/math32"
	"github.com/go-gl/mathgl/mgl32"

	"github.com/lixenwraith/centipede/creature"
	"github.com/lixenwraith/centipede/parameter"
	"github.com/lixenwraith/centipede/render"
	"github.com/lixenwraith/centipede/vmath"
)

// ShapeKind discriminates display list entries
type ShapeKind uint8

const (
	ShapeLine ShapeKind = iota
	ShapeCircle
)

// Layer orders the display list back to front
type Layer uint8

const (
	LayerGrid Layer = iota
	LayerSpine
	LayerCoxa
	LayerLeg
	LayerJoint
	LayerFoot
	LayerSegment
	LayerMarker
)

// Shape is one screen-space primitive
// Lines use A→B and Size as stroke width; circles use A as center and Size as radius
type Shape struct {
	Kind  ShapeKind
	Layer Layer
	A, B  mgl32.Vec2
	Size  float32
	Color color.RGBA
}

// Scene is everything one frame draws
type Scene struct {
	Segments       []creature.SegmentView
	BodyHeight     float32
	Destination    mgl32.Vec2
	HasDestination bool
}

// Plan builds the display list for scene under projection p on a w×h screen
func Plan(p vmath.Projection, w, h float32, s Scene, out []Shape) []Shape {
	out = out[:0]
	out = planGrid(p, w, h, out)

	tile := p.Tile
	z := s.BodyHeight
	n := len(s.Segments)

	spine := render.RGBA(render.SpineColor, 255)
	legJoint := render.RGBA(render.LegJointColor, 255)
	for i := 0; i+1 < n; i++ {
		a := p.GridToScreen(s.Segments[i].RenderPos, z)
		b := p.GridToScreen(s.Segments[i+1].RenderPos, z)
		out = appendLine(out, LayerSpine, a, b, tile*parameter.DrawSpineWidth, spine)
		out = append(out, Shape{Kind: ShapeCircle, Layer: LayerSpine, A: a.Add(b).Mul(0.5), Size: tile * parameter.DrawLegJointRadius, Color: legJoint})
	}

	coxa := render.RGBA(render.CoxaColor, 255)
	for i := range s.Segments {
		for _, lv := range s.Segments[i].Legs {
			a := p.GridToScreen(lv.HipAttach, z)
			b := p.GridToScreen(lv.CoxaEnd, z)
			out = appendLine(out, LayerCoxa, a, b, tile*parameter.DrawCoxaWidth, coxa)
		}
	}

	legColor := render.RGBA(render.LegColor, 255)
	jointColor := render.RGBA(render.JointColor, 255)
	for i := range s.Segments {
		for _, lv := range s.Segments[i].Legs {
			pose := lv.Pose
			hip := project(p, pose.Hip)
			knee := project(p, pose.Knee)
			ankle := project(p, pose.Ankle)
			foot := project(p, pose.Foot)

			out = appendLine(out, LayerLeg, hip, knee, tile*parameter.DrawLegWidth, legColor)
			out = appendLine(out, LayerLeg, knee, ankle, tile*parameter.DrawLegWidth, legColor)
			out = appendLine(out, LayerLeg, ankle, foot, tile*parameter.DrawLegWidth, legColor)
			for _, j := range [...]mgl32.Vec2{hip, knee, ankle} {
				out = append(out, Shape{Kind: ShapeCircle, Layer: LayerJoint, A: j, Size: tile * parameter.DrawJointRadius, Color: jointColor})
			}
			out = append(out, Shape{Kind: ShapeCircle, Layer: LayerFoot, A: foot, Size: tile * parameter.DrawFootRadius, Color: render.RGBA(render.FootColor(lv.OnGround), 255)})
		}
	}

	for i := range s.Segments {
		c := p.GridToScreen(s.Segments[i].RenderPos, z)
		out = append(out, Shape{Kind: ShapeCircle, Layer: LayerSegment, A: c, Size: tile * parameter.DrawSegmentRadius, Color: render.RGBA(render.SegmentJointColor, 255)})
	}

	if s.HasDestination {
		c := p.GridToScreen(s.Destination, 0)
		r := max(parameter.DrawMarkerMinRadius, tile*parameter.DrawMarkerRadius)
		out = append(out, Shape{Kind: ShapeCircle, Layer: LayerMarker, A: c, Size: r, Color: render.RGBA(render.DestinationColor, 255)})
	}
	return out
}

// planGrid emits constant-gx and constant-gy floor lines covering the screen plus a margin
func planGrid(p vmath.Projection, w, h float32, out []Shape) []Shape {
	corners := [4]mgl32.Vec2{
		p.ScreenToGrid(mgl32.Vec2{0, 0}),
		p.ScreenToGrid(mgl32.Vec2{w, 0}),
		p.ScreenToGrid(mgl32.Vec2{0, h}),
		p.ScreenToGrid(mgl32.Vec2{w, h}),
	}
	lo, hi := corners[0], corners[0]
	for _, c := range corners[1:] {
		lo = mgl32.Vec2{min(lo[0], c[0]), min(lo[1], c[1])}
		hi = mgl32.Vec2{max(hi[0], c[0]), max(hi[1], c[1])}
	}

	gx0 := int(math32.Floor(lo[0] - parameter.GridMargin))
	gx1 := int(math32.Ceil(hi[0] + parameter.GridMargin))
	gy0 := int(math32.Floor(lo[1] - parameter.GridMargin))
	gy1 := int(math32.Ceil(hi[1] + parameter.GridMargin))

	grid := render.RGBA(render.GridColor, render.GridAlpha)
	for gx := gx0; gx <= gx1; gx++ {
		a := p.GridToScreen(mgl32.Vec2{float32(gx), float32(gy0)}, 0)
		b := p.GridToScreen(mgl32.Vec2{float32(gx), float32(gy1)}, 0)
		out = appendLine(out, LayerGrid, a, b, parameter.GridLinePixels, grid)
	}
	for gy := gy0; gy <= gy1; gy++ {
		a := p.GridToScreen(mgl32.Vec2{float32(gx0), float32(gy)}, 0)
		b := p.GridToScreen(mgl32.Vec2{float32(gx1), float32(gy)}, 0)
		out = appendLine(out, LayerGrid, a, b, parameter.GridLinePixels, grid)
	}
	return out
}

// appendLine skips links too short to see
func appendLine(out []Shape, layer Layer, a, b mgl32.Vec2, width float32, c color.RGBA) []Shape {
	if b.Sub(a).Len() <= parameter.DrawMinLinePixels {
		return out
	}
	return append(out, Shape{Kind: ShapeLine, Layer: layer, A: a, B: b, Size: width, Color: c})
}

func project(p vmath.Projection, v mgl32.Vec3) mgl32.Vec2 {
	return p.GridToScreen(v.Vec2(), v[2])
}

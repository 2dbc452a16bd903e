package terminal

import (
	"github.com/gdamore/tcell/v2"
	"github.com/go-gl/mathgl/mgl32"

	"github.com/lixenwraith/centipede/creature"
	"github.com/lixenwraith/centipede/render"
	"github.com/lixenwraith/centipede/status"
	"github.com/lixenwraith/centipede/vmath"
)

// Glyphs
const (
	GlyphVoxel       = '░'
	GlyphSpine       = '·'
	GlyphCoxa        = '-'
	GlyphLeg         = '.'
	GlyphJoint       = '+'
	GlyphPlanted     = '#'
	GlyphAirborne    = '^'
	GlyphHead        = '@'
	GlyphSegment     = 'O'
	GlyphDestination = 'X'
)

// Scene is everything one frame draws
type Scene struct {
	Segments       []creature.SegmentView
	Destination    mgl32.Vec2
	HasDestination bool
	Status         []status.Entry
}

// Draw renders the scene back to front: voxels, spine, legs, feet, segment joints, marker, status line
// The bottom row is reserved for status when entries are present
func Draw(c *Canvas, v View, s Scene) {
	c.Clear()
	n := len(s.Segments)

	for i := range s.Segments {
		st := Style(render.SegmentColor(i, n))
		for _, vox := range s.Segments[i].Voxels {
			if vox.Filled {
				x, y := v.ToCell(vox.Pos)
				c.Set(x, y, GlyphVoxel, st)
			}
		}
	}

	spine := Style(render.SpineColor)
	for i := 0; i+1 < n; i++ {
		line(c, v, s.Segments[i].RenderPos, s.Segments[i+1].RenderPos, GlyphSpine, spine)
	}

	coxa := Style(render.CoxaColor)
	leg := Style(render.LegColor)
	joint := Style(render.JointColor)
	for i := range s.Segments {
		for _, lv := range s.Segments[i].Legs {
			p := lv.Pose
			line(c, v, lv.HipAttach, lv.CoxaEnd, GlyphCoxa, coxa)
			line(c, v, p.Hip.Vec2(), p.Knee.Vec2(), GlyphLeg, leg)
			line(c, v, p.Knee.Vec2(), p.Ankle.Vec2(), GlyphLeg, leg)
			line(c, v, p.Ankle.Vec2(), p.Foot.Vec2(), GlyphLeg, leg)
			for _, j := range [...]mgl32.Vec2{p.Hip.Vec2(), p.Knee.Vec2(), p.Ankle.Vec2()} {
				x, y := v.ToCell(j)
				c.Set(x, y, GlyphJoint, joint)
			}
		}
	}

	for i := range s.Segments {
		for _, lv := range s.Segments[i].Legs {
			x, y := v.ToCell(lv.Pose.Foot.Vec2())
			glyph := GlyphAirborne
			if lv.OnGround {
				glyph = GlyphPlanted
			}
			c.Set(x, y, glyph, Style(render.FootColor(lv.OnGround)))
		}
	}

	// Head drawn last so it stays visible
	for i := n - 1; i >= 0; i-- {
		x, y := v.ToCell(s.Segments[i].RenderPos)
		glyph := GlyphSegment
		if i == 0 {
			glyph = GlyphHead
		}
		c.Set(x, y, glyph, Style(render.SegmentColor(i, n)).Bold(true))
	}

	if s.HasDestination {
		x, y := v.ToCell(s.Destination)
		c.Set(x, y, GlyphDestination, Style(render.DestinationColor).Bold(true))
	}

	if len(s.Status) > 0 {
		_, h := c.Size()
		c.Text(0, h-1, status.Line(s.Status), Style(render.StatusTextColor).Dim(true))
	}
}

// line plots every cell the segment a→b crosses
func line(c *Canvas, v View, a, b mgl32.Vec2, r rune, st tcell.Style) {
	w, h := c.Size()
	la, lb := v.ToLocal(a), v.ToLocal(b)
	// Lines entirely off the canvas are skipped
	if max(la[0], lb[0]) < 0 || min(la[0], lb[0]) >= float32(w) || max(la[1], lb[1]) < 0 || min(la[1], lb[1]) >= float32(h) {
		return
	}
	limit := 2 * (w + h)
	vmath.Traverse(la, lb, func(x, y int) bool {
		c.Set(x, y, r, st)
		limit--
		return limit > 0
	})
}

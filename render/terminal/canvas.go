// Package terminal draws a top-down view of the creature into a tcell screen
package terminal

import (
	"github.com/gdamore/tcell/v2"
	"github.com/lucasb-eyer/go-colorful"

	"github.com/lixenwraith/centipede/render"
)

// Cell is one character position
type Cell struct {
	Rune  rune
	Style tcell.Style
}

// Canvas is an off-screen cell grid flushed to a screen once per frame
type Canvas struct {
	w, h  int
	cells []Cell
	blank Cell
}

// NewCanvas creates a cleared canvas of w×h cells
func NewCanvas(w, h int) *Canvas {
	c := &Canvas{blank: Cell{Rune: ' ', Style: Style(render.StatusTextColor)}}
	c.Resize(w, h)
	return c
}

// Resize reallocates the grid if the size changed
func (c *Canvas) Resize(w, h int) {
	w, h = max(w, 0), max(h, 0)
	if w == c.w && h == c.h && c.cells != nil {
		return
	}
	c.w, c.h = w, h
	c.cells = make([]Cell, w*h)
	c.Clear()
}

func (c *Canvas) Size() (w, h int) {
	return c.w, c.h
}

// Clear fills every cell with a blank
func (c *Canvas) Clear() {
	for i := range c.cells {
		c.cells[i] = c.blank
	}
}

// Set writes one cell; out-of-bounds writes are dropped
func (c *Canvas) Set(x, y int, r rune, st tcell.Style) {
	if x < 0 || x >= c.w || y < 0 || y >= c.h {
		return
	}
	c.cells[y*c.w+x] = Cell{Rune: r, Style: st}
}

// At returns the cell at (x, y), or a blank outside the canvas
func (c *Canvas) At(x, y int) Cell {
	if x < 0 || x >= c.w || y < 0 || y >= c.h {
		return c.blank
	}
	return c.cells[y*c.w+x]
}

// Text writes s left to right from (x, y)
func (c *Canvas) Text(x, y int, s string, st tcell.Style) {
	i := 0
	for _, r := range s {
		c.Set(x+i, y, r, st)
		i++
	}
}

// Flush copies the canvas to the screen and shows it
func (c *Canvas) Flush(s tcell.Screen) {
	for y := 0; y < c.h; y++ {
		for x := 0; x < c.w; x++ {
			cell := c.cells[y*c.w+x]
			s.SetContent(x, y, cell.Rune, nil, cell.Style)
		}
	}
	s.Show()
}

// Style returns a foreground style for c on the background color
func Style(c colorful.Color) tcell.Style {
	return tcell.StyleDefault.Foreground(tcellColor(c)).Background(tcellColor(render.BackgroundColor))
}

func tcellColor(c colorful.Color) tcell.Color {
	r, g, b := c.Clamped().RGB255()
	return tcell.NewRGBColor(int32(r), int32(g), int32(b))
}

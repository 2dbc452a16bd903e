package main

import (
	"github.com/charmbracelet/log"
	"github.com/go-gl/mathgl/mgl32"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"github.com/lixenwraith/centipede/audio"
	"github.com/lixenwraith/centipede/creature"
	"github.com/lixenwraith/centipede/input"
	"github.com/lixenwraith/centipede/render/isometric"
	"github.com/lixenwraith/centipede/status"
	"github.com/lixenwraith/centipede/vmath"
)

// game adapts the creature to ebiten's Update/Draw/Layout loop
type game struct {
	creature *creature.Creature
	player   *audio.Player
	reg      *status.Registry
	logger   *log.Logger

	input    input.State
	steering *input.Steering
	camera   *input.Camera

	width, height int
	shapes        []isometric.Shape
	showStatus    bool
}

func newGame(c *creature.Creature, p *audio.Player, reg *status.Registry, v vmath.Viewport, logger *log.Logger) *game {
	return &game{
		creature:   c,
		player:     p,
		reg:        reg,
		logger:     logger,
		steering:   input.NewSteering(),
		camera:     input.NewCamera(v.Projection),
		width:      int(v.Width),
		height:     int(v.Height),
		showStatus: true,
	}
}

var arrowKeys = [...]struct {
	key   ebiten.Key
	arrow input.Arrow
}{
	{ebiten.KeyArrowLeft, input.ArrowLeft},
	{ebiten.KeyArrowRight, input.ArrowRight},
	{ebiten.KeyArrowUp, input.ArrowUp},
	{ebiten.KeyArrowDown, input.ArrowDown},
}

var mouseButtons = [...]struct {
	button ebiten.MouseButton
	mapped input.Button
}{
	{ebiten.MouseButtonLeft, input.ButtonLeft},
	{ebiten.MouseButtonMiddle, input.ButtonMiddle},
	{ebiten.MouseButtonRight, input.ButtonRight},
}

// Update polls input, applies at most one move and advances the simulation one tick
func (g *game) Update() error {
	if inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		return ebiten.Termination
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyTab) {
		g.showStatus = !g.showStatus
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyC) {
		g.steering.ClearDestination()
	}

	g.pollInput()

	if head, ok := g.creature.Head(); ok {
		cursor := g.camera.ScreenToGrid(g.input.Cursor)
		if d, ok := g.steering.Next(&g.input, cursor, head); ok {
			if res, applied := g.creature.RequestMove(d[0], d[1]); applied && res.Blocked {
				g.logger.Debug("move blocked", "requested", res.Requested, "applied", res.Applied)
			}
		}
	}

	tick := g.creature.Tick()
	g.player.Footfall(tick.Transitions.Landed)
	return nil
}

// pollInput copies ebiten's device state into the input snapshot and drives the camera
func (g *game) pollInput() {
	for _, k := range arrowKeys {
		g.input.SetArrow(k.arrow, ebiten.IsKeyPressed(k.key))
	}
	for _, b := range mouseButtons {
		g.input.SetButton(b.mapped, ebiten.IsMouseButtonPressed(b.button))
	}
	x, y := ebiten.CursorPosition()
	g.input.Cursor = mgl32.Vec2{float32(x), float32(y)}

	if inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonRight) {
		g.steering.SetDestination(g.camera.ScreenToGrid(g.input.Cursor))
	}

	switch {
	case inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonMiddle):
		g.camera.BeginDrag(g.input.Cursor)
	case inpututil.IsMouseButtonJustReleased(ebiten.MouseButtonMiddle):
		g.camera.EndDrag()
	case g.camera.Dragging():
		g.camera.DragTo(g.input.Cursor)
	}

	if _, wy := ebiten.Wheel(); wy != 0 {
		g.camera.ZoomAt(float32(wy), g.input.Cursor)
	}
}

// Draw renders the display list and the status overlay
func (g *game) Draw(screen *ebiten.Image) {
	dest, hasDest := g.steering.Destination()
	g.shapes = isometric.Plan(g.camera.Projection(), float32(g.width), float32(g.height), isometric.Scene{
		Segments:       g.creature.Segments(),
		BodyHeight:     g.creature.BodyHeight(),
		Destination:    dest,
		HasDestination: hasDest,
	}, g.shapes)
	isometric.Draw(screen, g.shapes)

	if g.showStatus {
		y := 4
		for _, e := range g.reg.Snapshot() {
			ebitenutil.DebugPrintAt(screen, e.Key+" "+e.Value, 6, y)
			y += 14
		}
	}
}

// Layout keeps the logical screen at the window size so the viewport clamp matches what is visible
func (g *game) Layout(outsideWidth, outsideHeight int) (int, int) {
	return g.width, g.height
}

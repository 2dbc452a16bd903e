package main

import (
	"time"

	"github.com/charmbracelet/log"
	"github.com/gdamore/tcell/v2"
	"github.com/go-gl/mathgl/mgl32"

	"github.com/lixenwraith/centipede/audio"
	"github.com/lixenwraith/centipede/config"
	"github.com/lixenwraith/centipede/creature"
	"github.com/lixenwraith/centipede/diag"
	"github.com/lixenwraith/centipede/input"
	"github.com/lixenwraith/centipede/parameter"
	"github.com/lixenwraith/centipede/render/terminal"
	"github.com/lixenwraith/centipede/status"
)

// sandbox owns the terminal loop
type sandbox struct {
	screen   tcell.Screen
	creature *creature.Creature
	player   *audio.Player
	reg      *status.Registry
	logger   *log.Logger

	canvas   *terminal.Canvas
	view     terminal.View
	input    input.State
	steering *input.Steering

	// Last key event per arrow; terminals never report releases
	arrowAt [4]time.Time

	mouseX, mouseY int
	lastButtons    tcell.ButtonMask
	showStatus     bool
}

func newSandbox(screen tcell.Screen, c *creature.Creature, p *audio.Player, reg *status.Registry, logger *log.Logger) *sandbox {
	w, h := screen.Size()
	s := &sandbox{
		screen:     screen,
		creature:   c,
		player:     p,
		reg:        reg,
		logger:     logger,
		canvas:     terminal.NewCanvas(w, h),
		steering:   input.NewSteering(),
		showStatus: true,
	}
	if head, ok := c.Head(); ok {
		s.view.CenterOn(head, w, h)
	}
	return s
}

// loop runs until quit; events arrive on a channel fed by a polling goroutine
func (s *sandbox) loop(frame time.Duration) {
	ticker := time.NewTicker(frame)
	defer ticker.Stop()

	events := make(chan tcell.Event, 100)
	done := make(chan struct{})
	defer close(done)
	diag.Go(func() {
		pumpEvents(s.screen.PollEvent, events, done)
	})

	for {
		select {
		case ev := <-events:
			if !s.handleEvent(ev) {
				return
			}
		case now := <-ticker.C:
			s.update(now)
			s.draw()
		}
	}
}

// pumpEvents forwards polled events until poll returns nil or done closes
func pumpEvents(poll func() tcell.Event, events chan<- tcell.Event, done <-chan struct{}) {
	for {
		ev := poll()
		if ev == nil {
			return
		}
		select {
		case events <- ev:
		case <-done:
			return
		}
	}
}

// frameInterval converts the configured tick rate into the ticker period
func frameInterval(w config.Window) time.Duration {
	return time.Second / time.Duration(w.TPS)
}

// handleEvent returns false when the user quits
func (s *sandbox) handleEvent(ev tcell.Event) bool {
	switch ev := ev.(type) {
	case *tcell.EventKey:
		now := time.Now()
		switch ev.Key() {
		case tcell.KeyEscape, tcell.KeyCtrlC:
			return false
		case tcell.KeyLeft:
			s.arrowAt[input.ArrowLeft] = now
		case tcell.KeyRight:
			s.arrowAt[input.ArrowRight] = now
		case tcell.KeyUp:
			s.arrowAt[input.ArrowUp] = now
		case tcell.KeyDown:
			s.arrowAt[input.ArrowDown] = now
		case tcell.KeyTab:
			s.showStatus = !s.showStatus
		case tcell.KeyRune:
			switch ev.Rune() {
			case 'q':
				return false
			case 'c':
				s.steering.ClearDestination()
			case ' ':
				s.recenter()
			}
		}

	case *tcell.EventMouse:
		s.mouseX, s.mouseY = ev.Position()
		buttons := ev.Buttons()
		s.input.SetButton(input.ButtonLeft, buttons&tcell.Button1 != 0)
		s.input.SetButton(input.ButtonRight, buttons&tcell.Button2 != 0)
		s.input.SetButton(input.ButtonMiddle, buttons&tcell.Button3 != 0)
		pressed := buttons &^ s.lastButtons
		if pressed&tcell.Button2 != 0 {
			s.steering.SetDestination(s.view.ToGrid(s.mouseX, s.mouseY))
		}
		if pressed&tcell.Button3 != 0 {
			s.recenter()
		}
		s.lastButtons = buttons

	case *tcell.EventResize:
		w, h := s.screen.Size()
		s.canvas.Resize(w, h)
		s.screen.Sync()
	}
	return true
}

// update applies at most one move and advances one tick
func (s *sandbox) update(now time.Time) {
	for a := range s.arrowAt {
		held := !s.arrowAt[a].IsZero() && now.Sub(s.arrowAt[a]) < parameter.TerminalArrowHold
		s.input.SetArrow(input.Arrow(a), held)
	}
	s.input.Cursor = mgl32.Vec2{float32(s.mouseX), float32(s.mouseY)}

	if head, ok := s.creature.Head(); ok {
		cursor := s.view.ToGrid(s.mouseX, s.mouseY)
		if d, ok := s.steering.Next(&s.input, cursor, head); ok {
			if res, applied := s.creature.RequestMove(d[0], d[1]); applied && res.Blocked {
				s.logger.Debug("move blocked", "requested", res.Requested, "applied", res.Applied)
			}
		}
	}

	tick := s.creature.Tick()
	s.player.Footfall(tick.Transitions.Landed)

	if head, ok := s.creature.Head(); ok {
		w, h := s.canvas.Size()
		s.view.Follow(head, w, h)
	}
}

func (s *sandbox) recenter() {
	if head, ok := s.creature.Head(); ok {
		w, h := s.canvas.Size()
		s.view.CenterOn(head, w, h)
	}
}

func (s *sandbox) draw() {
	scene := terminal.Scene{Segments: s.creature.Segments()}
	scene.Destination, scene.HasDestination = s.steering.Destination()
	if s.showStatus {
		scene.Status = s.reg.Snapshot()
	}
	terminal.Draw(s.canvas, s.view, scene)
	s.canvas.Flush(s.screen)
}

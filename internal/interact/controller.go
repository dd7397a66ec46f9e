// Package interact turns pointer and key events into body creation,
// launch velocities and resets.
//
// A creation gesture is a two-state machine: Idle, then Armed with a
// pending body between a pointer-down above the control band and the next
// pointer-up. The pending body is already part of the world while Armed
// and receives its velocity on release.
package interact

import (
	"math"

	"github.com/go-gl/mathgl/mgl64"
	"github.com/san-kum/gravbox/internal/control"
	"github.com/san-kum/gravbox/internal/input"
	"github.com/san-kum/gravbox/internal/physics"
	"github.com/san-kum/gravbox/internal/sim"
)

const (
	DefaultLaunchScale = 0.1
	DefaultResetKey    = 'r'
	DefaultPanelHeight = 100.0
)

type Config struct {
	// PanelTop is the y coordinate where the reserved control band begins;
	// pointer-downs at or below it never create bodies.
	PanelTop    float64
	LaunchScale float64
	ResetKey    rune
	TrailLength int
}

// DefaultConfig reserves the bottom band of a surface of the given height.
func DefaultConfig(height float64) Config {
	return Config{
		PanelTop:    height - DefaultPanelHeight,
		LaunchScale: DefaultLaunchScale,
		ResetKey:    DefaultResetKey,
		TrailLength: physics.DefaultTrailLength,
	}
}

// Gesture is an armed creation gesture.
type Gesture struct {
	Body  *physics.Body
	Start mgl64.Vec2
}

type Controller struct {
	cfg     Config
	pending *Gesture
	cursor  mgl64.Vec2
}

func NewController(cfg Config) *Controller {
	return &Controller{cfg: cfg}
}

func (c *Controller) Config() Config { return c.cfg }

// Pending returns the armed gesture, or nil when idle.
func (c *Controller) Pending() *Gesture { return c.pending }

func (c *Controller) Armed() bool { return c.pending != nil }

// Cursor is the last pointer position seen.
func (c *Controller) Cursor() mgl64.Vec2 { return c.cursor }

// Preview returns the aim line of an armed gesture.
func (c *Controller) Preview() (start, end mgl64.Vec2, ok bool) {
	if c.pending == nil {
		return start, end, false
	}
	return c.pending.Start, c.cursor, true
}

// Handle applies ev to the sliders and then to the gesture state machine.
// It reports true for a quit event.
func (c *Controller) Handle(w *sim.World, p *control.Panel, ev input.Event) bool {
	p.HandleEvent(ev)

	switch ev.Kind {
	case input.Quit:
		return true
	case input.PointerMove:
		c.cursor = ev.Pos
	case input.PointerDown:
		c.cursor = ev.Pos
		if ev.Pos.Y() < c.cfg.PanelTop {
			c.arm(w, p, ev.Pos)
		}
	case input.PointerUp:
		c.cursor = ev.Pos
		c.release(ev.Pos)
	case input.KeyDown:
		if ev.Key == c.cfg.ResetKey {
			c.Reset(w)
		}
	}
	return false
}

// Reset empties the world and abandons any armed gesture.
func (c *Controller) Reset(w *sim.World) {
	w.Clear()
	c.pending = nil
}

func (c *Controller) arm(w *sim.World, p *control.Panel, pos mgl64.Vec2) {
	radius := math.Trunc(p.Size.Value())
	b := physics.NewBody(pos, p.Mass.Value(), radius, c.cfg.TrailLength)
	w.Add(b)
	c.pending = &Gesture{Body: b, Start: pos}
}

func (c *Controller) release(pos mgl64.Vec2) {
	if c.pending == nil {
		return
	}
	c.pending.Body.Vel = pos.Sub(c.pending.Start).Mul(c.cfg.LaunchScale)
	c.pending = nil
}

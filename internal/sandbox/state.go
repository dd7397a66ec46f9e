// Package sandbox holds the complete state of one sandbox session and runs
// it one frame at a time: events, then a single physics step, then drawing.
package sandbox

import (
	"github.com/san-kum/gravbox/internal/config"
	"github.com/san-kum/gravbox/internal/control"
	"github.com/san-kum/gravbox/internal/input"
	"github.com/san-kum/gravbox/internal/interact"
	"github.com/san-kum/gravbox/internal/physics"
	"github.com/san-kum/gravbox/internal/render"
	"github.com/san-kum/gravbox/internal/sim"
)

// State is owned by the frame loop and is never shared between goroutines.
type State struct {
	World    *sim.World
	Controls *control.Panel
	Input    *interact.Controller
	Sim      *sim.Simulator

	Dt    float64
	Ticks int

	observers []sim.Observer
}

func New(cfg *config.Config) *State {
	return &State{
		World:    sim.NewWorld(),
		Controls: control.NewPanel(cfg.Layout()),
		Input:    interact.NewController(cfg.Interact()),
		Sim:      sim.New(cfg.Ordering()),
		Dt:       cfg.Simulation.Dt,
	}
}

// AddObserver registers o to be called after every physics step.
func (s *State) AddObserver(o sim.Observer) { s.observers = append(s.observers, o) }

// Seed moves the gravity slider to the preset's value and adds its bodies.
func (s *State) Seed(p *config.Preset) {
	s.Controls.Gravity.SetValue(p.Gravity)
	for _, b := range p.Build(s.Input.Config().TrailLength) {
		s.World.Add(b)
	}
}

func (s *State) Gravity() float64 { return s.Controls.Gravity.Value() }

// Frame applies events in order, then advances physics by exactly one
// step, unless a quit event was seen; in that case it returns true without
// stepping.
func (s *State) Frame(events []input.Event) bool {
	for _, ev := range events {
		if s.Input.Handle(s.World, s.Controls, ev) {
			return true
		}
	}
	s.Step()
	return false
}

// Step advances the world once using the gravity slider read at call time.
func (s *State) Step() {
	s.Sim.StepWorld(s.World, s.Gravity(), s.Dt)
	s.Ticks++
	for _, o := range s.observers {
		o.OnStep(s.World.Bodies(), s.Ticks)
	}
}

// Draw renders the aim line, the bodies and then the sliders.
func (s *State) Draw(surf render.Surface) {
	if start, end, ok := s.Input.Preview(); ok {
		render.DrawAim(surf, start, end)
	}
	render.DrawBodies(surf, s.World.Bodies())
	render.DrawPanel(surf, s.Controls)
}

// Energy is the current total energy under the live gravity value.
func (s *State) Energy() float64 {
	return physics.TotalEnergy(s.World.Bodies(), s.Gravity())
}

package control

import (
	"errors"
	"fmt"
	"strings"

	"github.com/san-kum/gravbox/internal/input"
)

var ErrUnknownParam = errors.New("control: unknown parameter")

// Spec describes one slider: track origin, width, range and starting value.
type Spec struct {
	X, Y     float64
	Width    float64
	Min, Max float64
	Value    float64
	Label    string
}

func (s Spec) build(hit float64) *Slider {
	sl := NewSlider(s.X, s.Y, s.Width, s.Min, s.Max, s.Value, s.Label)
	if hit > 0 {
		sl.HitRadius = hit
	}
	return sl
}

type Layout struct {
	Size      Spec
	Mass      Spec
	Gravity   Spec
	HitRadius float64
}

// DefaultLayout is the classic arrangement for a surface of the given height:
// size and mass stacked on the left, gravity to their right.
func DefaultLayout(height float64) Layout {
	return Layout{
		Size:      Spec{X: 50, Y: height - 120, Width: 200, Min: 5, Max: 50, Value: 15, Label: "Size"},
		Mass:      Spec{X: 50, Y: height - 80, Width: 200, Min: 5, Max: 2000, Value: 225, Label: "Mass"},
		Gravity:   Spec{X: 350, Y: height - 80, Width: 200, Min: 1, Max: 300, Value: 100, Label: "Gravity"},
		HitRadius: DefaultHitRadius,
	}
}

// Panel groups the sandbox sliders. Events are delivered to every slider
// independently.
type Panel struct {
	Size    *Slider
	Mass    *Slider
	Gravity *Slider
}

func NewPanel(l Layout) *Panel {
	return &Panel{
		Size:    l.Size.build(l.HitRadius),
		Mass:    l.Mass.build(l.HitRadius),
		Gravity: l.Gravity.build(l.HitRadius),
	}
}

func (p *Panel) Sliders() []*Slider {
	return []*Slider{p.Size, p.Mass, p.Gravity}
}

// HandleEvent forwards ev to every slider and reports whether any knob was
// grabbed by it.
func (p *Panel) HandleEvent(ev input.Event) bool {
	grabbed := false
	for _, s := range p.Sliders() {
		if s.HandleEvent(ev) {
			grabbed = true
		}
	}
	return grabbed
}

func (p *Panel) Dragging() bool {
	for _, s := range p.Sliders() {
		if s.Dragging() {
			return true
		}
	}
	return false
}

// Params returns the current values keyed by lower-case label.
func (p *Panel) Params() map[string]float64 {
	return map[string]float64{
		"size":    p.Size.Value(),
		"mass":    p.Mass.Value(),
		"gravity": p.Gravity.Value(),
	}
}

func (p *Panel) SetParam(name string, value float64) error {
	switch strings.ToLower(name) {
	case "size":
		p.Size.SetValue(value)
	case "mass":
		p.Mass.SetValue(value)
	case "gravity":
		p.Gravity.SetValue(value)
	default:
		return fmt.Errorf("%w: %q", ErrUnknownParam, name)
	}
	return nil
}

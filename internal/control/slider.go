package control

import (
	"fmt"
	"math"

	"github.com/go-gl/mathgl/mgl64"
	"github.com/san-kum/gravbox/internal/input"
)

// DefaultHitRadius is the half-size of the square around the knob that
// starts a drag.
const DefaultHitRadius = 15.0

type Slider struct {
	X, Y      float64
	Width     float64
	Min, Max  float64
	Label     string
	HitRadius float64

	value    float64
	knobX    float64
	dragging bool
}

// NewSlider places the knob for initial, clamped into [min, max].
func NewSlider(x, y, width, min, max, initial float64, label string) *Slider {
	initial = math.Max(min, math.Min(max, initial))
	return &Slider{
		X:         x,
		Y:         y,
		Width:     width,
		Min:       min,
		Max:       max,
		Label:     label,
		HitRadius: DefaultHitRadius,
		value:     initial,
		knobX:     x + (initial-min)/(max-min)*width,
	}
}

func (s *Slider) Value() float64 { return s.value }
func (s *Slider) KnobX() float64 { return s.knobX }
func (s *Slider) Dragging() bool { return s.dragging }

// Knob is the centre of the knob in surface coordinates.
func (s *Slider) Knob() mgl64.Vec2 { return mgl64.Vec2{s.knobX, s.Y} }

// Hit reports whether pos lies inside the knob's square hit area. The test
// is relative to the knob, not the track.
func (s *Slider) Hit(pos mgl64.Vec2) bool {
	return math.Abs(pos.X()-s.knobX) < s.HitRadius && math.Abs(pos.Y()-s.Y) < s.HitRadius
}

// PointerDown starts a drag when pos hits the knob and reports whether it did.
func (s *Slider) PointerDown(pos mgl64.Vec2) bool {
	if !s.Hit(pos) {
		return false
	}
	s.dragging = true
	return true
}

func (s *Slider) PointerUp() {
	s.dragging = false
}

// PointerMove follows the pointer horizontally while dragging.
func (s *Slider) PointerMove(pos mgl64.Vec2) {
	if !s.dragging {
		return
	}
	s.SetKnob(pos.X())
}

// SetKnob moves the knob to x, clamped to the track, and recomputes the value.
func (s *Slider) SetKnob(x float64) {
	s.knobX = math.Max(s.X, math.Min(x, s.X+s.Width))
	s.value = s.Min + (s.knobX-s.X)/s.Width*(s.Max-s.Min)
}

// SetValue moves the knob so that the slider reads v (clamped).
func (s *Slider) SetValue(v float64) {
	v = math.Max(s.Min, math.Min(s.Max, v))
	s.SetKnob(s.X + (v-s.Min)/(s.Max-s.Min)*s.Width)
}

// HandleEvent applies a single input event and reports whether a pointer-down
// grabbed the knob.
func (s *Slider) HandleEvent(ev input.Event) bool {
	switch ev.Kind {
	case input.PointerDown:
		return s.PointerDown(ev.Pos)
	case input.PointerUp:
		s.PointerUp()
	case input.PointerMove:
		s.PointerMove(ev.Pos)
	}
	return false
}

// Text is the label drawn next to the track.
func (s *Slider) Text() string {
	return fmt.Sprintf("%s: %d", s.Label, int(s.value))
}

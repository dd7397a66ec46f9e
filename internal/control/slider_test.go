package control

import (
	"errors"
	"math"
	"testing"

	"github.com/go-gl/mathgl/mgl64"
	"github.com/san-kum/gravbox/internal/input"
)

func TestSlider_InitialKnob(t *testing.T) {
	s := NewSlider(50, 620, 200, 5, 2000, 225, "Mass")
	want := 50 + (225.0-5)/(2000-5)*200
	if math.Abs(s.KnobX()-want) > 1e-12 {
		t.Errorf("KnobX() = %v, want %v", s.KnobX(), want)
	}
	if s.Value() != 225 {
		t.Errorf("Value() = %v, want 225", s.Value())
	}
}

func TestSlider_InitialClamped(t *testing.T) {
	s := NewSlider(0, 0, 100, 10, 20, 99, "x")
	if s.Value() != 20 || s.KnobX() != 100 {
		t.Errorf("expected clamp to max, got value=%v knob=%v", s.Value(), s.KnobX())
	}
}

func TestSlider_AffineMap(t *testing.T) {
	tests := []struct {
		name string
		knob float64
		want float64
	}{
		{"track start", 350, 1},
		{"track end", 550, 300},
		{"midpoint", 450, 150.5},
		{"left of track", 0, 1},
		{"right of track", 9999, 300},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := NewSlider(350, 620, 200, 1, 300, 100, "Gravity")
			s.SetKnob(tt.knob)
			if math.Abs(s.Value()-tt.want) > 1e-12 {
				t.Errorf("Value() = %v, want %v", s.Value(), tt.want)
			}
			if s.KnobX() < s.X || s.KnobX() > s.X+s.Width {
				t.Errorf("knob %v escaped the track", s.KnobX())
			}
		})
	}
}

func TestSlider_DragToEnd(t *testing.T) {
	s := NewSlider(50, 580, 200, 5, 50, 15, "Size")

	if !s.PointerDown(s.Knob()) {
		t.Fatal("pressing the knob should start a drag")
	}
	s.PointerMove(mgl64.Vec2{400, 590})
	if s.Value() != 50 {
		t.Fatalf("Value() = %v, want 50", s.Value())
	}
	s.PointerUp()
	if s.Dragging() {
		t.Fatal("pointer-up should end the drag")
	}

	// Press on the track away from the knob: nothing moves.
	if s.PointerDown(mgl64.Vec2{60, 580}) {
		t.Error("track press away from the knob should not grab")
	}
	s.PointerMove(mgl64.Vec2{60, 580})
	if s.Value() != 50 || s.KnobX() != 250 {
		t.Errorf("knob moved without a grab: value=%v knob=%v", s.Value(), s.KnobX())
	}
}

func TestSlider_HitRadiusIsStrict(t *testing.T) {
	s := NewSlider(0, 100, 100, 0, 10, 5, "x")
	knob := s.Knob()

	tests := []struct {
		name string
		pos  mgl64.Vec2
		want bool
	}{
		{"centre", knob, true},
		{"inside corner", knob.Add(mgl64.Vec2{14.9, -14.9}), true},
		{"on x edge", knob.Add(mgl64.Vec2{15, 0}), false},
		{"on y edge", knob.Add(mgl64.Vec2{0, -15}), false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := s.Hit(tt.pos); got != tt.want {
				t.Errorf("Hit(%v) = %v, want %v", tt.pos, got, tt.want)
			}
		})
	}
}

func TestSlider_MoveIgnoredWhenIdle(t *testing.T) {
	s := NewSlider(0, 0, 100, 0, 10, 5, "x")
	s.PointerMove(mgl64.Vec2{100, 0})
	if s.Value() != 5 {
		t.Errorf("idle slider changed to %v", s.Value())
	}
}

func TestSlider_Text(t *testing.T) {
	s := NewSlider(0, 0, 100, 0, 10, 7.9, "Size")
	if got := s.Text(); got != "Size: 7" {
		t.Errorf("Text() = %q, want %q", got, "Size: 7")
	}
}

func TestPanel_IndependentSliders(t *testing.T) {
	p := NewPanel(DefaultLayout(700))
	before := p.Params()

	grabbed := p.HandleEvent(input.Event{Kind: input.PointerDown, Pos: p.Gravity.Knob()})
	if !grabbed || !p.Gravity.Dragging() {
		t.Fatal("gravity knob should be grabbed")
	}
	p.HandleEvent(input.Move(550, 620))
	p.HandleEvent(input.Up(550, 620))

	after := p.Params()
	if after["gravity"] != 300 {
		t.Errorf("gravity = %v, want 300", after["gravity"])
	}
	if after["size"] != before["size"] || after["mass"] != before["mass"] {
		t.Errorf("other sliders changed: before %v after %v", before, after)
	}
	if p.Dragging() {
		t.Error("no slider should be dragging after pointer-up")
	}
}

func TestPanel_SetParam(t *testing.T) {
	p := NewPanel(DefaultLayout(700))
	if err := p.SetParam("Gravity", 42); err != nil {
		t.Fatalf("SetParam failed: %v", err)
	}
	if math.Abs(p.Gravity.Value()-42) > 1e-9 {
		t.Errorf("gravity = %v, want 42", p.Gravity.Value())
	}
	if err := p.SetParam("spin", 1); !errors.Is(err, ErrUnknownParam) {
		t.Errorf("expected ErrUnknownParam, got %v", err)
	}
}

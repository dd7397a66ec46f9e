package render

import (
	"math"

	"github.com/go-gl/mathgl/mgl64"
	"github.com/san-kum/gravbox/internal/control"
	"github.com/san-kum/gravbox/internal/physics"
)

const (
	TrackThickness = 4.0
	KnobRadius     = 10.0
	AimThickness   = 2.0
	labelGap       = 20.0
	labelRise      = 12.0
)

func round(p mgl64.Vec2) mgl64.Vec2 {
	return mgl64.Vec2{math.Round(p.X()), math.Round(p.Y())}
}

// DrawBody draws the trail oldest to newest and then the body on top, all
// in the body's current colour.
func DrawBody(s Surface, b *physics.Body) {
	c := b.Color()
	dot := b.TrailDotRadius()
	for i := 0; i < b.Trail.Len(); i++ {
		s.Circle(round(b.Trail.At(i)), dot, c)
	}
	s.Circle(round(b.Pos), b.Radius, c)
}

func DrawBodies(s Surface, bodies []*physics.Body) {
	for _, b := range bodies {
		DrawBody(s, b)
	}
}

// DrawSlider draws the track, the knob and the "Label: value" text to the
// right of the track.
func DrawSlider(s Surface, sl *control.Slider) {
	s.Line(mgl64.Vec2{sl.X, sl.Y}, mgl64.Vec2{sl.X + sl.Width, sl.Y}, Grey, TrackThickness)
	s.Circle(round(sl.Knob()), KnobRadius, White)
	s.Text(sl.Text(), mgl64.Vec2{sl.X + sl.Width + labelGap, sl.Y - labelRise}, White)
}

func DrawPanel(s Surface, p *control.Panel) {
	for _, sl := range p.Sliders() {
		DrawSlider(s, sl)
	}
}

// DrawAim draws the launch preview line of an armed gesture.
func DrawAim(s Surface, start, end mgl64.Vec2) {
	s.Line(start, end, Red, AimThickness)
}

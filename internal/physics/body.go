package physics

import (
	"math"

	"github.com/go-gl/mathgl/mgl64"
	"github.com/lucasb-eyer/go-colorful"
)

// DefaultTrailLength is the number of recent positions a body remembers.
const DefaultTrailLength = 30

var (
	// FreshColor is used for a body that has not been integrated yet.
	FreshColor = colorful.Color{R: 100.0 / 255, G: 149.0 / 255, B: 237.0 / 255}

	slowColor = colorful.Color{R: 0, G: 50.0 / 255, B: 1}
	fastColor = colorful.Color{R: 1, G: 50.0 / 255, B: 0}
)

type Body struct {
	Pos    mgl64.Vec2
	Vel    mgl64.Vec2
	Mass   float64
	Radius float64
	Trail  *Trail
}

// NewBody returns a body at rest. A non-positive trailLen falls back to
// DefaultTrailLength.
func NewBody(pos mgl64.Vec2, mass, radius float64, trailLen int) *Body {
	if trailLen <= 0 {
		trailLen = DefaultTrailLength
	}
	return &Body{
		Pos:    pos,
		Mass:   mass,
		Radius: radius,
		Trail:  NewTrail(trailLen),
	}
}

func (b *Body) Speed() float64 {
	return b.Vel.Len()
}

// Integrate pulls b toward every other body in others and advances it by dt.
func (b *Body) Integrate(others []*Body, g, dt float64) {
	b.Advance(Acceleration(b, others, g), dt)
}

// Advance applies one semi-implicit Euler step: the velocity is updated
// first and the new velocity moves the position. The resulting position is
// recorded in the trail.
func (b *Body) Advance(acc mgl64.Vec2, dt float64) {
	b.Vel = b.Vel.Add(acc.Mul(dt))
	b.Pos = b.Pos.Add(b.Vel.Mul(dt))
	b.Trail.Push(b.Pos)
}

// Intensity is the 0..255 heat value driving the display colour.
func (b *Body) Intensity() int {
	v := b.Mass/2 + b.Speed()*5
	if v > 255 {
		v = 255
	}
	if v < 0 || math.IsNaN(v) {
		v = 0
	}
	return int(v)
}

// Color is derived from mass and speed on every call and is never read
// back by the simulation.
func (b *Body) Color() colorful.Color {
	if b.Trail.Len() == 0 {
		return FreshColor
	}
	return slowColor.BlendRgb(fastColor, float64(b.Intensity())/255)
}

// TrailDotRadius is the radius used for each remembered position.
func (b *Body) TrailDotRadius() float64 {
	return math.Max(1, math.Floor(b.Radius/5))
}

func (b *Body) IsFinite() bool {
	for _, v := range [...]float64{b.Pos.X(), b.Pos.Y(), b.Vel.X(), b.Vel.Y()} {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return false
		}
	}
	return true
}

package physics

import (
	"math"

	"github.com/go-gl/mathgl/mgl64"
)

// Acceleration sums the gravitational pull of others on self. Bodies are
// compared by identity, so a distinct body sharing self's position is
// still visited; such zero-distance pairs are skipped.
func Acceleration(self *Body, others []*Body, g float64) mgl64.Vec2 {
	var acc mgl64.Vec2
	for _, o := range others {
		if o == self {
			continue
		}
		acc = acc.Add(PairAcceleration(self.Pos, o.Pos, o.Mass, g))
	}
	return acc
}

// PairAcceleration is the acceleration at p caused by a mass m at q:
// magnitude g*m/r², directed from p toward q.
func PairAcceleration(p, q mgl64.Vec2, m, g float64) mgl64.Vec2 {
	d := q.Sub(p)
	dist2 := d.Dot(d)
	if dist2 == 0 {
		return mgl64.Vec2{}
	}
	dist := math.Sqrt(dist2)
	mag := g * m / dist2
	return mgl64.Vec2{mag * d.X() / dist, mag * d.Y() / dist}
}

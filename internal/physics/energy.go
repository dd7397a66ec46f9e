package physics

import (
	"math"

	"github.com/go-gl/mathgl/mgl64"
)

func KineticEnergy(bodies []*Body) float64 {
	ke := 0.0
	for _, b := range bodies {
		ke += 0.5 * b.Mass * b.Vel.Dot(b.Vel)
	}
	return ke
}

// PotentialEnergy sums -g*mi*mj/r over distinct pairs. Coincident pairs are
// left out, matching the force law.
func PotentialEnergy(bodies []*Body, g float64) float64 {
	pe := 0.0
	for i := 0; i < len(bodies); i++ {
		for j := i + 1; j < len(bodies); j++ {
			d := bodies[j].Pos.Sub(bodies[i].Pos)
			r := math.Sqrt(d.Dot(d))
			if r == 0 {
				continue
			}
			pe -= g * bodies[i].Mass * bodies[j].Mass / r
		}
	}
	return pe
}

func TotalEnergy(bodies []*Body, g float64) float64 {
	return KineticEnergy(bodies) + PotentialEnergy(bodies, g)
}

func Momentum(bodies []*Body) mgl64.Vec2 {
	var p mgl64.Vec2
	for _, b := range bodies {
		p = p.Add(b.Vel.Mul(b.Mass))
	}
	return p
}

// CenterOfMass returns the mass-weighted mean position and false when the
// total mass is zero.
func CenterOfMass(bodies []*Body) (mgl64.Vec2, bool) {
	var sum mgl64.Vec2
	total := 0.0
	for _, b := range bodies {
		sum = sum.Add(b.Pos.Mul(b.Mass))
		total += b.Mass
	}
	if total == 0 {
		return mgl64.Vec2{}, false
	}
	return sum.Mul(1 / total), true
}

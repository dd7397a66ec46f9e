package config

import (
	"errors"
	"fmt"
	"math"
	"sort"

	"github.com/go-gl/mathgl/mgl64"
	"github.com/san-kum/gravbox/internal/physics"
)

var ErrUnknownPreset = errors.New("config: unknown preset")

// BodySeed is the initial state of one body in a preset.
type BodySeed struct {
	X, Y   float64
	VX, VY float64
	Mass   float64
	Radius float64
}

// Preset is a compiled-in starting scene. Gravity is the value the gravity
// slider is moved to.
type Preset struct {
	Name        string
	Description string
	Gravity     float64
	Bodies      []BodySeed
}

// Build creates fresh bodies for the preset.
func (p *Preset) Build(trailLen int) []*physics.Body {
	out := make([]*physics.Body, 0, len(p.Bodies))
	for _, s := range p.Bodies {
		b := physics.NewBody(mgl64.Vec2{s.X, s.Y}, s.Mass, s.Radius, trailLen)
		b.Vel = mgl64.Vec2{s.VX, s.VY}
		out = append(out, b)
	}
	return out
}

// circular returns the speed of a light body in a circular orbit of radius
// r around mass m.
func circular(g, m, r float64) float64 {
	return math.Sqrt(g * m / r)
}

// ring places n equal masses on a circle so that they rotate rigidly
// around the centre (a Lagrange configuration for n=3).
func ring(n int, cx, cy, r, mass, radius, g float64) []BodySeed {
	// Sum of radial pulls from the other n-1 bodies on one of them.
	pull := 0.0
	for k := 1; k < n; k++ {
		theta := 2 * math.Pi * float64(k) / float64(n)
		d := 2 * r * math.Sin(theta/2)
		pull += g * mass / (d * d) * math.Sin(theta/2)
	}
	v := math.Sqrt(pull * r)

	seeds := make([]BodySeed, n)
	for i := range seeds {
		a := -math.Pi/2 + 2*math.Pi*float64(i)/float64(n)
		seeds[i] = BodySeed{
			X: cx + r*math.Cos(a), Y: cy + r*math.Sin(a),
			VX: -v * math.Sin(a), VY: v * math.Cos(a),
			Mass: mass, Radius: radius,
		}
	}
	return seeds
}

var Presets = map[string]*Preset{
	"empty": {
		Name:        "empty",
		Description: "no bodies",
		Gravity:     100,
	},
	"drop": {
		Name:        "drop",
		Description: "a light body released at rest next to a heavy one",
		Gravity:     100,
		Bodies: []BodySeed{
			{X: 450, Y: 300, Mass: 1000, Radius: 20},
			{X: 550, Y: 300, Mass: 1, Radius: 5},
		},
	},
	"orbit": {
		Name:        "orbit",
		Description: "two planets circling a heavy star",
		Gravity:     100,
		Bodies: []BodySeed{
			{X: 500, Y: 300, Mass: 2000, Radius: 25},
			{X: 500, Y: 100, VX: circular(100, 2000, 200), Mass: 5, Radius: 6},
			{X: 500, Y: 450, VX: -circular(100, 2000, 150), Mass: 5, Radius: 6},
		},
	},
	"binary": {
		Name:        "binary",
		Description: "two equal stars orbiting their common centre",
		Gravity:     100,
		Bodies:      ring(2, 500, 300, 100, 1000, 18, 100),
	},
	"trio": {
		Name:        "trio",
		Description: "three equal masses in a rotating triangle",
		Gravity:     100,
		Bodies:      ring(3, 500, 300, 115, 500, 14, 100),
	},
}

func GetPreset(name string) (*Preset, error) {
	p, ok := Presets[name]
	if !ok {
		return nil, fmt.Errorf("%w: %q (available: %v)", ErrUnknownPreset, name, ListPresets())
	}
	return p, nil
}

func ListPresets() []string {
	names := make([]string, 0, len(Presets))
	for name := range Presets {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

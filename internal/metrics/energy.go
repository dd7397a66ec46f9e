package metrics

import (
	"math"

	"github.com/san-kum/gravbox/internal/physics"
)

// Energy tracks the most recent total (kinetic + potential) energy.
type Energy struct {
	name    string
	current float64
	samples int
}

func NewEnergy() *Energy {
	return &Energy{name: "energy"}
}

func (e *Energy) Name() string { return e.name }

func (e *Energy) Observe(bodies []*physics.Body, g float64, step int) {
	e.current = physics.TotalEnergy(bodies, g)
	e.samples++
}

func (e *Energy) Value() float64 { return e.current }

func (e *Energy) Reset() {
	e.current = 0
	e.samples = 0
}

// EnergyDrift is the largest relative departure from the first observed
// energy. The unsoftened force law makes close passes blow this up; it is
// a health signal, not a conservation guarantee.
type EnergyDrift struct {
	name          string
	initialEnergy float64
	maxDrift      float64
	samples       int
}

func NewEnergyDrift() *EnergyDrift {
	return &EnergyDrift{name: "energy_drift"}
}

func (e *EnergyDrift) Name() string { return e.name }

func (e *EnergyDrift) Observe(bodies []*physics.Body, g float64, step int) {
	energy := physics.TotalEnergy(bodies, g)
	if e.samples == 0 {
		e.initialEnergy = energy
	}
	e.samples++

	if e.initialEnergy != 0 {
		drift := math.Abs(energy-e.initialEnergy) / math.Abs(e.initialEnergy)
		e.maxDrift = math.Max(e.maxDrift, drift)
	}
}

func (e *EnergyDrift) Value() float64 { return e.maxDrift }

func (e *EnergyDrift) Reset() {
	e.initialEnergy = 0
	e.maxDrift = 0
	e.samples = 0
}

// MaxSpeed is the fastest body speed seen during the run.
type MaxSpeed struct {
	max float64
}

func NewMaxSpeed() *MaxSpeed { return &MaxSpeed{} }

func (m *MaxSpeed) Name() string { return "max_speed" }

func (m *MaxSpeed) Observe(bodies []*physics.Body, g float64, step int) {
	for _, b := range bodies {
		m.max = math.Max(m.max, b.Speed())
	}
}

func (m *MaxSpeed) Value() float64 { return m.max }
func (m *MaxSpeed) Reset()         { m.max = 0 }

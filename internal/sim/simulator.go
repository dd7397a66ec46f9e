package sim

import (
	"fmt"
	"strings"

	"github.com/go-gl/mathgl/mgl64"
	"github.com/san-kum/gravbox/internal/physics"
)

// Ordering selects how per-body updates are interleaved within a tick.
type Ordering int

const (
	// OrderSnapshot computes every acceleration from the positions at the
	// start of the tick, then applies every update. Results do not depend on
	// body order.
	OrderSnapshot Ordering = iota
	// OrderSequential integrates each body in turn, so later bodies see the
	// already-moved positions of earlier ones.
	OrderSequential
)

func (o Ordering) String() string {
	switch o {
	case OrderSnapshot:
		return "snapshot"
	case OrderSequential:
		return "sequential"
	default:
		return fmt.Sprintf("ordering(%d)", int(o))
	}
}

func ParseOrdering(s string) (Ordering, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "snapshot":
		return OrderSnapshot, nil
	case "sequential", "in-place":
		return OrderSequential, nil
	default:
		return 0, fmt.Errorf("unknown ordering %q (want snapshot or sequential)", s)
	}
}

type Simulator struct {
	order Ordering
	acc   []mgl64.Vec2
}

func New(order Ordering) *Simulator {
	return &Simulator{order: order}
}

func (s *Simulator) Ordering() Ordering { return s.order }

// Step advances bodies by one tick of length dt under gravitational
// constant g. The slice is copied first, so anything appended during the
// tick joins on the next one.
func (s *Simulator) Step(bodies []*physics.Body, g, dt float64) {
	snap := append([]*physics.Body(nil), bodies...)

	if s.order == OrderSequential {
		for _, b := range snap {
			b.Integrate(snap, g, dt)
		}
		return
	}

	if cap(s.acc) < len(snap) {
		s.acc = make([]mgl64.Vec2, len(snap))
	}
	acc := s.acc[:len(snap)]
	for i, b := range snap {
		acc[i] = physics.Acceleration(b, snap, g)
	}
	for i, b := range snap {
		b.Advance(acc[i], dt)
	}
}

// StepWorld is Step over the world's current bodies.
func (s *Simulator) StepWorld(w *World, g, dt float64) {
	s.Step(w.Bodies(), g, dt)
}

package sim

import "github.com/san-kum/gravbox/internal/physics"

// World is the live body set. It is only touched by the frame loop.
type World struct {
	bodies []*physics.Body
}

func NewWorld(bodies ...*physics.Body) *World {
	return &World{bodies: append([]*physics.Body(nil), bodies...)}
}

func (w *World) Add(b *physics.Body) { w.bodies = append(w.bodies, b) }

// Clear drops every body.
func (w *World) Clear() {
	clear(w.bodies)
	w.bodies = w.bodies[:0]
}

func (w *World) Len() int { return len(w.bodies) }

// Bodies returns the live slice; callers must not retain it across frames.
func (w *World) Bodies() []*physics.Body { return w.bodies }

// Snapshot copies the current membership. Bodies added to the world later
// are not part of the copy.
func (w *World) Snapshot() []*physics.Body {
	return append([]*physics.Body(nil), w.bodies...)
}

// Contains reports whether b is in the world, by identity.
func (w *World) Contains(b *physics.Body) bool {
	for _, o := range w.bodies {
		if o == b {
			return true
		}
	}
	return false
}

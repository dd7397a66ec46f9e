package metrics

import "github.com/san-kum/gravbox/internal/physics"

// History keeps the last Cap total-energy samples for plotting.
type History struct {
	cap     int
	samples []float64
}

func NewHistory(capacity int) *History {
	if capacity < 1 {
		capacity = 1
	}
	return &History{cap: capacity, samples: make([]float64, 0, capacity)}
}

func (h *History) Name() string { return "energy_last" }

func (h *History) Observe(bodies []*physics.Body, g float64, step int) {
	h.Push(physics.TotalEnergy(bodies, g))
}

func (h *History) Push(v float64) {
	if len(h.samples) == h.cap {
		copy(h.samples, h.samples[1:])
		h.samples = h.samples[:h.cap-1]
	}
	h.samples = append(h.samples, v)
}

// Value is the newest sample, or 0 when empty.
func (h *History) Value() float64 {
	if len(h.samples) == 0 {
		return 0
	}
	return h.samples[len(h.samples)-1]
}

func (h *History) Samples() []float64 { return h.samples }

func (h *History) Reset() { h.samples = h.samples[:0] }

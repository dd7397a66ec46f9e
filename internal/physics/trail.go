package physics

import "github.com/go-gl/mathgl/mgl64"

// Trail is a fixed-capacity ring of positions, oldest first.
type Trail struct {
	points []mgl64.Vec2
	start  int
	size   int
}

func NewTrail(capacity int) *Trail {
	if capacity < 1 {
		capacity = 1
	}
	return &Trail{points: make([]mgl64.Vec2, capacity)}
}

// Push records p, evicting the oldest entry once the trail is full.
func (t *Trail) Push(p mgl64.Vec2) {
	c := len(t.points)
	if t.size < c {
		t.points[(t.start+t.size)%c] = p
		t.size++
		return
	}
	t.points[t.start] = p
	t.start = (t.start + 1) % c
}

func (t *Trail) Len() int { return t.size }
func (t *Trail) Cap() int { return len(t.points) }

// At returns the i-th point counting from the oldest.
func (t *Trail) At(i int) mgl64.Vec2 {
	return t.points[(t.start+i)%len(t.points)]
}

// Points copies the trail in chronological order.
func (t *Trail) Points() []mgl64.Vec2 {
	out := make([]mgl64.Vec2, t.size)
	for i := range out {
		out[i] = t.At(i)
	}
	return out
}

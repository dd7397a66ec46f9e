package viz

import (
	"math"

	"github.com/go-gl/mathgl/mgl64"
	"github.com/lucasb-eyer/go-colorful"
)

// Label is text drawn by the scene; the terminal shows it in the side
// panel rather than on the canvas.
type Label struct {
	Text  string
	Pos   mgl64.Vec2
	Color colorful.Color
}

// Surface scales world coordinates onto a Canvas.
type Surface struct {
	canvas *Canvas
	sx, sy float64
	labels []Label
}

func NewSurface(c *Canvas, worldW, worldH float64) *Surface {
	return &Surface{
		canvas: c,
		sx:     float64(c.Width*2) / worldW,
		sy:     float64(c.Height*4) / worldH,
	}
}

func (s *Surface) Canvas() *Canvas  { return s.canvas }
func (s *Surface) Labels() []Label { return s.labels }

// Reset clears the canvas and collected labels for a new frame.
func (s *Surface) Reset() {
	s.canvas.Clear()
	s.labels = s.labels[:0]
}

func (s *Surface) toPixel(p mgl64.Vec2) (float64, float64) {
	return p.X() * s.sx, p.Y() * s.sy
}

// ToWorld maps the centre of terminal cell (col, row) back to world
// coordinates.
func (s *Surface) ToWorld(col, row int) mgl64.Vec2 {
	return mgl64.Vec2{(float64(col)*2 + 1) / s.sx, (float64(row)*4 + 2) / s.sy}
}

func (s *Surface) Circle(center mgl64.Vec2, radius float64, c colorful.Color) {
	x, y := s.toPixel(center)
	s.canvas.FillEllipse(x, y, radius*s.sx, radius*s.sy, c)
}

func (s *Surface) Line(a, b mgl64.Vec2, c colorful.Color, thickness float64) {
	x0, y0 := s.toPixel(a)
	x1, y1 := s.toPixel(b)
	s.canvas.DrawLine(int(math.Floor(x0)), int(math.Floor(y0)), int(math.Floor(x1)), int(math.Floor(y1)), c)
}

func (s *Surface) Text(text string, pos mgl64.Vec2, c colorful.Color) {
	s.labels = append(s.labels, Label{Text: text, Pos: pos, Color: c})
}

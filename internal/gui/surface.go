package gui

import (
	"math"

	rl "github.com/gen2brain/raylib-go/raylib"
	"github.com/go-gl/mathgl/mgl64"
	"github.com/lucasb-eyer/go-colorful"
)

// Surface draws render primitives with raylib in screen coordinates.
type Surface struct {
	font     rl.Font
	fontSize float32
}

func NewSurface(font rl.Font, fontSize float32) *Surface {
	return &Surface{font: font, fontSize: fontSize}
}

func toColor(c colorful.Color) rl.Color {
	r, g, b := c.Clamped().RGB255()
	return rl.NewColor(r, g, b, 255)
}

func vec(x, y float64) mgl64.Vec2 { return mgl64.Vec2{x, y} }

func toVector2(p mgl64.Vec2) rl.Vector2 {
	return rl.NewVector2(float32(p.X()), float32(p.Y()))
}

func (s *Surface) Circle(center mgl64.Vec2, radius float64, c colorful.Color) {
	rl.DrawCircle(int32(math.Round(center.X())), int32(math.Round(center.Y())), float32(radius), toColor(c))
}

func (s *Surface) Line(a, b mgl64.Vec2, c colorful.Color, thickness float64) {
	rl.DrawLineEx(toVector2(a), toVector2(b), float32(thickness), toColor(c))
}

func (s *Surface) Text(text string, pos mgl64.Vec2, c colorful.Color) {
	rl.DrawTextEx(s.font, text, toVector2(pos), s.fontSize, 1, toColor(c))
}

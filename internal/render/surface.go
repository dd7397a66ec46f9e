// Package render draws sandbox state onto an abstract Surface. Backends
// (raylib window, terminal canvas, SVG writer) only implement the three
// primitives below.
package render

import (
	"github.com/go-gl/mathgl/mgl64"
	"github.com/lucasb-eyer/go-colorful"
)

type Surface interface {
	Circle(center mgl64.Vec2, radius float64, c colorful.Color)
	Line(a, b mgl64.Vec2, c colorful.Color, thickness float64)
	Text(s string, pos mgl64.Vec2, c colorful.Color)
}

// Palette
var (
	Black = colorful.Color{R: 0, G: 0, B: 0}
	White = colorful.Color{R: 1, G: 1, B: 1}
	Grey  = rgb(180, 180, 180)
	Red   = rgb(200, 50, 50)
)

func rgb(r, g, b uint8) colorful.Color {
	return colorful.Color{R: float64(r) / 255, G: float64(g) / 255, B: float64(b) / 255}
}

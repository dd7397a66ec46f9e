// Package export writes run reports: an SVG snapshot of a frame and a CSV
// trace of body states.
package export

import (
	"fmt"
	"html"
	"os"
	"strings"

	"github.com/go-gl/mathgl/mgl64"
	"github.com/lucasb-eyer/go-colorful"
)

const background = "#000000"

// SVG is a Surface that accumulates SVG elements in draw order.
type SVG struct {
	Width, Height int
	sb            strings.Builder
	circles       int
}

func NewSVG(width, height int) *SVG {
	return &SVG{Width: width, Height: height}
}

func (s *SVG) Circle(center mgl64.Vec2, radius float64, c colorful.Color) {
	fmt.Fprintf(&s.sb, `<circle cx="%.1f" cy="%.1f" r="%.1f" fill="%s"/>`+"\n", center.X(), center.Y(), radius, c.Hex())
	s.circles++
}

func (s *SVG) Line(a, b mgl64.Vec2, c colorful.Color, thickness float64) {
	fmt.Fprintf(&s.sb, `<line x1="%.1f" y1="%.1f" x2="%.1f" y2="%.1f" stroke="%s" stroke-width="%.1f"/>`+"\n",
		a.X(), a.Y(), b.X(), b.Y(), c.Hex(), thickness)
}

func (s *SVG) Text(text string, pos mgl64.Vec2, c colorful.Color) {
	fmt.Fprintf(&s.sb, `<text x="%.1f" y="%.1f" fill="%s" font-family="monospace" font-size="20" dominant-baseline="hanging">%s</text>`+"\n",
		pos.X(), pos.Y(), c.Hex(), html.EscapeString(text))
}

// Circles is the number of circle elements drawn so far.
func (s *SVG) Circles() int { return s.circles }

// String returns the complete document.
func (s *SVG) String() string {
	var sb strings.Builder
	fmt.Fprintf(&sb, `<?xml version="1.0" encoding="UTF-8"?>
<svg xmlns="http://www.w3.org/2000/svg" width="%d" height="%d" viewBox="0 0 %d %d">
<rect width="100%%" height="100%%" fill="%s"/>
`, s.Width, s.Height, s.Width, s.Height, background)
	sb.WriteString(s.sb.String())
	sb.WriteString("</svg>\n")
	return sb.String()
}

func (s *SVG) WriteFile(path string) error {
	if err := os.WriteFile(path, []byte(s.String()), 0644); err != nil {
		return fmt.Errorf("write svg: %w", err)
	}
	return nil
}

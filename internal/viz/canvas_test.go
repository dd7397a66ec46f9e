package viz

import (
	"strings"
	"testing"

	"github.com/lucasb-eyer/go-colorful"
)

var red = colorful.Color{R: 1}

func TestCanvas_SetMapsBrailleDots(t *testing.T) {
	c := NewCanvas(2, 1)
	c.Set(0, 0, red)
	c.Set(1, 3, red)

	if got, want := c.Grid[0][0], rune(blank|0x1|0x80); got != want {
		t.Errorf("cell = %U, want %U", got, want)
	}
	if c.Grid[0][1] != blank {
		t.Errorf("second cell touched: %U", c.Grid[0][1])
	}
	if c.Colors[0][0] != red {
		t.Errorf("cell colour = %v", c.Colors[0][0])
	}
}

func TestCanvas_SetIgnoresOutOfBounds(t *testing.T) {
	c := NewCanvas(2, 2)
	c.Set(-1, 0, red)
	c.Set(0, -1, red)
	c.Set(4, 0, red)
	c.Set(0, 8, red)
	if strings.ContainsFunc(c.Plain(), func(r rune) bool { return r != blank && r != '\n' }) {
		t.Errorf("out-of-bounds write landed:\n%s", c.Plain())
	}
}

func TestCanvas_DrawLineEndpoints(t *testing.T) {
	c := NewCanvas(10, 2)
	c.DrawLine(0, 0, 19, 7, red)
	if c.Grid[0][0]&0x1 == 0 {
		t.Error("start dot not set")
	}
	if c.Grid[1][9]&0x80 == 0 {
		t.Error("end dot not set")
	}
}

func TestCanvas_FillEllipseTinyRadiusLightsCentre(t *testing.T) {
	c := NewCanvas(4, 4)
	c.FillEllipse(3, 5, 0.2, 0.2, red)
	if c.Grid[1][1] == blank {
		t.Error("tiny ellipse left no mark")
	}
}

func TestCanvas_ClearResetsColour(t *testing.T) {
	c := NewCanvas(3, 3)
	c.FillEllipse(3, 6, 2, 4, red)
	c.Clear()
	for i := range c.Grid {
		for j := range c.Grid[i] {
			if c.Grid[i][j] != blank || c.Colors[i][j] != (colorful.Color{}) {
				t.Fatalf("cell (%d,%d) not cleared", i, j)
			}
		}
	}
}

func TestCanvas_StringKeepsRows(t *testing.T) {
	c := NewCanvas(5, 3)
	c.Set(0, 0, red)
	if n := strings.Count(c.String(), "\n"); n != 2 {
		t.Errorf("rendered %d newlines, want 2", n)
	}
}

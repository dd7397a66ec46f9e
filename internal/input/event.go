// Package input defines the per-frame event stream shared by the window
// and terminal front ends.
package input

import (
	"fmt"

	"github.com/go-gl/mathgl/mgl64"
)

type Kind int

const (
	Quit Kind = iota
	PointerDown
	PointerUp
	PointerMove
	KeyDown
)

func (k Kind) String() string {
	switch k {
	case Quit:
		return "quit"
	case PointerDown:
		return "pointer-down"
	case PointerUp:
		return "pointer-up"
	case PointerMove:
		return "pointer-move"
	case KeyDown:
		return "key-down"
	default:
		return fmt.Sprintf("kind(%d)", int(k))
	}
}

// Event is one input occurrence. Pos is in surface coordinates and is
// meaningful for pointer kinds; Key is set for KeyDown.
type Event struct {
	Kind Kind
	Pos  mgl64.Vec2
	Key  rune
}

func (e Event) String() string {
	switch e.Kind {
	case KeyDown:
		return fmt.Sprintf("%s(%q)", e.Kind, e.Key)
	case Quit:
		return e.Kind.String()
	default:
		return fmt.Sprintf("%s(%.0f,%.0f)", e.Kind, e.Pos.X(), e.Pos.Y())
	}
}

func Down(x, y float64) Event { return Event{Kind: PointerDown, Pos: mgl64.Vec2{x, y}} }
func Up(x, y float64) Event   { return Event{Kind: PointerUp, Pos: mgl64.Vec2{x, y}} }
func Move(x, y float64) Event { return Event{Kind: PointerMove, Pos: mgl64.Vec2{x, y}} }
func Key(r rune) Event        { return Event{Kind: KeyDown, Key: r} }
func QuitEvent() Event        { return Event{Kind: Quit} }

package gui

import (
	"unicode"

	rl "github.com/gen2brain/raylib-go/raylib"
	"github.com/go-gl/mathgl/mgl64"
	"github.com/san-kum/gravbox/internal/input"
)

// PollEvents turns this frame's raylib input state into an ordered event
// queue: quit, pointer motion, press, release, then typed keys.
func PollEvents() []input.Event {
	var evs []input.Event
	if rl.WindowShouldClose() {
		evs = append(evs, input.QuitEvent())
	}

	m := rl.GetMousePosition()
	pos := mgl64.Vec2{float64(m.X), float64(m.Y)}

	if d := rl.GetMouseDelta(); d.X != 0 || d.Y != 0 {
		evs = append(evs, input.Event{Kind: input.PointerMove, Pos: pos})
	}
	if rl.IsMouseButtonPressed(rl.MouseLeftButton) {
		evs = append(evs, input.Event{Kind: input.PointerDown, Pos: pos})
	}
	if rl.IsMouseButtonReleased(rl.MouseLeftButton) {
		evs = append(evs, input.Event{Kind: input.PointerUp, Pos: pos})
	}
	for ch := rl.GetCharPressed(); ch > 0; ch = rl.GetCharPressed() {
		evs = append(evs, input.Key(unicode.ToLower(rune(ch))))
	}
	return evs
}

// Package control provides the on-screen parameter sliders.
//
// A [Slider] binds a knob on a horizontal track to a value range; the
// value is always the affine image of the knob position:
//
//	value = min + (knobX-x)/width*(max-min)
//
// A [Panel] holds the three sandbox sliders (creation size, creation mass
// and gravitational constant) and fans every input event out to each of
// them.
//
// # Usage
//
//	p := control.NewPanel(control.DefaultLayout(700))
//	p.HandleEvent(input.Down(x, y))
//	g := p.Gravity.Value()
package control

// Package viz runs the sandbox in a terminal using Bubble Tea.
//
// Bodies, trails and slider tracks are drawn onto a Braille [Canvas]
// (2x4 dots per cell, one colour per cell). Slider labels and live stats
// go to a side panel styled with Lip Gloss, with an energy graph from
// asciigraph.
//
// # Controls
//
//	mouse - press, drag and release to launch a body; drag slider knobs
//	r     - clear all bodies
//	q     - quit
package viz

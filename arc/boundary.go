// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package arc

import (
	"fmt"

	"cogentcore.org/arcslider/math32"
)

// Boundary is the extent of an arc from the center of the unit circle in
// each of the four screen directions. It is the minimal box containing
// the arc, which is smaller than the unit circle when the arc does not
// sweep past a cardinal direction.
type Boundary struct {
	Up    float32
	Down  float32
	Left  float32
	Right float32
}

// Width returns Left + Right.
func (b Boundary) Width() float32 {
	return b.Left + b.Right
}

// Height returns Up + Down.
func (b Boundary) Height() float32 {
	return b.Up + b.Down
}

// Box returns the boundary as a box in unit circle coordinates.
func (b Boundary) Box() math32.Box2 {
	return math32.B2(-b.Left, -b.Up, b.Right, b.Down)
}

// ViewBox returns the boundary formatted as an SVG viewBox attribute.
func (b Boundary) ViewBox() string {
	return fmt.Sprintf("%g %g %g %g", -b.Left, -b.Up, b.Width(), b.Height())
}

// Boundary computes the [Boundary] of the arc.
func (a *Arc) Boundary() Boundary {
	s := a.ToPoint(a.Start())
	e := a.ToPoint(a.End())
	b := Boundary{Up: 1, Down: 1, Left: 1, Right: 1}
	if !a.isOnScreen(270) {
		b.Up = max(-s.Y, -e.Y)
	}
	if !a.isOnScreen(90) {
		b.Down = max(s.Y, e.Y)
	}
	if !a.isOnScreen(180) {
		b.Left = max(-s.X, -e.X)
	}
	if !a.isOnScreen(0) {
		b.Right = max(s.X, e.X)
	}
	return b
}

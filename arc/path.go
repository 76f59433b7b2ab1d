// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package arc

import (
	"fmt"

	"cogentcore.org/arcslider/math32"
)

// Path describes an arc segment of the unit circle, in the form of
// an SVG elliptical arc command with radius 1. The center is implicit.
type Path struct {

	// Start and End are the angles of the segment, in radians.
	Start, End float32

	// From and To are the end points of the segment.
	// To is nudged past End by [Nudge].
	From, To math32.Vector2

	// LargeArc is set when the segment spans more than π.
	LargeArc bool

	// Sweep is the SVG sweep flag: clockwise in screen space
	// unless the arc is right to left.
	Sweep bool
}

// Path returns the [Path] from the start angle to the end angle, in radians.
func (a *Arc) Path(start, end float32) Path {
	return Path{
		Start:    start,
		End:      end,
		From:     a.ToPoint(start),
		To:       a.ToPoint(end + Nudge),
		LargeArc: end-start > math32.Pi,
		Sweep:    !a.RTL,
	}
}

// String returns the SVG path data of the segment.
func (p Path) String() string {
	return fmt.Sprintf("M %g %g A 1 1 0 %d %d %g %g", p.From.X, p.From.Y, flag(p.LargeArc), flag(p.Sweep), p.To.X, p.To.Y)
}

func flag(b bool) int {
	if b {
		return 1
	}
	return 0
}

// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package arc provides the geometry of a circular arc slider:
// conversions between slider values, angles, and points on the
// unit circle, the bounding box of an arbitrary arc, and the
// path descriptions used to draw the track and the value bar.
//
// All of the math operates on the unit circle centered on the origin,
// with y pointing down as in screen space, so that an angle of 0 is
// at 3 o'clock and angles increase clockwise. Scaling to device
// pixels is entirely the job of the renderer.
package arc

import (
	"cogentcore.org/arcslider/math32"
)

const (
	// Gap is the minimal angular gap, in radians, reserved between the start
	// and the end of a full circle arc. A full circle is never represented
	// as exactly 2π, because its start and end points would coincide.
	Gap = 0.01

	// Nudge is the angle, in radians, added to the end of every path
	// so that zero-length arcs still produce a visible segment.
	Nudge = 0.001
)

// Arc is the angular extent of a slider on the unit circle.
// The zero value is an empty arc starting at 3 o'clock.
type Arc struct {

	// StartAngle is the angle of the start of the arc, in degrees.
	// Any real value is accepted; it is conventionally in 0-360.
	StartAngle float32

	// Length is the angular length of the arc, in degrees.
	// Values of 360 or more are clamped to a full circle minus [Gap].
	Length float32

	// RTL mirrors the arc across the vertical axis, for right to left layouts.
	RTL bool
}

// Start returns the start angle of the arc, in radians.
func (a *Arc) Start() float32 {
	return math32.DegToRad(a.StartAngle)
}

// Span returns the angular length of the arc, in radians,
// which is always less than 2π.
func (a *Arc) Span() float32 {
	return min(math32.DegToRad(a.Length), math32.TwoPi-Gap)
}

// End returns the end angle of the arc, in radians.
func (a *Arc) End() float32 {
	return a.Start() + a.Span()
}

// IsOnArc returns whether the direction at the given angle, in degrees,
// lies strictly inside the arc. The angle is measured in the same frame
// as [Arc.StartAngle], ignoring [Arc.RTL].
func (a *Arc) IsOnArc(deg float32) bool {
	bisector := a.StartAngle + a.Length/2
	d := math32.Wrap(bisector-deg+180, 360) - 180
	return math32.Abs(d) < a.Length/2
}

// isOnScreen is like [Arc.IsOnArc], but for a direction on the screen,
// which is mirrored when the arc is right to left.
func (a *Arc) isOnScreen(deg float32) bool {
	if a.RTL {
		deg = 180 - deg
	}
	return a.IsOnArc(deg)
}

// ToPoint returns the point on the unit circle at the given angle, in radians.
func (a *Arc) ToPoint(angle float32) math32.Vector2 {
	x, y := math32.Cos(angle), math32.Sin(angle)
	if a.RTL {
		x = -x
	}
	return math32.Vec2(x, y)
}

// FromPoint returns the angle of the given point relative to the start
// of the arc, in radians, in the range [0, 2π). The point does not need
// to be on the unit circle; only its direction from the origin matters.
func (a *Arc) FromPoint(x, y float32) float32 {
	if a.RTL {
		x = -x
	}
	return math32.Wrap(math32.Atan2(y, x)-a.Start(), math32.TwoPi)
}

// Points returns n+1 points evenly spaced along the arc between the
// given start and end angles, in radians, including both ends.
func (a *Arc) Points(start, end float32, n int) []math32.Vector2 {
	n = max(n, 1)
	pts := make([]math32.Vector2, n+1)
	for i := range pts {
		pts[i] = a.ToPoint(start + (end-start)*float32(i)/float32(n))
	}
	return pts
}

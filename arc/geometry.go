// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package arc

import (
	"cogentcore.org/arcslider/math32"
	"cogentcore.org/arcslider/math32/minmax"
)

// Geometry maps slider values onto an [Arc]. The minimum of
// the range is at the start of the arc and the maximum at its end.
type Geometry struct {
	Arc

	// Range is the range of slider values. Min must be less than Max.
	Range minmax.F32

	// Step is the granularity of values. Values produced from angles
	// are multiples of Step counted from Range.Min.
	Step float32
}

// ValueToAngle returns the angle, in radians, of the given value.
// The value is clamped to the range first.
func (g *Geometry) ValueToAngle(v float32) float32 {
	return g.Start() + g.Range.NormValue(v)*g.Span()
}

// AngleToValue returns the value at the given angle, in radians.
// It is the inverse of [Geometry.ValueToAngle], snapped to the step.
// Angles past the end of the arc map to values above Range.Max,
// which callers are expected to reject.
func (g *Geometry) AngleToValue(angle float32) float32 {
	return g.Snap(g.Range.ProjValue((angle - g.Start()) / g.Span()))
}

// PointToValue returns the value under the given point,
// relative to the center of the unit circle.
func (g *Geometry) PointToValue(x, y float32) float32 {
	return g.AngleToValue(g.Start() + g.FromPoint(x, y))
}

// Snap rounds the value to the nearest multiple of Step counted from Range.Min.
func (g *Geometry) Snap(v float32) float32 {
	if g.Step <= 0 {
		return v
	}
	return math32.Round((v-g.Range.Min)/g.Step)*g.Step + g.Range.Min
}

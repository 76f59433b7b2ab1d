// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package arc

import (
	"testing"

	"cogentcore.org/arcslider/math32"
	"cogentcore.org/arcslider/math32/minmax"
	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
	"github.com/stretchr/testify/assert"
)

const tol = 1e-4

var approx = cmpopts.EquateApprox(0, tol)

func TestSpan(t *testing.T) {
	a := Arc{StartAngle: 135, Length: 270}
	assert.InDelta(t, 3*math32.Pi/4, a.Start(), tol)
	assert.InDelta(t, 3*math32.Pi/2, a.Span(), tol)
	assert.InDelta(t, 9*math32.Pi/4, a.End(), tol)

	full := Arc{Length: 360}
	assert.InDelta(t, math32.TwoPi-Gap, full.Span(), tol)
	assert.Less(t, full.Span(), float32(math32.TwoPi))
	more := Arc{Length: 720}
	assert.Equal(t, full.Span(), more.Span())
}

func TestIsOnArc(t *testing.T) {
	a := Arc{StartAngle: 135, Length: 270}
	assert.True(t, a.IsOnArc(270))
	assert.True(t, a.IsOnArc(180))
	assert.True(t, a.IsOnArc(0))
	assert.False(t, a.IsOnArc(90))
	assert.False(t, a.IsOnArc(135), "the ends are not strictly inside")

	wrapped := Arc{StartAngle: 330, Length: 60}
	assert.True(t, wrapped.IsOnArc(0))
	assert.True(t, wrapped.IsOnArc(360))
	assert.True(t, wrapped.IsOnArc(-10))
	assert.False(t, wrapped.IsOnArc(90))
}

func TestPointRoundTrip(t *testing.T) {
	for _, start := range []float32{0, 135, 359.9, 360, 720, -90} {
		for _, rtl := range []bool{false, true} {
			a := Arc{StartAngle: start, Length: 270, RTL: rtl}
			for deg := float32(-720); deg <= 720; deg += 15 {
				angle := math32.DegToRad(deg)
				p := a.ToPoint(angle)
				got := a.FromPoint(p.X, p.Y)
				assert.GreaterOrEqual(t, got, float32(0))
				assert.Less(t, got, float32(math32.TwoPi))
				want := math32.Wrap(angle-a.Start(), math32.TwoPi)
				d := math32.Abs(got - want)
				d = min(d, math32.TwoPi-d)
				assert.InDelta(t, 0, d, tol, "start %v rtl %v angle %v", start, rtl, deg)
			}
		}
	}
}

func TestToPointRTL(t *testing.T) {
	a := Arc{}
	assert.True(t, cmp.Equal(math32.Vec2(1, 0), a.ToPoint(0), approx))
	a.RTL = true
	assert.True(t, cmp.Equal(math32.Vec2(-1, 0), a.ToPoint(0), approx))
	assert.True(t, cmp.Equal(math32.Vec2(0, 1), a.ToPoint(math32.Pi/2), approx))
}

func TestValueAngleRoundTrip(t *testing.T) {
	for _, g := range []Geometry{
		{Arc: Arc{StartAngle: 135, Length: 270}, Range: minmax.F32{Min: 0, Max: 100}, Step: 5},
		{Arc: Arc{StartAngle: 350, Length: 200}, Range: minmax.F32{Min: 7, Max: 107}, Step: 5},
		{Arc: Arc{StartAngle: 0, Length: 360}, Range: minmax.F32{Min: -50, Max: 50}, Step: 0.5},
		{Arc: Arc{StartAngle: 90, Length: 90, RTL: true}, Range: minmax.F32{Min: 3, Max: 4}, Step: 0.25},
	} {
		for v := g.Range.Min; v <= g.Range.Max; v += g.Range.Range() / 37 {
			want := math32.Round((v-g.Range.Min)/g.Step)*g.Step + g.Range.Min
			assert.InDelta(t, want, g.AngleToValue(g.ValueToAngle(v)), tol, "value %v in %+v", v, g)
		}
	}
}

func TestRoundTripNonZeroMin(t *testing.T) {
	g := Geometry{Arc: Arc{StartAngle: 135, Length: 270}, Range: minmax.F32{Min: 7, Max: 107}, Step: 5}
	// steps are counted from min: 7, 12, 17, 22, ...
	assert.InDelta(t, 22, g.AngleToValue(g.ValueToAngle(21)), tol)
	assert.InDelta(t, 17, g.AngleToValue(g.ValueToAngle(18)), tol)
	assert.InDelta(t, 7, g.AngleToValue(g.ValueToAngle(7)), tol)
}

func TestValueToAngle(t *testing.T) {
	g := Geometry{Arc: Arc{StartAngle: 135, Length: 270}, Range: minmax.F32{Min: 0, Max: 100}, Step: 5}
	assert.InDelta(t, math32.DegToRad(270), g.ValueToAngle(50), tol)
	assert.InDelta(t, g.Start(), g.ValueToAngle(-10), tol, "clamped to min")
	assert.InDelta(t, g.End(), g.ValueToAngle(1000), tol, "clamped to max")
}

func TestPointToValue(t *testing.T) {
	g := Geometry{Arc: Arc{StartAngle: 135, Length: 270}, Range: minmax.F32{Min: 0, Max: 100}, Step: 1}
	// straight up is the middle of the arc
	assert.InDelta(t, 50, g.PointToValue(0, -40), tol)
	// straight down is in the gap, past the end
	assert.Greater(t, g.PointToValue(0, 40), g.Range.Max)

	g.RTL = true
	// 3 o'clock on screen is 9 o'clock unmirrored, a quarter of the way along
	assert.InDelta(t, 100*45/270.0, g.PointToValue(10, 0), 1)
}

func TestBoundary(t *testing.T) {
	tests := []struct {
		name string
		arc  Arc
		want Boundary
	}{
		{"half circle bottom", Arc{StartAngle: 0, Length: 180}, Boundary{Up: 0, Down: 1, Left: 1, Right: 1}},
		{"default", Arc{StartAngle: 135, Length: 270}, Boundary{Up: 1, Down: 0.70710677, Left: 1, Right: 1}},
		{"full circle", Arc{StartAngle: 90, Length: 360}, Boundary{Up: 1, Down: 1, Left: 1, Right: 1}},
		{"quarter", Arc{StartAngle: 0, Length: 90}, Boundary{Up: 0, Down: 1, Left: 0, Right: 1}},
		{"quarter rtl", Arc{StartAngle: 0, Length: 90, RTL: true}, Boundary{Up: 0, Down: 1, Left: 1, Right: 0}},
		{"small top", Arc{StartAngle: 250, Length: 40}, Boundary{Up: 1, Down: -0.9396926, Left: 0.34202015, Right: 0.34202015}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := tt.arc.Boundary()
			if diff := cmp.Diff(tt.want, got, approx); diff != "" {
				t.Errorf("Boundary() mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestBoundaryHalfCircle(t *testing.T) {
	b := (&Arc{StartAngle: 0, Length: 180}).Boundary()
	assert.InDelta(t, 1, b.Left, tol)
	assert.InDelta(t, 1, b.Right, tol)
	assert.InDelta(t, 0, b.Up, tol)
	assert.InDelta(t, 1, b.Down, tol)
	assert.InDelta(t, 2, b.Width(), tol)
	assert.InDelta(t, 1, b.Height(), tol)
}

func TestPath(t *testing.T) {
	a := Arc{StartAngle: 135, Length: 270}
	p := a.Path(a.Start(), a.End())
	assert.True(t, p.LargeArc)
	assert.True(t, p.Sweep)
	assert.True(t, cmp.Equal(a.ToPoint(a.Start()), p.From, approx))

	small := a.Path(0, 1)
	assert.False(t, small.LargeArc)

	a.RTL = true
	assert.False(t, a.Path(0, 1).Sweep)

	zero := a.Path(1, 1)
	assert.NotEqual(t, zero.From, zero.To, "zero-length arcs are nudged")
	assert.InDelta(t, Nudge, zero.From.DistanceTo(zero.To), tol)
	assert.False(t, zero.LargeArc)
}

func TestPathString(t *testing.T) {
	a := Arc{}
	p := a.Path(0, math32.Pi/2-Nudge)
	assert.Equal(t, "M 1 0 A 1 1 0 0 1", p.String()[:len("M 1 0 A 1 1 0 0 1")])
	a.RTL = true
	p = a.Path(0, 4)
	assert.Contains(t, p.String(), "A 1 1 0 1 0 ")
}

func TestPoints(t *testing.T) {
	a := Arc{}
	pts := a.Points(0, math32.Pi, 4)
	assert.Len(t, pts, 5)
	assert.True(t, cmp.Equal(math32.Vec2(0, 1), pts[2], approx))
	assert.True(t, cmp.Equal(math32.Vec2(-1, 0), pts[4], approx))
	assert.Len(t, a.Points(0, 1, 0), 2)
}

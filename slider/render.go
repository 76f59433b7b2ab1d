// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package slider

import (
	"image/color"

	"cogentcore.org/arcslider/arc"
	"cogentcore.org/arcslider/math32"
	"golang.org/x/image/colornames"
)

// Sides holds a value for each side of a box, in CSS order.
type Sides struct {
	Top, Right, Bottom, Left float32
}

// RenderModel is everything a host needs to draw a [Slider].
// Coordinates are relative to the center of the arc, in units
// of the arc radius; sizes are in pixels.
type RenderModel struct {

	// Boundary is the extent of the arc around its center.
	Boundary arc.Boundary

	// Padding is the room around the boundary for handles that
	// overhang the arc, in pixels.
	Padding float32

	// Margin is the extra room for a track stroke that is wider
	// than a zoomed handle, in pixels. It is zero otherwise.
	Margin Sides

	// StrokeWidth is the width of the track and the value bar, in pixels.
	StrokeWidth float32

	// Track is the full arc.
	Track arc.Path

	// Bar is the value bar: from min to the value, or from low to high.
	// It is only drawn when HasBar is set.
	Bar arc.Path

	// HasBar is whether any handle is present.
	HasBar bool

	// TrackHitWidth is the width of the hit target along the track, in pixels.
	TrackHitWidth float32

	// Handles are the handles in drawing order, bottom first.
	// There are none for a read-only slider.
	Handles []HandleModel

	// RTL, Disabled, ReadOnly, and Dragging are the matching slider states.
	RTL, Disabled, ReadOnly, Dragging bool
}

// HandleModel is a handle of a [RenderModel].
type HandleModel struct {

	// ID is the handle.
	ID HandleIDs

	// Angle is the angle of the handle on the arc, in radians.
	Angle float32

	// Point is the center of the handle.
	Point math32.Vector2

	// Radius is the drawn radius of the handle, in pixels;
	// it is zoomed while the handle is dragged.
	Radius float32

	// HitRadius is the radius of the hit target of the handle, in pixels.
	HitRadius float32

	// Active is whether the handle is being dragged.
	Active bool

	// Role is the accessibility metadata of the handle.
	Role Role
}

// Role is the accessibility metadata of a handle, in the terms of
// the ARIA slider role.
type Role struct {
	Min, Max, Now float32
	Disabled      bool
	Label         string
}

// Render returns the [RenderModel] of the current state.
func (sl *Slider) Render() RenderModel {
	g := &sl.geometry
	c := &sl.config
	rm := RenderModel{
		Boundary:      g.Boundary(),
		Padding:       c.HandleSize * c.HandleZoom,
		Track:         g.Path(g.Start(), g.End()),
		TrackHitWidth: 3 * c.HandleSize,
		RTL:           c.RTL,
		Disabled:      c.Disabled,
		ReadOnly:      c.ReadOnly,
		Dragging:      sl.Dragging(),
	}
	if sl.host != nil {
		rm.StrokeWidth = sl.host.StrokeWidth()
	}
	if rm.StrokeWidth > rm.Padding {
		hw := rm.StrokeWidth / 2
		b := rm.Boundary
		rm.Margin = Sides{
			Top:    hw * math32.Abs(b.Up),
			Right:  hw * math32.Abs(b.Right),
			Bottom: hw * math32.Abs(b.Down),
			Left:   hw * math32.Abs(b.Left),
		}
	}
	switch sl.handles.Mode() {
	case ModeDual:
		low, _ := sl.handles.Get(Low)
		high, _ := sl.handles.Get(High)
		rm.Bar = g.Path(g.ValueToAngle(low), g.ValueToAngle(high))
		rm.HasBar = true
	case ModeSingle:
		v, _ := sl.handles.Get(Value)
		rm.Bar = g.Path(g.Start(), g.ValueToAngle(v))
		rm.HasBar = true
	}
	if c.ReadOnly {
		return rm
	}
	active, _, dragging := sl.Active()
	for _, id := range sl.handles.Order() {
		v, _ := sl.handles.Get(id)
		angle := g.ValueToAngle(v)
		hm := HandleModel{
			ID:        id,
			Angle:     angle,
			Point:     g.ToPoint(angle),
			Radius:    c.HandleSize,
			HitRadius: 2 * c.HandleSize,
			Active:    dragging && id == active,
			Role: Role{
				Min:      c.Min,
				Max:      c.Max,
				Now:      v,
				Disabled: c.Disabled,
				Label:    sl.handles.Label(id),
			},
		}
		if hm.Active {
			hm.Radius *= c.HandleZoom
		}
		rm.Handles = append(rm.Handles, hm)
	}
	return rm
}

// Style holds the colors of a rendered slider.
type Style struct {

	// Track is the color of the full arc.
	Track color.Color

	// Bar is the color of the value bar.
	Bar color.Color

	// DisabledBar is the color of the value bar and the handles
	// of a disabled slider.
	DisabledBar color.Color

	// Handle is the color of the handles.
	Handle color.Color

	// Low and High override Handle for the handles of a range, if non-nil.
	Low, High color.Color

	// Background fills the whole image if non-nil.
	Background color.Color
}

// Defaults sets the default colors.
func (st *Style) Defaults() {
	*st = Style{
		Track:       colornames.Lightgray,
		Bar:         colornames.Deepskyblue,
		DisabledBar: colornames.Darkgray,
		Handle:      colornames.Deepskyblue,
	}
}

// BarColor returns the color of the value bar of the given model.
func (st *Style) BarColor(rm *RenderModel) color.Color {
	if rm.Disabled {
		return st.DisabledBar
	}
	return st.Bar
}

// HandleColor returns the color of the given handle of the given model.
func (st *Style) HandleColor(rm *RenderModel, id HandleIDs) color.Color {
	switch {
	case rm.Disabled:
		return st.DisabledBar
	case id == Low && st.Low != nil:
		return st.Low
	case id == High && st.High != nil:
		return st.High
	}
	return st.Handle
}

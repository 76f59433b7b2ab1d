// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package slider

import (
	"fmt"
	"slices"
	"strconv"

	"cogentcore.org/arcslider/events"
	"cogentcore.org/arcslider/math32"
)

// Parts are the interactive parts of a rendered slider.
type Parts int32

const (
	// PartNone is outside of any interactive part.
	PartNone Parts = iota

	// PartTrack is the wide hit target along the arc.
	PartTrack

	// PartValue is the [Value] handle.
	PartValue

	// PartLow is the [Low] handle.
	PartLow

	// PartHigh is the [High] handle.
	PartHigh
)

var partsNames = [...]string{"none", "track", "value", "low", "high"}

func (p Parts) String() string {
	if p < 0 || int(p) >= len(partsNames) {
		return "Parts(" + strconv.Itoa(int(p)) + ")"
	}
	return partsNames[p]
}

// SetString sets the part from its name.
func (p *Parts) SetString(s string) error {
	i := slices.Index(partsNames[:], s)
	if i < 0 {
		return fmt.Errorf("%q is not a valid value for type Parts", s)
	}
	*p = Parts(i)
	return nil
}

// UnmarshalText implements [encoding.TextUnmarshaler].
func (p *Parts) UnmarshalText(text []byte) error {
	return p.SetString(string(text))
}

// MarshalText implements [encoding.TextMarshaler].
func (p Parts) MarshalText() ([]byte, error) {
	return []byte(p.String()), nil
}

// Handle returns the handle of a handle part.
func (p Parts) Handle() (HandleIDs, bool) {
	if p < PartValue || int(p) >= len(partsNames) {
		return 0, false
	}
	return HandleIDs(p - PartValue), true
}

// PartOf returns the part of the given handle.
func PartOf(id HandleIDs) Parts {
	return PartValue + Parts(id)
}

// Host is the environment that displays a [Slider].
type Host interface {

	// Bounds returns the on-screen box of the rendered arc, excluding
	// margins, in the client coordinates of pointer events.
	Bounds() math32.Box2

	// PartAt returns the part of the slider that the given event
	// was dispatched to.
	PartAt(e events.Event) Parts

	// StrokeWidth returns the width of the track stroke, in pixels.
	StrokeWidth() float32
}

// BoxHost is a [Host] with fixed bounds. Events whose target is a
// [Parts] value are dispatched to that part; positioned events
// are hit tested against the geometry of Slider.
type BoxHost struct {

	// Box is the on-screen box of the rendered arc.
	Box math32.Box2

	// Stroke is the width of the track stroke, in pixels.
	Stroke float32

	// Slider is used for hit testing positioned events.
	Slider *Slider
}

func (bh *BoxHost) Bounds() math32.Box2 {
	return bh.Box
}

func (bh *BoxHost) PartAt(e events.Event) Parts {
	if p, ok := e.Target().(Parts); ok {
		return p
	}
	if bh.Slider == nil || !e.HasPos() {
		return PartNone
	}
	return bh.Slider.PartAt(e.Pos())
}

func (bh *BoxHost) StrokeWidth() float32 {
	return bh.Stroke
}

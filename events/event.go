// Copyright (c) 2023, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package events defines the events that drive interactive widgets:
// pointer, touch, key, focus, and value events, along with
// per-widget [Listeners] and the process-wide [Hub].
package events

import (
	"fmt"
	"time"

	"cogentcore.org/arcslider/events/key"
	"cogentcore.org/arcslider/math32"
)

// Event is the interface for all events.
type Event interface {
	fmt.Stringer

	// Type returns the type of event.
	Type() Types

	// Time returns the time at which the event was generated.
	Time() time.Time

	// HasPos returns whether the event has a position.
	HasPos() bool

	// Pos returns the position of the event in client (window) coordinates,
	// or the zero vector if it does not have a position.
	Pos() math32.Vector2

	// Target returns the element the event was dispatched to,
	// as an opaque value that only the host knows how to interpret.
	// It is nil for events sent to the whole document.
	Target() any

	// KeyCode returns the key code of a key event, or [key.CodeUnknown].
	KeyCode() key.Codes

	// IsHandled returns whether this event has already been processed.
	IsHandled() bool

	// SetHandled marks the event as having been processed,
	// which stops further listeners from being called.
	SetHandled()

	// PreventDefault asks the host not to perform its default action.
	PreventDefault()

	// DefaultPrevented returns whether [Event.PreventDefault] was called.
	DefaultPrevented() bool
}

// Base is the base type for events.
// It is designed to support most event types, so no sub-types are needed.
type Base struct {

	// Typ is the type of event, returned as Type()
	Typ Types

	// Flags records event properties, such as being handled.
	Flags EventFlags

	// GenTime records the time when the event was first generated.
	GenTime time.Time

	// Where is the event location, in client coordinates.
	Where math32.Vector2

	// Targ is the element the event was dispatched to.
	Targ any
}

// Init sets the time to now.
func (ev *Base) Init() {
	ev.GenTime = time.Now()
}

func (ev *Base) Type() Types {
	return ev.Typ
}

func (ev *Base) Time() time.Time {
	return ev.GenTime
}

func (ev *Base) HasPos() bool {
	return false
}

func (ev *Base) Pos() math32.Vector2 {
	return ev.Where
}

func (ev *Base) Target() any {
	return ev.Targ
}

func (ev *Base) KeyCode() key.Codes {
	return key.CodeUnknown
}

func (ev *Base) IsHandled() bool {
	return ev.Flags.HasFlag(Handled)
}

func (ev *Base) SetHandled() {
	ev.Flags.SetFlag(true, Handled)
}

func (ev *Base) PreventDefault() {
	ev.Flags.SetFlag(true, DefaultPrevented)
}

func (ev *Base) DefaultPrevented() bool {
	return ev.Flags.HasFlag(DefaultPrevented)
}

func (ev *Base) String() string {
	return fmt.Sprintf("%v{Time: %v}", ev.Typ, ev.GenTime.Format("04:05"))
}

// Copyright (c) 2023, The GoKi Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package events

import (
	"fmt"
	"strconv"
)

// Types determines the type of event, and also the
// level at which one can select which events to listen to.
// The type should include both the source / nature of the event
// and the "action" type of the event (e.g., MouseDown, MouseUp
// are separate event types). The standard
// [JavaScript Event](https://developer.mozilla.org/en-US/docs/Web/Events)
// provide the basis for most of the event type names and categories.
type Types int32

const (
	// zero value is an unknown type
	UnknownType Types = iota

	// MouseDown happens when a mouse button is pressed down.
	MouseDown

	// MouseUp happens when a mouse button is released.
	MouseUp

	// MouseMove is sent whenever the mouse is moving,
	// whether or not a button is down.
	MouseMove

	// TouchStart is when a touch event starts.
	TouchStart

	// TouchEnd is when a touch event ends.
	TouchEnd

	// TouchMove is when a touch event moves.
	TouchMove

	// KeyDown is when a key is pressed down.
	KeyDown

	// Focus is sent when a focusable element receives focus.
	Focus

	// FocusLost is sent when a focusable element loses focus (blur).
	FocusLost

	// Input is sent continuously while a value is being changed
	// interactively, for example on every step of a drag.
	Input

	// Change is sent once when an interactive change of a value
	// is complete, for example at the end of a drag.
	Change

	// TypesN is the number of event types.
	TypesN
)

var typesNames = [...]string{"UnknownType", "MouseDown", "MouseUp", "MouseMove", "TouchStart", "TouchEnd", "TouchMove", "KeyDown", "Focus", "FocusLost", "Input", "Change"}

// String returns the name of the event type.
func (tp Types) String() string {
	if tp < 0 || tp >= TypesN {
		return "Types(" + strconv.Itoa(int(tp)) + ")"
	}
	return typesNames[tp]
}

// domTypes are the names of event types used by web browsers.
var domTypes = map[string]Types{
	"mousedown":  MouseDown,
	"mouseup":    MouseUp,
	"mousemove":  MouseMove,
	"touchstart": TouchStart,
	"touchend":   TouchEnd,
	"touchmove":  TouchMove,
	"keydown":    KeyDown,
	"focus":      Focus,
	"blur":       FocusLost,
	"input":      Input,
	"change":     Change,
}

// SetString sets the event type from its name, which can either be
// the name returned by [Types.String] or the event name used by web
// browsers, such as "mousedown".
func (tp *Types) SetString(s string) error {
	if t, ok := domTypes[s]; ok {
		*tp = t
		return nil
	}
	for i, nm := range typesNames {
		if nm == s {
			*tp = Types(i)
			return nil
		}
	}
	return fmt.Errorf("%q is not a valid value for type events.Types", s)
}

// UnmarshalText implements [encoding.TextUnmarshaler].
func (tp *Types) UnmarshalText(text []byte) error {
	return tp.SetString(string(text))
}

// MarshalText implements [encoding.TextMarshaler].
func (tp Types) MarshalText() ([]byte, error) {
	return []byte(tp.String()), nil
}

// IsTouch returns whether the type is one of the touch events.
func (tp Types) IsTouch() bool {
	return tp == TouchStart || tp == TouchEnd || tp == TouchMove
}

// EventFlags encode boolean event properties
type EventFlags int64

const (
	// Handled indicates that the event has been handled
	Handled EventFlags = 1 << iota

	// DefaultPrevented indicates that the default action
	// of the host platform for the event should not happen,
	// for example page scrolling on a touch move.
	DefaultPrevented
)

// HasFlag returns whether the given flag is set.
func (fl EventFlags) HasFlag(f EventFlags) bool {
	return fl&f != 0
}

// SetFlag sets the given flag on or off.
func (fl *EventFlags) SetFlag(on bool, f EventFlags) {
	if on {
		*fl |= f
	} else {
		*fl &^= f
	}
}

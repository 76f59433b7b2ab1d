// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package slider

import (
	"fmt"
	"strconv"
	"time"

	"cogentcore.org/arcslider/events"
	"cogentcore.org/arcslider/math32/minmax"
)

// TouchCooldown is how long after a touch on the track a touch move
// is taken as scrolling the page, which cancels the drag.
const TouchCooldown = 200 * time.Millisecond

// Origins are the kinds of event that start a drag session.
type Origins int32

const (
	// OriginPointer is a mouse or touch press.
	OriginPointer Origins = iota

	// OriginKeyboard is a key press.
	OriginKeyboard

	// OriginFocus is a handle gaining focus. Focus sessions can be
	// taken over by a pointer press, and are never moved by pointer motion.
	OriginFocus
)

var originsNames = [...]string{"pointer", "keyboard", "focus"}

func (o Origins) String() string {
	if o < 0 || int(o) >= len(originsNames) {
		return "Origins(" + strconv.Itoa(int(o)) + ")"
	}
	return originsNames[o]
}

// originOf returns the origin of a session started by the given event type.
func originOf(typ events.Types) Origins {
	switch typ {
	case events.Focus:
		return OriginFocus
	case events.KeyDown:
		return OriginKeyboard
	}
	return OriginPointer
}

// session is an in-progress drag of one handle.
type session struct {

	// handle is the handle being moved.
	handle HandleIDs

	// bounds are the values the handle may take during the session:
	// the other handle of a range bounds it.
	bounds minmax.F32

	// origin is the kind of event that started the session.
	origin Origins

	// start is the value of the handle when the session started.
	start float32

	// cooldown is the end of the touch cooldown, or zero if there is none.
	cooldown time.Time
}

func (s *session) String() string {
	return fmt.Sprintf("session{%v [%g, %g] %v from %g}", s.handle, s.bounds.Min, s.bounds.Max, s.origin, s.start)
}

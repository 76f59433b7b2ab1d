// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package slider

import (
	"fmt"
	"slices"
	"strconv"

	"cogentcore.org/arcslider/math32"
)

// HandleIDs identify the handles of a [Slider].
type HandleIDs int32

const (
	// Value is the handle of a single value slider.
	Value HandleIDs = iota

	// Low is the lower handle of a range slider.
	Low

	// High is the upper handle of a range slider.
	High

	// HandleIDsN is the number of handle ids.
	HandleIDsN
)

var handleIDsNames = [...]string{"value", "low", "high"}

func (id HandleIDs) String() string {
	if id < 0 || id >= HandleIDsN {
		return "HandleIDs(" + strconv.Itoa(int(id)) + ")"
	}
	return handleIDsNames[id]
}

// SetString sets the handle id from its name.
func (id *HandleIDs) SetString(s string) error {
	i := slices.Index(handleIDsNames[:], s)
	if i < 0 {
		return fmt.Errorf("%q is not a valid value for type HandleIDs", s)
	}
	*id = HandleIDs(i)
	return nil
}

// UnmarshalText implements [encoding.TextUnmarshaler].
func (id *HandleIDs) UnmarshalText(text []byte) error {
	return id.SetString(string(text))
}

// MarshalText implements [encoding.TextMarshaler].
func (id HandleIDs) MarshalText() ([]byte, error) {
	return []byte(id.String()), nil
}

// Modes are the interaction modes that follow from the
// handles that are present.
type Modes int32

const (
	// ModeNone has no handles; nothing can be dragged.
	ModeNone Modes = iota

	// ModeSingle has the [Value] handle.
	ModeSingle

	// ModeDual has the [Low] and [High] handles.
	ModeDual
)

func (m Modes) String() string {
	switch m {
	case ModeNone:
		return "none"
	case ModeSingle:
		return "single"
	case ModeDual:
		return "dual"
	}
	return "Modes(" + strconv.Itoa(int(m)) + ")"
}

// Handles is the registry of handle values. Each handle is either
// present with a finite value or absent. The low <= high ordering
// of a range is not enforced here; dragging keeps it through the
// bounds of a drag session.
type Handles struct {
	values  [HandleIDsN]float32
	present [HandleIDsN]bool
	labels  [HandleIDsN]string

	// reverse draws the low handle above the high handle.
	reverse bool
}

// Set sets the value of the given handle. A non-finite value
// makes the handle absent. It returns whether the handle is present.
func (hs *Handles) Set(id HandleIDs, v float32) bool {
	if !math32.IsFinite(v) {
		hs.Clear(id)
		return false
	}
	hs.values[id] = v
	hs.present[id] = true
	return true
}

// Clear makes the given handle absent.
func (hs *Handles) Clear(id HandleIDs) {
	hs.values[id] = 0
	hs.present[id] = false
}

// Get returns the value of the given handle, and whether it is present.
func (hs *Handles) Get(id HandleIDs) (float32, bool) {
	return hs.values[id], hs.present[id]
}

// Has returns whether the given handle is present.
func (hs *Handles) Has(id HandleIDs) bool {
	return hs.present[id]
}

// Mode returns the interaction mode. A range takes precedence
// over a single value when both are present.
func (hs *Handles) Mode() Modes {
	switch {
	case hs.present[Low] && hs.present[High]:
		return ModeDual
	case hs.present[Value]:
		return ModeSingle
	}
	return ModeNone
}

// Shown returns the handles that are displayed and can be dragged,
// in id order.
func (hs *Handles) Shown() []HandleIDs {
	switch hs.Mode() {
	case ModeDual:
		return []HandleIDs{Low, High}
	case ModeSingle:
		return []HandleIDs{Value}
	}
	return nil
}

// IsShown returns whether the given handle is displayed.
func (hs *Handles) IsShown(id HandleIDs) bool {
	return slices.Contains(hs.Shown(), id)
}

// Order returns the shown handles in drawing order, bottom first.
func (hs *Handles) Order() []HandleIDs {
	ids := hs.Shown()
	if hs.reverse {
		slices.Reverse(ids)
	}
	return ids
}

// Reversed returns whether the low handle is drawn above the high handle.
func (hs *Handles) Reversed() bool {
	return hs.reverse
}

// updateOrder draws the low handle on top when it is within
// one percent of max, where it would be covered by the high handle.
func (hs *Handles) updateOrder(max float32) {
	low, ok := hs.Get(Low)
	hs.reverse = ok && low >= max-0.01*math32.Abs(max)
}

// SetLabel sets the accessible label of the given handle.
func (hs *Handles) SetLabel(id HandleIDs, label string) {
	hs.labels[id] = label
}

// Label returns the accessible label of the given handle.
func (hs *Handles) Label(id HandleIDs) string {
	return hs.labels[id]
}

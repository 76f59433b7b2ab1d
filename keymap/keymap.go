// Copyright (c) 2018, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package keymap maps keys onto abstract key functions,
// so that widgets respond to what a key means rather than
// which physical key it is.
package keymap

import (
	"strconv"

	"cogentcore.org/arcslider/events/key"
)

// Functions are semantic functions that keyboard events
// can perform in the GUI.
type Functions int32

const (
	None Functions = iota
	MoveUp
	MoveDown
	MoveRight
	MoveLeft
	PageUp
	PageDown
	Home
	End

	// FunctionsN is the number of key functions.
	FunctionsN
)

var functionsNames = [...]string{"None", "MoveUp", "MoveDown", "MoveRight", "MoveLeft", "PageUp", "PageDown", "Home", "End"}

func (kf Functions) String() string {
	if kf < 0 || kf >= FunctionsN {
		return "Functions(" + strconv.Itoa(int(kf)) + ")"
	}
	return functionsNames[kf]
}

// Map is a map between a key code and a specific key [Functions].
type Map map[key.Codes]Functions

// StandardMap is the standard key map shared by all platforms.
var StandardMap = Map{
	key.CodeUpArrow:    MoveUp,
	key.CodeDownArrow:  MoveDown,
	key.CodeRightArrow: MoveRight,
	key.CodeLeftArrow:  MoveLeft,
	key.CodePageUp:     PageUp,
	key.CodePageDown:   PageDown,
	key.CodeHome:       Home,
	key.CodeEnd:        End,
}

// ActiveMap points to the active map -- users can set this to an
// alternative map.
var ActiveMap = StandardMap

// Of translates a key code into a key [Functions] using the [ActiveMap].
// It returns [None] if the key has no function.
func Of(code key.Codes) Functions {
	return ActiveMap.Of(code)
}

// Of translates a key code into a key [Functions] using the map.
func (km Map) Of(code key.Codes) Functions {
	if kf, ok := km[code]; ok {
		return kf
	}
	return None
}

// Copyright (c) 2018, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package key defines the key codes of the keys that
// interactive widgets respond to.
package key

import (
	"fmt"
	"strconv"
)

// Codes is the identity of a key on a keyboard.
type Codes int32

const (
	CodeUnknown Codes = iota

	CodeLeftArrow
	CodeRightArrow
	CodeUpArrow
	CodeDownArrow

	CodeHome
	CodeEnd
	CodePageUp
	CodePageDown

	CodeTab
	CodeEscape
	CodeReturnEnter
	CodeSpacebar

	// CodesN is the number of key codes.
	CodesN
)

var codesNames = [...]string{"Unknown", "LeftArrow", "RightArrow", "UpArrow", "DownArrow", "Home", "End", "PageUp", "PageDown", "Tab", "Escape", "ReturnEnter", "Spacebar"}

// domNames maps the key names used by web browsers
// (KeyboardEvent.key) onto key codes.
var domNames = map[string]Codes{
	"ArrowLeft":  CodeLeftArrow,
	"ArrowRight": CodeRightArrow,
	"ArrowUp":    CodeUpArrow,
	"ArrowDown":  CodeDownArrow,
	"Enter":      CodeReturnEnter,
	" ":          CodeSpacebar,
}

// String returns the name of the key code.
func (kc Codes) String() string {
	if kc < 0 || kc >= CodesN {
		return "Codes(" + strconv.Itoa(int(kc)) + ")"
	}
	return codesNames[kc]
}

// SetString sets the key code from its name, which can either be
// the name returned by [Codes.String] or the key name used by web browsers,
// such as "ArrowLeft".
func (kc *Codes) SetString(s string) error {
	if c, ok := domNames[s]; ok {
		*kc = c
		return nil
	}
	for i, nm := range codesNames {
		if nm == s {
			*kc = Codes(i)
			return nil
		}
	}
	return fmt.Errorf("%q is not a valid value for type key.Codes", s)
}

// UnmarshalText implements [encoding.TextUnmarshaler].
func (kc *Codes) UnmarshalText(text []byte) error {
	return kc.SetString(string(text))
}

// MarshalText implements [encoding.TextMarshaler].
func (kc Codes) MarshalText() ([]byte, error) {
	return []byte(kc.String()), nil
}

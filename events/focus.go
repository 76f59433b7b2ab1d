// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package events

// NewFocus returns a new [Focus] or [FocusLost] event for the given target.
func NewFocus(typ Types, target any) *Base {
	ev := &Base{Typ: typ, Targ: target}
	ev.Init()
	return ev
}

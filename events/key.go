// Copyright (c) 2018, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package events

import (
	"fmt"

	"cogentcore.org/arcslider/events/key"
)

// Key is a low-level immediately generated key event, tracking press.
type Key struct {
	Base

	// Code is the identity of the physical key.
	Code key.Codes
}

// NewKey returns a new [Key] event of the given type for the given key code.
func NewKey(typ Types, code key.Codes) *Key {
	ev := &Key{}
	ev.Typ = typ
	ev.Code = code
	ev.Init()
	return ev
}

func (ev *Key) KeyCode() key.Codes {
	return ev.Code
}

func (ev *Key) String() string {
	return fmt.Sprintf("%v{Code: %v, Time: %v}", ev.Type(), ev.Code, ev.Time().Format("04:05"))
}

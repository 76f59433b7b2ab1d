// Copyright (c) 2018, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package events

import (
	"fmt"

	"cogentcore.org/arcslider/math32"
)

// Mouse is a pointer event: a mouse or a single touch point.
// Touch events use the Touch* [Types] and otherwise behave the same.
type Mouse struct {
	Base
}

// NewMouse returns a new [Mouse] event of the given type (one of the
// Mouse* or Touch* types) at the given client position, dispatched to
// the given target. The target is nil for document level events.
func NewMouse(typ Types, where math32.Vector2, target any) *Mouse {
	ev := &Mouse{}
	ev.Typ = typ
	ev.Where = where
	ev.Targ = target
	ev.Init()
	return ev
}

func (ev *Mouse) String() string {
	return fmt.Sprintf("%v{Pos: %v, Time: %v}", ev.Type(), ev.Where, ev.Time().Format("04:05"))
}

func (ev *Mouse) HasPos() bool {
	return true
}

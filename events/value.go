// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package events

import "fmt"

// Value is an [Input] or [Change] event reporting a new value
// for a named part of a widget, such as one handle of a slider.
type Value struct {
	Base

	// Name identifies the value that changed.
	Name string

	// Value is the new value.
	Value float32
}

// NewValue returns a new [Value] event of the given type.
func NewValue(typ Types, name string, value float32) *Value {
	ev := &Value{Name: name, Value: value}
	ev.Typ = typ
	ev.Init()
	return ev
}

func (ev *Value) String() string {
	return fmt.Sprintf("%v{%s: %g}", ev.Type(), ev.Name, ev.Value)
}

// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"fmt"
	"io"
	"time"

	"cogentcore.org/arcslider/base/iox/yamlx"
	"cogentcore.org/arcslider/events"
	"cogentcore.org/arcslider/events/key"
	"cogentcore.org/arcslider/math32"
	"cogentcore.org/arcslider/slider"
	"github.com/muesli/termenv"
)

// Script is a sequence of events replayed against a slider.
type Script struct {

	// Document is the slider to replay the events against.
	Document `yaml:",inline"`

	// Events are the events, in order.
	Events []ScriptEvent `yaml:"events"`
}

// ScriptEvent is an event of a [Script]. Positions are in the
// pixel coordinates of the rendered document.
type ScriptEvent struct {

	// Type is the event type, such as "mousedown" or "blur".
	Type events.Types `yaml:"type"`

	// X and Y are the position of pointer events.
	X float32 `yaml:"x"`
	Y float32 `yaml:"y"`

	// Target is the part of the slider that the event is
	// dispatched to. If it is empty, the position is hit tested.
	Target string `yaml:"target"`

	// Key is the key of key events, such as "ArrowLeft".
	Key key.Codes `yaml:"key"`

	// At is the time of the event since the start of the script.
	At time.Duration `yaml:"at"`
}

// OpenScript opens the script in the given YAML file.
func OpenScript(filename string) (*Script, error) {
	sc := &Script{}
	sc.Defaults()
	if err := yamlx.Open(sc, filename); err != nil {
		return nil, fmt.Errorf("arcslider: opening script: %w", err)
	}
	return sc, nil
}

// event returns the event to send.
func (se *ScriptEvent) event(start time.Time) (events.Event, error) {
	var target any
	if se.Target != "" {
		var p slider.Parts
		if err := p.SetString(se.Target); err != nil {
			return nil, err
		}
		target = p
	}
	var ev events.Event
	switch se.Type {
	case events.MouseDown, events.MouseUp, events.MouseMove, events.TouchStart, events.TouchEnd, events.TouchMove:
		m := events.NewMouse(se.Type, math32.Vec2(se.X, se.Y), target)
		m.GenTime = start.Add(se.At)
		ev = m
	case events.KeyDown:
		k := events.NewKey(se.Type, se.Key)
		k.GenTime = start.Add(se.At)
		ev = k
	case events.Focus, events.FocusLost:
		f := events.NewFocus(se.Type, target)
		f.GenTime = start.Add(se.At)
		ev = f
	default:
		return nil, fmt.Errorf("arcslider: cannot replay %v events", se.Type)
	}
	return ev, nil
}

// isElementEvent returns whether events of the given type go to
// the slider element; all others go to the whole document.
func isElementEvent(typ events.Types) bool {
	switch typ {
	case events.MouseDown, events.TouchStart, events.Focus, events.FocusLost:
		return true
	}
	return false
}

// Replay sends the events of the script to a new slider, writing the
// notifications and the final handle values to w in the colors of out.
func (sc *Script) Replay(w io.Writer, out *termenv.Output) (*slider.Slider, error) {
	sl, _, _, err := sc.NewSlider()
	if err != nil {
		return nil, err
	}
	hub := events.Global
	sl.Attach(hub)
	defer sl.Detach()

	colors := map[events.Types]termenv.Color{
		events.Input:  out.Color("6"),
		events.Change: out.Color("2"),
	}
	notify := func(e events.Event) {
		v := e.(*events.Value)
		fmt.Fprintf(w, "%s %s %g\n", out.String(fmt.Sprintf("%-6v", v.Type())).Foreground(colors[v.Type()]).Bold(), v.Name, v.Value)
	}
	sl.On(events.Input, notify).On(events.Change, notify)

	start := time.Now()
	for i := range sc.Events {
		se := &sc.Events[i]
		ev, err := se.event(start)
		if err != nil {
			return nil, fmt.Errorf("event %d: %w", i, err)
		}
		if isElementEvent(se.Type) {
			sl.HandleEvent(ev)
		} else {
			hub.Send(ev)
		}
	}
	for _, id := range sl.Handles().Shown() {
		v, _ := sl.Value(id)
		fmt.Fprintf(w, "%s %s %g\n", out.String("final ").Faint(), id, v)
	}
	return sl, nil
}

// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package slider provides a circular arc slider with one handle,
// or two handles bounding a range. A [Slider] holds the handle values
// and the drag state machine, sends [events.Input] while a handle
// moves and [events.Change] when a drag ends, and produces a
// [RenderModel] that a [Host] draws.
package slider

import (
	"log/slog"
	"time"

	"cogentcore.org/arcslider/arc"
	"cogentcore.org/arcslider/events"
	"cogentcore.org/arcslider/keymap"
	"cogentcore.org/arcslider/math32"
	"cogentcore.org/arcslider/math32/minmax"
)

// Slider is a circular arc slider. It is not safe for concurrent use:
// all of its methods must be called from the goroutine that delivers events.
type Slider struct {
	config   Config
	geometry arc.Geometry
	handles  Handles
	host     Host

	// session is the drag in progress, if any.
	session *session

	listeners events.Listeners

	hub  *events.Hub
	subs []events.Subscription
}

// New returns a new slider with the default configuration and no handles,
// displayed by the given host.
func New(host Host) *Slider {
	sl := &Slider{host: host}
	sl.config.Defaults()
	sl.geometry = sl.config.Geometry()
	return sl
}

// NewBox returns a new slider displayed in the given box,
// with a [BoxHost] that hit tests against the slider geometry.
func NewBox(box math32.Box2, stroke float32) *Slider {
	bh := &BoxHost{Box: box, Stroke: stroke}
	sl := New(bh)
	bh.Slider = sl
	return sl
}

// Config returns the current configuration.
func (sl *Slider) Config() Config {
	return sl.config
}

// SetConfig validates and applies the given configuration.
// An invalid configuration is rejected and the previous one is kept.
// Disabling interaction ends any drag in progress without notification.
func (sl *Slider) SetConfig(c Config) error {
	if err := c.Validate(); err != nil {
		return err
	}
	sl.config = c
	sl.geometry = c.Geometry()
	if !c.interactive() {
		sl.cancel("interaction disabled")
	}
	return nil
}

// Geometry returns the value to angle mapping of the slider.
func (sl *Slider) Geometry() arc.Geometry {
	return sl.geometry
}

// Host returns the host of the slider.
func (sl *Slider) Host() Host {
	return sl.host
}

// Handles returns the handle registry.
func (sl *Slider) Handles() *Handles {
	return &sl.handles
}

// Value returns the value of the given handle, and whether it is present.
func (sl *Slider) Value(id HandleIDs) (float32, bool) {
	return sl.handles.Get(id)
}

// SetValue assigns the value of the given handle from outside of
// any interaction; no notification is sent. A non-finite value makes
// the handle absent, which ends a drag of that handle.
func (sl *Slider) SetValue(id HandleIDs, v float32) *Slider {
	sl.handles.Set(id, v)
	if s := sl.session; s != nil && !sl.handles.IsShown(s.handle) {
		sl.cancel("handle removed")
	}
	return sl
}

// ApplyValue is [Slider.SetValue] followed by [Slider.Render].
func (sl *Slider) ApplyValue(id HandleIDs, v float32) RenderModel {
	sl.SetValue(id, v)
	return sl.Render()
}

// SetLabel sets the accessible label of the given handle.
func (sl *Slider) SetLabel(id HandleIDs, label string) *Slider {
	sl.handles.SetLabel(id, label)
	return sl
}

// On adds the given function to be called for events of the given type:
// [events.Input] while a handle moves, and [events.Change] when a drag
// ends. The events are [*events.Value] with the handle name and value.
// Functions added later are called first, until one of them marks the
// event as handled.
func (sl *Slider) On(typ events.Types, fun func(e events.Event)) *Slider {
	sl.listeners.Add(typ, fun)
	return sl
}

// Dragging returns whether a drag session is in progress.
func (sl *Slider) Dragging() bool {
	return sl.session != nil
}

// Active returns the handle of the drag in progress and its origin.
func (sl *Slider) Active() (HandleIDs, Origins, bool) {
	if sl.session == nil {
		return 0, 0, false
	}
	return sl.session.handle, sl.session.origin, true
}

// HandleEvent handles an event dispatched to the slider element:
// presses and focus start a drag, and focus loss ends it.
// Motion, release, and key events are routed the same way as
// by [Slider.Attach], for hosts that deliver document events directly;
// they must not also be sent to an attached [events.Hub].
func (sl *Slider) HandleEvent(e events.Event) bool {
	switch e.Type() {
	case events.MouseDown, events.TouchStart, events.Focus:
		return sl.DragStart(e)
	case events.FocusLost, events.MouseUp, events.TouchEnd:
		return sl.DragEnd(e)
	case events.MouseMove, events.TouchMove:
		return sl.Drag(e)
	case events.KeyDown:
		return sl.KeyStep(e)
	}
	return false
}

// DragStart starts a drag session for the handle that the event was
// dispatched to, or for the handle nearest to the event position when
// it was dispatched to the track. It returns whether a session started.
// A session in progress can only be taken over when it was started by focus.
func (sl *Slider) DragStart(e events.Event) bool {
	if !sl.config.interactive() || sl.handles.Mode() == ModeNone {
		return false
	}
	if sl.session != nil && sl.session.origin != OriginFocus {
		slog.Debug("slider DragStart ignored during drag", "event", e, "session", sl.session)
		return false
	}
	part := sl.host.PartAt(e)
	s := &session{origin: originOf(e.Type())}
	id, ok := part.Handle()
	switch {
	case ok:
		s.handle = id
	case part == PartTrack:
		if e.Type() == events.TouchStart {
			s.cooldown = e.Time().Add(TouchCooldown)
		}
		s.handle = sl.nearest(e)
	default:
		return false
	}
	if !sl.handles.IsShown(s.handle) {
		return false
	}
	s.start, _ = sl.handles.Get(s.handle)
	s.bounds = sl.bounds(s.handle)
	sl.session = s
	slog.Debug("slider DragStart", "event", e, "session", s)
	return true
}

// nearest returns the shown handle nearest to the event position.
// Ties go to the high handle.
func (sl *Slider) nearest(e events.Event) HandleIDs {
	if sl.handles.Mode() != ModeDual {
		return Value
	}
	v := sl.eventValue(e)
	low, _ := sl.handles.Get(Low)
	high, _ := sl.handles.Get(High)
	if math32.Abs(v-low) < math32.Abs(v-high) {
		return Low
	}
	return High
}

// bounds returns the values that the given handle may take:
// the low handle stays at or below the high handle, and vice versa.
func (sl *Slider) bounds(id HandleIDs) minmax.F32 {
	mm := minmax.F32{Min: sl.config.Min, Max: sl.config.Max}
	switch id {
	case Low:
		mm.Max, _ = sl.handles.Get(High)
	case High:
		mm.Min, _ = sl.handles.Get(Low)
	}
	return mm
}

// Drag moves the handle of the pointer session to the event position,
// sending [events.Input]. Positions outside of the session bounds are
// ignored. Motion within [TouchCooldown] of a touch on the track ends
// the session without notification. It returns whether the handle moved.
func (sl *Slider) Drag(e events.Event) bool {
	s := sl.session
	if s == nil || !sl.config.interactive() {
		return false
	}
	if !s.cooldown.IsZero() {
		if e.Time().Before(s.cooldown) {
			sl.cancel("scrolling")
			return false
		}
		s.cooldown = time.Time{}
	}
	if s.origin != OriginPointer {
		return false
	}
	e.PreventDefault()
	return sl.dragTo(sl.eventValue(e))
}

// dragTo sets the session handle to the given value if it is within
// the session bounds, and sends [events.Input].
func (sl *Slider) dragTo(v float32) bool {
	s := sl.session
	if !s.bounds.InRange(v) {
		slog.Debug("slider value out of bounds", "value", v, "session", s)
		return false
	}
	sl.handles.Set(s.handle, v)
	sl.send(events.NewValue(events.Input, s.handle.String(), v))
	return true
}

// KeyStep moves the handle of the session in progress according to
// the key function of the event, sending [events.Input]. Keys that
// produce a value within the session bounds are prevented from their
// default action. It returns whether the handle moved.
func (sl *Slider) KeyStep(e events.Event) bool {
	s := sl.session
	if s == nil || !sl.config.interactive() {
		return false
	}
	cur, _ := sl.handles.Get(s.handle)
	step := sl.config.Step
	if sl.config.RTL {
		step = -step
	}
	kf := keymap.Of(e.KeyCode())
	var v float32
	switch kf {
	case keymap.MoveLeft, keymap.MoveDown:
		v = cur - step
	case keymap.MoveRight, keymap.MoveUp:
		v = cur + step
	case keymap.PageDown:
		v = cur - sl.config.pageStep()
	case keymap.PageUp:
		v = cur + sl.config.pageStep()
	case keymap.Home:
		v = sl.config.Min
	case keymap.End:
		v = sl.config.Max
	default:
		return false
	}
	slog.Debug("slider KeyStep", "keyFunction", kf, "from", cur, "to", v)
	if !sl.dragTo(sl.clean(v)) {
		return false
	}
	e.PreventDefault()
	return true
}

// clean snaps a value that is within rounding error of a step.
func (sl *Slider) clean(v float32) float32 {
	sv := sl.geometry.Snap(v)
	if math32.Abs(sv-v) <= sl.config.Step*1e-4 {
		return sv
	}
	return v
}

// DragEnd ends the session in progress, sending [events.Change] with
// the final value of its handle. It returns whether a session ended.
func (sl *Slider) DragEnd(e events.Event) bool {
	s := sl.session
	if s == nil {
		return false
	}
	sl.session = nil
	v, _ := sl.handles.Get(s.handle)
	sl.handles.updateOrder(sl.config.Max)
	slog.Debug("slider DragEnd", "event", e, "session", s, "value", v)
	sl.send(events.NewValue(events.Change, s.handle.String(), v))
	return true
}

// cancel ends the session in progress without notification.
func (sl *Slider) cancel(reason string) {
	if sl.session == nil {
		return
	}
	slog.Debug("slider drag canceled", "reason", reason, "session", sl.session)
	sl.session = nil
}

func (sl *Slider) send(e events.Event) {
	sl.listeners.Call(e)
}

// Attach subscribes the slider to the release, motion, and key events
// of the given hub, which are delivered regardless of their target.
// Attaching to another hub detaches from the current one first.
func (sl *Slider) Attach(hub *events.Hub) {
	if sl.hub == hub {
		return
	}
	sl.Detach()
	sl.hub = hub
	for _, typ := range []events.Types{events.MouseUp, events.TouchEnd} {
		sl.subs = append(sl.subs, hub.Subscribe(typ, func(e events.Event) { sl.DragEnd(e) }))
	}
	for _, typ := range []events.Types{events.MouseMove, events.TouchMove} {
		sl.subs = append(sl.subs, hub.Subscribe(typ, func(e events.Event) { sl.Drag(e) }))
	}
	sl.subs = append(sl.subs, hub.Subscribe(events.KeyDown, func(e events.Event) { sl.KeyStep(e) }))
}

// Detach removes every subscription made by [Slider.Attach], and ends
// any session in progress without notification.
func (sl *Slider) Detach() {
	for _, sub := range sl.subs {
		sub.Unsubscribe()
	}
	sl.subs = nil
	sl.hub = nil
	sl.cancel("detached")
}

// Attached returns whether the slider is attached to a hub.
func (sl *Slider) Attached() bool {
	return sl.hub != nil
}

// eventValue returns the snapped value at the position of the event.
func (sl *Slider) eventValue(e events.Event) float32 {
	p := sl.toArc(e.Pos())
	return sl.geometry.PointToValue(p.X, p.Y)
}

// scale returns the number of pixels per unit of the arc radius,
// horizontally and vertically.
func (sl *Slider) scale() (sx, sy float32) {
	b := sl.geometry.Boundary()
	size := sl.host.Bounds().Size()
	sx, sy = size.X/b.Width(), size.Y/b.Height()
	valid := func(s float32) bool { return math32.IsFinite(s) && s > 0 }
	switch {
	case valid(sx) && valid(sy):
	case valid(sx):
		sy = sx
	case valid(sy):
		sx = sy
	default:
		sx, sy = 1, 1
	}
	return
}

// toArc converts client coordinates to coordinates relative to the
// center of the arc, in units of the arc radius.
func (sl *Slider) toArc(p math32.Vector2) math32.Vector2 {
	b := sl.geometry.Boundary()
	r := sl.host.Bounds()
	sx, sy := sl.scale()
	return math32.Vec2((p.X-r.Min.X)/sx-b.Left, (p.Y-r.Min.Y)/sy-b.Up)
}

// PartAt returns the part of the slider at the given position in
// client coordinates: the topmost handle within twice its size,
// else the track within one and a half handle sizes of the arc.
func (sl *Slider) PartAt(p math32.Vector2) Parts {
	if sl.config.ReadOnly {
		return PartNone
	}
	u := sl.toArc(p)
	sx, sy := sl.scale()
	px := func(d math32.Vector2) float32 {
		return math32.Hypot(d.X*sx, d.Y*sy)
	}
	order := sl.handles.Order()
	for i := len(order) - 1; i >= 0; i-- {
		id := order[i]
		v, _ := sl.handles.Get(id)
		hp := sl.geometry.ToPoint(sl.geometry.ValueToAngle(v))
		if px(u.Sub(hp)) <= 2*sl.config.HandleSize {
			return PartOf(id)
		}
	}
	if u.Length() == 0 || sl.geometry.FromPoint(u.X, u.Y) > sl.geometry.Span() {
		return PartNone
	}
	on := u.MulScalar(1 / u.Length())
	if px(u.Sub(on)) <= 1.5*sl.config.HandleSize {
		return PartTrack
	}
	return PartNone
}

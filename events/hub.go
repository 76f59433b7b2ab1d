// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package events

import (
	"slices"
	"sync"
)

// Global is the process-wide [Hub], the equivalent of listeners
// registered on a whole window or document.
var Global = &Hub{}

// Hub is a set of listeners shared by everything in a process that
// needs to see events no matter where they happen, such as the pointer
// release that ends a drag outside of the widget that started it.
// Listeners are added with [Hub.Subscribe] and must be removed with
// [Subscription.Unsubscribe] when their owner goes away, so that the hub
// never keeps a destroyed widget alive.
//
// A Hub is safe for concurrent use. Listeners are called without
// the lock held, so they may subscribe and unsubscribe freely.
type Hub struct {
	mu   sync.Mutex
	next uint64
	subs []subscriber
}

type subscriber struct {
	id  uint64
	typ Types
	fun func(Event)
}

// Subscription is a handle on a listener added to a [Hub].
type Subscription struct {
	hub *Hub
	id  uint64
}

// Subscribe adds a listener for the given event type.
// Listeners are called in the order they were added.
func (h *Hub) Subscribe(typ Types, fun func(Event)) Subscription {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.next++
	h.subs = append(h.subs, subscriber{id: h.next, typ: typ, fun: fun})
	return Subscription{hub: h, id: h.next}
}

// Unsubscribe removes the listener from its hub. It returns false if
// the listener had already been removed, or if the subscription is the
// zero value.
func (s Subscription) Unsubscribe() bool {
	if s.hub == nil {
		return false
	}
	h := s.hub
	h.mu.Lock()
	defer h.mu.Unlock()
	i := slices.IndexFunc(h.subs, func(sb subscriber) bool { return sb.id == s.id })
	if i < 0 {
		return false
	}
	h.subs = slices.Delete(h.subs, i, i+1)
	return true
}

// Send calls every listener subscribed to the type of the event.
// Unlike [Listeners.Call], all listeners see the event even when
// one of them marks it as handled, since each belongs to a different owner.
func (h *Hub) Send(ev Event) {
	h.mu.Lock()
	var funs []func(Event)
	for _, sb := range h.subs {
		if sb.typ == ev.Type() {
			funs = append(funs, sb.fun)
		}
	}
	h.mu.Unlock()
	for _, fun := range funs {
		fun(ev)
	}
}

// Len returns the number of listeners currently subscribed.
func (h *Hub) Len() int {
	h.mu.Lock()
	defer h.mu.Unlock()
	return len(h.subs)
}

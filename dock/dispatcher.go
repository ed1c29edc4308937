// Copyright © 2025 Texelation contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
//
// File: dock/dispatcher.go
// Summary: Broadcasts workspace change events to the rendering collaborator.

package dock

import "sync"

// EventType defines the type of an event.
type EventType int

const (
	// EventTreeChanged fires after any structural or size mutation of a tree.
	EventTreeChanged EventType = iota
	// EventTabSelected fires when a tabs container changes its active child.
	EventTabSelected
	// EventSidebarChanged fires when a sidebar is toggled or resized.
	EventSidebarChanged
	// EventDragStarted and EventDragEnded bracket a resize session.
	EventDragStarted
	EventDragEnded
)

func (t EventType) String() string {
	switch t {
	case EventTreeChanged:
		return "tree_changed"
	case EventTabSelected:
		return "tab_selected"
	case EventSidebarChanged:
		return "sidebar_changed"
	case EventDragStarted:
		return "drag_started"
	case EventDragEnded:
		return "drag_ended"
	default:
		return "unknown"
	}
}

// Event represents a message passed through the system.
type Event struct {
	Type    EventType
	Payload interface{}
}

// TreePayload accompanies EventTreeChanged and EventTabSelected.
type TreePayload struct {
	Slot Slot
	Op   string
	ID   ID
}

// SidebarPayload accompanies EventSidebarChanged.
type SidebarPayload struct {
	Side    Side
	Enabled bool
	Size    float64
}

// Listener is implemented by anything that wants workspace events.
type Listener interface {
	OnEvent(event Event)
}

// EventDispatcher manages a list of listeners and broadcasts events to them.
type EventDispatcher struct {
	mu        sync.RWMutex
	listeners []Listener
}

// NewEventDispatcher creates a new dispatcher.
func NewEventDispatcher() *EventDispatcher {
	return &EventDispatcher{
		listeners: make([]Listener, 0),
	}
}

// Subscribe adds a new listener to receive events.
func (d *EventDispatcher) Subscribe(listener Listener) {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.listeners = append(d.listeners, listener)
}

// Unsubscribe removes a listener.
func (d *EventDispatcher) Unsubscribe(listener Listener) {
	d.mu.Lock()
	defer d.mu.Unlock()
	for i, l := range d.listeners {
		if l == listener {
			d.listeners = append(d.listeners[:i], d.listeners[i+1:]...)
			break
		}
	}
}

// Broadcast sends an event to all subscribed listeners.
func (d *EventDispatcher) Broadcast(event Event) {
	d.mu.RLock()
	listeners := append([]Listener(nil), d.listeners...)
	d.mu.RUnlock()
	for _, l := range listeners {
		l.OnEvent(event)
	}
}

// Copyright © 2025 Texelation contributors
// SPDX-License-Identifier: AGPL-3.0-or-later

package dock

import "testing"

type recorder struct {
	events []Event
}

func (r *recorder) OnEvent(e Event) { r.events = append(r.events, e) }

func (r *recorder) ofType(typ EventType) []Event {
	var out []Event
	for _, e := range r.events {
		if e.Type == typ {
			out = append(out, e)
		}
	}
	return out
}

func TestDispatcherSubscribeUnsubscribe(t *testing.T) {
	d := NewEventDispatcher()
	a, b := &recorder{}, &recorder{}
	d.Subscribe(a)
	d.Subscribe(b)
	d.Broadcast(Event{Type: EventTreeChanged})
	d.Unsubscribe(a)
	d.Broadcast(Event{Type: EventDragStarted})

	if len(a.events) != 1 {
		t.Fatalf("expected 1 event for a, got %d", len(a.events))
	}
	if len(b.events) != 2 {
		t.Fatalf("expected 2 events for b, got %d", len(b.events))
	}
	if b.events[1].Type.String() != "drag_started" {
		t.Fatalf("unexpected event %s", b.events[1].Type)
	}
}

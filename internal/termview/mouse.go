// Copyright © 2025 Texelation contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
//
// File: internal/termview/mouse.go
// Summary: Turns Button1 press/drag/release sequences into resizer sessions.

package termview

import (
	"log"

	"github.com/gdamore/tcell/v2"

	"github.com/framegrace/texeldock/dock"
)

type dragSession struct {
	resizer dock.Resizer
	split   *dock.SplitResizer
	side    *dock.Side
	originX int
	originY int
}

// HandleMouse feeds one mouse event to the drag adapter. It reports whether
// the event was consumed by a resize.
func (v *View) HandleMouse(ev *tcell.EventMouse) bool {
	x, y := ev.Position()
	buttons := ev.Buttons()
	down := buttons&tcell.Button1 != 0
	prevDown := v.prevButtons&tcell.Button1 != 0
	v.prevButtons = buttons

	if v.drag != nil {
		if down {
			d := dock.DragDelta{DX: float64(x - v.drag.originX), DY: float64(y - v.drag.originY)}
			if err := v.drag.resizer.Move(d); err != nil {
				log.Printf("View.HandleMouse: move failed: %v", err)
			}
		} else {
			v.drag.resizer.End()
			v.drag = nil
		}
		v.dirty = true
		return true
	}
	if !down || prevDown {
		return false
	}
	session := v.resizerAt(x, y)
	if session == nil {
		return false
	}
	v.drag = session
	v.dirty = true
	return true
}

// CancelDrag abandons an active drag, e.g. when the terminal loses focus.
func (v *View) CancelDrag() {
	if v.drag == nil {
		return
	}
	v.drag.resizer.Cancel()
	v.drag = nil
	v.dirty = true
}

// Dragging reports whether a resize is in progress.
func (v *View) Dragging() bool { return v.drag != nil }

func (v *View) resizerAt(x, y int) *dragSession {
	width, height := v.driver.Size()
	arrangement := v.ws.Arrange(width, height)

	for _, side := range dock.Sides {
		rect, ok := arrangement.Handles[side]
		if !ok || !rect.Contains(x, y) {
			continue
		}
		window := width
		if side.Axis() == dock.AxisVertical {
			window = height
		}
		r := v.ws.NewSidebarResizer(side)
		if err := r.Start(float64(window)); err != nil {
			log.Printf("View.resizerAt: sidebar %s: %v", side, err)
			return nil
		}
		s := side
		return &dragSession{resizer: r, side: &s, originX: x, originY: y}
	}

	for slot, area := range arrangement.Areas {
		if !area.Contains(x, y) {
			continue
		}
		tree := v.ws.Tree(slot)
		h, ok := dock.HandleAt(dock.Handles(tree, area), x, y)
		if !ok {
			return nil
		}
		r := v.ws.NewSplitResizer(tree, h.Parent, h.Index)
		if err := r.Start(float64(h.Span)); err != nil {
			log.Printf("View.resizerAt: split handle %d: %v", h.Index, err)
			return nil
		}
		return &dragSession{resizer: r, split: r, originX: x, originY: y}
	}
	return nil
}

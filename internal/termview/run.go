// Copyright © 2025 Texelation contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
//
// File: internal/termview/run.go
// Summary: Event loop tying terminal input to the workspace.
// Usage: Run blocks until Ctrl-C, 'q' or ctx cancellation. Post schedules work
// from other goroutines onto the loop.

package termview

import (
	"context"
	"log"

	"github.com/gdamore/tcell/v2"

	"github.com/framegrace/texeldock/dock"
)

type loopFunc func(*dock.Workspace)

type stopLoop struct{}

// Post runs fn on the event loop goroutine. The workspace is not safe for
// concurrent use, so callbacks from watchers must go through here.
func (v *View) Post(fn func(*dock.Workspace)) error {
	return v.driver.PostEvent(tcell.NewEventInterrupt(loopFunc(fn)))
}

// Run initialises the screen and processes events until asked to stop.
func (v *View) Run(ctx context.Context) error {
	if err := v.driver.Init(); err != nil {
		return err
	}
	defer v.driver.Fini()
	v.driver.EnableMouse()
	defer v.driver.DisableMouse()
	v.driver.EnableFocus()

	done := make(chan struct{})
	defer close(done)
	go func() {
		select {
		case <-ctx.Done():
			_ = v.driver.PostEvent(tcell.NewEventInterrupt(stopLoop{}))
		case <-done:
		}
	}()

	v.Draw()
	for {
		ev := v.driver.PollEvent()
		if ev == nil {
			return nil
		}
		if !v.HandleEvent(ev) {
			v.CancelDrag()
			return ctx.Err()
		}
		if v.dirty {
			v.Draw()
		}
	}
}

// HandleEvent processes a single event and reports whether the loop should continue.
func (v *View) HandleEvent(ev tcell.Event) bool {
	switch tev := ev.(type) {
	case *tcell.EventInterrupt:
		switch data := tev.Data().(type) {
		case stopLoop:
			return false
		case loopFunc:
			data(v.ws)
			v.dirty = true
		}
	case *tcell.EventResize:
		v.dirty = true
	case *tcell.EventFocus:
		if !tev.Focused {
			v.CancelDrag()
		}
	case *tcell.EventMouse:
		v.HandleMouse(tev)
	case *tcell.EventKey:
		return v.handleKey(tev)
	}
	return true
}

func (v *View) handleKey(ev *tcell.EventKey) bool {
	switch ev.Key() {
	case tcell.KeyCtrlC:
		return false
	case tcell.KeyEscape:
		v.CancelDrag()
		return true
	case tcell.KeyRune:
	default:
		return true
	}
	switch ev.Rune() {
	case 'q':
		return false
	case 'l':
		v.ws.ToggleSidebar(dock.SideLeft)
	case 'r':
		v.ws.ToggleSidebar(dock.SideRight)
	case 'b':
		v.ws.ToggleSidebar(dock.SideBottom)
	default:
		log.Printf("View.handleKey: unbound rune %q", ev.Rune())
	}
	return true
}

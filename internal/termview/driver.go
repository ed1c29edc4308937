// Copyright © 2025 Texelation contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
//
// File: internal/termview/driver.go
// Summary: Narrow screen interface used by the terminal view, with a tcell adapter.

package termview

import "github.com/gdamore/tcell/v2"

// ScreenDriver is the subset of tcell.Screen the view needs, so tests can
// substitute a recording stub.
type ScreenDriver interface {
	Init() error
	Fini()
	Size() (int, int)
	Clear()
	Show()
	EnableMouse()
	DisableMouse()
	EnableFocus()
	PollEvent() tcell.Event
	PostEvent(ev tcell.Event) error
	SetContent(x, y int, mainc rune, combc []rune, style tcell.Style)
}

// TcellScreenDriver adapts a tcell.Screen to the ScreenDriver interface.
type TcellScreenDriver struct {
	screen tcell.Screen
}

// NewTcellScreenDriver wraps the provided screen.
func NewTcellScreenDriver(screen tcell.Screen) *TcellScreenDriver {
	return &TcellScreenDriver{screen: screen}
}

func (d *TcellScreenDriver) Init() error { return d.screen.Init() }

func (d *TcellScreenDriver) Fini() { d.screen.Fini() }

func (d *TcellScreenDriver) Size() (int, int) { return d.screen.Size() }

func (d *TcellScreenDriver) Clear() { d.screen.Clear() }

func (d *TcellScreenDriver) Show() { d.screen.Show() }

func (d *TcellScreenDriver) EnableMouse() { d.screen.EnableMouse() }

func (d *TcellScreenDriver) DisableMouse() { d.screen.DisableMouse() }

func (d *TcellScreenDriver) EnableFocus() { d.screen.EnableFocus() }

func (d *TcellScreenDriver) PollEvent() tcell.Event { return d.screen.PollEvent() }

func (d *TcellScreenDriver) PostEvent(ev tcell.Event) error { return d.screen.PostEvent(ev) }

func (d *TcellScreenDriver) SetContent(x, y int, mainc rune, combc []rune, style tcell.Style) {
	d.screen.SetContent(x, y, mainc, combc, style)
}

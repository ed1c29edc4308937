// Copyright © 2025 Texelation contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
//
// File: internal/termview/view.go
// Summary: Draws a dock.Workspace onto a terminal screen.
// Usage: NewView(ws, driver).Run(ctx) owns the event loop; Draw renders one frame.

package termview

import (
	"github.com/gdamore/tcell/v2"
	"github.com/mattn/go-runewidth"

	"github.com/framegrace/texeldock/dock"
)

var (
	styleBase      = tcell.StyleDefault
	styleTitle     = tcell.StyleDefault.Bold(true)
	styleTab       = tcell.StyleDefault.Foreground(tcell.ColorSilver)
	styleActiveTab = tcell.StyleDefault.Reverse(true)
	styleHandle    = tcell.StyleDefault.Foreground(tcell.ColorGray)
	styleDragging  = tcell.StyleDefault.Foreground(tcell.ColorYellow)
)

// View renders a workspace and routes pointer input to its resizers.
type View struct {
	ws     *dock.Workspace
	driver ScreenDriver
	drag   *dragSession
	dirty  bool

	prevButtons tcell.ButtonMask
}

// NewView creates a view and subscribes it to workspace events.
func NewView(ws *dock.Workspace, driver ScreenDriver) *View {
	v := &View{ws: ws, driver: driver, dirty: true}
	ws.Subscribe(v)
	return v
}

// OnEvent marks the view for redraw after any workspace change.
func (v *View) OnEvent(dock.Event) {
	v.dirty = true
}

// Dirty reports whether a redraw is pending.
func (v *View) Dirty() bool { return v.dirty }

// Draw renders the whole workspace.
func (v *View) Draw() {
	v.driver.Clear()
	width, height := v.driver.Size()
	arrangement := v.ws.Arrange(width, height)
	for slot, area := range arrangement.Areas {
		v.drawTree(v.ws.Tree(slot), area)
	}
	for side, rect := range arrangement.Handles {
		style := styleHandle
		if v.drag != nil && v.drag.side != nil && *v.drag.side == side {
			style = styleDragging
		}
		fillHandle(v.driver, rect, side.Axis(), style)
	}
	v.driver.Show()
	v.dirty = false
}

func (v *View) drawTree(tree *dock.Tree, area dock.Rectangle) {
	rects := dock.Layout(tree, area)
	tree.Walk(func(n dock.Node) bool {
		rect := rects[n.ID]
		if rect.Empty() {
			return false
		}
		switch {
		case n.Leaf != nil:
			v.drawLeaf(n, rect)
		case n.IsTabs():
			v.drawTabBar(tree, n, rect)
		}
		return true
	})
	for _, h := range dock.Handles(tree, area) {
		style := styleHandle
		if v.drag != nil && v.drag.split != nil && v.drag.split.Parent() == h.Parent && v.drag.split.Index() == h.Index {
			style = styleDragging
		}
		fillHandle(v.driver, h.Rect, h.Axis, style)
	}
}

func (v *View) drawLeaf(n dock.Node, rect dock.Rectangle) {
	title := n.Leaf.Title
	content, ok, err := v.ws.Registry().Resolve(n.ID)
	if err != nil {
		drawText(v.driver, rect.X, rect.Y, rect.Width, "error: "+err.Error(), styleBase)
		return
	}
	if ok && content.Title != "" {
		title = content.Title
	}
	drawText(v.driver, rect.X, rect.Y, rect.Width, title, styleTitle)
	if ok && content.Render != nil && rect.Height > 1 {
		body := dock.Rectangle{X: rect.X, Y: rect.Y + 1, Width: rect.Width, Height: rect.Height - 1}
		content.Render(&regionCanvas{driver: v.driver, rect: body})
	}
}

func (v *View) drawTabBar(tree *dock.Tree, n dock.Node, rect dock.Rectangle) {
	x := rect.X
	end := rect.X + rect.Width
	for i, childID := range n.Container.Children {
		if x >= end {
			break
		}
		label := " ? "
		if child, ok := tree.Get(childID); ok && child.Leaf != nil {
			label = " " + child.Leaf.Title + " "
		}
		style := styleTab
		if i == n.Container.Active {
			style = styleActiveTab
		}
		x += drawText(v.driver, x, rect.Y, end-x, label, style)
	}
}

// drawText writes s clipped to width cells and returns the cells used.
func drawText(d ScreenDriver, x, y, width int, s string, style tcell.Style) int {
	if width <= 0 {
		return 0
	}
	if runewidth.StringWidth(s) > width {
		s = runewidth.Truncate(s, width, "…")
	}
	col := 0
	for _, r := range s {
		d.SetContent(x+col, y, r, nil, style)
		col += runewidth.RuneWidth(r)
	}
	return col
}

func fillHandle(d ScreenDriver, rect dock.Rectangle, axis dock.Axis, style tcell.Style) {
	ch := '│'
	if axis == dock.AxisVertical {
		ch = '─'
	}
	for y := rect.Y; y < rect.Y+rect.Height; y++ {
		for x := rect.X; x < rect.X+rect.Width; x++ {
			d.SetContent(x, y, ch, nil, style)
		}
	}
}

// regionCanvas clips a leaf's drawing to its rectangle.
type regionCanvas struct {
	driver ScreenDriver
	rect   dock.Rectangle
}

func (c *regionCanvas) Size() (int, int) { return c.rect.Width, c.rect.Height }

func (c *regionCanvas) SetCell(x, y int, ch rune) {
	if x < 0 || y < 0 || x >= c.rect.Width || y >= c.rect.Height {
		return
	}
	c.driver.SetContent(c.rect.X+x, c.rect.Y+y, ch, nil, styleBase)
}

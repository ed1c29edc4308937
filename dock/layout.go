// Copyright © 2025 Texelation contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
//
// File: dock/layout.go
// Summary: Converts tree fractions into integer cell rectangles.
// Usage: Renderers call Layout once per frame and draw each leaf in its rectangle;
// Handles locates the draggable borders between split children.

package dock

// Rectangle is an integer screen area in cells.
type Rectangle struct {
	X      int
	Y      int
	Width  int
	Height int
}

// Empty reports whether the rectangle covers no cells.
func (r Rectangle) Empty() bool { return r.Width <= 0 || r.Height <= 0 }

// Contains reports whether the cell (x, y) falls inside r.
func (r Rectangle) Contains(x, y int) bool {
	return x >= r.X && x < r.X+r.Width && y >= r.Y && y < r.Y+r.Height
}

// Extent returns the rectangle's size along axis.
func (r Rectangle) Extent(axis Axis) int {
	if axis == AxisVertical {
		return r.Height
	}
	return r.Width
}

// TabBarHeight is the number of rows a tabs container reserves for its labels.
const TabBarHeight = 1

// Handle is the one-cell border after child Index of a split container.
type Handle struct {
	Parent ID
	Index  int
	Axis   Axis
	Rect   Rectangle
	// Span is the parent's extent along Axis, the size SplitResizer.Start expects.
	Span int
}

// Layout assigns a rectangle to every node reachable from the root. The last
// child of a split absorbs rounding. Inactive tabs get an empty rectangle at
// the container's origin.
func Layout(t *Tree, area Rectangle) map[ID]Rectangle {
	out := make(map[ID]Rectangle, t.Len())
	layoutNode(t, t.root, area, out, nil)
	return out
}

// Handles returns the resize handles of every split reachable from the root,
// in display order.
func Handles(t *Tree, area Rectangle) []Handle {
	var handles []Handle
	layoutNode(t, t.root, area, make(map[ID]Rectangle, t.Len()), &handles)
	return handles
}

// HandleAt returns the handle covering cell (x, y).
func HandleAt(handles []Handle, x, y int) (Handle, bool) {
	for _, h := range handles {
		if h.Rect.Contains(x, y) {
			return h, true
		}
	}
	return Handle{}, false
}

func layoutNode(t *Tree, id ID, area Rectangle, out map[ID]Rectangle, handles *[]Handle) {
	n, ok := t.store.get(id)
	if !ok {
		return
	}
	out[id] = area
	if n.Container == nil || len(n.Container.Children) == 0 {
		return
	}
	c := n.Container

	if c.Layout == LayoutTabs {
		body := area
		if body.Height > TabBarHeight {
			body.Y += TabBarHeight
			body.Height -= TabBarHeight
		} else {
			body.Height = 0
		}
		for i, child := range c.Children {
			if i == c.Active {
				layoutNode(t, child, body, out, handles)
			} else {
				layoutNode(t, child, Rectangle{X: body.X, Y: body.Y}, out, handles)
			}
		}
		return
	}

	total := area.Extent(c.Axis)
	offset := 0
	last := len(c.Children) - 1
	for i, childID := range c.Children {
		child, ok := t.store.get(childID)
		if !ok {
			continue
		}
		size := int(float64(total) * child.Fraction)
		if i == last {
			size = total - offset
		}
		if size < 0 {
			size = 0
		}
		r := area
		if c.Axis == AxisVertical {
			r.Y = area.Y + offset
			r.Height = size
		} else {
			r.X = area.X + offset
			r.Width = size
		}
		layoutNode(t, childID, r, out, handles)
		offset += size

		if handles != nil && i < last && size > 0 {
			h := Handle{Parent: id, Index: i, Axis: c.Axis, Span: total}
			if c.Axis == AxisVertical {
				h.Rect = Rectangle{X: area.X, Y: r.Y + size - 1, Width: area.Width, Height: 1}
			} else {
				h.Rect = Rectangle{X: r.X + size - 1, Y: area.Y, Width: 1, Height: area.Height}
			}
			*handles = append(*handles, h)
		}
	}
}

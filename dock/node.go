// Copyright © 2025 Texelation contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
//
// File: dock/node.go
// Summary: Node records stored in the panel tree arena.
// Usage: Containers (split or tabs) hold child ids; leaves carry only display metadata.

package dock

// Axis is the direction a split lays its children out along.
type Axis int

const (
	AxisNone Axis = iota
	AxisHorizontal
	AxisVertical
)

func (a Axis) String() string {
	switch a {
	case AxisHorizontal:
		return "horizontal"
	case AxisVertical:
		return "vertical"
	default:
		return "none"
	}
}

// Cross returns the perpendicular axis.
func (a Axis) Cross() Axis {
	switch a {
	case AxisHorizontal:
		return AxisVertical
	case AxisVertical:
		return AxisHorizontal
	default:
		return AxisNone
	}
}

// LayoutMode selects how a container arranges its children.
type LayoutMode int

const (
	LayoutSplit LayoutMode = iota
	LayoutTabs
)

func (m LayoutMode) String() string {
	if m == LayoutTabs {
		return "tabs"
	}
	return "split"
}

// NoActive marks a tabs container with no selected tab.
const NoActive = -1

// EdgeDropConfig says which edges of a container accept a drop that splits it.
type EdgeDropConfig struct {
	Left, Right, Top, Bottom bool
}

// AllEdges accepts drops on every edge.
func AllEdges() EdgeDropConfig {
	return EdgeDropConfig{Left: true, Right: true, Top: true, Bottom: true}
}

// Container is the body of a container node.
type Container struct {
	Layout   LayoutMode
	Axis     Axis // AxisNone for tabs
	Children []ID
	Active   int // tabs only; NoActive when nothing is selected
	EdgeDrop EdgeDropConfig
}

// Leaf is the body of a leaf node. Its content lives in the Registry.
type Leaf struct {
	Title   string
	Tooltip string
}

// Node is one record of the arena. Exactly one of Container and Leaf is set,
// matching ID.Kind().
type Node struct {
	ID       ID
	Parent   ID // zero when detached, or for the root
	Fraction float64

	Container *Container
	Leaf      *Leaf
}

// HasParent reports whether the node is attached.
func (n Node) HasParent() bool { return !n.Parent.IsZero() }

// IsTabs reports whether n is a tabs container.
func (n Node) IsTabs() bool { return n.Container != nil && n.Container.Layout == LayoutTabs }

// IsSplit reports whether n is a split container.
func (n Node) IsSplit() bool { return n.Container != nil && n.Container.Layout == LayoutSplit }

// ChildCount returns the number of children, zero for leaves.
func (n Node) ChildCount() int {
	if n.Container == nil {
		return 0
	}
	return len(n.Container.Children)
}

// indexOf returns the position of child in the container or -1.
func (c *Container) indexOf(child ID) int {
	for i, id := range c.Children {
		if id == child {
			return i
		}
	}
	return -1
}

func (c *Container) remove(child ID) int {
	i := c.indexOf(child)
	if i < 0 {
		return -1
	}
	c.Children = append(c.Children[:i], c.Children[i+1:]...)
	return i
}

func (c *Container) insert(child ID, at int) int {
	if at < 0 || at > len(c.Children) {
		at = len(c.Children)
	}
	c.Children = append(c.Children, ID{})
	copy(c.Children[at+1:], c.Children[at:])
	c.Children[at] = child
	return at
}

// clampActive keeps a tabs selection within bounds after a structural change.
func (c *Container) clampActive() {
	if c.Layout != LayoutTabs {
		c.Active = NoActive
		return
	}
	if len(c.Children) == 0 {
		c.Active = NoActive
		return
	}
	if c.Active >= len(c.Children) {
		c.Active = len(c.Children) - 1
	}
	if c.Active < NoActive {
		c.Active = NoActive
	}
}

func (n *Node) clone() Node {
	out := *n
	if n.Container != nil {
		c := *n.Container
		c.Children = append([]ID(nil), n.Container.Children...)
		out.Container = &c
	}
	if n.Leaf != nil {
		l := *n.Leaf
		out.Leaf = &l
	}
	return out
}

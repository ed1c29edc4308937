// Copyright © 2025 Texelation contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
//
// File: dock/capture.go
// Summary: Read-only snapshots of a tree for inspection and debugging dumps.

package dock

// TreeCapture is a nested copy of a tree's attached nodes.
type TreeCapture struct {
	Nodes int              `json:"nodes"`
	Root  *TreeNodeCapture `json:"root"`
}

// TreeNodeCapture describes one node of a capture.
type TreeNodeCapture struct {
	ID       string             `json:"id"`
	Fraction float64            `json:"fraction"`
	Layout   string             `json:"layout,omitempty"`
	Axis     string             `json:"axis,omitempty"`
	Active   *int               `json:"active,omitempty"`
	Title    string             `json:"title,omitempty"`
	Children []*TreeNodeCapture `json:"children,omitempty"`
}

// Capture snapshots the nodes reachable from the root. Detached nodes are
// counted in Nodes but not included in Root.
func (t *Tree) Capture() TreeCapture {
	return TreeCapture{Nodes: t.Len(), Root: t.captureNode(t.root)}
}

func (t *Tree) captureNode(id ID) *TreeNodeCapture {
	n, ok := t.store.get(id)
	if !ok {
		return nil
	}
	node := &TreeNodeCapture{ID: id.String(), Fraction: n.Fraction}
	if n.Leaf != nil {
		node.Title = n.Leaf.Title
		return node
	}
	c := n.Container
	node.Layout = c.Layout.String()
	if c.Layout == LayoutTabs {
		active := c.Active
		node.Active = &active
	} else {
		node.Axis = c.Axis.String()
	}
	for _, child := range c.Children {
		if cn := t.captureNode(child); cn != nil {
			node.Children = append(node.Children, cn)
		}
	}
	return node
}

// Copyright © 2025 Texelation contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
//
// File: dock/drop.go
// Summary: Drag-and-drop placement of leaves: into tabs, into splits, onto edges.
// Usage: Drop targets resolve to one of MoveTab, DropIntoSplit or DropOnEdge;
// Workspace wraps them in a history batch and moves leaves between trees.

package dock

import "fmt"

// DropSide is the edge of a container a leaf is dropped on.
type DropSide int

const (
	DropLeft DropSide = iota
	DropRight
	DropTop
	DropBottom
)

func (s DropSide) String() string {
	switch s {
	case DropLeft:
		return "left"
	case DropRight:
		return "right"
	case DropTop:
		return "top"
	case DropBottom:
		return "bottom"
	default:
		return fmt.Sprintf("drop_side(%d)", int(s))
	}
}

// Axis is the split axis an edge drop creates.
func (s DropSide) Axis() Axis {
	if s == DropTop || s == DropBottom {
		return AxisVertical
	}
	return AxisHorizontal
}

// leading reports whether the dropped leaf goes before the target.
func (s DropSide) leading() bool { return s == DropLeft || s == DropTop }

// Accepts reports whether the edge on side takes drops.
func (e EdgeDropConfig) Accepts(side DropSide) bool {
	switch side {
	case DropLeft:
		return e.Left
	case DropRight:
		return e.Right
	case DropTop:
		return e.Top
	case DropBottom:
		return e.Bottom
	default:
		return false
	}
}

// MoveTab puts a leaf into a tabs container at index and makes it active. An
// attached leaf is taken from its current parent first, so index counts the
// destination's tabs after that removal. A negative index appends.
func (t *Tree) MoveTab(leaf, tabs ID, index int) error {
	return t.finish("move_tab", leaf, t.moveTab(leaf, tabs, index))
}

func (t *Tree) moveTab(leaf, tabs ID, index int) error {
	n, err := t.requireLeaf(leaf)
	if err != nil {
		return err
	}
	if err := t.checkMoveTab(tabs); err != nil {
		return err
	}
	t.release(n)
	return t.insertChild(tabs, leaf, index)
}

func (t *Tree) checkMoveTab(tabs ID) error {
	n, err := t.requireContainer(tabs)
	if err != nil {
		return err
	}
	if !n.IsTabs() {
		return &NotTabsError{ID: tabs}
	}
	return nil
}

// DropIntoSplit wraps a leaf in a new tabs container and inserts it into a
// split at index. It returns the new tabs container.
func (t *Tree) DropIntoSplit(split, leaf ID, index int) (ID, error) {
	tabs, err := t.dropIntoSplit(split, leaf, index)
	return tabs, t.finish("drop_into_split", leaf, err)
}

func (t *Tree) dropIntoSplit(split, leaf ID, index int) (ID, error) {
	n, err := t.requireLeaf(leaf)
	if err != nil {
		return ID{}, err
	}
	if err := t.checkDropIntoSplit(split); err != nil {
		return ID{}, err
	}
	t.release(n)
	tabs := t.tabsAround(leaf)
	if err := t.insertChild(split, tabs, index); err != nil {
		panic(fmt.Sprintf("dock: new tabs %s rejected by split %s: %v", tabs, split, err))
	}
	return tabs, nil
}

func (t *Tree) checkDropIntoSplit(split ID) error {
	n, err := t.requireContainer(split)
	if err != nil {
		return err
	}
	if !n.IsSplit() {
		return &NotSplitError{ID: split}
	}
	return nil
}

// DropOnEdge splits target along side and puts the leaf, wrapped in a new
// tabs container, before the target for left and top drops and after it for
// right and bottom drops. When the target already sits in a split along that
// axis the new tabs join that split instead of nesting a new one. The root
// keeps its id: its children move into a new inner container. It returns the
// new tabs container.
func (t *Tree) DropOnEdge(target, leaf ID, side DropSide) (ID, error) {
	tabs, err := t.dropOnEdge(target, leaf, side)
	return tabs, t.finish("drop_on_edge", leaf, err)
}

func (t *Tree) dropOnEdge(target, leaf ID, side DropSide) (ID, error) {
	n, err := t.requireLeaf(leaf)
	if err != nil {
		return ID{}, err
	}
	if err := t.checkDropOnEdge(target, side); err != nil {
		return ID{}, err
	}
	t.release(n)
	tabs := t.tabsAround(leaf)

	var (
		into  ID
		index int
	)
	if target == t.root {
		t.splitRoot(side.Axis())
		into, index = t.root, 0
		if !side.leading() {
			index = -1
		}
	} else {
		into, index = t.edgeSlot(target, side)
	}
	if err := t.insertChild(into, tabs, index); err != nil {
		panic(fmt.Sprintf("dock: new tabs %s rejected by %s: %v", tabs, into, err))
	}
	debugf("Tree.DropOnEdge: %s on %s edge of %s via %s", leaf.Short(), side, target.Short(), into.Short())
	return tabs, nil
}

func (t *Tree) checkDropOnEdge(target ID, side DropSide) error {
	n, err := t.requireContainer(target)
	if err != nil {
		return err
	}
	if !n.Container.EdgeDrop.Accepts(side) {
		return &EdgeRefusedError{Target: target, Side: side}
	}
	if target != t.root && !n.HasParent() {
		return &NoParentError{ID: target}
	}
	return nil
}

// edgeSlot returns the split and index a new sibling of target goes to,
// promoting target into a new split when its parent runs along another axis.
func (t *Tree) edgeSlot(target ID, side DropSide) (ID, int) {
	n := t.store.nodes[target]
	parent := t.store.nodes[n.Parent]
	if parent.IsSplit() && parent.Container.Axis == side.Axis() {
		at := parent.Container.indexOf(target)
		if !side.leading() {
			at++
		}
		return parent.ID, at
	}
	wrapper, err := t.promote(target, ContainerProps{Layout: LayoutSplit, Axis: side.Axis()})
	if err != nil {
		panic(fmt.Sprintf("dock: promote %s for edge drop: %v", target, err))
	}
	if side.leading() {
		return wrapper, 0
	}
	return wrapper, -1
}

// splitRoot turns the root into a split along axis, moving its previous
// children into an inner container that becomes the root's only child.
func (t *Tree) splitRoot(axis Axis) {
	root := t.store.nodes[t.root]
	rc := root.Container
	if rc.Layout == LayoutSplit && rc.Axis == axis {
		return
	}
	children := rc.Children
	rc.Children = nil
	if len(children) > 0 {
		innerID := NewContainerID()
		inner := &Node{
			ID:       innerID,
			Parent:   t.root,
			Fraction: 1,
			Container: &Container{
				Layout:   rc.Layout,
				Axis:     rc.Axis,
				Children: children,
				Active:   rc.Active,
				EdgeDrop: AllEdges(),
			},
		}
		for _, id := range children {
			t.store.nodes[id].Parent = innerID
		}
		t.store.insert(inner)
		rc.Children = []ID{innerID}
	}
	rc.Layout = LayoutSplit
	rc.Axis = axis
	rc.Active = NoActive
}

// tabsAround creates a detached tabs container holding only leaf.
func (t *Tree) tabsAround(leaf ID) ID {
	tabs := t.createContainer(ContainerProps{Layout: LayoutTabs})
	if err := t.insertChild(tabs, leaf, -1); err != nil {
		panic(fmt.Sprintf("dock: new tabs %s rejected leaf %s: %v", tabs, leaf, err))
	}
	return tabs
}

// release detaches n if it is attached and resets its fraction hint.
func (t *Tree) release(n *Node) {
	if !n.HasParent() {
		return
	}
	if err := t.detach(n); err != nil {
		panic(fmt.Sprintf("dock: detach %s: %v", n.ID, err))
	}
	n.Fraction = 0
}

// transferLeaf moves a leaf record from t to dst as a detached leaf with the
// same id. Content registered for the id stays valid.
func (t *Tree) transferLeaf(dst *Tree, leaf ID) error {
	n, err := t.requireLeaf(leaf)
	if err != nil {
		return err
	}
	t.release(n)
	t.store.delete(leaf)
	n.Parent = ID{}
	n.Fraction = 0
	dst.store.insert(n)
	t.changed("transfer_out", leaf)
	dst.changed("transfer_in", leaf)
	return nil
}

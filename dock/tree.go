// Copyright © 2025 Texelation contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
//
// File: dock/tree.go
// Summary: Implements the panel tree: a root container plus the node store.
// Usage: All structural mutations (create, attach, destroy, resize) go through Tree
// so the sum-to-one and parent/child invariants hold after each call returns.

package dock

import (
	"fmt"
	"math"
)

// LeafProps describes a new leaf. Fraction is an optional size hint used when
// the leaf is first attached; zero means "fair share".
type LeafProps struct {
	Title    string
	Tooltip  string
	Fraction float64
}

// ContainerProps describes a new container. A nil EdgeDrop accepts drops on all edges.
type ContainerProps struct {
	Layout   LayoutMode
	Axis     Axis
	EdgeDrop *EdgeDropConfig
	Fraction float64
}

// ChildShare is a child id with its fraction of the parent.
type ChildShare struct {
	ID       ID
	Fraction float64
}

// ChangeFunc is called after a successful mutation.
type ChangeFunc func(op string, id ID)

type treeOptions struct {
	root      ContainerProps
	tolerance float64
}

// TreeOption customises NewTree.
type TreeOption func(*treeOptions)

// WithRootAxis sets the split axis of the root container.
func WithRootAxis(axis Axis) TreeOption {
	return func(o *treeOptions) { o.root.Axis = axis }
}

// WithRootLayout sets the layout mode of the root container.
func WithRootLayout(mode LayoutMode) TreeOption {
	return func(o *treeOptions) {
		o.root.Layout = mode
		if mode == LayoutTabs {
			o.root.Axis = AxisNone
		}
	}
}

// WithRootEdgeDrop sets which root edges accept split drops.
func WithRootEdgeDrop(edges EdgeDropConfig) TreeOption {
	return func(o *treeOptions) { o.root.EdgeDrop = &edges }
}

// WithSumTolerance sets how far a container's children may drift from 1
// before Validate reports it. Non-positive values keep the default.
func WithSumTolerance(tolerance float64) TreeOption {
	return func(o *treeOptions) {
		if tolerance > 0 {
			o.tolerance = tolerance
		}
	}
}

// Tree owns a node store and the id of its root container.
// A Tree is not safe for concurrent use; mutate it from one event loop.
type Tree struct {
	root      ID
	store     *Store
	tolerance float64

	onChange    []ChangeFunc
	onDestroyed []func(ID)
}

// NewTree creates a tree holding only its root container.
func NewTree(opts ...TreeOption) *Tree {
	o := treeOptions{
		root: ContainerProps{
			Layout:   LayoutSplit,
			Axis:     AxisHorizontal,
			EdgeDrop: &EdgeDropConfig{Left: true, Right: true},
		},
		tolerance: DefaultSumTolerance,
	}
	for _, opt := range opts {
		opt(&o)
	}
	props := o.root
	t := &Tree{store: newStore(), tolerance: o.tolerance}
	t.root = t.createContainer(props)
	t.store.nodes[t.root].Fraction = 1
	debugf("Tree.NewTree: root %s (%s, %s)", t.root.Short(), props.Layout, props.Axis)
	return t
}

// Root returns the id of the root container.
func (t *Tree) Root() ID { return t.root }

// Len returns the number of nodes in the store, including detached ones.
func (t *Tree) Len() int { return t.store.Len() }

// SumTolerance returns the accepted deviation of a container's children from 1.
func (t *Tree) SumTolerance() float64 { return t.tolerance }

// SetSumTolerance changes the tolerance; non-positive values are ignored.
func (t *Tree) SetSumTolerance(tolerance float64) {
	if tolerance > 0 {
		t.tolerance = tolerance
	}
}

// OnChange registers fn to run after every successful mutation.
func (t *Tree) OnChange(fn ChangeFunc) {
	t.onChange = append(t.onChange, fn)
}

// OnDestroyed registers fn to run for every node removed from the store.
func (t *Tree) OnDestroyed(fn func(ID)) {
	t.onDestroyed = append(t.onDestroyed, fn)
}

// Get returns a copy of the node. Modifying the copy does not affect the tree.
func (t *Tree) Get(id ID) (Node, bool) {
	n, ok := t.store.get(id)
	if !ok {
		return Node{}, false
	}
	return n.clone(), true
}

// Contains reports whether id is in the store.
func (t *Tree) Contains(id ID) bool {
	_, ok := t.store.get(id)
	return ok
}

// Children returns the children of a container paired with their fractions.
func (t *Tree) Children(id ID) ([]ChildShare, error) {
	p, err := t.requireContainer(id)
	if err != nil {
		return nil, err
	}
	out := make([]ChildShare, 0, len(p.Container.Children))
	for _, childID := range p.Container.Children {
		child, err := t.store.require(childID, id)
		if err != nil {
			return nil, err
		}
		out = append(out, ChildShare{ID: childID, Fraction: child.Fraction})
	}
	return out, nil
}

// Ancestors returns the container chain above id, innermost first.
func (t *Tree) Ancestors(id ID) ([]ID, error) {
	n, err := t.store.require(id)
	if err != nil {
		return nil, err
	}
	var chain []ID
	for p := n.Parent; !p.IsZero(); {
		chain = append(chain, p)
		pn, err := t.store.require(p, chain...)
		if err != nil {
			return nil, err
		}
		p = pn.Parent
	}
	return chain, nil
}

// CreateLeaf inserts a detached leaf and returns its id.
func (t *Tree) CreateLeaf(props LeafProps) ID {
	id := t.createLeaf(props)
	_ = t.finish("create_leaf", id, nil)
	return id
}

func (t *Tree) createLeaf(props LeafProps) ID {
	id := NewLeafID()
	t.store.insert(&Node{
		ID:       id,
		Fraction: clampFraction(props.Fraction),
		Leaf:     &Leaf{Title: props.Title, Tooltip: props.Tooltip},
	})
	debugf("Tree.CreateLeaf: %s %q", id.Short(), props.Title)
	return id
}

// CreateContainer inserts a detached container and returns its id.
func (t *Tree) CreateContainer(props ContainerProps) ID {
	id := t.createContainer(props)
	debugf("Tree.CreateContainer: %s (%s, %s)", id.Short(), props.Layout, props.Axis)
	_ = t.finish("create_container", id, nil)
	return id
}

func (t *Tree) createContainer(props ContainerProps) ID {
	id := NewContainerID()
	edges := AllEdges()
	if props.EdgeDrop != nil {
		edges = *props.EdgeDrop
	}
	axis := props.Axis
	if props.Layout == LayoutTabs {
		axis = AxisNone
	} else if axis == AxisNone {
		axis = AxisHorizontal
	}
	t.store.insert(&Node{
		ID:       id,
		Fraction: clampFraction(props.Fraction),
		Container: &Container{
			Layout:   props.Layout,
			Axis:     axis,
			Active:   NoActive,
			EdgeDrop: edges,
		},
	})
	return id
}

// CreateLeafIn creates a leaf and appends it to parent. Nothing is created
// and no change is reported when the attach fails.
func (t *Tree) CreateLeafIn(parent ID, props LeafProps) (ID, error) {
	id := t.createLeaf(props)
	if err := t.insertChild(parent, id, -1); err != nil {
		t.store.delete(id)
		return ID{}, t.finish("create_leaf", id, err)
	}
	return id, t.finish("create_leaf", id, nil)
}

// CreateContainerIn creates a container and appends it to parent. Nothing is
// created and no change is reported when the attach fails.
func (t *Tree) CreateContainerIn(parent ID, props ContainerProps) (ID, error) {
	id := t.createContainer(props)
	if err := t.insertChild(parent, id, -1); err != nil {
		t.store.delete(id)
		return ID{}, t.finish("create_container", id, err)
	}
	return id, t.finish("create_container", id, nil)
}

// AddChild appends a detached node to a container. Existing siblings are
// compressed proportionally to make room for the newcomer.
func (t *Tree) AddChild(parent, child ID) error {
	return t.finish("add_child", child, t.insertChild(parent, child, -1))
}

// InsertChild attaches a detached node at index; a negative or out of range
// index appends.
func (t *Tree) InsertChild(parent, child ID, index int) error {
	return t.finish("insert_child", child, t.insertChild(parent, child, index))
}

func (t *Tree) insertChild(parentID, childID ID, index int) error {
	parent, err := t.requireContainer(parentID)
	if err != nil {
		return err
	}
	child, err := t.store.require(childID)
	if err != nil {
		return err
	}
	if childID == t.root {
		return ErrCannotAttachRoot
	}
	if child.HasParent() {
		return &AlreadyHasParentError{ID: childID, Existing: child.Parent, AddingTo: parentID}
	}
	if parent.IsTabs() && childID.IsContainer() {
		return &TabsRejectContainerError{AddingTo: parentID, Child: childID}
	}
	if err := t.checkAcyclic(childID, parentID); err != nil {
		return err
	}

	siblings := make([]*Node, 0, len(parent.Container.Children))
	existing := make([]float64, 0, len(parent.Container.Children))
	for _, id := range parent.Container.Children {
		sib, err := t.store.require(id, parentID)
		if err != nil {
			return err
		}
		siblings = append(siblings, sib)
		existing = append(existing, sib.Fraction)
	}

	scaled, share := insertShares(existing, child.Fraction)
	for i, sib := range siblings {
		sib.Fraction = scaled[i]
	}
	child.Fraction = share
	child.Parent = parentID
	at := parent.Container.insert(childID, index)
	t.foldDriftInto(parent)

	if parent.IsTabs() {
		parent.Container.Active = at
	}
	debugf("Tree.AddChild: %s -> %s at %d share=%.4f siblings=%d", childID.Short(), parentID.Short(), at, share, len(siblings))
	return nil
}

// checkAcyclic fails if child is parent or one of parent's ancestors.
func (t *Tree) checkAcyclic(child, parent ID) error {
	for cur := parent; !cur.IsZero(); {
		if cur == child {
			return &CycleError{ID: child, Into: parent}
		}
		n, ok := t.store.get(cur)
		if !ok {
			return nil
		}
		cur = n.Parent
	}
	return nil
}

// Destroy removes a node and, for containers, every descendant. The remaining
// siblings are redistributed to fill the freed space.
func (t *Tree) Destroy(id ID) error {
	return t.finish("destroy", id, t.destroy(id, true))
}

func (t *Tree) destroy(id ID, removeFromParent bool) error {
	if id == t.root {
		return ErrCannotDeleteRoot
	}
	n, err := t.store.require(id)
	if err != nil {
		return err
	}

	if removeFromParent && n.HasParent() {
		if err := t.detach(n); err != nil {
			return err
		}
	}

	if n.Container != nil {
		for _, childID := range n.Container.Children {
			if _, ok := t.store.get(childID); !ok {
				panic(&StoreCorruptionError{Container: id, Child: childID})
			}
		}
		for _, childID := range n.Container.Children {
			if err := t.destroy(childID, false); err != nil {
				// Children were verified above and the root is never a child.
				panic(&StoreCorruptionError{Container: id, Child: childID})
			}
		}
	}

	t.store.delete(id)
	for _, fn := range t.onDestroyed {
		fn(id)
	}
	debugf("Tree.Destroy: removed %s", id.Short())
	return nil
}

// Detach removes a node from its parent without destroying it. The node keeps
// its subtree and can be attached elsewhere.
func (t *Tree) Detach(id ID) error {
	n, err := t.store.require(id)
	if err != nil {
		return t.finish("detach", id, err)
	}
	if !n.HasParent() {
		return t.finish("detach", id, &NoParentError{ID: id})
	}
	err = t.detach(n)
	if err == nil {
		n.Fraction = 0
	}
	return t.finish("detach", id, err)
}

// detach unlinks n from its parent and rebalances the siblings left behind.
func (t *Tree) detach(n *Node) error {
	parent, err := t.store.require(n.Parent)
	if err != nil {
		return err
	}
	c := parent.Container
	idx := c.remove(n.ID)
	if idx < 0 {
		panic(&StoreCorruptionError{Container: parent.ID, Child: n.ID})
	}
	if c.Layout == LayoutTabs && c.Active > idx {
		c.Active--
	}
	c.clampActive()
	n.Parent = ID{}
	return t.redistributeChildren(parent)
}

// SetFractionOfParent sets a node's own share of its parent and rescales the
// other siblings so the container still sums to one.
func (t *Tree) SetFractionOfParent(id ID, fraction float64) error {
	n, err := t.store.require(id)
	if err != nil {
		return t.finish("set_fraction", id, err)
	}
	n.Fraction = clampFraction(fraction)
	if n.HasParent() {
		parent, err := t.store.require(n.Parent)
		if err != nil {
			return t.finish("set_fraction", id, err)
		}
		err = t.redistributeChildren(parent, id)
		return t.finish("set_fraction", id, err)
	}
	return t.finish("set_fraction", id, nil)
}

// SetFractionsOfParent sets several children of one container at once. The
// updated children are held fixed while the remaining ones are rescaled, so
// a pair of neighbours can trade space without touching anything else.
// Nothing changes when the requested fractions add up to more than one.
func (t *Tree) SetFractionsOfParent(parentID ID, fractions map[ID]float64) error {
	parent, err := t.requireContainer(parentID)
	if err != nil {
		return t.finish("set_fractions", parentID, err)
	}
	nodes := make(map[ID]*Node, len(fractions))
	total := 0.0
	for id, f := range fractions {
		if parent.Container.indexOf(id) < 0 {
			return t.finish("set_fractions", parentID, &NotFoundError{ID: id, Chain: []ID{parentID}})
		}
		n, err := t.store.require(id, parentID)
		if err != nil {
			return t.finish("set_fractions", parentID, err)
		}
		nodes[id] = n
		total += clampFraction(f)
	}
	if total > 1+t.tolerance {
		return t.finish("set_fractions", parentID, &FractionOverflowError{Parent: parentID, Sum: total})
	}
	fixed := make([]ID, 0, len(nodes))
	for id, n := range nodes {
		n.Fraction = clampFraction(fractions[id])
		fixed = append(fixed, id)
	}
	return t.finish("set_fractions", parentID, t.redistributeChildren(parent, fixed...))
}

// SelectTab sets the active tab of a tabs container. The index is clamped to
// the current children; a negative index clears the selection.
func (t *Tree) SelectTab(id ID, index int) error {
	n, err := t.requireContainer(id)
	if err != nil {
		return t.finish("select_tab", id, err)
	}
	if !n.IsTabs() {
		return t.finish("select_tab", id, &NotTabsError{ID: id})
	}
	c := n.Container
	switch {
	case len(c.Children) == 0 || index < 0:
		c.Active = NoActive
	case index >= len(c.Children):
		c.Active = len(c.Children) - 1
	default:
		c.Active = index
	}
	debugf("Tree.SelectTab: %s active=%d", id.Short(), c.Active)
	return t.finish("select_tab", id, nil)
}

// Reparent moves an attached node under a new parent at index (negative
// appends). The node takes a fair share at its destination.
func (t *Tree) Reparent(id, newParent ID, index int) error {
	n, err := t.store.require(id)
	if err != nil {
		return t.finish("reparent", id, err)
	}
	if !n.HasParent() {
		return t.finish("reparent", id, &NoParentError{ID: id})
	}
	dest, err := t.requireContainer(newParent)
	if err != nil {
		return t.finish("reparent", id, err)
	}
	if dest.IsTabs() && id.IsContainer() {
		return t.finish("reparent", id, &TabsRejectContainerError{AddingTo: newParent, Child: id})
	}
	if err := t.checkAcyclic(id, newParent); err != nil {
		return t.finish("reparent", id, err)
	}
	if err := t.detach(n); err != nil {
		return t.finish("reparent", id, err)
	}
	n.Fraction = 0
	return t.finish("reparent", id, t.insertChild(newParent, id, index))
}

// ReplaceWith puts replacement in the slot occupied by toReplace, taking over
// its fraction. toReplace ends up detached; replacement is detached from its
// own parent first if it has one.
func (t *Tree) ReplaceWith(toReplace, replacement ID) error {
	return t.finish("replace", toReplace, t.replaceWith(toReplace, replacement))
}

func (t *Tree) replaceWith(toReplace, replacement ID) error {
	old, err := t.store.require(toReplace)
	if err != nil {
		return err
	}
	repl, err := t.store.require(replacement)
	if err != nil {
		return err
	}
	if toReplace == replacement {
		return nil
	}
	if replacement == t.root {
		return ErrCannotAttachRoot
	}
	if !old.HasParent() {
		return &NoParentError{ID: toReplace}
	}
	parent, err := t.store.require(old.Parent)
	if err != nil {
		return err
	}
	if parent.IsTabs() && replacement.IsContainer() {
		return &TabsRejectContainerError{AddingTo: parent.ID, Child: replacement}
	}
	if err := t.checkAcyclic(replacement, parent.ID); err != nil {
		return err
	}

	if repl.HasParent() {
		if err := t.detach(repl); err != nil {
			return err
		}
	}

	idx := parent.Container.indexOf(toReplace)
	if idx < 0 {
		panic(&StoreCorruptionError{Container: parent.ID, Child: toReplace})
	}
	parent.Container.Children[idx] = replacement
	repl.Fraction = old.Fraction
	repl.Parent = parent.ID
	old.Fraction = 0
	old.Parent = ID{}
	debugf("Tree.ReplaceWith: %s replaced by %s in %s", toReplace.Short(), replacement.Short(), parent.ID.Short())
	return nil
}

// PromoteToContainer wraps an attached node in a new container that takes
// over its slot. The node becomes the container's only child.
func (t *Tree) PromoteToContainer(id ID, props ContainerProps) (ID, error) {
	wrapper, err := t.promote(id, props)
	if err != nil {
		return ID{}, t.finish("promote", id, err)
	}
	return wrapper, t.finish("promote", wrapper, nil)
}

func (t *Tree) promote(id ID, props ContainerProps) (ID, error) {
	if _, err := t.store.require(id); err != nil {
		return ID{}, err
	}
	if props.Layout == LayoutTabs && id.IsContainer() {
		return ID{}, &TabsRejectContainerError{Child: id}
	}
	wrapper := t.createContainer(props)
	if err := t.replaceWith(id, wrapper); err != nil {
		t.store.delete(wrapper)
		return ID{}, err
	}
	if err := t.insertChild(wrapper, id, -1); err != nil {
		panic(fmt.Sprintf("dock: promoted node %s still attached after replace: %v", id, err))
	}
	return wrapper, nil
}

// CollapseUnary replaces a non-root container holding exactly one child with
// that child. It reports whether anything was collapsed.
func (t *Tree) CollapseUnary(id ID) (bool, error) {
	n, err := t.requireContainer(id)
	if err != nil {
		return false, t.finish("collapse", id, err)
	}
	if id == t.root || !n.HasParent() || len(n.Container.Children) != 1 {
		return false, nil
	}
	only := n.Container.Children[0]
	parent, err := t.store.require(n.Parent)
	if err != nil {
		return false, t.finish("collapse", id, err)
	}
	if parent.IsTabs() && only.IsContainer() {
		return false, nil
	}
	child, err := t.store.require(only, id)
	if err != nil {
		return false, t.finish("collapse", id, err)
	}
	n.Container.Children = nil
	child.Parent = ID{}
	if err := t.replaceWith(id, only); err != nil {
		return false, t.finish("collapse", id, err)
	}
	if err := t.destroy(id, false); err != nil {
		return false, t.finish("collapse", id, err)
	}
	return true, t.finish("collapse", only, nil)
}

// redistributeChildren restores the sum-to-one invariant of parent, holding
// the excluded children fixed. When the fixed children alone cannot sum to one
// every child is scaled instead.
func (t *Tree) redistributeChildren(parent *Node, exclude ...ID) error {
	c := parent.Container
	if c == nil || len(c.Children) == 0 {
		return nil
	}
	nodes := make([]*Node, len(c.Children))
	fractions := make([]float64, len(c.Children))
	fixed := make([]bool, len(c.Children))
	for i, id := range c.Children {
		n, err := t.store.require(id, parent.ID)
		if err != nil {
			return err
		}
		nodes[i] = n
		fractions[i] = n.Fraction
		for _, ex := range exclude {
			if ex == id {
				fixed[i] = true
				break
			}
		}
	}
	out := Redistribute(fractions, fixed)
	if !sumsToOne(out, t.tolerance) {
		// Nothing was adjustable or the fixed set overflowed.
		out = normalize(out)
	}
	for i, f := range out {
		nodes[i].Fraction = f
	}
	return nil
}

// foldDriftInto forces the children of parent to sum to one by adjusting the last child.
func (t *Tree) foldDriftInto(parent *Node) {
	c := parent.Container
	if len(c.Children) == 0 {
		return
	}
	total := 0.0
	for _, id := range c.Children {
		total += t.store.nodes[id].Fraction
	}
	if drift := 1 - total; math.Abs(drift) > driftEpsilon {
		last := t.store.nodes[c.Children[len(c.Children)-1]]
		last.Fraction = clampFraction(last.Fraction + drift)
	}
}

func (t *Tree) requireLeaf(id ID) (*Node, error) {
	n, err := t.store.require(id)
	if err != nil {
		return nil, err
	}
	if n.Leaf == nil {
		return nil, &NotLeafError{ID: id}
	}
	return n, nil
}

func (t *Tree) requireContainer(id ID) (*Node, error) {
	n, err := t.store.require(id)
	if err != nil {
		return nil, err
	}
	if n.Container == nil {
		return nil, &NotContainerError{ID: id}
	}
	return n, nil
}

// Walk visits the attached nodes depth first, parents before children.
// Returning false from fn skips the node's subtree.
func (t *Tree) Walk(fn func(Node) bool) {
	t.walk(t.root, fn)
}

func (t *Tree) walk(id ID, fn func(Node) bool) {
	n, ok := t.store.get(id)
	if !ok {
		return
	}
	if !fn(n.clone()) || n.Container == nil {
		return
	}
	for _, child := range append([]ID(nil), n.Container.Children...) {
		t.walk(child, fn)
	}
}

// Leaves returns the attached leaves in display order.
func (t *Tree) Leaves() []ID {
	var out []ID
	t.Walk(func(n Node) bool {
		if n.Leaf != nil {
			out = append(out, n.ID)
		}
		return true
	})
	return out
}

// Validate checks every structural invariant and reports the first violation.
func (t *Tree) Validate() error {
	root, ok := t.store.get(t.root)
	if !ok {
		return fmt.Errorf("dock: invariant: root %s missing", t.root)
	}
	if root.HasParent() {
		return fmt.Errorf("dock: invariant: root %s has parent %s", t.root, root.Parent)
	}
	for _, id := range t.store.ids() {
		n := t.store.nodes[id]
		if (n.Container != nil) != id.IsContainer() || (n.Leaf != nil) != id.IsLeaf() {
			return fmt.Errorf("dock: invariant: node %s body does not match its kind", id)
		}
		if n.HasParent() {
			parent, ok := t.store.get(n.Parent)
			if !ok || parent.Container == nil {
				return fmt.Errorf("dock: invariant: node %s names missing parent %s", id, n.Parent)
			}
			count := 0
			for _, c := range parent.Container.Children {
				if c == id {
					count++
				}
			}
			if count != 1 {
				return fmt.Errorf("dock: invariant: node %s listed %d times by parent %s", id, count, n.Parent)
			}
			if _, err := t.Ancestors(id); err != nil {
				return fmt.Errorf("dock: invariant: broken ancestry for %s: %w", id, err)
			}
			if err := t.checkAcyclic(id, n.Parent); err != nil {
				return fmt.Errorf("dock: invariant: %w", err)
			}
		}
		if n.Container == nil {
			continue
		}
		c := n.Container
		fractions := make([]float64, 0, len(c.Children))
		for _, childID := range c.Children {
			child, ok := t.store.get(childID)
			if !ok {
				return fmt.Errorf("dock: invariant: container %s lists missing child %s", id, childID)
			}
			if child.Parent != id {
				return fmt.Errorf("dock: invariant: child %s of %s names parent %s", childID, id, child.Parent)
			}
			if c.Layout == LayoutTabs && child.Container != nil {
				return fmt.Errorf("dock: invariant: tabs %s holds container %s", id, childID)
			}
			fractions = append(fractions, child.Fraction)
		}
		if len(fractions) > 0 && !sumsToOne(fractions, t.tolerance) {
			return fmt.Errorf("dock: invariant: children of %s sum to %v", id, sum(fractions))
		}
		if c.Active != NoActive && (c.Active < 0 || c.Active >= len(c.Children)) {
			return fmt.Errorf("dock: invariant: tabs %s active %d out of range [0,%d)", id, c.Active, len(c.Children))
		}
	}
	return nil
}

func sum(fs []float64) float64 {
	total := 0.0
	for _, f := range fs {
		total += f
	}
	return total
}

// finish records the outcome of a public operation and notifies listeners on success.
func (t *Tree) finish(op string, id ID, err error) error {
	recordTreeOp(op, err)
	if err != nil {
		debugf("Tree.%s: %s failed: %v", op, id.Short(), err)
		return err
	}
	t.changed(op, id)
	return nil
}

func (t *Tree) changed(op string, id ID) {
	for _, fn := range t.onChange {
		fn(op, id)
	}
}

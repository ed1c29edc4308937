// Copyright © 2025 Texelation contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
//
// File: dock/workspace.go
// Summary: Composition root: a primary tree plus left, right and bottom sidebars.
// Usage: The shell owns one Workspace; renderers subscribe to its events and read
// its trees, drag adapters obtain resizers from it.

package dock

import (
	"fmt"
	"log"

	"github.com/framegrace/texeldock/config"
)

// Side names a docked sidebar.
type Side int

const (
	SideLeft Side = iota
	SideRight
	SideBottom
)

// Sides lists every sidebar in display order.
var Sides = []Side{SideLeft, SideRight, SideBottom}

func (s Side) String() string {
	switch s {
	case SideLeft:
		return "left"
	case SideRight:
		return "right"
	case SideBottom:
		return "bottom"
	default:
		return fmt.Sprintf("side(%d)", int(s))
	}
}

// Slot returns the workspace slot holding this sidebar's tree.
func (s Side) Slot() Slot { return Slot(s) + SlotLeft }

// Axis is the direction the sidebar is resized along.
func (s Side) Axis() Axis {
	if s == SideBottom {
		return AxisVertical
	}
	return AxisHorizontal
}

// DragSign is the sign of a sidebar's resize handle. The handle sits on the
// sidebar's inner edge, so the left sidebar grows with positive motion while
// the right and bottom ones grow with negative motion.
func (s Side) DragSign() Sign {
	if s == SideLeft {
		return SignPositive
	}
	return SignNegative
}

// Slot names one of the workspace trees.
type Slot int

const (
	SlotRoot Slot = iota
	SlotLeft
	SlotRight
	SlotBottom
)

func (s Slot) String() string {
	if s == SlotRoot {
		return "root"
	}
	return Side(s - SlotLeft).String()
}

// Sidebar is one docked tree with its enabled flag and size relative to the window.
type Sidebar struct {
	Enabled bool
	Size    float64
	Tree    *Tree
}

// SidebarSettings holds the initial state of a sidebar.
type SidebarSettings struct {
	Enabled bool
	Size    float64
}

// Settings are the workspace knobs read from configuration.
type Settings struct {
	ResizeMargin float64
	SumTolerance float64
	RootAxis     Axis
	Sidebars     [3]SidebarSettings
}

// DefaultSettings returns the built-in workspace settings.
func DefaultSettings() Settings {
	return Settings{
		ResizeMargin: DefaultResizeMargin,
		SumTolerance: DefaultSumTolerance,
		RootAxis:     AxisHorizontal,
		Sidebars: [3]SidebarSettings{
			{Enabled: true, Size: 0.25},
			{Enabled: true, Size: 0.25},
			{Enabled: true, Size: 0.25},
		},
	}
}

// SettingsFromConfig reads the "layout" and "sidebars" sections of cfg.
func SettingsFromConfig(cfg config.Config) Settings {
	s := DefaultSettings()
	if cfg == nil {
		return s
	}
	layout := cfg.Layout()
	s.ResizeMargin = layout.ResizeMargin
	s.SumTolerance = layout.SumTolerance
	if layout.RootAxis == "vertical" {
		s.RootAxis = AxisVertical
	}
	for _, side := range Sides {
		sb := cfg.Sidebar(side.String())
		s.Sidebars[side] = SidebarSettings{Enabled: sb.Enabled, Size: sb.Size}
	}
	return s
}

// StoreSidebars writes the current enabled state and size of every sidebar
// into cfg, e.g. inside config.Update before exit.
func (w *Workspace) StoreSidebars(cfg config.Config) {
	for _, side := range Sides {
		sb := w.sidebars[side]
		cfg.SetSidebar(side.String(), config.Sidebar{Enabled: sb.Enabled, Size: sb.Size})
	}
}

// Workspace owns the primary tree, the three sidebars, the leaf content
// registry and the history batch counter.
type Workspace struct {
	settings   Settings
	root       *Tree
	sidebars   [3]*Sidebar
	history    *History
	registry   *Registry
	dispatcher *EventDispatcher
}

// NewWorkspace creates a workspace with empty trees.
func NewWorkspace(settings Settings) *Workspace {
	w := &Workspace{
		settings:   settings,
		root:       NewTree(WithRootAxis(settings.RootAxis), WithSumTolerance(settings.SumTolerance)),
		history:    NewHistory(nil),
		registry:   NewRegistry(),
		dispatcher: NewEventDispatcher(),
	}
	w.watchTree(SlotRoot, w.root)
	for _, side := range Sides {
		st := settings.Sidebars[side]
		tree := NewTree(WithRootAxis(side.Axis().Cross()), WithRootEdgeDrop(AllEdges()), WithSumTolerance(settings.SumTolerance))
		w.sidebars[side] = &Sidebar{Enabled: st.Enabled, Size: clampFraction(st.Size), Tree: tree}
		w.watchTree(side.Slot(), tree)
	}
	log.Printf("Workspace: created (margin=%.2f left=%.2f right=%.2f bottom=%.2f)",
		settings.ResizeMargin, w.sidebars[SideLeft].Size, w.sidebars[SideRight].Size, w.sidebars[SideBottom].Size)
	return w
}

func (w *Workspace) watchTree(slot Slot, t *Tree) {
	t.OnChange(func(op string, id ID) {
		typ := EventTreeChanged
		if op == "select_tab" {
			typ = EventTabSelected
		}
		w.dispatcher.Broadcast(Event{Type: typ, Payload: TreePayload{Slot: slot, Op: op, ID: id}})
	})
	t.OnDestroyed(func(id ID) {
		if id.IsLeaf() {
			w.registry.Forget(id)
		}
	})
}

// Root returns the primary tree.
func (w *Workspace) Root() *Tree { return w.root }

// Settings returns the settings the workspace was created with.
func (w *Workspace) Settings() Settings { return w.settings }

// History returns the batch counter shared by every tree of the workspace.
func (w *Workspace) History() *History { return w.history }

// Registry returns the leaf content registry.
func (w *Workspace) Registry() *Registry { return w.registry }

// Subscribe registers a listener for workspace events.
func (w *Workspace) Subscribe(l Listener) { w.dispatcher.Subscribe(l) }

// Unsubscribe removes a listener.
func (w *Workspace) Unsubscribe(l Listener) { w.dispatcher.Unsubscribe(l) }

// Sidebar returns a copy of a sidebar's state.
func (w *Workspace) Sidebar(side Side) Sidebar {
	return *w.sidebar(side)
}

func (w *Workspace) sidebar(side Side) *Sidebar {
	if side < SideLeft || side > SideBottom {
		panic(fmt.Sprintf("dock: unknown sidebar %d", int(side)))
	}
	return w.sidebars[side]
}

// Tree returns the tree held in slot.
func (w *Workspace) Tree(slot Slot) *Tree {
	if slot == SlotRoot {
		return w.root
	}
	return w.sidebar(Side(slot - SlotLeft)).Tree
}

// Trees returns every tree with its slot, root first.
func (w *Workspace) Trees() map[Slot]*Tree {
	out := map[Slot]*Tree{SlotRoot: w.root}
	for _, side := range Sides {
		out[side.Slot()] = w.sidebars[side].Tree
	}
	return out
}

// ApplySettings updates the margin and sidebar state from reloaded settings.
// The trees are left untouched; the root axis only applies at creation.
func (w *Workspace) ApplySettings(s Settings) {
	w.settings.ResizeMargin = s.ResizeMargin
	if s.SumTolerance > 0 {
		w.settings.SumTolerance = s.SumTolerance
		for _, t := range w.Trees() {
			t.SetSumTolerance(s.SumTolerance)
		}
	}
	for _, side := range Sides {
		st := s.Sidebars[side]
		w.setSidebarEnabled(side, st.Enabled)
		if size := clampFraction(st.Size); size != w.sidebars[side].Size {
			w.SetSidebarSize(side, size)
		}
	}
	w.settings.Sidebars = s.Sidebars
}

// EnableSidebar shows a sidebar.
func (w *Workspace) EnableSidebar(side Side) { w.setSidebarEnabled(side, true) }

// DisableSidebar hides a sidebar; its tree is kept.
func (w *Workspace) DisableSidebar(side Side) { w.setSidebarEnabled(side, false) }

// ToggleSidebar flips a sidebar and returns its new enabled state.
func (w *Workspace) ToggleSidebar(side Side) bool {
	enabled := !w.sidebar(side).Enabled
	w.setSidebarEnabled(side, enabled)
	return enabled
}

func (w *Workspace) setSidebarEnabled(side Side, enabled bool) {
	sb := w.sidebar(side)
	if sb.Enabled == enabled {
		return
	}
	sb.Enabled = enabled
	w.sidebarChanged(side)
}

// SetSidebarSize sets a sidebar's share of the window, clamped to [0,1].
func (w *Workspace) SetSidebarSize(side Side, size float64) {
	sb := w.sidebar(side)
	sb.Size = clampFraction(size)
	w.sidebarChanged(side)
}

func (w *Workspace) sidebarChanged(side Side) {
	sb := w.sidebars[side]
	debugf("Workspace: sidebar %s enabled=%v size=%.3f", side, sb.Enabled, sb.Size)
	w.dispatcher.Broadcast(Event{
		Type:    EventSidebarChanged,
		Payload: SidebarPayload{Side: side, Enabled: sb.Enabled, Size: sb.Size},
	})
}

// AddTab inserts a detached leaf into a tabs container at index (negative
// appends) and makes it the active tab.
func (w *Workspace) AddTab(tree *Tree, tabs, leaf ID, index int) error {
	n, err := tree.requireContainer(tabs)
	if err != nil {
		return err
	}
	if !n.IsTabs() {
		return &NotTabsError{ID: tabs}
	}
	return tree.InsertChild(tabs, leaf, index)
}

// SelectTab changes only the active tab of a tabs container.
func (w *Workspace) SelectTab(tree *Tree, tabs ID, index int) error {
	return tree.SelectTab(tabs, index)
}

// OpenLeaf creates a leaf in parent and registers its content loader.
func (w *Workspace) OpenLeaf(tree *Tree, parent ID, props LeafProps, load Loader) (ID, error) {
	id, err := tree.CreateLeafIn(parent, props)
	if err != nil {
		return ID{}, err
	}
	if load != nil {
		if err := w.registry.Register(id, load); err != nil {
			return ID{}, err
		}
	}
	return id, nil
}

// CloseLeaf destroys a leaf and collapses its parent if only one child is left.
func (w *Workspace) CloseLeaf(tree *Tree, leaf ID) error {
	n, ok := tree.Get(leaf)
	if !ok {
		return &NotFoundError{ID: leaf}
	}
	if n.Leaf == nil {
		return &NotLeafError{ID: leaf}
	}
	if err := tree.Destroy(leaf); err != nil {
		return err
	}
	if n.HasParent() {
		if _, err := tree.CollapseUnary(n.Parent); err != nil {
			return err
		}
	}
	return nil
}

// treeOf returns the workspace tree storing id, or nil.
func (w *Workspace) treeOf(id ID) *Tree {
	if w.root.Contains(id) {
		return w.root
	}
	for _, side := range Sides {
		if t := w.sidebars[side].Tree; t.Contains(id) {
			return t
		}
	}
	return nil
}

// MoveTab moves a leaf into a tabs container at index, from any workspace
// tree. A tabs container emptied by the move is removed.
func (w *Workspace) MoveTab(leaf, tabs ID, index int) error {
	return w.drop(leaf, tabs,
		func(t *Tree) error { return t.checkMoveTab(tabs) },
		func(t *Tree) error { return t.MoveTab(leaf, tabs, index) },
	)
}

// DropIntoSplit moves a leaf, wrapped in a new tabs container, into split at
// index. It returns the new tabs container.
func (w *Workspace) DropIntoSplit(split, leaf ID, index int) (ID, error) {
	var tabs ID
	err := w.drop(leaf, split,
		func(t *Tree) error { return t.checkDropIntoSplit(split) },
		func(t *Tree) (err error) {
			tabs, err = t.DropIntoSplit(split, leaf, index)
			return err
		},
	)
	return tabs, err
}

// DropOnEdge moves a leaf onto an edge of target, splitting it. It returns
// the new tabs container holding the leaf.
func (w *Workspace) DropOnEdge(target, leaf ID, side DropSide) (ID, error) {
	var tabs ID
	err := w.drop(leaf, target,
		func(t *Tree) error { return t.checkDropOnEdge(target, side) },
		func(t *Tree) (err error) {
			tabs, err = t.DropOnEdge(target, leaf, side)
			return err
		},
	)
	return tabs, err
}

// drop validates a leaf move before touching anything, then runs it in one
// history batch. Leaves dropped into another tree keep their id and content.
func (w *Workspace) drop(leaf, target ID, check, apply func(*Tree) error) error {
	src := w.treeOf(leaf)
	if src == nil {
		return &NotFoundError{ID: leaf}
	}
	dst := w.treeOf(target)
	if dst == nil {
		return &NotFoundError{ID: target}
	}
	n, err := src.requireLeaf(leaf)
	if err != nil {
		return err
	}
	if err := check(dst); err != nil {
		return err
	}
	from := n.Parent
	return w.history.Wrap(func() error {
		if src != dst {
			if err := src.transferLeaf(dst, leaf); err != nil {
				return err
			}
		}
		if err := apply(dst); err != nil {
			return err
		}
		return w.tidy(src, from)
	})
}

// tidy removes container id if a drop left it empty, then collapses its
// parent when a single child remains.
func (w *Workspace) tidy(tree *Tree, id ID) error {
	if id.IsZero() || id == tree.Root() {
		return nil
	}
	n, ok := tree.Get(id)
	if !ok || n.ChildCount() > 0 {
		return nil
	}
	if err := tree.Destroy(id); err != nil {
		return err
	}
	if n.HasParent() {
		if _, err := tree.CollapseUnary(n.Parent); err != nil {
			return err
		}
	}
	return nil
}

// Prune forgets registry entries whose leaf is in none of the workspace trees.
func (w *Workspace) Prune() int {
	removed := 0
	for _, id := range w.registry.IDs() {
		found := false
		for _, t := range w.Trees() {
			if t.Contains(id) {
				found = true
				break
			}
		}
		if !found {
			w.registry.Forget(id)
			removed++
		}
	}
	return removed
}

// NewSplitResizer returns a resizer for the handle after child index of parent
// in tree, sharing the workspace history and margin.
func (w *Workspace) NewSplitResizer(tree *Tree, parent ID, index int) *SplitResizer {
	r := NewSplitResizer(tree, w.history, parent, index)
	r.SetMargin(w.settings.ResizeMargin)
	r.hooks = w.dragHooks(fmt.Sprintf("split:%s:%d", parent.Short(), index))
	return r
}

// NewSidebarResizer returns a resizer for a sidebar's inner edge.
func (w *Workspace) NewSidebarResizer(side Side) *SidebarResizer {
	r := NewSidebarResizer(w.history, side.Axis(), side.DragSign(),
		func() float64 { return w.sidebar(side).Size },
		func(size float64) { w.SetSidebarSize(side, size) },
	)
	r.label = "sidebar_" + side.String()
	r.SetMargin(w.settings.ResizeMargin)
	r.hooks = w.dragHooks(r.label)
	return r
}

func (w *Workspace) dragHooks(label string) dragHooks {
	return dragHooks{
		started: func() { w.dispatcher.Broadcast(Event{Type: EventDragStarted, Payload: label}) },
		ended:   func() { w.dispatcher.Broadcast(Event{Type: EventDragEnded, Payload: label}) },
	}
}

// Arrangement is the screen area given to each visible workspace tree and
// the sidebar edges that can be dragged.
type Arrangement struct {
	Areas   map[Slot]Rectangle
	Handles map[Side]Rectangle
}

// Arrange splits a window of width x height cells between the root tree and
// the enabled sidebars. Left and right sidebars span the full height; the
// bottom sidebar sits under the root tree only.
func (w *Workspace) Arrange(width, height int) Arrangement {
	out := Arrangement{Areas: make(map[Slot]Rectangle), Handles: make(map[Side]Rectangle)}
	if width <= 0 || height <= 0 {
		return out
	}
	size := func(side Side, total int) int {
		sb := w.sidebars[side]
		if !sb.Enabled {
			return 0
		}
		return int(float64(total) * sb.Size)
	}

	left := size(SideLeft, width)
	right := size(SideRight, width)
	if left+right > width {
		right = width - left
	}
	centerW := width - left - right
	bottom := size(SideBottom, height)
	if centerW <= 0 {
		bottom = 0
	}
	centerH := height - bottom

	if left > 0 {
		out.Areas[SlotLeft] = Rectangle{X: 0, Y: 0, Width: left, Height: height}
		out.Handles[SideLeft] = Rectangle{X: left - 1, Y: 0, Width: 1, Height: height}
	}
	if right > 0 {
		out.Areas[SlotRight] = Rectangle{X: width - right, Y: 0, Width: right, Height: height}
		out.Handles[SideRight] = Rectangle{X: width - right, Y: 0, Width: 1, Height: height}
	}
	if centerW > 0 {
		out.Areas[SlotRoot] = Rectangle{X: left, Y: 0, Width: centerW, Height: centerH}
		if bottom > 0 {
			out.Areas[SlotBottom] = Rectangle{X: left, Y: centerH, Width: centerW, Height: bottom}
			out.Handles[SideBottom] = Rectangle{X: left, Y: centerH, Width: centerW, Height: 1}
		}
	}
	return out
}

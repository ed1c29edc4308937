// Copyright © 2025 Texelation contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
//
// File: dock/resize.go
// Summary: Drag-resize state machines for split handles and sidebar edges.
// Usage: A pointer adapter calls Start on press, Move with the displacement since
// the press, and End (or Cancel) when the pointer session finishes.

package dock

import (
	"errors"
	"fmt"
	"log"
)

// DefaultResizeMargin is the smallest share of the parent a pane can be dragged to.
const DefaultResizeMargin = 0.05

// ErrInvalidHandle is returned when a resize handle does not sit between two
// children of a split container.
var ErrInvalidHandle = errors.New("dock: invalid resize handle")

// DragState is the phase of a resize interaction.
type DragState int

const (
	DragIdle DragState = iota
	DragDragging
)

func (s DragState) String() string {
	if s == DragDragging {
		return "dragging"
	}
	return "idle"
}

// DragDelta is the pointer displacement since the drag started, in pixels.
type DragDelta struct {
	DX, DY float64
}

// along picks the component of d that moves along axis.
func (d DragDelta) along(axis Axis) float64 {
	if axis == AxisVertical {
		return d.DY
	}
	return d.DX
}

// Sign chooses whether positive pointer motion grows or shrinks a sidebar.
type Sign int

const (
	SignPositive Sign = 1
	SignNegative Sign = -1
)

func (s Sign) String() string {
	if s == SignNegative {
		return "-"
	}
	return "+"
}

// dragHooks lets the owner observe session boundaries.
type dragHooks struct {
	started func()
	ended   func()
}

// clampRange limits v to [lo, hi]. ok is false when the range is empty.
func clampRange(v, lo, hi float64) (float64, bool) {
	if hi < lo {
		return v, false
	}
	if v < lo {
		return lo, true
	}
	if v > hi {
		return hi, true
	}
	return v, true
}

// SplitResizer drives the handle between children index and index+1 of a
// split container. It only ever trades space between those two neighbours.
type SplitResizer struct {
	tree    *Tree
	history *History
	parent  ID
	index   int
	margin  float64
	hooks   dragHooks

	state      DragState
	batch      *Batch
	axis       Axis
	current    ID
	next       ID
	parentSize float64
	startCur   float64
	startNext  float64
	lastCur    float64
	lastNext   float64
}

// NewSplitResizer returns an idle resizer for the given handle.
func NewSplitResizer(tree *Tree, history *History, parent ID, index int) *SplitResizer {
	if history == nil {
		history = NewHistory(nil)
	}
	return &SplitResizer{
		tree:    tree,
		history: history,
		parent:  parent,
		index:   index,
		margin:  DefaultResizeMargin,
	}
}

// SetMargin sets the minimum pane share as a fraction of the parent size.
func (r *SplitResizer) SetMargin(fraction float64) {
	r.margin = clampFraction(fraction)
}

// State returns the current phase.
func (r *SplitResizer) State() DragState { return r.state }

// Parent returns the container whose children this handle resizes.
func (r *SplitResizer) Parent() ID { return r.parent }

// Index returns the position of the child before the handle.
func (r *SplitResizer) Index() int { return r.index }

// Axis returns the axis of the resized container.
func (r *SplitResizer) Axis() Axis { return r.axis }

// Sizes returns the latest pixel sizes of the two neighbours.
func (r *SplitResizer) Sizes() (current, next float64) {
	return r.lastCur, r.lastNext
}

// Start snapshots the measured parent extent along the split axis and the two
// neighbours' pixel sizes, then opens a history batch.
func (r *SplitResizer) Start(parentSize float64) error {
	if r.state == DragDragging {
		return ErrDragInProgress
	}
	parent, err := r.tree.requireContainer(r.parent)
	if err != nil {
		return err
	}
	if !parent.IsSplit() {
		return fmt.Errorf("%w: %s is not a split", ErrInvalidHandle, r.parent)
	}
	children := parent.Container.Children
	if r.index < 0 || r.index+1 >= len(children) {
		return fmt.Errorf("%w: index %d with %d children", ErrInvalidHandle, r.index, len(children))
	}
	if parentSize <= 0 {
		return fmt.Errorf("%w: parent size %v", ErrInvalidHandle, parentSize)
	}
	cur, err := r.tree.store.require(children[r.index], r.parent)
	if err != nil {
		return err
	}
	next, err := r.tree.store.require(children[r.index+1], r.parent)
	if err != nil {
		return err
	}

	r.axis = parent.Container.Axis
	r.current, r.next = cur.ID, next.ID
	r.parentSize = parentSize
	r.startCur = cur.Fraction * parentSize
	r.startNext = next.Fraction * parentSize
	r.lastCur, r.lastNext = r.startCur, r.startNext
	r.batch = r.history.Begin()
	r.state = DragDragging
	recordDragSession("split")
	log.Printf("SplitResizer.Start: %s handle %d axis=%s parent=%.1fpx sizes=%.1f/%.1f",
		r.parent.Short(), r.index, r.axis, parentSize, r.startCur, r.startNext)
	if r.hooks.started != nil {
		r.hooks.started()
	}
	return nil
}

// Move applies the displacement since Start. Each neighbour is kept within
// [margin, total-margin] where total is their combined size at Start.
func (r *SplitResizer) Move(d DragDelta) error {
	if r.state != DragDragging {
		return ErrNotDragging
	}
	delta := d.along(r.axis)
	total := r.startCur + r.startNext
	margin := r.parentSize * r.margin

	newCur, ok := clampRange(r.startCur+delta, margin, total-margin)
	if !ok {
		debugf("SplitResizer.Move: neighbours too small to resize (total=%.1f margin=%.1f)", total, margin)
		return nil
	}
	newNext, _ := clampRange(r.startNext-delta, margin, total-margin)

	err := r.tree.SetFractionsOfParent(r.parent, map[ID]float64{
		r.current: newCur / r.parentSize,
		r.next:    newNext / r.parentSize,
	})
	if err != nil {
		return err
	}
	r.lastCur, r.lastNext = newCur, newNext
	debugf("SplitResizer.Move: delta=%.1f sizes=%.1f/%.1f", delta, newCur, newNext)
	return nil
}

// End finishes the session and closes the history batch.
func (r *SplitResizer) End() {
	if r.state != DragDragging {
		return
	}
	r.finish()
	log.Printf("SplitResizer.End: %s handle %d sizes=%.1f/%.1f", r.parent.Short(), r.index, r.lastCur, r.lastNext)
}

// Cancel ends an interrupted session, e.g. when the window loses focus.
// The sizes applied so far are kept; the batch is always closed.
func (r *SplitResizer) Cancel() {
	if r.state != DragDragging {
		return
	}
	r.finish()
	log.Printf("SplitResizer.Cancel: %s handle %d interrupted", r.parent.Short(), r.index)
}

func (r *SplitResizer) finish() {
	r.batch.End()
	r.batch = nil
	r.state = DragIdle
	if r.hooks.ended != nil {
		r.hooks.ended()
	}
}

// SidebarResizer drags one sidebar edge against the window dimension.
type SidebarResizer struct {
	history *History
	axis    Axis
	sign    Sign
	margin  float64
	get     func() float64
	set     func(float64)
	hooks   dragHooks
	label   string

	state      DragState
	batch      *Batch
	windowSize float64
	startSize  float64
	lastSize   float64
}

// NewSidebarResizer returns an idle resizer reading and writing a size
// fraction through get and set.
func NewSidebarResizer(history *History, axis Axis, sign Sign, get func() float64, set func(float64)) *SidebarResizer {
	if history == nil {
		history = NewHistory(nil)
	}
	return &SidebarResizer{
		history: history,
		axis:    axis,
		sign:    sign,
		margin:  DefaultResizeMargin,
		get:     get,
		set:     set,
		label:   "sidebar",
	}
}

// SetMargin sets the minimum sidebar share of the window.
func (r *SidebarResizer) SetMargin(fraction float64) {
	r.margin = clampFraction(fraction)
}

// State returns the current phase.
func (r *SidebarResizer) State() DragState { return r.state }

// Axis returns the axis the sidebar is resized along.
func (r *SidebarResizer) Axis() Axis { return r.axis }

// Sign returns the drag sign.
func (r *SidebarResizer) Sign() Sign { return r.sign }

// Size returns the latest sidebar size in pixels.
func (r *SidebarResizer) Size() float64 { return r.lastSize }

// Start snapshots the window extent and the sidebar's pixel size.
func (r *SidebarResizer) Start(windowSize float64) error {
	if r.state == DragDragging {
		return ErrDragInProgress
	}
	if windowSize <= 0 {
		return fmt.Errorf("%w: window size %v", ErrInvalidHandle, windowSize)
	}
	r.windowSize = windowSize
	r.startSize = r.get() * windowSize
	r.lastSize = r.startSize
	r.batch = r.history.Begin()
	r.state = DragDragging
	recordDragSession(r.label)
	log.Printf("SidebarResizer.Start: %s axis=%s sign=%s window=%.1fpx size=%.1f", r.label, r.axis, r.sign, windowSize, r.startSize)
	if r.hooks.started != nil {
		r.hooks.started()
	}
	return nil
}

// Move applies the displacement since Start, clamped to
// [margin, window-margin].
func (r *SidebarResizer) Move(d DragDelta) error {
	if r.state != DragDragging {
		return ErrNotDragging
	}
	delta := d.along(r.axis) * float64(r.sign)
	margin := r.windowSize * r.margin
	size, ok := clampRange(r.startSize+delta, margin, r.windowSize-margin)
	if !ok {
		return nil
	}
	r.set(size / r.windowSize)
	r.lastSize = size
	debugf("SidebarResizer.Move: %s delta=%.1f size=%.1f", r.label, delta, size)
	return nil
}

// End finishes the session and closes the history batch.
func (r *SidebarResizer) End() {
	if r.state != DragDragging {
		return
	}
	r.finish()
	log.Printf("SidebarResizer.End: %s size=%.1f", r.label, r.lastSize)
}

// Cancel ends an interrupted session, keeping the size reached so far.
func (r *SidebarResizer) Cancel() {
	if r.state != DragDragging {
		return
	}
	r.finish()
	log.Printf("SidebarResizer.Cancel: %s interrupted", r.label)
}

func (r *SidebarResizer) finish() {
	r.batch.End()
	r.batch = nil
	r.state = DragIdle
	if r.hooks.ended != nil {
		r.hooks.ended()
	}
}

// Resizer is the common shape of both state machines, as seen by a pointer adapter.
type Resizer interface {
	Start(size float64) error
	Move(d DragDelta) error
	End()
	Cancel()
	State() DragState
	Axis() Axis
}

var (
	_ Resizer = (*SplitResizer)(nil)
	_ Resizer = (*SidebarResizer)(nil)
)

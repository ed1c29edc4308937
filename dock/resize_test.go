// Copyright © 2025 Texelation contributors
// SPDX-License-Identifier: AGPL-3.0-or-later

package dock

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func splitWithLeaves(t *testing.T, n int) (*Tree, []ID) {
	t.Helper()
	tree := NewTree()
	return tree, addLeaves(t, tree, tree.Root(), n)
}

func TestSplitResizerMoves(t *testing.T) {
	tree, _ := splitWithLeaves(t, 2)
	h := NewHistory(nil)
	r := NewSplitResizer(tree, h, tree.Root(), 0)

	require.NoError(t, r.Start(200))
	assert.Equal(t, DragDragging, r.State())
	assert.Equal(t, AxisHorizontal, r.Axis())
	assert.True(t, h.Open())

	require.NoError(t, r.Move(DragDelta{DX: 40, DY: 999}))
	got := fractionsOf(t, tree, tree.Root())
	assert.InDelta(t, 0.7, got[0], 1e-9)
	assert.InDelta(t, 0.3, got[1], 1e-9)
	cur, next := r.Sizes()
	assert.InDelta(t, 140, cur, 1e-9)
	assert.InDelta(t, 60, next, 1e-9)

	// Moves are relative to the press, not cumulative.
	require.NoError(t, r.Move(DragDelta{DX: -20}))
	got = fractionsOf(t, tree, tree.Root())
	assert.InDelta(t, 0.4, got[0], 1e-9)

	r.End()
	assert.Equal(t, DragIdle, r.State())
	assert.False(t, h.Open())
	mustValidate(t, tree)
}

func TestSplitResizerClampsToMargin(t *testing.T) {
	tree, _ := splitWithLeaves(t, 2)
	r := NewSplitResizer(tree, nil, tree.Root(), 0)
	require.NoError(t, r.Start(100))

	require.NoError(t, r.Move(DragDelta{DX: 80}))
	got := fractionsOf(t, tree, tree.Root())
	assert.InDelta(t, 0.95, got[0], 1e-9)
	assert.InDelta(t, 0.05, got[1], 1e-9)

	require.NoError(t, r.Move(DragDelta{DX: -500}))
	got = fractionsOf(t, tree, tree.Root())
	assert.InDelta(t, 0.05, got[0], 1e-9)
	assert.InDelta(t, 0.95, got[1], 1e-9)
	r.End()
}

func TestSplitResizerVerticalReadsDY(t *testing.T) {
	tree := NewTree(WithRootAxis(AxisVertical))
	addLeaves(t, tree, tree.Root(), 2)
	r := NewSplitResizer(tree, nil, tree.Root(), 0)
	require.NoError(t, r.Start(100))
	require.NoError(t, r.Move(DragDelta{DX: 30, DY: 10}))
	got := fractionsOf(t, tree, tree.Root())
	assert.InDelta(t, 0.6, got[0], 1e-9)
	r.End()
}

func TestSplitResizerOnlyTouchesNeighbours(t *testing.T) {
	tree, _ := splitWithLeaves(t, 4)
	r := NewSplitResizer(tree, nil, tree.Root(), 1)
	require.NoError(t, r.Start(400))
	require.NoError(t, r.Move(DragDelta{DX: 50}))
	got := fractionsOf(t, tree, tree.Root())
	assert.InDelta(t, 0.25, got[0], 1e-9)
	assert.InDelta(t, 0.375, got[1], 1e-9)
	assert.InDelta(t, 0.125, got[2], 1e-9)
	assert.InDelta(t, 0.25, got[3], 1e-9)
	r.End()
	mustValidate(t, tree)
}

func TestSplitResizerTooSmallSkipsMove(t *testing.T) {
	tree, ids := splitWithLeaves(t, 3)
	require.NoError(t, tree.SetFractionsOfParent(tree.Root(), map[ID]float64{ids[0]: 0.04, ids[1]: 0.04, ids[2]: 0.92}))
	r := NewSplitResizer(tree, nil, tree.Root(), 0)
	require.NoError(t, r.Start(100))
	require.NoError(t, r.Move(DragDelta{DX: 3}))
	got := fractionsOf(t, tree, tree.Root())
	assert.InDelta(t, 0.04, got[0], 1e-9)
	assert.InDelta(t, 0.04, got[1], 1e-9)
	r.End()
}

func TestSplitResizerStateErrors(t *testing.T) {
	tree, ids := splitWithLeaves(t, 2)
	r := NewSplitResizer(tree, nil, tree.Root(), 0)
	assert.ErrorIs(t, r.Move(DragDelta{DX: 1}), ErrNotDragging)
	assert.NotPanics(t, r.End)

	require.NoError(t, r.Start(100))
	assert.ErrorIs(t, r.Start(100), ErrDragInProgress)
	r.Cancel()

	assert.ErrorIs(t, NewSplitResizer(tree, nil, tree.Root(), 1).Start(100), ErrInvalidHandle)
	assert.ErrorIs(t, NewSplitResizer(tree, nil, tree.Root(), 0).Start(0), ErrInvalidHandle)

	var notCont *NotContainerError
	assert.ErrorAs(t, NewSplitResizer(tree, nil, ids[0], 0).Start(100), &notCont)

	tabs, err := tree.CreateContainerIn(tree.Root(), ContainerProps{Layout: LayoutTabs})
	require.NoError(t, err)
	addLeaves(t, tree, tabs, 2)
	assert.ErrorIs(t, NewSplitResizer(tree, nil, tabs, 0).Start(100), ErrInvalidHandle)
}

func TestSplitResizerCancelClosesBatch(t *testing.T) {
	tree, _ := splitWithLeaves(t, 2)
	sink := &countingSink{}
	h := NewHistory(sink)
	r := NewSplitResizer(tree, h, tree.Root(), 0)
	require.NoError(t, r.Start(100))
	require.NoError(t, r.Move(DragDelta{DX: 10}))
	r.Cancel()

	assert.Equal(t, DragIdle, r.State())
	assert.Equal(t, 0, h.Depth())
	assert.Equal(t, 1, sink.opened)
	assert.Equal(t, 1, sink.closed)
	got := fractionsOf(t, tree, tree.Root())
	assert.InDelta(t, 0.6, got[0], 1e-9, "sizes reached before the cancel are kept")
}

func TestSidebarResizerSigns(t *testing.T) {
	cases := []struct {
		name  string
		axis  Axis
		sign  Sign
		delta DragDelta
		want  float64
	}{
		{"left grows rightwards", AxisHorizontal, SignPositive, DragDelta{DX: 30}, 0.4},
		{"right grows leftwards", AxisHorizontal, SignNegative, DragDelta{DX: -30}, 0.4},
		{"bottom grows upwards", AxisVertical, SignNegative, DragDelta{DY: -30, DX: 100}, 0.4},
		{"clamped high", AxisHorizontal, SignPositive, DragDelta{DX: 1000}, 0.95},
		{"clamped low", AxisHorizontal, SignNegative, DragDelta{DX: 1000}, 0.05},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			size := 0.25
			h := NewHistory(nil)
			r := NewSidebarResizer(h, tc.axis, tc.sign, func() float64 { return size }, func(f float64) { size = f })
			require.NoError(t, r.Start(200))
			require.NoError(t, r.Move(tc.delta))
			assert.InDelta(t, tc.want, size, 1e-9)
			r.End()
			assert.False(t, h.Open())
		})
	}
}

func TestSidebarResizerStateErrors(t *testing.T) {
	size := 0.25
	r := NewSidebarResizer(nil, AxisHorizontal, SignPositive, func() float64 { return size }, func(f float64) { size = f })
	assert.ErrorIs(t, r.Move(DragDelta{DX: 1}), ErrNotDragging)
	assert.ErrorIs(t, r.Start(-1), ErrInvalidHandle)
	require.NoError(t, r.Start(100))
	assert.ErrorIs(t, r.Start(100), ErrDragInProgress)
	r.Cancel()
	assert.Equal(t, DragIdle, r.State())
}

func TestClampRange(t *testing.T) {
	v, ok := clampRange(5, 0, 10)
	assert.True(t, ok)
	assert.Equal(t, 5.0, v)
	v, ok = clampRange(-1, 0, 10)
	assert.True(t, ok)
	assert.Equal(t, 0.0, v)
	_, ok = clampRange(5, 10, 0)
	assert.False(t, ok)
}

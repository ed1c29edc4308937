// Copyright © 2025 Texelation contributors
// SPDX-License-Identifier: AGPL-3.0-or-later

package dock

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// tabsWith creates a tabs container in parent holding n new leaves.
func tabsWith(t *testing.T, tree *Tree, parent ID, n int) (ID, []ID) {
	t.Helper()
	tabs, err := tree.CreateContainerIn(parent, ContainerProps{Layout: LayoutTabs})
	require.NoError(t, err)
	return tabs, addLeaves(t, tree, tabs, n)
}

func childrenOf(t *testing.T, tree *Tree, id ID) []ID {
	t.Helper()
	n, ok := tree.Get(id)
	require.True(t, ok)
	require.NotNil(t, n.Container)
	return n.Container.Children
}

func TestMoveTabBetweenTabs(t *testing.T) {
	tree := NewTree()
	root := tree.Root()
	left, a := tabsWith(t, tree, root, 2)
	right, b := tabsWith(t, tree, root, 1)

	require.NoError(t, tree.MoveTab(a[0], right, 0))
	assert.Equal(t, []ID{a[0], b[0]}, childrenOf(t, tree, right))
	assert.Equal(t, []ID{a[1]}, childrenOf(t, tree, left))
	n, _ := tree.Get(right)
	assert.Equal(t, 0, n.Container.Active)
	n, _ = tree.Get(left)
	assert.Equal(t, 0, n.Container.Active)
	mustValidate(t, tree)

	var notTabs *NotTabsError
	assert.ErrorAs(t, tree.MoveTab(a[1], root, -1), &notTabs)
	var notLeaf *NotLeafError
	assert.ErrorAs(t, tree.MoveTab(left, right, -1), &notLeaf)
	assert.Equal(t, []ID{a[1]}, childrenOf(t, tree, left), "failed move leaves the tab in place")
	mustValidate(t, tree)
}

func TestMoveTabReordersWithinTabs(t *testing.T) {
	tree := NewTree()
	tabs, ids := tabsWith(t, tree, tree.Root(), 3)
	require.NoError(t, tree.MoveTab(ids[0], tabs, -1))
	assert.Equal(t, []ID{ids[1], ids[2], ids[0]}, childrenOf(t, tree, tabs))
	n, _ := tree.Get(tabs)
	assert.Equal(t, 2, n.Container.Active)
	mustValidate(t, tree)
}

func TestDropIntoSplitWrapsLeafInTabs(t *testing.T) {
	tree := NewTree()
	root := tree.Root()
	tabs, ids := tabsWith(t, tree, root, 2)

	added, err := tree.DropIntoSplit(root, ids[1], 0)
	require.NoError(t, err)
	assert.Equal(t, []ID{added, tabs}, childrenOf(t, tree, root))
	assert.Equal(t, []ID{ids[1]}, childrenOf(t, tree, added))
	n, _ := tree.Get(added)
	assert.True(t, n.IsTabs())
	assert.Equal(t, 0, n.Container.Active)
	assert.InDelta(t, 0.5, n.Fraction, 1e-9)
	mustValidate(t, tree)

	var notSplit *NotSplitError
	_, err = tree.DropIntoSplit(tabs, ids[0], 0)
	assert.ErrorAs(t, err, &notSplit)
	mustValidate(t, tree)
}

func TestDropOnEdgeNestsAcrossAxis(t *testing.T) {
	tree := NewTree()
	root := tree.Root()
	target, ids := tabsWith(t, tree, root, 2)
	other := addLeaves(t, tree, root, 1)[0]

	added, err := tree.DropOnEdge(target, ids[0], DropTop)
	require.NoError(t, err)

	rootChildren := childrenOf(t, tree, root)
	require.Len(t, rootChildren, 2)
	assert.Equal(t, other, rootChildren[1])
	wrapper, _ := tree.Get(rootChildren[0])
	require.True(t, wrapper.IsSplit())
	assert.Equal(t, AxisVertical, wrapper.Container.Axis)
	assert.InDelta(t, 0.5, wrapper.Fraction, 1e-9)
	assert.Equal(t, []ID{added, target}, wrapper.Container.Children, "top drops go first")
	assert.Equal(t, []ID{ids[0]}, childrenOf(t, tree, added))
	mustValidate(t, tree)

	below, err := tree.DropOnEdge(target, ids[1], DropBottom)
	require.NoError(t, err)
	assert.Equal(t, []ID{added, target, below}, childrenOf(t, tree, wrapper.ID), "same-axis split is reused")
	mustValidate(t, tree)
}

func TestDropOnEdgeJoinsParallelSplit(t *testing.T) {
	tree := NewTree()
	root := tree.Root()
	target, ids := tabsWith(t, tree, root, 2)
	other := addLeaves(t, tree, root, 1)[0]

	added, err := tree.DropOnEdge(target, ids[1], DropRight)
	require.NoError(t, err)
	assert.Equal(t, []ID{target, added, other}, childrenOf(t, tree, root))
	mustValidate(t, tree)
}

func TestDropOnEdgeRespectsEdgeDrop(t *testing.T) {
	tree := NewTree()
	root := tree.Root()
	target, err := tree.CreateContainerIn(root, ContainerProps{Layout: LayoutTabs, EdgeDrop: &EdgeDropConfig{Left: true}})
	require.NoError(t, err)
	leaf := addLeaves(t, tree, target, 1)[0]
	before := tree.Len()

	_, err = tree.DropOnEdge(target, leaf, DropBottom)
	var refused *EdgeRefusedError
	require.ErrorAs(t, err, &refused)
	assert.Equal(t, DropBottom, refused.Side)
	assert.Equal(t, before, tree.Len())
	n, _ := tree.Get(leaf)
	assert.Equal(t, target, n.Parent)

	_, err = tree.DropOnEdge(root, leaf, DropTop)
	assert.ErrorAs(t, err, &refused, "default root only accepts left and right")

	_, err = tree.DropOnEdge(target, leaf, DropLeft)
	require.NoError(t, err)
	mustValidate(t, tree)
}

func TestDropOnEdgeOfRootKeepsRootID(t *testing.T) {
	tree := NewTree(WithRootEdgeDrop(AllEdges()))
	root := tree.Root()
	target, ids := tabsWith(t, tree, root, 2)
	other := addLeaves(t, tree, root, 1)[0]

	added, err := tree.DropOnEdge(root, ids[0], DropBottom)
	require.NoError(t, err)
	assert.Equal(t, root, tree.Root())

	n, _ := tree.Get(root)
	assert.Equal(t, AxisVertical, n.Container.Axis)
	require.Len(t, n.Container.Children, 2)
	assert.Equal(t, added, n.Container.Children[1])
	inner, _ := tree.Get(n.Container.Children[0])
	assert.Equal(t, AxisHorizontal, inner.Container.Axis)
	assert.Equal(t, []ID{target, other}, inner.Container.Children)
	mustValidate(t, tree)

	left, err := tree.DropOnEdge(root, ids[1], DropLeft)
	require.NoError(t, err)
	n, _ = tree.Get(root)
	assert.Equal(t, AxisHorizontal, n.Container.Axis)
	assert.Equal(t, left, n.Container.Children[0])
	mustValidate(t, tree)
}

func TestEdgeDropConfigAccepts(t *testing.T) {
	cfg := EdgeDropConfig{Right: true, Top: true}
	assert.False(t, cfg.Accepts(DropLeft))
	assert.True(t, cfg.Accepts(DropRight))
	assert.True(t, cfg.Accepts(DropTop))
	assert.False(t, cfg.Accepts(DropBottom))
	assert.Equal(t, AxisVertical, DropTop.Axis())
	assert.Equal(t, AxisHorizontal, DropRight.Axis())
}

// Copyright © 2025 Texelation contributors
// SPDX-License-Identifier: AGPL-3.0-or-later

package dock

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/framegrace/texeldock/config"
)

func TestDefaultWorkspace(t *testing.T) {
	w := NewWorkspace(DefaultSettings())
	for _, side := range Sides {
		sb := w.Sidebar(side)
		assert.True(t, sb.Enabled, side.String())
		assert.Equal(t, 0.25, sb.Size)
		require.NotNil(t, sb.Tree)
		assert.Equal(t, sb.Tree, w.Tree(side.Slot()))
	}
	assert.Len(t, w.Trees(), 4)
	assert.Equal(t, w.Root(), w.Tree(SlotRoot))
}

func TestSettingsFromConfig(t *testing.T) {
	cfg := config.Config{
		"layout": map[string]interface{}{
			"resize_margin": 0.1,
			"root_axis":     "vertical",
		},
		"sidebars.right": map[string]interface{}{
			"enabled": false,
			"size":    1.5,
		},
	}
	s := SettingsFromConfig(cfg)
	assert.Equal(t, 0.1, s.ResizeMargin)
	assert.Equal(t, AxisVertical, s.RootAxis)
	assert.False(t, s.Sidebars[SideRight].Enabled)
	assert.Equal(t, 1.0, s.Sidebars[SideRight].Size)
	assert.True(t, s.Sidebars[SideLeft].Enabled)
	assert.Equal(t, 1e-9, s.SumTolerance)

	assert.Equal(t, DefaultSettings(), SettingsFromConfig(nil))
}

func TestStoreSidebarsRoundTrips(t *testing.T) {
	w := NewWorkspace(DefaultSettings())
	w.DisableSidebar(SideRight)
	w.SetSidebarSize(SideBottom, 0.4)

	cfg := config.Config{}
	w.StoreSidebars(cfg)
	s := SettingsFromConfig(cfg)
	assert.False(t, s.Sidebars[SideRight].Enabled)
	assert.Equal(t, 0.4, s.Sidebars[SideBottom].Size)
	assert.True(t, s.Sidebars[SideLeft].Enabled)
}

func TestSidebarToggleAndEvents(t *testing.T) {
	w := NewWorkspace(DefaultSettings())
	rec := &recorder{}
	w.Subscribe(rec)

	assert.False(t, w.ToggleSidebar(SideBottom))
	w.DisableSidebar(SideBottom)
	w.EnableSidebar(SideBottom)
	w.SetSidebarSize(SideLeft, 2)

	events := rec.ofType(EventSidebarChanged)
	require.Len(t, events, 3, "disabling an already disabled sidebar is silent")
	last := events[2].Payload.(SidebarPayload)
	assert.Equal(t, SideLeft, last.Side)
	assert.Equal(t, 1.0, last.Size)
	assert.Equal(t, 1.0, w.Sidebar(SideLeft).Size)
}

func TestWorkspaceTreeEventsCarrySlot(t *testing.T) {
	w := NewWorkspace(DefaultSettings())
	rec := &recorder{}
	w.Subscribe(rec)

	right := w.Tree(SlotRight)
	tabs, err := right.CreateContainerIn(right.Root(), ContainerProps{Layout: LayoutTabs})
	require.NoError(t, err)
	leaf := right.CreateLeaf(LeafProps{Title: "outline"})
	require.NoError(t, w.AddTab(right, tabs, leaf, -1))
	require.NoError(t, w.SelectTab(right, tabs, 0))

	changed := rec.ofType(EventTreeChanged)
	require.NotEmpty(t, changed)
	for _, e := range changed {
		assert.Equal(t, SlotRight, e.Payload.(TreePayload).Slot)
	}
	selected := rec.ofType(EventTabSelected)
	require.Len(t, selected, 1)
	assert.Equal(t, tabs, selected[0].Payload.(TreePayload).ID)

	w.Unsubscribe(rec)
	right.CreateLeaf(LeafProps{})
	assert.Len(t, rec.ofType(EventTreeChanged), len(changed))
}

func TestAddTabAtIndexActivates(t *testing.T) {
	w := NewWorkspace(DefaultSettings())
	tree := w.Root()
	tabs, err := tree.CreateContainerIn(tree.Root(), ContainerProps{Layout: LayoutTabs})
	require.NoError(t, err)
	for i := 0; i < 3; i++ {
		require.NoError(t, w.AddTab(tree, tabs, tree.CreateLeaf(LeafProps{}), -1))
	}
	leaf := tree.CreateLeaf(LeafProps{Title: "inserted"})
	require.NoError(t, w.AddTab(tree, tabs, leaf, 1))
	n, _ := tree.Get(tabs)
	assert.Equal(t, 1, n.Container.Active)
	assert.Equal(t, leaf, n.Container.Children[1])

	var notTabs *NotTabsError
	assert.ErrorAs(t, w.AddTab(tree, tree.Root(), tree.CreateLeaf(LeafProps{}), -1), &notTabs)
	mustValidate(t, tree)
}

func TestOpenCloseLeafManagesRegistry(t *testing.T) {
	w := NewWorkspace(DefaultSettings())
	tree := w.Root()
	split, err := tree.CreateContainerIn(tree.Root(), ContainerProps{Axis: AxisVertical})
	require.NoError(t, err)

	load := func() (Content, error) { return Content{Title: "x"}, nil }
	a, err := w.OpenLeaf(tree, split, LeafProps{Title: "a"}, load)
	require.NoError(t, err)
	b, err := w.OpenLeaf(tree, split, LeafProps{Title: "b"}, load)
	require.NoError(t, err)
	assert.Equal(t, 2, w.Registry().Len())

	require.NoError(t, w.CloseLeaf(tree, a))
	assert.False(t, w.Registry().Has(a))
	assert.False(t, tree.Contains(split), "single-child split collapses")
	n, _ := tree.Get(b)
	assert.Equal(t, tree.Root(), n.Parent)
	mustValidate(t, tree)

	var notFound *NotFoundError
	assert.ErrorAs(t, w.CloseLeaf(tree, a), &notFound)
}

func TestPruneDropsOrphans(t *testing.T) {
	w := NewWorkspace(DefaultSettings())
	kept, err := w.OpenLeaf(w.Root(), w.Root().Root(), LeafProps{}, func() (Content, error) { return Content{}, nil })
	require.NoError(t, err)
	orphan := NewLeafID()
	require.NoError(t, w.Registry().RegisterContent(orphan, Content{}))

	assert.Equal(t, 1, w.Prune())
	assert.True(t, w.Registry().Has(kept))
	assert.False(t, w.Registry().Has(orphan))
}

func TestWorkspaceSidebarResizer(t *testing.T) {
	w := NewWorkspace(DefaultSettings())
	rec := &recorder{}
	w.Subscribe(rec)

	r := w.NewSidebarResizer(SideRight)
	assert.Equal(t, AxisHorizontal, r.Axis())
	assert.Equal(t, SignNegative, r.Sign())
	require.NoError(t, r.Start(200))
	assert.True(t, w.History().Open())
	require.NoError(t, r.Move(DragDelta{DX: -50}))
	r.End()

	assert.InDelta(t, 0.5, w.Sidebar(SideRight).Size, 1e-9)
	assert.False(t, w.History().Open())
	assert.Len(t, rec.ofType(EventDragStarted), 1)
	assert.Len(t, rec.ofType(EventDragEnded), 1)

	bottom := w.NewSidebarResizer(SideBottom)
	assert.Equal(t, AxisVertical, bottom.Axis())
	assert.Equal(t, SignNegative, bottom.Sign())
	assert.Equal(t, SignPositive, w.NewSidebarResizer(SideLeft).Sign())
}

func TestWorkspaceSplitResizerUsesMargin(t *testing.T) {
	s := DefaultSettings()
	s.ResizeMargin = 0.2
	w := NewWorkspace(s)
	addLeaves(t, w.Root(), w.Root().Root(), 2)

	r := w.NewSplitResizer(w.Root(), w.Root().Root(), 0)
	require.NoError(t, r.Start(100))
	require.NoError(t, r.Move(DragDelta{DX: 100}))
	r.Cancel()
	got := fractionsOf(t, w.Root(), w.Root().Root())
	assert.InDelta(t, 0.8, got[0], 1e-9)
	assert.InDelta(t, 0.2, got[1], 1e-9)
}

func TestArrange(t *testing.T) {
	w := NewWorkspace(DefaultSettings())
	a := w.Arrange(100, 40)
	assert.Equal(t, Rectangle{X: 0, Y: 0, Width: 25, Height: 40}, a.Areas[SlotLeft])
	assert.Equal(t, Rectangle{X: 75, Y: 0, Width: 25, Height: 40}, a.Areas[SlotRight])
	assert.Equal(t, Rectangle{X: 25, Y: 0, Width: 50, Height: 30}, a.Areas[SlotRoot])
	assert.Equal(t, Rectangle{X: 25, Y: 30, Width: 50, Height: 10}, a.Areas[SlotBottom])
	assert.Equal(t, Rectangle{X: 24, Width: 1, Height: 40}, a.Handles[SideLeft])
	assert.Equal(t, Rectangle{X: 25, Y: 30, Width: 50, Height: 1}, a.Handles[SideBottom])

	w.DisableSidebar(SideLeft)
	w.DisableSidebar(SideBottom)
	a = w.Arrange(100, 40)
	_, hasLeft := a.Areas[SlotLeft]
	assert.False(t, hasLeft)
	assert.Equal(t, Rectangle{X: 0, Y: 0, Width: 75, Height: 40}, a.Areas[SlotRoot])
	assert.Empty(t, w.Arrange(0, 10).Areas)
}

func TestApplySettings(t *testing.T) {
	w := NewWorkspace(DefaultSettings())
	rec := &recorder{}
	w.Subscribe(rec)

	s := DefaultSettings()
	s.ResizeMargin = 0.1
	s.Sidebars[SideLeft].Enabled = false
	s.Sidebars[SideBottom].Size = 0.4
	w.ApplySettings(s)

	assert.False(t, w.Sidebar(SideLeft).Enabled)
	assert.Equal(t, 0.4, w.Sidebar(SideBottom).Size)
	assert.Equal(t, 0.1, w.Settings().ResizeMargin)
	assert.Len(t, rec.ofType(EventSidebarChanged), 2, "unchanged sidebars stay quiet")
}

func TestWorkspacesKeepOwnTolerance(t *testing.T) {
	loose := DefaultSettings()
	loose.SumTolerance = 0.1
	a := NewWorkspace(loose)
	b := NewWorkspace(DefaultSettings())
	for _, tree := range a.Trees() {
		assert.Equal(t, 0.1, tree.SumTolerance())
	}
	for _, tree := range b.Trees() {
		assert.Equal(t, DefaultSumTolerance, tree.SumTolerance())
	}

	s := DefaultSettings()
	s.SumTolerance = 1e-6
	b.ApplySettings(s)
	assert.Equal(t, 1e-6, b.Root().SumTolerance())
	assert.Equal(t, 0.1, a.Root().SumTolerance(), "reloading one workspace leaves the other alone")
}

func TestWorkspaceMoveTabTidiesSource(t *testing.T) {
	w := NewWorkspace(DefaultSettings())
	sink := &countingSink{}
	w.History().SetSink(sink)
	tree := w.Root()
	split, err := tree.CreateContainerIn(tree.Root(), ContainerProps{Axis: AxisVertical})
	require.NoError(t, err)
	from, a := tabsWith(t, tree, split, 1)
	to, b := tabsWith(t, tree, split, 1)

	require.NoError(t, w.MoveTab(a[0], to, -1))
	assert.Equal(t, []ID{b[0], a[0]}, childrenOf(t, tree, to))
	assert.False(t, tree.Contains(from), "emptied tabs are removed")
	assert.False(t, tree.Contains(split), "single-child split collapses")
	n, _ := tree.Get(to)
	assert.Equal(t, tree.Root(), n.Parent)
	assert.Equal(t, 1, sink.opened)
	assert.Equal(t, 1, sink.closed)
	assert.Zero(t, w.History().Depth())
	mustValidate(t, tree)
}

func TestWorkspaceDropAcrossTrees(t *testing.T) {
	w := NewWorkspace(DefaultSettings())
	sink := &countingSink{}
	w.History().SetSink(sink)
	left := w.Tree(SlotLeft)
	files, err := left.CreateContainerIn(left.Root(), ContainerProps{Layout: LayoutTabs})
	require.NoError(t, err)
	leaf, err := w.OpenLeaf(left, files, LeafProps{Title: "files"}, func() (Content, error) {
		return Content{Title: "Files"}, nil
	})
	require.NoError(t, err)

	root := w.Root()
	editor, _ := tabsWith(t, root, root.Root(), 1)

	var notTabs *NotTabsError
	assert.ErrorAs(t, w.MoveTab(leaf, root.Root(), -1), &notTabs)
	assert.True(t, left.Contains(leaf), "rejected drop stays in its tree")
	assert.Zero(t, sink.opened)

	added, err := w.DropOnEdge(editor, leaf, DropRight)
	require.NoError(t, err)
	assert.False(t, left.Contains(leaf))
	assert.False(t, left.Contains(files))
	assert.True(t, root.Contains(leaf))
	assert.Equal(t, []ID{leaf}, childrenOf(t, root, added))
	content, ok, err := w.Registry().Resolve(leaf)
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, "Files", content.Title)
	assert.Equal(t, 1, sink.opened)
	mustValidate(t, root)
	mustValidate(t, left)

	split, err := w.DropIntoSplit(left.Root(), leaf, -1)
	require.NoError(t, err)
	assert.True(t, left.Contains(split))
	assert.False(t, root.Contains(added), "emptied edge tabs are removed")
	assert.Equal(t, 2, sink.opened)
	mustValidate(t, root)
	mustValidate(t, left)

	var notFound *NotFoundError
	_, err = w.DropIntoSplit(root.Root(), NewLeafID(), 0)
	assert.ErrorAs(t, err, &notFound)
}

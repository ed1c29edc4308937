// Copyright © 2025 Texelation contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
//
// File: cmd/texeldock/demo.go
// Summary: Sample layout and JSON dump for the texeldock shell.

package main

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/framegrace/texeldock/dock"
)

func textContent(lines ...string) dock.Loader {
	return func() (dock.Content, error) {
		return dock.Content{Render: func(c dock.Canvas) {
			w, h := c.Size()
			for y, line := range lines {
				if y >= h {
					return
				}
				x := 0
				for _, r := range line {
					if x >= w {
						break
					}
					c.SetCell(x, y, r)
					x++
				}
			}
		}}, nil
	}
}

// buildDemo fills the workspace with an editor-like arrangement: two tab
// groups side by side in the main area, a file list on the left, an outline
// on the right and a console under the editors.
func buildDemo(ws *dock.Workspace) error {
	h := ws.History().Begin()
	defer h.End()

	root := ws.Root()
	editors, err := root.CreateContainerIn(root.Root(), dock.ContainerProps{Layout: dock.LayoutTabs})
	if err != nil {
		return err
	}
	for _, name := range []string{"main.go", "tree.go"} {
		leaf := root.CreateLeaf(dock.LeafProps{Title: name})
		if err := ws.Registry().Register(leaf, textContent("package "+name[:len(name)-3], "", "func ...")); err != nil {
			return err
		}
		if err := ws.AddTab(root, editors, leaf, -1); err != nil {
			return err
		}
	}
	if err := ws.SelectTab(root, editors, 0); err != nil {
		return err
	}
	preview, err := ws.OpenLeaf(root, root.Root(), dock.LeafProps{Title: "preview", Fraction: 0.4}, textContent("rendered output"))
	if err != nil {
		return err
	}
	column, err := root.PromoteToContainer(preview, dock.ContainerProps{Axis: dock.AxisVertical})
	if err != nil {
		return err
	}
	if _, err := ws.OpenLeaf(root, column, dock.LeafProps{Title: "diff"}, textContent("+ added", "- removed")); err != nil {
		return err
	}

	left := ws.Tree(dock.SlotLeft)
	if _, err := ws.OpenLeaf(left, left.Root(), dock.LeafProps{Title: "files"}, textContent("cmd/", "config/", "dock/")); err != nil {
		return err
	}
	if _, err := ws.OpenLeaf(left, left.Root(), dock.LeafProps{Title: "search"}, nil); err != nil {
		return err
	}

	right := ws.Tree(dock.SlotRight)
	if _, err := ws.OpenLeaf(right, right.Root(), dock.LeafProps{Title: "outline"}, textContent("Tree", "Workspace")); err != nil {
		return err
	}

	bottom := ws.Tree(dock.SlotBottom)
	console, err := bottom.CreateContainerIn(bottom.Root(), dock.ContainerProps{Layout: dock.LayoutTabs})
	if err != nil {
		return err
	}
	for _, name := range []string{"terminal", "problems"} {
		if _, err := ws.OpenLeaf(bottom, console, dock.LeafProps{Title: name}, textContent("$ ")); err != nil {
			return err
		}
	}

	for slot, tree := range ws.Trees() {
		if err := tree.Validate(); err != nil {
			return fmt.Errorf("%s: %w", slot, err)
		}
	}
	return nil
}

type dumpTree struct {
	Capture dock.TreeCapture          `json:"tree"`
	Rects   map[string]dock.Rectangle `json:"rects"`
}

type dump struct {
	Width    int                       `json:"width"`
	Height   int                       `json:"height"`
	Sidebars map[string]dumpSidebar    `json:"sidebars"`
	Areas    map[string]dock.Rectangle `json:"areas"`
	Trees    map[string]dumpTree       `json:"trees"`
}

type dumpSidebar struct {
	Enabled bool    `json:"enabled"`
	Size    float64 `json:"size"`
}

func writeDump(w io.Writer, ws *dock.Workspace, width, height int) error {
	arrangement := ws.Arrange(width, height)
	out := dump{
		Width:    width,
		Height:   height,
		Sidebars: make(map[string]dumpSidebar),
		Areas:    make(map[string]dock.Rectangle),
		Trees:    make(map[string]dumpTree),
	}
	for _, side := range dock.Sides {
		sb := ws.Sidebar(side)
		out.Sidebars[side.String()] = dumpSidebar{Enabled: sb.Enabled, Size: sb.Size}
	}
	for slot, tree := range ws.Trees() {
		area, visible := arrangement.Areas[slot]
		entry := dumpTree{Capture: tree.Capture(), Rects: make(map[string]dock.Rectangle)}
		if visible {
			out.Areas[slot.String()] = area
			for id, r := range dock.Layout(tree, area) {
				entry.Rects[id.String()] = r
			}
		}
		out.Trees[slot.String()] = entry
	}
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(out)
}

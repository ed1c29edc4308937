// Copyright © 2025 Texelation contributors
// SPDX-License-Identifier: AGPL-3.0-or-later

package main

import (
	"bytes"
	"encoding/json"
	"testing"

	"github.com/framegrace/texeldock/dock"
)

func TestBuildDemoIsValid(t *testing.T) {
	ws := dock.NewWorkspace(dock.DefaultSettings())
	if err := buildDemo(ws); err != nil {
		t.Fatalf("buildDemo: %v", err)
	}
	if ws.History().Open() {
		t.Fatalf("expected demo batch to be closed")
	}
	if got := len(ws.Root().Leaves()); got != 4 {
		t.Fatalf("expected 4 leaves in the main tree, got %d", got)
	}
	if got := ws.Registry().Len(); got != 8 {
		t.Fatalf("expected 8 registered leaves, got %d", got)
	}
}

func TestWriteDump(t *testing.T) {
	ws := dock.NewWorkspace(dock.DefaultSettings())
	if err := buildDemo(ws); err != nil {
		t.Fatalf("buildDemo: %v", err)
	}
	var buf bytes.Buffer
	if err := writeDump(&buf, ws, 120, 40); err != nil {
		t.Fatalf("writeDump: %v", err)
	}

	var out dump
	if err := json.Unmarshal(buf.Bytes(), &out); err != nil {
		t.Fatalf("unmarshal dump: %v", err)
	}
	if out.Areas["root"] != (dock.Rectangle{X: 30, Y: 0, Width: 60, Height: 30}) {
		t.Fatalf("unexpected root area %+v", out.Areas["root"])
	}
	if len(out.Trees) != 4 {
		t.Fatalf("expected 4 trees, got %d", len(out.Trees))
	}
	if !out.Sidebars["bottom"].Enabled {
		t.Fatalf("expected bottom sidebar enabled")
	}
	if out.Trees["root"].Capture.Root == nil {
		t.Fatalf("expected root capture")
	}
}

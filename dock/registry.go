// Copyright © 2025 Texelation contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
//
// File: dock/registry.go
// Summary: Side table of lazily loaded leaf content, keyed by leaf id.
// Notes: Kept apart from the tree so structure can exist before its content is
// known and content can be evicted while the structure stays.

package dock

import "fmt"

// Canvas is the drawing surface handed to a leaf's render callback.
type Canvas interface {
	Size() (width, height int)
	SetCell(x, y int, ch rune)
}

// RenderFunc draws a leaf body.
type RenderFunc func(Canvas)

// Content is what a leaf shows.
type Content struct {
	Title   string
	Tooltip string
	Render  RenderFunc
}

// Loader produces a leaf's content on first use.
type Loader func() (Content, error)

type registryEntry struct {
	load     Loader
	content  Content
	resolved bool
}

// Registry maps leaf ids to their content loaders.
type Registry struct {
	entries map[ID]*registryEntry
}

// NewRegistry returns an empty registry.
func NewRegistry() *Registry {
	return &Registry{entries: make(map[ID]*registryEntry)}
}

// Register sets the loader for a leaf, dropping any content already resolved.
func (r *Registry) Register(id ID, load Loader) error {
	if !id.IsLeaf() {
		return fmt.Errorf("dock: registry: %s is not a leaf id", id)
	}
	r.entries[id] = &registryEntry{load: load}
	return nil
}

// RegisterContent stores already-built content for a leaf.
func (r *Registry) RegisterContent(id ID, content Content) error {
	if err := r.Register(id, func() (Content, error) { return content, nil }); err != nil {
		return err
	}
	e := r.entries[id]
	e.content, e.resolved = content, true
	return nil
}

// Resolve returns the content for id, running its loader the first time.
// ok is false when nothing is registered for id.
func (r *Registry) Resolve(id ID) (Content, bool, error) {
	e, ok := r.entries[id]
	if !ok {
		return Content{}, false, nil
	}
	if e.resolved {
		return e.content, true, nil
	}
	if e.load == nil {
		return Content{}, true, fmt.Errorf("dock: registry: %s has no loader", id)
	}
	content, err := e.load()
	if err != nil {
		return Content{}, true, fmt.Errorf("dock: registry: load %s: %w", id, err)
	}
	e.content, e.resolved = content, true
	return content, true, nil
}

// Has reports whether a loader is registered for id.
func (r *Registry) Has(id ID) bool {
	_, ok := r.entries[id]
	return ok
}

// Resolved reports whether id's content is currently loaded.
func (r *Registry) Resolved(id ID) bool {
	e, ok := r.entries[id]
	return ok && e.resolved
}

// Evict drops loaded content but keeps the loader, so the next Resolve loads again.
func (r *Registry) Evict(id ID) {
	if e, ok := r.entries[id]; ok {
		e.content, e.resolved = Content{}, false
	}
}

// Forget removes id from the registry entirely.
func (r *Registry) Forget(id ID) {
	delete(r.entries, id)
}

// Len returns the number of registered leaves.
func (r *Registry) Len() int { return len(r.entries) }

// IDs returns the registered leaf ids in unspecified order.
func (r *Registry) IDs() []ID {
	out := make([]ID, 0, len(r.entries))
	for id := range r.entries {
		out = append(out, id)
	}
	return out
}

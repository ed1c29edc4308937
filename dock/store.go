// Copyright © 2025 Texelation contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
//
// File: dock/store.go
// Summary: Flat id-keyed arena owning every node of a tree.
// Notes: Topology lives only in Parent/Children ids, so a subtree moves by
// rewriting a few keys instead of copying nested values.

package dock

import (
	"log"
	"sync/atomic"
)

var debugLogging atomic.Bool

// SetDebug toggles verbose tracing of tree operations.
func SetDebug(enabled bool) {
	debugLogging.Store(enabled)
}

func debugf(format string, args ...interface{}) {
	if debugLogging.Load() {
		log.Printf(format, args...)
	}
}

// Store maps ids to the node records it owns.
type Store struct {
	nodes map[ID]*Node
}

func newStore() *Store {
	return &Store{nodes: make(map[ID]*Node)}
}

// Len returns the number of stored nodes, attached or not.
func (s *Store) Len() int {
	return len(s.nodes)
}

func (s *Store) get(id ID) (*Node, bool) {
	n, ok := s.nodes[id]
	return n, ok
}

// require looks id up, reporting the containers walked through on failure.
func (s *Store) require(id ID, chain ...ID) (*Node, error) {
	n, ok := s.nodes[id]
	if !ok {
		err := &NotFoundError{ID: id}
		for i := len(chain) - 1; i >= 0; i-- {
			err.withParent(chain[i])
		}
		return nil, err
	}
	return n, nil
}

func (s *Store) insert(n *Node) {
	s.nodes[n.ID] = n
}

func (s *Store) delete(id ID) {
	delete(s.nodes, id)
}

// ids returns every stored id in unspecified order.
func (s *Store) ids() []ID {
	out := make([]ID, 0, len(s.nodes))
	for id := range s.nodes {
		out = append(out, id)
	}
	return out
}

// Copyright © 2025 Texelation contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
//
// File: dock/id.go
// Summary: Kind-tagged node identifiers for the panel tree.
// Usage: Every node in a Tree is keyed by an ID; containers and leaves never share a keyspace.

package dock

import (
	"fmt"
	"strings"

	"github.com/google/uuid"
)

// Kind tells which node variant an ID names.
type Kind uint8

const (
	KindNone Kind = iota
	KindContainer
	KindLeaf
)

func (k Kind) String() string {
	switch k {
	case KindContainer:
		return "container"
	case KindLeaf:
		return "leaf"
	default:
		return "none"
	}
}

// ID is an opaque node identifier. IDs are comparable and safe to use as map keys.
// The zero ID names nothing.
type ID struct {
	kind Kind
	uuid uuid.UUID
}

// NewContainerID returns a fresh container identifier.
func NewContainerID() ID {
	return ID{kind: KindContainer, uuid: uuid.New()}
}

// NewLeafID returns a fresh leaf identifier.
func NewLeafID() ID {
	return ID{kind: KindLeaf, uuid: uuid.New()}
}

// Kind returns the variant tag of the id.
func (id ID) Kind() Kind { return id.kind }

// IsZero reports whether id is the zero ID.
func (id ID) IsZero() bool { return id.kind == KindNone }

// IsContainer reports whether id names a container.
func (id ID) IsContainer() bool { return id.kind == KindContainer }

// IsLeaf reports whether id names a leaf.
func (id ID) IsLeaf() bool { return id.kind == KindLeaf }

// String renders the id as "<kind>:<uuid>".
func (id ID) String() string {
	if id.IsZero() {
		return "none"
	}
	return id.kind.String() + ":" + id.uuid.String()
}

// Short returns the first eight hex digits, for log lines.
func (id ID) Short() string {
	if id.IsZero() {
		return "none"
	}
	return id.uuid.String()[:8]
}

// ParseID parses the textual form produced by String.
func ParseID(raw string) (ID, error) {
	prefix, rest, ok := strings.Cut(raw, ":")
	if !ok {
		return ID{}, fmt.Errorf("dock: malformed id %q: missing kind prefix", raw)
	}
	var kind Kind
	switch prefix {
	case "container":
		kind = KindContainer
	case "leaf":
		kind = KindLeaf
	default:
		return ID{}, fmt.Errorf("dock: malformed id %q: unknown kind %q", raw, prefix)
	}
	u, err := uuid.Parse(rest)
	if err != nil {
		return ID{}, fmt.Errorf("dock: malformed id %q: %w", raw, err)
	}
	if u.Version() != 4 {
		return ID{}, fmt.Errorf("dock: malformed id %q: expected a random uuid", raw)
	}
	return ID{kind: kind, uuid: u}, nil
}

// ValidateID reports whether raw is a well-formed identifier.
func ValidateID(raw string) bool {
	_, err := ParseID(raw)
	return err == nil
}

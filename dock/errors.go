// Copyright © 2025 Texelation contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
//
// File: dock/errors.go
// Summary: Error taxonomy for illegal panel tree operations.

package dock

import (
	"errors"
	"fmt"
	"strings"
)

var (
	// ErrCannotDeleteRoot is returned when destroying a tree's root container.
	ErrCannotDeleteRoot = errors.New("dock: cannot delete root panel")

	// ErrCannotAttachRoot is returned when the root is offered as a child.
	ErrCannotAttachRoot = errors.New("dock: cannot attach root panel")

	// ErrDragInProgress is returned when a resize session is started twice.
	ErrDragInProgress = errors.New("dock: drag already in progress")

	// ErrNotDragging is returned when a move arrives outside a resize session.
	ErrNotDragging = errors.New("dock: no drag in progress")
)

// NotFoundError reports an id missing from the node store. Chain lists the
// containers visited on the way to it, outermost first.
type NotFoundError struct {
	ID    ID
	Chain []ID
}

func (e *NotFoundError) Error() string {
	chain := make([]string, len(e.Chain))
	for i, id := range e.Chain {
		chain[i] = id.String()
	}
	return fmt.Sprintf("dock: node %s does not exist; parent chain: [%s]", e.ID, strings.Join(chain, ", "))
}

func (e *NotFoundError) withParent(parent ID) *NotFoundError {
	e.Chain = append([]ID{parent}, e.Chain...)
	return e
}

// AlreadyHasParentError reports an attach of a node that is attached elsewhere.
type AlreadyHasParentError struct {
	ID       ID
	Existing ID
	AddingTo ID
}

func (e *AlreadyHasParentError) Error() string {
	return fmt.Sprintf("dock: node %s already has a parent (%s); cannot add to %s", e.ID, e.Existing, e.AddingTo)
}

// NoParentError reports an operation that needs an attached node.
type NoParentError struct {
	ID ID
}

func (e *NoParentError) Error() string {
	return fmt.Sprintf("dock: node %s has no parent", e.ID)
}

// NotContainerError reports a container operation aimed at a leaf.
type NotContainerError struct {
	ID ID
}

func (e *NotContainerError) Error() string {
	return fmt.Sprintf("dock: node %s is not a container", e.ID)
}

// NotLeafError reports a leaf operation aimed at a container.
type NotLeafError struct {
	ID ID
}

func (e *NotLeafError) Error() string {
	return fmt.Sprintf("dock: node %s is not a leaf", e.ID)
}

// NotSplitError reports a split operation aimed at a tabs container.
type NotSplitError struct {
	ID ID
}

func (e *NotSplitError) Error() string {
	return fmt.Sprintf("dock: container %s is not a split layout", e.ID)
}

// FractionOverflowError reports fractions that cannot fit in one container.
type FractionOverflowError struct {
	Parent ID
	Sum    float64
}

func (e *FractionOverflowError) Error() string {
	return fmt.Sprintf("dock: fractions for %s add up to %v, more than 1", e.Parent, e.Sum)
}

// EdgeRefusedError reports a drop on an edge the target does not accept.
type EdgeRefusedError struct {
	Target ID
	Side   DropSide
}

func (e *EdgeRefusedError) Error() string {
	return fmt.Sprintf("dock: %s refuses drops on its %s edge", e.Target, e.Side)
}

// NotTabsError reports a tab operation aimed at a split container.
type NotTabsError struct {
	ID ID
}

func (e *NotTabsError) Error() string {
	return fmt.Sprintf("dock: container %s is not a tabs layout", e.ID)
}

// TabsRejectContainerError reports an attempt to put a container inside tabs.
type TabsRejectContainerError struct {
	AddingTo ID
	Child    ID
}

func (e *TabsRejectContainerError) Error() string {
	return fmt.Sprintf("dock: cannot add container %s to tabs container %s", e.Child, e.AddingTo)
}

// CycleError reports an attach that would make a node its own ancestor.
type CycleError struct {
	ID   ID
	Into ID
}

func (e *CycleError) Error() string {
	return fmt.Sprintf("dock: adding %s to %s would create a cycle", e.ID, e.Into)
}

// StoreCorruptionError is the panic value raised when a container lists a child
// that is absent from the store. It is a defect, never returned as an error.
type StoreCorruptionError struct {
	Container ID
	Child     ID
}

func (e *StoreCorruptionError) Error() string {
	return fmt.Sprintf("dock: store corrupted: container %s lists missing child %s", e.Container, e.Child)
}

// errorKind names an error for the metrics label.
func errorKind(err error) string {
	var (
		notFound   *NotFoundError
		hasParent  *AlreadyHasParentError
		noParent   *NoParentError
		notCont    *NotContainerError
		notTabs    *NotTabsError
		notLeaf    *NotLeafError
		notSplit   *NotSplitError
		overflow   *FractionOverflowError
		refused    *EdgeRefusedError
		tabsReject *TabsRejectContainerError
		cycle      *CycleError
	)
	switch {
	case errors.Is(err, ErrCannotDeleteRoot):
		return "cannot_delete_root"
	case errors.Is(err, ErrCannotAttachRoot):
		return "cannot_attach_root"
	case errors.Is(err, ErrDragInProgress):
		return "drag_in_progress"
	case errors.Is(err, ErrNotDragging):
		return "not_dragging"
	case errors.As(err, &notFound):
		return "not_found"
	case errors.As(err, &hasParent):
		return "already_has_parent"
	case errors.As(err, &noParent):
		return "no_parent"
	case errors.As(err, &notCont):
		return "not_container"
	case errors.As(err, &notTabs):
		return "not_tabs"
	case errors.As(err, &notLeaf):
		return "not_leaf"
	case errors.As(err, &notSplit):
		return "not_split"
	case errors.As(err, &overflow):
		return "fraction_overflow"
	case errors.As(err, &refused):
		return "edge_refused"
	case errors.As(err, &tabsReject):
		return "tabs_reject_container"
	case errors.As(err, &cycle):
		return "cycle"
	default:
		return "other"
	}
}

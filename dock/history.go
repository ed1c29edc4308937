// Copyright © 2025 Texelation contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
//
// File: dock/history.go
// Summary: History batch boundaries handed to an external undo collaborator.
// Notes: Batches nest; only the outermost Begin/End pair reaches the sink.

package dock

// HistorySink receives batch boundaries, e.g. an undo stack that coalesces
// every mutation between BatchOpened and BatchClosed into one unit.
type HistorySink interface {
	BatchOpened()
	BatchClosed()
}

// History tracks open batches with a depth counter.
type History struct {
	sink  HistorySink
	depth int
}

// NewHistory returns a History reporting to sink, which may be nil.
func NewHistory(sink HistorySink) *History {
	return &History{sink: sink}
}

// SetSink replaces the collaborator notified of batch boundaries.
func (h *History) SetSink(sink HistorySink) {
	h.sink = sink
}

// Depth returns the number of currently open batches.
func (h *History) Depth() int { return h.depth }

// Open reports whether any batch is open.
func (h *History) Open() bool { return h.depth > 0 }

// Begin opens a batch. The returned guard must be ended exactly once;
// extra End calls are ignored.
func (h *History) Begin() *Batch {
	h.depth++
	recordBatchDepth(h.depth)
	if h.depth == 1 && h.sink != nil {
		h.sink.BatchOpened()
	}
	return &Batch{history: h}
}

// Wrap runs fn inside a batch, closing it even if fn panics.
func (h *History) Wrap(fn func() error) error {
	b := h.Begin()
	defer b.End()
	return fn()
}

func (h *History) end() {
	if h.depth == 0 {
		return
	}
	h.depth--
	recordBatchDepth(h.depth)
	if h.depth == 0 && h.sink != nil {
		h.sink.BatchClosed()
	}
}

// Batch is the scope guard returned by History.Begin.
type Batch struct {
	history *History
	ended   bool
}

// End closes the batch. It is safe to call more than once.
func (b *Batch) End() {
	if b == nil || b.ended {
		return
	}
	b.ended = true
	b.history.end()
}

// Ended reports whether End has been called.
func (b *Batch) Ended() bool { return b == nil || b.ended }

// Copyright © 2025 Texelation contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
//
// File: dock/metrics.go
// Summary: Prometheus instrumentation for tree operations, drags and history batches.
// Usage: Collectors register with the default registry; expose them with promhttp.

package dock

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	metricTreeOps = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "texeldock",
		Name:      "tree_operations_total",
		Help:      "Tree operations that completed successfully.",
	}, []string{"op"})

	metricTreeErrors = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "texeldock",
		Name:      "tree_errors_total",
		Help:      "Tree operations rejected with an error.",
	}, []string{"op", "kind"})

	metricDragSessions = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "texeldock",
		Name:      "drag_sessions_total",
		Help:      "Resize drag sessions started.",
	}, []string{"kind"})

	metricBatchDepth = promauto.NewGauge(prometheus.GaugeOpts{
		Namespace: "texeldock",
		Name:      "history_batch_depth",
		Help:      "Number of currently open history batches.",
	})
)

func recordTreeOp(op string, err error) {
	if err != nil {
		metricTreeErrors.WithLabelValues(op, errorKind(err)).Inc()
		return
	}
	metricTreeOps.WithLabelValues(op).Inc()
}

// recordDragSession counts a drag by handle family, not by handle.
func recordDragSession(kind string) {
	metricDragSessions.WithLabelValues(kind).Inc()
}

func recordBatchDepth(depth int) {
	metricBatchDepth.Set(float64(depth))
}

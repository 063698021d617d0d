package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

// SchedulerMetrics records assignment engine activity.
type SchedulerMetrics struct {
	duration    *prometheus.HistogramVec
	assignments *prometheus.CounterVec
	splits      *prometheus.CounterVec
	reconciled  prometheus.Counter
	unassigned  prometheus.Counter
}

// NewSchedulerMetrics registers the scheduler metrics on the provided registerer.
func NewSchedulerMetrics(reg prometheus.Registerer) *SchedulerMetrics {
	if reg == nil {
		return &SchedulerMetrics{}
	}
	duration := prometheus.NewHistogramVec(prometheus.HistogramOpts{
		Name:    "scheduler_operation_duration_seconds",
		Help:    "Duration of scheduler operations in seconds.",
		Buckets: prometheus.DefBuckets,
	}, []string{"operation"})
	assignments := prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "scheduler_assignments_total",
		Help: "Assignment proposals by outcome (direct, overflow, rejected).",
	}, []string{"outcome"})
	splits := prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "scheduler_splits_total",
		Help: "Confirmed splits by kind (split, deferred_whole).",
	}, []string{"kind"})
	reconciled := prometheus.NewCounter(prometheus.CounterOpts{
		Name: "scheduler_reconcile_runs_total",
		Help: "Reconciliation passes executed.",
	})
	unassigned := prometheus.NewCounter(prometheus.CounterOpts{
		Name: "scheduler_reconcile_unassigned_total",
		Help: "Work orders returned to backlog by reconciliation.",
	})
	reg.MustRegister(duration, assignments, splits, reconciled, unassigned)
	return &SchedulerMetrics{
		duration:    duration,
		assignments: assignments,
		splits:      splits,
		reconciled:  reconciled,
		unassigned:  unassigned,
	}
}

// ObserveDuration records the duration for the named operation.
func (m *SchedulerMetrics) ObserveDuration(operation string, duration time.Duration) {
	if m == nil || m.duration == nil {
		return
	}
	m.duration.WithLabelValues(normalizeLabel(operation)).Observe(duration.Seconds())
}

// IncAssignment counts a proposal by its outcome.
func (m *SchedulerMetrics) IncAssignment(outcome string) {
	if m == nil || m.assignments == nil {
		return
	}
	m.assignments.WithLabelValues(normalizeLabel(outcome)).Inc()
}

// IncSplit counts a confirmed split by kind.
func (m *SchedulerMetrics) IncSplit(kind string) {
	if m == nil || m.splits == nil {
		return
	}
	m.splits.WithLabelValues(normalizeLabel(kind)).Inc()
}

// IncReconcileRun counts one reconciliation pass.
func (m *SchedulerMetrics) IncReconcileRun() {
	if m == nil || m.reconciled == nil {
		return
	}
	m.reconciled.Inc()
}

// AddReconcileUnassigned counts work orders sent back to the backlog.
func (m *SchedulerMetrics) AddReconcileUnassigned(n int) {
	if m == nil || m.unassigned == nil || n <= 0 {
		return
	}
	m.unassigned.Add(float64(n))
}

func normalizeLabel(value string) string {
	if value == "" {
		return "unknown"
	}
	return value
}

package metrics

import (
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
)

func TestSchedulerMetricsCounts(t *testing.T) {
	reg := prometheus.NewRegistry()
	m := NewSchedulerMetrics(reg)

	m.IncAssignment("direct")
	m.IncAssignment("direct")
	m.IncAssignment("overflow")
	m.IncSplit("deferred_whole")
	m.IncReconcileRun()
	m.AddReconcileUnassigned(3)
	m.AddReconcileUnassigned(0)
	m.ObserveDuration("propose", 5*time.Millisecond)

	if got := testutil.ToFloat64(m.assignments.WithLabelValues("direct")); got != 2 {
		t.Fatalf("expected 2 direct assignments, got %v", got)
	}
	if got := testutil.ToFloat64(m.splits.WithLabelValues("deferred_whole")); got != 1 {
		t.Fatalf("expected 1 deferred split, got %v", got)
	}
	if got := testutil.ToFloat64(m.unassigned); got != 3 {
		t.Fatalf("expected 3 unassigned, got %v", got)
	}
}

func TestSchedulerMetricsNilSafe(t *testing.T) {
	var m *SchedulerMetrics
	m.IncAssignment("direct")
	m.IncReconcileRun()
	m.ObserveDuration("propose", time.Millisecond)

	empty := NewSchedulerMetrics(nil)
	empty.IncSplit("split")
	empty.AddReconcileUnassigned(1)
}

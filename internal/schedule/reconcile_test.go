package schedule

import (
	"reflect"
	"testing"

	"github.com/installplanhq/installplan-backend/pkg/enums"
)

func TestReconcileUnassignsWhenTeamRemoved(t *testing.T) {
	works := []WorkOrder{scheduledOrder("a", 0.5, "2025-12-10", "X+Y")}
	reg := Registry{"2025-12-10": {"A+B"}}

	next, changed := Reconcile(works, reg)
	if changed != 1 {
		t.Fatalf("expected 1 change, got %d", changed)
	}
	w := next[0]
	if w.Status != enums.WorkStatusPending || w.ScheduledDate != "" || w.AssignedTeam != "" {
		t.Fatalf("expected clean backlog state, got %+v", w)
	}
}

func TestReconcileIgnoresLockFlag(t *testing.T) {
	locked := scheduledOrder("a", 0.5, "2025-12-10", "X+Y")
	locked.IsFixed = true
	reg := Registry{"2025-12-10": {"A+B"}}

	next, changed := Reconcile([]WorkOrder{locked}, reg)
	if changed != 1 {
		t.Fatalf("locked orders are not exempt, got %d changes", changed)
	}
	if next[0].Status != enums.WorkStatusPending {
		t.Fatal("expected locked order back in backlog")
	}
	if !next[0].IsFixed {
		t.Fatal("lock flag must survive reconciliation")
	}
}

func TestReconcileUnassignsOnMissingOrEmptyDay(t *testing.T) {
	works := []WorkOrder{
		scheduledOrder("a", 0.5, "2025-12-10", "A+B"),
		scheduledOrder("b", 0.5, "2025-12-11", "A+B"),
	}
	reg := Registry{"2025-12-11": {}}

	_, changed := Reconcile(works, reg)
	if changed != 2 {
		t.Fatalf("expected both orders unassigned, got %d", changed)
	}
}

func TestReconcileLeavesValidAssignmentsAlone(t *testing.T) {
	works := []WorkOrder{
		scheduledOrder("a", 0.5, "2025-12-10", "A+B"),
		pendingOrder("b", 0.25),
	}
	reg := Registry{"2025-12-10": {"A+B", "C+D"}}

	next, changed := Reconcile(works, reg)
	if changed != 0 {
		t.Fatalf("expected no change, got %d", changed)
	}
	if !reflect.DeepEqual(next, works) {
		t.Fatal("untouched pass must return identical state")
	}
}

func TestReconcileIsIdempotent(t *testing.T) {
	works := []WorkOrder{
		scheduledOrder("a", 0.5, "2025-12-10", "X+Y"),
		scheduledOrder("b", 0.5, "2025-12-10", "A+B"),
	}
	reg := Registry{"2025-12-10": {"A+B"}}

	first, changed := Reconcile(works, reg)
	if changed != 1 {
		t.Fatalf("expected 1 change on first pass, got %d", changed)
	}
	second, changed := Reconcile(first, reg)
	if changed != 0 {
		t.Fatalf("second pass must be a no-op, got %d changes", changed)
	}
	if !reflect.DeepEqual(first, second) {
		t.Fatal("second pass altered state")
	}
}

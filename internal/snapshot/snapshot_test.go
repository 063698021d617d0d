package snapshot

import (
	"testing"

	"github.com/installplanhq/installplan-backend/internal/schedule"
	pkgerrors "github.com/installplanhq/installplan-backend/pkg/errors"
	"github.com/installplanhq/installplan-backend/pkg/enums"
)

func validWork(id string) schedule.WorkOrder {
	return schedule.WorkOrder{
		ID:           id,
		Code:         "OT-" + id,
		Client:       "Client",
		DateAccepted: "2025-12-01",
		TotalDays:    1,
		CurrentDay:   1,
		Load:         0.5,
		Status:       enums.WorkStatusPending,
		Type:         enums.WorkTypeInstallation,
	}
}

func TestValidateAcceptsCleanSnapshot(t *testing.T) {
	scheduled := validWork("b")
	scheduled.Status = enums.WorkStatusScheduled
	scheduled.ScheduledDate = "2025-12-10"
	scheduled.AssignedTeam = "A+B"

	snap := Snapshot{
		Works: []schedule.WorkOrder{validWork("a"), scheduled},
		Teams: schedule.Registry{"2025-12-10": {"A+B"}},
	}
	if err := snap.Validate(); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}

func TestValidateEmptySnapshotIsFine(t *testing.T) {
	if err := (Snapshot{}).Validate(); err != nil {
		t.Fatalf("empty snapshot must validate, got %v", err)
	}
}

func TestValidateRejectsBadRecords(t *testing.T) {
	noLoad := validWork("a")
	noLoad.Load = 0

	halfAssigned := validWork("b")
	halfAssigned.Status = enums.WorkStatusScheduled
	halfAssigned.ScheduledDate = "2025-12-10"

	dup := validWork("a")

	snap := Snapshot{
		Works: []schedule.WorkOrder{noLoad, halfAssigned, dup},
		Teams: schedule.Registry{"not-a-day": {"A+B"}},
	}

	err := snap.Validate()
	if err == nil {
		t.Fatal("expected validation failure")
	}
	typed := pkgerrors.As(err)
	if typed == nil || typed.Code() != pkgerrors.CodeValidation {
		t.Fatalf("expected VALIDATION_ERROR, got %v", err)
	}
	details, ok := typed.Details().(map[string]any)
	if !ok {
		t.Fatalf("expected details map, got %T", typed.Details())
	}
	problems, ok := details["problems"].([]string)
	if !ok || len(problems) < 4 {
		t.Fatalf("expected every problem collected, got %v", details["problems"])
	}
}

func TestValidateRejectsInvalidEnums(t *testing.T) {
	w := validWork("a")
	w.Status = "paused"
	w.Type = "mystery"

	err := Snapshot{Works: []schedule.WorkOrder{w}}.Validate()
	if err == nil {
		t.Fatal("expected validation failure for bad enums")
	}
}

package schedule

import (
	"fmt"

	"github.com/installplanhq/installplan-backend/internal/calendar"
	"github.com/installplanhq/installplan-backend/pkg/enums"
)

// Outcome classifies a proposal.
type Outcome string

const (
	// OutcomeDirect means the order fit and was assigned whole.
	OutcomeDirect Outcome = "direct"
	// OutcomeOverflow means the day/team lacks capacity; the caller must
	// confirm a split or cancel. No state changed.
	OutcomeOverflow Outcome = "overflow"
	// OutcomeRejected means the order is locked in place. No state changed.
	OutcomeRejected Outcome = "rejected"
)

// ProposeResult carries the outcome and the next work order state. Works
// equals the input unless the outcome is direct.
type ProposeResult struct {
	Outcome        Outcome
	AvailableHours float64
	Works          []WorkOrder
}

// Propose validates assigning the work order to (dayKey, team). A locked,
// already scheduled order is rejected outright. Within capacity the order is
// assigned whole; past the gate the result reports the hours still free so
// the caller can confirm a split.
func Propose(works []WorkOrder, id, dayKey, team string) (ProposeResult, error) {
	i := indexByID(works, id)
	if i < 0 {
		return ProposeResult{}, fmt.Errorf("propose %q: %w", id, ErrNotFound)
	}
	w := works[i]

	if w.IsFixed && w.Scheduled() {
		return ProposeResult{Outcome: OutcomeRejected, Works: works}, nil
	}

	currentLoad := TeamLoad(works, dayKey, team)
	incoming := w.Hours()

	if currentLoad+incoming > overflowGate {
		return ProposeResult{
			Outcome:        OutcomeOverflow,
			AvailableHours: max(0, WorkdayHours-currentLoad),
			Works:          works,
		}, nil
	}

	next := cloneWorks(works)
	next[i].Status = enums.WorkStatusScheduled
	next[i].ScheduledDate = dayKey
	next[i].AssignedTeam = team
	return ProposeResult{Outcome: OutcomeDirect, Works: next}, nil
}

// SplitKind classifies a confirmed split.
type SplitKind string

const (
	// SplitKindSplit means the order was cut into two scheduled fragments.
	SplitKindSplit SplitKind = "split"
	// SplitKindDeferredWhole means the free slot was too small to be worth
	// filling, so the order moved whole to the next working day.
	SplitKindDeferredWhole SplitKind = "deferred_whole"
)

// SplitResult carries the next work order state and the records the split
// produced: one for a deferred whole, two for a real split.
type SplitResult struct {
	Kind  SplitKind
	Works []WorkOrder
	Parts []WorkOrder
}

// ConfirmSplit resolves an overflow the caller accepted. availableHours must
// be the value reported by Propose, which is always below the order's own
// hours; anything larger is rejected without touching state. idSuffix seeds
// the sibling identifier and must be unique per call (the caller supplies a
// uuid).
//
// With availableHours at or under the split threshold the order moves whole
// to the next working day under the same team, untouched otherwise. Above it
// the original keeps availableHours on dayKey and a new sibling record takes
// the remainder on the next working day; both updates land in one batch.
func ConfirmSplit(works []WorkOrder, id, dayKey, team string, availableHours float64, idSuffix string) (SplitResult, error) {
	i := indexByID(works, id)
	if i < 0 {
		return SplitResult{}, fmt.Errorf("confirm split %q: %w", id, ErrNotFound)
	}
	w := works[i]

	nextDay, err := calendar.NextWorkingDay(dayKey)
	if err != nil {
		return SplitResult{}, err
	}

	if availableHours <= MinSplitHours {
		next := cloneWorks(works)
		next[i].Status = enums.WorkStatusScheduled
		next[i].ScheduledDate = nextDay
		next[i].AssignedTeam = team
		return SplitResult{
			Kind:  SplitKindDeferredWhole,
			Works: next,
			Parts: []WorkOrder{next[i]},
		}, nil
	}

	// availableHours at or above the order's own hours means there is nothing
	// to carry over; a fragment with zero or negative load must never exist.
	remainingHours := w.Hours() - availableHours
	if remainingHours <= 0 {
		return SplitResult{}, fmt.Errorf("confirm split %q (%.2fh available, %.2fh order): %w", id, availableHours, w.Hours(), ErrNoRemainder)
	}

	sibling := w
	sibling.ID = fmt.Sprintf("%s_split_%s", w.ID, idSuffix)
	sibling.Code = w.Code + " (Part 2)"
	sibling.Load = remainingHours / WorkdayHours
	sibling.Status = enums.WorkStatusScheduled
	sibling.ScheduledDate = nextDay
	sibling.AssignedTeam = team
	sibling.IsSplit = true

	next := cloneWorks(works)
	next[i].Status = enums.WorkStatusScheduled
	next[i].ScheduledDate = dayKey
	next[i].AssignedTeam = team
	next[i].Load = availableHours / WorkdayHours
	next[i].IsSplit = true
	next = append(next, sibling)

	return SplitResult{
		Kind:  SplitKindSplit,
		Works: next,
		Parts: []WorkOrder{next[i], sibling},
	}, nil
}

// Unassign returns the order to the backlog. Locked orders cannot be
// unassigned by hand; only reconciliation overrides the lock. Load, split
// flag and identity stay as they are: fragments are never merged back.
func Unassign(works []WorkOrder, id string) ([]WorkOrder, error) {
	i := indexByID(works, id)
	if i < 0 {
		return nil, fmt.Errorf("unassign %q: %w", id, ErrNotFound)
	}
	if works[i].IsFixed {
		return nil, fmt.Errorf("unassign %q: %w", id, ErrLocked)
	}

	next := cloneWorks(works)
	next[i].Status = enums.WorkStatusPending
	next[i].ScheduledDate = ""
	next[i].AssignedTeam = ""
	return next, nil
}

// ToggleLock flips the fixed flag and returns the updated record.
func ToggleLock(works []WorkOrder, id string) ([]WorkOrder, WorkOrder, error) {
	i := indexByID(works, id)
	if i < 0 {
		return nil, WorkOrder{}, fmt.Errorf("toggle lock %q: %w", id, ErrNotFound)
	}

	next := cloneWorks(works)
	next[i].IsFixed = !next[i].IsFixed
	return next, next[i], nil
}

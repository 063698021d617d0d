// Package schedule is the capacity-constrained assignment engine. Every
// operation is a pure function over the current work order slice and roster
// registry: callers pass the current state in and apply the returned state,
// so no partial update is ever observable.
package schedule

import (
	"errors"

	"github.com/installplanhq/installplan-backend/pkg/enums"
)

// Sentinel errors callers translate at their boundary.
var (
	ErrNotFound    = errors.New("work order not found")
	ErrLocked      = errors.New("work order is locked")
	ErrNoRemainder = errors.New("available hours cover the whole order")
)

// Coordinates is a proximity hint for dispatchers; the engine never reads it.
type Coordinates struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
}

// WorkOrder is one unit of work. Load is the fraction of an 8-hour working
// day in (0, 1]. ScheduledDate and AssignedTeam are set together exactly when
// Status is scheduled.
type WorkOrder struct {
	ID             string           `json:"id"`
	Code           string           `json:"code"`
	Client         string           `json:"client"`
	Address        string           `json:"address"`
	City           string           `json:"city"`
	Coordinates    Coordinates      `json:"coordinates"`
	DateAccepted   string           `json:"dateAccepted"`
	DateExpiration string           `json:"dateExpiration,omitempty"`
	TotalDays      int              `json:"totalDays"`
	CurrentDay     int              `json:"currentDay"`
	Load           float64          `json:"load"`
	Status         enums.WorkStatus `json:"status"`
	ScheduledDate  string           `json:"scheduledDate,omitempty"`
	AssignedTeam   string           `json:"assignedTeam,omitempty"`
	Type           enums.WorkType   `json:"type"`
	IsSplit        bool             `json:"isSplit"`
	IsFixed        bool             `json:"isFixed"`
}

// Hours converts the fractional load to hours.
func (w WorkOrder) Hours() float64 {
	return w.Load * WorkdayHours
}

// Scheduled reports whether the order currently occupies a day/team slot.
func (w WorkOrder) Scheduled() bool {
	return w.Status == enums.WorkStatusScheduled
}

func indexByID(works []WorkOrder, id string) int {
	for i := range works {
		if works[i].ID == id {
			return i
		}
	}
	return -1
}

func cloneWorks(works []WorkOrder) []WorkOrder {
	next := make([]WorkOrder, len(works))
	copy(next, works)
	return next
}

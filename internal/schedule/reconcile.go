package schedule

import "github.com/installplanhq/installplan-backend/pkg/enums"

// Reconcile unassigns every scheduled work order whose day has no roster
// entry, an empty one, or a team list that no longer contains its assigned
// team. The lock flag does not exempt an order but survives the reset.
//
// The whole store is processed in one batch and the result applied as a
// single update; running the pass twice without a registry change in between
// is a no-op the second time.
func Reconcile(works []WorkOrder, reg Registry) ([]WorkOrder, int) {
	changed := 0
	next := cloneWorks(works)
	for i := range next {
		w := next[i]
		if !w.Scheduled() {
			continue
		}
		if reg.HasTeam(w.ScheduledDate, w.AssignedTeam) {
			continue
		}
		next[i].Status = enums.WorkStatusPending
		next[i].ScheduledDate = ""
		next[i].AssignedTeam = ""
		changed++
	}
	if changed == 0 {
		return works, 0
	}
	return next, changed
}

package schedule

// WorkdayHours is the daily capacity of one team.
const WorkdayHours = 8.0

// overflowGate is the committed-hours ceiling checked when proposing an
// assignment. The 0.1h slack absorbs float noise from fractional loads; it
// applies at the gate only, never in the split arithmetic.
const overflowGate = 8.1

// MinSplitHours is the smallest same-day remainder worth splitting for.
// At or below this the whole order is deferred to the next working day.
const MinSplitHours = 0.5

// TeamLoad sums the committed hours for a team on a day. It is a pure read
// over the work order slice and is recomputed on every call; the open work
// order count is small enough that a linear scan is fine.
func TeamLoad(works []WorkOrder, dayKey, team string) float64 {
	total := 0.0
	for _, w := range works {
		if w.Scheduled() && w.ScheduledDate == dayKey && w.AssignedTeam == team {
			total += w.Hours()
		}
	}
	return total
}

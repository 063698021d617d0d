package schedule

import (
	"fmt"

	"github.com/installplanhq/installplan-backend/internal/calendar"
)

// Registry maps a day key to the teams active that day. List order is
// display order. A day with no entry (or an empty list) has no active teams.
type Registry map[string][]string

// TeamsOn returns the active teams for a day.
func (r Registry) TeamsOn(dayKey string) []string {
	return r[dayKey]
}

// HasTeam reports whether the team is active on the day.
func (r Registry) HasTeam(dayKey, team string) bool {
	for _, t := range r[dayKey] {
		if t == team {
			return true
		}
	}
	return false
}

// Clone copies the registry including its team lists.
func (r Registry) Clone() Registry {
	next := make(Registry, len(r))
	for day, teams := range r {
		next[day] = append([]string(nil), teams...)
	}
	return next
}

// ApplyRange overwrites the team list for every day from startKey through
// endKey inclusive. Replacement is total per day, never a merge, so applying
// the same range twice is idempotent.
func ApplyRange(reg Registry, startKey, endKey string, teams []string) (Registry, error) {
	start, err := calendar.ParseDayKey(startKey)
	if err != nil {
		return nil, err
	}
	end, err := calendar.ParseDayKey(endKey)
	if err != nil {
		return nil, err
	}
	if end.Before(start) {
		return nil, fmt.Errorf("roster range %s..%s: end precedes start", startKey, endKey)
	}

	next := reg.Clone()
	for _, day := range calendar.DaysBetween(start, end) {
		next[day] = append([]string(nil), teams...)
	}
	return next, nil
}

// Package calendar holds the date arithmetic the scheduling engine depends on.
// Day keys are canonical YYYY-MM-DD strings built from local calendar fields,
// never from a UTC-shifted instant: a date constructed at local midnight must
// serialize to the same key in every process time zone.
package calendar

import (
	"fmt"
	"time"
)

// DayKeyLayout is the canonical day key format.
const DayKeyLayout = "2006-01-02"

// DateKey formats the date using its own calendar fields.
func DateKey(t time.Time) string {
	return t.Format(DayKeyLayout)
}

// ParseDayKey parses a canonical day key in the local time zone.
func ParseDayKey(key string) (time.Time, error) {
	t, err := time.ParseInLocation(DayKeyLayout, key, time.Local)
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid day key %q: %w", key, err)
	}
	return t, nil
}

// IsDayKey reports whether key is a well-formed canonical day key.
func IsDayKey(key string) bool {
	_, err := ParseDayKey(key)
	return err == nil
}

// WeekOf returns the Monday-through-Sunday window containing t. Monday is
// always position 0 regardless of the input day of week.
func WeekOf(t time.Time) [7]time.Time {
	// time.Weekday has Sunday at 0; shift so Monday is the week start.
	offset := (int(t.Weekday()) + 6) % 7

	var week [7]time.Time
	for i := 0; i < 7; i++ {
		week[i] = time.Date(t.Year(), t.Month(), t.Day()-offset+i, 0, 0, 0, 0, t.Location())
	}
	return week
}

// NextWorkingDay returns the day key one day after dayKey, skipping the
// weekend: Friday advances to Monday, a Saturday origin lands on Monday too.
func NextWorkingDay(dayKey string) (string, error) {
	t, err := ParseDayKey(dayKey)
	if err != nil {
		return "", err
	}

	t = addDays(t, 1)
	if t.Weekday() == time.Saturday {
		t = addDays(t, 2)
	}
	if t.Weekday() == time.Sunday {
		t = addDays(t, 1)
	}
	return DateKey(t), nil
}

// DaysBetween enumerates day keys from start to end inclusive. Returns nil
// when end precedes start.
func DaysBetween(start, end time.Time) []string {
	var keys []string
	for d := time.Date(start.Year(), start.Month(), start.Day(), 0, 0, 0, 0, start.Location()); !d.After(end); d = addDays(d, 1) {
		keys = append(keys, DateKey(d))
	}
	return keys
}

// addDays moves by whole calendar days; time.Date normalizes across month and
// DST boundaries.
func addDays(t time.Time, n int) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day()+n, 0, 0, 0, 0, t.Location())
}

// Package snapshot defines the serializable unit of import/export: the full
// work order collection plus the team availability registry. A snapshot is
// loaded or replaced wholesale, never patched.
package snapshot

import (
	"fmt"

	"go.uber.org/multierr"

	"github.com/installplanhq/installplan-backend/internal/calendar"
	"github.com/installplanhq/installplan-backend/internal/schedule"
	pkgerrors "github.com/installplanhq/installplan-backend/pkg/errors"
)

// Snapshot is the persisted and exported state shape.
type Snapshot struct {
	Works      []schedule.WorkOrder `json:"works"`
	Teams      schedule.Registry    `json:"teams"`
	ExportedAt string               `json:"date,omitempty"`
}

// Validate checks every record before a snapshot may replace live state.
// All problems are collected so a malformed import reports everything at
// once; the caller applies nothing unless this returns nil.
func (s Snapshot) Validate() error {
	var errs error

	seen := make(map[string]struct{}, len(s.Works))
	for i, w := range s.Works {
		if w.ID == "" {
			errs = multierr.Append(errs, fmt.Errorf("works[%d]: missing id", i))
			continue
		}
		if _, dup := seen[w.ID]; dup {
			errs = multierr.Append(errs, fmt.Errorf("works[%d]: duplicate id %q", i, w.ID))
		}
		seen[w.ID] = struct{}{}

		if w.Load <= 0 || w.Load > 1 {
			errs = multierr.Append(errs, fmt.Errorf("works[%d] (%s): load %v outside (0, 1]", i, w.ID, w.Load))
		}
		if !w.Status.IsValid() {
			errs = multierr.Append(errs, fmt.Errorf("works[%d] (%s): invalid status %q", i, w.ID, w.Status))
		}
		if !w.Type.IsValid() {
			errs = multierr.Append(errs, fmt.Errorf("works[%d] (%s): invalid type %q", i, w.ID, w.Type))
		}

		hasDate := w.ScheduledDate != ""
		hasTeam := w.AssignedTeam != ""
		if hasDate != hasTeam {
			errs = multierr.Append(errs, fmt.Errorf("works[%d] (%s): scheduledDate and assignedTeam must be set together", i, w.ID))
		}
		if w.Scheduled() != hasDate {
			errs = multierr.Append(errs, fmt.Errorf("works[%d] (%s): status %q inconsistent with assignment fields", i, w.ID, w.Status))
		}
		if hasDate && !calendar.IsDayKey(w.ScheduledDate) {
			errs = multierr.Append(errs, fmt.Errorf("works[%d] (%s): malformed scheduledDate %q", i, w.ID, w.ScheduledDate))
		}
	}

	for day := range s.Teams {
		if !calendar.IsDayKey(day) {
			errs = multierr.Append(errs, fmt.Errorf("teams: malformed day key %q", day))
		}
	}

	if errs == nil {
		return nil
	}

	details := make([]string, 0)
	for _, e := range multierr.Errors(errs) {
		details = append(details, e.Error())
	}
	return pkgerrors.Wrap(pkgerrors.CodeValidation, errs, "invalid snapshot").
		WithDetails(map[string]any{"problems": details})
}

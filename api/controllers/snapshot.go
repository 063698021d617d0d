package controllers

import (
	"net/http"

	"github.com/installplanhq/installplan-backend/api/responses"
	"github.com/installplanhq/installplan-backend/api/validators"
	"github.com/installplanhq/installplan-backend/internal/planner"
	"github.com/installplanhq/installplan-backend/internal/snapshot"
	"github.com/installplanhq/installplan-backend/pkg/logger"
)

// SnapshotImport replaces the whole planning state with the posted snapshot.
// Validation failures leave the current state untouched.
func SnapshotImport(svc planner.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var snap snapshot.Snapshot
		if err := validators.DecodeJSONBody(r, &snap); err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		res, err := svc.ImportSnapshot(r.Context(), snap)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		responses.WriteSuccess(w, res)
	}
}

// SnapshotExport returns the full planning state for download.
func SnapshotExport(svc planner.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		snap, err := svc.ExportSnapshot(r.Context())
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		responses.WriteSuccess(w, snap)
	}
}

// PlannerReset wipes every work order and the whole roster.
func PlannerReset(svc planner.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if err := svc.Reset(r.Context()); err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		responses.WriteSuccess(w, map[string]string{"status": "reset"})
	}
}

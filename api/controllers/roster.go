package controllers

import (
	"net/http"
	"strings"

	"github.com/installplanhq/installplan-backend/api/responses"
	"github.com/installplanhq/installplan-backend/api/validators"
	"github.com/installplanhq/installplan-backend/internal/planner"
	pkgerrors "github.com/installplanhq/installplan-backend/pkg/errors"
	"github.com/installplanhq/installplan-backend/pkg/logger"
)

type rosterApplyRequest struct {
	StartDate string   `json:"startDate" validate:"required"`
	EndDate   string   `json:"endDate" validate:"required"`
	Teams     []string `json:"teams" validate:"required,min=1,dive,required"`
}

// RosterApply replaces the team list for every day in the range and reports
// how many assignments the change displaced.
func RosterApply(svc planner.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var payload rosterApplyRequest
		if err := validators.DecodeJSONBody(r, &payload); err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		teams := make([]string, 0, len(payload.Teams))
		for _, team := range payload.Teams {
			teams = append(teams, strings.TrimSpace(team))
		}

		res, err := svc.ApplyRoster(r.Context(), planner.RosterApplyParams{
			StartDate: strings.TrimSpace(payload.StartDate),
			EndDate:   strings.TrimSpace(payload.EndDate),
			Teams:     teams,
		})
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		responses.WriteSuccess(w, res)
	}
}

// RosterFetch returns the registry, optionally limited to a from/to range.
func RosterFetch(svc planner.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		from, err := validators.ParseQueryDay(r, "from", false)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		to, err := validators.ParseQueryDay(r, "to", false)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		if (from == "") != (to == "") {
			responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeValidation, "from and to must be provided together"))
			return
		}

		reg, err := svc.Roster(r.Context(), from, to)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		responses.WriteSuccess(w, reg)
	}
}

package controllers

import (
	"net/http"

	"github.com/installplanhq/installplan-backend/api/responses"
	"github.com/installplanhq/installplan-backend/api/validators"
	"github.com/installplanhq/installplan-backend/internal/planner"
	"github.com/installplanhq/installplan-backend/pkg/logger"
)

// BoardFetch returns the week containing the requested date, one entry per
// rostered team per day with its committed and remaining hours.
func BoardFetch(svc planner.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		date, err := validators.ParseQueryDay(r, "date", true)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		board, err := svc.Board(r.Context(), date)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		responses.WriteSuccess(w, board)
	}
}

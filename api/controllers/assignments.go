package controllers

import (
	"net/http"
	"strings"

	"github.com/installplanhq/installplan-backend/api/responses"
	"github.com/installplanhq/installplan-backend/api/validators"
	"github.com/installplanhq/installplan-backend/internal/planner"
	"github.com/installplanhq/installplan-backend/pkg/logger"
)

type proposeRequest struct {
	WorkOrderID string `json:"workOrderId" validate:"required"`
	Date        string `json:"date" validate:"required"`
	Team        string `json:"team" validate:"required"`
}

// AssignmentPropose asks the planner to place an order on a day and team.
// Overflow comes back as a normal response, not an error; the client decides
// whether to confirm the split.
func AssignmentPropose(svc planner.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var payload proposeRequest
		if err := validators.DecodeJSONBody(r, &payload); err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		res, err := svc.Propose(r.Context(), planner.ProposeParams{
			WorkOrderID: strings.TrimSpace(payload.WorkOrderID),
			Date:        strings.TrimSpace(payload.Date),
			Team:        strings.TrimSpace(payload.Team),
		})
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		responses.WriteSuccess(w, res)
	}
}

type splitRequest struct {
	WorkOrderID    string  `json:"workOrderId" validate:"required"`
	Date           string  `json:"date" validate:"required"`
	Team           string  `json:"team" validate:"required"`
	AvailableHours float64 `json:"availableHours" validate:"min=0,max=8"`
}

// AssignmentSplit confirms a previously reported overflow.
func AssignmentSplit(svc planner.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var payload splitRequest
		if err := validators.DecodeJSONBody(r, &payload); err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		res, err := svc.ConfirmSplit(r.Context(), planner.SplitParams{
			WorkOrderID:    strings.TrimSpace(payload.WorkOrderID),
			Date:           strings.TrimSpace(payload.Date),
			Team:           strings.TrimSpace(payload.Team),
			AvailableHours: payload.AvailableHours,
		})
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		responses.WriteSuccess(w, res)
	}
}

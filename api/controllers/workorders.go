package controllers

import (
	"net/http"
	"strings"

	"github.com/go-chi/chi/v5"

	"github.com/installplanhq/installplan-backend/api/responses"
	"github.com/installplanhq/installplan-backend/api/validators"
	"github.com/installplanhq/installplan-backend/internal/planner"
	"github.com/installplanhq/installplan-backend/internal/schedule"
	"github.com/installplanhq/installplan-backend/pkg/enums"
	pkgerrors "github.com/installplanhq/installplan-backend/pkg/errors"
	"github.com/installplanhq/installplan-backend/pkg/logger"
)

type workOrderCreateRequest struct {
	Code           string  `json:"code"`
	Client         string  `json:"client" validate:"required"`
	Address        string  `json:"address"`
	City           string  `json:"city"`
	CoordX         float64 `json:"coordX"`
	CoordY         float64 `json:"coordY"`
	DateAccepted   string  `json:"dateAccepted"`
	DateExpiration string  `json:"dateExpiration"`
	TotalDays      int     `json:"totalDays"`
	Load           float64 `json:"load" validate:"required,gt=0,lte=1"`
	Type           string  `json:"type"`
}

func (r workOrderCreateRequest) toParams() (planner.CreateWorkOrderParams, error) {
	params := planner.CreateWorkOrderParams{
		Code:           strings.TrimSpace(r.Code),
		Client:         strings.TrimSpace(r.Client),
		Address:        strings.TrimSpace(r.Address),
		City:           strings.TrimSpace(r.City),
		Coordinates:    schedule.Coordinates{X: r.CoordX, Y: r.CoordY},
		DateAccepted:   strings.TrimSpace(r.DateAccepted),
		DateExpiration: strings.TrimSpace(r.DateExpiration),
		TotalDays:      r.TotalDays,
		Load:           r.Load,
	}

	if raw := strings.TrimSpace(r.Type); raw != "" {
		workType, err := enums.ParseWorkType(raw)
		if err != nil {
			return planner.CreateWorkOrderParams{}, pkgerrors.New(pkgerrors.CodeValidation, "invalid work type")
		}
		params.Type = workType
	}

	return params, nil
}

// WorkOrderCreate registers a new order in the backlog.
func WorkOrderCreate(svc planner.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var payload workOrderCreateRequest
		if err := validators.DecodeJSONBody(r, &payload); err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		params, err := payload.toParams()
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		created, err := svc.CreateWorkOrder(r.Context(), params)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		responses.WriteSuccessStatus(w, http.StatusCreated, created)
	}
}

// BacklogList returns every unscheduled order.
func BacklogList(svc planner.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		backlog, err := svc.Backlog(r.Context())
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		responses.WriteSuccess(w, backlog)
	}
}

// WorkOrderUnassign returns a scheduled order to the backlog.
func WorkOrderUnassign(svc planner.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id := chi.URLParam(r, "workOrderId")
		if id == "" {
			responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeValidation, "work order id is required"))
			return
		}

		updated, err := svc.Unassign(r.Context(), id)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		responses.WriteSuccess(w, updated)
	}
}

// WorkOrderToggleLock flips the fixed flag on an order.
func WorkOrderToggleLock(svc planner.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id := chi.URLParam(r, "workOrderId")
		if id == "" {
			responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeValidation, "work order id is required"))
			return
		}

		updated, err := svc.ToggleLock(r.Context(), id)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		responses.WriteSuccess(w, updated)
	}
}

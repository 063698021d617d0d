package routes

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/installplanhq/installplan-backend/api/controllers"
	"github.com/installplanhq/installplan-backend/api/middleware"
	"github.com/installplanhq/installplan-backend/internal/planner"
	"github.com/installplanhq/installplan-backend/pkg/config"
	"github.com/installplanhq/installplan-backend/pkg/db"
	"github.com/installplanhq/installplan-backend/pkg/logger"
)

func NewRouter(
	cfg *config.Config,
	logg *logger.Logger,
	dbP db.Pinger,
	plannerService planner.Service,
) http.Handler {
	r := chi.NewRouter()
	r.Use(
		middleware.Recoverer(logg),
		middleware.RequestID(logg),
		middleware.Logging(logg),
		middleware.CORS(cfg.CORS),
	)

	r.Route("/health", func(r chi.Router) {
		r.Get("/live", controllers.HealthLive(cfg))
		r.Get("/ready", controllers.HealthReady(cfg, logg, dbP))
	})

	r.Handle("/metrics", promhttp.Handler())

	r.Route("/api/v1", func(r chi.Router) {
		r.Route("/workorders", func(r chi.Router) {
			r.Post("/", controllers.WorkOrderCreate(plannerService, logg))
			r.Post("/{workOrderId}/unassign", controllers.WorkOrderUnassign(plannerService, logg))
			r.Post("/{workOrderId}/lock", controllers.WorkOrderToggleLock(plannerService, logg))
		})

		r.Get("/backlog", controllers.BacklogList(plannerService, logg))
		r.Get("/board", controllers.BoardFetch(plannerService, logg))

		r.Route("/assignments", func(r chi.Router) {
			r.Post("/propose", controllers.AssignmentPropose(plannerService, logg))
			r.Post("/split", controllers.AssignmentSplit(plannerService, logg))
		})

		r.Route("/roster", func(r chi.Router) {
			r.Get("/", controllers.RosterFetch(plannerService, logg))
			r.Put("/", controllers.RosterApply(plannerService, logg))
		})

		r.Route("/snapshot", func(r chi.Router) {
			r.Get("/", controllers.SnapshotExport(plannerService, logg))
			r.Post("/", controllers.SnapshotImport(plannerService, logg))
		})

		r.Post("/reset", controllers.PlannerReset(plannerService, logg))
	})

	return r
}

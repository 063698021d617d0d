package routes

import (
	"context"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/installplanhq/installplan-backend/internal/planner"
	"github.com/installplanhq/installplan-backend/internal/schedule"
	"github.com/installplanhq/installplan-backend/internal/snapshot"
	"github.com/installplanhq/installplan-backend/pkg/config"
	"github.com/installplanhq/installplan-backend/pkg/logger"
)

type stubPlanner struct{}

func (stubPlanner) Propose(context.Context, planner.ProposeParams) (*planner.ProposeResult, error) {
	return &planner.ProposeResult{Outcome: schedule.OutcomeDirect}, nil
}

func (stubPlanner) ConfirmSplit(context.Context, planner.SplitParams) (*planner.SplitResult, error) {
	return &planner.SplitResult{Kind: schedule.SplitKindSplit}, nil
}

func (stubPlanner) Unassign(_ context.Context, id string) (*schedule.WorkOrder, error) {
	return &schedule.WorkOrder{ID: id}, nil
}

func (stubPlanner) ToggleLock(_ context.Context, id string) (*schedule.WorkOrder, error) {
	return &schedule.WorkOrder{ID: id}, nil
}

func (stubPlanner) CreateWorkOrder(context.Context, planner.CreateWorkOrderParams) (*schedule.WorkOrder, error) {
	return &schedule.WorkOrder{ID: "new"}, nil
}

func (stubPlanner) Backlog(context.Context) ([]schedule.WorkOrder, error) {
	return nil, nil
}

func (stubPlanner) Board(context.Context, string) (*planner.BoardView, error) {
	return &planner.BoardView{}, nil
}

func (stubPlanner) ApplyRoster(context.Context, planner.RosterApplyParams) (*planner.RosterApplyResult, error) {
	return &planner.RosterApplyResult{}, nil
}

func (stubPlanner) Roster(context.Context, string, string) (schedule.Registry, error) {
	return schedule.Registry{}, nil
}

func (stubPlanner) ImportSnapshot(context.Context, snapshot.Snapshot) (*planner.ImportResult, error) {
	return &planner.ImportResult{}, nil
}

func (stubPlanner) ExportSnapshot(context.Context) (*snapshot.Snapshot, error) {
	return &snapshot.Snapshot{}, nil
}

func (stubPlanner) Reset(context.Context) error {
	return nil
}

func testRouter() http.Handler {
	cfg := &config.Config{}
	cfg.App.Env = "test"
	cfg.CORS.AllowedOrigins = "http://localhost:3000"
	logg := logger.New(logger.Options{ServiceName: "test", Output: io.Discard})
	return NewRouter(cfg, logg, nil, stubPlanner{})
}

func TestRouterWiresPlannerRoutes(t *testing.T) {
	router := testRouter()

	cases := []struct {
		method string
		path   string
		body   string
		status int
	}{
		{http.MethodGet, "/health/live", "", http.StatusOK},
		{http.MethodGet, "/metrics", "", http.StatusOK},
		{http.MethodGet, "/api/v1/backlog", "", http.StatusOK},
		{http.MethodGet, "/api/v1/board?date=2025-12-10", "", http.StatusOK},
		{http.MethodPost, "/api/v1/workorders", `{"client":"C","load":0.5}`, http.StatusCreated},
		{http.MethodPost, "/api/v1/workorders/a/unassign", "", http.StatusOK},
		{http.MethodPost, "/api/v1/workorders/a/lock", "", http.StatusOK},
		{http.MethodPost, "/api/v1/assignments/propose", `{"workOrderId":"a","date":"2025-12-10","team":"A+B"}`, http.StatusOK},
		{http.MethodPost, "/api/v1/assignments/split", `{"workOrderId":"a","date":"2025-12-10","team":"A+B","availableHours":2}`, http.StatusOK},
		{http.MethodGet, "/api/v1/roster", "", http.StatusOK},
		{http.MethodPut, "/api/v1/roster", `{"startDate":"2025-12-10","endDate":"2025-12-12","teams":["A+B"]}`, http.StatusOK},
		{http.MethodGet, "/api/v1/snapshot", "", http.StatusOK},
		{http.MethodPost, "/api/v1/snapshot", `{"works":[],"teams":{}}`, http.StatusOK},
		{http.MethodPost, "/api/v1/reset", "", http.StatusOK},
	}

	for _, tc := range cases {
		var body io.Reader
		if tc.body != "" {
			body = strings.NewReader(tc.body)
		}
		req := httptest.NewRequest(tc.method, tc.path, body)
		resp := httptest.NewRecorder()
		router.ServeHTTP(resp, req)
		if resp.Code != tc.status {
			t.Fatalf("%s %s: expected %d got %d: %s", tc.method, tc.path, tc.status, resp.Code, resp.Body.String())
		}
	}
}

func TestRouterUnknownRouteIs404(t *testing.T) {
	router := testRouter()

	req := httptest.NewRequest(http.MethodGet, "/api/v1/unknown", nil)
	resp := httptest.NewRecorder()
	router.ServeHTTP(resp, req)
	if resp.Code != http.StatusNotFound {
		t.Fatalf("expected 404 got %d", resp.Code)
	}
}

func TestRouterSetsRequestID(t *testing.T) {
	router := testRouter()

	req := httptest.NewRequest(http.MethodGet, "/health/live", nil)
	resp := httptest.NewRecorder()
	router.ServeHTTP(resp, req)
	if resp.Header().Get("X-Request-Id") == "" {
		t.Fatal("expected request id header")
	}
}

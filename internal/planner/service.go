// Package planner owns the live scheduling state and drives the pure engine
// in internal/schedule. Every operation runs under one mutex, persists the
// resulting snapshot before it becomes visible, and reports metrics; the
// engine itself never sees the lock, the repository or the request context.
package planner

import (
	"context"
	"errors"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/installplanhq/installplan-backend/internal/calendar"
	"github.com/installplanhq/installplan-backend/internal/schedule"
	"github.com/installplanhq/installplan-backend/internal/snapshot"
	"github.com/installplanhq/installplan-backend/pkg/enums"
	pkgerrors "github.com/installplanhq/installplan-backend/pkg/errors"
	"github.com/installplanhq/installplan-backend/pkg/logger"
	"github.com/installplanhq/installplan-backend/pkg/metrics"
)

// Repository is the persistence observer notified after every committed
// mutation and queried once at boot.
type Repository interface {
	Save(ctx context.Context, works []schedule.WorkOrder, reg schedule.Registry) error
	Load(ctx context.Context) ([]schedule.WorkOrder, schedule.Registry, error)
}

// Service exposes the scheduling operations to the transport layer.
type Service interface {
	Propose(ctx context.Context, params ProposeParams) (*ProposeResult, error)
	ConfirmSplit(ctx context.Context, params SplitParams) (*SplitResult, error)
	Unassign(ctx context.Context, workOrderID string) (*schedule.WorkOrder, error)
	ToggleLock(ctx context.Context, workOrderID string) (*schedule.WorkOrder, error)
	CreateWorkOrder(ctx context.Context, params CreateWorkOrderParams) (*schedule.WorkOrder, error)
	Backlog(ctx context.Context) ([]schedule.WorkOrder, error)
	Board(ctx context.Context, dayKey string) (*BoardView, error)
	ApplyRoster(ctx context.Context, params RosterApplyParams) (*RosterApplyResult, error)
	Roster(ctx context.Context, from, to string) (schedule.Registry, error)
	ImportSnapshot(ctx context.Context, snap snapshot.Snapshot) (*ImportResult, error)
	ExportSnapshot(ctx context.Context) (*snapshot.Snapshot, error)
	Reset(ctx context.Context) error
}

// ProposeParams identifies a proposed assignment.
type ProposeParams struct {
	WorkOrderID string
	Date        string
	Team        string
}

// ProposeResult reports the engine outcome. AvailableHours is present only on
// overflow; WorkOrder only on a direct assignment.
type ProposeResult struct {
	Outcome        schedule.Outcome    `json:"outcome"`
	AvailableHours *float64            `json:"availableHours,omitempty"`
	WorkOrder      *schedule.WorkOrder `json:"workOrder,omitempty"`
}

// SplitParams confirms a previously reported overflow.
type SplitParams struct {
	WorkOrderID    string
	Date           string
	Team           string
	AvailableHours float64
}

// SplitResult lists the records the split produced.
type SplitResult struct {
	Kind  schedule.SplitKind   `json:"kind"`
	Parts []schedule.WorkOrder `json:"parts"`
}

// CreateWorkOrderParams describes a manually entered work order.
type CreateWorkOrderParams struct {
	Code           string
	Client         string
	Address        string
	City           string
	Coordinates    schedule.Coordinates
	DateAccepted   string
	DateExpiration string
	TotalDays      int
	Load           float64
	Type           enums.WorkType
}

// RosterApplyParams replaces the team list for every day in the range.
type RosterApplyParams struct {
	StartDate string
	EndDate   string
	Teams     []string
}

// RosterApplyResult reports the roster change and its reconciliation fallout.
type RosterApplyResult struct {
	DaysApplied int `json:"daysApplied"`
	Unassigned  int `json:"unassigned"`
}

// ImportResult reports what a snapshot load brought in.
type ImportResult struct {
	Works      int `json:"works"`
	RosterDays int `json:"rosterDays"`
	Unassigned int `json:"unassigned"`
}

// BoardView is the Monday-through-Sunday schedule board.
type BoardView struct {
	Days []BoardDay `json:"days"`
}

// BoardDay groups a day's teams and their committed work.
type BoardDay struct {
	Day   string      `json:"day"`
	Teams []BoardTeam `json:"teams"`
}

// BoardTeam carries the per-team capacity picture. Hours are rounded to one
// decimal for display only; the engine works on the raw floats.
type BoardTeam struct {
	Name           string               `json:"name"`
	CommittedHours decimal.Decimal      `json:"committedHours"`
	AvailableHours decimal.Decimal      `json:"availableHours"`
	Works          []schedule.WorkOrder `json:"works"`
}

// ServiceParams wires the planner dependencies.
type ServiceParams struct {
	Repo    Repository
	Logger  *logger.Logger
	Metrics *metrics.SchedulerMetrics
}

type service struct {
	mu      sync.Mutex
	works   []schedule.WorkOrder
	reg     schedule.Registry
	repo    Repository
	logg    *logger.Logger
	metrics *metrics.SchedulerMetrics
}

// NewService loads the persisted snapshot and runs one reconciliation pass
// over it before serving traffic, since stored assignments may reference
// roster entries that no longer exist.
func NewService(ctx context.Context, params ServiceParams) (Service, error) {
	if params.Repo == nil {
		return nil, pkgerrors.New(pkgerrors.CodeDependency, "planner repository required")
	}

	works, reg, err := params.Repo.Load(ctx)
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "loading snapshot")
	}
	if reg == nil {
		reg = schedule.Registry{}
	}

	s := &service{
		works:   works,
		reg:     reg,
		repo:    params.Repo,
		logg:    params.Logger,
		metrics: params.Metrics,
	}

	reconciled, changed := schedule.Reconcile(works, reg)
	if changed > 0 {
		if err := s.repo.Save(ctx, reconciled, reg); err != nil {
			return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "persisting boot reconciliation")
		}
		s.works = reconciled
		s.metrics.AddReconcileUnassigned(changed)
		if s.logg != nil {
			s.logg.Info(s.logg.WithField(ctx, "unassigned", changed), "boot reconciliation returned orders to backlog")
		}
	}
	s.metrics.IncReconcileRun()

	return s, nil
}

// commit persists the next state and only then makes it visible.
func (s *service) commit(ctx context.Context, works []schedule.WorkOrder, reg schedule.Registry) error {
	if err := s.repo.Save(ctx, works, reg); err != nil {
		return pkgerrors.Wrap(pkgerrors.CodeDependency, err, "persisting snapshot")
	}
	s.works = works
	s.reg = reg
	return nil
}

func (s *service) observe(operation string, start time.Time) {
	s.metrics.ObserveDuration(operation, time.Since(start))
}

func (s *service) Propose(ctx context.Context, params ProposeParams) (*ProposeResult, error) {
	defer s.observe("propose", time.Now())
	if !calendar.IsDayKey(params.Date) {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "date must be a YYYY-MM-DD day key")
	}
	if params.Team == "" {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "team is required")
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	res, err := schedule.Propose(s.works, params.WorkOrderID, params.Date, params.Team)
	if err != nil {
		return nil, translateEngineErr(err)
	}
	s.metrics.IncAssignment(string(res.Outcome))

	switch res.Outcome {
	case schedule.OutcomeDirect:
		if err := s.commit(ctx, res.Works, s.reg); err != nil {
			return nil, err
		}
		w := findWork(res.Works, params.WorkOrderID)
		return &ProposeResult{Outcome: res.Outcome, WorkOrder: w}, nil
	case schedule.OutcomeOverflow:
		hours := res.AvailableHours
		return &ProposeResult{Outcome: res.Outcome, AvailableHours: &hours}, nil
	default:
		return &ProposeResult{Outcome: res.Outcome}, nil
	}
}

func (s *service) ConfirmSplit(ctx context.Context, params SplitParams) (*SplitResult, error) {
	defer s.observe("confirm_split", time.Now())
	if !calendar.IsDayKey(params.Date) {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "date must be a YYYY-MM-DD day key")
	}
	if params.Team == "" {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "team is required")
	}
	if params.AvailableHours < 0 || params.AvailableHours > schedule.WorkdayHours {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "availableHours must be between 0 and 8")
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	res, err := schedule.ConfirmSplit(s.works, params.WorkOrderID, params.Date, params.Team, params.AvailableHours, uuid.NewString())
	if err != nil {
		return nil, translateEngineErr(err)
	}
	if err := s.commit(ctx, res.Works, s.reg); err != nil {
		return nil, err
	}
	s.metrics.IncSplit(string(res.Kind))

	return &SplitResult{Kind: res.Kind, Parts: res.Parts}, nil
}

func (s *service) Unassign(ctx context.Context, workOrderID string) (*schedule.WorkOrder, error) {
	defer s.observe("unassign", time.Now())

	s.mu.Lock()
	defer s.mu.Unlock()

	next, err := schedule.Unassign(s.works, workOrderID)
	if err != nil {
		return nil, translateEngineErr(err)
	}
	if err := s.commit(ctx, next, s.reg); err != nil {
		return nil, err
	}
	return findWork(next, workOrderID), nil
}

func (s *service) ToggleLock(ctx context.Context, workOrderID string) (*schedule.WorkOrder, error) {
	defer s.observe("toggle_lock", time.Now())

	s.mu.Lock()
	defer s.mu.Unlock()

	next, updated, err := schedule.ToggleLock(s.works, workOrderID)
	if err != nil {
		return nil, translateEngineErr(err)
	}
	if err := s.commit(ctx, next, s.reg); err != nil {
		return nil, err
	}
	return &updated, nil
}

func (s *service) CreateWorkOrder(ctx context.Context, params CreateWorkOrderParams) (*schedule.WorkOrder, error) {
	defer s.observe("create_work_order", time.Now())
	if params.Load <= 0 || params.Load > 1 {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "load must be in (0, 1]")
	}
	if params.Client == "" {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "client is required")
	}
	if params.Type != "" && !params.Type.IsValid() {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "invalid work type")
	}

	w := schedule.WorkOrder{
		ID:             uuid.NewString(),
		Code:           params.Code,
		Client:         params.Client,
		Address:        params.Address,
		City:           params.City,
		Coordinates:    params.Coordinates,
		DateAccepted:   params.DateAccepted,
		DateExpiration: params.DateExpiration,
		TotalDays:      params.TotalDays,
		CurrentDay:     1,
		Load:           params.Load,
		Status:         enums.WorkStatusPending,
		Type:           params.Type,
	}
	if w.DateAccepted == "" {
		w.DateAccepted = calendar.DateKey(time.Now())
	}
	if w.TotalDays < 1 {
		w.TotalDays = 1
	}
	if w.Type == "" {
		w.Type = enums.WorkTypeOther
	}
	if w.Code == "" {
		w.Code = "OT-" + w.ID[:8]
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	next := append(append([]schedule.WorkOrder(nil), s.works...), w)
	if err := s.commit(ctx, next, s.reg); err != nil {
		return nil, err
	}
	return &w, nil
}

func (s *service) Backlog(ctx context.Context) ([]schedule.WorkOrder, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	backlog := make([]schedule.WorkOrder, 0)
	for _, w := range s.works {
		if w.Status == enums.WorkStatusPending {
			backlog = append(backlog, w)
		}
	}
	return backlog, nil
}

func (s *service) Board(ctx context.Context, dayKey string) (*BoardView, error) {
	day, err := calendar.ParseDayKey(dayKey)
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeValidation, err, "invalid board date")
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	view := &BoardView{Days: make([]BoardDay, 0, 7)}
	for _, d := range calendar.WeekOf(day) {
		key := calendar.DateKey(d)
		boardDay := BoardDay{Day: key, Teams: make([]BoardTeam, 0)}
		for _, team := range s.reg.TeamsOn(key) {
			committed := schedule.TeamLoad(s.works, key, team)
			available := max(0, schedule.WorkdayHours-committed)

			teamWorks := make([]schedule.WorkOrder, 0)
			for _, w := range s.works {
				if w.Scheduled() && w.ScheduledDate == key && w.AssignedTeam == team {
					teamWorks = append(teamWorks, w)
				}
			}

			boardDay.Teams = append(boardDay.Teams, BoardTeam{
				Name:           team,
				CommittedHours: decimal.NewFromFloat(committed).Round(1),
				AvailableHours: decimal.NewFromFloat(available).Round(1),
				Works:          teamWorks,
			})
		}
		view.Days = append(view.Days, boardDay)
	}
	return view, nil
}

func (s *service) ApplyRoster(ctx context.Context, params RosterApplyParams) (*RosterApplyResult, error) {
	defer s.observe("apply_roster", time.Now())
	if len(params.Teams) == 0 {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "at least one team is required")
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	nextReg, err := schedule.ApplyRange(s.reg, params.StartDate, params.EndDate, params.Teams)
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeValidation, err, "invalid roster range")
	}

	nextWorks, unassigned := schedule.Reconcile(s.works, nextReg)
	if err := s.commit(ctx, nextWorks, nextReg); err != nil {
		return nil, err
	}
	s.metrics.IncReconcileRun()
	s.metrics.AddReconcileUnassigned(unassigned)

	start, _ := calendar.ParseDayKey(params.StartDate)
	end, _ := calendar.ParseDayKey(params.EndDate)
	result := &RosterApplyResult{
		DaysApplied: len(calendar.DaysBetween(start, end)),
		Unassigned:  unassigned,
	}
	if s.logg != nil && unassigned > 0 {
		s.logg.Info(s.logg.WithField(ctx, "unassigned", unassigned), "roster change returned orders to backlog")
	}
	return result, nil
}

func (s *service) Roster(ctx context.Context, from, to string) (schedule.Registry, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if from == "" && to == "" {
		return s.reg.Clone(), nil
	}

	start, err := calendar.ParseDayKey(from)
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeValidation, err, "invalid from date")
	}
	end, err := calendar.ParseDayKey(to)
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeValidation, err, "invalid to date")
	}

	slice := schedule.Registry{}
	for _, day := range calendar.DaysBetween(start, end) {
		if teams, ok := s.reg[day]; ok {
			slice[day] = append([]string(nil), teams...)
		}
	}
	return slice, nil
}

func (s *service) ImportSnapshot(ctx context.Context, snap snapshot.Snapshot) (*ImportResult, error) {
	defer s.observe("import_snapshot", time.Now())
	if err := snap.Validate(); err != nil {
		return nil, err
	}

	works := append([]schedule.WorkOrder(nil), snap.Works...)
	reg := snap.Teams.Clone()
	if reg == nil {
		reg = schedule.Registry{}
	}

	// Imported assignments may reference roster entries absent from the
	// imported registry itself, so one pass runs before anything is visible.
	works, unassigned := schedule.Reconcile(works, reg)

	s.mu.Lock()
	defer s.mu.Unlock()

	if err := s.commit(ctx, works, reg); err != nil {
		return nil, err
	}
	s.metrics.IncReconcileRun()
	s.metrics.AddReconcileUnassigned(unassigned)

	return &ImportResult{
		Works:      len(works),
		RosterDays: len(reg),
		Unassigned: unassigned,
	}, nil
}

func (s *service) ExportSnapshot(ctx context.Context) (*snapshot.Snapshot, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	return &snapshot.Snapshot{
		Works:      append([]schedule.WorkOrder(nil), s.works...),
		Teams:      s.reg.Clone(),
		ExportedAt: time.Now().Format(time.RFC3339),
	}, nil
}

func (s *service) Reset(ctx context.Context) error {
	defer s.observe("reset", time.Now())

	s.mu.Lock()
	defer s.mu.Unlock()

	return s.commit(ctx, []schedule.WorkOrder{}, schedule.Registry{})
}

func findWork(works []schedule.WorkOrder, id string) *schedule.WorkOrder {
	for i := range works {
		if works[i].ID == id {
			w := works[i]
			return &w
		}
	}
	return nil
}

func translateEngineErr(err error) error {
	switch {
	case errors.Is(err, schedule.ErrNotFound):
		return pkgerrors.Wrap(pkgerrors.CodeNotFound, err, "work order not found")
	case errors.Is(err, schedule.ErrLocked):
		return pkgerrors.Wrap(pkgerrors.CodeStateConflict, err, "work order is locked")
	case errors.Is(err, schedule.ErrNoRemainder):
		return pkgerrors.Wrap(pkgerrors.CodeValidation, err, "availableHours covers the whole order; propose a direct assignment instead")
	default:
		return pkgerrors.Wrap(pkgerrors.CodeValidation, err, "invalid scheduling request")
	}
}

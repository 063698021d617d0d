package snapshot

import (
	"context"
	"sort"

	"gorm.io/gorm"

	"github.com/installplanhq/installplan-backend/internal/schedule"
	"github.com/installplanhq/installplan-backend/pkg/db"
	"github.com/installplanhq/installplan-backend/pkg/db/models"
	"github.com/installplanhq/installplan-backend/pkg/enums"
)

// Repository persists the snapshot to the database. Every save replaces both
// tables in one transaction, mirroring the engine's atomic-batch semantics.
type Repository struct {
	client *db.Client
}

// NewRepository constructs a snapshot repository over the shared client.
func NewRepository(client *db.Client) *Repository {
	return &Repository{client: client}
}

// Save overwrites the persisted snapshot.
func (r *Repository) Save(ctx context.Context, works []schedule.WorkOrder, reg schedule.Registry) error {
	rows := make([]models.WorkOrder, 0, len(works))
	for _, w := range works {
		rows = append(rows, toRow(w))
	}

	days := make([]models.RosterDay, 0, len(reg))
	for day, teams := range reg {
		days = append(days, models.RosterDay{
			DayKey: day,
			Teams:  append([]string(nil), teams...),
		})
	}
	sort.Slice(days, func(i, j int) bool { return days[i].DayKey < days[j].DayKey })

	return r.client.WithTx(ctx, func(tx *gorm.DB) error {
		if err := tx.Where("1 = 1").Delete(&models.WorkOrder{}).Error; err != nil {
			return err
		}
		if err := tx.Where("1 = 1").Delete(&models.RosterDay{}).Error; err != nil {
			return err
		}
		if len(rows) > 0 {
			if err := tx.Create(&rows).Error; err != nil {
				return err
			}
		}
		if len(days) > 0 {
			if err := tx.Create(&days).Error; err != nil {
				return err
			}
		}
		return nil
	})
}

// Load reads the persisted snapshot. An empty database yields empty state,
// not an error.
func (r *Repository) Load(ctx context.Context) ([]schedule.WorkOrder, schedule.Registry, error) {
	var rows []models.WorkOrder
	if err := r.client.DB().WithContext(ctx).Order("created_at, id").Find(&rows).Error; err != nil {
		return nil, nil, err
	}

	var days []models.RosterDay
	if err := r.client.DB().WithContext(ctx).Find(&days).Error; err != nil {
		return nil, nil, err
	}

	works := make([]schedule.WorkOrder, 0, len(rows))
	for _, row := range rows {
		works = append(works, fromRow(row))
	}

	reg := make(schedule.Registry, len(days))
	for _, day := range days {
		reg[day.DayKey] = append([]string(nil), day.Teams...)
	}
	return works, reg, nil
}

func toRow(w schedule.WorkOrder) models.WorkOrder {
	row := models.WorkOrder{
		ID:           w.ID,
		Code:         w.Code,
		Client:       w.Client,
		Address:      w.Address,
		City:         w.City,
		CoordX:       w.Coordinates.X,
		CoordY:       w.Coordinates.Y,
		DateAccepted: w.DateAccepted,
		TotalDays:    w.TotalDays,
		CurrentDay:   w.CurrentDay,
		Load:         w.Load,
		Status:       w.Status,
		Type:         w.Type,
		IsSplit:      w.IsSplit,
		IsFixed:      w.IsFixed,
	}
	if w.DateExpiration != "" {
		v := w.DateExpiration
		row.DateExpiration = &v
	}
	if w.ScheduledDate != "" {
		v := w.ScheduledDate
		row.ScheduledDate = &v
	}
	if w.AssignedTeam != "" {
		v := w.AssignedTeam
		row.AssignedTeam = &v
	}
	return row
}

func fromRow(row models.WorkOrder) schedule.WorkOrder {
	w := schedule.WorkOrder{
		ID:           row.ID,
		Code:         row.Code,
		Client:       row.Client,
		Address:      row.Address,
		City:         row.City,
		Coordinates:  schedule.Coordinates{X: row.CoordX, Y: row.CoordY},
		DateAccepted: row.DateAccepted,
		TotalDays:    row.TotalDays,
		CurrentDay:   row.CurrentDay,
		Load:         row.Load,
		Status:       row.Status,
		Type:         row.Type,
		IsSplit:      row.IsSplit,
		IsFixed:      row.IsFixed,
	}
	if row.DateExpiration != nil {
		w.DateExpiration = *row.DateExpiration
	}
	if row.ScheduledDate != nil {
		w.ScheduledDate = *row.ScheduledDate
	}
	if row.AssignedTeam != nil {
		w.AssignedTeam = *row.AssignedTeam
	}
	if w.Status == "" {
		w.Status = enums.WorkStatusPending
	}
	return w
}

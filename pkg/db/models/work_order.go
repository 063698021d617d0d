package models

import (
	"time"

	"github.com/installplanhq/installplan-backend/pkg/enums"
)

// WorkOrder persists one row of the scheduling snapshot. scheduled_date and
// assigned_team are nullable together: both set exactly when status is scheduled.
type WorkOrder struct {
	ID             string           `gorm:"column:id;primaryKey"`
	Code           string           `gorm:"column:code;not null"`
	Client         string           `gorm:"column:client;not null"`
	Address        string           `gorm:"column:address"`
	City           string           `gorm:"column:city"`
	CoordX         float64          `gorm:"column:coord_x"`
	CoordY         float64          `gorm:"column:coord_y"`
	DateAccepted   string           `gorm:"column:date_accepted;not null"`
	DateExpiration *string          `gorm:"column:date_expiration"`
	TotalDays      int              `gorm:"column:total_days;not null;default:1"`
	CurrentDay     int              `gorm:"column:current_day;not null;default:1"`
	Load           float64          `gorm:"column:load;not null"`
	Status         enums.WorkStatus `gorm:"column:status;not null;default:'pending'"`
	ScheduledDate  *string          `gorm:"column:scheduled_date"`
	AssignedTeam   *string          `gorm:"column:assigned_team"`
	Type           enums.WorkType   `gorm:"column:type;not null;default:'other'"`
	IsSplit        bool             `gorm:"column:is_split;not null;default:false"`
	IsFixed        bool             `gorm:"column:is_fixed;not null;default:false"`
	CreatedAt      time.Time        `gorm:"column:created_at;autoCreateTime"`
	UpdatedAt      time.Time        `gorm:"column:updated_at;autoUpdateTime"`
}

// TableName pins the snapshot table name.
func (WorkOrder) TableName() string { return "work_orders" }

package models

import "time"

// RosterDay persists the team availability registry entry for one calendar day.
// Teams keeps insertion order; the JSON serializer works on both drivers.
type RosterDay struct {
	DayKey    string    `gorm:"column:day_key;primaryKey"`
	Teams     []string  `gorm:"column:teams;serializer:json"`
	CreatedAt time.Time `gorm:"column:created_at;autoCreateTime"`
	UpdatedAt time.Time `gorm:"column:updated_at;autoUpdateTime"`
}

// TableName pins the registry table name.
func (RosterDay) TableName() string { return "roster_days" }

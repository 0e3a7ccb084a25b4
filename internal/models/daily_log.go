package models

import "github.com/localnerve/daycare-data/internal/types"

// Daily log entry types
const (
	LogTypeMeal            = "Meal"
	LogTypeNap             = "Nap"
	LogTypeDiaper          = "Diaper"
	LogTypeMood            = "Mood"
	LogTypeGeneralActivity = "General Activity"
)

// DailyLogTypes lists every accepted daily log type
var DailyLogTypes = []string{LogTypeMeal, LogTypeNap, LogTypeDiaper, LogTypeMood, LogTypeGeneralActivity}

// DailyLogEntry is an immutable activity record for a child
type DailyLogEntry struct {
	ID        string          `json:"id,omitempty"`
	ChildID   string          `json:"childId" validate:"required"`
	StaffID   string          `json:"staffId" validate:"required"`
	CenterID  string          `json:"centerId" validate:"required"`
	Timestamp types.Timestamp `json:"timestamp" validate:"required"`
	Type      string          `json:"type" validate:"required,oneof=Meal Nap Diaper Mood 'General Activity'"`
	Details   string          `json:"details" validate:"required"`
}

// DailyLogView is a daily log with its soft references resolved.
// A reference that does not resolve is null.
type DailyLogView struct {
	DailyLogEntry
	Child  *Child  `json:"child"`
	Staff  *Staff  `json:"staff"`
	Center *Center `json:"center"`
}

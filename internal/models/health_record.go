package models

import "github.com/localnerve/daycare-data/internal/types"

// Health record types
const (
	HealthTypeIncident   = "Incident"
	HealthTypeMedication = "Medication Administered"
)

// HealthRecordTypes lists every accepted health record type
var HealthRecordTypes = []string{HealthTypeIncident, HealthTypeMedication}

// Severities lists every accepted incident severity
var Severities = []string{"Low", "Medium", "High"}

// HealthRecordEntry is an immutable incident or medication record
type HealthRecordEntry struct {
	ID               string          `json:"id,omitempty"`
	ChildID          string          `json:"childId" validate:"required"`
	RecordedByUserID string          `json:"recordedByUserId" validate:"required"`
	CenterID         string          `json:"centerId" validate:"required"`
	ClassID          string          `json:"classId" validate:"required"`
	Timestamp        types.Timestamp `json:"timestamp" validate:"required"`
	Type             string          `json:"type" validate:"required,oneof=Incident 'Medication Administered'"`
	Severity         string          `json:"severity,omitempty" validate:"omitempty,oneof=Low Medium High"`
	Details          string          `json:"details" validate:"required"`
	ActionTaken      string          `json:"actionTaken" validate:"required"`
	MedicationName   string          `json:"medicationName,omitempty"`
	Dose             string          `json:"dose,omitempty"`
	Notes            string          `json:"notes,omitempty"`
}

// HealthRecordView is a health record with its soft references resolved
type HealthRecordView struct {
	HealthRecordEntry
	Child  *Child  `json:"child"`
	Staff  *Staff  `json:"staff"`
	Center *Center `json:"center"`
	Class  *Class  `json:"class"`
}

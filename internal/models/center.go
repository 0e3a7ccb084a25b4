package models

import "github.com/localnerve/daycare-data/internal/types"

// Center is a childcare location
type Center struct {
	ID        string           `json:"id,omitempty"`
	Name      string           `json:"name" validate:"required"`
	Location  string           `json:"location" validate:"required"`
	Timestamp *types.Timestamp `json:"timestamp,omitempty"`
}

// Class is a group of children within one center
type Class struct {
	ID       string `json:"id,omitempty"`
	Name     string `json:"name" validate:"required"`
	CenterID string `json:"centerId" validate:"required"`
}

// Staff is a staff member of one center
type Staff struct {
	ID        string           `json:"id,omitempty"`
	FirstName string           `json:"firstName" validate:"required"`
	LastName  string           `json:"lastName" validate:"required"`
	Role      string           `json:"role" validate:"required"`
	CenterID  string           `json:"centerId" validate:"required"`
	Timestamp *types.Timestamp `json:"timestamp,omitempty"`
}

// DisplayName is "<firstName> <lastName>"
func (s Staff) DisplayName() string {
	return s.FirstName + " " + s.LastName
}

package models

import (
	"time"

	"github.com/localnerve/daycare-data/internal/types"
)

// Child belongs to one class and one center.
// Age is derived from BirthDate whenever a child is read and is never stored.
type Child struct {
	ID        string          `json:"id,omitempty"`
	FirstName string          `json:"firstName" validate:"required"`
	LastName  string          `json:"lastName" validate:"required"`
	ClassID   string          `json:"classId" validate:"required"`
	CenterID  string          `json:"centerId" validate:"required"`
	StaffID   string          `json:"staffId,omitempty"`
	BirthDate types.Timestamp `json:"birthDate" validate:"required"`
	Age       *int            `json:"age,omitempty"`
}

// DisplayName is "<firstName> <lastName>"
func (c Child) DisplayName() string {
	return c.FirstName + " " + c.LastName
}

// WithAge returns a copy of c with Age computed for the given day
func (c Child) WithAge(now time.Time) Child {
	age := CalculateAge(c.BirthDate.Time, now)
	c.Age = &age
	return c
}

// CalculateAge returns whole years between birthDate and now, in UTC calendar terms
func CalculateAge(birthDate, now time.Time) int {
	birthDate = birthDate.UTC()
	now = now.UTC()

	age := now.Year() - birthDate.Year()
	if now.Month() < birthDate.Month() ||
		(now.Month() == birthDate.Month() && now.Day() < birthDate.Day()) {
		age--
	}
	return age
}

package analytics

import (
	"time"

	"github.com/localnerve/daycare-data/internal/store"
)

// Filter holds the optional constraints an aggregation accepts.
// Operations that force or clear Type work on a Clone, never on the caller's value.
type Filter struct {
	ChildID   string
	StaffID   string
	CenterID  string
	Type      string
	Severity  string
	StartDate *time.Time
	EndDate   *time.Time
}

// Clone returns a deep copy of f
func (f Filter) Clone() Filter {
	c := f
	if f.StartDate != nil {
		start := *f.StartDate
		c.StartDate = &start
	}
	if f.EndDate != nil {
		end := *f.EndDate
		c.EndDate = &end
	}
	return c
}

// WithType returns a clone of f constrained to one type; "" clears the constraint
func (f Filter) WithType(recordType string) Filter {
	c := f.Clone()
	c.Type = recordType
	return c
}

// MatchesSeverity applies the severity constraint, which is never pushed to the store
func (f Filter) MatchesSeverity(severity string) bool {
	return f.Severity == "" || f.Severity == severity
}

// Fields names the stored fields a collection uses for each filter key
type Fields struct {
	Child  string
	Staff  string
	Center string
	Type   string
}

var (
	// DailyLogFields maps filter keys for the daily log collection
	DailyLogFields = Fields{Child: "childId", Staff: "staffId", Center: "centerId", Type: "type"}
	// HealthRecordFields maps filter keys for the health record collection
	HealthRecordFields = Fields{Child: "childId", Staff: "recordedByUserId", Center: "centerId", Type: "type"}
)

// BuildQuery composes f into a conjunctive query. Absent fields add no constraint.
// The range is not checked for order; an inverted range simply matches nothing.
func BuildQuery(collection string, fields Fields, f Filter) store.Query {
	q := store.Query{Collection: collection}

	if f.ChildID != "" {
		q = q.Equal(fields.Child, f.ChildID)
	}
	if f.StaffID != "" {
		q = q.Equal(fields.Staff, f.StaffID)
	}
	if f.CenterID != "" {
		q = q.Equal(fields.Center, f.CenterID)
	}
	if f.Type != "" {
		q = q.Equal(fields.Type, f.Type)
	}
	if f.StartDate != nil {
		start := *f.StartDate
		q.From = &start
	}
	if f.EndDate != nil {
		end := *f.EndDate
		q.To = &end
	}

	return q
}

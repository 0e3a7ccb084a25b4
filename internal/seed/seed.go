// Package seed loads a sample data set into a document store.
//
// Entries name each other with a "key" instead of a store id. References
// (centerId, classId, staffId, childId, recordedByUserId) that hold a key are
// rewritten to the generated id before insert. Entries are validated against
// their entity schema but stored as written, so alternate timestamp encodings
// survive into the store.
package seed

import (
	"context"
	"fmt"

	"github.com/goccy/go-json"
	"github.com/localnerve/daycare-data/internal/models"
	"github.com/localnerve/daycare-data/internal/services"
	"github.com/localnerve/daycare-data/internal/store"
	"github.com/localnerve/daycare-data/internal/validation"
)

// Entry is one document of the data set
type Entry map[string]json.RawMessage

// DataSet is the seed file layout, one list per collection
type DataSet struct {
	Centers       []Entry `json:"centers"`
	Classes       []Entry `json:"classes"`
	StaffMembers  []Entry `json:"staffMembers"`
	Children      []Entry `json:"children"`
	DailyLogs     []Entry `json:"dailyLogs"`
	HealthRecords []Entry `json:"healthRecords"`
}

// Summary counts the documents inserted per collection
type Summary map[string]int

var referenceFields = []string{"centerId", "classId", "staffId", "childId", "recordedByUserId"}

// Parse decodes a seed file
func Parse(data []byte) (*DataSet, error) {
	var ds DataSet
	if err := json.Unmarshal(data, &ds); err != nil {
		return nil, fmt.Errorf("failed to parse seed data: %w", err)
	}
	return &ds, nil
}

// Load inserts the data set in dependency order
func Load(ctx context.Context, st store.Store, ds *DataSet) (Summary, error) {
	l := loader{store: st, ids: make(map[string]string)}

	steps := []struct {
		collection string
		entries    []Entry
		validate   func(Entry) error
	}{
		{services.CollectionCenters, ds.Centers, validateAs[models.Center]},
		{services.CollectionClasses, ds.Classes, validateAs[models.Class]},
		{services.CollectionStaff, ds.StaffMembers, validateAs[models.Staff]},
		{services.CollectionChildren, ds.Children, validateAs[models.Child]},
		{services.CollectionDailyLogs, ds.DailyLogs, validateAs[models.DailyLogEntry]},
		{services.CollectionHealthRecords, ds.HealthRecords, validateAs[models.HealthRecordEntry]},
	}

	summary := make(Summary, len(steps))
	for _, step := range steps {
		for i, entry := range step.entries {
			if err := l.insert(ctx, step.collection, entry, step.validate); err != nil {
				return summary, fmt.Errorf("%s[%d]: %w", step.collection, i, err)
			}
			summary[step.collection]++
		}
	}
	return summary, nil
}

type loader struct {
	store store.Store
	ids   map[string]string
}

func (l *loader) insert(ctx context.Context, collection string, entry Entry, validate func(Entry) error) error {
	body := make(Entry, len(entry))
	var key string
	for field, raw := range entry {
		if field == "key" {
			if err := json.Unmarshal(raw, &key); err != nil {
				return fmt.Errorf("key must be a string: %w", err)
			}
			continue
		}
		body[field] = raw
	}

	if err := l.rewriteReferences(body); err != nil {
		return err
	}
	if err := validate(body); err != nil {
		return err
	}

	doc, err := l.store.Insert(ctx, collection, body)
	if err != nil {
		return err
	}
	if key != "" {
		l.ids[key] = doc.ID
	}
	return nil
}

func (l *loader) rewriteReferences(body Entry) error {
	for _, field := range referenceFields {
		raw, ok := body[field]
		if !ok {
			continue
		}
		var ref string
		if err := json.Unmarshal(raw, &ref); err != nil {
			continue
		}
		id, ok := l.ids[ref]
		if !ok {
			continue
		}
		rewritten, err := json.Marshal(id)
		if err != nil {
			return err
		}
		body[field] = rewritten
	}
	return nil
}

func validateAs[T any](body Entry) error {
	data, err := json.Marshal(body)
	if err != nil {
		return err
	}
	var v T
	if err := json.Unmarshal(data, &v); err != nil {
		return validation.DecodeError(err)
	}
	return validation.Validate(&v)
}

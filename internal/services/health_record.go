// health_record.go
//
// A childcare center data and analytics service
// Copyright (c) 2026 Alex Grant <info@localnerve.com> (https://www.localnerve.com), LocalNerve LLC
//
// This file is part of daycare-data.
// daycare-data is free software: you can redistribute it and/or modify it
// under the terms of the GNU Affero General Public License as published by the Free Software
// Foundation, either version 3 of the License, or (at your option) any later version.
// daycare-data is distributed in the hope that it will be useful, but WITHOUT ANY WARRANTY;
// without even the implied warranty of MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.
// See the GNU Affero General Public License for more details.
// You should have received a copy of the GNU Affero General Public License along with daycare-data.
// If not, see <https://www.gnu.org/licenses/>.
// Additional terms under GNU AGPL version 3 section 7:
// a) The reasonable legal notice of original copyright and author attribution must be preserved
//    by including the string: "Copyright (c) 2026 Alex Grant <info@localnerve.com> (https://www.localnerve.com), LocalNerve LLC"
//    in this material, copies, or source code of derived works.

package services

import (
	"context"

	"github.com/localnerve/daycare-data/internal/analytics"
	"github.com/localnerve/daycare-data/internal/models"
	"github.com/localnerve/daycare-data/internal/store"
	"github.com/localnerve/daycare-data/internal/validation"
)

// CreateHealthRecord validates and stores a health record, returning it with references resolved
func CreateHealthRecord(ctx context.Context, st store.Store, entry models.HealthRecordEntry) (models.HealthRecordView, error) {
	if err := validation.Validate(&entry); err != nil {
		return models.HealthRecordView{}, err
	}

	created, err := insertOne(ctx, st, CollectionHealthRecords, entry, "Failed to create health entry")
	if err != nil {
		return models.HealthRecordView{}, err
	}
	return resolveHealthRecord(ctx, analytics.Resolver{Store: st}, created)
}

// GetHealthRecordViews lists every health record with references resolved
func GetHealthRecordViews(ctx context.Context, st store.Store) ([]models.HealthRecordView, error) {
	return healthRecordViews(ctx, st, analytics.Filter{}, "Failed to fetch health records")
}

// GetHealthRecordViewsByChild lists a child's health records with references resolved
func GetHealthRecordViewsByChild(ctx context.Context, st store.Store, childID string) ([]models.HealthRecordView, error) {
	return healthRecordViews(ctx, st, analytics.Filter{ChildID: childID}, "Failed to fetch health records by child")
}

// GetHealthRecordViewsByStaff lists the health records a staff member recorded
func GetHealthRecordViewsByStaff(ctx context.Context, st store.Store, staffID string) ([]models.HealthRecordView, error) {
	return healthRecordViews(ctx, st, analytics.Filter{StaffID: staffID}, "Failed to fetch health records by staff")
}

// GetHealthRecordViewsByCenter lists a center's health records with references resolved
func GetHealthRecordViewsByCenter(ctx context.Context, st store.Store, centerID string) ([]models.HealthRecordView, error) {
	return healthRecordViews(ctx, st, analytics.Filter{CenterID: centerID}, "Failed to fetch health records by center")
}

func healthRecordViews(ctx context.Context, st store.Store, filter analytics.Filter, failure string) ([]models.HealthRecordView, error) {
	q := analytics.BuildQuery(CollectionHealthRecords, analytics.HealthRecordFields, filter)
	records, err := findAll[models.HealthRecordEntry](ctx, st, q, failure)
	if err != nil {
		return nil, err
	}

	r := analytics.Resolver{Store: st}
	views := make([]models.HealthRecordView, 0, len(records))
	for _, record := range records {
		view, err := resolveHealthRecord(ctx, r, record)
		if err != nil {
			return nil, err
		}
		views = append(views, view)
	}
	return views, nil
}

// fetchHealthRecords runs the filtered query; severity is applied after the fetch
func fetchHealthRecords(ctx context.Context, st store.Store, filter analytics.Filter) ([]models.HealthRecordEntry, error) {
	q := analytics.BuildQuery(CollectionHealthRecords, analytics.HealthRecordFields, filter)
	records, err := findAll[models.HealthRecordEntry](ctx, st, q, "Failed to fetch health records")
	if err != nil {
		return nil, err
	}

	if filter.Severity == "" {
		return records, nil
	}
	matched := records[:0]
	for _, record := range records {
		if filter.MatchesSeverity(record.Severity) {
			matched = append(matched, record)
		}
	}
	return matched, nil
}

// resolveHealthRecord joins child, staff and center one record at a time.
// The class is the record's own classId, or the child's when the record has none.
func resolveHealthRecord(ctx context.Context, r analytics.Resolver, entry models.HealthRecordEntry) (models.HealthRecordView, error) {
	view := models.HealthRecordView{HealthRecordEntry: entry}

	child, err := analytics.ResolveAs[models.Child](ctx, r, CollectionChildren, entry.ChildID)
	if err != nil {
		return view, err
	}
	staff, err := analytics.ResolveAs[models.Staff](ctx, r, CollectionStaff, entry.RecordedByUserID)
	if err != nil {
		return view, err
	}
	center, err := analytics.ResolveAs[models.Center](ctx, r, CollectionCenters, entry.CenterID)
	if err != nil {
		return view, err
	}

	classID := entry.ClassID
	if classID == "" && child != nil {
		classID = child.ClassID
	}
	class, err := analytics.ResolveAs[models.Class](ctx, r, CollectionClasses, classID)
	if err != nil {
		return view, err
	}

	view.Child, view.Staff, view.Center, view.Class = child, staff, center, class
	return view, nil
}

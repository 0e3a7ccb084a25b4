// daily_log.go
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

// CreateDailyLog validates and stores one daily log entry
func CreateDailyLog(ctx context.Context, st store.Store, entry models.DailyLogEntry) (models.DailyLogEntry, error) {
	if err := validation.Validate(&entry); err != nil {
		return models.DailyLogEntry{}, err
	}
	return insertOne(ctx, st, CollectionDailyLogs, entry, "Failed to create daily log")
}

// CreateDailyLogs validates every entry before storing any of them.
// Each insert is atomic on its own; a store failure part way leaves earlier entries stored.
func CreateDailyLogs(ctx context.Context, st store.Store, entries []models.DailyLogEntry) ([]models.DailyLogEntry, error) {
	for i := range entries {
		if err := validation.Validate(&entries[i]); err != nil {
			return nil, err
		}
	}

	created := make([]models.DailyLogEntry, 0, len(entries))
	for _, entry := range entries {
		out, err := insertOne(ctx, st, CollectionDailyLogs, entry, "Failed to create daily log")
		if err != nil {
			return nil, err
		}
		created = append(created, out)
	}
	return created, nil
}

// GetDailyLogs lists the daily logs matching filter
func GetDailyLogs(ctx context.Context, st store.Store, filter analytics.Filter) ([]models.DailyLogEntry, error) {
	return fetchDailyLogs(ctx, st, filter)
}

// GetAllDailyLogViews lists every daily log with its references resolved
func GetAllDailyLogViews(ctx context.Context, st store.Store) ([]models.DailyLogView, error) {
	logs, err := fetchDailyLogs(ctx, st, analytics.Filter{})
	if err != nil {
		return nil, err
	}

	views := make([]models.DailyLogView, 0, len(logs))
	for _, entry := range logs {
		view, err := resolveDailyLog(ctx, analytics.Resolver{Store: st}, entry)
		if err != nil {
			return nil, err
		}
		views = append(views, view)
	}
	return views, nil
}

// GetDailyLogView retrieves one daily log with its references resolved
func GetDailyLogView(ctx context.Context, st store.Store, id string) (models.DailyLogView, error) {
	entry, err := getOne[models.DailyLogEntry](ctx, st, CollectionDailyLogs, id, "Daily log not found")
	if err != nil {
		return models.DailyLogView{}, err
	}
	return resolveDailyLog(ctx, analytics.Resolver{Store: st}, entry)
}

func fetchDailyLogs(ctx context.Context, st store.Store, filter analytics.Filter) ([]models.DailyLogEntry, error) {
	q := analytics.BuildQuery(CollectionDailyLogs, analytics.DailyLogFields, filter)
	return findAll[models.DailyLogEntry](ctx, st, q, "Failed to fetch daily logs")
}

func resolveDailyLog(ctx context.Context, r analytics.Resolver, entry models.DailyLogEntry) (models.DailyLogView, error) {
	view := models.DailyLogView{DailyLogEntry: entry}

	child, err := analytics.ResolveAs[models.Child](ctx, r, CollectionChildren, entry.ChildID)
	if err != nil {
		return view, err
	}
	staff, err := analytics.ResolveAs[models.Staff](ctx, r, CollectionStaff, entry.StaffID)
	if err != nil {
		return view, err
	}
	center, err := analytics.ResolveAs[models.Center](ctx, r, CollectionCenters, entry.CenterID)
	if err != nil {
		return view, err
	}

	view.Child, view.Staff, view.Center = child, staff, center
	return view, nil
}

package services

import (
	"context"
	"fmt"

	"github.com/localnerve/daycare-data/internal/analytics"
	"github.com/localnerve/daycare-data/internal/models"
	"github.com/localnerve/daycare-data/internal/store"
	"golang.org/x/sync/errgroup"
)

// RunHealthAnalytics executes one health record aggregation.
// The caller's filter is never modified.
func RunHealthAnalytics(ctx context.Context, st store.Store, op analytics.Operation, filter analytics.Filter) (result interface{}, err error) {
	defer func() { observe(op, err) }()

	var reduce func([]models.HealthRecordEntry) analytics.Counts
	fetch := filter.Clone()

	switch op {
	case analytics.OpIncidentVsMedication:
		records, err := fetchHealthRecords(ctx, st, fetch)
		if err != nil {
			return nil, err
		}
		return analytics.IncidentVsMedicationCount(records), nil
	case analytics.OpIncidentsBySeverity:
		fetch, reduce = filter.WithType(models.HealthTypeIncident), analytics.BySeverity
	case analytics.OpIncidentsByChild:
		fetch, reduce = filter.WithType(models.HealthTypeIncident), analytics.ByChildID
	case analytics.OpMedicationByChild:
		fetch, reduce = filter.WithType(models.HealthTypeMedication), analytics.ByChildID
	case analytics.OpRecordsByStaff:
		reduce = analytics.ByStaffID
	case analytics.OpRecordsByCenter:
		reduce = analytics.ByCenterID
	case analytics.OpRecordsOverTime:
		reduce = analytics.RecordsOverTime
	case analytics.OpIncidentTypeBreakdown:
		fetch, reduce = filter.WithType(models.HealthTypeIncident), analytics.IncidentTypes
	case analytics.OpActionTakenSummary:
		reduce = analytics.ActionTaken
	case analytics.OpIncidentsByClass:
		return incidentsByClass(ctx, st, filter.WithType(models.HealthTypeIncident))
	case analytics.OpRecentHealthRecords:
		return recentHealthRecords(ctx, st)
	default:
		return nil, fmt.Errorf("unsupported health record operation %s", op)
	}

	records, err := fetchHealthRecords(ctx, st, fetch)
	if err != nil {
		return nil, err
	}
	return reduce(records), nil
}

// incidentsByClass groups incidents by class id, then batch resolves class names.
// Class ids without a class document are dropped from the result.
func incidentsByClass(ctx context.Context, st store.Store, filter analytics.Filter) (analytics.Counts, error) {
	records, err := fetchHealthRecords(ctx, st, filter)
	if err != nil {
		return nil, err
	}

	byClassID := analytics.CountByClassID(records)
	if len(byClassID) == 0 {
		return analytics.Counts{}, nil
	}

	ids := make([]string, 0, len(byClassID))
	for id := range byClassID {
		ids = append(ids, id)
	}

	names, err := analytics.NamesOf(ctx, analytics.Resolver{Store: st}, CollectionClasses, ids, className)
	if err != nil {
		return nil, err
	}
	return analytics.RekeyByName(byClassID, names), nil
}

// recentHealthRecords reads the newest records and batch resolves their children and classes
func recentHealthRecords(ctx context.Context, st store.Store) ([]analytics.RecentHealthRecord, error) {
	q := store.Query{Collection: CollectionHealthRecords, Order: store.OrderNewestFirst, Limit: analytics.RecentLimit}
	records, err := findAll[models.HealthRecordEntry](ctx, st, q, "Failed to fetch recent health records")
	if err != nil {
		return nil, err
	}
	if len(records) == 0 {
		return []analytics.RecentHealthRecord{}, nil
	}

	childIDs := make([]string, 0, len(records))
	classIDs := make([]string, 0, len(records))
	for _, rec := range records {
		childIDs = append(childIDs, rec.ChildID)
		classIDs = append(classIDs, rec.ClassID)
	}

	r := analytics.Resolver{Store: st}
	var childNames, classNames analytics.Names
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		childNames, err = analytics.NamesOf(gctx, r, CollectionChildren, childIDs, childName)
		return err
	})
	g.Go(func() error {
		var err error
		classNames, err = analytics.NamesOf(gctx, r, CollectionClasses, classIDs, classDisplayName)
		return err
	})
	if err := g.Wait(); err != nil {
		return nil, err
	}

	return analytics.RecentHealthRecords(records, childNames, classNames), nil
}

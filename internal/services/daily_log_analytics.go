package services

import (
	"context"
	"fmt"

	"github.com/localnerve/daycare-data/internal/analytics"
	"github.com/localnerve/daycare-data/internal/models"
	"github.com/localnerve/daycare-data/internal/store"
	"golang.org/x/sync/errgroup"
)

// RunDailyLogAnalytics executes one daily log aggregation.
// The caller's filter is never modified.
func RunDailyLogAnalytics(ctx context.Context, st store.Store, op analytics.Operation, filter analytics.Filter) (result interface{}, err error) {
	defer func() { observe(op, err) }()

	r := analytics.Resolver{Store: st}
	switch op {
	case analytics.OpActivityCountByType:
		logs, err := fetchDailyLogs(ctx, st, filter.Clone())
		if err != nil {
			return nil, err
		}
		return analytics.ActivityCountByType(logs), nil

	case analytics.OpLogsByChild:
		return logsByReference(ctx, r, filter, CollectionChildren,
			func(l models.DailyLogEntry) string { return l.ChildID }, childName)

	case analytics.OpLogsByStaff:
		return logsByReference(ctx, r, filter, CollectionStaff,
			func(l models.DailyLogEntry) string { return l.StaffID }, staffName)

	case analytics.OpLogsByCenter:
		return logsByReference(ctx, r, filter, CollectionCenters,
			func(l models.DailyLogEntry) string { return l.CenterID }, centerName)

	case analytics.OpLogsOverTime:
		logs, err := fetchDailyLogs(ctx, st, filter.Clone())
		if err != nil {
			return nil, err
		}
		return analytics.LogsOverTime(logs), nil

	case analytics.OpMoodTrends:
		logs, err := fetchDailyLogs(ctx, st, filter.WithType(models.LogTypeMood))
		if err != nil {
			return nil, err
		}
		return analytics.MoodTrends(logs), nil

	case analytics.OpDiaperNapPatterns:
		logs, err := fetchDailyLogs(ctx, st, filter.WithType(""))
		if err != nil {
			return nil, err
		}
		ids := make([]string, 0, len(logs))
		for _, l := range logs {
			if l.Type == models.LogTypeDiaper || l.Type == models.LogTypeNap {
				ids = append(ids, l.ChildID)
			}
		}
		names, err := analytics.NamesOf(ctx, r, CollectionChildren, ids, childName)
		if err != nil {
			return nil, err
		}
		return analytics.DiaperNapPatterns(logs, names), nil

	case analytics.OpRecentLogs:
		return recentLogs(ctx, st, r)
	}

	return nil, fmt.Errorf("unsupported daily log operation %s", op)
}

func logsByReference[T any](ctx context.Context, r analytics.Resolver, filter analytics.Filter, collection string,
	ref func(models.DailyLogEntry) string, name func(T, string) string) (analytics.Counts, error) {
	logs, err := fetchDailyLogs(ctx, r.Store, filter.Clone())
	if err != nil {
		return nil, err
	}

	ids := make([]string, 0, len(logs))
	for _, l := range logs {
		ids = append(ids, ref(l))
	}

	names, err := analytics.NamesOf(ctx, r, collection, ids, name)
	if err != nil {
		return nil, err
	}
	return analytics.LogsByReference(logs, ref, names), nil
}

// recentLogs reads the newest logs and batch resolves their children and staff
func recentLogs(ctx context.Context, st store.Store, r analytics.Resolver) ([]analytics.RecentLog, error) {
	q := store.Query{Collection: CollectionDailyLogs, Order: store.OrderNewestFirst, Limit: analytics.RecentLimit}
	logs, err := findAll[models.DailyLogEntry](ctx, st, q, "Failed to fetch recent daily logs")
	if err != nil {
		return nil, err
	}
	if len(logs) == 0 {
		return []analytics.RecentLog{}, nil
	}

	childIDs := make([]string, 0, len(logs))
	staffIDs := make([]string, 0, len(logs))
	for _, l := range logs {
		childIDs = append(childIDs, l.ChildID)
		staffIDs = append(staffIDs, l.StaffID)
	}

	var childNames, staffNames analytics.Names
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		childNames, err = analytics.NamesOf(gctx, r, CollectionChildren, childIDs, childName)
		return err
	})
	g.Go(func() error {
		var err error
		staffNames, err = analytics.NamesOf(gctx, r, CollectionStaff, staffIDs, staffName)
		return err
	})
	if err := g.Wait(); err != nil {
		return nil, err
	}

	return analytics.RecentLogs(logs, childNames, staffNames), nil
}

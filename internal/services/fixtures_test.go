package services

import (
	"context"
	"testing"
	"time"

	"github.com/localnerve/daycare-data/internal/models"
	"github.com/localnerve/daycare-data/internal/store"
	"github.com/localnerve/daycare-data/internal/types"
	"github.com/stretchr/testify/require"
)

var testNow = time.Date(2025, time.March, 10, 9, 0, 0, 0, time.UTC)

// fixture is a small center with two classes, two staff and three children
type fixture struct {
	center, acorns, saplings string
	dana, lee                string
	ava, milo, zoe           string
}

func at(day, hour int) types.Timestamp {
	return types.NewTimestamp(time.Date(2025, time.January, day, hour, 0, 0, 0, time.UTC))
}

func newFixture(t *testing.T, st store.Store) fixture {
	t.Helper()
	ctx := context.Background()
	var f fixture

	center, err := CreateCenter(ctx, st, models.Center{Name: "Maple Street Center", Location: "12 Maple Street"})
	require.NoError(t, err)
	f.center = center.ID

	acorns, err := CreateClass(ctx, st, models.Class{Name: "Acorns", CenterID: f.center})
	require.NoError(t, err)
	f.acorns = acorns.ID
	saplings, err := CreateClass(ctx, st, models.Class{Name: "Saplings", CenterID: f.center})
	require.NoError(t, err)
	f.saplings = saplings.ID

	dana, err := CreateStaffMember(ctx, st, models.Staff{FirstName: "Dana", LastName: "Okafor", Role: "Lead", CenterID: f.center})
	require.NoError(t, err)
	f.dana = dana.ID
	lee, err := CreateStaffMember(ctx, st, models.Staff{FirstName: "Lee", LastName: "Hammond", Role: "Assistant", CenterID: f.center})
	require.NoError(t, err)
	f.lee = lee.ID

	child := func(first, last, classID, staffID string, birth time.Time) string {
		c, err := CreateChild(ctx, st, models.Child{
			FirstName: first, LastName: last, ClassID: classID, CenterID: f.center, StaffID: staffID,
			BirthDate: types.NewTimestamp(birth),
		}, testNow)
		require.NoError(t, err)
		return c.ID
	}
	f.ava = child("Ava", "Lindqvist", f.acorns, f.dana, time.Date(2020, time.March, 10, 0, 0, 0, 0, time.UTC))
	f.milo = child("Milo", "Reyes", f.acorns, f.dana, time.Date(2020, time.March, 22, 0, 0, 0, 0, time.UTC))
	f.zoe = child("Zoe", "Park", f.saplings, f.lee, time.Date(2021, time.June, 1, 0, 0, 0, 0, time.UTC))

	return f
}

func (f fixture) log(t *testing.T, st store.Store, childID, staffID, logType, details string, when types.Timestamp) models.DailyLogEntry {
	t.Helper()
	entry, err := CreateDailyLog(context.Background(), st, models.DailyLogEntry{
		ChildID: childID, StaffID: staffID, CenterID: f.center,
		Timestamp: when, Type: logType, Details: details,
	})
	require.NoError(t, err)
	return entry
}

func (f fixture) record(t *testing.T, st store.Store, childID, classID, recordType, severity string, when types.Timestamp) models.HealthRecordView {
	t.Helper()
	view, err := CreateHealthRecord(context.Background(), st, models.HealthRecordEntry{
		ChildID: childID, RecordedByUserID: f.dana, CenterID: f.center, ClassID: classID,
		Timestamp: when, Type: recordType, Severity: severity,
		Details: "Scraped knee", ActionTaken: "Bandaged",
	})
	require.NoError(t, err)
	return view
}

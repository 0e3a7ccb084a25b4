package services

import (
	"context"
	"errors"
	"net/http"
	"testing"
	"time"

	"github.com/localnerve/daycare-data/internal/analytics"
	"github.com/localnerve/daycare-data/internal/models"
	"github.com/localnerve/daycare-data/internal/store/storetest"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestActivityCountByTypeConjunctiveFilter(t *testing.T) {
	st := storetest.NewSQLite(t)
	f := newFixture(t, st)
	f.log(t, st, f.ava, f.dana, models.LogTypeNap, "1h", at(15, 12))
	f.log(t, st, f.milo, f.dana, models.LogTypeNap, "1h", at(15, 13))
	f.log(t, st, f.zoe, f.lee, models.LogTypeMeal, "Pasta", at(15, 11))

	got, err := RunDailyLogAnalytics(context.Background(), st, analytics.OpActivityCountByType,
		analytics.Filter{CenterID: f.center, StaffID: f.dana})
	require.NoError(t, err)
	assert.Equal(t, analytics.Counts{"Nap": 2}, got)
}

func TestMoodTrendsForcesTypeWithoutJoins(t *testing.T) {
	sqlite := storetest.NewSQLite(t)
	f := newFixture(t, sqlite)
	f.log(t, sqlite, f.ava, f.dana, models.LogTypeMood, "Happy", at(15, 12))
	f.log(t, sqlite, f.milo, f.dana, models.LogTypeMood, "Happy", at(15, 13))
	f.log(t, sqlite, f.milo, f.dana, models.LogTypeNap, "1h", at(15, 14))

	counting := storetest.NewCounting(sqlite)
	filter := analytics.Filter{Type: models.LogTypeNap}
	got, err := RunDailyLogAnalytics(context.Background(), counting, analytics.OpMoodTrends, filter)
	require.NoError(t, err)

	assert.Equal(t, analytics.Counts{"Happy": 2}, got)
	assert.Equal(t, models.LogTypeNap, filter.Type)
	assert.Equal(t, 1, counting.Finds())
	assert.Zero(t, counting.Gets()+counting.GetManys())
}

func TestLogsByChildExcludesUnresolved(t *testing.T) {
	st := storetest.NewSQLite(t)
	f := newFixture(t, st)
	f.log(t, st, f.ava, f.dana, models.LogTypeNap, "1h", at(15, 12))
	f.log(t, st, f.ava, f.dana, models.LogTypeMeal, "Pasta", at(15, 13))
	f.log(t, st, "ghost", f.dana, models.LogTypeMeal, "Pasta", at(15, 14))

	got, err := RunDailyLogAnalytics(context.Background(), st, analytics.OpLogsByChild, analytics.Filter{})
	require.NoError(t, err)
	assert.Equal(t, analytics.Counts{"Ava Lindqvist": 2}, got)

	got, err = RunDailyLogAnalytics(context.Background(), st, analytics.OpLogsByStaff, analytics.Filter{})
	require.NoError(t, err)
	assert.Equal(t, analytics.Counts{"Dana Okafor": 3}, got)

	got, err = RunDailyLogAnalytics(context.Background(), st, analytics.OpLogsByCenter, analytics.Filter{})
	require.NoError(t, err)
	assert.Equal(t, analytics.Counts{"Maple Street Center": 3}, got)
}

func TestDiaperNapPatternsClearsTypeFilter(t *testing.T) {
	st := storetest.NewSQLite(t)
	f := newFixture(t, st)
	f.log(t, st, f.ava, f.dana, models.LogTypeNap, "1h", at(15, 12))
	f.log(t, st, f.ava, f.dana, models.LogTypeDiaper, "Wet", at(15, 13))
	f.log(t, st, f.ava, f.dana, models.LogTypeDiaper, "Dry", at(15, 15))
	f.log(t, st, f.milo, f.dana, models.LogTypeMeal, "Pasta", at(15, 14))

	got, err := RunDailyLogAnalytics(context.Background(), st, analytics.OpDiaperNapPatterns,
		analytics.Filter{Type: models.LogTypeMeal})
	require.NoError(t, err)
	assert.Equal(t, analytics.NestedCounts{"Ava Lindqvist": {"Nap": 1, "Diaper": 2}}, got)
}

func TestLogsOverTimeDateRange(t *testing.T) {
	st := storetest.NewSQLite(t)
	f := newFixture(t, st)
	f.log(t, st, f.ava, f.dana, models.LogTypeNap, "1h", at(14, 12))
	f.log(t, st, f.ava, f.dana, models.LogTypeNap, "1h", at(15, 12))
	f.log(t, st, f.ava, f.dana, models.LogTypeNap, "1h", at(16, 12))

	start := time.Date(2025, 1, 15, 0, 0, 0, 0, time.UTC)
	end := time.Date(2025, 1, 16, 12, 0, 0, 0, time.UTC)
	got, err := RunDailyLogAnalytics(context.Background(), st, analytics.OpLogsOverTime,
		analytics.Filter{StartDate: &start, EndDate: &end})
	require.NoError(t, err)
	assert.Equal(t, analytics.Counts{"2025-01-15": 1, "2025-01-16": 1}, got)
}

func TestRecentLogsNewestFirst(t *testing.T) {
	sqlite := storetest.NewSQLite(t)
	f := newFixture(t, sqlite)
	for hour := 8; hour <= 14; hour++ {
		f.log(t, sqlite, f.ava, f.dana, models.LogTypeMeal, "Snack", at(15, hour))
	}
	f.log(t, sqlite, "ghost", f.lee, models.LogTypeNap, "1h", at(16, 9))

	counting := storetest.NewCounting(sqlite)
	got, err := RunDailyLogAnalytics(context.Background(), counting, analytics.OpRecentLogs,
		analytics.Filter{ChildID: f.milo})
	require.NoError(t, err)

	recent := got.([]analytics.RecentLog)
	require.Len(t, recent, analytics.RecentLimit)
	assert.Equal(t, analytics.Unknown, recent[0].ChildName)
	assert.Equal(t, "Lee Hammond", recent[0].StaffName)
	assert.Equal(t, at(16, 9), recent[0].Timestamp)
	assert.Equal(t, "Ava Lindqvist", recent[1].ChildName)
	assert.Equal(t, at(15, 14), recent[1].Timestamp)
	assert.Equal(t, 2, counting.GetManys())
}

func TestRecentLogsEmpty(t *testing.T) {
	got, err := RunDailyLogAnalytics(context.Background(), storetest.NewSQLite(t), analytics.OpRecentLogs, analytics.Filter{})
	require.NoError(t, err)
	assert.Equal(t, []analytics.RecentLog{}, got)
}

func TestIncidentVsMedication(t *testing.T) {
	st := storetest.NewSQLite(t)
	f := newFixture(t, st)
	f.record(t, st, f.ava, f.acorns, models.HealthTypeIncident, "Low", at(15, 10))
	f.record(t, st, f.milo, f.acorns, models.HealthTypeIncident, "High", at(15, 11))
	f.record(t, st, f.zoe, f.saplings, models.HealthTypeMedication, "", at(15, 12))

	got, err := RunHealthAnalytics(context.Background(), st, analytics.OpIncidentVsMedication, analytics.Filter{})
	require.NoError(t, err)
	assert.Equal(t, analytics.IncidentMedication{IncidentCount: 2, MedicationCount: 1}, got)
}

func TestIncidentsBySeverityForcesType(t *testing.T) {
	st := storetest.NewSQLite(t)
	f := newFixture(t, st)
	f.record(t, st, f.ava, f.acorns, models.HealthTypeIncident, "Low", at(15, 10))
	f.record(t, st, f.milo, f.acorns, models.HealthTypeIncident, "", at(15, 11))
	f.record(t, st, f.zoe, f.saplings, models.HealthTypeMedication, "", at(15, 12))

	filter := analytics.Filter{Type: models.HealthTypeMedication}
	got, err := RunHealthAnalytics(context.Background(), st, analytics.OpIncidentsBySeverity, filter)
	require.NoError(t, err)
	assert.Equal(t, analytics.Counts{"Low": 1, analytics.Unknown: 1}, got)
	assert.Equal(t, models.HealthTypeMedication, filter.Type)
}

func TestSeverityFilterAppliesAfterFetch(t *testing.T) {
	st := storetest.NewSQLite(t)
	f := newFixture(t, st)
	f.record(t, st, f.ava, f.acorns, models.HealthTypeIncident, "Low", at(15, 10))
	f.record(t, st, f.ava, f.acorns, models.HealthTypeIncident, "High", at(15, 11))

	got, err := RunHealthAnalytics(context.Background(), st, analytics.OpIncidentsByChild, analytics.Filter{Severity: "High"})
	require.NoError(t, err)
	assert.Equal(t, analytics.Counts{f.ava: 1}, got)
}

func TestIncidentsByClassDropsUnresolvedClass(t *testing.T) {
	st := storetest.NewSQLite(t)
	f := newFixture(t, st)
	f.record(t, st, f.ava, f.acorns, models.HealthTypeIncident, "Low", at(15, 10))
	f.record(t, st, f.milo, f.acorns, models.HealthTypeIncident, "Low", at(15, 11))
	f.record(t, st, f.zoe, "class-gone", models.HealthTypeIncident, "Low", at(15, 12))
	f.record(t, st, f.zoe, f.saplings, models.HealthTypeMedication, "", at(15, 13))
	f.record(t, st, f.zoe, f.saplings, models.HealthTypeIncident, "Low", at(20, 13))

	start := time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)
	end := time.Date(2025, 1, 16, 0, 0, 0, 0, time.UTC)
	got, err := RunHealthAnalytics(context.Background(), st, analytics.OpIncidentsByClass,
		analytics.Filter{StartDate: &start, EndDate: &end})
	require.NoError(t, err)
	assert.Equal(t, analytics.Counts{"Acorns": 2}, got)
}

func TestRecentHealthRecords(t *testing.T) {
	st := storetest.NewSQLite(t)
	f := newFixture(t, st)
	f.record(t, st, f.ava, f.acorns, models.HealthTypeIncident, "Low", at(15, 10))
	f.record(t, st, f.zoe, "class-gone", models.HealthTypeMedication, "", at(15, 12))

	got, err := RunHealthAnalytics(context.Background(), st, analytics.OpRecentHealthRecords, analytics.Filter{})
	require.NoError(t, err)

	recent := got.([]analytics.RecentHealthRecord)
	require.Len(t, recent, 2)
	assert.Equal(t, "Zoe Park", recent[0].ChildName)
	assert.Equal(t, analytics.Unknown, recent[0].ClassName)
	assert.Equal(t, "Acorns", recent[1].ClassName)
}

func TestRawIDAggregations(t *testing.T) {
	st := storetest.NewSQLite(t)
	f := newFixture(t, st)
	f.record(t, st, f.ava, f.acorns, models.HealthTypeIncident, "Low", at(15, 10))
	f.record(t, st, f.ava, f.acorns, models.HealthTypeMedication, "", at(16, 10))

	ctx := context.Background()
	got, err := RunHealthAnalytics(ctx, st, analytics.OpMedicationByChild, analytics.Filter{})
	require.NoError(t, err)
	assert.Equal(t, analytics.Counts{f.ava: 1}, got)

	got, err = RunHealthAnalytics(ctx, st, analytics.OpRecordsByStaff, analytics.Filter{})
	require.NoError(t, err)
	assert.Equal(t, analytics.Counts{f.dana: 2}, got)

	got, err = RunHealthAnalytics(ctx, st, analytics.OpRecordsByCenter, analytics.Filter{})
	require.NoError(t, err)
	assert.Equal(t, analytics.Counts{f.center: 2}, got)

	got, err = RunHealthAnalytics(ctx, st, analytics.OpRecordsOverTime, analytics.Filter{})
	require.NoError(t, err)
	assert.Equal(t, analytics.Counts{"2025-01-15": 1, "2025-01-16": 1}, got)

	got, err = RunHealthAnalytics(ctx, st, analytics.OpIncidentTypeBreakdown, analytics.Filter{})
	require.NoError(t, err)
	assert.Equal(t, analytics.Counts{"Scraped knee": 1}, got)

	got, err = RunHealthAnalytics(ctx, st, analytics.OpActionTakenSummary, analytics.Filter{})
	require.NoError(t, err)
	assert.Equal(t, analytics.Counts{"Bandaged": 2}, got)
}

func TestAnalyticsStoreFailure(t *testing.T) {
	counting := storetest.NewCounting(nil)
	counting.Err = errors.New("connection reset")

	before := testutil.ToFloat64(analyticsOperations.WithLabelValues(CollectionHealthRecords, "incident-vs-medication", "error"))
	_, err := RunHealthAnalytics(context.Background(), counting, analytics.OpIncidentVsMedication, analytics.Filter{})
	requireServiceError(t, err, http.StatusInternalServerError)

	after := testutil.ToFloat64(analyticsOperations.WithLabelValues(CollectionHealthRecords, "incident-vs-medication", "error"))
	assert.Equal(t, before+1, after)
}

package seed

import (
	"context"
	"testing"

	"github.com/localnerve/daycare-data/data"
	"github.com/localnerve/daycare-data/internal/analytics"
	"github.com/localnerve/daycare-data/internal/services"
	"github.com/localnerve/daycare-data/internal/store/storetest"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadEmbeddedDataSet(t *testing.T) {
	st := storetest.NewSQLite(t)
	ctx := context.Background()

	ds, err := Parse(data.SeedJSON)
	require.NoError(t, err)

	summary, err := Load(ctx, st, ds)
	require.NoError(t, err)
	assert.Equal(t, Summary{
		services.CollectionCenters:       2,
		services.CollectionClasses:       3,
		services.CollectionStaff:         3,
		services.CollectionChildren:      4,
		services.CollectionDailyLogs:     10,
		services.CollectionHealthRecords: 4,
	}, summary)

	// references were rewritten to generated ids, so joins resolve
	got, err := services.RunDailyLogAnalytics(ctx, st, analytics.OpDiaperNapPatterns, analytics.Filter{})
	require.NoError(t, err)
	assert.Equal(t, analytics.NestedCounts{
		"Ava Lindqvist": {"Nap": 1},
		"Milo Reyes":    {"Nap": 1, "Diaper": 1},
		"Zoe Park":      {"Diaper": 1},
	}, got)

	pair, err := services.RunHealthAnalytics(ctx, st, analytics.OpIncidentVsMedication, analytics.Filter{})
	require.NoError(t, err)
	assert.Equal(t, analytics.IncidentMedication{IncidentCount: 3, MedicationCount: 1}, pair)
}

func TestSecondsTimestampsAreStoredAsWritten(t *testing.T) {
	st := storetest.NewSQLite(t)
	ctx := context.Background()

	ds, err := Parse([]byte(`{
		"dailyLogs": [{
			"childId": "c1", "staffId": "s1", "centerId": "ce1",
			"timestamp": {"_seconds": 1736935200, "_nanoseconds": 0},
			"type": "Diaper", "details": "Wet"
		}]
	}`))
	require.NoError(t, err)
	_, err = Load(ctx, st, ds)
	require.NoError(t, err)

	docs, err := st.Find(ctx, analytics.BuildQuery(services.CollectionDailyLogs, analytics.DailyLogFields, analytics.Filter{}))
	require.NoError(t, err)
	require.Len(t, docs, 1)
	assert.Contains(t, string(docs[0].Data), `"_seconds"`)

	logs, err := services.GetDailyLogs(ctx, st, analytics.Filter{})
	require.NoError(t, err)
	assert.Equal(t, "2025-01-15T10:00:00Z", logs[0].Timestamp.Format("2006-01-02T15:04:05Z07:00"))
}

func TestLoadRejectsInvalidEntry(t *testing.T) {
	counting := storetest.NewCounting(storetest.NewSQLite(t))

	ds, err := Parse([]byte(`{"classes": [{"key": "k1", "name": "Acorns"}]}`))
	require.NoError(t, err)

	_, err = Load(context.Background(), counting, ds)
	assert.ErrorContains(t, err, "classes[0]")
	assert.ErrorContains(t, err, "centerId is required")
	assert.Zero(t, counting.Inserts())
}

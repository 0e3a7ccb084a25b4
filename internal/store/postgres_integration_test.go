package store_test

import (
	"context"
	"testing"
	"time"

	"github.com/localnerve/daycare-data/internal/database"
	"github.com/localnerve/daycare-data/internal/store"
	"github.com/localnerve/daycare-data/internal/testinfra"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/testcontainers/testcontainers-go"
)

// TestWithPostgres exercises JSON path pushdown against a real PostgreSQL container
func TestWithPostgres(t *testing.T) {
	if testing.Short() {
		t.Skip("Skipping integration test in short mode")
	}
	testcontainers.SkipIfProviderIsNotHealthy(t)

	ctx, cancel := context.WithTimeout(context.Background(), 3*time.Minute)
	defer cancel()

	pg, err := testinfra.StartPostgres(ctx, "")
	require.NoError(t, err)
	defer func() {
		if err := pg.Terminate(context.Background()); err != nil {
			t.Logf("Failed to terminate postgres container: %v", err)
		}
	}()

	db, err := database.Connect(pg.Config())
	require.NoError(t, err)
	defer database.Close(db)
	require.NoError(t, database.AutoMigrate(db))

	st := store.NewGormStore(db)
	require.Equal(t, "postgres", st.DB.Dialector.Name())

	insert(t, st, logDoc{ChildID: "c1", CenterID: "ce1", Type: "Nap", Timestamp: "2025-01-15T10:00:00Z"})
	insert(t, st, logDoc{ChildID: "c1", CenterID: "ce1", Type: "Diaper", Timestamp: map[string]int64{"_seconds": at(16, 9).Unix()}})
	insert(t, st, logDoc{ChildID: "c2", CenterID: "ce1", Type: "Nap", Timestamp: "2025-01-17T10:00:00Z"})

	from, to := at(15, 0), at(16, 23)
	docs, err := st.Find(ctx, store.Query{
		Collection: "dailyLogs",
		From:       &from,
		To:         &to,
		Order:      store.OrderNewestFirst,
	}.Equal("childId", "c1"))
	require.NoError(t, err)
	require.Len(t, docs, 2)
	assert.True(t, at(16, 9).Equal(*docs[0].Timestamp))
	assert.True(t, at(15, 10).Equal(*docs[1].Timestamp))

	naps, err := st.Find(ctx, store.Query{Collection: "dailyLogs", Limit: 1}.Equal("type", "Nap").Equal("childId", "c2"))
	require.NoError(t, err)
	require.Len(t, naps, 1)

	var out logDoc
	require.NoError(t, naps[0].Decode(&out))
	assert.Equal(t, "c2", out.ChildID)
}

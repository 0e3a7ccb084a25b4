package services

import (
	"context"
	"fmt"

	"github.com/localnerve/daycare-data/internal/store"
	"github.com/localnerve/daycare-data/internal/types"
)

// Collection names
const (
	CollectionCenters       = "center"
	CollectionClasses       = "classes"
	CollectionChildren      = "children"
	CollectionStaff         = "staffMembers"
	CollectionDailyLogs     = "dailyLogs"
	CollectionHealthRecords = "healthRecords"
)

// decodeAll decodes every document of one collection into T
func decodeAll[T any](docs []store.Document) ([]T, error) {
	out := make([]T, 0, len(docs))
	for _, doc := range docs {
		var v T
		if err := doc.Decode(&v); err != nil {
			return nil, types.NewStoreError(
				fmt.Sprintf("Failed to decode %s with ID %s", doc.Collection, doc.ID), err)
		}
		out = append(out, v)
	}
	return out, nil
}

// findAll runs q and decodes the result
func findAll[T any](ctx context.Context, st store.Store, q store.Query, failure string) ([]T, error) {
	docs, err := st.Find(ctx, q)
	if err != nil {
		return nil, types.NewStoreError(failure, err)
	}
	return decodeAll[T](docs)
}

// getOne fetches a document by id. Absence is reported as a 404.
func getOne[T any](ctx context.Context, st store.Store, collection, id, notFound string) (T, error) {
	var v T
	doc, err := st.Get(ctx, collection, id)
	if err != nil {
		return v, types.NewStoreError(fmt.Sprintf("Failed to fetch %s with ID %s", collection, id), err)
	}
	if doc == nil {
		return v, types.NewNotFoundError(notFound)
	}
	if err := doc.Decode(&v); err != nil {
		return v, types.NewStoreError(fmt.Sprintf("Failed to decode %s with ID %s", collection, id), err)
	}
	return v, nil
}

// insertOne stores v and decodes the stored document back
func insertOne[T any](ctx context.Context, st store.Store, collection string, v T, failure string) (T, error) {
	var out T
	doc, err := st.Insert(ctx, collection, v)
	if err != nil {
		return out, types.NewStoreError(failure, err)
	}
	if err := doc.Decode(&out); err != nil {
		return out, types.NewStoreError(failure, err)
	}
	return out, nil
}

package analytics

import (
	"context"
	"fmt"

	"github.com/localnerve/daycare-data/internal/store"
	"github.com/localnerve/daycare-data/internal/types"
)

// Resolver hydrates soft references. Absence is never an error.
type Resolver struct {
	Store store.Store
}

// Resolve fetches the referenced document, or nil when it does not exist
func (r Resolver) Resolve(ctx context.Context, collection, id string) (*store.Document, error) {
	if id == "" {
		return nil, nil
	}

	doc, err := r.Store.Get(ctx, collection, id)
	if err != nil {
		return nil, types.NewStoreError(fmt.Sprintf("Failed to fetch %s with ID %s", collection, id), err)
	}
	return doc, nil
}

// ResolveMany fetches every distinct id in one batch, keyed by id
func (r Resolver) ResolveMany(ctx context.Context, collection string, ids []string) (map[string]store.Document, error) {
	ids = store.UniqueIDs(ids)
	resolved := make(map[string]store.Document, len(ids))
	if len(ids) == 0 {
		return resolved, nil
	}

	docs, err := r.Store.GetMany(ctx, collection, ids)
	if err != nil {
		return nil, types.NewStoreError(fmt.Sprintf("Failed to fetch %s", collection), err)
	}
	for _, doc := range docs {
		resolved[doc.ID] = doc
	}
	return resolved, nil
}

// ResolveAs resolves and decodes a reference. A document that does not
// decode into T is treated as unresolved.
func ResolveAs[T any](ctx context.Context, r Resolver, collection, id string) (*T, error) {
	doc, err := r.Resolve(ctx, collection, id)
	if err != nil || doc == nil {
		return nil, err
	}

	var v T
	if err := doc.Decode(&v); err != nil {
		return nil, nil
	}
	return &v, nil
}

// NamesOf resolves a batch of references to display names.
// Ids that are missing or do not decode are absent from the result.
func NamesOf[T any](ctx context.Context, r Resolver, collection string, ids []string, name func(T, string) string) (Names, error) {
	docs, err := r.ResolveMany(ctx, collection, ids)
	if err != nil {
		return nil, err
	}

	names := make(Names, len(docs))
	for id, doc := range docs {
		var v T
		if err := doc.Decode(&v); err != nil {
			continue
		}
		names[id] = name(v, id)
	}
	return names, nil
}

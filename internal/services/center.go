package services

import (
	"context"

	"github.com/localnerve/daycare-data/internal/models"
	"github.com/localnerve/daycare-data/internal/store"
	"github.com/localnerve/daycare-data/internal/validation"
)

// CreateCenter validates and stores a center
func CreateCenter(ctx context.Context, st store.Store, center models.Center) (models.Center, error) {
	if err := validation.Validate(&center); err != nil {
		return models.Center{}, err
	}
	return insertOne(ctx, st, CollectionCenters, center, "Failed to create center")
}

// GetCenters lists every center
func GetCenters(ctx context.Context, st store.Store) ([]models.Center, error) {
	return findAll[models.Center](ctx, st, store.Query{Collection: CollectionCenters}, "Failed to fetch centers")
}

// GetCenter retrieves one center
func GetCenter(ctx context.Context, st store.Store, id string) (models.Center, error) {
	return getOne[models.Center](ctx, st, CollectionCenters, id, "Center not found")
}

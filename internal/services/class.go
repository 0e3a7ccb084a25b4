package services

import (
	"context"
	"time"

	"github.com/localnerve/daycare-data/internal/models"
	"github.com/localnerve/daycare-data/internal/store"
	"github.com/localnerve/daycare-data/internal/validation"
)

// CreateClass validates and stores a class
func CreateClass(ctx context.Context, st store.Store, class models.Class) (models.Class, error) {
	if err := validation.Validate(&class); err != nil {
		return models.Class{}, err
	}
	return insertOne(ctx, st, CollectionClasses, class, "Failed to create class")
}

// GetClasses lists every class
func GetClasses(ctx context.Context, st store.Store) ([]models.Class, error) {
	return findAll[models.Class](ctx, st, store.Query{Collection: CollectionClasses}, "Failed to fetch classes")
}

// GetClass retrieves one class
func GetClass(ctx context.Context, st store.Store, id string) (models.Class, error) {
	return getOne[models.Class](ctx, st, CollectionClasses, id, "Class not found")
}

// GetClassChildren lists the children enrolled in a class
func GetClassChildren(ctx context.Context, st store.Store, classID string, now time.Time) ([]models.Child, error) {
	q := store.Query{Collection: CollectionChildren}.Equal("classId", classID)
	return findChildren(ctx, st, q, now, "Failed to fetch class children")
}

package services

import (
	"context"

	"github.com/localnerve/daycare-data/internal/models"
	"github.com/localnerve/daycare-data/internal/store"
	"github.com/localnerve/daycare-data/internal/validation"
)

// CreateStaffMember validates and stores a staff member
func CreateStaffMember(ctx context.Context, st store.Store, staff models.Staff) (models.Staff, error) {
	if err := validation.Validate(&staff); err != nil {
		return models.Staff{}, err
	}
	return insertOne(ctx, st, CollectionStaff, staff, "Failed to create staff member")
}

// GetStaffMembers lists every staff member
func GetStaffMembers(ctx context.Context, st store.Store) ([]models.Staff, error) {
	return findAll[models.Staff](ctx, st, store.Query{Collection: CollectionStaff}, "Failed to fetch staff members")
}

// GetStaffMember retrieves one staff member
func GetStaffMember(ctx context.Context, st store.Store, id string) (models.Staff, error) {
	return getOne[models.Staff](ctx, st, CollectionStaff, id, "Staff member not found")
}

package services

import (
	"context"
	"time"

	"github.com/localnerve/daycare-data/internal/models"
	"github.com/localnerve/daycare-data/internal/store"
	"github.com/localnerve/daycare-data/internal/validation"
)

// Birthdays groups children whose birthday falls in the current month, and today
type Birthdays struct {
	BirthdaysThisMonth []models.Child `json:"birthdaysThisMonth"`
	BirthdaysToday     []models.Child `json:"birthdaysToday"`
}

// CreateChild validates and stores a child. Any client supplied age is discarded,
// the returned child carries the age derived for now.
func CreateChild(ctx context.Context, st store.Store, child models.Child, now time.Time) (models.Child, error) {
	child.Age = nil
	if err := validation.Validate(&child); err != nil {
		return models.Child{}, err
	}

	created, err := insertOne(ctx, st, CollectionChildren, child, "Failed to create child")
	if err != nil {
		return models.Child{}, err
	}
	return created.WithAge(now), nil
}

// GetChildren lists every child
func GetChildren(ctx context.Context, st store.Store, now time.Time) ([]models.Child, error) {
	return findChildren(ctx, st, store.Query{Collection: CollectionChildren}, now, "Failed to fetch children")
}

// GetChild retrieves one child
func GetChild(ctx context.Context, st store.Store, id string, now time.Time) (models.Child, error) {
	child, err := getOne[models.Child](ctx, st, CollectionChildren, id, "Child not found")
	if err != nil {
		return models.Child{}, err
	}
	return child.WithAge(now), nil
}

// GetChildrenByStaff lists the children assigned to a staff member
func GetChildrenByStaff(ctx context.Context, st store.Store, staffID string, now time.Time) ([]models.Child, error) {
	q := store.Query{Collection: CollectionChildren}.Equal("staffId", staffID)
	return findChildren(ctx, st, q, now, "Failed to fetch children by staff")
}

// GetChildrenBirthdays finds birthdays in the current UTC month and on the current UTC day
func GetChildrenBirthdays(ctx context.Context, st store.Store, now time.Time) (Birthdays, error) {
	children, err := GetChildren(ctx, st, now)
	if err != nil {
		return Birthdays{}, err
	}

	now = now.UTC()
	result := Birthdays{
		BirthdaysThisMonth: []models.Child{},
		BirthdaysToday:     []models.Child{},
	}
	for _, child := range children {
		birth := child.BirthDate.UTC()
		if birth.Month() != now.Month() {
			continue
		}
		result.BirthdaysThisMonth = append(result.BirthdaysThisMonth, child)
		if birth.Day() == now.Day() {
			result.BirthdaysToday = append(result.BirthdaysToday, child)
		}
	}
	return result, nil
}

func findChildren(ctx context.Context, st store.Store, q store.Query, now time.Time, failure string) ([]models.Child, error) {
	children, err := findAll[models.Child](ctx, st, q, failure)
	if err != nil {
		return nil, err
	}
	for i := range children {
		children[i] = children[i].WithAge(now)
	}
	return children, nil
}

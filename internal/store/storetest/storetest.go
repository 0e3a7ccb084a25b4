// Package storetest provides document stores for tests: an in-memory SQLite
// GormStore and a Counting wrapper that records every store round trip.
package storetest

import (
	"context"
	"errors"
	"sync/atomic"
	"testing"

	"github.com/glebarez/sqlite"
	"github.com/localnerve/daycare-data/internal/models"
	"github.com/localnerve/daycare-data/internal/store"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// ErrUnexpectedCall is returned by a Counting store with no inner store
var ErrUnexpectedCall = errors.New("storetest: unexpected store call")

// NewSQLite opens a migrated in-memory SQLite store that lives until the test ends
func NewSQLite(t testing.TB) *store.GormStore {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)

	sqlDB, err := db.DB()
	require.NoError(t, err)
	// every connection to :memory: is a separate database
	sqlDB.SetMaxOpenConns(1)
	t.Cleanup(func() { _ = sqlDB.Close() })

	require.NoError(t, db.AutoMigrate(&models.DocumentRecord{}))
	return store.NewGormStore(db)
}

// Counting forwards to Inner and counts calls per method.
// A nil Inner fails every call with ErrUnexpectedCall, and Err, when set, fails every call with Err.
type Counting struct {
	Inner store.Store
	Err   error

	gets    atomic.Int64
	getMany atomic.Int64
	finds   atomic.Int64
	inserts atomic.Int64
}

// NewCounting wraps inner
func NewCounting(inner store.Store) *Counting {
	return &Counting{Inner: inner}
}

func (c *Counting) fail() error {
	if c.Err != nil {
		return c.Err
	}
	if c.Inner == nil {
		return ErrUnexpectedCall
	}
	return nil
}

// Get implements store.Store
func (c *Counting) Get(ctx context.Context, collection, id string) (*store.Document, error) {
	c.gets.Add(1)
	if err := c.fail(); err != nil {
		return nil, err
	}
	return c.Inner.Get(ctx, collection, id)
}

// GetMany implements store.Store
func (c *Counting) GetMany(ctx context.Context, collection string, ids []string) ([]store.Document, error) {
	c.getMany.Add(1)
	if err := c.fail(); err != nil {
		return nil, err
	}
	return c.Inner.GetMany(ctx, collection, ids)
}

// Find implements store.Store
func (c *Counting) Find(ctx context.Context, q store.Query) ([]store.Document, error) {
	c.finds.Add(1)
	if err := c.fail(); err != nil {
		return nil, err
	}
	return c.Inner.Find(ctx, q)
}

// Insert implements store.Store
func (c *Counting) Insert(ctx context.Context, collection string, value interface{}) (*store.Document, error) {
	c.inserts.Add(1)
	if err := c.fail(); err != nil {
		return nil, err
	}
	return c.Inner.Insert(ctx, collection, value)
}

// Gets is the number of Get calls
func (c *Counting) Gets() int { return int(c.gets.Load()) }

// GetManys is the number of GetMany calls
func (c *Counting) GetManys() int { return int(c.getMany.Load()) }

// Finds is the number of Find calls
func (c *Counting) Finds() int { return int(c.finds.Load()) }

// Inserts is the number of Insert calls
func (c *Counting) Inserts() int { return int(c.inserts.Load()) }

// Calls is the total number of store calls
func (c *Counting) Calls() int {
	return c.Gets() + c.GetManys() + c.Finds() + c.Inserts()
}
